package user

import "context"

// Repository reads user records from the external store.
type Repository interface {
	// GetByID returns ErrUserNotFound when the user does not exist.
	GetByID(ctx context.Context, id string) (User, error)

	// GetWorkLocation returns the normalized classification. A missing user
	// yields WorkLocationUnknown, not an error: location validation treats
	// "user missing" the same as "not work-from-home".
	GetWorkLocation(ctx context.Context, id string) (WorkLocation, error)
}
