package site

import "context"

// Repository resolves site records and user-site assignments from the
// external store.
type Repository interface {
	// AssignedSites returns the sites a user is assigned to via the
	// site_user table. An empty slice is a normal outcome, not an error.
	AssignedSites(ctx context.Context, userID string) ([]Site, error)

	// GetByID returns ErrSiteNotFound when the site does not exist.
	GetByID(ctx context.Context, id string) (Site, error)
}
