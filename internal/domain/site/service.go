package site

import (
	"context"

	"github.com/facilityops/hvac-backend-go/internal/pkg/geo"
)

// LocationService validates a user's position against their assigned sites.
type LocationService interface {
	// Validate never returns a domain error for absent data: missing
	// coordinates, missing assignments, and unknown users all yield a
	// negative LocationValidation with an explanatory message. A nil point
	// means no coordinates were supplied.
	Validate(ctx context.Context, userID string, point *geo.Point) (LocationValidation, error)

	// UserSites returns the user's assigned sites with coordinates.
	UserSites(ctx context.Context, userID string) ([]Site, error)
}
