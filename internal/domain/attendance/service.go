package attendance

import "context"

// Service defines the attendance ledger and reporting operations.
type Service interface {
	// CheckIn opens today's record after geofence validation. Rejects a
	// second same-day check-in with *AlreadyCheckedInError and an
	// out-of-range site with *LocationNotAllowedError.
	CheckIn(ctx context.Context, req CheckInRequest) (Response, error)

	// CheckOut closes a record, computing worked hours and enforcing the
	// early-checkout remarks policy (*EarlyCheckoutError).
	CheckOut(ctx context.Context, id string, req CheckOutRequest) (CheckOutResponse, error)

	// TodayByUser returns today's record or nil; absence is a normal outcome.
	TodayByUser(ctx context.Context, userID string) (*Response, error)

	Get(ctx context.Context, id string) (Response, error)
	Create(ctx context.Context, req CreateRequest) (Response, error)
	Update(ctx context.Context, id string, req UpdateRequest) (Response, error)
	Delete(ctx context.Context, id string) error

	// ByUser pages through a user's history, newest first.
	ByUser(ctx context.Context, userID string, f UserFilter) (ListResponse, error)

	// BySite lists one civil date's records for a site (default: today).
	BySite(ctx context.Context, siteID string, f SiteFilter) ([]Response, error)

	// Report aggregates a date range for one site, or all sites when
	// siteID is "all" or empty.
	Report(ctx context.Context, siteID, dateFrom, dateTo string) ([]Response, error)
}
