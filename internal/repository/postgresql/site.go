package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/facilityops/hvac-backend-go/internal/domain/site"
	"github.com/facilityops/hvac-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type siteRepository struct {
	db *database.DB
}

func NewSiteRepository(db *database.DB) site.Repository {
	return &siteRepository{db: db}
}

const siteColumns = `
	s.site_id, s.name, s.site_code, s.address, s.city, s.state,
	s.latitude, s.longitude, s.radius`

func scanSite(row pgx.Row) (site.Site, error) {
	var s site.Site
	err := row.Scan(
		&s.ID, &s.Name, &s.SiteCode, &s.Address, &s.City, &s.State,
		&s.Latitude, &s.Longitude, &s.RadiusMeters,
	)
	return s, err
}

// AssignedSites implements site.Repository.
func (r *siteRepository) AssignedSites(ctx context.Context, userID string) ([]site.Site, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + siteColumns + `
		FROM sites s
		INNER JOIN site_user su ON su.site_id = s.site_id
		WHERE su.user_id = $1
		ORDER BY s.name ASC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assigned sites: %w", err)
	}
	defer rows.Close()

	var sites []site.Site
	for rows.Next() {
		s, err := scanSite(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan site: %w", err)
		}
		sites = append(sites, s)
	}

	return sites, nil
}

// GetByID implements site.Repository.
func (r *siteRepository) GetByID(ctx context.Context, id string) (site.Site, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + siteColumns + ` FROM sites s WHERE s.site_id = $1`

	s, err := scanSite(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return site.Site{}, site.ErrSiteNotFound
		}
		return site.Site{}, fmt.Errorf("failed to get site by ID: %w", err)
	}

	return s, nil
}
