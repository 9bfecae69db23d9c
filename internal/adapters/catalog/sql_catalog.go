package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"travel-planner-service/internal/domain"
	"travel-planner-service/internal/platform/obs"
	"travel-planner-service/internal/ports"
)

// SQLCatalog is a Postgres-backed implementation of the CatalogSource
// port, for deployments that manage catalog content in a database
// instead of the embedded tables.
type SQLCatalog struct {
	DB *sql.DB
}

func NewSQLCatalog(db *sql.DB) *SQLCatalog {
	return &SQLCatalog{DB: db}
}

func (c *SQLCatalog) LookupPlace(ctx context.Context, name string) (domain.Place, bool, error) {
	if c.DB == nil {
		return domain.Place{}, false, errors.New("sql catalog: DB is nil")
	}

	q := `
	SELECT name, lat, lng
	FROM places
	WHERE lower(name) = lower($1);
	`

	var place domain.Place
	err := c.DB.QueryRowContext(ctx, q, name).Scan(&place.Name, &place.Coords.Lat, &place.Coords.Lng)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Place{}, false, nil
	}
	if err != nil {
		return domain.Place{}, false, fmt.Errorf("lookup place: query places table: %w", err)
	}

	return place, true, nil
}

func (c *SQLCatalog) ListAttractions(ctx context.Context, destination string) (_ []ports.Attraction, err error) {
	defer obs.Time(ctx, "catalog.ListAttractions")(&err)

	if c.DB == nil {
		return nil, errors.New("sql catalog: DB is nil")
	}

	q := `
	SELECT id, name, category, description, duration_hours, cost_usd, lat, lng
	FROM attractions
	WHERE lower(destination) = lower($1)
	ORDER BY id;
	`

	rows, err := c.DB.QueryContext(ctx, q, destination)
	if err != nil {
		return nil, fmt.Errorf("list attractions: query attractions table: %w", err)
	}
	defer rows.Close()

	attractions := make([]ports.Attraction, 0, 16)
	for rows.Next() {
		var a ports.Attraction
		if err := rows.Scan(
			&a.ID, &a.Name, &a.Category, &a.Description,
			&a.DurationHours, &a.CostUSD, &a.Coords.Lat, &a.Coords.Lng,
		); err != nil {
			return nil, fmt.Errorf("list attractions: scan row: %w", err)
		}
		attractions = append(attractions, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list attractions: row iteration: %w", err)
	}

	return attractions, nil
}

func (c *SQLCatalog) ModeProfiles(ctx context.Context) ([]ports.ModeProfile, error) {
	if c.DB == nil {
		return nil, errors.New("sql catalog: DB is nil")
	}

	q := `
	SELECT mode, speed_kmh, max_range_km, base_usd, usd_per_km,
	       carbon_kg_per_km, overhead_hours, departure, summary
	FROM mode_profiles
	ORDER BY rank;
	`

	rows, err := c.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("mode profiles: query mode_profiles table: %w", err)
	}
	defer rows.Close()

	profiles := make([]ports.ModeProfile, 0, 4)
	for rows.Next() {
		var p ports.ModeProfile
		var mode string
		if err := rows.Scan(
			&mode, &p.SpeedKmh, &p.MaxRangeKm, &p.BaseUSD, &p.USDPerKm,
			&p.CarbonKgPerKm, &p.OverheadHours, &p.Departure, &p.Summary,
		); err != nil {
			return nil, fmt.Errorf("mode profiles: scan row: %w", err)
		}
		p.Mode = domain.TransportMode(mode)
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("mode profiles: row iteration: %w", err)
	}

	return profiles, nil
}

func (c *SQLCatalog) ListDestinations(ctx context.Context) ([]domain.Place, error) {
	if c.DB == nil {
		return nil, errors.New("sql catalog: DB is nil")
	}

	q := `
	SELECT p.name, p.lat, p.lng
	FROM places p
	WHERE EXISTS (
		SELECT 1 FROM attractions a WHERE lower(a.destination) = lower(p.name)
	)
	ORDER BY p.name;
	`

	rows, err := c.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list destinations: query places table: %w", err)
	}
	defer rows.Close()

	places := make([]domain.Place, 0, 16)
	for rows.Next() {
		var p domain.Place
		if err := rows.Scan(&p.Name, &p.Coords.Lat, &p.Coords.Lng); err != nil {
			return nil, fmt.Errorf("list destinations: scan row: %w", err)
		}
		places = append(places, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list destinations: row iteration: %w", err)
	}

	return places, nil
}
