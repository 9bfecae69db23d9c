package catalog

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the catalog database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createPlacesQuery := `
	CREATE TABLE IF NOT EXISTS places (
		name TEXT PRIMARY KEY,
		lat DOUBLE PRECISION NOT NULL,
		lng DOUBLE PRECISION NOT NULL
	);
	`

	createAttractionsQuery := `
	CREATE TABLE IF NOT EXISTS attractions (
		id TEXT PRIMARY KEY,
		destination TEXT NOT NULL,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		description TEXT NOT NULL,
		duration_hours DOUBLE PRECISION NOT NULL,
		cost_usd DOUBLE PRECISION NOT NULL,
		lat DOUBLE PRECISION NOT NULL,
		lng DOUBLE PRECISION NOT NULL
	);
	`

	createModeProfilesQuery := `
	CREATE TABLE IF NOT EXISTS mode_profiles (
		mode TEXT PRIMARY KEY,
		rank INTEGER NOT NULL,
		speed_kmh DOUBLE PRECISION NOT NULL,
		max_range_km DOUBLE PRECISION NOT NULL,
		base_usd DOUBLE PRECISION NOT NULL,
		usd_per_km DOUBLE PRECISION NOT NULL,
		carbon_kg_per_km DOUBLE PRECISION NOT NULL,
		overhead_hours DOUBLE PRECISION NOT NULL,
		departure TEXT NOT NULL,
		summary TEXT NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_attractions_destination
	ON attractions(destination);
	`

	statements := []string{
		createPlacesQuery,
		createAttractionsQuery,
		createModeProfilesQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type placeSeed struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

type attractionSeed struct {
	ID            string  `json:"id"`
	Destination   string  `json:"destination"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	DurationHours float64 `json:"duration_hours"`
	CostUSD       float64 `json:"cost_usd"`
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
}

type modeSeed struct {
	Mode          string  `json:"mode"`
	Rank          int     `json:"rank"`
	SpeedKmh      float64 `json:"speed_kmh"`
	MaxRangeKm    float64 `json:"max_range_km"`
	BaseUSD       float64 `json:"base_usd"`
	USDPerKm      float64 `json:"usd_per_km"`
	CarbonKgPerKm float64 `json:"carbon_kg_per_km"`
	OverheadHours float64 `json:"overhead_hours"`
	Departure     string  `json:"departure"`
	Summary       string  `json:"summary"`
}

type catalogSeed struct {
	Places      []placeSeed      `json:"places"`
	Attractions []attractionSeed `json:"attractions"`
	Modes       []modeSeed       `json:"modes"`
}

// Populate the catalog tables from a JSON seed file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed catalog: read %q: %w", jsonPath, err)
	}

	var seed catalogSeed
	if err := json.Unmarshal(bytes, &seed); err != nil {
		return fmt.Errorf("seed catalog: parse json: %w", err)
	}

	for i, p := range seed.Places {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("seed catalog: place at index %d: name cannot be empty", i+1)
		}
	}
	for i, a := range seed.Attractions {
		if strings.TrimSpace(a.ID) == "" || strings.TrimSpace(a.Destination) == "" {
			return fmt.Errorf("seed catalog: attraction at index %d: id and destination are required", i+1)
		}
	}
	for i, m := range seed.Modes {
		if strings.TrimSpace(m.Mode) == "" || m.SpeedKmh <= 0 {
			return fmt.Errorf("seed catalog: mode at index %d: mode and positive speed are required", i+1)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed catalog: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	placeStmt, err := tx.Prepare(`
	INSERT INTO places (name, lat, lng)
	VALUES ($1, $2, $3)
	ON CONFLICT (name) DO UPDATE
	SET lat = EXCLUDED.lat, lng = EXCLUDED.lng;
	`)
	if err != nil {
		return fmt.Errorf("seed catalog: prepare places insert: %w", err)
	}
	defer placeStmt.Close()

	for _, p := range seed.Places {
		if _, err := placeStmt.Exec(p.Name, p.Lat, p.Lng); err != nil {
			return fmt.Errorf("seed catalog: insert place %q: %w", p.Name, err)
		}
	}

	attractionStmt, err := tx.Prepare(`
	INSERT INTO attractions (
		id, destination, name, category, description,
		duration_hours, cost_usd, lat, lng
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (id) DO UPDATE
	SET destination = EXCLUDED.destination,
		name = EXCLUDED.name,
		category = EXCLUDED.category,
		description = EXCLUDED.description,
		duration_hours = EXCLUDED.duration_hours,
		cost_usd = EXCLUDED.cost_usd,
		lat = EXCLUDED.lat,
		lng = EXCLUDED.lng;
	`)
	if err != nil {
		return fmt.Errorf("seed catalog: prepare attractions insert: %w", err)
	}
	defer attractionStmt.Close()

	for _, a := range seed.Attractions {
		if _, err := attractionStmt.Exec(
			a.ID, a.Destination, a.Name, a.Category, a.Description,
			a.DurationHours, a.CostUSD, a.Lat, a.Lng,
		); err != nil {
			return fmt.Errorf("seed catalog: insert attraction %q: %w", a.ID, err)
		}
	}

	modeStmt, err := tx.Prepare(`
	INSERT INTO mode_profiles (
		mode, rank, speed_kmh, max_range_km, base_usd,
		usd_per_km, carbon_kg_per_km, overhead_hours, departure, summary
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	ON CONFLICT (mode) DO UPDATE
	SET rank = EXCLUDED.rank,
		speed_kmh = EXCLUDED.speed_kmh,
		max_range_km = EXCLUDED.max_range_km,
		base_usd = EXCLUDED.base_usd,
		usd_per_km = EXCLUDED.usd_per_km,
		carbon_kg_per_km = EXCLUDED.carbon_kg_per_km,
		overhead_hours = EXCLUDED.overhead_hours,
		departure = EXCLUDED.departure,
		summary = EXCLUDED.summary;
	`)
	if err != nil {
		return fmt.Errorf("seed catalog: prepare mode insert: %w", err)
	}
	defer modeStmt.Close()

	for _, m := range seed.Modes {
		if _, err := modeStmt.Exec(
			m.Mode, m.Rank, m.SpeedKmh, m.MaxRangeKm, m.BaseUSD,
			m.USDPerKm, m.CarbonKgPerKm, m.OverheadHours, m.Departure, m.Summary,
		); err != nil {
			return fmt.Errorf("seed catalog: insert mode %q: %w", m.Mode, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed catalog: commit tx: %w", err)
	}

	return nil
}
