package config

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteProvider implements ConfigProvider for SQLite database configuration.
// Sites are read from the melt_sites table:
//
//	CREATE TABLE melt_sites (
//	    name              TEXT PRIMARY KEY,
//	    degree_day_factor REAL NOT NULL,
//	    threshold_temp    REAL
//	);
type SQLiteProvider struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteProvider creates a new SQLite configuration provider
func NewSQLiteProvider(dbPath string) (*SQLiteProvider, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	return &SQLiteProvider{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// LoadConfig loads the complete configuration from SQLite database
func (s *SQLiteProvider) LoadConfig() (*ConfigData, error) {
	sites, err := s.GetSites()
	if err != nil {
		return nil, fmt.Errorf("failed to load sites: %w", err)
	}

	return &ConfigData{Sites: sites}, nil
}

// GetSites returns site configurations from the database
func (s *SQLiteProvider) GetSites() ([]SiteData, error) {
	query := `
		SELECT name, degree_day_factor, threshold_temp
		FROM melt_sites
		ORDER BY name
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query sites: %w", err)
	}
	defer rows.Close()

	sites := []SiteData{}
	for rows.Next() {
		var site SiteData
		var threshold sql.NullFloat64

		if err := rows.Scan(&site.Name, &site.DegreeDayFactor, &threshold); err != nil {
			return nil, fmt.Errorf("failed to scan site row: %w", err)
		}

		// NULL threshold means the model default
		if threshold.Valid {
			site.ThresholdTemp = threshold.Float64
		}

		sites = append(sites, site)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate site rows: %w", err)
	}

	return sites, nil
}

// IsReadOnly returns true; melt parameters are managed outside this package
func (s *SQLiteProvider) IsReadOnly() bool {
	return true
}

// Close closes the database connection
func (s *SQLiteProvider) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
