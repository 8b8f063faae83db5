package main

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/lib/pq"
)

func buildDSNFromEnv() (string, error) {
	host := os.Getenv("POSTGRES_HOST")
	port := os.Getenv("POSTGRES_PORT")
	user := os.Getenv("POSTGRES_USER")
	pass := os.Getenv("POSTGRES_PASSWORD")
	dbname := os.Getenv("POSTGRES_DB")
	sslmode := envOr("POSTGRES_SSLMODE", "disable")
	if dbname == "" {
		if url := os.Getenv("DATABASE_URL"); url != "" {
			return url, nil
		}
		return "", errors.New("POSTGRES_DB not set; set env vars or DATABASE_URL")
	}
	if host == "" {
		host = "localhost"
	}
	if port == "" {
		port = "5432"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s", host, port, user, pass, dbname, sslmode), nil
}

func openDB() (*sql.DB, error) {
	dsn, err := buildDSNFromEnv()
	if err != nil {
		return nil, fmt.Errorf("database config error: %w", err)
	}
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect error: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database not reachable: %w", err)
	}
	return db, nil
}

func observationsQuery(table string) string {
	return "SELECT magnitude, magnitude_error, velocity FROM " + pq.QuoteIdentifier(table) + " ORDER BY id ASC"
}

// rowScanner is the part of *sql.Rows that scanObservations needs.
type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

// fetchObservations reads every row of table in id order.
func fetchObservations(db *sql.DB, table string) (Observations, error) {
	rows, err := db.Query(observationsQuery(table))
	if err != nil {
		return Observations{}, err
	}
	return scanObservations(rows, table)
}

// scanObservations consumes and closes rows. A NULL in any column fails the
// whole read.
func scanObservations(rows rowScanner, table string) (Observations, error) {
	defer rows.Close()

	var obs Observations
	row := 0
	for rows.Next() {
		row++
		var m, merr, v sql.NullFloat64
		if err := rows.Scan(&m, &merr, &v); err != nil {
			return Observations{}, err
		}
		if !m.Valid || !merr.Valid || !v.Valid {
			return Observations{}, fmt.Errorf("%s row %d: NULL measurement", table, row)
		}
		obs.Magnitude = append(obs.Magnitude, m.Float64)
		obs.MagnitudeErr = append(obs.MagnitudeErr, merr.Float64)
		obs.Velocity = append(obs.Velocity, v.Float64)
	}
	if err := rows.Err(); err != nil {
		return Observations{}, err
	}
	if obs.Len() == 0 {
		return Observations{}, fmt.Errorf("%s: %w", table, errNoObservations)
	}
	return obs, nil
}

func loadObservationsDB(table string) (Observations, error) {
	db, err := openDB()
	if err != nil {
		return Observations{}, err
	}
	defer db.Close()

	obs, err := fetchObservations(db, table)
	if err != nil {
		return Observations{}, fmt.Errorf("fetch observations failed: %w", err)
	}
	return obs, nil
}
