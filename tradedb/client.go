package tradedb

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"tradedash.openmarkets.org/internal/appconf"
	"tradedash.openmarkets.org/internal/models"
)

//go:embed schema.sql
var ddl string

// Client is the main entry point for the library
type Client struct {
	config        Config
	DB            *sql.DB
	importRuntime time.Duration
}

// NewClient creates a new Client with the provided configuration
func NewClient(config Config) (*Client, error) {
	db, err := createDB(config)
	if err != nil {
		return nil, err
	}
	if config.verbose {
		log.Println("Successfully created tables")
	}

	return &Client{
		config: config,
		DB:     db,
	}, nil
}

func (c *Client) Close() error {
	return c.DB.Close()
}

// createDB creates a new SQLite database with the countries table
func createDB(config Config) (*sql.DB, error) {
	if config.Env == appconf.Test && config.DBPath != ":memory:" {
		log.Fatal("DB is being created in a file.", config.DBPath)
	}

	db, err := sql.Open("sqlite", config.DBPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := performDatabaseMigration(context.Background(), db); err != nil {
		return nil, fmt.Errorf("error performing database migration: %w", err)
	}

	return db, nil
}

func performDatabaseMigration(ctx context.Context, db *sql.DB) error {
	statements := strings.Split(ddl, "-- migrate") // Split DDL into individual statements
	for _, stmt := range statements {
		trimmedStmt := strings.TrimSpace(stmt)
		if trimmedStmt == "" {
			continue // Skip empty statements
		}
		if _, err := db.ExecContext(ctx, trimmedStmt); err != nil {
			return fmt.Errorf("error executing DDL statement [%s]: %w", trimmedStmt, err)
		}
	}
	return nil
}

// ImportDataset replaces the countries table contents with the cleaned
// records of the given dataset, in a single transaction.
func (c *Client) ImportDataset(ctx context.Context, dataset *models.Dataset) error {
	startTime := time.Now()
	defer func() {
		c.importRuntime = time.Since(startTime)
		if c.config.verbose {
			log.Println("Importing trade data took", c.importRuntime.String())
		}
	}()

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM countries;`); err != nil {
		tx.Rollback() // nolint:errcheck
		return fmt.Errorf("error clearing countries: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO countries (
			rank, country_name, imports, exports, balance,
			imports_2022, exports_2022, imports_2023, exports_2023,
			imports_2024, exports_2024
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, rec := range dataset.Records {
		_, err := stmt.ExecContext(ctx,
			rec.Rank, rec.Country, rec.Imports, rec.Exports, rec.Balance,
			rec.Imports2022, rec.Exports2022, rec.Imports2023, rec.Exports2023,
			rec.Imports2024, rec.Exports2024,
		)
		if err != nil {
			tx.Rollback() // nolint:errcheck
			return fmt.Errorf("error inserting country: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}
