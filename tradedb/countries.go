package tradedb

import (
	"context"
	"database/sql"
	"fmt"

	"tradedash.openmarkets.org/internal/models"
)

const recordColumns = `rank, country_name, imports, exports, balance,
	imports_2022, exports_2022, imports_2023, exports_2023,
	imports_2024, exports_2024`

// QueryRecordsInRankRange retrieves the countries whose rank lies within
// the inclusive range [minRank, maxRank], ordered by rank.
func (c *Client) QueryRecordsInRankRange(ctx context.Context, minRank, maxRank int) ([]models.Record, error) {
	rows, err := c.DB.QueryContext(
		ctx,
		`SELECT `+recordColumns+`
			FROM countries
			WHERE rank >= ? AND rank <= ?
			ORDER BY rank`,
		minRank, maxRank,
	)
	if err != nil {
		return nil, err
	}
	return scanRecords(rows)
}

// QueryComparison retrieves the filtered countries ordered descending by
// the given sort column, for the grouped bar comparison view.
func (c *Client) QueryComparison(ctx context.Context, minRank, maxRank int, sortBy models.SortColumn) ([]models.Record, error) {
	rows, err := c.DB.QueryContext(
		ctx,
		`SELECT `+recordColumns+`
			FROM countries
			WHERE rank >= ? AND rank <= ?
			ORDER BY `+sortColumnName(sortBy)+` DESC`,
		minRank, maxRank,
	)
	if err != nil {
		return nil, err
	}
	return scanRecords(rows)
}

// QueryCountriesInRankRange lists the country names within the inclusive
// rank range, in rank order.
func (c *Client) QueryCountriesInRankRange(ctx context.Context, minRank, maxRank int) ([]string, error) {
	rows, err := c.DB.QueryContext(
		ctx,
		`SELECT country_name
			FROM countries
			WHERE rank >= ? AND rank <= ?
			ORDER BY rank`,
		minRank, maxRank,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	var countries []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		countries = append(countries, name)
	}
	return countries, rows.Err()
}

// QuerySummary computes the KPI aggregates over the inclusive rank
// range. COALESCE guards the empty selection: sums and the mean all
// resolve to zero rather than NULL or NaN.
func (c *Client) QuerySummary(ctx context.Context, minRank, maxRank int) (models.Summary, error) {
	var summary models.Summary
	err := c.DB.QueryRowContext(
		ctx,
		`SELECT COUNT(*),
				COALESCE(SUM(imports), 0),
				COALESCE(SUM(exports), 0),
				COALESCE(AVG(balance), 0)
			FROM countries
			WHERE rank >= ? AND rank <= ?`,
		minRank, maxRank,
	).Scan(&summary.CountryCount, &summary.TotalImports, &summary.TotalExports, &summary.MeanBalance)
	if err != nil {
		return models.Summary{}, fmt.Errorf("error computing summary: %w", err)
	}
	return summary, nil
}

// QueryRankBounds returns the minimum and maximum rank in the table,
// both zero when the table is empty.
func (c *Client) QueryRankBounds(ctx context.Context) (int, int, error) {
	var minRank, maxRank int
	err := c.DB.QueryRowContext(
		ctx,
		`SELECT COALESCE(MIN(rank), 0), COALESCE(MAX(rank), 0) FROM countries`,
	).Scan(&minRank, &maxRank)
	if err != nil {
		return 0, 0, fmt.Errorf("error querying rank bounds: %w", err)
	}
	return minRank, maxRank, nil
}

// sortColumnName maps a SortColumn to its table column. Anything outside
// the whitelist falls back to the imports column, so caller input can
// never reach the SQL text.
func sortColumnName(sortBy models.SortColumn) string {
	switch sortBy {
	case models.SortByExports:
		return "exports"
	case models.SortByBalance:
		return "balance"
	default:
		return "imports"
	}
}

func scanRecords(rows *sql.Rows) ([]models.Record, error) {
	defer rows.Close() // nolint:errcheck

	var records []models.Record
	for rows.Next() {
		var rec models.Record
		err := rows.Scan(
			&rec.Rank, &rec.Country, &rec.Imports, &rec.Exports, &rec.Balance,
			&rec.Imports2022, &rec.Exports2022, &rec.Imports2023, &rec.Exports2023,
			&rec.Imports2024, &rec.Exports2024,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
