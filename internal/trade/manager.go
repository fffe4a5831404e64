package trade

import (
	"context"
	"fmt"
	"log/slog"

	"tradedash.openmarkets.org/internal/models"
	"tradedash.openmarkets.org/tradedb"
)

// Manager owns the cleaned trade dataset and provides methods to access
// it. The in-memory table is the source of truth for full-table lookups
// (the trend view); rank-range filtering, ordering and the KPI
// aggregates run against an in-memory SQLite projection of the same
// records.
type Manager struct {
	config  Config
	dataset *models.Dataset
	TradeDB *tradedb.Client
}

// InitManager loads the dataset at config.DataPath (served from the
// per-path cache on repeat loads) and builds the database projection.
func InitManager(config Config) (*Manager, error) {
	dataset, err := loadDatasetCached(config.DataPath)
	if err != nil {
		return nil, err
	}

	dbConfig := tradedb.NewConfig(":memory:", config.Env, config.Verbose)
	client, err := tradedb.NewClient(dbConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create trade database client: %w", err)
	}

	if err := client.ImportDataset(context.Background(), dataset); err != nil {
		return nil, fmt.Errorf("failed to import trade dataset: %w", err)
	}

	return &Manager{
		config:  config,
		dataset: dataset,
		TradeDB: client,
	}, nil
}

// GetDataset returns the full, unfiltered table.
func (manager *Manager) GetDataset() *models.Dataset {
	return manager.dataset
}

// RankBounds returns the minimum and maximum country rank in the table.
func (manager *Manager) RankBounds() (int, int) {
	return manager.dataset.RankBounds()
}

// DefaultMaxRank is the default upper bound of the rank filter:
// min(20, max rank present).
func (manager *Manager) DefaultMaxRank() int {
	return manager.dataset.DefaultMaxRank()
}

// FilteredRecords returns the records with rank in [minRank, maxRank],
// both bounds inclusive, ordered by rank.
func (manager *Manager) FilteredRecords(ctx context.Context, minRank, maxRank int) ([]models.Record, error) {
	return manager.TradeDB.QueryRecordsInRankRange(ctx, minRank, maxRank)
}

// Comparison returns the filtered records ordered descending by the
// given sort column, for the grouped bar view.
func (manager *Manager) Comparison(ctx context.Context, minRank, maxRank int, sortBy models.SortColumn) ([]models.Record, error) {
	return manager.TradeDB.QueryComparison(ctx, minRank, maxRank, sortBy)
}

// Summary computes the three KPI aggregates over the filtered records.
// An empty selection yields all zeros.
func (manager *Manager) Summary(ctx context.Context, minRank, maxRank int) (models.Summary, error) {
	return manager.TradeDB.QuerySummary(ctx, minRank, maxRank)
}

// FilteredCountries lists the country names in the filtered set, in rank
// order. These are the choices offered by the trend view selector.
func (manager *Manager) FilteredCountries(ctx context.Context, minRank, maxRank int) ([]string, error) {
	return manager.TradeDB.QueryCountriesInRankRange(ctx, minRank, maxRank)
}

// TrendFor looks a country up against the full unfiltered table.
func (manager *Manager) TrendFor(country string) (models.TrendData, bool) {
	rec, ok := manager.dataset.FindCountry(country)
	if !ok {
		return models.TrendData{}, false
	}
	return models.NewTrendData(rec), true
}

// LogStatistics reports the load outcome. Rows dropped for a
// non-numeric rank are surfaced here once, at Warn level.
func (manager *Manager) LogStatistics(logger *slog.Logger) {
	logger.Info("trade dataset loaded",
		"path", manager.dataset.Path,
		"records", len(manager.dataset.Records))
	if manager.dataset.DroppedRows > 0 {
		logger.Warn("dropped rows with non-numeric rank",
			"count", manager.dataset.DroppedRows)
	}
}

// Shutdown releases the database projection.
func (manager *Manager) Shutdown() error {
	return manager.TradeDB.Close()
}
