package trade

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"tradedash.openmarkets.org/internal/models"
)

// The per-path dataset cache. A table is parsed once per distinct file
// path and only read afterwards; there is no invalidation or eviction in
// this design, entries live for the process lifetime.
var (
	datasetCacheMu sync.Mutex
	datasetCache   = make(map[string]*models.Dataset)
)

// loadDatasetCached returns the cleaned dataset for path, parsing the
// file on the first call and serving the cached table thereafter.
func loadDatasetCached(path string) (*models.Dataset, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	datasetCacheMu.Lock()
	defer datasetCacheMu.Unlock()

	if ds, ok := datasetCache[abs]; ok {
		return ds, nil
	}

	ds, err := loadDataset(abs)
	if err != nil {
		return nil, err
	}
	datasetCache[abs] = ds
	return ds, nil
}

// loadDataset reads, decodes and cleans the CSV file at path. The first
// line of the file is a title banner and is skipped; the second line is
// the header row.
func loadDataset(path string) (*models.Dataset, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("error reading data file: %w", err)
	}

	text, err := decodeDataFile(b)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: no header row", ErrSchema)
	}

	header := rows[1]
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	rankIdx, ok := columns[colRank]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSchema, colRank)
	}
	countryIdx, ok := columns[colCountry]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSchema, colCountry)
	}

	// Resolve each optional numeric column once; -1 marks a column the
	// source does not carry, which zero-fills the field for every row.
	numericIdx := make([]int, len(numericColumns))
	for i, col := range numericColumns {
		if idx, ok := columns[col.header]; ok {
			numericIdx[i] = idx
		} else {
			numericIdx[i] = -1
		}
	}

	ds := &models.Dataset{Path: path}
	for _, row := range rows[2:] {
		rank, ok := parseRank(field(row, rankIdx))
		if !ok {
			ds.DroppedRows++
			continue
		}

		rec := models.Record{
			Rank:    rank,
			Country: strings.TrimSpace(field(row, countryIdx)),
		}
		for i, col := range numericColumns {
			if numericIdx[i] >= 0 {
				col.assign(&rec, cleanNumber(field(row, numericIdx[i])))
			}
		}
		ds.Records = append(ds.Records, rec)
	}

	return ds, nil
}

// field returns the i-th value of a row, tolerating ragged rows.
func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// parseRank coerces a rank cell to an integer. Rows whose rank does not
// coerce are dropped by the caller.
func parseRank(raw string) (int, bool) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return int(v), true
}

// cleanNumber coerces a numeric cell: thousands separators are stripped
// and the "-" no-data placeholder, blanks and anything unparseable all
// become zero. The result is always finite.
func cleanNumber(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" || s == "-" {
		return 0
	}
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
