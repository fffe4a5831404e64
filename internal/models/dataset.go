package models

// Dataset is the cleaned, immutable table of trade records loaded from a
// single CSV file. It is built once per file path and only read afterwards.
type Dataset struct {
	// Path is the absolute path the dataset was loaded from.
	Path string

	// Records holds the cleaned rows, in file order.
	Records []Record

	// DroppedRows counts source rows discarded for a non-numeric rank.
	DroppedRows int
}

// RankBounds returns the minimum and maximum rank present in the dataset.
// Both are zero for an empty dataset.
func (d *Dataset) RankBounds() (minRank, maxRank int) {
	for i, r := range d.Records {
		if i == 0 || r.Rank < minRank {
			minRank = r.Rank
		}
		if r.Rank > maxRank {
			maxRank = r.Rank
		}
	}
	return minRank, maxRank
}

// DefaultMaxRank returns the default upper bound for the rank filter:
// min(20, max rank present).
func (d *Dataset) DefaultMaxRank() int {
	_, maxRank := d.RankBounds()
	if maxRank > 20 {
		return 20
	}
	return maxRank
}

// FilterByRank returns the records whose rank lies within the inclusive
// range [minRank, maxRank], preserving file order.
func (d *Dataset) FilterByRank(minRank, maxRank int) []Record {
	var filtered []Record
	for _, r := range d.Records {
		if r.Rank >= minRank && r.Rank <= maxRank {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// FindCountry looks a country up in the full, unfiltered table.
func (d *Dataset) FindCountry(name string) (Record, bool) {
	for _, r := range d.Records {
		if r.Country == name {
			return r, true
		}
	}
	return Record{}, false
}
