package models

// SortColumn identifies the column the comparison view is ordered by.
type SortColumn string

const (
	SortByImports SortColumn = "imports"
	SortByExports SortColumn = "exports"
	SortByBalance SortColumn = "balance"
)

// DefaultSortColumn is used when the request does not name a sort column.
const DefaultSortColumn = SortByImports

// IsValid reports whether the sort column is one of the three supported
// comparison orderings.
func (s SortColumn) IsValid() bool {
	switch s {
	case SortByImports, SortByExports, SortByBalance:
		return true
	}
	return false
}
