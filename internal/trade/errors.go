package trade

import "errors"

// Load failures are terminal for the attempt: the caller receives an
// error plus no dataset, and must not render anything.
var (
	// ErrFileNotFound indicates the data path does not resolve to a
	// readable file.
	ErrFileNotFound = errors.New("data file not found")

	// ErrDecode indicates the file could not be decoded as either
	// EUC-KR or UTF-8, or is not parseable as delimited text.
	ErrDecode = errors.New("unable to decode data file")

	// ErrSchema indicates a required column is missing from the header.
	ErrSchema = errors.New("required column missing")
)
