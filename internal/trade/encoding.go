package trade

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/korean"
)

// decodeDataFile resolves the file's text encoding. KOTRA market exports
// ship as CP949; newer exports are UTF-8. UTF-8 validation is exact, so
// it is checked first; anything failing it is decoded as EUC-KR, and a
// decode that produces replacement runes counts as a failure.
func decodeDataFile(b []byte) (string, error) {
	if utf8.Valid(b) {
		return string(b), nil
	}

	decoded, err := korean.EUCKR.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if bytes.ContainsRune(decoded, utf8.RuneError) {
		return "", fmt.Errorf("%w: invalid EUC-KR byte sequence", ErrDecode)
	}
	return string(decoded), nil
}
