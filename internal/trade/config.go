package trade

import "tradedash.openmarkets.org/internal/appconf"

type Config struct {
	// DataPath is the CSV file holding the country trade statistics.
	DataPath string
	Env      appconf.Environment
	Verbose  bool
}
