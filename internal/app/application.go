package app

import (
	"log/slog"

	"tradedash.openmarkets.org/internal/appconf"
	"tradedash.openmarkets.org/internal/trade"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware: the Config struct, a logger, and the trade dataset
// manager that owns the cleaned table.
type Application struct {
	Config       Config
	TradeConfig  trade.Config
	Logger       *slog.Logger
	TradeManager *trade.Manager
}

// Config holds the configuration settings for our Application: the
// network port the server listens on and the operating environment
// (development, test, production). These are read from command-line
// flags when the Application starts.
type Config struct {
	Port    int
	Env     appconf.Environment
	Verbose bool
}
