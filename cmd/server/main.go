package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/julienschmidt/httprouter"

	"tradedash.openmarkets.org/internal/app"
	"tradedash.openmarkets.org/internal/appconf"
	"tradedash.openmarkets.org/internal/logging"
	"tradedash.openmarkets.org/internal/restapi"
	"tradedash.openmarkets.org/internal/trade"
	"tradedash.openmarkets.org/internal/webui"
)

func main() {
	var cfg app.Config
	var envFlag string
	var tradeConfig trade.Config

	flag.IntVar(&cfg.Port, "port", 4000, "Dashboard server port")
	flag.StringVar(&envFlag, "env", "development", "Environment (development|test|production)")
	flag.StringVar(&tradeConfig.DataPath, "data", "promising_markets.csv", "Path to the trade statistics CSV file")
	flag.BoolVar(&cfg.Verbose, "verbose", false, "Verbose logging")
	flag.Parse()

	cfg.Env = appconf.EnvFlagToEnvironment(envFlag)
	tradeConfig.Env = cfg.Env
	tradeConfig.Verbose = cfg.Verbose

	logger := logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)

	tradeManager, err := trade.InitManager(tradeConfig)
	if err != nil {
		// A failed load is terminal: there is nothing to display, so the
		// server refuses to start rather than render empty views.
		logging.LogError(logger, "failed to load trade dataset", err,
			slog.String("path", tradeConfig.DataPath))
		os.Exit(1)
	}
	defer logging.SafeCloseWithLogging(tradeManager.TradeDB, logger, "close_trade_db")

	tradeManager.LogStatistics(logger)

	if len(tradeManager.GetDataset().Records) == 0 {
		logger.Error("trade dataset contains no usable rows", "path", tradeConfig.DataPath)
		os.Exit(1)
	}

	application := &app.Application{
		Config:       cfg,
		TradeConfig:  tradeConfig,
		Logger:       logger,
		TradeManager: tradeManager,
	}

	router := httprouter.New()
	restapi.NewRestAPI(application).SetRoutes(router)
	webui.NewWebUI(application).SetRoutes(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env.String())
	err = srv.ListenAndServe()
	logger.Error(err.Error())
	os.Exit(1)
}
