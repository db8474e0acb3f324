package main

import "github.com/adanyl0v/go-task-history/internal/app"

func main() {
	logger := app.NewDefaultLogger()
	cfg := app.MustReadEnv(logger)
	logger = app.MustInitApplicationLogger(logger, cfg)

	db := app.MustConnectDatabase(logger, cfg)
	defer app.DisconnectDatabase(logger, db)

	app.MustListenAndServeHTTP(logger, cfg, db)
}
