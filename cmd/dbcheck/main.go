// Command dbcheck reports whether the configured database is reachable and
// which tables it holds. It reads the same environment as the API server.
package main

import (
	"context"
	"database/sql"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	"github.com/snap-point/places-api/config"
	"github.com/snap-point/places-api/diagnostics"
	"github.com/snap-point/places-api/logging"
)

func main() {
	cfg := config.Load()
	logger := logging.NewWithWriter(os.Stderr, cfg.LogLevel)

	dsn, err := cfg.DB.DSN()
	if err != nil {
		logger.Error("invalid database configuration", "error", err)
		os.Exit(2)
	}

	// sqlite is registered by the gorm driver pulled in through config
	db, err := sql.Open(cfg.DB.Driver, dsn)
	if err != nil {
		logger.Error("failed to open database", "driver", cfg.DB.Driver, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		logger.Error("database unreachable", "params", cfg.DB.Params(), "error", err)
		os.Exit(1)
	}

	report, err := diagnostics.Inspect(ctx, db, cfg.DB.Driver)
	if err != nil {
		logger.Error("inspection failed", "error", err)
		os.Exit(1)
	}
	report.Params = cfg.DB.Params()
	report.Write(os.Stdout)
}
