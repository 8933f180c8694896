package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/dserbyn/regconsole/internal/config"
	"github.com/dserbyn/regconsole/internal/console"
	"github.com/dserbyn/regconsole/internal/logging"

	_ "modernc.org/sqlite"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, slog.LevelInfo)

	app, err := console.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close()

	app.Run(ctx)
}
