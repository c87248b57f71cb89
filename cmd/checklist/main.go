package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/checklist/internal/buildinfo"
	"github.com/dmitrijs2005/checklist/internal/client/cli"
	"github.com/dmitrijs2005/checklist/internal/client/config"
	"github.com/dmitrijs2005/checklist/internal/client/store"
	"github.com/dmitrijs2005/checklist/internal/filex"
	"github.com/dmitrijs2005/checklist/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()

	cfg := config.LoadConfig()
	logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if z, ok := logger.(*logging.ZapLogger); ok {
		defer z.Sync()
	}

	dbPath, err := filex.EnsureParentDir(cfg.StateDB)
	if err != nil {
		log.Fatalf("%v", err)
	}

	db, err := store.Open(ctx, dbPath)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer db.Close()

	app := cli.NewApp(cfg, db, logger)
	app.Run(ctx)
}
