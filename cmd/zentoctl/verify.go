package main

import (
	"context"
	"os"
	"time"

	"github.com/zentoerp/zentoctl/internal/ui"
	"github.com/zentoerp/zentoctl/internal/verify"
)

func runVerify() int {
	cfg := loadSettings()
	console := ui.NewConsole(os.Stdout)

	v := &verify.Verifier{
		Settings: cfg,
		Console:  console,
	}

	// Connection failures are findings for the report, not startup faults.
	db, err := openStore(cfg)
	if err != nil {
		v.DBErr = err
	} else {
		v.DB = db
		defer db.Close()
	}

	cache, err := verify.NewRedisCache(cfg.RedisURL)
	if err != nil {
		v.CacheErr = err
	} else {
		v.Cache = cache
		defer cache.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if rep := v.Run(ctx); !rep.OK() {
		return 1
	}
	return 0
}
