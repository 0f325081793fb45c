package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/zentoerp/zentoctl/internal/config"
	"github.com/zentoerp/zentoctl/internal/readiness"
	"github.com/zentoerp/zentoctl/internal/store"
	"github.com/zentoerp/zentoctl/internal/ui"
)

var version = "0.1.0"

func main() {
	// Load .env file if it exists (ignore error if file doesn't exist)
	_ = godotenv.Load()
	os.Exit(run(os.Args))
}

func run(args []string) int {
	if len(args) < 2 {
		usage()
		return 2
	}
	switch args[1] {
	case "version":
		fmt.Println("zentoctl", version)
		return 0
	case "check":
		return runCheck()
	case "verify":
		return runVerify()
	case "tenant":
		return runTenant(args[2:])
	case "domains":
		return runDomains(args[2:])
	case "devconfig":
		return runDevConfig()
	case "migrate":
		return runMigrate(args[2:])
	default:
		usage()
		return 2
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `zentoctl <command>

Commands:
  check                      advisory production readiness check
  verify                     strict production verification (fails on errors)
  tenant create              create a tenant with its primary domain
  domains check              validate registered tenant domains
  domains setup              create missing primary domains for tenants
  devconfig                  print local development host configuration
  migrate up|down            apply or roll back database migrations
  version                    print version`)
}

func loadSettings() config.Settings {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("configuration: %v", err)
	}
	return cfg
}

func runCheck() int {
	cfg := loadSettings()
	readiness.Run(cfg, ui.NewConsole(os.Stdout))
	return 0
}

// openStore connects to the database with a bounded dial window.
func openStore(cfg config.Settings) (*store.DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return store.Open(ctx, cfg)
}

func runMigrate(args []string) int {
	cfg := loadSettings()
	if len(args) < 1 {
		logrus.Fatal("migrate requires 'up' or 'down'")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	migrator, err := store.NewMigrator(cfg.DSN())
	if err != nil {
		logrus.Fatal(err)
	}
	switch args[0] {
	case "up":
		if err := migrator.Up(ctx); err != nil && err != store.ErrNoChange {
			logrus.Fatal(err)
		}
		fmt.Println("Migrations applied")
	case "down":
		if err := migrator.Down(ctx); err != nil && err != store.ErrNoChange {
			logrus.Fatal(err)
		}
		fmt.Println("Migrations rolled back")
	default:
		logrus.Fatal("unknown migrate action; use up|down")
	}
	return 0
}
