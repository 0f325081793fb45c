package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/zentoerp/zentoctl/internal/store"
	"github.com/zentoerp/zentoctl/internal/ui"
)

func runTenant(args []string) int {
	if len(args) < 1 || args[0] != "create" {
		fmt.Fprintln(os.Stderr, "zentoctl tenant create <schema> <domain> <name> <email> [--phone ...] [--notes ...]")
		return 2
	}
	return runTenantCreate(args[1:])
}

func runTenantCreate(args []string) int {
	fs := flag.NewFlagSet("tenant create", flag.ExitOnError)
	phone := fs.String("phone", "+34600000000", "tenant contact phone")
	notes := fs.String("notes", "", "additional tenant notes")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "zentoctl tenant create <schema> <domain> <name> <email> [--phone ...] [--notes ...]")
	}

	// Flags come after the four positional arguments.
	if len(args) < 4 {
		fs.Usage()
		return 2
	}
	schema, domainName, name, email := args[0], args[1], args[2], args[3]
	if err := fs.Parse(args[4:]); err != nil {
		return 2
	}

	cfg := loadSettings()
	console := ui.NewConsole(os.Stdout)

	db, err := openStore(cfg)
	if err != nil {
		logrus.Fatalf("database: %v", err)
	}
	defer db.Close()

	tenants := store.NewTenantRepo(db)
	dom := store.NewDomainRepo(db)

	ctx := context.Background()
	err = db.WithTx(ctx, func(tx *gorm.DB) error {
		tenantID, err := tenants.Create(ctx, tx, store.Tenant{
			SchemaName: schema,
			Name:       name,
			Email:      email,
			Slug:       slugify(schema),
			Phone:      *phone,
			Notes:      *notes,
			Status:     store.StatusActive,
			IsActive:   true,
		})
		if err != nil {
			return err
		}
		_, err = dom.Create(ctx, tx, tenantID, domainName, true)
		return err
	})
	if err != nil {
		console.Errorf("❌ Error al crear tenant: %v", err)
		return 1
	}

	console.Success(fmt.Sprintf("✅ Tenant \"%s\" creado exitosamente\n", name) +
		fmt.Sprintf("   - Schema: %s\n", schema) +
		fmt.Sprintf("   - Dominio: %s\n", domainName) +
		fmt.Sprintf("   - Estado: %s\n", store.StatusActive) +
		fmt.Sprintf("   - Accesible en: https://%s", domainName))
	return 0
}

func slugify(schema string) string {
	return strings.ReplaceAll(strings.ToLower(schema), "_", "-")
}
