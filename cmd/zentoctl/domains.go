package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/zentoerp/zentoctl/internal/domains"
	"github.com/zentoerp/zentoctl/internal/store"
	"github.com/zentoerp/zentoctl/internal/ui"
)

func runDomains(args []string) int {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "zentoctl domains check | setup [--base-domain ...] [--port ...]")
		return 2
	}
	switch args[0] {
	case "check":
		return runDomainsCheck()
	case "setup":
		return runDomainsSetup(args[1:])
	default:
		fmt.Fprintln(os.Stderr, "zentoctl domains check | setup [--base-domain ...] [--port ...]")
		return 2
	}
}

func runDomainsCheck() int {
	cfg := loadSettings()
	console := ui.NewConsole(os.Stdout)

	db, err := openStore(cfg)
	if err != nil {
		logrus.Fatalf("database: %v", err)
	}
	defer db.Close()

	repo := store.NewDomainRepo(db)
	ctx := context.Background()

	all, err := repo.ListAll(ctx)
	if err != nil {
		logrus.Fatalf("list domains: %v", err)
	}

	console.Plain("=== Revisión de Dominios Actuales ===")
	var invalid []store.Domain
	for _, d := range all {
		console.Plainf("- %s (tenant: %s)", d.Domain, d.TenantSchema)
		if domains.Valid(d.Domain) {
			continue
		}
		invalid = append(invalid, d)
		fix := domains.SuggestedFix(d.Domain)
		console.Warningf("  ⚠️  Dominio inválido (contiene _): %s", d.Domain)
		console.Successf("  ✅ Sugiriendo cambio a: %s", fix)
		exists, err := repo.Exists(ctx, fix)
		if err != nil {
			logrus.Fatalf("check domain: %v", err)
		}
		if exists {
			console.Errorf("  ❌ El dominio %s ya existe", fix)
		}
	}

	console.Plain("\n=== Análisis de Problemas RFC ===")
	if len(invalid) > 0 {
		console.Plainf("Encontrados %d dominios inválidos con guión bajo:", len(invalid))
		for _, d := range invalid {
			console.Plainf("  - %s", d.Domain)
		}
		return 1
	}
	console.Success("✅ Todos los dominios son válidos según RFC 1034/1035")
	return 0
}

func runDomainsSetup(args []string) int {
	fs := flag.NewFlagSet("domains setup", flag.ExitOnError)
	baseDomain := fs.String("base-domain", "", "base domain (ej: zentoerp.com para producción, localhost para desarrollo)")
	port := fs.String("port", "8000", "development port (only used with localhost)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg := loadSettings()
	console := ui.NewConsole(os.Stdout)

	base := strings.TrimSpace(*baseDomain)
	if base == "" {
		if !cfg.Debug {
			console.Error("❌ En producción debes especificar --base-domain")
			console.Plain("Ejemplo: zentoctl domains setup --base-domain zentoerp.com")
			return 2
		}
		base = "localhost"
		console.Success("🔧 Entorno de desarrollo detectado")
	}
	if base == "localhost" {
		console.Successf("🌐 Usando puerto %s para desarrollo", *port)
	}

	db, err := openStore(cfg)
	if err != nil {
		logrus.Fatalf("database: %v", err)
	}
	defer db.Close()

	tenants := store.NewTenantRepo(db)
	dom := store.NewDomainRepo(db)
	ctx := context.Background()

	list, err := tenants.ListNonPublic(ctx)
	if err != nil {
		logrus.Fatalf("list tenants: %v", err)
	}

	created := 0
	for _, tenant := range list {
		primary, ok, err := dom.PrimaryFor(ctx, tenant.ID)
		if err != nil {
			logrus.Fatalf("primary domain: %v", err)
		}
		if ok {
			console.Successf("✅ Tenant %s ya tiene dominio: %s", tenant.Name, primary.Domain)
			continue
		}
		subdomain := domains.SubdomainFor(tenant.SchemaName, base, *port)
		exists, err := dom.Exists(ctx, subdomain)
		if err != nil {
			logrus.Fatalf("check domain: %v", err)
		}
		if exists {
			console.Warningf("⚠️  Dominio ya existe: %s", subdomain)
			continue
		}
		err = db.WithTx(ctx, func(tx *gorm.DB) error {
			_, err := dom.Create(ctx, tx, tenant.ID, subdomain, true)
			return err
		})
		if err != nil {
			logrus.Fatalf("create domain: %v", err)
		}
		created++
		console.Successf("✅ Dominio creado: %s -> %s", subdomain, tenant.Name)
	}

	if created > 0 {
		console.Successf("\n🎉 Se crearon %d dominios nuevos", created)
		if !cfg.Debug {
			console.Warning("\n⚠️  IMPORTANTE PARA PRODUCCIÓN:")
			console.Warning("1. Configura tu servidor web (Nginx/Apache) para manejar subdominios")
			console.Warning("2. Configura DNS wildcard: *.tu-dominio.com")
			console.Warning("3. Configura SSL para todos los subdominios")
		}
	} else {
		console.Success("\n✅ Todos los tenants ya tienen dominios configurados")
	}
	return 0
}
