package main

import (
	"context"
	"os"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/zentoerp/zentoctl/internal/store"
	"github.com/zentoerp/zentoctl/internal/ui"
)

func runDevConfig() int {
	cfg := loadSettings()
	console := ui.NewConsole(os.Stdout)

	db, err := openStore(cfg)
	if err != nil {
		logrus.Fatalf("database: %v", err)
	}
	defer db.Close()

	repo := store.NewDomainRepo(db)
	ctx := context.Background()

	console.Success("=== CONFIGURACIÓN PARA DESARROLLO LOCAL ===\n")

	tenantDomains, err := repo.ListNonPublic(ctx)
	if err != nil {
		logrus.Fatalf("list domains: %v", err)
	}
	if len(tenantDomains) == 0 {
		console.Warning("No hay dominios de tenants configurados.")
		return 0
	}

	console.Warning("Para que los subdominios funcionen localmente, necesitas:")

	switch runtime.GOOS {
	case "darwin":
		console.Plain("\n1. Agregar estas líneas al archivo /etc/hosts:")
		console.Plain("   sudo nano /etc/hosts\n")
		printHostEntries(console, tenantDomains)
		console.Plain("\n2. O usar dnsmasq para manejar todos los subdominios:")
		console.Plain("   brew install dnsmasq")
		console.Plain(`   echo "address=/.localhost/127.0.0.1" >> /usr/local/etc/dnsmasq.conf`)
		console.Plain("   sudo brew services start dnsmasq")
	case "windows":
		console.Plain("\n1. Agregar estas líneas al archivo C:\\Windows\\System32\\drivers\\etc\\hosts:")
		console.Plain("   (Ejecutar como administrador)\n")
		printHostEntries(console, tenantDomains)
	default:
		console.Plain("\n1. Agregar estas líneas al archivo /etc/hosts:")
		console.Plain("   sudo nano /etc/hosts\n")
		printHostEntries(console, tenantDomains)
	}

	console.Plain("\n" + strings.Repeat("=", 50))
	console.Success("URLs DISPONIBLES:")
	console.Plain(strings.Repeat("=", 50))

	if public, ok, err := repo.PublicPrimary(ctx); err != nil {
		logrus.Fatalf("public domain: %v", err)
	} else if ok {
		console.Plainf("🏠 Página principal: http://%s", public.Domain)
		console.Plainf("👤 Admin: http://%s/admin", public.Domain)
	}

	console.Plain("\n📋 TENANTS DE NUTRICIONISTAS:")
	for _, d := range tenantDomains {
		console.Plainf("   %s: http://%s", d.TenantName, d.Domain)
	}

	console.Plain("\n" + strings.Repeat("=", 50))
	console.Warning("ALTERNATIVA SIN CONFIGURAR /etc/hosts:")
	console.Plain(strings.Repeat("=", 50))
	console.Plain("Si no quieres modificar /etc/hosts, puedes:")
	console.Plain("1. Acceder siempre desde: http://localhost:8000")
	console.Plain("2. El sistema te redirigirá automáticamente al tenant correcto")
	return 0
}

func printHostEntries(console *ui.Console, list []store.Domain) {
	for _, d := range list {
		host := strings.TrimSuffix(d.Domain, ":8000")
		console.Plainf("   127.0.0.1    %s", host)
	}
}
