// Package verify implements the strict production verification pass. Unlike
// the readiness check it accumulates errors and the command fails when any
// remain.
package verify

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/zentoerp/zentoctl/internal/config"
	"github.com/zentoerp/zentoctl/internal/readiness"
	"github.com/zentoerp/zentoctl/internal/ui"
)

const placeholderSecretKey = "django-insecure-change-this-in-production"

// Pinger is the live-connection probe of the database section.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Cache is the roundtrip probe of the cache section.
type Cache interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
}

// Verifier runs every verification section against a settings snapshot.
// DB may be nil when the connection could not be opened; DBErr then carries
// the open error into the report.
type Verifier struct {
	Settings config.Settings
	Console  *ui.Console
	DB       Pinger
	DBErr    error
	Cache    Cache
	CacheErr error
}

// Report collects the unmet conditions of one verification pass.
type Report struct {
	Errors   []string
	Warnings []string
}

// OK reports whether the configuration can be deployed.
func (r Report) OK() bool { return len(r.Errors) == 0 }

// Run walks every section in order and prints the closing summary.
func (v *Verifier) Run(ctx context.Context) Report {
	v.Console.Warning("🔍 Verificando configuración de producción para " + readiness.TargetDomain + "\n" +
		strings.Repeat("=", 60))

	var rep Report
	v.checkBasicSettings(&rep)
	v.checkDatabase(ctx, &rep)
	v.checkCache(ctx, &rep)
	v.checkTenantConfig(&rep)
	v.checkStaticFiles(&rep)
	v.showSummary(rep)
	return rep
}

func (v *Verifier) checkBasicSettings(rep *Report) {
	v.Console.Plain("\n📋 Configuración básica:")

	if v.Settings.Debug {
		rep.Errors = append(rep.Errors, "DEBUG está activado en producción")
	} else {
		v.Console.Success("✅ DEBUG: False")
	}

	if v.Settings.SecretKey == "" || v.Settings.SecretKey == placeholderSecretKey {
		rep.Errors = append(rep.Errors, "SECRET_KEY no está configurada correctamente")
	} else {
		v.Console.Success("✅ SECRET_KEY: Configurada")
	}

	hosts := v.Settings.AllowedHosts
	if len(hosts) == 0 || (len(hosts) == 1 && hosts[0] == "*") {
		rep.Errors = append(rep.Errors, "ALLOWED_HOSTS no está configurado para producción")
	} else {
		v.Console.Successf("✅ ALLOWED_HOSTS: %s", strings.Join(hosts, ","))
	}
}

func (v *Verifier) checkDatabase(ctx context.Context, rep *Report) {
	v.Console.Plain("\n🗄️  Base de datos:")

	if v.DB == nil {
		rep.Errors = append(rep.Errors, fmt.Sprintf("Error de conexión a base de datos: %v", v.DBErr))
		return
	}
	if err := v.DB.Ping(ctx); err != nil {
		rep.Errors = append(rep.Errors, fmt.Sprintf("Error de conexión a base de datos: %v", err))
		return
	}
	v.Console.Success("✅ Conexión a base de datos: OK")

	if v.Settings.SSLEnabled() {
		v.Console.Success("✅ SSL de DB: Configurado")
	} else {
		rep.Warnings = append(rep.Warnings, "SSL no está configurado para la base de datos")
	}
}

func (v *Verifier) checkCache(ctx context.Context, rep *Report) {
	v.Console.Plain("\n🔄 Cache:")

	if v.Cache == nil {
		rep.Errors = append(rep.Errors, fmt.Sprintf("Error de cache: %v", v.CacheErr))
		return
	}
	const probe = "zentoctl:verify:probe"
	if err := v.Cache.Set(ctx, probe, "test_value", 30*time.Second); err != nil {
		rep.Errors = append(rep.Errors, fmt.Sprintf("Error de cache: %v", err))
		return
	}
	value, err := v.Cache.Get(ctx, probe)
	if err != nil {
		rep.Errors = append(rep.Errors, fmt.Sprintf("Error de cache: %v", err))
		return
	}
	if value != "test_value" {
		rep.Errors = append(rep.Errors, "Cache Redis no está funcionando correctamente")
		return
	}
	v.Console.Success("✅ Cache Redis: Funcionando")
}

func (v *Verifier) checkTenantConfig(rep *Report) {
	v.Console.Plain("\n🏢 Configuración multi-tenant:")

	if v.Settings.TenantModel == nil {
		rep.Errors = append(rep.Errors, "TENANT_MODEL no está configurado")
	} else {
		v.Console.Successf("✅ TENANT_MODEL: %s", *v.Settings.TenantModel)
	}

	if v.Settings.TenantDomainModel == nil {
		rep.Errors = append(rep.Errors, "TENANT_DOMAIN_MODEL no está configurado")
	} else {
		v.Console.Successf("✅ TENANT_DOMAIN_MODEL: %s", *v.Settings.TenantDomainModel)
	}

	if v.Settings.TenantDomain != nil {
		v.Console.Successf("✅ TENANT_DOMAIN: %s", *v.Settings.TenantDomain)
	} else {
		rep.Warnings = append(rep.Warnings, "TENANT_DOMAIN no está configurado")
	}
}

func (v *Verifier) checkStaticFiles(rep *Report) {
	v.Console.Plain("\n📦 Archivos estáticos:")

	if v.Settings.StaticRoot == "" {
		rep.Errors = append(rep.Errors, "STATIC_ROOT no está configurado")
		return
	}
	v.Console.Successf("✅ STATIC_ROOT: %s", v.Settings.StaticRoot)

	if _, err := os.Stat(v.Settings.StaticRoot); err != nil {
		rep.Warnings = append(rep.Warnings, "Directorio STATIC_ROOT no existe (ejecutar collectstatic)")
	} else {
		v.Console.Success("✅ Directorio de archivos estáticos: Existe")
	}
}

func (v *Verifier) showSummary(rep Report) {
	v.Console.Plain("\n" + strings.Repeat("=", 60))

	if len(rep.Errors) > 0 {
		v.Console.Errorf("❌ %d ERROR(ES) ENCONTRADO(S):", len(rep.Errors))
		for _, e := range rep.Errors {
			v.Console.Error("   • " + e)
		}
	}
	if len(rep.Warnings) > 0 {
		v.Console.Warningf("⚠️  %d ADVERTENCIA(S):", len(rep.Warnings))
		for _, w := range rep.Warnings {
			v.Console.Warning("   • " + w)
		}
	}

	switch {
	case len(rep.Errors) == 0 && len(rep.Warnings) == 0:
		v.Console.Success("🎉 ¡Configuración de producción verificada exitosamente!\n" +
			"   La aplicación está lista para " + readiness.TargetDomain)
	case len(rep.Errors) == 0:
		v.Console.Success("✅ Configuración básica correcta con algunas advertencias\n" +
			"   La aplicación puede desplegarse en producción")
	default:
		v.Console.Error("❌ La configuración tiene errores críticos\n" +
			"   Corregir antes de desplegar en producción")
	}
}
