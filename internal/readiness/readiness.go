// Package readiness implements the advisory production readiness check for
// the zentoerp.com deployment. Every unmet condition is reported as a styled
// line but never fails the command.
package readiness

import (
	"strings"

	"github.com/zentoerp/zentoctl/internal/config"
	"github.com/zentoerp/zentoctl/internal/ui"
)

const (
	// TargetDomain is the production apex domain.
	TargetDomain = "zentoerp.com"
	// WildcardHost is the host header pattern tenant subdomains resolve under.
	WildcardHost = "*.zentoerp.com"
	// TenantModel is the expected tenant entity identifier.
	TenantModel = "tenants.Tenant"

	// insecureKeyMarker is the placeholder prefix shipped with development keys.
	insecureKeyMarker = "django-insecure"

	notConfigured = "No configurado"
)

// Run evaluates each readiness condition in fixed order and writes one styled
// block per check. It never returns an error: problems are advisory.
func Run(cfg config.Settings, console *ui.Console) {
	console.Success("🎯 Verificando configuración para producción en Render\n" + strings.Repeat("=", 60))

	if cfg.Debug {
		console.Warning("⚠️  Ejecutando en modo DEBUG (desarrollo)\n" +
			"   En producción, Render configurará DEBUG=False automáticamente")
	}

	if strings.Contains(cfg.SecretKey, insecureKeyMarker) {
		console.Warning("⚠️  SECRET_KEY de desarrollo detectada\n" +
			"   En producción, configurar SECRET_KEY segura en variables de entorno")
	}

	if cfg.TenantDomain != nil {
		console.Successf("✅ TENANT_DOMAIN configurado: %s", *cfg.TenantDomain)
	} else {
		console.Error("❌ TENANT_DOMAIN no configurado")
	}

	if hasWildcardHost(cfg.AllowedHosts) {
		console.Success("✅ ALLOWED_HOSTS incluye " + WildcardHost)
	} else {
		console.Error("❌ ALLOWED_HOSTS no incluye " + WildcardHost)
	}

	// Asymmetric on purpose: absence or mismatch prints nothing here.
	if cfg.TenantModel != nil && *cfg.TenantModel == TenantModel {
		console.Success("✅ Modelos de tenant configurados correctamente")
	}

	console.Success("\n🎉 Configuración base lista para producción!\n" +
		"   Dominio objetivo: " + TargetDomain + "\n" +
		"   Subdominios: " + WildcardHost + "\n" +
		"   Modelo tenant: " + tenantModelValue(cfg) + "\n" +
		"\n📋 Pasos para producción:\n" +
		"   1. Crear servicios en Render (PostgreSQL, Redis, Web)\n" +
		"   2. Configurar variables de entorno en Render\n" +
		"   3. Configurar DNS (A record + CNAME *)\n" +
		"   4. Deploy automático desde branch production\n" +
		"\n🔧 Variables críticas para Render:\n" +
		"   - SECRET_KEY: Generar clave segura\n" +
		"   - DEBUG: False\n" +
		"   - ALLOWED_HOSTS: zentoerp.com,*.zentoerp.com\n" +
		"   - DB_* : Credenciales de PostgreSQL\n" +
		"   - REDIS_URL: URL de Redis\n")
}

func hasWildcardHost(hosts []string) bool {
	for _, h := range hosts {
		if h == WildcardHost {
			return true
		}
	}
	return false
}

func tenantModelValue(cfg config.Settings) string {
	if cfg.TenantModel == nil {
		return notConfigured
	}
	return *cfg.TenantModel
}
