package readiness

import (
	"bytes"
	"strings"
	"testing"

	"github.com/zentoerp/zentoctl/internal/config"
	"github.com/zentoerp/zentoctl/internal/ui"
)

func render(cfg config.Settings) string {
	var buf bytes.Buffer
	Run(cfg, ui.NewConsole(&buf))
	return buf.String()
}

func strPtr(s string) *string { return &s }

func TestBannerAndSummaryAlwaysPrinted(t *testing.T) {
	out := render(config.Settings{})
	if !strings.Contains(out, "🎯 Verificando configuración para producción en Render") {
		t.Fatalf("missing banner:\n%s", out)
	}
	if !strings.Contains(out, "🎉 Configuración base lista para producción!") {
		t.Fatalf("missing closing summary:\n%s", out)
	}
	for _, want := range []string{"SECRET_KEY", "DEBUG", "ALLOWED_HOSTS", "DB_*", "REDIS_URL"} {
		if !strings.Contains(out, want) {
			t.Errorf("checklist missing %s", want)
		}
	}
}

func TestDebugWarning(t *testing.T) {
	const warning = "⚠️  Ejecutando en modo DEBUG (desarrollo)"
	if out := render(config.Settings{Debug: true}); !strings.Contains(out, warning) {
		t.Fatalf("expected DEBUG warning:\n%s", out)
	}
	if out := render(config.Settings{Debug: false}); strings.Contains(out, warning) {
		t.Fatalf("unexpected DEBUG warning:\n%s", out)
	}
}

func TestInsecureSecretKeyWarning(t *testing.T) {
	const warning = "⚠️  SECRET_KEY de desarrollo detectada"
	out := render(config.Settings{SecretKey: "django-insecure-abc123"})
	if !strings.Contains(out, warning) {
		t.Fatalf("expected insecure key warning:\n%s", out)
	}
	out = render(config.Settings{SecretKey: "prod-key-9000"})
	if strings.Contains(out, warning) {
		t.Fatalf("unexpected insecure key warning:\n%s", out)
	}
}

func TestTenantDomainCheck(t *testing.T) {
	out := render(config.Settings{TenantDomain: strPtr("acme.zentoerp.com")})
	if !strings.Contains(out, "✅ TENANT_DOMAIN configurado: acme.zentoerp.com") {
		t.Fatalf("expected success line with domain:\n%s", out)
	}
	out = render(config.Settings{})
	if !strings.Contains(out, "❌ TENANT_DOMAIN no configurado") {
		t.Fatalf("expected error line:\n%s", out)
	}
}

func TestAllowedHostsCheck(t *testing.T) {
	out := render(config.Settings{AllowedHosts: []string{"zentoerp.com", "*.zentoerp.com"}})
	if !strings.Contains(out, "✅ ALLOWED_HOSTS incluye *.zentoerp.com") {
		t.Fatalf("expected success line:\n%s", out)
	}
	out = render(config.Settings{AllowedHosts: []string{"zentoerp.com"}})
	if !strings.Contains(out, "❌ ALLOWED_HOSTS no incluye *.zentoerp.com") {
		t.Fatalf("expected error line:\n%s", out)
	}
}

func TestTenantModelCheckIsAsymmetric(t *testing.T) {
	const success = "✅ Modelos de tenant configurados correctamente"
	out := render(config.Settings{TenantModel: strPtr("tenants.Tenant")})
	if !strings.Contains(out, success) {
		t.Fatalf("expected tenant model success:\n%s", out)
	}
	// Mismatch and absence both stay silent; there is no error substitute.
	for _, cfg := range []config.Settings{
		{TenantModel: strPtr("tenants.Other")},
		{},
	} {
		out := render(cfg)
		if strings.Contains(out, success) {
			t.Fatalf("unexpected tenant model success:\n%s", out)
		}
		if strings.Contains(out, "❌ TENANT_MODEL") {
			t.Fatalf("tenant model check should not emit an error line:\n%s", out)
		}
	}
}

func TestSummaryTenantModelValue(t *testing.T) {
	out := render(config.Settings{TenantModel: strPtr("tenants.Tenant")})
	if !strings.Contains(out, "Modelo tenant: tenants.Tenant") {
		t.Fatalf("summary should embed tenant model:\n%s", out)
	}
	out = render(config.Settings{})
	if !strings.Contains(out, "Modelo tenant: No configurado") {
		t.Fatalf("summary should show placeholder when absent:\n%s", out)
	}
}
