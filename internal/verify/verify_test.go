package verify

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/zentoerp/zentoctl/internal/config"
	"github.com/zentoerp/zentoctl/internal/ui"
)

type fakePinger struct{ err error }

func (f fakePinger) Ping(ctx context.Context) error { return f.err }

type fakeCache struct {
	values map[string]string
	setErr error
	getErr error
}

func (f *fakeCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	if f.values == nil {
		f.values = map[string]string{}
	}
	f.values[key] = value
	return nil
}

func (f *fakeCache) Get(ctx context.Context, key string) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	return f.values[key], nil
}

func strPtr(s string) *string { return &s }

func productionSettings(t *testing.T) config.Settings {
	return config.Settings{
		Debug:             false,
		SecretKey:         "k3y-for-production",
		AllowedHosts:      []string{"zentoerp.com", "*.zentoerp.com"},
		TenantModel:       strPtr("tenants.Tenant"),
		TenantDomainModel: strPtr("tenants.Domain"),
		TenantDomain:      strPtr("zentoerp.com"),
		StaticRoot:        t.TempDir(),
		Database:          config.Database{SSLMode: "require"},
	}
}

func runVerifier(v *Verifier) (Report, string) {
	var buf bytes.Buffer
	v.Console = ui.NewConsole(&buf)
	rep := v.Run(context.Background())
	return rep, buf.String()
}

func TestCleanConfiguration(t *testing.T) {
	v := &Verifier{Settings: productionSettings(t), DB: fakePinger{}, Cache: &fakeCache{}}
	rep, out := runVerifier(v)
	if !rep.OK() {
		t.Fatalf("expected clean report, got errors: %v", rep.Errors)
	}
	if len(rep.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", rep.Warnings)
	}
	if !strings.Contains(out, "🎉 ¡Configuración de producción verificada exitosamente!") {
		t.Fatalf("missing success summary:\n%s", out)
	}
}

func TestDebugOnIsAnError(t *testing.T) {
	cfg := productionSettings(t)
	cfg.Debug = true
	v := &Verifier{Settings: cfg, DB: fakePinger{}, Cache: &fakeCache{}}
	rep, out := runVerifier(v)
	if rep.OK() {
		t.Fatal("expected errors")
	}
	if rep.Errors[0] != "DEBUG está activado en producción" {
		t.Fatalf("unexpected error: %s", rep.Errors[0])
	}
	if !strings.Contains(out, "1 ERROR(ES) ENCONTRADO(S)") {
		t.Fatalf("missing error count:\n%s", out)
	}
}

func TestPlaceholderSecretKeyRejected(t *testing.T) {
	cfg := productionSettings(t)
	cfg.SecretKey = "django-insecure-change-this-in-production"
	v := &Verifier{Settings: cfg, DB: fakePinger{}, Cache: &fakeCache{}}
	rep, _ := runVerifier(v)
	if rep.OK() {
		t.Fatal("expected placeholder key to be rejected")
	}
}

func TestDatabaseFailuresAreReported(t *testing.T) {
	cfg := productionSettings(t)
	v := &Verifier{Settings: cfg, DBErr: errors.New("dial refused"), Cache: &fakeCache{}}
	rep, _ := runVerifier(v)
	if rep.OK() {
		t.Fatal("expected DB error")
	}
	found := false
	for _, e := range rep.Errors {
		if strings.Contains(e, "dial refused") {
			found = true
		}
	}
	if !found {
		t.Fatalf("open error not carried into report: %v", rep.Errors)
	}
}

func TestDisabledSSLIsAWarning(t *testing.T) {
	cfg := productionSettings(t)
	cfg.Database.SSLMode = "disable"
	v := &Verifier{Settings: cfg, DB: fakePinger{}, Cache: &fakeCache{}}
	rep, out := runVerifier(v)
	if !rep.OK() {
		t.Fatalf("SSL off should not be an error: %v", rep.Errors)
	}
	if len(rep.Warnings) != 1 {
		t.Fatalf("expected one warning, got %v", rep.Warnings)
	}
	if !strings.Contains(out, "✅ Configuración básica correcta con algunas advertencias") {
		t.Fatalf("missing warnings summary:\n%s", out)
	}
}

func TestCacheRoundtripFailure(t *testing.T) {
	cfg := productionSettings(t)
	v := &Verifier{Settings: cfg, DB: fakePinger{}, Cache: &fakeCache{getErr: errors.New("timeout")}}
	rep, _ := runVerifier(v)
	if rep.OK() {
		t.Fatal("expected cache error")
	}
}

func TestMissingTenantConfig(t *testing.T) {
	cfg := productionSettings(t)
	cfg.TenantModel = nil
	cfg.TenantDomainModel = nil
	cfg.TenantDomain = nil
	v := &Verifier{Settings: cfg, DB: fakePinger{}, Cache: &fakeCache{}}
	rep, _ := runVerifier(v)
	if len(rep.Errors) != 2 {
		t.Fatalf("expected two tenant errors, got %v", rep.Errors)
	}
	if len(rep.Warnings) != 1 {
		t.Fatalf("TENANT_DOMAIN absence should only warn, got %v", rep.Warnings)
	}
}

func TestStaticRootChecks(t *testing.T) {
	cfg := productionSettings(t)
	cfg.StaticRoot = ""
	v := &Verifier{Settings: cfg, DB: fakePinger{}, Cache: &fakeCache{}}
	rep, _ := runVerifier(v)
	if rep.OK() {
		t.Fatal("missing STATIC_ROOT should be an error")
	}

	cfg = productionSettings(t)
	cfg.StaticRoot = cfg.StaticRoot + "/does-not-exist"
	v = &Verifier{Settings: cfg, DB: fakePinger{}, Cache: &fakeCache{}}
	rep, _ = runVerifier(v)
	if !rep.OK() {
		t.Fatalf("absent directory should only warn: %v", rep.Errors)
	}
	if len(rep.Warnings) != 1 {
		t.Fatalf("expected collectstatic warning, got %v", rep.Warnings)
	}
}
