package store

import (
	"context"
	"database/sql"
	errs "errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/zentoerp/zentoctl/internal/config"
)

var ErrNoChange = errs.New("no change")

// PublicSchema is the shared (non-tenant) schema name.
const PublicSchema = "public"

// Tenant status values.
const (
	StatusPending   = "PENDING"
	StatusActive    = "ACTIVE"
	StatusSuspended = "SUSPENDED"
	StatusInactive  = "INACTIVE"
)

// DB wraps gorm.DB for repositories and exposes Close.
type DB struct {
	gorm *gorm.DB
	sql  *sql.DB
}

func (d *DB) Close() error   { return d.sql.Close() }
func (d *DB) Gorm() *gorm.DB { return d.gorm }

// Ping verifies the connection is alive.
func (d *DB) Ping(ctx context.Context) error { return d.sql.PingContext(ctx) }

// Open connects to Postgres per config.
func Open(ctx context.Context, cfg config.Settings) (*DB, error) {
	dsn := cfg.DSN()
	if cfg.Database.Name == "" {
		return nil, fmt.Errorf("missing DB_NAME")
	}
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	sdb, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sdb.SetConnMaxLifetime(30 * time.Minute)
	sdb.SetMaxOpenConns(10)
	sdb.SetMaxIdleConns(5)
	if err := sdb.PingContext(ctx); err != nil {
		return nil, err
	}
	return &DB{gorm: gdb, sql: sdb}, nil
}

// Tenant is one isolated customer context, addressed by subdomain.
type Tenant struct {
	ID         uuid.UUID
	SchemaName string
	Name       string
	Email      string
	Slug       string
	Phone      string
	Notes      string
	Status     string
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Domain maps a hostname to a tenant. A tenant has at most one primary domain.
type Domain struct {
	ID           uuid.UUID
	TenantID     uuid.UUID
	Domain       string
	IsPrimary    bool
	TenantSchema string
	TenantName   string
}

// WithTx executes fn within a database transaction.
func (d *DB) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return d.gorm.WithContext(ctx).Transaction(fn)
}

// TenantRepo basic operations.
type TenantRepo struct{ db *DB }

func NewTenantRepo(db *DB) *TenantRepo { return &TenantRepo{db: db} }

func (r *TenantRepo) Create(ctx context.Context, tx *gorm.DB, t Tenant) (uuid.UUID, error) {
	id := uuid.New()
	err := tx.Exec(`INSERT INTO tenants(id, schema_name, name, email, slug, phone, notes, status, is_active)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		id, t.SchemaName, t.Name, t.Email, t.Slug, t.Phone, t.Notes, t.Status, t.IsActive,
	).Error
	if err != nil {
		return uuid.Nil, wrap(err, "create tenant")
	}
	return id, nil
}

// ListNonPublic returns every tenant except the shared public schema.
func (r *TenantRepo) ListNonPublic(ctx context.Context) ([]Tenant, error) {
	rows, err := r.db.gorm.WithContext(ctx).Raw(
		`SELECT id, schema_name, name, email, slug, phone, notes, status, is_active, created_at, updated_at
		 FROM tenants WHERE schema_name <> ? ORDER BY schema_name`, PublicSchema).Rows()
	if err != nil {
		return nil, wrap(err, "list tenants")
	}
	defer rows.Close()
	var out []Tenant
	for rows.Next() {
		var t Tenant
		if err := rows.Scan(&t.ID, &t.SchemaName, &t.Name, &t.Email, &t.Slug, &t.Phone, &t.Notes, &t.Status, &t.IsActive, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, wrap(err, "scan tenant")
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *TenantRepo) GetBySchema(ctx context.Context, schema string) (Tenant, error) {
	row := r.db.gorm.WithContext(ctx).Raw(
		`SELECT id, schema_name, name, email, slug, phone, notes, status, is_active, created_at, updated_at
		 FROM tenants WHERE schema_name = ?`, schema).Row()
	var t Tenant
	if err := row.Scan(&t.ID, &t.SchemaName, &t.Name, &t.Email, &t.Slug, &t.Phone, &t.Notes, &t.Status, &t.IsActive, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return Tenant{}, wrap(err, "get tenant")
	}
	return t, nil
}

// DomainRepo basic operations.
type DomainRepo struct{ db *DB }

func NewDomainRepo(db *DB) *DomainRepo { return &DomainRepo{db: db} }

func (r *DomainRepo) Create(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, domain string, primary bool) (uuid.UUID, error) {
	id := uuid.New()
	err := tx.Exec(`INSERT INTO domains(id, tenant_id, domain, is_primary) VALUES (?,?,?,?)`,
		id, tenantID, domain, primary).Error
	if err != nil {
		return uuid.Nil, wrap(err, "create domain")
	}
	return id, nil
}

func (r *DomainRepo) list(ctx context.Context, query string, args ...any) ([]Domain, error) {
	rows, err := r.db.gorm.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, wrap(err, "list domains")
	}
	defer rows.Close()
	var out []Domain
	for rows.Next() {
		var d Domain
		if err := rows.Scan(&d.ID, &d.TenantID, &d.Domain, &d.IsPrimary, &d.TenantSchema, &d.TenantName); err != nil {
			return nil, wrap(err, "scan domain")
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// ListAll returns every domain joined with its tenant schema.
func (r *DomainRepo) ListAll(ctx context.Context) ([]Domain, error) {
	return r.list(ctx, `SELECT d.id, d.tenant_id, d.domain, d.is_primary, t.schema_name, t.name
		FROM domains d JOIN tenants t ON t.id = d.tenant_id ORDER BY d.domain`)
}

// ListNonPublic returns domains of every tenant except the public schema.
func (r *DomainRepo) ListNonPublic(ctx context.Context) ([]Domain, error) {
	return r.list(ctx, `SELECT d.id, d.tenant_id, d.domain, d.is_primary, t.schema_name, t.name
		FROM domains d JOIN tenants t ON t.id = d.tenant_id
		WHERE t.schema_name <> ? ORDER BY d.domain`, PublicSchema)
}

// PrimaryFor returns the primary domain of a tenant, or ok=false when none exists.
func (r *DomainRepo) PrimaryFor(ctx context.Context, tenantID uuid.UUID) (Domain, bool, error) {
	domains, err := r.list(ctx, `SELECT d.id, d.tenant_id, d.domain, d.is_primary, t.schema_name, t.name
		FROM domains d JOIN tenants t ON t.id = d.tenant_id
		WHERE d.tenant_id = ? AND d.is_primary ORDER BY d.domain LIMIT 1`, tenantID)
	if err != nil {
		return Domain{}, false, err
	}
	if len(domains) == 0 {
		return Domain{}, false, nil
	}
	return domains[0], true, nil
}

// PublicPrimary returns the primary domain of the public tenant, if configured.
func (r *DomainRepo) PublicPrimary(ctx context.Context) (Domain, bool, error) {
	domains, err := r.list(ctx, `SELECT d.id, d.tenant_id, d.domain, d.is_primary, t.schema_name, t.name
		FROM domains d JOIN tenants t ON t.id = d.tenant_id
		WHERE t.schema_name = ? AND d.is_primary LIMIT 1`, PublicSchema)
	if err != nil {
		return Domain{}, false, err
	}
	if len(domains) == 0 {
		return Domain{}, false, nil
	}
	return domains[0], true, nil
}

// Exists reports whether a hostname is already registered.
func (r *DomainRepo) Exists(ctx context.Context, domain string) (bool, error) {
	var n int64
	err := r.db.gorm.WithContext(ctx).Raw(`SELECT count(*) FROM domains WHERE domain = ?`, domain).Scan(&n).Error
	if err != nil {
		return false, wrap(err, "check domain")
	}
	return n > 0, nil
}

// Helper error wrap
func wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, msg)
}
