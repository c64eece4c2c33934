// ABOUTME: Database connection, dialect handling and schema migrations.
// ABOUTME: Supports SQLite (default), PostgreSQL and MySQL through database/sql.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/go-sql-driver/mysql"
	"github.com/harperreed/fitness/internal/logging"
	"github.com/harperreed/fitness/internal/storage/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// Dialect names a supported SQL backend.
type Dialect string

const (
	SQLite   Dialect = "sqlite"
	Postgres Dialect = "postgres"
	MySQL    Dialect = "mysql"
)

// ParseDialect maps a backend name to a Dialect.
func ParseDialect(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "sqlite", "sqlite3":
		return SQLite, nil
	case "postgres", "postgresql", "pg":
		return Postgres, nil
	case "mysql", "mariadb":
		return MySQL, nil
	default:
		return "", fmt.Errorf("unknown backend %q (use sqlite, postgres or mysql)", name)
	}
}

func (d Dialect) driverName() string {
	switch d {
	case Postgres:
		return "pgx"
	case MySQL:
		return "mysql"
	default:
		return "sqlite"
	}
}

func (d Dialect) gooseDialect() string {
	switch d {
	case Postgres:
		return "postgres"
	case MySQL:
		return "mysql"
	default:
		return "sqlite3"
	}
}

// rebind rewrites ? placeholders to $n for PostgreSQL.
func (d Dialect) rebind(query string) string {
	if d != Postgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// DB is the relational store behind the gateway and query layer.
type DB struct {
	db      *sql.DB
	dialect Dialect
	log     logging.Logger
}

// Option customizes a DB.
type Option func(*DB)

// WithLogger sets the logger used for gateway and query diagnostics.
func WithLogger(l logging.Logger) Option {
	return func(d *DB) {
		if l != nil {
			d.log = l
		}
	}
}

// Open connects to the backend named by dialect and applies migrations.
// For SQLite, dsn is a file path; its parent directory is created.
func Open(ctx context.Context, dialect Dialect, dsn string, opts ...Option) (*DB, error) {
	if dialect == SQLite && dsn == "" {
		dsn = DefaultDBPath()
	}
	connStr, err := connString(dialect, dsn)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(dialect.driverName(), connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if dialect == SQLite {
		// One writer at a time keeps SQLite away from SQLITE_BUSY.
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if dialect == SQLite {
		if err := os.Chmod(dsn, 0600); err != nil && !os.IsNotExist(err) {
			_ = db.Close()
			return nil, fmt.Errorf("set database permissions: %w", err)
		}
	}

	d := NewWithDB(db, dialect, opts...)
	if err := d.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return d, nil
}

// NewWithDB wraps an existing connection pool without running migrations.
func NewWithDB(db *sql.DB, dialect Dialect, opts ...Option) *DB {
	d := &DB{db: db, dialect: dialect, log: logging.Nop()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func connString(dialect Dialect, dsn string) (string, error) {
	switch dialect {
	case SQLite:
		if err := os.MkdirAll(filepath.Dir(dsn), 0750); err != nil {
			return "", fmt.Errorf("create data directory: %w", err)
		}
		return "file:" + dsn + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", nil
	case Postgres:
		if dsn == "" {
			return "", fmt.Errorf("postgres backend requires a dsn")
		}
		return dsn, nil
	case MySQL:
		cfg, err := mysql.ParseDSN(dsn)
		if err != nil {
			return "", fmt.Errorf("parse mysql dsn: %w", err)
		}
		// Updates that leave a row unchanged must still count it as found.
		cfg.ClientFoundRows = true
		return cfg.FormatDSN(), nil
	default:
		return "", fmt.Errorf("unsupported dialect %q", dialect)
	}
}

var gooseMu sync.Mutex

// Migrate applies all pending schema migrations for the dialect.
func (d *DB) Migrate(ctx context.Context) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect(d.dialect.gooseDialect()); err != nil {
		return fmt.Errorf("set migration dialect: %w", err)
	}
	if err := goose.UpContext(ctx, d.db, string(d.dialect)); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// Dialect reports the backend in use.
func (d *DB) Dialect() Dialect {
	return d.dialect
}

// DataDir returns the default data directory following the XDG base directory layout.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "fitness")
}

// DefaultDBPath returns the default SQLite path following the XDG base directory layout.
func DefaultDBPath() string {
	return filepath.Join(DataDir(), "fitness.db")
}

// Close closes the database connection.
func (d *DB) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}
