// Package migrate applies the embedded SQL schema migrations.
package migrate

import (
	"embed"
	"net/url"

	"kindling/internal/errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	pgLib "github.com/slighter12/go-lib/database/postgres"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// NewMigrator builds a migrate instance over the embedded migration files.
func NewMigrator(conn *pgLib.DBConn) (*migrate.Migrate, error) {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create migration source")
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, databaseURL(conn))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create migrator")
	}

	return m, nil
}

// Up applies all pending migrations. A schema already at the newest version
// is not an error.
func Up(conn *pgLib.DBConn) error {
	m, err := NewMigrator(conn)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "failed to run migrations")
	}

	return nil
}

// databaseURL renders the master connection settings as a postgres URL for
// the migrate driver.
func databaseURL(conn *pgLib.DBConn) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(conn.Master.UserName, conn.Master.Password),
		Host:   conn.Master.Host + ":" + conn.Master.Port,
		Path:   "/" + conn.Database,
	}

	query := url.Values{}
	if conn.SSLMode != "" {
		query.Set("sslmode", conn.SSLMode)
	}
	u.RawQuery = query.Encode()

	return u.String()
}
