package sqlrepo

import (
	"database/sql"
	stderrors "errors"

	crerr "github.com/cockroachdb/errors"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/riskibarqy/hockey-roster/db/migrations"
)

// Migrator runs the embedded schema against a dedicated connection.
type Migrator struct {
	*migrate.Migrate
	db *sql.DB
}

// Close releases the migration source and the connection.
func (m *Migrator) Close() error {
	srcErr, dbErr := m.Migrate.Close()
	return stderrors.Join(srcErr, dbErr, m.db.Close())
}

func NewMigrator(opts OpenOptions) (*Migrator, error) {
	driverName, err := opts.Dialect.driverName()
	if err != nil {
		return nil, err
	}
	dsn, err := opts.dataSourceName()
	if err != nil {
		return nil, err
	}

	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, crerr.Wrap(err, "open embedded migrations")
	}

	sqlDB, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, crerr.Wrapf(err, "open %s for migrations", opts.Dialect)
	}

	var driver database.Driver
	switch opts.Dialect {
	case DialectPostgres:
		driver, err = pgmigrate.WithInstance(sqlDB, &pgmigrate.Config{})
	case DialectSQLite:
		driver, err = sqlitemigrate.WithInstance(sqlDB, &sqlitemigrate.Config{})
	}
	if err != nil {
		_ = sqlDB.Close()
		return nil, crerr.Wrapf(err, "create %s migration driver", opts.Dialect)
	}

	m, err := migrate.NewWithInstance("iofs", src, string(opts.Dialect), driver)
	if err != nil {
		_ = sqlDB.Close()
		return nil, crerr.Wrap(err, "create migrator")
	}
	return &Migrator{Migrate: m, db: sqlDB}, nil
}

// MigrateUp applies every pending migration. An up-to-date schema is not an error.
func MigrateUp(opts OpenOptions) (err error) {
	m, err := NewMigrator(opts)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := m.Close(); err == nil && closeErr != nil {
			err = crerr.Wrap(closeErr, "close migrator")
		}
	}()

	if err := m.Up(); err != nil && !stderrors.Is(err, migrate.ErrNoChange) {
		return crerr.Wrap(err, "apply migrations")
	}
	return nil
}
