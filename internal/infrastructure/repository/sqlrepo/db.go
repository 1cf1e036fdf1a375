package sqlrepo

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	sq "github.com/Masterminds/squirrel"
	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	_ "modernc.org/sqlite"
)

// Dialect selects the SQL engine behind a roster store.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

var ErrUnknownDialect = crerr.New("unknown sql dialect")

const maxTracedQueryLength = 512

var queryWhitespaceRegex = regexp.MustCompile(`\s+`)

func (d Dialect) driverName() (string, error) {
	switch d {
	case DialectPostgres:
		return "postgres", nil
	case DialectSQLite:
		return "sqlite", nil
	default:
		return "", crerr.Wrapf(ErrUnknownDialect, "%q", string(d))
	}
}

func (d Dialect) statementBuilder() sq.StatementBuilderType {
	if d == DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// OpenOptions describes one database connection.
type OpenOptions struct {
	Dialect Dialect
	// DSN is a PostgreSQL URL or keyword string, or a SQLite file path.
	DSN string
	// DisablePreparedBinaryResult is forwarded to poolers that need text results.
	DisablePreparedBinaryResult bool
}

// Open connects with otel instrumentation and verifies the connection.
func Open(ctx context.Context, opts OpenOptions) (*sqlx.DB, error) {
	driver, err := opts.Dialect.driverName()
	if err != nil {
		return nil, err
	}
	dsn, err := opts.dataSourceName()
	if err != nil {
		return nil, err
	}

	dbName := dbNameFromURL(opts.DSN)
	if opts.Dialect == DialectSQLite {
		dbName = filepath.Base(opts.DSN)
	}

	db, err := otelsqlx.Open(driver, dsn,
		otelsql.WithDBName(dbName),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, crerr.Wrapf(err, "open %s database", opts.Dialect)
	}
	if opts.Dialect == DialectSQLite {
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, crerr.Wrapf(err, "ping %s database", opts.Dialect)
	}
	otelsql.ReportDBStatsMetrics(db.DB, otelsql.WithDBName(dbName))

	return db, nil
}

func (o OpenOptions) dataSourceName() (string, error) {
	raw := strings.TrimSpace(o.DSN)
	if raw == "" {
		return "", crerr.Newf("%s dsn is required", o.Dialect)
	}
	switch o.Dialect {
	case DialectPostgres:
		return normalizeDBURL(raw, o.DisablePreparedBinaryResult), nil
	case DialectSQLite:
		if dir := filepath.Dir(raw); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return "", crerr.Wrapf(err, "create sqlite dir %q", dir)
			}
		}
		return SQLiteDSN(raw), nil
	default:
		return "", crerr.Wrapf(ErrUnknownDialect, "%q", string(o.Dialect))
	}
}

// SQLiteDSN turns a file path into a modernc DSN with foreign keys enforced.
func SQLiteDSN(path string) string {
	return "file:" + filepath.Clean(path) + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}

func formatDBQueryForTrace(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	normalized := queryWhitespaceRegex.ReplaceAllString(query, " ")
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}

	return normalized[:maxTracedQueryLength] + "..."
}

func normalizeDBURL(raw string, disablePreparedBinaryResult bool) string {
	if !disablePreparedBinaryResult {
		return raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed == nil || parsed.Scheme == "" {
		return raw
	}

	query := parsed.Query()
	if query.Get("disable_prepared_binary_result") == "" {
		query.Set("disable_prepared_binary_result", "yes")
		parsed.RawQuery = query.Encode()
	}

	return parsed.String()
}

func dbNameFromURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	parsed, err := url.Parse(trimmed)
	if err == nil && parsed != nil && parsed.Scheme != "" {
		name := strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/"))
		if name != "" {
			return name
		}
	}

	for _, token := range strings.Fields(trimmed) {
		if !strings.HasPrefix(token, "dbname=") {
			continue
		}
		name := strings.TrimSpace(strings.TrimPrefix(token, "dbname="))
		name = strings.Trim(name, `"'`)
		if name != "" {
			return name
		}
	}

	return ""
}
