package sqlrepo

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/hockey-roster/internal/domain/player"
	"github.com/riskibarqy/hockey-roster/internal/platform/logging"
)

const insertBatchSize = 100

var ErrInvalidStoreName = crerr.New("invalid roster store name")

// Store keeps many rosters in one database, keyed by the roster column.
type Store struct {
	db      *sqlx.DB
	dialect Dialect
	sb      sq.StatementBuilderType
	logger  *logging.Logger
}

func NewStore(db *sqlx.DB, dialect Dialect, logger *logging.Logger) *Store {
	if logger == nil {
		logger = logging.Default()
	}
	return &Store{
		db:      db,
		dialect: dialect,
		sb:      dialect.statementBuilder(),
		logger:  logger.Named("store." + string(dialect)),
	}
}

func (s *Store) Roster(name string) *RosterRepository {
	return &RosterRepository{store: s, name: name}
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// LoadRoster returns the named roster in saved order. An unknown name is an empty roster.
func (s *Store) LoadRoster(ctx context.Context, name string) (player.Roster, error) {
	name, err := storeName(name)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, crerr.Wrap(err, "begin load roster tx")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query, args, err := s.sb.Select(playerColumns...).
		From("players").
		Where(sq.Eq{"roster": name}).
		OrderBy("roster_index").
		ToSql()
	if err != nil {
		return nil, crerr.Wrap(err, "build select players query")
	}
	var rows []playerTableModel
	if err := tx.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrapf(err, "select players for roster %q", name)
	}

	query, args, err = s.sb.Select(photoColumns...).
		From("player_photos").
		Where(sq.Eq{"roster": name}).
		OrderBy("player_id", "ordinal").
		ToSql()
	if err != nil {
		return nil, crerr.Wrap(err, "build select photos query")
	}
	var photoRows []photoTableModel
	if err := tx.SelectContext(ctx, &photoRows, query, args...); err != nil {
		return nil, crerr.Wrapf(err, "select photos for roster %q", name)
	}

	photos := make(map[int][]string)
	for _, row := range photoRows {
		photos[row.PlayerID] = append(photos[row.PlayerID], row.Ref)
	}

	out := make(player.Roster, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toPlayer(photos[row.ID]))
	}
	return out, nil
}

// SaveRoster replaces the named roster in one transaction.
func (s *Store) SaveRoster(ctx context.Context, roster player.Roster, name string) error {
	name, err := storeName(name)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return crerr.Wrap(err, "begin save roster tx")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, table := range []string{"player_photos", "players"} {
		query, args, err := s.sb.Delete(table).Where(sq.Eq{"roster": name}).ToSql()
		if err != nil {
			return crerr.Wrapf(err, "build delete %s query", table)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return crerr.Wrapf(err, "clear %s for roster %q", table, name)
		}
	}

	var photoRows []photoTableModel
	for start := 0; start < len(roster); start += insertBatchSize {
		end := min(start+insertBatchSize, len(roster))
		insert := s.sb.Insert("players").Columns(playerColumns...)
		for i := start; i < end; i++ {
			p := roster[i]
			insert = insert.Values(playerRow(name, i, p).values()...)
			for ordinal, ref := range p.Photos {
				photoRows = append(photoRows, photoTableModel{Roster: name, PlayerID: p.ID, Ordinal: ordinal, Ref: ref})
			}
		}
		if err := execInsert(ctx, tx, insert); err != nil {
			return crerr.Wrapf(err, "insert players for roster %q", name)
		}
	}

	for start := 0; start < len(photoRows); start += insertBatchSize {
		end := min(start+insertBatchSize, len(photoRows))
		insert := s.sb.Insert("player_photos").Columns(photoColumns...)
		for _, row := range photoRows[start:end] {
			insert = insert.Values(row.Roster, row.PlayerID, row.Ordinal, row.Ref)
		}
		if err := execInsert(ctx, tx, insert); err != nil {
			return crerr.Wrapf(err, "insert photos for roster %q", name)
		}
	}

	if err := tx.Commit(); err != nil {
		return crerr.Wrap(err, "commit save roster tx")
	}

	s.logger.InfoContext(ctx, "roster saved", "roster", name, "players", len(roster), "photos", len(photoRows))
	return nil
}

func execInsert(ctx context.Context, tx *sqlx.Tx, insert sq.InsertBuilder) error {
	query, args, err := insert.ToSql()
	if err != nil {
		return crerr.Wrap(err, "build insert query")
	}
	_, err = tx.ExecContext(ctx, query, args...)
	return err
}

func storeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", crerr.Wrap(ErrInvalidStoreName, "name is empty")
	}
	return name, nil
}

// RosterRepository is a Store bound to one roster name.
type RosterRepository struct {
	store *Store
	name  string
}

func (r *RosterRepository) Load(ctx context.Context) (player.Roster, error) {
	return r.store.LoadRoster(ctx, r.name)
}

func (r *RosterRepository) Save(ctx context.Context, roster player.Roster) error {
	return r.store.SaveRoster(ctx, roster, r.name)
}
