package file

import (
	"bytes"
	"context"
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/hockey-roster/internal/domain/player"
	"github.com/riskibarqy/hockey-roster/internal/platform/logging"
	"github.com/valyala/bytebufferpool"
)

var ErrInvalidStoreName = crerr.New("invalid roster store name")

// Store keeps each roster as a JSON array in its own file under one directory.
type Store struct {
	dir    string
	logger *logging.Logger

	mu sync.Mutex
}

func NewStore(dir string, logger *logging.Logger) *Store {
	if logger == nil {
		logger = logging.Default()
	}
	return &Store{dir: dir, logger: logger.Named("store.file")}
}

// Roster binds a store name so the result satisfies player.Repository.
func (s *Store) Roster(name string) *RosterRepository {
	return &RosterRepository{store: s, name: name}
}

// LoadRoster reads the named roster. A missing or empty file is an empty roster.
func (s *Store) LoadRoster(ctx context.Context, name string) (player.Roster, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if stderrors.Is(err, fs.ErrNotExist) {
		s.logger.DebugContext(ctx, "roster file not found", "path", path)
		return player.Roster{}, nil
	}
	if err != nil {
		return nil, crerr.Wrapf(err, "read roster file %q", path)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return player.Roster{}, nil
	}

	var records []playerRecord
	if err := sonic.ConfigDefault.Unmarshal(data, &records); err != nil {
		return nil, crerr.Wrapf(err, "decode roster file %q", path)
	}

	out := make(player.Roster, 0, len(records))
	for _, r := range records {
		out = append(out, r.toPlayer())
	}
	return out, nil
}

// SaveRoster replaces the named roster. The file is written next to its final
// location and renamed into place so readers never see a partial document.
func (s *Store) SaveRoster(ctx context.Context, roster player.Roster, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.path(name)
	if err != nil {
		return err
	}

	records := make([]playerRecord, 0, len(roster))
	for _, p := range roster {
		records = append(records, recordFromPlayer(p))
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	enc := sonic.ConfigDefault.NewEncoder(buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return crerr.Wrap(err, "encode roster")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return crerr.Wrapf(err, "create roster dir %q", s.dir)
	}

	tmp, err := os.CreateTemp(s.dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return crerr.Wrap(err, "create temp roster file")
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(buf.B); err != nil {
		_ = tmp.Close()
		return crerr.Wrapf(err, "write temp roster file %q", tmpName)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return crerr.Wrapf(err, "sync temp roster file %q", tmpName)
	}
	if err := tmp.Close(); err != nil {
		return crerr.Wrapf(err, "close temp roster file %q", tmpName)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return crerr.Wrapf(err, "replace roster file %q", path)
	}

	s.logger.InfoContext(ctx, "roster saved", "path", path, "players", len(roster))
	return nil
}

func (s *Store) path(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", crerr.Wrapf(ErrInvalidStoreName, "%q", name)
	}
	return filepath.Join(s.dir, name), nil
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
