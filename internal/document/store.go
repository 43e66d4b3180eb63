package document

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
	_ "modernc.org/sqlite"

	"github.com/nvollmar/landforge/internal/logger"
	"github.com/nvollmar/landforge/internal/terrain"
	"github.com/nvollmar/landforge/pkg/formats"
)

// ErrStoreClosed is returned by store operations after Close.
var ErrStoreClosed = errors.New("terrain store is closed")

// Store is a persistent terrain source backed by sqlite. Landblock
// terrain blobs are encoded with the landblock format and compressed
// with zstd before being written.
type Store struct {
	db     *sql.DB
	enc    *zstd.Encoder
	dec    *zstd.Decoder
	closed bool
}

var _ terrain.TerrainSource = (*Store)(nil)

// OpenStore opens (or creates) a terrain store at path.
func OpenStore(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("empty store path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS landblocks (
		id   INTEGER PRIMARY KEY,
		data BLOB NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		db.Close()
		return nil, err
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, enc: enc, dec: dec}, nil
}

// Close releases the database and codec resources.
func (s *Store) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.enc.Close()
	s.dec.Close()
	return s.db.Close()
}

// PutLandblock encodes, compresses and writes one landblock.
func (s *Store) PutLandblock(id terrain.LandblockID, entries []terrain.TerrainEntry) error {
	if s.closed {
		return ErrStoreClosed
	}
	raw, err := formats.EncodeLandblock(entries)
	if err != nil {
		return fmt.Errorf("encode landblock %v: %w", id, err)
	}
	blob := s.enc.EncodeAll(raw, nil)
	_, err = s.db.Exec(`INSERT INTO landblocks (id, data) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET data = excluded.data`, int64(id), blob)
	if err != nil {
		return fmt.Errorf("write landblock %v: %w", id, err)
	}
	return nil
}

// LoadLandblock reads and decodes one landblock. A missing landblock
// returns (nil, nil).
func (s *Store) LoadLandblock(id terrain.LandblockID) ([]terrain.TerrainEntry, error) {
	if s.closed {
		return nil, ErrStoreClosed
	}
	var blob []byte
	err := s.db.QueryRow(`SELECT data FROM landblocks WHERE id = ?`, int64(id)).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read landblock %v: %w", id, err)
	}
	raw, err := s.dec.DecodeAll(blob, nil)
	if err != nil {
		return nil, fmt.Errorf("decompress landblock %v: %w", id, err)
	}
	entries, err := formats.DecodeLandblock(raw)
	if err != nil {
		return nil, fmt.Errorf("decode landblock %v: %w", id, err)
	}
	return entries, nil
}

// GetLandblock implements terrain.TerrainSource. Corrupt landblocks
// are logged and treated as absent; the streaming core handles missing
// data by skipping it.
func (s *Store) GetLandblock(id terrain.LandblockID) []terrain.TerrainEntry {
	entries, err := s.LoadLandblock(id)
	if err != nil {
		logger.Sugar.Warnf("landblock %v unreadable: %v", id, err)
		return nil
	}
	return entries
}

// Count returns the number of stored landblocks.
func (s *Store) Count() (int, error) {
	if s.closed {
		return 0, ErrStoreClosed
	}
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM landblocks`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
