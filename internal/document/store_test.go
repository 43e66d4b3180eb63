package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nvollmar/landforge/internal/logger"
	"github.com/nvollmar/landforge/internal/terrain"
)

func TestMain(m *testing.M) {
	// The store logs corrupt landblocks through the global logger.
	if err := logger.InitWithFileConfig("error", logger.FileConfig{}, false); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenStore(filepath.Join(t.TempDir(), "terrain.db"))
	if err != nil {
		t.Fatalf("OpenStore failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreRoundTrip(t *testing.T) {
	store := openTestStore(t)
	id := terrain.NewLandblockID(10, 20)

	want := make([]terrain.TerrainEntry, terrain.EntriesPerLandblock)
	for i := range want {
		want[i] = terrain.TerrainEntry{
			Type:   byte(i % 32),
			Road:   byte(i % 4),
			Height: byte(i),
		}
	}

	if err := store.PutLandblock(id, want); err != nil {
		t.Fatalf("PutLandblock failed: %v", err)
	}

	got, err := store.LoadLandblock(id)
	if err != nil {
		t.Fatalf("LoadLandblock failed: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("loaded %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestStoreMissingLandblock(t *testing.T) {
	store := openTestStore(t)

	entries, err := store.LoadLandblock(terrain.NewLandblockID(1, 1))
	if err != nil {
		t.Fatalf("LoadLandblock failed: %v", err)
	}
	if entries != nil {
		t.Error("missing landblock should load as nil")
	}
	if store.GetLandblock(terrain.NewLandblockID(1, 1)) != nil {
		t.Error("missing landblock should be nil through TerrainSource")
	}
}

func TestStoreOverwrite(t *testing.T) {
	store := openTestStore(t)
	id := terrain.NewLandblockID(5, 5)

	first := make([]terrain.TerrainEntry, terrain.EntriesPerLandblock)
	if err := store.PutLandblock(id, first); err != nil {
		t.Fatalf("first put failed: %v", err)
	}

	second := make([]terrain.TerrainEntry, terrain.EntriesPerLandblock)
	for i := range second {
		second[i].Height = 33
	}
	if err := store.PutLandblock(id, second); err != nil {
		t.Fatalf("second put failed: %v", err)
	}

	got := store.GetLandblock(id)
	if got == nil || got[0].Height != 33 {
		t.Error("overwrite not visible on load")
	}
	if n, err := store.Count(); err != nil || n != 1 {
		t.Errorf("count = %d (err %v), want 1", n, err)
	}
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terrain.db")
	id := terrain.NewLandblockID(2, 3)

	store, err := OpenStore(path)
	if err != nil {
		t.Fatalf("OpenStore failed: %v", err)
	}
	entries := make([]terrain.TerrainEntry, terrain.EntriesPerLandblock)
	entries[40].Height = 123
	if err := store.PutLandblock(id, entries); err != nil {
		t.Fatalf("PutLandblock failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := OpenStore(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	got := reopened.GetLandblock(id)
	if got == nil || got[40].Height != 123 {
		t.Error("landblock not persisted across reopen")
	}
}

func TestStoreClosed(t *testing.T) {
	store := openTestStore(t)
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	// Closing twice is fine.
	if err := store.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}

	entries := make([]terrain.TerrainEntry, terrain.EntriesPerLandblock)
	if err := store.PutLandblock(terrain.NewLandblockID(0, 0), entries); err != ErrStoreClosed {
		t.Errorf("PutLandblock after close = %v, want ErrStoreClosed", err)
	}
	if _, err := store.LoadLandblock(terrain.NewLandblockID(0, 0)); err != ErrStoreClosed {
		t.Errorf("LoadLandblock after close = %v, want ErrStoreClosed", err)
	}
	if _, err := store.Count(); err != ErrStoreClosed {
		t.Errorf("Count after close = %v, want ErrStoreClosed", err)
	}
}

func TestOpenStoreEmptyPath(t *testing.T) {
	if _, err := OpenStore(""); err == nil {
		t.Error("expected error for empty path")
	}
}
