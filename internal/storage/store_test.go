package storage

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/saulo-duarte/ignite-guild/internal/config"
)

func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, "completedTasks"); err != nil || ok {
		t.Fatalf("empty store: ok=%v err=%v", ok, err)
	}

	if err := s.Set(ctx, "completedTasks:b", "[1]"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Set(ctx, "completedTasks:a", "[0]"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Set(ctx, "other", "x"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Set(ctx, "completedTasks:a", "[0,2]"); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}

	v, ok, err := s.Get(ctx, "completedTasks:a")
	if err != nil || !ok || v != "[0,2]" {
		t.Fatalf("Get = %q, %v, %v", v, ok, err)
	}

	keys, err := s.Keys(ctx, "completedTasks:")
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	want := []string{"completedTasks:a", "completedTasks:b"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("Keys = %v, want %v", keys, want)
	}
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	exerciseStore(t, s)

	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if err := s.Set(context.Background(), "k", "v"); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "kv.json")

	s, err := OpenFileStore(path)
	if err != nil {
		t.Fatalf("OpenFileStore failed: %v", err)
	}
	exerciseStore(t, s)

	t.Run("Reopen", func(t *testing.T) {
		reopened, err := OpenFileStore(path)
		if err != nil {
			t.Fatalf("reopen failed: %v", err)
		}
		v, ok, err := reopened.Get(context.Background(), "completedTasks:b")
		if err != nil || !ok || v != "[1]" {
			t.Errorf("value not persisted: %q %v %v", v, ok, err)
		}
	})

	t.Run("CorruptFile", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "kv.json")
		if err := os.WriteFile(bad, []byte("{not json"), 0o600); err != nil {
			t.Fatal(err)
		}
		s, err := OpenFileStore(bad)
		if err != nil {
			t.Fatalf("corrupt file should not fail open: %v", err)
		}
		if _, ok, _ := s.Get(context.Background(), "anything"); ok {
			t.Error("corrupt file should load as empty")
		}
	})

	t.Run("NullFile", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "kv.json")
		if err := os.WriteFile(bad, []byte("null"), 0o600); err != nil {
			t.Fatal(err)
		}
		s, err := OpenFileStore(bad)
		if err != nil {
			t.Fatalf("null file should not fail open: %v", err)
		}
		if err := s.Set(context.Background(), "completedTasks", "[1]"); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		if v, ok, _ := s.Get(context.Background(), "completedTasks"); !ok || v != "[1]" {
			t.Errorf("got %q, %v", v, ok)
		}
	})
}

func TestGormStoreSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	s, err := NewGormStore(db)
	if err != nil {
		t.Fatalf("NewGormStore failed: %v", err)
	}
	defer s.Close()

	exerciseStore(t, s)

	t.Run("PrefixIsLiteral", func(t *testing.T) {
		ctx := context.Background()
		if err := s.Set(ctx, "a_b", "1"); err != nil {
			t.Fatal(err)
		}
		if err := s.Set(ctx, "axb", "1"); err != nil {
			t.Fatal(err)
		}
		keys, err := s.Keys(ctx, "a_")
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(keys, []string{"a_b"}) {
			t.Errorf("underscore should not act as a wildcard: %v", keys)
		}
	})
}

func TestGormLogsThroughAppLogger(t *testing.T) {
	var buf bytes.Buffer
	out := config.Logger.Out
	config.Logger.SetOutput(&buf)
	defer config.Logger.SetOutput(out)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "kv.db")), gormConfig())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.Exec("SELECT * FROM missing_table").Error; err == nil {
		t.Fatal("expected query error")
	}

	if got := buf.String(); !strings.Contains(got, "component=gorm") || !strings.Contains(got, "missing_table") {
		t.Errorf("gorm error not logged through app logger: %q", got)
	}
}
