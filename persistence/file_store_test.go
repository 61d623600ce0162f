package persistence

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreMissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), DefaultFileName))

	score, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Missing file should not error: %v", err)
	}
	if score != 0 {
		t.Errorf("Expected 0, got %d", score)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	s := NewFileStore(path)
	ctx := context.Background()

	if err := s.Save(ctx, 42); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if string(data) != "42" {
		t.Errorf("Expected file content %q, got %q", "42", data)
	}

	score, err := s.Load(ctx)
	if err != nil || score != 42 {
		t.Errorf("Expected 42, got %d (%v)", score, err)
	}

	// No temp files left behind
	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("Expected only the score file, found %d entries", len(entries))
	}
}

func TestFileStoreContents(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
		corrupt bool
	}{
		{"Plain", "17", 17, false},
		{"Trailing newline", "17\n", 17, false},
		{"Empty", "", 0, false},
		{"Text", "abc", 0, true},
		{"Negative", "-3", 0, true},
		{"Float", "1.5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), DefaultFileName)
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			score, err := NewFileStore(path).Load(context.Background())
			if tt.corrupt {
				if !errors.Is(err, ErrCorrupt) {
					t.Errorf("Expected ErrCorrupt, got %v", err)
				}
				return
			}
			if err != nil || score != tt.want {
				t.Errorf("Expected %d, got %d (%v)", tt.want, score, err)
			}
		})
	}
}

func TestOpenSelectsStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hs.dat")
	s, err := Open(context.Background(), path, "")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	fs, ok := s.(*FileStore)
	if !ok {
		t.Fatalf("Expected *FileStore, got %T", s)
	}
	if fs.Path() != path {
		t.Errorf("Expected path %s, got %s", path, fs.Path())
	}
}
