package app

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/decker502/wishingwell/pkg/config"
	"github.com/decker502/wishingwell/pkg/embedded"
)

func TestLayoutSize(t *testing.T) {
	tests := []struct {
		name  string
		w, h  int
		wantW int
		wantH int
	}{
		{"default window", 480, 800, 480, 800},
		{"wide window", 1280, 720, 1280, 720},
		{"tiny window clamped", 50, 120, config.MinViewportSize, config.MinViewportSize},
		{"zero size clamped", 0, 0, config.MinViewportSize, config.MinViewportSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := layoutSize(tt.w, tt.h)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("layoutSize(%d, %d) = (%d, %d), want (%d, %d)", tt.w, tt.h, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestLoadTuningFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("collision:\n  tolerance: 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tuning, err := loadTuning(path)
	if err != nil {
		t.Fatalf("loadTuning() error = %v", err)
	}
	if tuning.Collision.Tolerance != 30 {
		t.Errorf("Tolerance = %v, want 30", tuning.Collision.Tolerance)
	}
	// 未出现的键保留默认值
	if tuning.Bucket.Health != config.DefaultTuning().Bucket.Health {
		t.Errorf("Bucket.Health = %d, want default", tuning.Bucket.Health)
	}
}

func TestLoadTuningMissingFile(t *testing.T) {
	if _, err := loadTuning(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("loadTuning() should fail for a missing file")
	}
}

func TestLoadTuningEmbedded(t *testing.T) {
	embedded.Init(fstest.MapFS{
		"data/tuning.yaml": &fstest.MapFile{Data: []byte("bucket:\n  health: 5\n")},
	})

	tuning, err := loadTuning("")
	if err != nil {
		t.Fatalf("loadTuning() error = %v", err)
	}
	if tuning.Bucket.Health != 5 {
		t.Errorf("Bucket.Health = %d, want 5", tuning.Bucket.Health)
	}
}

func TestLoadTuningEmbeddedInvalid(t *testing.T) {
	embedded.Init(fstest.MapFS{
		"data/tuning.yaml": &fstest.MapFile{Data: []byte("bucket:\n  health: 0\n")},
	})

	if _, err := loadTuning(""); err == nil {
		t.Error("loadTuning() should reject invalid embedded tuning")
	}
}

func TestOpenStorageUsesAppName(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("XDG_DATA_HOME", tempDir)

	if m := openStorage(""); m == nil {
		t.Fatal("openStorage() returned nil with a writable home")
	}
}
