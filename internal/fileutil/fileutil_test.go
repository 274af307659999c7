package fileutil_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alnah/go-docket/internal/fileutil"
)

func TestWriteFile_CreatesParents(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "a", "b", "index.html")
	if err := fileutil.WriteFile(path, []byte("<p>")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil || string(got) != "<p>" {
		t.Errorf("ReadFile() = %q, %v", got, err)
	}
}

func TestCopyFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "logo.png")
	if err := os.WriteFile(src, []byte("png-bytes"), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	t.Run("copies content", func(t *testing.T) {
		t.Parallel()

		dst := filepath.Join(t.TempDir(), "nested", "logo.png")
		if err := fileutil.CopyFile(src, dst); err != nil {
			t.Fatalf("CopyFile() error = %v", err)
		}
		got, _ := os.ReadFile(dst)
		if string(got) != "png-bytes" {
			t.Errorf("copied content = %q", got)
		}
	})

	t.Run("missing source", func(t *testing.T) {
		t.Parallel()

		err := fileutil.CopyFile(filepath.Join(dir, "missing"), filepath.Join(t.TempDir(), "x"))
		if !errors.Is(err, fileutil.ErrCopy) {
			t.Errorf("CopyFile() error = %v, want ErrCopy", err)
		}
	})
}

func TestCopyInto(t *testing.T) {
	t.Parallel()

	src := filepath.Join(t.TempDir(), "images")
	files := map[string]string{
		"a.svg":         "<svg/>",
		"sub/b.png":     "png",
		".hidden":       "secret",
		".git/config":   "git",
		"sub/.DS_Store": "junk",
	}
	for name, content := range files {
		full := filepath.Join(src, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("setup: %v", err)
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			t.Fatalf("setup: %v", err)
		}
	}

	dst := t.TempDir()
	if err := fileutil.CopyInto(src, dst); err != nil {
		t.Fatalf("CopyInto() error = %v", err)
	}

	for _, want := range []string{"images/a.svg", "images/sub/b.png"} {
		if !fileutil.FileExists(filepath.Join(dst, filepath.FromSlash(want))) {
			t.Errorf("missing %s", want)
		}
	}
	for _, unwanted := range []string{"images/.hidden", "images/.git", "images/sub/.DS_Store"} {
		if _, err := os.Stat(filepath.Join(dst, filepath.FromSlash(unwanted))); err == nil {
			t.Errorf("hidden entry %s was copied", unwanted)
		}
	}

	// A single file lands under its base name.
	single := filepath.Join(src, "a.svg")
	dst2 := t.TempDir()
	if err := fileutil.CopyInto(single, dst2); err != nil {
		t.Fatalf("CopyInto(file) error = %v", err)
	}
	if !fileutil.FileExists(filepath.Join(dst2, "a.svg")) {
		t.Error("single file not copied")
	}
}

func TestExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "f")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	tests := []struct {
		name     string
		path     string
		wantFile bool
		wantDir  bool
	}{
		{"file", file, true, false},
		{"dir", dir, false, true},
		{"missing", filepath.Join(dir, "missing"), false, false},
	}
	for _, tt := range tests {
		if got := fileutil.FileExists(tt.path); got != tt.wantFile {
			t.Errorf("FileExists(%s) = %v, want %v", tt.name, got, tt.wantFile)
		}
		if got := fileutil.DirExists(tt.path); got != tt.wantDir {
			t.Errorf("DirExists(%s) = %v, want %v", tt.name, got, tt.wantDir)
		}
	}
}

func TestIsWithin(t *testing.T) {
	t.Parallel()

	base := filepath.Join(string(filepath.Separator), "src", "docs")
	tests := []struct {
		name string
		path string
		want bool
	}{
		{"same", base, true},
		{"child", filepath.Join(base, "build"), true},
		{"deep child", filepath.Join(base, "a", "b"), true},
		{"parent", filepath.Dir(base), false},
		{"prefix sibling", base + "-old", false},
		{"dotdot name", filepath.Join(base, "..foo"), true},
	}
	for _, tt := range tests {
		if got := fileutil.IsWithin(tt.path, base); got != tt.want {
			t.Errorf("IsWithin(%s) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
