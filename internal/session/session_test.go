package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/paul-j-lucas/cdecl/internal/langver"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if opts.Lang != langver.C17 {
		t.Errorf("default lang = %v, want C17", opts.Lang)
	}
	if opts.CV != CVWest {
		t.Error("default cv placement should be west")
	}
}

func TestNewSessionHasEmptyRegistry(t *testing.T) {
	s := New(DefaultOptions())
	if s.Typedefs == nil {
		t.Fatal("New should initialize a typedef registry")
	}
	if s.Typedefs.Len() != 0 {
		t.Error("a fresh session's registry should be empty")
	}
}

func TestLoadFileParsesOptions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cdecl.json")
	content := `{"lang":"c++17","eastConst":true,"digraphs":true,"trailingReturn":true}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	opts, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if opts.Lang != langver.CPP17 {
		t.Errorf("lang = %v, want CPP17", opts.Lang)
	}
	if opts.CV != CVEast {
		t.Error("eastConst should set CVEast")
	}
	if opts.AltOutput != AltDigraphs {
		t.Error("digraphs should set AltDigraphs")
	}
	if !opts.TrailingReturn {
		t.Error("trailingReturn should be true")
	}
}

func TestLoadWalksUpParentDirectories(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "cdecl.json"), []byte(`{"lang":"c99"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	opts, path, err := Load(nested)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if path == "" {
		t.Fatal("Load should find the config file in a parent directory")
	}
	if opts.Lang != langver.C99 {
		t.Errorf("lang = %v, want C99", opts.Lang)
	}
}

func TestLoadReturnsDefaultsWhenNoConfigFound(t *testing.T) {
	dir := t.TempDir()
	opts, path, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if path != "" {
		t.Error("path should be empty when no config file is found")
	}
	if opts.Lang != langver.C17 {
		t.Error("should fall back to DefaultOptions")
	}
}

func TestMergeCLIOverridesConfig(t *testing.T) {
	base := DefaultOptions()
	cpp20 := langver.CPP20
	eastTrue := true
	merged := Merge(base, MergeOptions{Lang: &cpp20, EastConst: &eastTrue})
	if merged.Lang != langver.CPP20 {
		t.Errorf("merged lang = %v, want CPP20", merged.Lang)
	}
	if merged.CV != CVEast {
		t.Error("merged CV should be east")
	}
}
