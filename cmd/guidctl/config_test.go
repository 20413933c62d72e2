package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/danmuck/nanocom/com"
	"github.com/danmuck/nanocom/guid"
)

func TestLoadCatalogMergesOverBuiltins(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "guidctl.toml")
	content := `
[identifiers]
telemetry_sink = "{7f1c9f4a-2a44-4c1e-9d3c-6a8a1b0e5d21}"
frame_source = "00112233-4455-6677-8899-aabbccddeeff"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cat, err := loadCatalog(path, true)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	g, ok := cat.Resolve("telemetry_sink")
	if !ok || g != guid.MustParse("{7f1c9f4a-2a44-4c1e-9d3c-6a8a1b0e5d21}") {
		t.Fatalf("telemetry_sink: ok=%v g=%s", ok, g)
	}
	if g, ok := cat.Resolve("frame_source"); !ok || g.Data1 != 0x00112233 {
		t.Fatalf("unbraced catalog entries must parse: ok=%v g=%s", ok, g)
	}

	// Builtins survive the merge.
	if g, ok := cat.Resolve("unknown"); !ok || g != com.IIDUnknown {
		t.Fatalf("builtin unknown missing")
	}
	if g, ok := cat.Resolve("weak_reference"); !ok || g != com.IIDWeakReference {
		t.Fatalf("builtin weak_reference missing")
	}
}

func TestLoadCatalogRejectsBadEntries(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "guidctl.toml")
	content := `
[identifiers]
broken = "{00000000-0000-0000-0000-00000000000}"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := loadCatalog(path, true); err == nil {
		t.Fatalf("expected a parse failure for the short group")
	}
}

func TestLoadCatalogMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")

	// Implicit default path: absence is fine, builtins remain.
	cat, err := loadCatalog(missing, false)
	if err != nil {
		t.Fatalf("implicit missing catalog must not fail: %v", err)
	}
	if len(cat.Names()) != 3 {
		t.Fatalf("expected only builtins, got %v", cat.Names())
	}

	// Explicit path: absence is an error.
	if _, err := loadCatalog(missing, true); err == nil {
		t.Fatalf("explicit missing catalog must fail")
	}
}

func TestResolveValueAcceptsNamesAndText(t *testing.T) {
	cat, err := loadCatalog(filepath.Join(t.TempDir(), "absent.toml"), false)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	if g, err := resolveValue(cat, "weak_reference_source"); err != nil || g != com.IIDWeakReferenceSource {
		t.Fatalf("name resolution failed: %v", err)
	}
	if g, err := resolveValue(cat, "{00000000-0000-0000-c000-000000000046}"); err != nil || g != com.IIDUnknown {
		t.Fatalf("text resolution failed: %v", err)
	}
	if _, err := resolveValue(cat, "garbage"); err == nil {
		t.Fatalf("expected failure for unknown input")
	}
}
