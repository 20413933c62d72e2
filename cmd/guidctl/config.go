package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/danmuck/nanocom/com"
	"github.com/danmuck/nanocom/guid"
)

// guidctl config.toml: a catalog of named well-known identifiers.
//
//	[identifiers]
//	telemetry_sink = "{7f1c9f4a-2a44-4c1e-9d3c-6a8a1b0e5d21}"
type fileConfig struct {
	Identifiers map[string]string `toml:"identifiers"`
}

// Catalog maps human names to well-known identifier values. The three
// foundational capability identifiers are always present.
type Catalog struct {
	byName map[string]guid.GUID
}

func builtinCatalog() map[string]guid.GUID {
	return map[string]guid.GUID{
		"unknown":               com.IIDUnknown,
		"weak_reference":        com.IIDWeakReference,
		"weak_reference_source": com.IIDWeakReferenceSource,
	}
}

// loadCatalog reads the TOML catalog at path and merges it over the builtin
// names. A missing file is an error only when the path was given explicitly.
func loadCatalog(path string, explicit bool) (*Catalog, error) {
	cat := &Catalog{byName: builtinCatalog()}

	var raw fileConfig
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cat, nil
		}
		return nil, fmt.Errorf("load catalog (%s): %w", path, err)
	}

	for name, text := range raw.Identifiers {
		if name == "" {
			return nil, fmt.Errorf("catalog (%s): empty identifier name", path)
		}
		g, err := guid.Parse(text)
		if err != nil {
			return nil, fmt.Errorf("catalog (%s): %q: %w", path, name, err)
		}
		cat.byName[name] = g
	}
	return cat, nil
}

// Resolve returns the identifier registered under name.
func (c *Catalog) Resolve(name string) (guid.GUID, bool) {
	g, ok := c.byName[name]
	return g, ok
}

// Names returns all catalog names in sorted order.
func (c *Catalog) Names() []string {
	out := make([]string, 0, len(c.byName))
	for name := range c.byName {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
