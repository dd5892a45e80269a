// Package substvars builds the substitution variables handed to the documentation
// renderer: defaults, values overlaid from the build-system status file, and the
// computed entries derived from them.
package substvars

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/frrdocs/internal/versioning"
)

// Keys that other packages read directly.
const (
	KeyAuthors        = "AUTHORS"
	KeyCopyrightYear  = "COPYRIGHT_YEAR"
	KeyCopyrightStr   = "COPYRIGHT_STR"
	KeyPackageName    = "PACKAGE_NAME"
	KeyPackageVersion = "PACKAGE_VERSION"
)

// ErrUnknownKey is returned when setting a key that has no default.
var ErrUnknownKey = errors.New("unknown substitution variable")

// ProjectMeta is the project metadata the defaults are computed from.
type ProjectMeta struct {
	Name   string
	Author string
}

// Entry is a single substitution.
type Entry struct {
	Key   string `yaml:"key" json:"key"`
	Value string `yaml:"value" json:"value"`
}

// Vars is an ordered name -> replacement mapping. The key set is fixed by Defaults.
type Vars struct {
	keys   []string
	values map[string]string
}

// Defaults returns the hard-coded default mapping. Install prefixes and identities
// match a stock package install.
func Defaults(meta ProjectMeta) *Vars {
	lower := cases.Lower(language.Und).String(meta.Name)
	v := &Vars{values: make(map[string]string, 17)}
	v.define(KeyAuthors, meta.Author)
	v.define(KeyCopyrightYear, "1999-2005")
	v.define(KeyCopyrightStr, "Copyright (c) 1999-2005")
	v.define(KeyPackageName, lower)
	v.define("PACKAGE_TARNAME", lower)
	v.define("PACKAGE_STRING", lower+" latest")
	v.define("PACKAGE_URL", "https://frrouting.org/")
	v.define(KeyPackageVersion, "latest")
	v.define("INSTALL_PREFIX_ETC", "/etc/frr")
	v.define("INSTALL_PREFIX_SBIN", "/usr/lib/frr")
	v.define("INSTALL_PREFIX_STATE", "/var/run/frr")
	v.define("INSTALL_PREFIX_MODULES", "/usr/lib/frr/modules")
	v.define("INSTALL_USER", "frr")
	v.define("INSTALL_GROUP", "frr")
	v.define("INSTALL_VTY_GROUP", "frrvty")
	v.define("GROUP", "frr")
	v.define("USER", "frr")
	return v
}

func (v *Vars) define(key, value string) {
	if _, ok := v.values[key]; !ok {
		v.keys = append(v.keys, key)
	}
	v.values[key] = value
}

// Get returns the value of key.
func (v *Vars) Get(key string) (string, bool) {
	value, ok := v.values[key]
	return value, ok
}

// Value returns the value of key or "" when absent.
func (v *Vars) Value(key string) string { return v.values[key] }

// Has reports whether key is eligible for override.
func (v *Vars) Has(key string) bool {
	_, ok := v.values[key]
	return ok
}

// Set replaces the value of a known key.
func (v *Vars) Set(key, value string) error {
	if !v.Has(key) {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	v.values[key] = value
	return nil
}

// Keys returns the keys in definition order.
func (v *Vars) Keys() []string { return slices.Clone(v.keys) }

func (v *Vars) Len() int { return len(v.keys) }

// Entries returns the mapping in definition order.
func (v *Vars) Entries() []Entry {
	out := make([]Entry, 0, len(v.keys))
	for _, k := range v.keys {
		out = append(out, Entry{Key: k, Value: v.values[k]})
	}
	return out
}

// Map returns an unordered copy.
func (v *Vars) Map() map[string]string { return maps.Clone(v.values) }

// Clone returns an independent copy.
func (v *Vars) Clone() *Vars {
	return &Vars{keys: slices.Clone(v.keys), values: maps.Clone(v.values)}
}

// Equal compares keys, order and values.
func (v *Vars) Equal(other *Vars) bool {
	if other == nil {
		return false
	}
	return slices.Equal(v.keys, other.keys) && maps.Equal(v.values, other.values)
}

// Derive fills in the entries that cannot come from the status file.
func (v *Vars) Derive() {
	v.values[KeyCopyrightStr] = fmt.Sprintf("Copyright (c) %s %s",
		v.values[KeyCopyrightYear], v.values[KeyAuthors])
}

// Release is the full package version, including any pre-release tag.
func (v *Vars) Release() string { return v.values[KeyPackageVersion] }

// Version is the short X.Y[.Z] version.
func (v *Vars) Version() string { return versioning.ShortVersion(v.Release()) }

// MarshalYAML emits the mapping in definition order.
func (v *Vars) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range v.keys {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: k},
			&yaml.Node{Kind: yaml.ScalarNode, Value: v.values[k], Style: yaml.DoubleQuotedStyle},
		)
	}
	return node, nil
}

// UnmarshalYAML reads a mapping written by MarshalYAML, keeping its order.
func (v *Vars) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("substitutions: expected mapping, got yaml kind %d", node.Kind)
	}
	v.keys = nil
	v.values = make(map[string]string, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		v.define(node.Content[i].Value, node.Content[i+1].Value)
	}
	return nil
}
