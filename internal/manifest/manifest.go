// Package manifest records the resolved documentation build configuration.
package manifest

import (
	"crypto/sha256"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/frrdocs/internal/config"
	"git.home.luguber.info/inful/frrdocs/internal/substvars"
)

// BuildManifest is everything the renderer needs, resolved from configuration
// and the build-system status file.
type BuildManifest struct {
	ID            string                    `yaml:"id"`
	Timestamp     time.Time                 `yaml:"timestamp"`
	Generator     string                    `yaml:"generator"`
	Inputs        Inputs                    `yaml:"inputs"`
	Project       Project                   `yaml:"project"`
	General       config.GeneralConfig      `yaml:"general"`
	ObjectTypes   []config.ObjectType       `yaml:"object_types,omitempty"`
	Lexer         Lexer                     `yaml:"lexer"`
	Renderers     map[string]map[string]any `yaml:"renderers"`
	Substitutions *substvars.Vars           `yaml:"substitutions"`
	Outputs       Outputs                   `yaml:"outputs,omitempty"`
}

// Inputs captures where values came from.
type Inputs struct {
	ConfigPath    string   `yaml:"config_path,omitempty"`
	StatusFile    string   `yaml:"status_file"`
	StatusFound   bool     `yaml:"status_found"`
	StatusApplied []string `yaml:"status_applied,omitempty"`
	VersionSource string   `yaml:"version_source"`
}

// Project is the resolved project metadata.
type Project struct {
	Name      string `yaml:"name"`
	Copyright string `yaml:"copyright"`
	Author    string `yaml:"author"`
	Needs     string `yaml:"needs,omitempty"`
	Version   string `yaml:"version"`
	Release   string `yaml:"release"`
	// Triple is absent when the release is not numeric (e.g. "latest").
	Triple []int `yaml:"triple,omitempty,flow"`
}

// Lexer describes the registered highlighting lexer.
type Lexer struct {
	Alias string `yaml:"alias"`
	Name  string `yaml:"name"`
	File  string `yaml:"file,omitempty"`
	Style string `yaml:"style"`
}

// Outputs captures the artifacts written alongside the manifest.
type Outputs struct {
	ArtifactHashes map[string]string `yaml:"artifact_hashes,omitempty"`
}

// ToYAML serializes the manifest.
func (m *BuildManifest) ToYAML() ([]byte, error) {
	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal manifest: %w", err)
	}
	return data, nil
}

// FromYAML deserializes a manifest.
func FromYAML(data []byte) (*BuildManifest, error) {
	var m BuildManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal manifest: %w", err)
	}
	return &m, nil
}

// Hash is a digest of the resolved content. Identity, timing and outputs are
// excluded, so two runs over the same inputs hash equal.
func (m *BuildManifest) Hash() (string, error) {
	hashInput := struct {
		Inputs        Inputs                    `yaml:"inputs"`
		Project       Project                   `yaml:"project"`
		General       config.GeneralConfig      `yaml:"general"`
		ObjectTypes   []config.ObjectType       `yaml:"object_types"`
		Lexer         Lexer                     `yaml:"lexer"`
		Renderers     map[string]map[string]any `yaml:"renderers"`
		Substitutions *substvars.Vars           `yaml:"substitutions"`
	}{
		Inputs:        m.Inputs,
		Project:       m.Project,
		General:       m.General,
		ObjectTypes:   m.ObjectTypes,
		Lexer:         m.Lexer,
		Renderers:     m.Renderers,
		Substitutions: m.Substitutions,
	}
	data, err := yaml.Marshal(hashInput)
	if err != nil {
		return "", fmt.Errorf("marshal for hash: %w", err)
	}
	return fmt.Sprintf("%x", sha256.Sum256(data)), nil
}
