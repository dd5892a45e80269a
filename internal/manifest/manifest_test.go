package manifest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/frrdocs/internal/config"
	"git.home.luguber.info/inful/frrdocs/internal/substvars"
)

func sample() *BuildManifest {
	cfg := config.Default()
	return &BuildManifest{
		ID:        "build-123",
		Timestamp: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		Generator: "frrdocs test",
		Inputs:    Inputs{StatusFile: "../../config.status", VersionSource: "default"},
		Project:   Project{Name: "FRR", Author: "FRR authors", Version: "10.1", Release: "10.1-dev", Triple: []int{10, 1, 0}},
		General:   cfg.General,
		Lexer:     Lexer{Alias: "frr", Name: "FRR", Style: "friendly"},
		Renderers: map[string]map[string]any{
			"html": {"theme": "default"},
		},
		Substitutions: substvars.Defaults(substvars.ProjectMeta{Name: "FRR", Author: "FRR authors"}),
	}
}

func TestManifestYAML(t *testing.T) {
	m := sample()

	data, err := m.ToYAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "triple: [10, 1, 0]")
	assert.Contains(t, string(data), "PACKAGE_NAME: \"frr\"")

	restored, err := FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, m.ID, restored.ID)
	assert.True(t, m.Timestamp.Equal(restored.Timestamp))
	assert.True(t, m.Substitutions.Equal(restored.Substitutions))
	assert.Equal(t, "default", restored.Renderers["html"]["theme"])

	_, err = FromYAML([]byte("id: [broken"))
	require.Error(t, err)
}

func TestHashIgnoresIdentityAndTime(t *testing.T) {
	a := sample()
	b := sample()
	b.ID = "build-456"
	b.Timestamp = b.Timestamp.Add(time.Hour)
	b.Outputs.ArtifactHashes = map[string]string{"prolog.rst": "abc"}

	ha, err := a.Hash()
	require.NoError(t, err)
	hb, err := b.Hash()
	require.NoError(t, err)
	assert.Equal(t, ha, hb)
}

func TestHashDetectsSubstitutionChange(t *testing.T) {
	a := sample()
	b := sample()
	require.NoError(t, b.Substitutions.Set("INSTALL_PREFIX_ETC", "/usr/local/etc/frr"))

	ha, err := a.Hash()
	require.NoError(t, err)
	hb, err := b.Hash()
	require.NoError(t, err)
	assert.NotEqual(t, ha, hb)
}
