package substvars

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func frrMeta() ProjectMeta {
	return ProjectMeta{Name: "FRR", Author: "FRR authors"}
}

func TestDefaults(t *testing.T) {
	v := Defaults(frrMeta())

	want := []Entry{
		{"AUTHORS", "FRR authors"},
		{"COPYRIGHT_YEAR", "1999-2005"},
		{"COPYRIGHT_STR", "Copyright (c) 1999-2005"},
		{"PACKAGE_NAME", "frr"},
		{"PACKAGE_TARNAME", "frr"},
		{"PACKAGE_STRING", "frr latest"},
		{"PACKAGE_URL", "https://frrouting.org/"},
		{"PACKAGE_VERSION", "latest"},
		{"INSTALL_PREFIX_ETC", "/etc/frr"},
		{"INSTALL_PREFIX_SBIN", "/usr/lib/frr"},
		{"INSTALL_PREFIX_STATE", "/var/run/frr"},
		{"INSTALL_PREFIX_MODULES", "/usr/lib/frr/modules"},
		{"INSTALL_USER", "frr"},
		{"INSTALL_GROUP", "frr"},
		{"INSTALL_VTY_GROUP", "frrvty"},
		{"GROUP", "frr"},
		{"USER", "frr"},
	}
	assert.Equal(t, want, v.Entries())
	assert.Equal(t, len(want), v.Len())
}

func TestSetRejectsUnknownKey(t *testing.T) {
	v := Defaults(frrMeta())

	require.NoError(t, v.Set("INSTALL_USER", "routing"))
	assert.Equal(t, "routing", v.Value("INSTALL_USER"))

	err := v.Set("NOT_A_KEY", "x")
	require.ErrorIs(t, err, ErrUnknownKey)
	assert.False(t, v.Has("NOT_A_KEY"))
}

func TestDerive(t *testing.T) {
	v := Defaults(frrMeta())
	require.NoError(t, v.Set(KeyCopyrightYear, "1996-2024"))
	require.NoError(t, v.Set(KeyAuthors, "the FRR community"))

	v.Derive()

	assert.Equal(t, "Copyright (c) 1996-2024 the FRR community", v.Value(KeyCopyrightStr))
}

func TestReleaseAndVersion(t *testing.T) {
	v := Defaults(frrMeta())
	assert.Equal(t, "latest", v.Release())
	assert.Equal(t, "latest", v.Version())

	require.NoError(t, v.Set(KeyPackageVersion, "10.1-dev"))
	assert.Equal(t, "10.1-dev", v.Release())
	assert.Equal(t, "10.1", v.Version())
}

func TestCloneIsIndependent(t *testing.T) {
	v := Defaults(frrMeta())
	c := v.Clone()
	require.True(t, v.Equal(c))

	require.NoError(t, c.Set("USER", "nobody"))
	assert.False(t, v.Equal(c))
	assert.Equal(t, "frr", v.Value("USER"))
}

func TestProlog(t *testing.T) {
	v := Defaults(frrMeta())
	prolog := v.Prolog()

	lines := strings.Split(strings.TrimSuffix(prolog, "\n"), "\n")
	require.Len(t, lines, v.Len())
	assert.Equal(t, ".. |AUTHORS| replace:: FRR authors", lines[0])
	assert.Equal(t, ".. |USER| replace:: frr", lines[len(lines)-1])
	assert.Contains(t, prolog, ".. |INSTALL_PREFIX_ETC| replace:: /etc/frr\n")

	var b strings.Builder
	require.NoError(t, v.WriteProlog(&b))
	assert.Equal(t, prolog, b.String())
}

func TestMarshalYAMLKeepsOrder(t *testing.T) {
	v := Defaults(frrMeta())

	out, err := yaml.Marshal(v)
	require.NoError(t, err)

	text := string(out)
	assert.Less(t, strings.Index(text, "AUTHORS:"), strings.Index(text, "USER:"))
	assert.Contains(t, text, `PACKAGE_URL: "https://frrouting.org/"`)
}

func TestUnmarshalYAMLRestoresOrder(t *testing.T) {
	v := Defaults(frrMeta())
	require.NoError(t, v.Set("USER", "routing"))
	out, err := yaml.Marshal(v)
	require.NoError(t, err)

	var restored Vars
	require.NoError(t, yaml.Unmarshal(out, &restored))
	assert.True(t, v.Equal(&restored))

	require.Error(t, yaml.Unmarshal([]byte("- a\n- b\n"), &restored))
}
