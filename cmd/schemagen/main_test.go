package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunFlags_Layering(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("outputDirectory: from-file\nrootClassName: FileRoot\nsealClasses: true\n"), 0o644))

	t.Setenv("SCHEMAGEN_OUTPUT", "from-env")
	t.Setenv("SCHEMAGEN_PACKAGE", "envpkg")

	f := newRunFlags("generate")
	require.NoError(t, f.fs.Parse([]string{"-config", cfg, "-root", "FlagRoot", "-no-equal", "-clone"}))
	s, err := f.settings()
	require.NoError(t, err)

	assert.Equal(t, "from-env", s.OutputDirectory)
	assert.Equal(t, "FlagRoot", s.RootClassName)
	assert.Equal(t, "envpkg", s.NamespaceName)
	assert.True(t, s.SealClasses, "file value kept when the flag is absent")
	assert.False(t, s.GenerateOverrides)
	assert.True(t, s.GenerateCloningCode)
	require.NoError(t, s.Validate())
}

func TestApplyEnv_IgnoresBlank(t *testing.T) {
	f := newRunFlags("check")
	require.NoError(t, f.fs.Parse(nil))
	s, err := f.settings()
	require.NoError(t, err)

	env := map[string]string{"SCHEMAGEN_ROOT": "  ", "SCHEMAGEN_HINTS": "h.json"}
	applyEnv(&s, func(k string) string { return env[k] })
	assert.Empty(t, s.RootClassName)
	assert.Equal(t, "h.json", s.HintsPath)
}
