package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_NotInitialized(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestSaveAndLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "qen")

	want := &Config{CurrentProject: "platform", MetaPath: "/srv/meta"}
	require.NoError(t, Save(dir, want))

	got, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDefaultDir_HonorsXDGConfigHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	assert.Equal(t, filepath.Join("/custom/config", "qen"), DefaultDir())
}

func TestProjectDir(t *testing.T) {
	cfg := &Config{CurrentProject: "platform", MetaPath: "/srv/meta"}

	dir, err := cfg.ProjectDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/srv/meta", "platform"), dir)
}

func TestProjectDir_NoActiveProject(t *testing.T) {
	cfg := &Config{MetaPath: "/srv/meta"}

	_, err := cfg.ProjectDir()
	assert.ErrorIs(t, err, ErrNoActiveProject)
}

func TestLoadProject_Missing(t *testing.T) {
	_, err := LoadProject(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), ProjectFileName)
}

func TestSaveAndLoadProject(t *testing.T) {
	dir := t.TempDir()

	want := &Project{
		Name: "platform",
		Repos: []Repo{
			{URL: "git@github.com:acme/api.git", Branch: "feat-auth", Path: "api"},
			{URL: "git@github.com:acme/web.git", Branch: "feat-auth-ui", Path: "web"},
		},
	}
	require.NoError(t, SaveProject(dir, want))

	got, err := LoadProject(dir)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestHasRepo(t *testing.T) {
	p := &Project{Repos: []Repo{
		{URL: "git@github.com:acme/api.git", Branch: "feat-auth", Path: "api"},
	}}

	assert.True(t, p.HasRepo("git@github.com:acme/api.git", "feat-auth"))
	assert.False(t, p.HasRepo("git@github.com:acme/api.git", "other-branch"))
	assert.False(t, p.HasRepo("git@github.com:acme/web.git", "feat-auth"))
}
