package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seltable/internal/eventbus"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cs := NewConfigServiceAt(filepath.Join(t.TempDir(), "config.toml"), nil)

	cfg, err := cs.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cs := NewConfigServiceAt(path, nil)

	cfg := DefaultConfig()
	cfg.Locale = "de"
	cfg.Table.PageSize = 25
	cfg.Table.KeepSelected = false
	require.NoError(t, cs.Save(cfg))

	loaded, err := cs.Load()
	require.NoError(t, err)
	assert.Equal(t, "de", loaded.Locale)
	assert.Equal(t, 25, loaded.Table.PageSize)
	assert.False(t, loaded.Table.KeepSelected)
	assert.Len(t, loaded.Actions, 4)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("locale = \"fr\"\n[table]\npage_size = 0\n"), 0644))

	cfg, err := NewConfigServiceAt(path, nil).LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "fr", cfg.Locale)
	assert.Equal(t, DefaultPageSize, cfg.Table.PageSize)
	assert.Equal(t, "delete", cfg.Actions[0].ID)
	assert.Len(t, cfg.MoreActions, 4)
}

func TestLoadInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("locale = [unterminated"), 0644))

	_, err := NewConfigServiceAt(path, nil).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvLocale, "de")
	t.Setenv(EnvPageSize, "3")
	t.Setenv(EnvKeepSelected, "false")
	t.Setenv(EnvDataFile, "/tmp/other.toml")

	cfg := DefaultConfig()
	ApplyEnv(cfg)

	assert.Equal(t, "de", cfg.Locale)
	assert.Equal(t, 3, cfg.Table.PageSize)
	assert.False(t, cfg.Table.KeepSelected)
	assert.Equal(t, "/tmp/other.toml", cfg.DataFile)
}

func TestApplyEnvIgnoresInvalidValues(t *testing.T) {
	t.Setenv(EnvPageSize, "-4")
	t.Setenv(EnvKeepSelected, "perhaps")

	cfg := DefaultConfig()
	ApplyEnv(cfg)

	assert.Equal(t, DefaultPageSize, cfg.Table.PageSize)
	assert.True(t, cfg.Table.KeepSelected)
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, LoadEnvFile(filepath.Join(dir, "missing.env")))

	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("SELTABLE_TEST_ONLY=hello\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("SELTABLE_TEST_ONLY") })

	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "hello", os.Getenv("SELTABLE_TEST_ONLY"))
}

// otherConfigEvent claims the config-changed type without being a ConfigChangedEvent
type otherConfigEvent struct{}

func (otherConfigEvent) Type() eventbus.EventType { return eventbus.EventConfigChanged }

func TestPersistChangesSavesCopy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cs := NewConfigServiceAt(path, nil)
	base := DefaultConfig()
	base.Table.Title = "Presidents"

	bus := eventbus.New()
	PersistChanges(bus, cs, base)
	bus.Publish(otherConfigEvent{})
	bus.Publish(eventbus.ConfigChangedEvent{KeepSelected: false, PageSize: 5})
	bus.Publish(eventbus.ConfigChangedEvent{KeepSelected: false, PageSize: 0})
	bus.Close()

	saved, err := cs.LoadFromPath(path)
	require.NoError(t, err)
	assert.False(t, saved.Table.KeepSelected)
	assert.Equal(t, 5, saved.Table.PageSize, "a zero page size keeps the last one")
	assert.Equal(t, "Presidents", saved.Table.Title)

	// the loaded config the UI reads is left alone
	assert.True(t, base.Table.KeepSelected)
	assert.Equal(t, DefaultPageSize, base.Table.PageSize)
}

func TestPersistChangesKeepsLastToggle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cs := NewConfigServiceAt(path, nil)
	base := DefaultConfig()

	bus := eventbus.New()
	PersistChanges(bus, cs, base)

	keep := base.Table.KeepSelected
	for i := 0; i < 51; i++ {
		keep = !keep
		bus.Publish(eventbus.ConfigChangedEvent{KeepSelected: keep, PageSize: base.Table.PageSize})
	}
	bus.Close()

	saved, err := cs.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, keep, saved.Table.KeepSelected)
}
