package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"draglist/internal/domain"
	"draglist/internal/eventbus"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	svc := NewService(nil)
	path := filepath.Join(t.TempDir(), "sub", ".draglist.toml")

	cfg := DefaultConfig()
	cfg.SetSections([]domain.Section{
		{Label: "Group A", Values: []string{"one", "two"}},
	})
	require.NoError(t, svc.SaveToPath(cfg, path), "save creates missing directories")

	loaded, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, cfg.Sections, loaded.Sections)
	require.Equal(t, cfg.UI, loaded.UI)
}

func TestLoadAppliesDefaults(t *testing.T) {
	svc := NewService(nil)
	path := filepath.Join(t.TempDir(), ".draglist.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 1\n"), 0644))

	cfg, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, 300.0, cfg.UI.SlewRate)
	require.Equal(t, 5.0, cfg.UI.ActivationThreshold)
	require.NotEmpty(t, cfg.Sections, "an empty file falls back to the demo sections")
}

func TestLoadMissingFile(t *testing.T) {
	svc := NewService(nil)
	_, err := svc.LoadFromPath(filepath.Join(t.TempDir(), "absent.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadRejectsGarbage(t *testing.T) {
	svc := NewService(nil)
	path := filepath.Join(t.TempDir(), ".draglist.toml")
	require.NoError(t, os.WriteFile(path, []byte("{not toml"), 0644))

	_, err := svc.LoadFromPath(path)
	require.Error(t, err)
}

func TestSavePublishesEvent(t *testing.T) {
	bus := eventbus.New()

	saved := make(chan string, 1)
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.ConfigSavedEvent); ok {
			saved <- ev.Path
		}
	})

	svc := NewService(bus)
	path := filepath.Join(t.TempDir(), ".draglist.toml")
	require.NoError(t, svc.SaveToPath(DefaultConfig(), path))

	require.Eventually(t, func() bool {
		select {
		case p := <-saved:
			return p == path
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)
}
