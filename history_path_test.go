package readline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultHistoryFile(t *testing.T) {
	t.Run("xdg config home", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
		assert.Equal(t, filepath.Join("/tmp/xdg", "repl", "history"), DefaultHistoryFile("repl"))
	})

	t.Run("home fallback", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", "")
		t.Setenv("HOME", home)
		assert.Equal(t, filepath.Join(home, ".config", "repl", "history"), DefaultHistoryFile("repl"))
	})
}

func TestExpandHistoryPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	wd, err := os.Getwd()
	require.NoError(t, err)

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "tilde", path: "~", want: home},
		{name: "tilde slash", path: "~/.history", want: filepath.Join(home, ".history")},
		{name: "absolute", path: "/var/tmp/history", want: "/var/tmp/history"},
		{name: "relative", path: "state/history", want: filepath.Join(wd, "state", "history")},
		{name: "tilde user is not expanded", path: "~bob/history", want: filepath.Join(wd, "~bob", "history")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := expandHistoryPath(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err = expandHistoryPath("")
	assert.Error(t, err)
}
