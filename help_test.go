package dock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bracketPalette makes decorated segments visible in expected strings.
var bracketPalette = palette{
	header:  func(s string) string { return "<" + s + ">" },
	command: func(s string) string { return "[" + s + "]" },
}

func TestDefaultHelp(t *testing.T) {
	t.Parallel()

	noop := func(*Context) {}

	t.Run("empty registry", func(t *testing.T) {
		t.Parallel()
		cfg := Config{Name: "dock", Version: "0.1.0", Description: "desc"}
		h := NewDefaultHelp(cfg, nil)
		assert.Equal(t, "dock 0.1.0\ndesc\n\n\n", h.Render())
	})
	t.Run("nothing set", func(t *testing.T) {
		t.Parallel()
		h := NewDefaultHelp(Config{}, nil)
		assert.Equal(t, " \n\n\n\n", h.Render())
	})
	t.Run("commands and authors", func(t *testing.T) {
		t.Parallel()
		cfg := Config{Name: "dock", Version: "0.1.0", Description: "desc", Authors: []string{"a", "b"}}
		h := NewDefaultHelp(cfg, []Command{
			{Name: "build", Description: "build it", Exec: noop},
			{Name: "hidden", Description: "nope", Disabled: true, Exec: noop},
			{Name: "clean", Exec: noop},
		})
		assert.Equal(t, "dock 0.1.0\ndesc\n\nbuild build it\nclean \n\na, b", h.Render())
	})
	t.Run("colored structure", func(t *testing.T) {
		t.Parallel()
		cfg := Config{Name: "dock", Version: "0.1.0", Description: "desc", Authors: []string{"a", "b"}}
		h := NewDefaultHelp(cfg, []Command{{Name: "build", Description: "build it", Exec: noop}})
		h.palette = bracketPalette
		assert.Equal(t, "<dock> <0.1.0>\ndesc\n\n[build] build it\n\n<a, b>", h.RenderColored())
	})
	t.Run("colored uses ansi", func(t *testing.T) {
		t.Parallel()
		cfg := Config{Name: "dock", Version: "0.1.0", Authors: []string{"a"}}
		h := NewDefaultHelp(cfg, []Command{{Name: "build", Description: "build it", Exec: noop}})
		colored := h.RenderColored()
		assert.NotEqual(t, h.Render(), colored)
		assert.Contains(t, colored, defaultPalette.header("dock"))
		assert.Contains(t, colored, defaultPalette.command("build")+" build it\n")
		assert.Contains(t, colored, "\x1b[")
	})
	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()
		cfg := Config{Name: "dock", Authors: []string{"x"}}
		cmds := []Command{{Name: "a", Exec: noop}, {Name: "b", Exec: noop}}
		first := NewDefaultHelp(cfg, cmds)
		second := NewDefaultHelp(cfg, cmds)
		assert.Equal(t, first.Render(), first.Render())
		assert.Equal(t, first.Render(), second.Render())
		assert.Equal(t, first.RenderColored(), second.RenderColored())
	})
	t.Run("inputs are copied", func(t *testing.T) {
		t.Parallel()
		cfg := Config{Name: "dock", Authors: []string{"x"}}
		cmds := []Command{{Name: "a", Exec: noop}}
		h := NewDefaultHelp(cfg, cmds)
		before := h.Render()
		cfg.Authors[0] = "changed"
		cmds[0].Name = "changed"
		require.Equal(t, before, h.Render())
	})
}
