package dock

import (
	"bytes"
	"os"
	"runtime"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContext(t *testing.T) {
	t.Parallel()

	cfg := &Config{Name: "dock", Authors: []string{"a"}}
	cmd := Command{Name: "run", Exec: func(*Context) {}}
	tokens := []Token{{Kind: TokenProgram, Text: "dock"}, {Kind: TokenCommand, Text: "run"}}
	var out bytes.Buffer
	opt := &RunOptions{Stdin: &bytes.Buffer{}, Stdout: &out, Stderr: &out}

	c := newContext(cmd, cfg, tokens, opt)
	assert.Equal(t, "run", c.Command.Name)
	assert.Equal(t, tokens, c.Tokens)
	assert.Same(t, &out, c.Stdout)

	tokens[1].Text = "changed"
	assert.Equal(t, "run", c.Tokens[1].Text)

	app := c.App()
	app.Authors[0] = "changed"
	assert.Equal(t, []string{"a"}, c.App().Authors)

	var empty Context
	assert.Equal(t, Config{}, empty.App())
}

func TestEnvironment(t *testing.T) {
	t.Parallel()

	env := snapshotEnvironment()
	assert.Equal(t, runtime.GOOS, env.OS)

	wd, err := env.WorkingDir()
	wantWD, wantErr := os.Getwd()
	assert.Equal(t, wantWD, wd)
	assert.Equal(t, wantErr, err)

	exe, err := env.Executable()
	wantExe, wantErr := os.Executable()
	assert.Equal(t, wantExe, exe)
	assert.Equal(t, wantErr, err)

	assert.Equal(t, os.Args, slices.Collect(env.Args()))

	vars := make(map[string]string)
	for k, v := range env.Vars() {
		vars[k] = v
	}
	path, ok := os.LookupEnv("PATH")
	if ok {
		assert.Equal(t, path, vars["PATH"])
	}
}

func TestEnvironmentErrors(t *testing.T) {
	t.Parallel()

	lookupErr := os.ErrNotExist
	env := Environment{
		vars:          []string{"A=1", "B=x=y", "EMPTY="},
		args:          []string{"prog", "one", "two"},
		workingDirErr: lookupErr,
		executable:    "/bin/prog",
	}

	_, err := env.WorkingDir()
	require.ErrorIs(t, err, lookupErr)
	exe, err := env.Executable()
	require.NoError(t, err)
	assert.Equal(t, "/bin/prog", exe)

	var keys, values []string
	for k, v := range env.Vars() {
		keys = append(keys, k)
		values = append(values, v)
	}
	assert.Equal(t, []string{"A", "B", "EMPTY"}, keys)
	assert.Equal(t, []string{"1", "x=y", ""}, values)

	var first []string
	for arg := range env.Args() {
		first = append(first, arg)
		if len(first) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"prog", "one"}, first)
}
