package dock

import (
	"io"
	"iter"
	"os"
	"runtime"
	"slices"
	"strings"
)

// Context is handed to a command's Exec function. It is built fresh for every dispatch and is not
// reused once Exec returns.
type Context struct {
	// Command is a copy of the command being invoked.
	Command Command

	// Env is a snapshot of the process environment taken when the context was built.
	Env Environment

	// Tokens is the full classified input, program name first. Flags and string literals are not
	// bound to the command; they are left here for the command to inspect.
	Tokens []Token

	// Standard I/O streams of the run.
	Stdin          io.Reader
	Stdout, Stderr io.Writer

	config *Config
}

// App returns a copy of the application's configuration.
func (c *Context) App() Config {
	if c.config == nil {
		return Config{}
	}
	return c.config.Clone()
}

// newContext binds a copy of cmd to a fresh environment snapshot.
func newContext(cmd Command, cfg *Config, tokens []Token, opt *RunOptions) *Context {
	return &Context{
		Command: cmd.clone(),
		Env:     snapshotEnvironment(),
		Tokens:  slices.Clone(tokens),
		Stdin:   opt.Stdin,
		Stdout:  opt.Stdout,
		Stderr:  opt.Stderr,
		config:  cfg,
	}
}

// Environment describes the process a command runs in. The working directory and executable
// lookups can fail; their errors are kept and returned by the accessors.
type Environment struct {
	// OS is the operating system identifier, as in runtime.GOOS.
	OS string

	vars []string
	args []string

	workingDir    string
	workingDirErr error
	executable    string
	executableErr error
}

func snapshotEnvironment() Environment {
	env := Environment{
		OS:   runtime.GOOS,
		vars: os.Environ(),
		args: slices.Clone(os.Args),
	}
	env.workingDir, env.workingDirErr = os.Getwd()
	env.executable, env.executableErr = os.Executable()
	return env
}

// Vars yields the environment variables as key/value pairs, in the order the process reported
// them.
func (e Environment) Vars() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, kv := range e.vars {
			k, v, _ := strings.Cut(kv, "=")
			if !yield(k, v) {
				return
			}
		}
	}
}

// Args yields the process arguments, program path first.
func (e Environment) Args() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, arg := range e.args {
			if !yield(arg) {
				return
			}
		}
	}
}

// WorkingDir returns the working directory at snapshot time, or the error from looking it up.
func (e Environment) WorkingDir() (string, error) {
	return e.workingDir, e.workingDirErr
}

// Executable returns the path of the running executable, or the error from looking it up.
func (e Environment) Executable() (string, error) {
	return e.executable, e.executableErr
}
