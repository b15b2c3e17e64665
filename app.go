package dock

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dimensionhq/dock/pkg/suggest"
)

// App is a command-line application: its identity, its registered commands, and the help text
// printed when input does not select a command.
//
// An App is configured through a chain of setters, each returning the same *App, and then started
// with [App.Run]. Configuration must be complete before Run is called; App is not safe for
// concurrent use.
type App struct {
	config   Config
	registry *Registry
	help     HelpRenderer
	color    ColorMode
	logger   zerolog.Logger
}

// New returns an application with no identity fields set and no commands.
func New() *App {
	return &App{
		registry: NewRegistry(),
		logger:   zerolog.Nop(),
	}
}

// FromManifest returns an application whose identity is read from the TOML manifest at path, or
// at [DefaultManifestPath] when path is empty. If the manifest cannot be read or parsed no
// application is returned; see [LoadManifest] for the error kinds.
func FromManifest(path string) (*App, error) {
	if path == "" {
		path = DefaultManifestPath
	}
	cfg, err := LoadManifest(path)
	if err != nil {
		return nil, err
	}
	return New().SetConfig(cfg), nil
}

// SetName sets the application name.
func (a *App) SetName(name string) *App {
	a.config = a.config.WithName(name)
	return a
}

// SetDescription sets the application description.
func (a *App) SetDescription(description string) *App {
	a.config = a.config.WithDescription(description)
	return a
}

// SetAuthors sets the application authors. The slice is copied.
func (a *App) SetAuthors(authors []string) *App {
	a.config = a.config.WithAuthors(authors)
	return a
}

// SetVersion sets the application version.
func (a *App) SetVersion(version string) *App {
	a.config = a.config.WithVersion(version)
	return a
}

// SetConfig replaces all identity fields at once.
func (a *App) SetConfig(cfg Config) *App {
	a.config = cfg.Clone()
	return a
}

// Register adds a copy of cmd to the application. Commands are matched and listed in the order
// they are registered; when two share a name, the first enabled one wins.
func (a *App) Register(cmd Command) *App {
	a.registry.Register(cmd)
	return a
}

// SetHelp installs a custom help renderer, replacing the default one.
func (a *App) SetHelp(help HelpRenderer) *App {
	a.help = help
	return a
}

// SetColor sets when help is rendered with color. The default is [ColorAuto].
func (a *App) SetColor(mode ColorMode) *App {
	a.color = mode
	return a
}

// SetLogger sets the logger used for dispatch diagnostics. The default discards everything.
func (a *App) SetLogger(logger zerolog.Logger) *App {
	a.logger = logger
	return a
}

// Config returns a copy of the application's identity.
func (a *App) Config() Config {
	return a.config.Clone()
}

// Commands returns copies of all registered commands, disabled ones included.
func (a *App) Commands() []Command {
	return a.registry.All()
}

// Help returns the installed help renderer, or a default one built from the current
// configuration and enabled commands.
func (a *App) Help() HelpRenderer {
	if a.help != nil {
		return a.help
	}
	return NewDefaultHelp(a.config, a.registry.Enabled())
}

// RunOptions specifies options for running an application.
type RunOptions struct {
	// Stdin, Stdout, and Stderr are the standard input, output, and error streams for the run. If
	// any of these are nil, the default streams are used ([os.Stdin], [os.Stdout], and
	// [os.Stderr], respectively).
	Stdin          io.Reader
	Stdout, Stderr io.Writer

	// Getenv looks up environment variables for color detection. Defaults to [os.Getenv].
	Getenv func(string) string
}

// Run reads the whole of stdin as one line of command text, tokenizes it, and invokes the first
// enabled command named by it. If the input names no command, or names one that is unknown or
// disabled, help is written to stdout instead and Run returns nil. When an unknown name is close
// to an enabled one, the candidates are written to stderr first.
//
// Run returns an [ErrInvalidCommand] error if a registered command is malformed, an
// [ErrInputRead] error if stdin cannot be read, and an [ErrTokenize] error if the input cannot be
// tokenized. In each case no command is invoked.
//
// The options parameter may be nil, in which case default values are used. See [RunOptions] for
// more details.
func (a *App) Run(options *RunOptions) error {
	options = checkAndSetRunOptions(options)

	if err := a.registry.validate(); err != nil {
		return err
	}

	raw, err := io.ReadAll(options.Stdin)
	if err != nil {
		return NewError(ErrInputRead, err)
	}
	tokens, err := Tokenize(string(raw))
	if err != nil {
		return err
	}
	a.logger.Debug().Int("tokens", len(tokens)).Str("program", tokens[0].Text).Msg("tokenized input")

	cmd, err := a.resolve(tokens)
	if err != nil {
		var dockErr *Error
		if errors.As(err, &dockErr) && dockErr.Code() == ErrCommandNotFound {
			a.hintSimilar(options.Stderr, err)
			return a.showHelp(options)
		}
		return err
	}

	a.logger.Debug().Str("command", cmd.Name).Msg("dispatching command")
	cmd.invoke(newContext(cmd, &a.config, tokens, options))
	return nil
}

func (a *App) resolve(tokens []Token) (Command, error) {
	name, ok := firstCommand(tokens)
	if !ok {
		a.logger.Debug().Msg("no command name in input")
		return Command{}, NewError(ErrCommandNotFound, errors.New("no command name in input"))
	}
	cmd, ok := a.registry.Resolve(name)
	if !ok {
		return Command{}, a.unknownCommandError(name)
	}
	return cmd, nil
}

func (a *App) unknownCommandError(name string) error {
	suggestions := suggest.Closest(name, a.registry.enabledNames(), 3)
	a.logger.Warn().Str("command", name).Strs("suggestions", suggestions).Msg("unknown command")
	return NewError(ErrCommandNotFound, &unknownCommandError{name: name, suggestions: suggestions})
}

type unknownCommandError struct {
	name        string
	suggestions []string
}

func (e *unknownCommandError) Error() string {
	if len(e.suggestions) == 0 {
		return fmt.Sprintf("unknown command %q", e.name)
	}
	return fmt.Sprintf("unknown command %q. Did you mean one of these?\n\t%s",
		e.name,
		strings.Join(e.suggestions, "\n\t"))
}

// hintSimilar writes "did you mean" candidates to w when err carries any.
func (a *App) hintSimilar(w io.Writer, err error) {
	var unknown *unknownCommandError
	if !errors.As(err, &unknown) || len(unknown.suggestions) == 0 {
		return
	}
	fmt.Fprintln(w, unknown.Error())
}

func (a *App) showHelp(options *RunOptions) error {
	help := a.Help()
	text := help.Render()
	if a.color.useColor(options.Stdout, options.Getenv) {
		text = help.RenderColored()
	}
	if _, err := io.WriteString(options.Stdout, text); err != nil {
		return fmt.Errorf("write help: %w", err)
	}
	return nil
}

func checkAndSetRunOptions(opt *RunOptions) *RunOptions {
	if opt == nil {
		opt = &RunOptions{}
	}
	if opt.Stdin == nil {
		opt.Stdin = os.Stdin
	}
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}
	if opt.Getenv == nil {
		opt.Getenv = os.Getenv
	}
	return opt
}
