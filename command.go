package dock

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Command describes one registrable command. It is a plain value: the registry, the help
// renderer, and the execution context each hold their own copy, so changing a Command after it
// has been registered does not affect the application.
type Command struct {
	// Name is a single word identifying the command. It is matched against the first command-name
	// token of the input and shown in help text.
	Name string

	// Description is a short sentence shown next to the name in help text. It may be empty.
	Description string

	// Disabled hides the command from both dispatch and help. A disabled command behaves as if it
	// had never been registered.
	Disabled bool

	// Exec is the command's logic. It receives the [Context] built for this invocation. Failures
	// are reported through the context's output streams or other process-visible effects.
	Exec func(c *Context)
}

// clone returns an independent copy. Exec is shared: handlers carry no per-instance state.
func (c Command) clone() Command {
	return c
}

// invoke runs the command's logic with the given context.
func (c Command) invoke(ctx *Context) {
	c.Exec(ctx)
}

func (c Command) display() string {
	return c.Name + " " + c.Description
}

func (c Command) displayColored(p palette) string {
	return p.command(c.Name) + " " + c.Description
}

func validateCommand(cmd Command) error {
	if cmd.Name == "" {
		return errors.New("command has no name")
	}
	if strings.ContainsFunc(cmd.Name, unicode.IsSpace) {
		return fmt.Errorf("command name %q contains spaces", cmd.Name)
	}
	if strings.HasPrefix(cmd.Name, "-") {
		return fmt.Errorf("command name %q starts with a dash", cmd.Name)
	}
	if cmd.Exec == nil && !cmd.Disabled {
		return fmt.Errorf("command %q has no execution function", cmd.Name)
	}
	return nil
}
