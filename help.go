package dock

import (
	"strings"
)

// HelpRenderer produces the help text printed when the input does not select an enabled command.
// RenderColored is used when the output supports color, Render otherwise.
type HelpRenderer interface {
	Render() string
	RenderColored() string
}

// DefaultHelp is the help renderer used when none has been installed with [App.SetHelp].
//
// Its output has three sections: a header with the name, version and description, one line per
// enabled command, and a footer with the authors. The header is followed by a blank line, each
// command line ends with a newline, and a blank line precedes the footer.
type DefaultHelp struct {
	config   Config
	commands []Command
	palette  palette
}

var _ HelpRenderer = (*DefaultHelp)(nil)

// NewDefaultHelp returns a renderer for cfg and commands. Both are copied, and disabled commands
// are dropped.
func NewDefaultHelp(cfg Config, commands []Command) *DefaultHelp {
	enabled := make([]Command, 0, len(commands))
	for _, cmd := range commands {
		if !cmd.Disabled {
			enabled = append(enabled, cmd.clone())
		}
	}
	return &DefaultHelp{
		config:   cfg.Clone(),
		commands: enabled,
		palette:  defaultPalette,
	}
}

func (h *DefaultHelp) Render() string {
	return h.assemble(h.header(), h.body(), h.footer())
}

func (h *DefaultHelp) RenderColored() string {
	return h.assemble(h.headerColored(), h.bodyColored(), h.footerColored())
}

func (h *DefaultHelp) assemble(header, body, footer string) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(footer)
	return b.String()
}

func (h *DefaultHelp) header() string {
	return h.config.Name + " " + h.config.Version + "\n" + h.config.Description
}

func (h *DefaultHelp) headerColored() string {
	return h.palette.header(h.config.Name) + " " +
		h.palette.header(h.config.Version) + "\n" +
		h.config.Description
}

func (h *DefaultHelp) body() string {
	var b strings.Builder
	for _, cmd := range h.commands {
		b.WriteString(cmd.display())
		b.WriteString("\n")
	}
	return b.String()
}

func (h *DefaultHelp) bodyColored() string {
	var b strings.Builder
	for _, cmd := range h.commands {
		b.WriteString(cmd.displayColored(h.palette))
		b.WriteString("\n")
	}
	return b.String()
}

func (h *DefaultHelp) footer() string {
	return strings.Join(h.config.Authors, ", ")
}

func (h *DefaultHelp) footerColored() string {
	return h.palette.header(h.footer())
}
