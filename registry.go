package dock

// Registry is an insertion-ordered list of commands. Iteration order, help order and lookup order
// are all the order in which commands were registered.
//
// A Registry is meant to be filled during setup and only read afterwards. It is not safe for
// concurrent use.
type Registry struct {
	commands []Command
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a copy of cmd and returns the registry for chaining. Names are not checked for
// collisions; see [Registry.Resolve].
func (r *Registry) Register(cmd Command) *Registry {
	r.commands = append(r.commands, cmd.clone())
	return r
}

// Resolve returns the first enabled command whose name equals name. Disabled commands are skipped
// as if absent, so an enabled command registered later under the same name can still be found.
func (r *Registry) Resolve(name string) (Command, bool) {
	for _, cmd := range r.commands {
		if cmd.Disabled || cmd.Name != name {
			continue
		}
		return cmd.clone(), true
	}
	return Command{}, false
}

// Enabled returns copies of all enabled commands in registration order. Later registrations do
// not change a returned slice.
func (r *Registry) Enabled() []Command {
	out := make([]Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		if cmd.Disabled {
			continue
		}
		out = append(out, cmd.clone())
	}
	return out
}

// All returns copies of every registered command, disabled ones included.
func (r *Registry) All() []Command {
	out := make([]Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		out = append(out, cmd.clone())
	}
	return out
}

// Len returns the number of registered commands, disabled ones included.
func (r *Registry) Len() int {
	return len(r.commands)
}

func (r *Registry) enabledNames() []string {
	var names []string
	for _, cmd := range r.commands {
		if !cmd.Disabled {
			names = append(names, cmd.Name)
		}
	}
	return names
}

func (r *Registry) validate() error {
	for _, cmd := range r.commands {
		if err := validateCommand(cmd); err != nil {
			return NewError(ErrInvalidCommand, err)
		}
	}
	return nil
}
