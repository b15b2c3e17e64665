package dock

import "slices"

// Config holds the identity of an application: its name, description, authors and version. Every
// field is optional; an unset field renders as an empty string.
//
// Config is a value type. The With* methods return an updated copy and never modify the receiver.
type Config struct {
	Name        string
	Description string
	Authors     []string
	Version     string
}

// WithName returns a copy of c with the name set.
func (c Config) WithName(name string) Config {
	c.Name = name
	return c
}

// WithDescription returns a copy of c with the description set.
func (c Config) WithDescription(description string) Config {
	c.Description = description
	return c
}

// WithAuthors returns a copy of c with the authors set. The slice is copied.
func (c Config) WithAuthors(authors []string) Config {
	c.Authors = slices.Clone(authors)
	return c
}

// WithVersion returns a copy of c with the version set.
func (c Config) WithVersion(version string) Config {
	c.Version = version
	return c
}

// Clone returns a deep copy of c.
func (c Config) Clone() Config {
	c.Authors = slices.Clone(c.Authors)
	return c
}
