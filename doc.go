// Package dock provides a small framework for command-line applications that read a single line
// of command text, classify it into tokens, and dispatch it to one of a set of registered
// commands. When no enabled command matches, a help listing built from the application's identity
// and its registered commands is printed instead.
//
// An application is assembled with a chain of setters and then run:
//
//	app := dock.New().
//		SetName("greet").
//		SetVersion("0.1.0").
//		Register(dock.Command{
//			Name:        "hello",
//			Description: "say hello",
//			Exec: func(c *dock.Context) {
//				fmt.Fprintln(c.Stdout, "hello")
//			},
//		})
//	if err := app.Run(nil); err != nil {
//		// handle error
//	}
//
// Identity fields can also be loaded from the [package] table of a TOML manifest with
// [FromManifest].
package dock
