package command

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Context carries what a handler needs for one invocation.
type Context struct {
	context.Context
	Path []string // full path of the matched command
	Args []string
	Out  io.Writer
	Log  logrus.FieldLogger
}

// Printf writes formatted output for the user.
func (c *Context) Printf(format string, args ...any) {
	fmt.Fprintf(c.Out, format, args...)
}

// Println writes a line of output for the user.
func (c *Context) Println(args ...any) {
	fmt.Fprintln(c.Out, args...)
}

// Dispatcher routes argument vectors to registered handlers.
type Dispatcher struct {
	registry *Registry
	out      io.Writer
	log      logrus.FieldLogger
}

// NewDispatcher creates a dispatcher over reg writing user output to out.
func NewDispatcher(reg *Registry, out io.Writer, log logrus.FieldLogger) *Dispatcher {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Dispatcher{registry: reg, out: out, log: log}
}

// Dispatch finds the command for argv and runs it with the remaining tokens.
// An unknown command is reported to the user and is not an error.
func (d *Dispatcher) Dispatch(ctx context.Context, argv []string) error {
	cmd, rest, path, ok := find(d.registry.commands, argv)
	if !ok {
		if len(argv) == 0 {
			fmt.Fprintln(d.out, "No command given.")
		} else {
			fmt.Fprintf(d.out, "No command named '%s'.\n", strings.Join(argv, " "))
		}
		fmt.Fprintln(d.out, "Use the 'help' command to see available commands.")
		d.log.WithField("argv", argv).Debug("no matching command")
		return nil
	}

	name := strings.Join(path, " ")
	d.log.WithFields(logrus.Fields{"command": name, "args": rest}).Debug("dispatching")

	err := cmd.Handler(&Context{
		Context: ctx,
		Path:    path,
		Args:    rest,
		Out:     d.out,
		Log:     d.log.WithField("command", name),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
