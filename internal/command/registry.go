package command

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
)

var (
	ErrEmptyPath             = errors.New("command path is empty")
	ErrEmptyToken            = errors.New("command path contains an empty token")
	ErrNilHandler            = errors.New("command has no handler")
	ErrAliasOnMultiTokenPath = errors.New("aliases are only allowed on single-token paths")
	ErrDuplicate             = errors.New("command already registered")
)

// Handler executes a command given the dispatch context.
type Handler func(*Context) error

// Command is a node in the command tree.
type Command struct {
	Path        []string
	Aliases     []string
	Description string
	Handler     Handler
	Subcommands []*Command
}

// New returns a command with its own copies of path and aliases.
func New(path []string, description string, h Handler, aliases ...string) *Command {
	return &Command{
		Path:        slices.Clone(path),
		Aliases:     slices.Clone(aliases),
		Description: description,
		Handler:     h,
	}
}

// Name returns the path joined with spaces.
func (c *Command) Name() string {
	return strings.Join(c.Path, " ")
}

// Add validates sub against the existing children and appends it.
func (c *Command) Add(sub *Command) error {
	if err := validate(c.Subcommands, sub); err != nil {
		return fmt.Errorf("%s: %w", c.Name(), err)
	}
	c.Subcommands = append(c.Subcommands, sub)
	return nil
}

// MustAdd is Add for static tables. It panics on error.
func (c *Command) MustAdd(sub *Command) *Command {
	if err := c.Add(sub); err != nil {
		panic(err)
	}
	return c
}

// match reports how many tokens of argv the command consumes.
func (c *Command) match(argv []string) (int, bool) {
	if len(argv) >= len(c.Path) && slices.Equal(argv[:len(c.Path)], c.Path) {
		return len(c.Path), true
	}
	if len(c.Path) == 1 && len(argv) > 0 && slices.Contains(c.Aliases, argv[0]) {
		return 1, true
	}
	return 0, false
}

// Registry holds the top-level commands in declaration order.
type Registry struct {
	commands []*Command
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register validates cmd and appends it to the top level.
func (r *Registry) Register(cmd *Command) error {
	if err := validate(r.commands, cmd); err != nil {
		return err
	}
	r.commands = append(r.commands, cmd)
	return nil
}

// MustRegister is Register for static tables. It panics on error.
func (r *Registry) MustRegister(cmd *Command) {
	if err := r.Register(cmd); err != nil {
		panic(err)
	}
}

// Commands returns the top-level commands in declaration order.
func (r *Registry) Commands() []*Command {
	return slices.Clone(r.commands)
}

// Find resolves argv to the most specific command and the unconsumed tokens.
func (r *Registry) Find(argv []string) (*Command, []string, bool) {
	cmd, rest, _, ok := find(r.commands, argv)
	return cmd, rest, ok
}

// Describe returns the description of the command named by path.
func (r *Registry) Describe(path []string) (string, bool) {
	cmd, rest, ok := r.Find(path)
	if !ok || len(rest) > 0 {
		return "", false
	}
	return cmd.Description, true
}

// find walks down the tree while a subcommand matches the remaining tokens.
// It also returns the canonical full path of the match.
func find(cmds []*Command, argv []string) (*Command, []string, []string, bool) {
	var (
		matched *Command
		rest    []string
		path    []string
	)
	for {
		cmd, n, ok := first(cmds, argv)
		if !ok {
			break
		}
		matched, rest = cmd, argv[n:]
		path = append(path, cmd.Path...)
		if len(rest) == 0 || len(cmd.Subcommands) == 0 {
			break
		}
		if _, _, ok := first(cmd.Subcommands, rest); !ok {
			break
		}
		cmds, argv = cmd.Subcommands, rest
	}
	return matched, rest, path, matched != nil
}

// first returns the first command in declaration order matching argv.
func first(cmds []*Command, argv []string) (*Command, int, bool) {
	for _, cmd := range cmds {
		if n, ok := cmd.match(argv); ok {
			return cmd, n, true
		}
	}
	return nil, 0, false
}

// Entry is a command together with its full path from the root.
type Entry struct {
	Path    []string
	Command *Command
}

// String renders the entry for command listings.
func (e Entry) String() string {
	s := strings.Join(e.Path, " ")
	if len(e.Command.Aliases) > 0 {
		s += "[" + strings.Join(e.Command.Aliases, "|") + "]"
	}
	return s + ": " + e.Command.Description
}

// All returns every registered command sorted by full path.
func (r *Registry) All() []Entry {
	var entries []Entry
	var walk func(prefix []string, cmds []*Command)
	walk = func(prefix []string, cmds []*Command) {
		for _, cmd := range cmds {
			path := append(slices.Clone(prefix), cmd.Path...)
			entries = append(entries, Entry{Path: path, Command: cmd})
			walk(path, cmd.Subcommands)
		}
	}
	walk(nil, r.commands)

	sort.SliceStable(entries, func(i, j int) bool {
		return slices.Compare(entries[i].Path, entries[j].Path) < 0
	})
	return entries
}

// validate checks cmd on its own and against the siblings it would join.
func validate(siblings []*Command, cmd *Command) error {
	if cmd == nil || len(cmd.Path) == 0 {
		return ErrEmptyPath
	}
	name := cmd.Name()
	for _, tok := range cmd.Path {
		if tok == "" {
			return fmt.Errorf("%q: %w", name, ErrEmptyToken)
		}
	}
	if cmd.Handler == nil {
		return fmt.Errorf("%q: %w", name, ErrNilHandler)
	}
	if len(cmd.Aliases) > 0 && len(cmd.Path) != 1 {
		return fmt.Errorf("%q: %w", name, ErrAliasOnMultiTokenPath)
	}

	for _, s := range siblings {
		if slices.Equal(s.Path, cmd.Path) {
			return fmt.Errorf("%q: %w", name, ErrDuplicate)
		}
		for _, alias := range cmd.Aliases {
			if alias == s.Path[0] || slices.Contains(s.Aliases, alias) {
				return fmt.Errorf("alias %q of %q: %w", alias, name, ErrDuplicate)
			}
		}
		for _, alias := range s.Aliases {
			if alias == cmd.Path[0] {
				return fmt.Errorf("%q shadowed by alias of %q: %w", name, s.Name(), ErrDuplicate)
			}
		}
	}
	for i, alias := range cmd.Aliases {
		if alias == "" {
			return fmt.Errorf("alias of %q: %w", name, ErrEmptyToken)
		}
		if alias == cmd.Path[0] || slices.Contains(cmd.Aliases[:i], alias) {
			return fmt.Errorf("alias %q of %q: %w", alias, name, ErrDuplicate)
		}
	}
	return nil
}
