package command

import (
	"errors"
	"slices"
	"testing"
)

func noop(*Context) error { return nil }

func TestRegisterRejectsInvalidCommands(t *testing.T) {
	tests := []struct {
		name string
		cmd  *Command
		want error
	}{
		{"nil", nil, ErrEmptyPath},
		{"empty path", New(nil, "", noop), ErrEmptyPath},
		{"empty token", New([]string{"videos", ""}, "", noop), ErrEmptyToken},
		{"nil handler", New([]string{"task"}, "", nil), ErrNilHandler},
		{"alias on multi-token path", New([]string{"videos", "clear"}, "", noop, "vc"), ErrAliasOnMultiTokenPath},
		{"empty alias", New([]string{"task"}, "", noop, ""), ErrEmptyToken},
		{"alias equal to path", New([]string{"task"}, "", noop, "task"), ErrDuplicate},
		{"repeated alias", New([]string{"task"}, "", noop, "t", "t"), ErrDuplicate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			err := r.Register(tt.cmd)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Register() error = %v, want %v", err, tt.want)
			}
			if len(r.Commands()) != 0 {
				t.Fatalf("rejected command was registered")
			}
		})
	}
}

func TestRegisterRejectsCollisions(t *testing.T) {
	tests := []struct {
		name   string
		first  *Command
		second *Command
	}{
		{"same path", New([]string{"task"}, "", noop), New([]string{"task"}, "", noop)},
		{"same multi-token path", New([]string{"videos", "clear"}, "", noop), New([]string{"videos", "clear"}, "", noop)},
		{"alias equals sibling path", New([]string{"commands"}, "", noop), New([]string{"help"}, "", noop, "commands")},
		{"alias equals sibling alias", New([]string{"commands"}, "", noop, "help"), New([]string{"usage"}, "", noop, "help")},
		{"path shadowed by sibling alias", New([]string{"commands"}, "", noop, "help"), New([]string{"help", "me"}, "", noop)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			if err := r.Register(tt.first); err != nil {
				t.Fatalf("first Register() error = %v", err)
			}
			if err := r.Register(tt.second); !errors.Is(err, ErrDuplicate) {
				t.Fatalf("second Register() error = %v, want ErrDuplicate", err)
			}
		})
	}
}

func TestAddRejectsDuplicateSubcommand(t *testing.T) {
	parent := New([]string{"task"}, "", noop)
	if err := parent.Add(New([]string{"clear"}, "", noop)); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := parent.Add(New([]string{"clear"}, "", noop)); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("Add() error = %v, want ErrDuplicate", err)
	}
	if len(parent.Subcommands) != 1 {
		t.Fatalf("expected 1 subcommand, got %d", len(parent.Subcommands))
	}
}

func TestMustRegisterPanics(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(New([]string{"dup"}, "", noop))
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on duplicate register")
		}
	}()
	r.MustRegister(New([]string{"dup"}, "", noop))
}

func TestNewCopiesSlices(t *testing.T) {
	path := []string{"task"}
	aliases := []string{"t"}
	a := New(path, "", noop, aliases...)
	path[0] = "changed"
	aliases[0] = "changed"
	if a.Path[0] != "task" || a.Aliases[0] != "t" {
		t.Fatalf("command shares caller slices: %v %v", a.Path, a.Aliases)
	}

	b := New([]string{"other"}, "", noop)
	a.MustAdd(New([]string{"add"}, "", noop))
	if len(b.Subcommands) != 0 {
		t.Fatalf("subcommands leaked between commands")
	}
}

func TestFind(t *testing.T) {
	r := NewRegistry()
	task := New([]string{"task"}, "Group of task commands.", noop)
	task.MustAdd(New([]string{"add"}, "Add some tasks.", noop))
	task.MustAdd(New([]string{"remove"}, "Remove some tasks.", noop, "rm"))
	r.MustRegister(task)
	r.MustRegister(New([]string{"videos", "clear"}, "Remove files.", noop))
	r.MustRegister(New([]string{"videos"}, "List videos.", noop))

	tests := []struct {
		argv     []string
		wantDesc string
		wantRest []string
		wantOK   bool
	}{
		{[]string{"task"}, "Group of task commands.", []string{}, true},
		{[]string{"task", "add", "x"}, "Add some tasks.", []string{"x"}, true},
		{[]string{"task", "rm", "1"}, "Remove some tasks.", []string{"1"}, true},
		{[]string{"task", "unknown"}, "Group of task commands.", []string{"unknown"}, true},
		{[]string{"videos", "clear"}, "Remove files.", []string{}, true},
		{[]string{"videos", "parsed"}, "List videos.", []string{"parsed"}, true},
		{[]string{"nothing"}, "", nil, false},
		{nil, "", nil, false},
	}

	for _, tt := range tests {
		cmd, rest, ok := r.Find(tt.argv)
		if ok != tt.wantOK {
			t.Errorf("Find(%v) ok = %v, want %v", tt.argv, ok, tt.wantOK)
			continue
		}
		if !ok {
			continue
		}
		if cmd.Description != tt.wantDesc {
			t.Errorf("Find(%v) = %q, want %q", tt.argv, cmd.Description, tt.wantDesc)
		}
		if !slices.Equal(rest, tt.wantRest) {
			t.Errorf("Find(%v) rest = %v, want %v", tt.argv, rest, tt.wantRest)
		}
	}
}

func TestDescribe(t *testing.T) {
	r := NewRegistry()
	task := New([]string{"task"}, "Group of task commands.", noop)
	task.MustAdd(New([]string{"number"}, "Print the number of tasks.", noop))
	r.MustRegister(task)

	if desc, ok := r.Describe([]string{"task", "number"}); !ok || desc != "Print the number of tasks." {
		t.Errorf("Describe(task number) = %q, %v", desc, ok)
	}
	if _, ok := r.Describe([]string{"task", "bogus"}); ok {
		t.Errorf("Describe(task bogus) should not resolve")
	}
}

func TestAllSortedByPath(t *testing.T) {
	r := NewRegistry()
	videos := New([]string{"videos"}, "List videos.", noop)
	videos.MustAdd(New([]string{"parsed"}, "Parsed.", noop))
	videos.MustAdd(New([]string{"clear"}, "Clear.", noop))
	task := New([]string{"task"}, "Tasks.", noop)
	task.MustAdd(New([]string{"remove"}, "Remove.", noop, "rm"))
	r.MustRegister(videos)
	r.MustRegister(task)
	r.MustRegister(New([]string{"download"}, "Download.", noop))

	var got []string
	for _, e := range r.All() {
		got = append(got, e.String())
	}
	want := []string{
		"download: Download.",
		"task: Tasks.",
		"task remove[rm]: Remove.",
		"videos: List videos.",
		"videos clear: Clear.",
		"videos parsed: Parsed.",
	}
	if !slices.Equal(got, want) {
		t.Fatalf("All() = %q\nwant %q", got, want)
	}
}
