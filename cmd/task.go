package cmd

import (
	"fmt"
	"strconv"

	"github.com/rana/vidq/internal/command"
)

func (a *App) tasks(ctx *command.Context) error {
	if err := noArgs(ctx); err != nil {
		return err
	}
	tasks, err := a.Store.Load()
	if err != nil {
		return err
	}
	ctx.Println("Tasks:")
	printIndexed(ctx, tasks)
	return nil
}

// taskAdd appends each argument as one task
func (a *App) taskAdd(ctx *command.Context) error {
	if len(ctx.Args) == 0 {
		return fmt.Errorf("%w: expected at least one task", errMissingArgs)
	}
	if err := a.Store.Append(ctx.Args...); err != nil {
		return err
	}
	ctx.Printf("Added %d tasks.\n", len(ctx.Args))
	return nil
}

// taskRemove deletes the tasks at the given zero-based indices
func (a *App) taskRemove(ctx *command.Context) error {
	if len(ctx.Args) == 0 {
		return fmt.Errorf("%w: expected at least one index", errMissingArgs)
	}
	indices := make([]int, 0, len(ctx.Args))
	for _, arg := range ctx.Args {
		i, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid task index %q: %w", arg, err)
		}
		indices = append(indices, i)
	}
	if err := a.Store.Remove(indices...); err != nil {
		return err
	}
	ctx.Println("Tasks removed.")
	return nil
}

func (a *App) taskClear(ctx *command.Context) error {
	if err := noArgs(ctx); err != nil {
		return err
	}
	if err := a.Store.Clear(); err != nil {
		return err
	}
	ctx.Println("Task list cleared.")
	return nil
}

func (a *App) taskNumber(ctx *command.Context) error {
	if err := noArgs(ctx); err != nil {
		return err
	}
	n, err := a.Store.Count()
	if err != nil {
		return err
	}
	ctx.Println(n)
	return nil
}
