package cmd

import (
	"strings"

	"github.com/rana/vidq/internal/command"
)

// help lists every command, or describes the command named by the args
func (a *App) help(ctx *command.Context) error {
	if len(ctx.Args) > 0 {
		desc, ok := a.Registry.Describe(ctx.Args)
		if !ok {
			ctx.Printf("The command %s does not exist.\n", strings.Join(ctx.Args, " "))
			return nil
		}
		ctx.Printf("%s: %s\n", strings.Join(ctx.Args, " "), desc)
		return nil
	}

	ctx.Println("Commands:")
	for _, e := range a.Registry.All() {
		ctx.Printf("* %s\n", e)
	}
	return nil
}

func (a *App) options(ctx *command.Context) error {
	if err := noArgs(ctx); err != nil {
		return err
	}
	ctx.Println("Options:")
	for _, opt := range a.Config.Options() {
		ctx.Printf("* %s: %s\n", opt.Key, opt.Value)
	}
	return nil
}
