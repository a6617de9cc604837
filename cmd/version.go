package cmd

import (
	"github.com/rana/vidq/internal/command"
	"github.com/rana/vidq/internal/version"
)

func (a *App) version(ctx *command.Context) error {
	ctx.Println(version.String())
	return nil
}
