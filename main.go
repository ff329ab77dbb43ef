package main

import (
	"github.com/alecthomas/kong"

	"github.com/hoplog/hoplog/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("hoplog"), kong.Description("HopLog is a craft beer catalog and review backend."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}
