package main

import (
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"git.home.luguber.info/inful/staticbridge/cmd/staticbridge/commands"
	"git.home.luguber.info/inful/staticbridge/internal/version"
)

func main() {
	// Optional .env; flags resolve from the environment, so load it before parsing.
	_ = godotenv.Load()

	cli := &commands.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("staticbridge"),
		kong.Description("Resolves, normalizes, and caches embedded static-site build configuration."),
		kong.Vars{"version": version.Version},
	)
	err := ctx.Run(&commands.Global{})
	ctx.FatalIfErrorf(err)
}
