package main

import (
	"github.com/alecthomas/kong"

	"droscher.com/BeerCatalog/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("BeerCatalog"), kong.Description("BeerCatalog serves a catalogue of beers, breweries and styles."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}
