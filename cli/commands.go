package cli

import (
	"github.com/go-parrot/parrot"
	"github.com/go-parrot/parrot/core"

	"github.com/urfave/cli/v2"
)

var DevCommand = &cli.Command{
	Name:  "dev",
	Usage: "Start parrot in dev mode (no minification, live reload)",
	Action: func(c *cli.Context) error {
		config := core.LoadConfig(core.ConfigFile)
		parrot.Start(parrot.RuntimeConfig{
			Env:          "dev",
			EnableMinify: false,
			Port:         config.Port,
		})
		return nil
	},
}

var ProdCommand = &cli.Command{
	Name:  "prod",
	Usage: "Start parrot in production mode (minification on by default)",
	Action: func(c *cli.Context) error {
		config := core.LoadConfig(core.ConfigFile)
		parrot.Start(parrot.RuntimeConfig{
			Env:          "prod",
			EnableMinify: true,
			Port:         config.Port,
		})
		return nil
	},
}
