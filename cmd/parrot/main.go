package main

import (
	"log"
	"os"

	parrotcli "github.com/go-parrot/parrot/cli"
	clilib "github.com/urfave/cli/v2"
)

func runApp(args []string) error {
	app := &clilib.App{
		Name:  "parrot",
		Usage: "A tiny echo-form web server powered by Go",
		Commands: []*clilib.Command{
			parrotcli.InitCommand,
			parrotcli.DevCommand,
			parrotcli.ProdCommand,
			parrotcli.BuildCommand,
			parrotcli.CleanCommand,
			parrotcli.CheckCommand,
			parrotcli.InfoCommand,
		},
	}

	return app.Run(args)
}

func main() {
	if err := runApp(os.Args); err != nil {
		log.Fatal(err)
	}
}
