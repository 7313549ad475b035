package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-parrot/parrot/core"
	"github.com/urfave/cli/v2"
)

var CleanCommand = &cli.Command{
	Name:      "clean",
	Usage:     "Delete generated assets from the output directory (default: outputDir in parrot.config.yml)",
	ArgsUsage: "[asset path (optional)]",
	Action: func(c *cli.Context) error {
		config := core.LoadConfig(core.ConfigFile)
		target := config.OutputDir

		if c.Args().Len() > 0 {
			asset := c.Args().Get(0)
			asset = strings.TrimPrefix(asset, "/")
			target = filepath.Join(config.OutputDir, asset)
		}

		info, err := os.Stat(target)
		if err != nil {
			if os.IsNotExist(err) {
				fmt.Println("🧼 Nothing to clean:", target)
				return nil
			}
			return fmt.Errorf("failed to access path: %w", err)
		}

		if !info.IsDir() {
			return fmt.Errorf("not a directory: %s", target)
		}

		fmt.Println("🧹 Cleaning:", target)
		if err := os.RemoveAll(target); err != nil {
			return fmt.Errorf("failed to clean output: %w", err)
		}

		fmt.Println("✅ Done.")
		return nil
	},
}
