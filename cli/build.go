package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-parrot/parrot/core"
	"github.com/urfave/cli/v2"
)

var minifyAssetFunc = core.MinifyAsset

var BuildCommand = &cli.Command{
	Name:  "build",
	Usage: "Minify all css and js assets into the output directory for production use",
	Action: func(c *cli.Context) error {
		config := core.LoadConfig(core.ConfigFile)

		if _, err := os.Stat(config.StaticDir); os.IsNotExist(err) {
			fmt.Println("⚠️  static dir missing:", config.StaticDir)
			return nil
		}

		fmt.Println("📦 Building assets from:", config.StaticDir)

		found := 0
		failed := 0

		err := filepath.WalkDir(config.StaticDir, func(path string, d os.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}

			ext := filepath.Ext(path)
			if ext != ".css" && ext != ".js" {
				return nil
			}
			if strings.Contains(filepath.Base(path), ".min") {
				return nil
			}

			rel, err := filepath.Rel(config.StaticDir, path)
			if err != nil {
				return nil
			}
			urlPath := "/static/" + filepath.ToSlash(rel)

			found++
			fmt.Println("🔧 Minifying:", urlPath)

			built := minifyAssetFunc("prod", urlPath, config.StaticDir, config.OutputDir)
			if built == urlPath {
				fmt.Printf("❌ %s → minify failed\n", urlPath)
				failed++
				return nil
			}

			fmt.Printf("✅ %s → %s\n", urlPath, built)
			return nil
		})
		if err != nil {
			return err
		}

		if found == 0 {
			fmt.Println("⚠️  no css or js assets found in", config.StaticDir)
			return nil
		}

		if failed > 0 {
			return cli.Exit("some assets failed to build", 1)
		}

		fmt.Println("✅ All assets built successfully.")
		return nil
	},
}
