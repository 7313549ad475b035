package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-parrot/parrot/core"
	"github.com/urfave/cli/v2"
)

var InfoCommand = &cli.Command{
	Name:  "info",
	Usage: "Print project structure and asset summary",
	Action: func(c *cli.Context) error {
		config := core.LoadConfig(core.ConfigFile)

		fmt.Println("📁 Templates Directory:", config.TemplatesDir)
		fmt.Println("📁 Static Directory:", config.StaticDir)
		fmt.Println("📁 Output Directory:", config.OutputDir)
		fmt.Println("🔁 Debug Headers Enabled:", config.DebugHeaders)
		fmt.Println("🔁 Debug Logs Enabled:", config.DebugLogs)
		fmt.Println()

		templateCount := countFiles(config.TemplatesDir, ".html")
		staticCount := countFiles(config.StaticDir, "")
		distCount := countFiles(config.OutputDir, "")

		fmt.Println("🗂️  Templates Found:", templateCount)
		fmt.Println("🖼️  Static Assets Found:", staticCount)
		fmt.Println("📦 Generated Artifacts:", distCount)

		return nil
	},
}

func countFiles(dir, suffix string) int {
	count := 0
	filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() && strings.HasSuffix(path, suffix) {
			count++
		}
		return nil
	})
	return count
}
