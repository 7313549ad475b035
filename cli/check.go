package cli

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-parrot/parrot/core"
	"github.com/urfave/cli/v2"
)

var CheckCommand = &cli.Command{
	Name:  "check",
	Usage: "Validate the config file and every template",
	Action: func(c *cli.Context) error {
		var failed bool

		config := core.LoadConfig(core.ConfigFile)

		if _, err := core.NewSigningKey(config.SecretKey); err != nil {
			failed = true
			fmt.Printf("❌ %s → %v\n", core.ConfigFile, err)
		} else {
			fmt.Printf("✅ %s\n", core.ConfigFile)
		}

		if _, err := os.Stat(config.StaticDir); err != nil {
			fmt.Printf("⚠️  static dir missing: %s\n", config.StaticDir)
		}

		funcs := core.TemplateFuncs("dev", config.StaticDir, config.OutputDir)
		found := 0

		filepath.Walk(config.TemplatesDir, func(path string, info os.FileInfo, err error) error {
			if err != nil || info.IsDir() || !strings.HasSuffix(path, ".html") {
				return nil
			}
			found++

			rel, _ := filepath.Rel(config.TemplatesDir, path)

			tmpl, err := template.New(filepath.Base(path)).Funcs(funcs).ParseFiles(path)
			if err != nil {
				failed = true
				fmt.Printf("❌ %s → parse error: %v\n", rel, err)
				return nil
			}

			var buf bytes.Buffer
			if err := tmpl.ExecuteTemplate(&buf, filepath.Base(path), map[string]interface{}{}); err != nil {
				failed = true
				fmt.Printf("❌ %s → exec error: %v\n", rel, err)
			} else {
				fmt.Printf("✅ %s\n", rel)
			}

			return nil
		})

		if found == 0 {
			failed = true
			fmt.Printf("❌ no templates found in %s\n", config.TemplatesDir)
		}

		if failed {
			return cli.Exit("some checks failed", 1)
		}

		fmt.Println("✅ All templates validated successfully.")
		return nil
	},
}
