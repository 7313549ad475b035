package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-parrot/parrot/core"
	"github.com/urfave/cli/v2"
)

func TestBuildCommand_MinifiesAssets(t *testing.T) {
	staticDir := t.TempDir()
	outDir := t.TempDir()

	_ = os.WriteFile(filepath.Join(staticDir, "style.css"), []byte("body { color: red; }"), 0644)
	_ = os.WriteFile(filepath.Join(staticDir, "app.js"), []byte("console.log( 'hi' )"), 0644)

	var err error
	var output string
	overrideLoadConfig(&core.Config{StaticDir: staticDir, OutputDir: outDir}, func() {
		output = captureOutput(func() {
			err = BuildCommand.Action(nil)
		})
	})

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	for _, artifact := range []string{
		"style.min.css", "style.min.css.gz",
		"app.min.js", "app.min.js.gz",
	} {
		if _, statErr := os.Stat(filepath.Join(outDir, "static", artifact)); statErr != nil {
			t.Errorf("expected artifact %s to exist: %v", artifact, statErr)
		}
	}

	if !strings.Contains(output, "✅ /static/style.css →") {
		t.Errorf("expected per-asset success line, got:\n%s", output)
	}
	if !strings.Contains(output, "✅ All assets built successfully.") {
		t.Errorf("expected final success message, got:\n%s", output)
	}
}

func TestBuildCommand_ReportsNestedAssetPaths(t *testing.T) {
	staticDir := t.TempDir()
	outDir := t.TempDir()

	cssDir := filepath.Join(staticDir, "css")
	_ = os.MkdirAll(cssDir, 0755)
	_ = os.WriteFile(filepath.Join(cssDir, "site.css"), []byte("h1 { margin: 0; }"), 0644)

	var err error
	var output string
	overrideLoadConfig(&core.Config{StaticDir: staticDir, OutputDir: outDir}, func() {
		output = captureOutput(func() {
			err = BuildCommand.Action(nil)
		})
	})

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if !strings.Contains(output, "🔧 Minifying: /static/css/site.css") {
		t.Errorf("expected nested asset path in output, got:\n%s", output)
	}
}

func TestBuildCommand_SkipsMinifiedAndUnsupportedFiles(t *testing.T) {
	staticDir := t.TempDir()
	outDir := t.TempDir()

	_ = os.WriteFile(filepath.Join(staticDir, "vendor.min.js"), []byte("var a=1"), 0644)
	_ = os.WriteFile(filepath.Join(staticDir, "logo.png"), []byte{0x89, 0x50}, 0644)

	var err error
	var output string
	overrideLoadConfig(&core.Config{StaticDir: staticDir, OutputDir: outDir}, func() {
		output = captureOutput(func() {
			err = BuildCommand.Action(nil)
		})
	})

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if !strings.Contains(output, "⚠️  no css or js assets found in") {
		t.Errorf("expected no-assets warning, got:\n%s", output)
	}
}

func TestBuildCommand_MissingStaticDir(t *testing.T) {
	outDir := t.TempDir()

	var err error
	var output string
	overrideLoadConfig(&core.Config{StaticDir: filepath.Join(outDir, "nope"), OutputDir: outDir}, func() {
		output = captureOutput(func() {
			err = BuildCommand.Action(nil)
		})
	})

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if !strings.Contains(output, "⚠️  static dir missing:") {
		t.Errorf("expected missing static dir warning, got:\n%s", output)
	}
}

func TestBuildCommand_BrokenAssetFailsBuild(t *testing.T) {
	staticDir := t.TempDir()
	outDir := t.TempDir()

	_ = os.WriteFile(filepath.Join(staticDir, "broken.js"), []byte("function(){"), 0644)

	var err error
	var output string
	overrideLoadConfig(&core.Config{StaticDir: staticDir, OutputDir: outDir}, func() {
		output = captureOutput(func() {
			err = BuildCommand.Action(nil)
		})
	})

	if !strings.Contains(output, "❌ /static/broken.js → minify failed") {
		t.Errorf("expected failure line, got:\n%s", output)
	}

	exitErr, ok := err.(cli.ExitCoder)
	if !ok || exitErr.ExitCode() != 1 {
		t.Fatalf("expected cli.Exit code 1, got: %v", err)
	}
}

func TestBuildCommand_MinifySeamFailure(t *testing.T) {
	staticDir := t.TempDir()
	outDir := t.TempDir()

	_ = os.WriteFile(filepath.Join(staticDir, "style.css"), []byte("body { color: red; }"), 0644)

	original := minifyAssetFunc
	minifyAssetFunc = func(env, path, static, out string) string {
		return path
	}
	defer func() { minifyAssetFunc = original }()

	var err error
	overrideLoadConfig(&core.Config{StaticDir: staticDir, OutputDir: outDir}, func() {
		_ = captureOutput(func() {
			err = BuildCommand.Action(nil)
		})
	})

	exitErr, ok := err.(cli.ExitCoder)
	if !ok || exitErr.ExitCode() != 1 {
		t.Fatalf("expected cli.Exit code 1, got: %v", err)
	}
}
