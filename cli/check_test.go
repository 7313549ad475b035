package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"
)

func setupCheckSite(t *testing.T, indexHTML string) string {
	t.Helper()

	tmpDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(tmpDir, "templates"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(tmpDir, "static"), 0755); err != nil {
		t.Fatal(err)
	}
	if indexHTML != "" {
		if err := os.WriteFile(filepath.Join(tmpDir, "templates", "index.html"), []byte(indexHTML), 0644); err != nil {
			t.Fatal(err)
		}
	}

	origDir, _ := os.Getwd()
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(origDir) })

	return tmpDir
}

func runCheck(t *testing.T) (string, error) {
	t.Helper()

	app := &cli.App{
		Commands:       []*cli.Command{CheckCommand},
		ExitErrHandler: func(c *cli.Context, err error) {},
	}

	var runErr error
	output := captureOutput(func() {
		runErr = app.Run([]string{"parrot", "check"})
	})
	return output, runErr
}

func TestCheckCommand_ValidSite(t *testing.T) {
	setupCheckSite(t, "<html><body><h1>Hello</h1></body></html>")

	output, err := runCheck(t)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if !strings.Contains(output, "✅ parrot.config.yml") {
		t.Errorf("expected config success marker, got:\n%s", output)
	}
	if !strings.Contains(output, "✅ index.html") {
		t.Errorf("expected template success marker, got:\n%s", output)
	}
	if !strings.Contains(output, "✅ All templates validated successfully.") {
		t.Errorf("expected final success message, got:\n%s", output)
	}
}

func TestCheckCommand_ParseError(t *testing.T) {
	setupCheckSite(t, `{{ if }}broken{{ end }}`)

	output, err := runCheck(t)

	if !strings.Contains(output, "❌ index.html → parse error:") {
		t.Errorf("expected parse error, got:\n%s", output)
	}

	exitErr, ok := err.(cli.ExitCoder)
	if !ok || exitErr.ExitCode() != 1 {
		t.Fatalf("expected cli.Exit code 1, got: %v", err)
	}
}

func TestCheckCommand_ExecError(t *testing.T) {
	setupCheckSite(t, `{{ template "missing" . }}`)

	output, err := runCheck(t)

	if !strings.Contains(output, "❌ index.html → exec error:") {
		t.Errorf("expected exec error message, got:\n%s", output)
	}

	exitErr, ok := err.(cli.ExitCoder)
	if !ok || exitErr.ExitCode() != 1 {
		t.Fatalf("expected cli.Exit code 1, got: %v", err)
	}
}

func TestCheckCommand_NoTemplates(t *testing.T) {
	setupCheckSite(t, "")

	output, err := runCheck(t)

	if !strings.Contains(output, "❌ no templates found in templates") {
		t.Errorf("expected no-templates error, got:\n%s", output)
	}

	exitErr, ok := err.(cli.ExitCoder)
	if !ok || exitErr.ExitCode() != 1 {
		t.Fatalf("expected cli.Exit code 1, got: %v", err)
	}
}

func TestCheckCommand_InvalidSecretKey(t *testing.T) {
	tmpDir := setupCheckSite(t, "<html></html>")

	configYAML := "secretKey: not-hex!\n"
	if err := os.WriteFile(filepath.Join(tmpDir, "parrot.config.yml"), []byte(configYAML), 0644); err != nil {
		t.Fatal(err)
	}

	output, err := runCheck(t)

	if !strings.Contains(output, "❌ parrot.config.yml →") {
		t.Errorf("expected config error marker, got:\n%s", output)
	}

	exitErr, ok := err.(cli.ExitCoder)
	if !ok || exitErr.ExitCode() != 1 {
		t.Fatalf("expected cli.Exit code 1, got: %v", err)
	}
}

func TestCheckCommand_WarnsWhenStaticDirMissing(t *testing.T) {
	tmpDir := setupCheckSite(t, "<html></html>")
	_ = os.RemoveAll(filepath.Join(tmpDir, "static"))

	output, err := runCheck(t)
	if err != nil {
		t.Fatalf("expected warning only, got error: %v", err)
	}

	if !strings.Contains(output, "⚠️  static dir missing: static") {
		t.Errorf("expected static dir warning, got:\n%s", output)
	}
}
