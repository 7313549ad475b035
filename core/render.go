package core

import (
	"bytes"
	"html/template"
	"path/filepath"
	"sync"

	"github.com/tdewolff/minify/v2"
	minhtml "github.com/tdewolff/minify/v2/html"
)

// reloadScript is appended to dev-rendered pages so the browser reloads
// when a template or asset changes.
const reloadScript = `<script>
(function () {
	var ws = new WebSocket("ws://" + location.host + "/__parrot_reload");
	ws.onmessage = function (e) {
		if (e.data === "reload") location.reload();
	};
})();
</script>`

// PageRenderer renders the HTML templates under the templates dir. In dev
// every render re-parses from disk and carries the live-reload client; in
// prod the templates are parsed once and the rendered page is minified.
type PageRenderer struct {
	env   string
	dir   string
	funcs template.FuncMap

	parseOnce sync.Once
	tmpl      *template.Template
	parseErr  error

	minifier *minify.M
}

func NewPageRenderer(cfg Config, env string) *PageRenderer {
	r := &PageRenderer{
		env:   env,
		dir:   cfg.TemplatesDir,
		funcs: TemplateFuncs(env, cfg.StaticDir, cfg.OutputDir),
	}

	if cfg.MinifyEnabled {
		m := minify.New()
		m.AddFunc("text/html", minhtml.Minify)
		r.minifier = m
	}

	return r
}

// Render produces the full page for the named template. The returned bytes
// are complete; nothing has been written to the client when an error comes
// back.
func (r *PageRenderer) Render(name string, data map[string]interface{}) ([]byte, error) {
	if data == nil {
		data = map[string]interface{}{}
	}

	tmpl, err := r.lookup(name)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, err
	}

	if r.env != "prod" {
		return injectReloadScript(buf.Bytes()), nil
	}

	if r.minifier != nil {
		return r.minifier.Bytes("text/html", buf.Bytes())
	}
	return buf.Bytes(), nil
}

func (r *PageRenderer) lookup(name string) (*template.Template, error) {
	if r.env == "prod" {
		r.parseOnce.Do(func() {
			r.tmpl, r.parseErr = template.New("parrot").
				Funcs(r.funcs).
				ParseGlob(filepath.Join(r.dir, "*.html"))
		})
		return r.tmpl, r.parseErr
	}

	return template.New(name).Funcs(r.funcs).ParseFiles(filepath.Join(r.dir, name))
}

func injectReloadScript(page []byte) []byte {
	idx := bytes.LastIndex(page, []byte("</body>"))
	if idx == -1 {
		return append(page, reloadScript...)
	}

	out := make([]byte, 0, len(page)+len(reloadScript))
	out = append(out, page[:idx]...)
	out = append(out, reloadScript...)
	out = append(out, page[idx:]...)
	return out
}
