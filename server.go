package parrot

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-parrot/parrot/core"
)

// RuntimeConfig is what the CLI hands Start; everything else comes from
// parrot.config.yml.
type RuntimeConfig struct {
	Env          string
	EnableMinify bool
	Port         int
}

var (
	ListenAndServe = http.ListenAndServe
	Exit           = os.Exit
)

var Start = func(cfg RuntimeConfig) {
	fmt.Println("Starting parrot in", cfg.Env, "mode...")

	addr, handler := BuildServer(cfg)

	fmt.Printf("✅ parrot running at http://localhost:%d\n", cfg.Port)
	if err := ListenAndServe(addr, handler); err != nil {
		fmt.Fprintln(os.Stderr, "❌ Server failed:", err)
		Exit(1)
	}
}

// BuildServer assembles the full handler tree for the given runtime mode
// and returns the listen address alongside it.
func BuildServer(cfg RuntimeConfig) (string, http.Handler) {
	config := core.LoadConfig(core.ConfigFile)
	config.MinifyEnabled = cfg.EnableMinify
	core.SetDebugLogs(config.DebugLogs)

	secret, err := core.NewSigningKey(config.SecretKey)
	if err != nil {
		fmt.Fprintln(os.Stderr, "❌ Invalid config:", err)
		Exit(1)
	}

	mux := http.NewServeMux()

	staticDir := config.StaticDir
	distStaticDir := filepath.Join(config.OutputDir, "static")

	if cfg.Env == "dev" {
		setupDevStaticRoutes(mux, staticDir)
	} else {
		mux.Handle("/static/", makeStaticHandler(staticDir, distStaticDir))

		mux.HandleFunc("/favicon.ico", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
			http.ServeFile(w, r, filepath.Join(staticDir, "favicon.ico"))
		})

		mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
			http.ServeFile(w, r, filepath.Join(staticDir, "robots.txt"))
		})
	}

	mux.HandleFunc("/healthz", core.HealthHandler(cfg.Env))

	ctx := core.RuntimeContext{
		Env:    cfg.Env,
		Secret: secret,
	}

	if cfg.Env == "dev" {
		reloader := core.NewLiveReloader()
		mux.HandleFunc("/__parrot_reload", reloader.Handler)
		ctx.EnableWatch = true
		ctx.OnReload = reloader.BroadcastReload
	}

	mux.Handle("/", core.NewRouter(*config, ctx))

	return fmt.Sprintf(":%d", cfg.Port), core.RequestLogger(mux)
}

func setupDevStaticRoutes(mux *http.ServeMux, staticDir string) {
	staticHandler := http.StripPrefix("/static/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		http.FileServer(http.Dir(staticDir)).ServeHTTP(w, r)
	}))
	mux.Handle("/static/", staticHandler)

	mux.HandleFunc("/favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		http.ServeFile(w, r, filepath.Join(staticDir, "favicon.ico"))
	})

	mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		http.ServeFile(w, r, filepath.Join(staticDir, "robots.txt"))
	})
}

// makeStaticHandler serves /static/ for prod: minified artifacts from the
// dist dir win, the source static dir is the fallback.
func makeStaticHandler(staticDir, distDir string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uri := r.URL.Path
		if i := strings.Index(uri, "?"); i != -1 {
			uri = uri[:i]
		}
		trimmed := strings.TrimPrefix(uri, "/static/")

		if strings.Contains(trimmed, "..") {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}

		distFile := filepath.Join(distDir, trimmed)
		gzipFile := distFile + ".gz"

		if acceptsGzip(r) {
			if _, err := os.Stat(gzipFile); err == nil {
				w.Header().Set("Content-Type", detectMimeType(distFile))
				w.Header().Set("Content-Encoding", "gzip")
				w.Header().Set("Vary", "Accept-Encoding")
				w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
				http.ServeFile(w, r, gzipFile)
				return
			}
		}

		if _, err := os.Stat(distFile); err == nil {
			serveFileWithHeaders(w, r, distFile, "public, max-age=31536000, immutable")
			return
		}

		staticFile := filepath.Join(staticDir, trimmed)
		if _, err := os.Stat(staticFile); err == nil {
			serveFileWithHeaders(w, r, staticFile, "public, max-age=31536000, immutable")
			return
		}

		http.NotFound(w, r)
	})
}

func serveFileWithHeaders(w http.ResponseWriter, r *http.Request, path, cacheControl string) {
	w.Header().Set("Content-Type", detectMimeType(path))
	w.Header().Set("Cache-Control", cacheControl)
	http.ServeFile(w, r, path)
}

func detectMimeType(path string) string {
	switch filepath.Ext(path) {
	case ".css":
		return "text/css"
	case ".js":
		return "application/javascript"
	case ".webp":
		return "image/webp"
	case ".svg":
		return "image/svg+xml"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".woff":
		return "font/woff"
	case ".woff2":
		return "font/woff2"
	default:
		return "application/octet-stream"
	}
}

func acceptsGzip(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept-Encoding"), "gzip")
}
