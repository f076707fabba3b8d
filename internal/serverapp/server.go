package serverapp

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"estimador/internal/catalog"
	"estimador/internal/clock"
	"estimador/internal/config"
	"estimador/internal/httpmw"
	"estimador/internal/rules"
	"estimador/internal/telemetry"
	"estimador/internal/web"
	staticfiles "estimador/static"
)

type Options struct {
	Config  *config.Config
	Catalog *catalog.Catalog
	Clock   clock.Clock
	Logger  *log.Logger
}

func NewHandler(opts Options) (http.Handler, error) {
	if opts.Config == nil {
		return nil, errors.New("config is required")
	}
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.Clock == nil {
		opts.Clock = clock.Real{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	policy, err := rules.ParsePolicy(opts.Config.Rules.Policy)
	if err != nil {
		return nil, fmt.Errorf("rules: %w", err)
	}

	mux := http.NewServeMux()

	staticHandler := http.FileServer(http.FS(staticfiles.EmbeddedFS()))
	if opts.Config.Server.UseDiskStatic {
		staticHandler = http.FileServer(http.Dir(opts.Config.Server.StaticDir))
	}
	mux.Handle("/static/", http.StripPrefix("/static/", staticHandler))

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "estimador",
			"tasks":   opts.Catalog.Len(),
			"time":    opts.Clock.Now().UTC().Format(time.RFC3339),
		})
	})

	var events telemetry.Repository
	if opts.Config.Telemetry.Enabled {
		events = telemetry.NewMemoryRepository(opts.Clock, opts.Config.Telemetry.Capacity)
	}

	web.NewHandler(web.Options{
		Engine:        rules.New(opts.Catalog, policy),
		Clock:         opts.Clock,
		PublicURL:     opts.Config.Server.PublicURL,
		WhatsAppPhone: opts.Config.Share.WhatsAppPhone,
		Telemetry:     events,
		Logger:        opts.Logger,
	}).Register(mux)

	logStartupHints(opts.Logger, opts.Config)

	return httpmw.Chain(
		mux,
		httpmw.WithRequestID,
		httpmw.WithAccessLog(opts.Logger),
		httpmw.WithRecover(opts.Logger),
	), nil
}

// LoadCatalog returns the YAML catalog at path, or the built-in one when path is empty.
func LoadCatalog(path string) (*catalog.Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(path)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func logStartupHints(logger *log.Logger, cfg *config.Config) {
	if !config.IsProduction() {
		return
	}
	if cfg.Server.PublicURL == "" {
		httpmw.Log(logger, "warn", "public_url_unset", httpmw.Fields{
			"hint": "share links will use the request host; set " + config.EnvPublicURL,
		})
	}
	if cfg.Server.UseDiskStatic {
		httpmw.Log(logger, "warn", "disk_static_in_production", httpmw.Fields{
			"static_dir": cfg.Server.StaticDir,
		})
	}
}
