package i18n

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/localekit/localekit/pkg/gettext"
)

// Config configures the i18n middleware. The zero value works: English
// default language, catalogs under "locales". The env-tagged fields load
// through the config package for applications that configure via
// environment.
type Config struct {
	// DefaultLanguage is the fallback language tag, always present in the
	// preferred language list; ex: "en", "pl" or "ja".
	DefaultLanguage string `env:"I18N_DEFAULT_LANGUAGE" envDefault:"en"`
	// LocalePath is the directory containing compiled translation catalogs
	// in the <LocalePath>/<lang>/LC_MESSAGES/<domain> layout.
	LocalePath string `env:"I18N_LOCALE_PATH" envDefault:"locales"`

	// Skip defines a function to skip middleware execution for specific requests
	Skip func(r *http.Request) bool
	// Loader overrides the catalog loader built from LocalePath; lets
	// several middlewares or the script-tag helpers share one cache.
	Loader *gettext.Loader
	// Logger receives catalog load reporting (default: discard)
	Logger *slog.Logger
}

// NewLoader builds the catalog loader described by the configuration.
// Middleware calls it implicitly when Config.Loader is nil; applications
// that also serve the script catalog should build one loader and share it.
func (cfg Config) NewLoader() *gettext.Loader {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	path := cfg.LocalePath
	if path == "" {
		path = "locales"
	}
	return gettext.NewLoader(path, gettext.WithLogger(logger))
}

// Middleware returns an HTTP middleware that determines the client's
// preferred languages from the Accept-Language header, loads the matching
// messages catalog with its fallback chain, and stores both in the request
// context before the downstream handler runs.
//
// The middleware never fails a request over translation state: malformed
// headers fall back to the default language and a missing catalog becomes
// an identity-passthrough one. Each request gets its own catalog and
// language list values; the loader serves them from a shared read-only
// cache.
func Middleware(cfg Config) func(http.Handler) http.Handler {
	if cfg.DefaultLanguage == "" {
		cfg.DefaultLanguage = DefaultLanguage
	}
	loader := cfg.Loader
	if loader == nil {
		loader = cfg.NewLoader()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			langs := PreferredLanguages(r.Header.Get("Accept-Language"), cfg.DefaultLanguage)
			cat := loader.LoadOrNoop(gettext.DomainMessages, langs)

			ctx := SetLanguages(r.Context(), langs)
			ctx = SetTranslation(ctx, cat)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
