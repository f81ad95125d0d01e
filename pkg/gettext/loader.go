package gettext

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/localekit/localekit/pkg/cache"
)

// Standard catalog domains: page strings and script strings.
const (
	DomainMessages   = "messages"
	DomainJSMessages = "jsmessages"
)

// Loader resolves ranked language lists to catalogs with fallback chains.
// Catalogs are read from the standard gettext tree layout,
// <localePath>/<lang>/LC_MESSAGES/<domain>.mo, with .po sources picked up
// when no compiled file exists.
//
// Per-(domain, language) catalogs are cached process-wide after the first
// load, hits and misses both, with no expiration; ship new catalogs by
// restarting the process. A Loader is safe for concurrent use and reads the
// cache without locking.
type Loader struct {
	path   string
	logger *slog.Logger
	cache  cache.Map[catalogCacheKey, *Catalog]
}

type catalogCacheKey struct {
	domain string
	lang   string
}

// LoaderOption configures a Loader during construction.
type LoaderOption func(*Loader)

// WithLogger sets the logger for catalog load reporting.
func WithLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLoader creates a loader rooted at the given locale directory.
func NewLoader(localePath string, opts ...LoaderOption) *Loader {
	l := &Loader{
		path:   localePath,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)), // Nope-logger by default
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load walks the ranked language list and returns a catalog for the given
// domain. The first language with a catalog on disk becomes the primary;
// catalogs of less-preferred languages chain as its fallbacks in ranked
// order, and the chain ends at the first language without a catalog or at
// list exhaustion.
//
// When no language resolves, Load returns ErrNoCatalog. That is a
// distinguishable condition rather than a request failure: the jsmessages
// caller answers it with an empty script body, and messages-domain callers
// use LoadOrNoop instead.
func (l *Loader) Load(domain string, langs []string) (*Catalog, error) {
	var found []*Catalog
	for _, lang := range langs {
		cat := l.resolve(domain, lang)
		if cat == nil {
			if len(found) == 0 {
				continue // keep searching for a primary
			}
			break // fallback chain ends at the first gap
		}
		found = append(found, cat)
	}
	if len(found) == 0 {
		l.logger.Debug("no catalog for any requested language",
			"domain", domain, "languages", langs)
		return nil, ErrNoCatalog
	}

	// Link per-request copies back to front so cached catalogs stay shared
	// and immutable.
	var chain *Catalog
	for i := len(found) - 1; i >= 0; i-- {
		chain = found[i].chained(chain)
	}
	return chain, nil
}

// LoadOrNoop is Load with the messages-domain failure mode: when no
// language has a catalog it returns an identity-passthrough catalog, so a
// request never fails over missing translations.
func (l *Loader) LoadOrNoop(domain string, langs []string) *Catalog {
	cat, err := l.Load(domain, langs)
	if err != nil {
		return NewNoop(domain)
	}
	return cat
}

// resolve returns the cached catalog for one language, loading and
// publishing it on first use. Returns nil when the language has no catalog
// for the domain; misses are cached too.
func (l *Loader) resolve(domain, lang string) *Catalog {
	key := catalogCacheKey{domain: domain, lang: lang}
	if cat, ok := l.cache.Get(key); ok {
		return cat
	}

	cat := l.loadCatalog(domain, lang)
	// Concurrent first-requests may both load; one value wins, neither is
	// ever partially visible.
	return l.cache.GetOrPut(key, cat)
}

// loadCatalog tries the candidate files for one language in order:
// compiled catalog first, then the .po source, for the tag itself, its
// underscore locale form and its base language.
func (l *Loader) loadCatalog(domain, lang string) *Catalog {
	for _, dir := range localeDirs(lang) {
		base := filepath.Join(l.path, dir, "LC_MESSAGES", domain)
		for _, try := range []struct {
			path  string
			parse func(string) (map[Key]string, error)
		}{
			{base + ".mo", parseMoFile},
			{base + ".po", parsePoFile},
		} {
			if _, err := os.Stat(try.path); err != nil {
				continue
			}
			entries, err := try.parse(try.path)
			if err != nil {
				l.logger.Warn("skipping unreadable catalog",
					"domain", domain, "language", lang, "path", try.path, "error", err)
				continue
			}
			l.logger.Debug("catalog loaded",
				"domain", domain, "language", lang, "path", try.path, "entries", len(entries))
			return New(lang, domain, entries)
		}
	}
	return nil
}

// localeDirs lists the directory names to try for a language tag:
// the tag verbatim ("pt-BR"), its underscore locale form ("pt_BR") as
// gettext trees conventionally use, and the bare base language ("pt").
func localeDirs(lang string) []string {
	dirs := []string{lang}
	if underscored := strings.ReplaceAll(lang, "-", "_"); underscored != lang {
		dirs = append(dirs, underscored)
	}
	if base, _, ok := strings.Cut(lang, "-"); ok && base != "" {
		dirs = append(dirs, base)
	}
	return dirs
}
