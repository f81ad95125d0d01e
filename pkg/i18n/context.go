package i18n

import (
	"context"

	"github.com/localekit/localekit/pkg/gettext"
)

// translationContextKey is the key for storing the active translation catalog in context
type translationContextKey struct{}

// languagesContextKey is the key for storing the preferred language list in context
type languagesContextKey struct{}

// SetTranslation stores the resolved messages catalog in the context.
func SetTranslation(ctx context.Context, cat *gettext.Catalog) context.Context {
	return context.WithValue(ctx, translationContextKey{}, cat)
}

// GetTranslation returns the active translation catalog from the context.
// Outside the middleware it returns an identity-passthrough catalog, so
// handler code can translate unconditionally.
func GetTranslation(ctx context.Context) *gettext.Catalog {
	cat, _ := ctx.Value(translationContextKey{}).(*gettext.Catalog)
	if cat == nil {
		return gettext.NewNoop(gettext.DomainMessages)
	}
	return cat
}

// SetLanguages stores the ranked preferred language list in the context.
func SetLanguages(ctx context.Context, langs []string) context.Context {
	return context.WithValue(ctx, languagesContextKey{}, langs)
}

// GetLanguages returns the ranked preferred language list from the context.
// If the middleware has not run, it returns just the default language.
func GetLanguages(ctx context.Context) []string {
	langs, _ := ctx.Value(languagesContextKey{}).([]string)
	if len(langs) == 0 {
		return []string{DefaultLanguage}
	}
	return langs
}
