package i18n

import (
	"context"
	"errors"
	"html/template"
	"strings"

	"github.com/localekit/localekit/pkg/gettext"
)

// ScriptTagRenderer turns the resolved script-catalog JSON into the fully
// rendered script tag markup. The body is empty when no jsmessages catalog
// exists for any preferred language. The package does not implement HTML
// templating itself; applications plug in their own template engine here.
type ScriptTagRenderer func(jsonBody string) (string, error)

// ScriptCatalogJSON resolves the jsmessages catalog for the request's
// preferred languages and returns its wire JSON, pretty-printed with
// single-space indentation for script embedding.
//
// Returns ErrNoScriptCatalog when no preferred language has a jsmessages
// catalog; the caller is expected to render an empty script body, not an
// error.
func ScriptCatalogJSON(ctx context.Context, loader *gettext.Loader) (string, error) {
	cat, err := loader.Load(gettext.DomainJSMessages, GetLanguages(ctx))
	if err != nil {
		if errors.Is(err, gettext.ErrNoCatalog) {
			return "", ErrNoScriptCatalog
		}
		return "", err
	}
	return gettext.ToWire(cat).JSON()
}

// defaultScriptTagTmpl embeds the catalog document under a conventional
// global; nothing is assigned when the body is empty.
var defaultScriptTagTmpl = template.Must(template.New("i18n_js_tag").Parse(
	`<script type="text/javascript">
//<![CDATA[
{{if .Body}}window.i18nCatalog = {{.Body}};
{{end}}//]]>
</script>`))

// DefaultScriptTagRenderer renders the catalog JSON into a plain script
// element using html/template.
func DefaultScriptTagRenderer() ScriptTagRenderer {
	return func(jsonBody string) (string, error) {
		var b strings.Builder
		err := defaultScriptTagTmpl.Execute(&b, struct{ Body template.JS }{Body: template.JS(jsonBody)})
		if err != nil {
			return "", err
		}
		return b.String(), nil
	}
}

// ScriptTag resolves the script catalog for the request and renders the
// script tag markup with the given renderer (default renderer when nil).
// A missing jsmessages catalog produces a tag with an empty body rather
// than an error.
func ScriptTag(ctx context.Context, loader *gettext.Loader, render ScriptTagRenderer) (string, error) {
	if render == nil {
		render = DefaultScriptTagRenderer()
	}

	body, err := ScriptCatalogJSON(ctx, loader)
	if err != nil {
		if !errors.Is(err, ErrNoScriptCatalog) {
			return "", err
		}
		body = ""
	}
	return render(body)
}
