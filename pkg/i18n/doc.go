// Package i18n determines a client's preferred languages from HTTP headers,
// loads the matching gettext message catalog, and exposes translations to
// both server-side page rendering and client-side scripts. It integrates
// with the standard net/http stack through middleware that publishes the
// resolved catalog and language list on the request context.
//
// The package allows you to:
//
//   - Parse the Accept-Language header into a quality-ranked tag list,
//     skipping malformed segments instead of failing the request.
//   - Build the ordered list of languages to try, with the configured
//     default language always included as the last resort.
//   - Resolve the "messages" catalog per request (identity passthrough
//     when no translations exist) and publish it with the language list on
//     the request context for downstream handlers.
//   - Generate a script-embeddable JSON payload of the "jsmessages"
//     catalog on demand, with a pluggable script-tag renderer.
//
// # Usage
//
//	cfg := i18n.Config{DefaultLanguage: "en", LocalePath: "locales"}
//	loader := cfg.NewLoader()
//	cfg.Loader = loader // share the catalog cache with the script helpers
//
//	mux := http.NewServeMux()
//	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
//		t := i18n.GetTranslation(r.Context())
//		fmt.Fprintln(w, t.Gettext("Hello"))
//	})
//	mux.HandleFunc("/i18n.js", func(w http.ResponseWriter, r *http.Request) {
//		tag, _ := i18n.ScriptTag(r.Context(), loader, nil)
//		w.Header().Set("Content-Type", "text/html; charset=utf-8")
//		io.WriteString(w, tag)
//	})
//
//	http.ListenAndServe(":8080", i18n.Middleware(cfg)(mux))
//
// # Error design
//
// Translation state never fails a request. Malformed headers fall back to
// the default language, a missing messages catalog renders untranslated,
// and a missing jsmessages catalog surfaces as the distinguishable
// ErrNoScriptCatalog so the caller can answer with an empty script body.
// Only the wrapped handler's own failures pass through the middleware.
package i18n
