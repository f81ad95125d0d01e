// Package gettext loads GNU gettext message catalogs and converts them into
// a client-consumable wire form, preserving plural-rule semantics.
//
// It reproduces the gettext catalog model exactly: singular and plural
// keyed lookups, one plural-selector expression per catalog, and one
// fallback chain. It is not a general i18n framework - there is no ICU
// message formatting and no CLDR pluralization layer.
//
// The package allows you to:
//
//   - Load compiled .mo catalogs (and .po sources) from the standard
//     <localePath>/<lang>/LC_MESSAGES/<domain> tree layout.
//   - Resolve a ranked language list to a primary catalog with the
//     less-preferred languages chained as fallbacks.
//   - Look up translations server-side with Gettext/NGettext, selecting
//     plural forms with the catalog's own Plural-Forms rule.
//   - Serialize a catalog, fallback chain included, into a WireCatalog
//     JSON document for client-side script consumption.
//
// # Usage
//
//	loader := gettext.NewLoader("locales")
//
//	// Page strings: never fails, falls back to identity passthrough.
//	cat := loader.LoadOrNoop(gettext.DomainMessages, []string{"pl", "en"})
//	fmt.Println(cat.Gettext("Hello"))
//	fmt.Println(cat.NGettext("Cart", "Carts", 5))
//
//	// Script strings: a missing catalog is a distinguishable condition.
//	js, err := loader.Load(gettext.DomainJSMessages, []string{"pl", "en"})
//	if errors.Is(err, gettext.ErrNoCatalog) {
//		// render an empty script body
//	}
//
// # Fallback chains
//
// A catalog found for the most preferred language becomes the primary;
// catalogs for the following languages chain behind it until the first
// language without one. Lookups walk the chain; the wire converter recurses
// it to full depth, so an N-deep chain yields N nested fallback levels in
// the JSON document.
//
// # Concurrency
//
// Loaded catalogs are immutable and shared through a process-wide
// read-mostly cache with lock-free reads and atomic publish-after-load.
// Each Load call returns per-request chain wrappers over the shared data,
// so concurrent requests never observe each other's fallback links.
package gettext
