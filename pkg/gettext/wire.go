package gettext

import "encoding/json"

// WireCatalog is the client-consumable form of a catalog: the plural
// selector expression (stored verbatim, evaluated by the consumer), the
// message table, and the recursively converted fallback chain. It
// marshals to the JSON document embedded into the i18n script tag.
type WireCatalog struct {
	Plural string `json:"plural"`
	// Catalog maps message ids to either a string (singular entry) or a
	// []string of all plural forms in index order.
	Catalog  map[string]any `json:"catalog"`
	Fallback *WireCatalog   `json:"fallback"`
}

// ToWire converts a catalog, fallback chain included, into its wire form
// without data loss. Conversion is deterministic and idempotent: equal
// catalogs produce structurally equal wire values.
//
// A plural form whose index is outside the catalog's declared nplurals
// range is dropped; the rest of the catalog converts normally. Rejecting
// the whole catalog over one bad entry would turn a data defect into a
// request failure, which the rest of the error design forbids. A msgid
// that somehow carries both a singular entry and plural forms converts to
// the plural form list, independent of map iteration order.
func ToWire(c *Catalog) *WireCatalog {
	if c == nil {
		return nil
	}

	nplurals := c.plural.NPlurals
	out := make(map[string]any, len(c.entries))
	for key, value := range c.entries {
		if key.ID == "" {
			continue // metadata entry
		}
		if !key.IsPlural() {
			if _, taken := out[key.ID].([]string); !taken {
				out[key.ID] = value
			}
			continue
		}
		if key.Index >= nplurals {
			continue
		}
		forms, ok := out[key.ID].([]string)
		if !ok {
			forms = make([]string, nplurals)
			out[key.ID] = forms
		}
		forms[key.Index] = value
	}

	return &WireCatalog{
		Plural:   c.plural.Expr,
		Catalog:  out,
		Fallback: ToWire(c.fallback),
	}
}

// JSON renders the wire catalog as its script-embeddable JSON document,
// pretty-printed with single-space indentation.
func (w *WireCatalog) JSON() (string, error) {
	b, err := json.MarshalIndent(w, "", " ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
