package gettext

// MetaKey is the key of the catalog metadata entry. Compiled gettext
// catalogs store their header block (Content-Type, Plural-Forms, ...) as the
// translation of the empty message id.
var MetaKey = Key{ID: "", Index: -1}

// Key identifies a single catalog entry. The variant is decided once, when
// the catalog is loaded: Index is -1 for singular entries and the plural
// form index (0..nplurals-1) for one form of a pluralized message.
type Key struct {
	ID    string
	Index int
}

// Singular returns the key of a non-pluralized entry.
func Singular(id string) Key {
	return Key{ID: id, Index: -1}
}

// PluralForm returns the key of one plural form of a pluralized entry.
func PluralForm(id string, index int) Key {
	return Key{ID: id, Index: index}
}

// IsPlural reports whether the key addresses one form of a pluralized message.
func (k Key) IsPlural() bool {
	return k.Index >= 0
}

// Catalog is a loaded translation table for one language and domain.
// It is immutable after creation and safe for concurrent use. A catalog may
// link to a less-preferred fallback catalog; lookups walk the chain.
type Catalog struct {
	lang     string
	domain   string
	entries  map[Key]string
	plural   PluralForms
	fallback *Catalog
}

// Option configures a Catalog during construction.
type Option func(*Catalog)

// WithFallback links a less-preferred catalog to consult when a key is
// absent from the catalog's own entries.
func WithFallback(fb *Catalog) Option {
	return func(c *Catalog) {
		c.fallback = fb
	}
}

// New creates a catalog from already-decoded entries. The plural rule is
// taken from the metadata entry (empty message id) when present, otherwise
// the gettext default (nplurals=2, Germanic selection) applies.
//
// Regular use goes through Loader; New is the entry point for tests and
// custom catalog sources. The entries map must not be mutated afterwards.
func New(lang, domain string, entries map[Key]string, opts ...Option) *Catalog {
	if entries == nil {
		entries = make(map[Key]string)
	}
	c := &Catalog{
		lang:    lang,
		domain:  domain,
		entries: entries,
		plural:  ParsePluralForms(entries[MetaKey]),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewNoop returns an identity-passthrough catalog: every lookup returns its
// message id (or the Germanic plural choice for NGettext). Used for the
// messages domain when no language has a compiled catalog, so page
// rendering keeps working untranslated.
func NewNoop(domain string) *Catalog {
	return New("", domain, nil)
}

// Language returns the resolved language tag of the catalog.
func (c *Catalog) Language() string {
	return c.lang
}

// Domain returns the catalog domain, e.g. "messages" or "jsmessages".
func (c *Catalog) Domain() string {
	return c.domain
}

// Fallback returns the next catalog in the fallback chain, or nil.
func (c *Catalog) Fallback() *Catalog {
	return c.fallback
}

// PluralForms returns the catalog's plural rule.
func (c *Catalog) PluralForms() PluralForms {
	return c.plural
}

// Len returns the number of message entries, metadata excluded.
func (c *Catalog) Len() int {
	n := len(c.entries)
	if _, ok := c.entries[MetaKey]; ok {
		n--
	}
	return n
}

// Gettext returns the translation of msgid, walking the fallback chain.
// A message missing from every catalog in the chain comes back unchanged.
func (c *Catalog) Gettext(msgid string) string {
	for cat := c; cat != nil; cat = cat.fallback {
		if s, ok := cat.entries[Singular(msgid)]; ok {
			return s
		}
	}
	return msgid
}

// NGettext returns the plural form of msgid appropriate for n, selected by
// each catalog's own plural rule while walking the fallback chain. When no
// catalog carries the message, the Germanic rule picks between msgid and
// msgidPlural, matching GNU gettext behavior.
func (c *Catalog) NGettext(msgid, msgidPlural string, n int) string {
	for cat := c; cat != nil; cat = cat.fallback {
		if s, ok := cat.entries[PluralForm(msgid, cat.plural.Select(n))]; ok {
			return s
		}
	}
	if n == 1 {
		return msgid
	}
	return msgidPlural
}

// chained returns a per-request shallow copy of the catalog with the given
// fallback attached. Shared entry maps stay untouched, so cached catalogs
// can back any number of concurrent chains.
func (c *Catalog) chained(fb *Catalog) *Catalog {
	cp := *c
	cp.fallback = fb
	return &cp
}
