package gettext

import (
	"strconv"
	"strings"
)

// Gettext defaults, applied when the Plural-Forms header is absent or
// unparseable: two forms, Germanic selection.
const (
	defaultNPlurals   = 2
	defaultPluralExpr = "(n == 1) ? 0 : 1"
)

// PluralForms holds a catalog's plural rule: the number of plural forms and
// the C-style selector expression over the free variable n. The expression
// is stored verbatim for wire serialization and compiled once for
// server-side form selection.
type PluralForms struct {
	// NPlurals is the number of plural forms the catalog carries, >= 1.
	NPlurals int
	// Expr is the selector expression, e.g. "(n == 1) ? 0 : 1".
	Expr string

	sel selectorFunc
}

// DefaultPluralForms returns the gettext default plural rule.
func DefaultPluralForms() PluralForms {
	return PluralForms{
		NPlurals: defaultNPlurals,
		Expr:     defaultPluralExpr,
		sel:      germanicSelector,
	}
}

// ParsePluralForms extracts the plural rule from a catalog metadata block
// (the header lines stored under the empty message id). It scans for a line
// starting with "Plural-Forms:" and parses the semicolon-separated
// "nplurals=<int>" and "plural=<expr>" sub-fields, stripping trailing
// separators. Absent or unparseable metadata yields the gettext default.
func ParsePluralForms(meta string) PluralForms {
	header := ""
	for _, line := range strings.SplitAfter(meta, "\n") {
		if rest, ok := strings.CutPrefix(line, "Plural-Forms:"); ok {
			header = strings.TrimSpace(strings.TrimSuffix(rest, "\n"))
			break
		}
	}
	if header == "" {
		return DefaultPluralForms()
	}

	nplurals := 0
	expr := ""
	for _, raw := range strings.Split(header, ";") {
		field := strings.TrimSpace(raw)
		if v, ok := strings.CutPrefix(field, "nplurals="); ok {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil || n < 1 {
				return DefaultPluralForms()
			}
			nplurals = n
		} else if v, ok := strings.CutPrefix(field, "plural="); ok {
			expr = strings.TrimSpace(v)
		}
	}
	if nplurals == 0 || expr == "" {
		return DefaultPluralForms()
	}

	sel, err := compilePluralExpr(expr)
	if err != nil {
		return DefaultPluralForms()
	}
	return PluralForms{NPlurals: nplurals, Expr: expr, sel: sel}
}

// Select returns the plural form index for a count. Results outside the
// declared range are clamped so that a lying header cannot index past the
// catalog's form list.
func (pf PluralForms) Select(n int) int {
	sel := pf.sel
	if sel == nil {
		sel = germanicSelector
	}
	idx := sel(n)
	if idx < 0 {
		return 0
	}
	if max := pf.NPlurals - 1; idx > max && max >= 0 {
		return max
	}
	return idx
}

// germanicSelector is the compiled form of defaultPluralExpr.
func germanicSelector(n int) int {
	if n == 1 {
		return 0
	}
	return 1
}
