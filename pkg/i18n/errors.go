package i18n

import "errors"

var (
	// ErrNoScriptCatalog reports that no preferred language has a compiled
	// jsmessages catalog. Callers render an empty script body for it; it is
	// never an error page.
	ErrNoScriptCatalog = errors.New("no script catalog for any preferred language")
)
