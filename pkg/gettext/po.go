package gettext

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// parsePoFile reads an uncompiled .po source catalog, for deployments that
// ship sources instead of compiled .mo files. Parsing is delegated to
// gotext; the result is converted into the same tagged entry representation
// the .mo reader produces.
func parsePoFile(path string) (map[Key]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadPo, err)
	}

	po := gotext.NewPo()
	po.Parse(data)

	translations := po.GetDomain().GetTranslations()
	if len(translations) == 0 {
		return nil, ErrEmptyPo
	}

	entries := make(map[Key]string, len(translations)+1)
	for _, tr := range translations {
		if tr == nil || tr.ID == "" {
			continue
		}
		if tr.PluralID != "" {
			for idx, form := range tr.Trs {
				if idx >= 0 {
					entries[PluralForm(tr.ID, idx)] = form
				}
			}
		} else {
			entries[Singular(tr.ID)] = tr.Trs[0]
		}
	}

	// gotext keeps header lines apart from the message table; rebuild the
	// metadata entry so the wire converter sees the same catalog shape as
	// with compiled files.
	if meta := extractPoHeader(string(data)); meta != "" {
		entries[MetaKey] = meta
	}
	return entries, nil
}

// extractPoHeader pulls the quoted header block lines (the msgstr of the
// empty msgid) out of raw .po text and unescapes them into the newline
// separated form compiled catalogs use.
func extractPoHeader(src string) string {
	inHeader := false
	var b strings.Builder
	for _, line := range strings.SplitAfter(src, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == `msgid ""`:
			inHeader = true
		case strings.HasPrefix(line, "msgid ") || strings.HasPrefix(line, "msgctxt "):
			if inHeader {
				return b.String()
			}
		case inHeader && strings.HasPrefix(line, `"`) && strings.HasSuffix(line, `"`):
			if unquoted, err := strconv.Unquote(line); err == nil {
				b.WriteString(unquoted)
			}
		case inHeader && line != `msgstr ""` && line != "" && !strings.HasPrefix(line, "#"):
			return b.String()
		}
	}
	return b.String()
}
