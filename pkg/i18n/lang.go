package i18n

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is the default language code used when no language is configured.
const DefaultLanguage = "en"

// maxAcceptLanguageLength prevents DoS attacks through oversized Accept-Language headers.
// RFC 7231 doesn't specify a limit, but 4KB is generous for legitimate headers while
// preventing memory exhaustion from malicious requests.
const maxAcceptLanguageLength = 4096

// langWithQ represents a language tag with its quality value
type langWithQ struct {
	tag string
	q   float64
}

// ParseAcceptLanguage parses an Accept-Language header into a ranked list of
// canonical language tags, most preferred first. Tags are ordered by
// descending quality value with ties broken by order of appearance.
// Malformed segments - unparseable tags, broken quality values, wildcards -
// are skipped rather than failing the whole header, and oversized headers
// are truncated. Zero-quality tags are refusals, not preferences, and never
// appear in the result. An empty header yields an empty list.
func ParseAcceptLanguage(header string) []string {
	if header == "" {
		return nil
	}

	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var languages []langWithQ

	for _, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		tagPart, qPart, _ := strings.Cut(part, ";")
		tagPart = strings.TrimSpace(tagPart)
		if tagPart == "" || tagPart == "*" {
			continue
		}

		// Canonicalize through x/text so "EN-us" and "en-US" rank as one
		// tag; segments it cannot parse are malformed and get skipped.
		tag, err := language.Parse(tagPart)
		if err != nil {
			continue
		}

		q := 1.0
		if qPart = strings.TrimSpace(qPart); qPart != "" {
			v, ok := strings.CutPrefix(qPart, "q=")
			if !ok {
				continue
			}
			qVal, err := strconv.ParseFloat(v, 64)
			if err != nil || qVal < 0 || qVal > 1 {
				continue
			}
			if qVal == 0 {
				// q=0 means "not acceptable" (RFC 7231), not lowest preference.
				continue
			}
			q = qVal
		}

		languages = append(languages, langWithQ{tag: tag.String(), q: q})
	}

	// Stable sort preserves appearance order between equal qualities.
	slices.SortStableFunc(languages, func(a, b langWithQ) int {
		return cmp.Compare(b.q, a.q) // Reversed for descending order
	})

	ranked := make([]string, 0, len(languages))
	for _, lq := range languages {
		if !slices.Contains(ranked, lq.tag) {
			ranked = append(ranked, lq.tag)
		}
	}
	return ranked
}

// PreferredLanguages builds the ordered list of languages to try for a
// request: the parsed Accept-Language ranking with the configured default
// appended when it is not already ranked. The default is included verbatim,
// so catalog loading always has at least one resolvable candidate even when
// every explicitly requested language is missing translations.
func PreferredLanguages(header, defaultLang string) []string {
	if defaultLang == "" {
		defaultLang = DefaultLanguage
	}

	langs := ParseAcceptLanguage(header)
	if !slices.Contains(langs, defaultLang) {
		langs = append(langs, defaultLang)
	}
	return langs
}
