package dataprocessing

import (
	"strings"
)

// Canonical field names produced by header normalization. The reconciler and
// the pipeline's column checks only ever see this vocabulary (or passthrough
// headers that matched no synonym).
const (
	FieldID         = "id"
	FieldDate       = "date"
	FieldGeography  = "geography"
	FieldRate       = "unemploymentRate"
	FieldUrbanRate  = "urbanUnemploymentRate"
	FieldRuralRate  = "ruralUnemploymentRate"
	FieldPopulation = "population"
	FieldLaborForce = "laborForce"
	FieldUnemployed = "estimatedUnemployed"
)

// headerSynonyms maps normalized header spellings to canonical field names.
// Keys are the output of normalizeKey, so entries like "unemployment_rate_"
// cover headers such as "Unemployment Rate (%)" whose trailing space survives
// punctuation stripping as an underscore.
var headerSynonyms = map[string]string{
	"year":                        FieldDate,
	"date":                        FieldDate,
	"unemployment_rate":           FieldRate,
	"unemployment_rate_":          FieldRate,
	"national_unemployment_rate":  FieldRate,
	"national_unemployment_rate_": FieldRate,
	"rate":                        FieldRate,
	"urban_unemployment_rate":     FieldUrbanRate,
	"urban_unemployment_rate_":    FieldUrbanRate,
	"rural_unemployment_rate":     FieldRuralRate,
	"rural_unemployment_rate_":    FieldRuralRate,
	"labor_force":                 FieldLaborForce,
	"estimated_unemployed":        FieldUnemployed,
	"unemployed":                  FieldUnemployed,
	"state":                       FieldGeography,
	"geography":                   FieldGeography,
	"population":                  FieldPopulation,
	"id":                          FieldID,
}

// NormalizeHeader maps a raw column header to its canonical field name.
// Headers that match no synonym pass through trimmed but otherwise unchanged,
// so unknown columns stay addressable by their original name. Pure and total.
func NormalizeHeader(header string) string {
	if canonical, ok := headerSynonyms[normalizeKey(header)]; ok {
		return canonical
	}
	return strings.TrimSpace(header)
}

// normalizeKey reduces a header to its lookup form: trimmed, lowercased,
// parentheses and percent signs stripped, whitespace runs collapsed to a
// single underscore.
func normalizeKey(header string) string {
	key := strings.ToLower(strings.TrimSpace(header))
	key = strings.Map(func(r rune) rune {
		switch r {
		case '(', ')', '%':
			return -1
		}
		return r
	}, key)

	var b strings.Builder
	inSpace := false
	for _, r := range key {
		if r == ' ' || r == '\t' {
			inSpace = true
			continue
		}
		if inSpace {
			b.WriteByte('_')
			inSpace = false
		}
		b.WriteRune(r)
	}
	if inSpace {
		b.WriteByte('_')
	}
	return b.String()
}
