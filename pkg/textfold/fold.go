// Package textfold normaliza texto para búsquedas insensibles a mayúsculas y acentos
// ("José" coincide con "jose", "Muñeca" con "muneca").
package textfold

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold descompone (NFD), elimina marcas diacríticas y pasa a minúsculas.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}

// Contains indica si alguno de los campos contiene la consulta, ignorando acentos y mayúsculas.
// Una consulta vacía coincide siempre.
func Contains(query string, fields ...string) bool {
	q := Fold(query)
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(Fold(f), q) {
			return true
		}
	}
	return false
}
