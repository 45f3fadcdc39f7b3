package workflow

import (
	"regexp"
	"strings"
)

var (
	// "18. BAST", "18 BAST", "18BAST", "1.JABAR"
	numberPrefixRe = regexp.MustCompile(`^\d+\.?\s*`)
	spacesRe       = regexp.MustCompile(`\s+`)
)

var Regionals = []string{"BANTEN", "JABAR", "JABODEBEK", "JATENGKAL", "JATIM", "SULAWESI"}

var CirculirStatuses = []string{"ongoing", "hold", "reject"}

// StripNumberPrefix membuang token angka di depan (beserta titik dan spasi sesudahnya).
func StripNumberPrefix(s string) string {
	return numberPrefixRe.ReplaceAllString(strings.TrimSpace(s), "")
}

func NormalizeRegional(s string) string {
	return strings.ToUpper(strings.TrimSpace(StripNumberPrefix(s)))
}

// NormalizeProgress: kosong tetap kosong; selain itu prefix angka dibuang,
// upper-case, spasi dirapatkan, lalu alias diganti nilai kanonik.
func NormalizeProgress(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	v := strings.ToUpper(StripNumberPrefix(s))
	v = strings.TrimSpace(spacesRe.ReplaceAllString(v, " "))
	return ResolveAlias(v)
}

func NormalizeCirculir(s string) string {
	return strings.ToLower(strings.TrimSpace(StripNumberPrefix(s)))
}

func IsRegional(s string) bool {
	for _, r := range Regionals {
		if r == s {
			return true
		}
	}
	return false
}

func IsCirculirStatus(s string) bool {
	for _, v := range CirculirStatuses {
		if v == s {
			return true
		}
	}
	return false
}
