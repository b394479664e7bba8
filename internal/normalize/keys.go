package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// numKey replaces the "#" column, which has no letters to camel-case.
const numKey = "num"

var apostrophes = strings.NewReplacer("'", "", "’", "")

// Key maps a sheet header label to the field identifier used in output.
func Key(label string) string {
	if label == "#" {
		return numKey
	}
	return CamelCase(label)
}

// CamelCase converts free-form header text to lowerCamelCase:
// "Sell Price" -> "sellPrice", "HHA Base Points" -> "hhaBasePoints",
// "Café Menu" -> "cafeMenu". Labels without letters or digits give "".
func CamelCase(label string) string {
	stripAccents := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(stripAccents, label)
	if err != nil {
		plain = label
	}
	plain = apostrophes.Replace(plain)

	lower := cases.Lower(language.Und)
	upper := cases.Upper(language.Und)

	var b strings.Builder
	for i, w := range splitWords(plain) {
		w = lower.String(w)
		if i > 0 {
			// only the first rune is raised, so "1st" stays "1st"
			first, size := utf8.DecodeRuneInString(w)
			w = upper.String(string(first)) + w[size:]
		}
		b.WriteString(w)
	}
	return b.String()
}

// splitWords breaks s on anything that is not a letter or digit, and inside a
// run on lower->upper ("fooBar"), acronym->word ("XMLHttp") and
// letter<->digit ("size2") boundaries. Ordinals ("1st", "22nd", "4TH") stay
// one word.
func splitWords(s string) []string {
	rs := []rune(s)
	var words []string
	start := -1
	flush := func(end int) {
		if start >= 0 {
			words = append(words, string(rs[start:end]))
			start = -1
		}
	}

	ordinalEnd := -1
	for i, r := range rs {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
			continue
		}
		switch {
		case i == ordinalEnd:
			flush(i)
			start = i
		case i < ordinalEnd:
		case unicode.IsDigit(rs[i-1]) && isOrdinalSuffix(rs, i):
			ordinalEnd = i + 2
		case wordBoundary(rs, i):
			flush(i)
			start = i
		}
	}
	flush(len(rs))
	return words
}

func wordBoundary(rs []rune, i int) bool {
	prev, cur := rs[i-1], rs[i]
	switch {
	case unicode.IsDigit(prev) != unicode.IsDigit(cur):
		return true
	case unicode.IsLower(prev) && unicode.IsUpper(cur):
		return true
	case unicode.IsUpper(prev) && unicode.IsUpper(cur):
		return i+1 < len(rs) && unicode.IsLower(rs[i+1])
	}
	return false
}

// isOrdinalSuffix reports whether rs[i:] starts with the suffix matching the
// digit before it (1st, 2nd, 3rd, otherwise th) in a single case, followed by
// the end of the word or a change of case. Only the last digit counts, so
// "11th" is not an ordinal while "11st" is.
func isOrdinalSuffix(rs []rune, i int) bool {
	if i+2 > len(rs) {
		return false
	}
	want := "th"
	switch rs[i-1] {
	case '1':
		want = "st"
	case '2':
		want = "nd"
	case '3':
		want = "rd"
	}
	suffix := string(rs[i : i+2])
	isLower := suffix == want
	if !isLower && suffix != strings.ToUpper(want) {
		return false
	}
	if i+2 == len(rs) {
		return true
	}
	next := rs[i+2]
	switch {
	case !unicode.IsLetter(next) && !unicode.IsDigit(next):
		return true
	case isLower:
		return unicode.IsUpper(next)
	default:
		return unicode.IsLower(next)
	}
}

// IsIdentifier reports whether id is a usable lowerCamelCase field name.
func IsIdentifier(id string) bool {
	if id == "" {
		return false
	}
	for i, r := range id {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
		if i == 0 && unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
