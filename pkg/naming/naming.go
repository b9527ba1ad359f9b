package naming

import (
	"strings"
	"unicode"
)

// ToElementName converts an identifier to a valid DOM element or attribute
// name in lowerCamelCase.
//
// Identifiers that begin with an ASCII digit (tuple field indices like "0")
// are prefixed with an underscore and returned without case conversion,
// since markup names cannot start with a digit. All other identifiers are
// converted to lowerCamelCase; when the input is already in that form, the
// input string itself is returned and nothing is allocated.
//
// The function is total: it never fails for any input, including empty
// strings and non-ASCII content, and its result never starts with an ASCII
// digit.
func ToElementName(name string) string {
	// Markup names cannot begin with a digit. Case conversion is meaningless
	// for a digit-led identifier, so prefix and return as-is.
	if name != "" && isASCIIDigit(name[0]) {
		return "_" + name
	}

	// Fast path: already-conformant input needs no work and no copy.
	if isLowerCamel(name) {
		return name
	}

	converted := lowerCamel(name)
	if converted == name {
		return name
	}
	// Dropping a leading separator can surface a digit (" 0abc" -> "0Abc").
	if converted != "" && isASCIIDigit(converted[0]) {
		return "_" + converted
	}
	return converted
}

// DOMKey resolves the markup name for a field.
//
// If rename is non-nil it is returned verbatim, even when empty; the caller
// owns the override's exact text, whether it came from an explicit rename or
// a rename-all convention applied elsewhere. Otherwise the field name goes
// through ToElementName, including its allocation behavior.
func DOMKey(name string, rename *string) string {
	if rename != nil {
		return *rename
	}
	return ToElementName(name)
}

func isASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// isSeparator reports whether r splits words without appearing in the output.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || unicode.IsSpace(r)
}

// isLowerCamel reports whether s is provably a fixed point of lowerCamel.
// The scan only accepts ASCII alphanumeric strings; anything it cannot prove
// conformant falls back to the full conversion.
func isLowerCamel(s string) bool {
	if s == "" {
		return true
	}
	if s[0] < 'a' || s[0] > 'z' {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
			// A lowercase letter directly after a digit starts a new word
			// and would be capitalized.
			if isASCIIDigit(s[i-1]) {
				return false
			}
		case c >= 'A' && c <= 'Z':
			// Adjacent uppercase letters form an acronym run, which the
			// conversion folds down to a single capital.
			if s[i-1] >= 'A' && s[i-1] <= 'Z' {
				return false
			}
		case isASCIIDigit(c):
			// Digits never need case work.
		default:
			return false
		}
	}
	return true
}

// lowerCamel rebuilds s in lowerCamelCase: the first word fully lowercased,
// each subsequent word capitalized with the rest lowercased, separators
// removed.
func lowerCamel(s string) string {
	words := splitWords(s)
	var b strings.Builder
	b.Grow(len(s))
	for i, w := range words {
		for j, r := range w {
			switch {
			case i == 0:
				b.WriteRune(unicode.ToLower(r))
			case j == 0:
				b.WriteRune(unicode.ToUpper(r))
			default:
				b.WriteRune(unicode.ToLower(r))
			}
		}
	}
	return b.String()
}

// splitWords segments an identifier into words. Boundaries occur at
// separators, at lower-to-upper transitions, before the last uppercase of an
// acronym run followed by lowercase ("XMLHttp" -> "XML", "Http"), and at
// digit/letter transitions in either direction.
func splitWords(s string) []string {
	runes := []rune(s)
	var words []string
	start := -1
	for i, r := range runes {
		if isSeparator(r) {
			if start >= 0 {
				words = append(words, string(runes[start:i]))
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
			continue
		}
		prev := runes[i-1]
		boundary := false
		switch {
		case unicode.IsUpper(r) && !unicode.IsUpper(prev):
			boundary = true
		case unicode.IsUpper(r) && unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
			boundary = true
		case unicode.IsDigit(prev) && !unicode.IsDigit(r) && !unicode.IsUpper(r):
			boundary = true
		case unicode.IsDigit(r) && !unicode.IsDigit(prev):
			boundary = true
		}
		if boundary {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	if start >= 0 {
		words = append(words, string(runes[start:]))
	}
	return words
}
