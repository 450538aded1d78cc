// Package settings holds per-domain password settings: the ordered character
// inventory a derived password is sampled from, scalar parameters such as
// iteration count and length, and the synced flag consumed by a higher-level
// synchronizer.
package settings

// Canonical class alphabets. Concatenated in declaration order they form the
// default character set. The upper-case alphabet omits I, O and S, which are
// too easy to confuse with 1, 0 and 5.
const (
	LowerCaseCharacters = "abcdefghijklmnopqrstuvwxyz"
	UpperCaseCharacters = "ABCDEFGHJKLMNPQRTUVWXYZ"
	DigitCharacters     = "0123456789"
	ExtraCharacters     = `#!"§$%&/()[]{}=-_+*<>;:.`
)

// class identifies one canonical character class.
type class int

const (
	classLower class = iota
	classUpper
	classDigit
	classExtra
)

// alphabets is indexed by class. The extra alphabet contains § (U+00A7), so
// every position or length in this file counts runes, not bytes.
var alphabets = [...][]rune{
	classLower: []rune(LowerCaseCharacters),
	classUpper: []rune(UpperCaseCharacters),
	classDigit: []rune(DigitCharacters),
	classExtra: []rune(ExtraCharacters),
}

// canonicalIndex returns the rune index at which a class starts when every
// preceding class is present in canonical form.
func canonicalIndex(c class) int {
	idx := 0
	for i := classLower; i < c; i++ {
		idx += len(alphabets[i])
	}
	return idx
}

// DefaultCharacterSet returns the four canonical alphabets concatenated in
// canonical order. It is independent of any Setting instance.
func DefaultCharacterSet() string {
	return LowerCaseCharacters + UpperCaseCharacters + DigitCharacters + ExtraCharacters
}

// containsRune reports whether alpha contains r.
func containsRune(alpha []rune, r rune) bool {
	for _, a := range alpha {
		if a == r {
			return true
		}
	}
	return false
}

// removeAlphabet filters every rune of alpha out of seq, wherever it occurs,
// preserving the relative order of the remaining runes.
func removeAlphabet(seq, alpha []rune) []rune {
	out := make([]rune, 0, len(seq))
	for _, r := range seq {
		if !containsRune(alpha, r) {
			out = append(out, r)
		}
	}
	return out
}

// spliceAlphabet inserts alpha into seq at rune index at, clamped to the
// sequence length.
func spliceAlphabet(seq, alpha []rune, at int) []rune {
	if at > len(seq) {
		at = len(seq)
	}
	out := make([]rune, 0, len(seq)+len(alpha))
	out = append(out, seq[:at]...)
	out = append(out, alpha...)
	out = append(out, seq[at:]...)
	return out
}

// hasAlphabetAt reports whether seq carries alpha verbatim (same runes, same
// order) in the window starting at rune index at. This is a positional test:
// a reordered or interleaved window does not match even if every rune of
// alpha is present elsewhere.
func hasAlphabetAt(seq, alpha []rune, at int) bool {
	if at+len(alpha) > len(seq) {
		return false
	}
	for i, r := range alpha {
		if seq[at+i] != r {
			return false
		}
	}
	return true
}
