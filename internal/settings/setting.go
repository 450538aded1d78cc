package settings

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/avoronov84/domainkeeper/internal/common"
)

// DateFormat is the timestamp layout used in portable maps.
const DateFormat = "2006-01-02T15:04:05"

const (
	defaultIterations = 4096
	defaultLength     = 10
)

var defaultSalt = []byte("pepper")

// DefaultSalt returns a copy of the salt a fresh record starts with. It is
// independent of any Setting instance.
func DefaultSalt() []byte {
	return append([]byte(nil), defaultSalt...)
}

// Setting stores one set of password settings for a domain. The zero value
// is not usable; construct records with NewSetting.
//
// A Setting is not safe for concurrent use; callers must serialize access
// per record.
type Setting struct {
	domain           string
	url              string
	username         string
	legacyPassword   string
	notes            string
	reserved         string
	iterations       int
	salt             []byte
	length           int
	creationDate     time.Time
	modificationDate time.Time
	usedCharacters   []rune
	synced           bool
}

// NewSetting creates a record with default parameters, the default character
// set, both dates set to now and the synced flag cleared.
func NewSetting(domain string) *Setting {
	now := time.Now()
	return &Setting{
		domain:           domain,
		iterations:       defaultIterations,
		salt:             DefaultSalt(),
		length:           defaultLength,
		creationDate:     now,
		modificationDate: now,
		usedCharacters:   []rune(DefaultCharacterSet()),
	}
}

// markChanged flips the synced flag when a setter observed a value change.
func (s *Setting) markChanged(changed bool) {
	if changed {
		s.synced = false
	}
}

func (s *Setting) Domain() string { return s.domain }

func (s *Setting) SetDomain(domain string) {
	s.markChanged(domain != s.domain)
	s.domain = domain
}

func (s *Setting) URL() string { return s.url }

func (s *Setting) SetURL(url string) {
	s.markChanged(url != s.url)
	s.url = url
}

func (s *Setting) HasUsername() bool { return s.username != "" }

func (s *Setting) Username() string { return s.username }

func (s *Setting) SetUsername(username string) {
	s.markChanged(username != s.username)
	s.username = username
}

func (s *Setting) HasLegacyPassword() bool { return s.legacyPassword != "" }

// LegacyPassword returns the manually entered password stored for recall, or
// an empty string when the record describes a generated password instead.
func (s *Setting) LegacyPassword() string { return s.legacyPassword }

func (s *Setting) SetLegacyPassword(password string) {
	s.markChanged(password != s.legacyPassword)
	s.legacyPassword = password
}

func (s *Setting) Notes() string { return s.notes }

func (s *Setting) SetNotes(notes string) {
	s.markChanged(notes != s.notes)
	s.notes = notes
}

func (s *Setting) Reserved() string { return s.reserved }

func (s *Setting) SetReserved(reserved string) {
	s.markChanged(reserved != s.reserved)
	s.reserved = reserved
}

func (s *Setting) Iterations() int { return s.iterations }

func (s *Setting) SetIterations(iterations int) {
	s.markChanged(iterations != s.iterations)
	s.iterations = iterations
}

func (s *Setting) Length() int { return s.length }

func (s *Setting) SetLength(length int) {
	s.markChanged(length != s.length)
	s.length = length
}

func (s *Setting) Salt() []byte { return s.salt }

func (s *Setting) SetSalt(salt []byte) {
	s.markChanged(!bytes.Equal(salt, s.salt))
	s.salt = salt
}

// CreationDate returns the creation timestamp.
func (s *Setting) CreationDate() time.Time { return s.creationDate }

// CreationDateString returns the creation timestamp in portable-map form.
func (s *Setting) CreationDateString() string {
	return s.creationDate.Format(DateFormat)
}

// SetCreationDate parses value in DateFormat. An unparseable value is
// replaced by the current time and reported as ErrMalformedDate; the record
// stays usable either way. If the modification date ends up earlier than the
// new creation date it is raised to match.
func (s *Setting) SetCreationDate(value string) error {
	parsed, parseErr := time.Parse(DateFormat, value)
	if parseErr != nil {
		parseErr = fmt.Errorf("%w: %q", common.ErrMalformedDate, value)
		parsed = time.Now()
	}
	s.markChanged(!parsed.Equal(s.creationDate))
	s.creationDate = parsed
	if s.modificationDate.Before(s.creationDate) {
		s.modificationDate = s.creationDate
	}
	return parseErr
}

// ModificationDate returns the modification timestamp.
func (s *Setting) ModificationDate() time.Time { return s.modificationDate }

// ModificationDateString returns the modification timestamp in portable-map
// form.
func (s *Setting) ModificationDateString() string {
	return s.modificationDate.Format(DateFormat)
}

// SetModificationDate parses value in DateFormat, with the same
// ErrMalformedDate recovery as SetCreationDate. If the new modification date
// is earlier than the creation date, the creation date is lowered to match
// so that the record never claims to be modified before it was created.
func (s *Setting) SetModificationDate(value string) error {
	parsed, parseErr := time.Parse(DateFormat, value)
	if parseErr != nil {
		parseErr = fmt.Errorf("%w: %q", common.ErrMalformedDate, value)
		parsed = time.Now()
	}
	s.markChanged(!parsed.Equal(s.modificationDate))
	s.modificationDate = parsed
	if s.modificationDate.Before(s.creationDate) {
		s.creationDate = s.modificationDate
	}
	return parseErr
}

// Touch sets the modification date to now without touching the synced flag.
func (s *Setting) Touch() {
	s.modificationDate = time.Now()
	if s.modificationDate.Before(s.creationDate) {
		s.creationDate = s.modificationDate
	}
}

// Synced reports whether the record's current state has been confirmed
// transmitted to or from the remote store. Every setter that changes an
// observable value clears it.
func (s *Setting) Synced() bool { return s.synced }

// SetSynced records the outcome of a sync round. Call with true after the
// record has been transferred.
func (s *Setting) SetSynced(synced bool) { s.synced = synced }

// CharacterSet returns the ordered character inventory as a string.
func (s *Setting) CharacterSet() string { return string(s.usedCharacters) }

// SetCustomCharacterSet replaces the character inventory verbatim. Use it to
// store reordered or hand-edited sets. Duplicates are not validated.
func (s *Setting) SetCustomCharacterSet(characterSet string) {
	s.markChanged(characterSet != string(s.usedCharacters))
	s.usedCharacters = []rune(characterSet)
}

// UsesCustomCharacterSet reports whether the inventory differs from the full
// default character set in any way, including pure reordering.
func (s *Setting) UsesCustomCharacterSet() bool {
	return string(s.usedCharacters) != DefaultCharacterSet()
}

// usesClass is the strict positional test: the class alphabet must sit
// verbatim at its canonical index.
func (s *Setting) usesClass(c class) bool {
	return hasAlphabetAt(s.usedCharacters, alphabets[c], canonicalIndex(c))
}

// toggleClass first removes every character of the class wherever it occurs,
// then, when enabling, splices the full class alphabet back in at its
// canonical index. Characters outside the class keep their relative order,
// so custom trailing characters survive toggles of unrelated classes.
func (s *Setting) toggleClass(c class, use bool) {
	next := removeAlphabet(s.usedCharacters, alphabets[c])
	if use {
		next = spliceAlphabet(next, alphabets[c], canonicalIndex(c))
	}
	s.markChanged(string(next) != string(s.usedCharacters))
	s.usedCharacters = next
}

func (s *Setting) UsesLowerCase() bool      { return s.usesClass(classLower) }
func (s *Setting) SetUseLowerCase(use bool) { s.toggleClass(classLower, use) }
func (s *Setting) UsesUpperCase() bool      { return s.usesClass(classUpper) }
func (s *Setting) SetUseUpperCase(use bool) { s.toggleClass(classUpper, use) }
func (s *Setting) UsesDigits() bool         { return s.usesClass(classDigit) }
func (s *Setting) SetUseDigits(use bool)    { s.toggleClass(classDigit, use) }
func (s *Setting) UsesExtra() bool          { return s.usesClass(classExtra) }
func (s *Setting) SetUseExtra(use bool)     { s.toggleClass(classExtra, use) }

// UsesLetters treats lower and upper case as one combined class.
func (s *Setting) UsesLetters() bool {
	combined := append(append([]rune{}, alphabets[classLower]...), alphabets[classUpper]...)
	return hasAlphabetAt(s.usedCharacters, combined, 0)
}

// SetUseLetters toggles lower and upper case together.
func (s *Setting) SetUseLetters(use bool) {
	combined := append(append([]rune{}, alphabets[classLower]...), alphabets[classUpper]...)
	next := removeAlphabet(s.usedCharacters, combined)
	if use {
		next = spliceAlphabet(next, combined, 0)
	}
	s.markChanged(string(next) != string(s.usedCharacters))
	s.usedCharacters = next
}

// ToMap emits the record in portable-map form. Optional string fields are
// present only when non-empty; iterations, length, both dates and the
// character set are always present; the salt is base64-encoded when
// non-empty. The sparse/dense split is part of the wire and file format.
func (s *Setting) ToMap() map[string]any {
	m := map[string]any{"domain": s.domain}
	if s.url != "" {
		m["url"] = s.url
	}
	if s.username != "" {
		m["username"] = s.username
	}
	if s.legacyPassword != "" {
		m["legacyPassword"] = s.legacyPassword
	}
	if s.notes != "" {
		m["notes"] = s.notes
	}
	m["iterations"] = s.iterations
	if len(s.salt) > 0 {
		m["salt"] = base64.StdEncoding.EncodeToString(s.salt)
	}
	m["length"] = s.length
	m["cDate"] = s.CreationDateString()
	m["mDate"] = s.ModificationDateString()
	m["usedCharacters"] = s.CharacterSet()
	if s.reserved != "" {
		m["reserved"] = s.reserved
	}
	return m
}

// LoadFromMap applies every key present in m through the corresponding
// setter; absent keys leave the current value untouched, so loading a
// partial map merges into the record rather than replacing it. The "domain"
// key is deliberately not merged: it is the key the owning collection files
// the record under, so the collection routes the map here in the first
// place. Malformed values are reported (joined ErrInvalidArgument /
// ErrMalformedDate errors) and leave their field alone; the remaining keys
// are still applied.
func (s *Setting) LoadFromMap(m map[string]any) error {
	var errs []error

	setString := func(key string, set func(string)) {
		v, ok := m[key]
		if !ok {
			return
		}
		str, ok := v.(string)
		if !ok {
			errs = append(errs, fmt.Errorf("%s: %w: expected string, got %T", key, common.ErrInvalidArgument, v))
			return
		}
		set(str)
	}

	setInt := func(key string, set func(int)) {
		v, ok := m[key]
		if !ok {
			return
		}
		n, ok := asInt(v)
		if !ok {
			errs = append(errs, fmt.Errorf("%s: %w: expected integer, got %T", key, common.ErrInvalidArgument, v))
			return
		}
		set(n)
	}

	setString("url", s.SetURL)
	setString("username", s.SetUsername)
	setString("legacyPassword", s.SetLegacyPassword)
	setString("notes", s.SetNotes)
	setInt("iterations", s.SetIterations)

	if v, ok := m["salt"]; ok {
		switch salt := v.(type) {
		case []byte:
			s.SetSalt(salt)
		case string:
			decoded, err := base64.StdEncoding.DecodeString(salt)
			if err != nil {
				errs = append(errs, fmt.Errorf("salt: %w: %v", common.ErrInvalidArgument, err))
			} else {
				s.SetSalt(decoded)
			}
		default:
			errs = append(errs, fmt.Errorf("salt: %w: expected bytes or base64 text, got %T", common.ErrInvalidArgument, v))
		}
	}

	setInt("length", s.SetLength)
	setString("cDate", func(v string) {
		if err := s.SetCreationDate(v); err != nil {
			errs = append(errs, fmt.Errorf("cDate: %w", err))
		}
	})
	setString("mDate", func(v string) {
		if err := s.SetModificationDate(v); err != nil {
			errs = append(errs, fmt.Errorf("mDate: %w", err))
		}
	})
	setString("usedCharacters", s.SetCustomCharacterSet)
	setString("reserved", s.SetReserved)

	return errors.Join(errs...)
}

// asInt accepts the integer encodings a portable map can carry after JSON
// decoding.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}
