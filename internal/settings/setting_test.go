package settings

import (
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"github.com/avoronov84/domainkeeper/internal/common"
	"github.com/stretchr/testify/require"
)

func TestNewSetting_Defaults(t *testing.T) {
	before := time.Now()
	s := NewSetting("example.com")

	require.Equal(t, "example.com", s.Domain())
	require.Equal(t, 4096, s.Iterations())
	require.Equal(t, 10, s.Length())
	require.Equal(t, []byte("pepper"), s.Salt())
	require.Equal(t, DefaultCharacterSet(), s.CharacterSet())
	require.False(t, s.Synced())
	require.Empty(t, s.URL())
	require.Empty(t, s.Username())
	require.False(t, s.HasUsername())
	require.Empty(t, s.LegacyPassword())
	require.False(t, s.HasLegacyPassword())
	require.Empty(t, s.Notes())
	require.Empty(t, s.Reserved())

	require.Equal(t, s.CreationDate(), s.ModificationDate())
	require.False(t, s.CreationDate().Before(before.Truncate(time.Second)))
}

func TestSetters_FlipSyncedOnlyOnChange(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Setting)
		repeat func(*Setting)
	}{
		{"domain", func(s *Setting) { s.SetDomain("other.org") }, func(s *Setting) { s.SetDomain("other.org") }},
		{"url", func(s *Setting) { s.SetURL("https://other.org") }, func(s *Setting) { s.SetURL("https://other.org") }},
		{"username", func(s *Setting) { s.SetUsername("alice") }, func(s *Setting) { s.SetUsername("alice") }},
		{"legacyPassword", func(s *Setting) { s.SetLegacyPassword("hunter2") }, func(s *Setting) { s.SetLegacyPassword("hunter2") }},
		{"notes", func(s *Setting) { s.SetNotes("n") }, func(s *Setting) { s.SetNotes("n") }},
		{"reserved", func(s *Setting) { s.SetReserved("r") }, func(s *Setting) { s.SetReserved("r") }},
		{"iterations", func(s *Setting) { s.SetIterations(8192) }, func(s *Setting) { s.SetIterations(8192) }},
		{"length", func(s *Setting) { s.SetLength(16) }, func(s *Setting) { s.SetLength(16) }},
		{"salt", func(s *Setting) { s.SetSalt([]byte("salt")) }, func(s *Setting) { s.SetSalt([]byte("salt")) }},
		{"characterSet", func(s *Setting) { s.SetCustomCharacterSet("abc") }, func(s *Setting) { s.SetCustomCharacterSet("abc") }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSetting("example.com")
			s.SetSynced(true)

			tc.mutate(s)
			require.False(t, s.Synced(), "changed value must clear synced")

			s.SetSynced(true)
			tc.repeat(s)
			require.True(t, s.Synced(), "unchanged value must leave synced alone")
		})
	}
}

// SetURL and SetReserved assign the new value on the changed branch as well;
// historically only the unchanged branch kept the field consistent, which
// left the stored value stale.
func TestSetURLAndReserved_AssignNewValue(t *testing.T) {
	s := NewSetting("example.com")

	s.SetURL("https://example.com/login")
	require.Equal(t, "https://example.com/login", s.URL())

	s.SetReserved("opaque")
	require.Equal(t, "opaque", s.Reserved())
}

func TestSetCreationDate_RaisesModificationDate(t *testing.T) {
	s := NewSetting("example.com")
	require.NoError(t, s.SetModificationDate("2020-01-02T10:00:00"))

	// Creation after modification pulls modification forward.
	require.NoError(t, s.SetCreationDate("2021-06-01T08:30:00"))
	require.Equal(t, "2021-06-01T08:30:00", s.CreationDateString())
	require.Equal(t, "2021-06-01T08:30:00", s.ModificationDateString())
	require.False(t, s.ModificationDate().Before(s.CreationDate()))
}

func TestSetModificationDate_LowersCreationDate(t *testing.T) {
	s := NewSetting("example.com")
	require.NoError(t, s.SetCreationDate("2021-06-01T08:30:00"))

	require.NoError(t, s.SetModificationDate("2019-03-04T05:06:07"))
	require.Equal(t, "2019-03-04T05:06:07", s.ModificationDateString())
	require.Equal(t, "2019-03-04T05:06:07", s.CreationDateString())
	require.False(t, s.ModificationDate().Before(s.CreationDate()))
}

func TestDateInvariant_HoldsAcrossOutOfOrderSets(t *testing.T) {
	s := NewSetting("example.com")
	dates := []string{
		"2022-05-05T05:05:05",
		"2019-01-01T00:00:00",
		"2023-12-31T23:59:59",
		"2020-02-29T12:00:00",
	}
	for _, d := range dates {
		require.NoError(t, s.SetCreationDate(d))
		require.False(t, s.ModificationDate().Before(s.CreationDate()))
	}
	for _, d := range dates {
		require.NoError(t, s.SetModificationDate(d))
		require.False(t, s.ModificationDate().Before(s.CreationDate()))
	}
}

func TestSetDates_MalformedValueFallsBackToNow(t *testing.T) {
	s := NewSetting("example.com")

	before := time.Now().Add(-time.Second)
	err := s.SetCreationDate("yesterday-ish")
	require.ErrorIs(t, err, common.ErrMalformedDate)
	require.True(t, s.CreationDate().After(before))

	err = s.SetModificationDate("2024-13-45T99:00:00")
	require.ErrorIs(t, err, common.ErrMalformedDate)
	require.True(t, s.ModificationDate().After(before))
	require.False(t, s.ModificationDate().Before(s.CreationDate()))
}

func TestTouch_UpdatesModificationDateWithoutClearingSynced(t *testing.T) {
	s := NewSetting("example.com")
	require.NoError(t, s.SetModificationDate("2020-01-01T00:00:00"))
	s.SetSynced(true)

	s.Touch()
	require.True(t, s.Synced())
	require.True(t, s.ModificationDate().After(s.CreationDate()) || s.ModificationDate().Equal(s.CreationDate()))
	require.NotEqual(t, "2020-01-01T00:00:00", s.ModificationDateString())
}

func TestToMap_SparseOptionalDenseRequired(t *testing.T) {
	s := NewSetting("example.com")
	require.NoError(t, s.SetCreationDate("2021-01-01T00:00:00"))
	require.NoError(t, s.SetModificationDate("2021-06-01T00:00:00"))

	m := s.ToMap()

	require.Equal(t, "example.com", m["domain"])
	require.Equal(t, 4096, m["iterations"])
	require.Equal(t, 10, m["length"])
	require.Equal(t, "2021-01-01T00:00:00", m["cDate"])
	require.Equal(t, "2021-06-01T00:00:00", m["mDate"])
	require.Equal(t, DefaultCharacterSet(), m["usedCharacters"])
	require.Equal(t, base64.StdEncoding.EncodeToString([]byte("pepper")), m["salt"])

	for _, key := range []string{"url", "username", "legacyPassword", "notes", "reserved"} {
		require.NotContains(t, m, key)
	}

	s.SetURL("https://example.com")
	s.SetUsername("alice")
	m = s.ToMap()
	require.Equal(t, "https://example.com", m["url"])
	require.Equal(t, "alice", m["username"])
}

func TestMapRoundTrip_ThroughJSON(t *testing.T) {
	s := NewSetting("example.com")
	s.SetURL("https://example.com")
	s.SetUsername("alice")
	s.SetLegacyPassword("hunter2")
	s.SetNotes("work account")
	s.SetReserved("x")
	s.SetIterations(8192)
	s.SetLength(14)
	s.SetSalt([]byte{0x01, 0x02, 0xfe})
	s.SetCustomCharacterSet(DefaultCharacterSet() + "@")
	require.NoError(t, s.SetCreationDate("2021-01-01T00:00:00"))
	require.NoError(t, s.SetModificationDate("2021-06-01T00:00:00"))

	data, err := json.Marshal(s.ToMap())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	fresh := NewSetting("example.com")
	require.NoError(t, fresh.LoadFromMap(decoded))

	require.Equal(t, s.Domain(), fresh.Domain())
	require.Equal(t, s.URL(), fresh.URL())
	require.Equal(t, s.Username(), fresh.Username())
	require.Equal(t, s.LegacyPassword(), fresh.LegacyPassword())
	require.Equal(t, s.Notes(), fresh.Notes())
	require.Equal(t, s.Reserved(), fresh.Reserved())
	require.Equal(t, s.Iterations(), fresh.Iterations())
	require.Equal(t, s.Length(), fresh.Length())
	require.Equal(t, s.Salt(), fresh.Salt())
	require.Equal(t, s.CharacterSet(), fresh.CharacterSet())
	require.Equal(t, s.CreationDateString(), fresh.CreationDateString())
	require.Equal(t, s.ModificationDateString(), fresh.ModificationDateString())
}

func TestLoadFromMap_PartialMapKeepsDefaults(t *testing.T) {
	fresh := NewSetting("example.com")
	salt := fresh.Salt()
	chars := fresh.CharacterSet()

	require.NoError(t, fresh.LoadFromMap(map[string]any{
		"username": "bob",
		"length":   float64(20),
	}))

	require.Equal(t, "bob", fresh.Username())
	require.Equal(t, 20, fresh.Length())
	require.Equal(t, 4096, fresh.Iterations())
	require.Equal(t, salt, fresh.Salt())
	require.Equal(t, chars, fresh.CharacterSet())
}

func TestLoadFromMap_DomainKeyNotMerged(t *testing.T) {
	s := NewSetting("example.com")

	require.NoError(t, s.LoadFromMap(map[string]any{
		"domain":   "other.org",
		"username": "alice",
	}))

	// The collection key stays with the record; other keys still apply.
	require.Equal(t, "example.com", s.Domain())
	require.Equal(t, "alice", s.Username())
}

func TestLoadFromMap_BadValuesLeaveFieldsUntouched(t *testing.T) {
	s := NewSetting("example.com")
	salt := s.Salt()

	err := s.LoadFromMap(map[string]any{
		"salt":       "%%% not base64 %%%",
		"iterations": "many",
		"username":   "carol",
	})
	require.ErrorIs(t, err, common.ErrInvalidArgument)

	require.Equal(t, salt, s.Salt())
	require.Equal(t, 4096, s.Iterations())
	// Valid keys in the same map are still applied.
	require.Equal(t, "carol", s.Username())
}

func TestLoadFromMap_MalformedDateReported(t *testing.T) {
	s := NewSetting("example.com")
	err := s.LoadFromMap(map[string]any{"cDate": "not-a-date"})
	require.ErrorIs(t, err, common.ErrMalformedDate)
	require.False(t, s.ModificationDate().Before(s.CreationDate()))
}
