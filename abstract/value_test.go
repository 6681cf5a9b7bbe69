package abstract

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestParseValue(t *testing.T) {
	v, err := ParseValue("42")
	require.NoError(t, err)
	require.Equal(t, int64(42), v)

	v, err = ParseValue("  -7\n")
	require.NoError(t, err)
	require.Equal(t, int64(-7), v)

	for _, bad := range []string{"", "abc", "12.5", "1e3", "0x10"} {
		_, err := ParseValue(bad)
		require.Error(t, err, "input %q", bad)
		require.True(t, errors.Is(err, ErrInvalidValue), "input %q", bad)
	}
}

func TestFormatValue(t *testing.T) {
	require.Equal(t, "42", FormatValue(42))
	require.Equal(t, "-7", FormatValue(-7))
}

func TestCompare(t *testing.T) {
	require.Negative(t, Compare(1, 2))
	require.Positive(t, Compare(2, 1))
	require.Zero(t, Compare(3, 3))
	require.Negative(t, Compare("ant", "bee"))
}

func TestCapsHas(t *testing.T) {
	c := CapInsert | CapSearch | CapWords
	require.True(t, c.Has(CapInsert))
	require.True(t, c.Has(CapInsert|CapWords))
	require.False(t, c.Has(CapDelete))
	require.False(t, c.Has(CapInsert|CapDelete))
	require.Equal(t, "insert,search,words", c.String())
}

func TestAnnounceNilBus(t *testing.T) {
	// Structures run fine without a bus attached.
	require.NotPanics(t, func() { Announce(nil, EventInserted, nil, "1") })
}

func TestAnnounce(t *testing.T) {
	b := NewBus()
	var got []Mutation
	b.Subscribe(EventInserted, func(m Mutation) { got = append(got, m) })
	Announce(b, EventInserted, nil, "11")
	Announce(b, EventDeleted, nil, "12")
	require.Len(t, got, 1)
	require.Equal(t, "11", got[0].Value)
}
