package schedule

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNotes(t *testing.T) {
	n, err := ParseNotes("123\n7,13")
	require.NoError(t, err)
	assert.Equal(t, 0, n.Timestamp.Cmp(big.NewInt(123)))
	assert.Equal(t, 2, n.Slots)
	require.Len(t, n.Buses, 2)
	assertBus(t, n.Buses[0], 7, 0)
	assertBus(t, n.Buses[1], 13, 1)
}

func TestParseNotesKeepsInactiveOffsets(t *testing.T) {
	n, err := ParseNotes("939\n7,13,x,19")
	require.NoError(t, err)
	assert.Equal(t, 4, n.Slots)
	require.Len(t, n.Buses, 3)
	assertBus(t, n.Buses[0], 7, 0)
	assertBus(t, n.Buses[1], 13, 1)
	assertBus(t, n.Buses[2], 19, 3)
}

func TestParseNotesWhitespace(t *testing.T) {
	n, err := ParseNotes(" 939 \r\n x, 7 ,13\r\n")
	require.NoError(t, err)
	assert.Equal(t, 0, n.Timestamp.Cmp(big.NewInt(939)))
	require.Len(t, n.Buses, 2)
	assertBus(t, n.Buses[0], 7, 1)
	assertBus(t, n.Buses[1], 13, 2)
}

func TestParseNotesSkipsNonPositive(t *testing.T) {
	n, err := ParseNotes("10\n0,-3,5,x")
	require.NoError(t, err)
	require.Len(t, n.Buses, 1)
	assertBus(t, n.Buses[0], 5, 2)
}

func TestParseNotesLargeIDs(t *testing.T) {
	n, err := ParseNotes("1\n18446744073709551629,x,3")
	require.NoError(t, err)
	require.Len(t, n.Buses, 2)
	assert.Equal(t, "18446744073709551629", n.Buses[0].Period.String())
	assert.Equal(t, "3@2", n.Buses[1].String())
}

func TestParseNotesMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"timestamp only", "939"},
		{"timestamp not numeric", "soon\n7,13"},
		{"negative timestamp", "-5\n7,13"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseNotes(tt.input)
			require.ErrorIs(t, err, ErrMalformedInput)
		})
	}
}

func TestReadNotes(t *testing.T) {
	n, err := ReadNotes(strings.NewReader("939\n7,13,x,x,59,x,31,19\n"))
	require.NoError(t, err)
	assert.Equal(t, 8, n.Slots)
	require.Len(t, n.Buses, 5)
	assertBus(t, n.Buses[4], 19, 7)
}

func assertBus(t *testing.T, b Bus, period, offset int64) {
	t.Helper()
	assert.Equal(t, 0, b.Period.Cmp(big.NewInt(period)), "period: got %s, want %d", b.Period, period)
	assert.Equal(t, 0, b.Offset.Cmp(big.NewInt(offset)), "offset: got %s, want %d", b.Offset, offset)
}

func TestNotesCanonical(t *testing.T) {
	a, err := ParseNotes("939\n7,13,x,x,59")
	require.NoError(t, err)
	b, err := ParseNotes(" 939 \r\n7, 13,x,x,59,x\r\n")
	require.NoError(t, err)
	assert.Equal(t, "939:7@0,13@1,59@4", a.Canonical())
	assert.Equal(t, a.Canonical(), b.Canonical())

	c, err := ParseNotes("939\nx,7,13,x,59")
	require.NoError(t, err)
	assert.NotEqual(t, a.Canonical(), c.Canonical())

	empty, err := ParseNotes("5\nx,x")
	require.NoError(t, err)
	assert.Equal(t, "5", empty.Canonical())
}
