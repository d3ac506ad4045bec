package schedule

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartTwo(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"123\n7,13", 77},
		{"123\n7,13,17", 168},
		{"123\n7,13,17,x,19", 10997},
		{"999\n7,13,x,x,59,x,31,19", 1068781},
		{"999\n17,x,13,19", 3417},
		{"999\n67,7,59,61", 754018},
		{"999\n67,x,7,59,61", 779210},
		{"999\n67,7,x,59,61", 1261476},
		{"999\n1789,37,47,1889", 1202161486},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			n, err := ParseNotes(tt.input)
			require.NoError(t, err)
			got, err := PartTwo(n)
			require.NoError(t, err)
			assert.Equal(t, big.NewInt(tt.want).String(), got.String())
			assert.True(t, Satisfies(got, n.Buses))
		})
	}
}

func TestAlignIsMinimal(t *testing.T) {
	inputs := []string{
		"0\n7,13",
		"0\n3,x,5,7",
		"0\n17,x,13,19",
		"0\nx,x,11,x,4",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			n, err := ParseNotes(input)
			require.NoError(t, err)
			al, err := Align(n.Buses)
			require.NoError(t, err)
			require.True(t, Satisfies(al.Timestamp, n.Buses))

			for i := int64(0); i < al.Timestamp.Int64(); i++ {
				require.False(t, Satisfies(big.NewInt(i), n.Buses), "smaller candidate %d also aligns", i)
			}
		})
	}
}

func TestAlignStages(t *testing.T) {
	n, err := ParseNotes("0\n7,13,x,x,59")
	require.NoError(t, err)

	var seen []Stage
	a := &Aligner{OnStage: func(s Stage) { seen = append(seen, s) }}
	al, err := a.Align(n.Buses)
	require.NoError(t, err)
	require.Len(t, al.Stages, 3)
	assert.Equal(t, al.Stages, seen)

	assert.Equal(t, "0", al.Stages[0].Start.String())
	assert.Equal(t, "77", al.Stages[2].Start.String())
	assert.Equal(t, "1", al.Stages[0].Step.String())
	assert.Equal(t, "0", al.Stages[0].Candidate.String())
	assert.Equal(t, "7", al.Stages[1].Step.String())
	assert.Equal(t, "77", al.Stages[1].Candidate.String())
	assert.Equal(t, "91", al.Stages[2].Step.String())
	assert.Equal(t, al.Timestamp, al.Stages[2].Candidate)
	for _, s := range al.Stages {
		assert.LessOrEqual(t, s.Tried, s.Bus.Period.Int64())
	}
}

func TestAlignTrivialSchedules(t *testing.T) {
	al, err := Align(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, al.Timestamp.Sign())
	assert.Empty(t, al.Stages)

	al, err = Align([]Bus{NewBus(13, 0)})
	require.NoError(t, err)
	assert.Equal(t, "0", al.Timestamp.String())

	// A leading inactive slot: T+1 must be a multiple of 13.
	al, err = Align([]Bus{NewBus(13, 1)})
	require.NoError(t, err)
	assert.Equal(t, "12", al.Timestamp.String())
}

func TestAlignNoSolution(t *testing.T) {
	// T is even, so T+1 can never be a multiple of 4.
	_, err := Align([]Bus{NewBus(2, 0), NewBus(4, 1)})
	require.ErrorIs(t, err, ErrNoSolution)
}

func TestAlignCandidateLimit(t *testing.T) {
	n, err := ParseNotes("0\n1789,37,47,1889")
	require.NoError(t, err)

	a := &Aligner{CandidateLimit: 2}
	_, err = a.Align(n.Buses)
	require.ErrorIs(t, err, ErrNoSolution)
}

func TestAlignBeyondInt64(t *testing.T) {
	primes := []int64{1009, 1013, 1019, 1021, 1031, 1033, 1039}
	product := big.NewInt(1)
	var buses []Bus
	for i, p := range primes {
		buses = append(buses, NewBus(p, int64(i*3)))
		product.Mul(product, big.NewInt(p))
	}
	require.Greater(t, product.BitLen(), 64)

	al, err := Align(buses)
	require.NoError(t, err)
	assert.True(t, Satisfies(al.Timestamp, buses))
	assert.Equal(t, -1, al.Timestamp.Cmp(product))
	assert.GreaterOrEqual(t, al.Timestamp.Sign(), 0)
}
