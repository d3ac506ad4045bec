package schedule

import (
	"fmt"
	"math/big"
)

// Stage records one step of the alignment search: the bus that was
// introduced, where the candidates started and the step they advanced
// by, and the first candidate that lined up every bus seen so far.
type Stage struct {
	Bus       Bus
	Start     *big.Int
	Step      *big.Int
	Candidate *big.Int
	Tried     int64
}

// Alignment is the earliest timestamp at which every bus departs at its
// own offset, along with the stages that produced it.
type Alignment struct {
	Timestamp *big.Int
	Stages    []Stage
}

// An Aligner solves the departure alignment one bus at a time. Each
// stage only searches candidates that keep the earlier buses aligned,
// so a stage never needs more than Period candidates.
type Aligner struct {
	// CandidateLimit caps the candidates tried in a single stage.
	// Zero means the stage is bounded only by the bus period.
	CandidateLimit int64

	// OnStage, if set, is called after each stage completes.
	OnStage func(Stage)
}

// Align uses a zero-value Aligner.
func Align(buses []Bus) (*Alignment, error) {
	var a Aligner
	return a.Align(buses)
}

// Align returns the earliest timestamp at which every bus departs at
// its offset. An empty schedule aligns at 0.
func (a *Aligner) Align(buses []Bus) (*Alignment, error) {
	candidate := new(big.Int)
	step := big.NewInt(1)
	out := &Alignment{}

	for k := range buses {
		stage, err := a.solveStage(buses[:k+1], NewSequence(candidate, step))
		if err != nil {
			return nil, err
		}
		out.Stages = append(out.Stages, stage)
		if a.OnStage != nil {
			a.OnStage(stage)
		}
		candidate = stage.Candidate
		step = new(big.Int).Mul(step, buses[k].Period)
	}
	out.Timestamp = candidate
	return out, nil
}

// solveStage scans seq for the first candidate aligning every bus in
// buses. The last bus is the one being introduced.
func (a *Aligner) solveStage(buses []Bus, seq *Sequence) (Stage, error) {
	bus := buses[len(buses)-1]
	stage := Stage{
		Bus:   bus,
		Start: seq.Peek(),
		Step:  seq.Step(),
	}

	// Candidates repeat modulo the new period after Period pulls.
	limit := new(big.Int).Set(bus.Period)
	if a.CandidateLimit > 0 && limit.Cmp(big.NewInt(a.CandidateLimit)) > 0 {
		limit.SetInt64(a.CandidateLimit)
	}

	tried := new(big.Int)
	one := big.NewInt(1)
	for tried.Cmp(limit) < 0 {
		t := seq.Next()
		tried.Add(tried, one)
		if Satisfies(t, buses) {
			stage.Candidate = t
			stage.Tried = tried.Int64()
			return stage, nil
		}
	}
	return stage, fmt.Errorf("%w: bus %s after %s candidates", ErrNoSolution, bus, tried)
}

// Satisfies reports whether every bus departs at t plus its offset.
func Satisfies(t *big.Int, buses []Bus) bool {
	x := new(big.Int)
	for _, b := range buses {
		x.Add(t, b.Offset)
		if x.Mod(x, b.Period).Sign() != 0 {
			return false
		}
	}
	return true
}

// PartTwo is the aligned timestamp for the buses in n.
func PartTwo(n *Notes) (*big.Int, error) {
	al, err := Align(n.Buses)
	if err != nil {
		return nil, err
	}
	return al.Timestamp, nil
}
