package model

import (
	"fmt"
	"math/big"

	"github.com/rs/zerolog"
	"github.com/timewinder-dev/shuttle/cache"
	"github.com/timewinder-dev/shuttle/schedule"
)

// Answer is the result of solving one set of notes.
type Answer struct {
	PartOne *big.Int
	PartTwo *big.Int
	Stages  []schedule.Stage
	Cached  bool
}

type storedAnswer struct {
	PartOne string
	PartTwo string
}

// An Executor solves notes, reusing answers for notes it has already seen.
type Executor struct {
	Config   *Config
	Reporter Reporter
	Logger   zerolog.Logger
	Verify   bool

	store *cache.LRUCache
}

func NewExecutor(c *Config) *Executor {
	if c == nil {
		c = DefaultConfig()
	}
	return &Executor{
		Config:   c,
		Reporter: &SilentReporter{},
		Logger:   zerolog.Nop(),
		store:    cache.NewLRUCache(cache.NewMemoryStore(), c.Cache.Size),
	}
}

func (e *Executor) CacheStats() cache.CacheStats {
	return e.store.Stats()
}

// Solve parses the notes and computes both answers.
func (e *Executor) Solve(input string) (*Answer, error) {
	notes, err := schedule.ParseNotes(input)
	if err != nil {
		return nil, err
	}
	key := cache.KeyOf(notes.Canonical())
	if ans, ok := e.lookup(key); ok {
		e.Logger.Debug().Uint64("key", uint64(key)).Msg("answer served from cache")
		e.Reporter.Cached(notes)
		return ans, nil
	}
	e.Logger.Debug().
		Str("timestamp", notes.Timestamp.String()).
		Int("buses", len(notes.Buses)).
		Int("slots", notes.Slots).
		Msg("parsed notes")

	partOne, err := schedule.PartOne(notes)
	if err != nil {
		return nil, fmt.Errorf("part one: %w", err)
	}

	stage := 0
	aligner := &schedule.Aligner{
		CandidateLimit: e.Config.Search.MaxCandidates,
		OnStage: func(s schedule.Stage) {
			stage++
			e.Logger.Debug().
				Str("bus", s.Bus.String()).
				Str("candidate", s.Candidate.String()).
				Int64("tried", s.Tried).
				Msg("stage aligned")
			e.Reporter.Stage(stage, s)
		},
	}
	al, err := aligner.Align(notes.Buses)
	if err != nil {
		return nil, fmt.Errorf("part two: %w", err)
	}
	if e.Verify && !schedule.Satisfies(al.Timestamp, notes.Buses) {
		return nil, fmt.Errorf("part two: %w: %s does not align every bus", schedule.ErrNoSolution, al.Timestamp)
	}

	ans := &Answer{
		PartOne: partOne,
		PartTwo: al.Timestamp,
		Stages:  al.Stages,
	}
	err = e.store.Put(key, &cache.Value[storedAnswer]{V: storedAnswer{
		PartOne: partOne.String(),
		PartTwo: al.Timestamp.String(),
	}})
	if err != nil {
		return nil, fmt.Errorf("caching answer: %w", err)
	}
	return ans, nil
}

func (e *Executor) lookup(key cache.Hash) (*Answer, bool) {
	var v cache.Value[storedAnswer]
	ok, err := e.store.Get(key, &v)
	if err != nil {
		e.Logger.Warn().Err(err).Msg("discarding unreadable cache entry")
		return nil, false
	}
	if !ok {
		return nil, false
	}
	one, ok1 := new(big.Int).SetString(v.V.PartOne, 10)
	two, ok2 := new(big.Int).SetString(v.V.PartTwo, 10)
	if !ok1 || !ok2 {
		return nil, false
	}
	return &Answer{PartOne: one, PartTwo: two, Cached: true}, true
}
