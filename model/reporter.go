package model

import (
	"fmt"
	"io"

	"github.com/gookit/color"
	"github.com/timewinder-dev/shuttle/schedule"
)

// Reporter receives progress as notes are solved.
type Reporter interface {
	// Stage is called as each bus is brought into alignment. n counts
	// from 1.
	Stage(n int, s schedule.Stage)
	// Cached is called when the notes were already solved in this run.
	Cached(notes *schedule.Notes)
}

// SilentReporter does not output any progress
type SilentReporter struct{}

func (r *SilentReporter) Stage(n int, s schedule.Stage) {}
func (r *SilentReporter) Cached(notes *schedule.Notes) {}

// ColorReporter writes one colorized line per event (typically to stderr)
type ColorReporter struct {
	Writer io.Writer
}

func (r *ColorReporter) Stage(n int, s schedule.Stage) {
	fmt.Fprintf(r.Writer, "%s bus %s aligned at %s (searched from %s, %d tried)\n",
		color.Bold.Sprintf("[%d]", n),
		color.Yellow.Sprint(s.Bus),
		color.Green.Sprint(s.Candidate),
		s.Start,
		s.Tried,
	)
}

func (r *ColorReporter) Cached(notes *schedule.Notes) {
	fmt.Fprintf(r.Writer, "%s\n", color.Gray.Sprintf("notes for %s already solved", notes.Timestamp))
}
