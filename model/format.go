package model

import (
	"fmt"
	"strings"

	"github.com/gookit/color"
	"github.com/timewinder-dev/shuttle/cache"
)

// FormatAnswer renders the two answer lines written to stdout.
func FormatAnswer(a *Answer) string {
	return fmt.Sprintf("part one answer is %s\npart two answer is %s\n", a.PartOne, a.PartTwo)
}

// FormatStages renders the alignment stages for display
func FormatStages(a *Answer) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(color.Cyan.Sprint("=== Alignment stages ==="))
	b.WriteString("\n")
	if a.Cached {
		b.WriteString(color.Gray.Sprint("(answer reused from an earlier input)\n"))
		return b.String()
	}
	if len(a.Stages) == 0 {
		b.WriteString("  (no buses in service)\n")
		return b.String()
	}
	for i, s := range a.Stages {
		b.WriteString(color.Bold.Sprintf("Stage %d: ", i+1))
		b.WriteString(fmt.Sprintf("bus %s, from %s by %s, ", color.Yellow.Sprint(s.Bus), s.Start, s.Step))
		b.WriteString(fmt.Sprintf("tried %d, found %s\n", s.Tried, color.Green.Sprint(s.Candidate)))
	}
	return b.String()
}

func FormatCacheStats(stats cache.CacheStats) string {
	var b strings.Builder
	b.WriteString(color.Bold.Sprint("Distinct notes solved: "))
	b.WriteString(fmt.Sprintf("%d\n", stats.Stored))
	b.WriteString(color.Bold.Sprint("Recently used answers: "))
	b.WriteString(fmt.Sprintf("%d/%d\n", stats.Size, stats.MaxSize))
	b.WriteString(color.Bold.Sprint("Cache hits: "))
	b.WriteString(fmt.Sprintf("%d\n", stats.Hits))
	return b.String()
}
