package schedule

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"strings"
)

// Bus is a single active slot of the schedule. Period is the bus id and
// Offset is its position among all slots, inactive ones included.
type Bus struct {
	Period *big.Int
	Offset *big.Int
}

func NewBus(period, offset int64) Bus {
	return Bus{
		Period: big.NewInt(period),
		Offset: big.NewInt(offset),
	}
}

func (b Bus) String() string {
	return fmt.Sprintf("%s@%s", b.Period, b.Offset)
}

// Notes are the parsed contents of the two input lines.
type Notes struct {
	Timestamp *big.Int
	Buses     []Bus
	Slots     int
}

// Canonical renders the notes as the timestamp followed by each active
// bus, so notes that parse the same render the same.
func (n *Notes) Canonical() string {
	var b strings.Builder
	b.WriteString(n.Timestamp.String())
	for i, bus := range n.Buses {
		if i == 0 {
			b.WriteString(":")
		} else {
			b.WriteString(",")
		}
		b.WriteString(bus.String())
	}
	return b.String()
}

// ParseNotes parses the two line notes format: a timestamp, followed by
// a comma separated list of bus ids where `x` marks an inactive slot.
func ParseNotes(input string) (*Notes, error) {
	return ReadNotes(strings.NewReader(input))
}

func ReadNotes(r io.Reader) (*Notes, error) {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !s.Scan() {
		if err := s.Err(); err != nil {
			return nil, fmt.Errorf("reading timestamp: %w", err)
		}
		return nil, fmt.Errorf("%w: missing timestamp line", ErrMalformedInput)
	}
	line := strings.TrimSpace(s.Text())
	ts, ok := new(big.Int).SetString(line, 10)
	if !ok || ts.Sign() < 0 {
		return nil, fmt.Errorf("%w: timestamp %q is not a non-negative integer", ErrMalformedInput, line)
	}

	if !s.Scan() {
		if err := s.Err(); err != nil {
			return nil, fmt.Errorf("reading bus list: %w", err)
		}
		return nil, fmt.Errorf("%w: missing bus list line", ErrMalformedInput)
	}
	tokens := strings.Split(strings.TrimSpace(s.Text()), ",")

	n := &Notes{
		Timestamp: ts,
		Slots:     len(tokens),
	}
	for i, tok := range tokens {
		period, ok := new(big.Int).SetString(strings.TrimSpace(tok), 10)
		if !ok || period.Sign() <= 0 {
			// Inactive slot. It still takes up a position.
			continue
		}
		n.Buses = append(n.Buses, Bus{
			Period: period,
			Offset: big.NewInt(int64(i)),
		})
	}
	return n, nil
}
