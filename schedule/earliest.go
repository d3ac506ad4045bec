package schedule

import "math/big"

// Departure is the bus with the shortest wait after a timestamp.
type Departure struct {
	Bus  Bus
	Wait *big.Int
}

// Answer is the wait multiplied by the bus id.
func (d *Departure) Answer() *big.Int {
	return new(big.Int).Mul(d.Wait, d.Bus.Period)
}

// EarliestDeparture finds the first bus leaving at or after ts. A bus
// leaving exactly at ts ends the search with a zero wait.
func EarliestDeparture(ts *big.Int, buses []Bus) (*Departure, error) {
	if len(buses) == 0 {
		return nil, ErrNoBuses
	}
	var best *Departure
	rem := new(big.Int)
	for _, b := range buses {
		rem.Mod(ts, b.Period)
		if rem.Sign() == 0 {
			return &Departure{Bus: b, Wait: new(big.Int)}, nil
		}
		wait := new(big.Int).Sub(b.Period, rem)
		if best == nil || wait.Cmp(best.Wait) < 0 {
			best = &Departure{Bus: b, Wait: wait}
		}
	}
	return best, nil
}

// PartOne is the wait multiplied by the id of the earliest bus in n.
func PartOne(n *Notes) (*big.Int, error) {
	d, err := EarliestDeparture(n.Timestamp, n.Buses)
	if err != nil {
		return nil, err
	}
	return d.Answer(), nil
}
