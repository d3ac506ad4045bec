package schedule

import "math/big"

// Sequence yields start, start+step, start+2*step, ... without end.
// It is not safe for concurrent use.
type Sequence struct {
	next *big.Int
	step *big.Int
}

// NewSequence copies start and step; later changes to them do not
// affect the sequence.
func NewSequence(start, step *big.Int) *Sequence {
	return &Sequence{
		next: new(big.Int).Set(start),
		step: new(big.Int).Set(step),
	}
}

// Next returns the current value and advances the sequence.
func (s *Sequence) Next() *big.Int {
	out := new(big.Int).Set(s.next)
	s.next.Add(s.next, s.step)
	return out
}

// Peek returns the value the following call to Next will return.
func (s *Sequence) Peek() *big.Int {
	return new(big.Int).Set(s.next)
}

// Step returns the amount each value advances by.
func (s *Sequence) Step() *big.Int {
	return new(big.Int).Set(s.step)
}
