// Package codec maps durable repository ids to small per-snapshot integers.
package codec

import "errors"

// ErrUnresolvable is returned when a virtual id was never assigned in the snapshot.
var ErrUnresolvable = errors.New("cannot resolve identifier")

// Kind selects one of the independent numbering sequences.
type Kind int

const (
	Container Kind = iota
	Shelf
	Item

	kindCount
)

func (k Kind) String() string {
	switch k {
	case Container:
		return "container"
	case Shelf:
		return "shelf"
	case Item:
		return "item"
	default:
		return "unknown"
	}
}

type sequence struct {
	toVirtual map[string]int
	toDurable []string
}

// Codec is a bidirectional mapping valid for a single command. It is not safe
// for concurrent use and must not outlive the command that built it.
type Codec struct {
	seqs [kindCount]sequence
}

// New returns an empty codec.
func New() *Codec {
	c := &Codec{}
	for i := range c.seqs {
		c.seqs[i].toVirtual = make(map[string]int)
	}
	return c
}

// Assign returns the virtual id of durableID, allocating the next integer of
// the kind's sequence the first time the id is seen. Sequences start at 1.
func (c *Codec) Assign(durableID string, kind Kind) int {
	s := c.seq(kind)
	if s == nil {
		return 0
	}
	if v, ok := s.toVirtual[durableID]; ok {
		return v
	}
	s.toDurable = append(s.toDurable, durableID)
	v := len(s.toDurable)
	s.toVirtual[durableID] = v
	return v
}

// Resolve returns the durable id behind virtualID.
func (c *Codec) Resolve(virtualID int, kind Kind) (string, error) {
	s := c.seq(kind)
	if s == nil || virtualID < 1 || virtualID > len(s.toDurable) {
		return "", ErrUnresolvable
	}
	return s.toDurable[virtualID-1], nil
}

// Lookup returns the virtual id already assigned to durableID without allocating.
func (c *Codec) Lookup(durableID string, kind Kind) (int, bool) {
	s := c.seq(kind)
	if s == nil {
		return 0, false
	}
	v, ok := s.toVirtual[durableID]
	return v, ok
}

// Len returns how many ids of kind were assigned.
func (c *Codec) Len(kind Kind) int {
	s := c.seq(kind)
	if s == nil {
		return 0
	}
	return len(s.toDurable)
}

func (c *Codec) seq(kind Kind) *sequence {
	if kind < 0 || kind >= kindCount {
		return nil
	}
	return &c.seqs[kind]
}
