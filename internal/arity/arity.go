// Package arity defines the arity tiers a generation run can target and
// enumerates the (arity, index) units a capability is synthesized for.
package arity

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strconv"
)

// Tier is the maximum arity of a generation run.
type Tier int

// DefaultTier is used when no tier is configured.
const DefaultTier Tier = 8

// Tiers lists every supported maximum arity in ascending order.
var Tiers = []Tier{8, 16, 32, 48, 64, 96, 128}

// ErrUnsupportedTier is returned by ParseTier for values outside Tiers.
var ErrUnsupportedTier = errors.New("unsupported arity tier")

// ParseTier validates n as a tier.
func ParseTier(n int) (Tier, error) {
	if !slices.Contains(Tiers, Tier(n)) {
		return 0, fmt.Errorf("%w: %d (supported: %v)", ErrUnsupportedTier, n, Tiers)
	}

	return Tier(n), nil
}

// TypeParams returns the type parameter names T1..Tn.
func TypeParams(n int) []string {
	return names("T", 1, n)
}

// Slots returns the field names V0..V(n-1) of a flat tuple.
func Slots(n int) []string {
	return names("V", 0, n)
}

// Indices returns 0..n-1.
func Indices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

func names(prefix string, first, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = prefix + strconv.Itoa(first+i)
	}

	return out
}

// IndexPolicy decides which indices accompany each arity.
type IndexPolicy int

const (
	// NoIndex produces one unit per arity with Index -1.
	NoIndex IndexPolicy = iota
	// Exclusive produces 0 <= index < arity.
	Exclusive
	// Inclusive produces 0 <= index <= arity.
	Inclusive
	// Bounded produces 0 <= index < max, independent of the arity.
	Bounded
)

func (p IndexPolicy) String() string {
	switch p {
	case NoIndex:
		return "none"
	case Exclusive:
		return "exclusive"
	case Inclusive:
		return "inclusive"
	case Bounded:
		return "bounded"
	default:
		return "IndexPolicy(" + strconv.Itoa(int(p)) + ")"
	}
}

// Range is an arity window. Lo is absolute; Hi is an offset from the tier, so
// Range{Lo: 0, Hi: -1} spans 0..max-1.
type Range struct {
	Lo int
	Hi int
}

// Full spans every arity 0..max.
var Full = Range{}

// Bounds resolves r against the tier.
func (r Range) Bounds(top Tier) (lo, hi int) {
	return max(r.Lo, 0), int(top) + r.Hi
}

// Unit identifies one synthesized implementation.
type Unit struct {
	Arity int
	// Index is -1 for capabilities without an index.
	Index int
	Max   Tier
}

// HasIndex reports whether u carries an index.
func (u Unit) HasIndex() bool { return u.Index >= 0 }

func (u Unit) String() string {
	if !u.HasIndex() {
		return fmt.Sprintf("arity %d", u.Arity)
	}

	return fmt.Sprintf("arity %d index %d", u.Arity, u.Index)
}

// Units enumerates the units of r under policy for a run with the given tier,
// arity ascending and then index ascending. The sequence is lazy and can be
// ranged over more than once.
func Units(r Range, policy IndexPolicy, top Tier) iter.Seq[Unit] {
	lo, hi := r.Bounds(top)

	return func(yield func(Unit) bool) {
		for n := lo; n <= hi; n++ {
			first, last := indexBounds(policy, n, int(top))
			for i := first; i <= last; i++ {
				if !yield(Unit{Arity: n, Index: i, Max: top}) {
					return
				}
			}
		}
	}
}

// Count returns the number of units Units would produce.
func Count(r Range, policy IndexPolicy, top Tier) int {
	c := 0
	for range Units(r, policy, top) {
		c++
	}

	return c
}

func indexBounds(policy IndexPolicy, n, top int) (first, last int) {
	switch policy {
	case Exclusive:
		return 0, n - 1
	case Inclusive:
		return 0, n
	case Bounded:
		return 0, top - 1
	default:
		return -1, -1
	}
}
