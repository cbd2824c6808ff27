package domain

import (
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// VisitedSet is an immutable membership set of location ids.
// With returns a new set; the receiver is never modified.
type VisitedSet struct {
	bits *bitset.BitSet
}

func NewVisitedSet(ids ...int) VisitedSet {
	b := bitset.New(0)
	for _, id := range ids {
		b.Set(uint(id))
	}
	return VisitedSet{bits: b}
}

func (v VisitedSet) Contains(id int) bool {
	if v.bits == nil || id < 0 {
		return false
	}
	return v.bits.Test(uint(id))
}

// With returns a copy of v that also contains id.
func (v VisitedSet) With(id int) VisitedSet {
	var b *bitset.BitSet
	if v.bits == nil {
		b = bitset.New(uint(id) + 1)
	} else {
		b = v.bits.Clone()
	}
	b.Set(uint(id))
	return VisitedSet{bits: b}
}

func (v VisitedSet) Len() int {
	if v.bits == nil {
		return 0
	}
	return int(v.bits.Count())
}

// IDs returns the members in ascending order.
func (v VisitedSet) IDs() []int {
	out := make([]int, 0, v.Len())
	if v.bits == nil {
		return out
	}
	for i, ok := v.bits.NextSet(0); ok; i, ok = v.bits.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}

// Key returns a canonical string usable as a map key.
func (v VisitedSet) Key() string {
	var sb strings.Builder
	for i, id := range v.IDs() {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(id))
	}
	return sb.String()
}

// Compare orders sets as if each were the integer whose set bits are its members.
func (v VisitedSet) Compare(o VisitedSet) int {
	a, b := v.IDs(), o.IDs()
	i, j := len(a)-1, len(b)-1
	for i >= 0 && j >= 0 {
		switch {
		case a[i] > b[j]:
			return 1
		case a[i] < b[j]:
			return -1
		}
		i--
		j--
	}
	switch {
	case i >= 0:
		return 1
	case j >= 0:
		return -1
	}
	return 0
}
