package anagram

import "strings"

const alphabetSize = 26

// Multiset counts normalized letters a-z by index. The zero value is
// the empty multiset.
type Multiset [alphabetSize]uint8

// NewMultiset builds a multiset from text. Bytes outside a-z are
// skipped, so callers should run Normalize first to fold case and
// diacritics into that range.
func NewMultiset(s string) Multiset {
	var m Multiset
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 'a' && c <= 'z' {
			m[c-'a']++
		}
	}
	return m
}

// Add accumulates other's counts into m.
func (m *Multiset) Add(other Multiset) {
	for i := range m {
		m[i] += other[i]
	}
}

// Sub subtracts other from m. It reports false and leaves m unchanged
// if any count would go negative.
func (m *Multiset) Sub(other Multiset) bool {
	if !other.SubsetOf(*m) {
		return false
	}
	m.MustSub(other)
	return true
}

// MustSub subtracts other from m. The caller must have already
// established other.SubsetOf(m).
func (m *Multiset) MustSub(other Multiset) {
	for i := range m {
		m[i] -= other[i]
	}
}

// SubsetOf reports whether every letter count in m is at most the
// matching count in other.
func (m Multiset) SubsetOf(other Multiset) bool {
	for i := range m {
		if m[i] > other[i] {
			return false
		}
	}
	return true
}

// IsEmpty reports whether no letters remain.
func (m Multiset) IsEmpty() bool {
	return m == Multiset{}
}

// Count returns the total number of letters in the multiset.
func (m Multiset) Count() int {
	n := 0
	for _, c := range m {
		n += int(c)
	}
	return n
}

// String renders the letters in alphabetical order, each repeated by
// its count, e.g. NewMultiset("tea").String() == "aet".
func (m Multiset) String() string {
	var b strings.Builder
	b.Grow(m.Count())
	for i, c := range m {
		for j := uint8(0); j < c; j++ {
			b.WriteByte(byte('a' + i))
		}
	}
	return b.String()
}
