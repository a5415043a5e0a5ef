package stat

import (
	"strconv"
	"strings"
)

// VectorKinds is the fixed order of the compact feature vector.
var VectorKinds = [3]string{"P", "M", "C"}

type KindCount struct {
	Kind  string `json:"kind"`
	Count int    `json:"count"`
}

// Stats counts propositions by kind across a corpus. Kinds keep the order
// in which they were first observed.
type Stats struct {
	kinds  []string
	counts map[string]int
}

func New() *Stats {
	return &Stats{counts: map[string]int{}}
}

// Add counts one proposition of kind.
func (s *Stats) Add(kind string) {
	s.AddN(kind, 1)
}

// AddN counts n propositions of kind. Non-positive n is ignored.
func (s *Stats) AddN(kind string, n int) {
	if n <= 0 {
		return
	}
	if _, ok := s.counts[kind]; !ok {
		s.kinds = append(s.kinds, kind)
	}
	s.counts[kind] += n
}

func (s *Stats) Count(kind string) int {
	return s.counts[kind]
}

func (s *Stats) Total() int {
	total := 0
	for _, n := range s.counts {
		total += n
	}
	return total
}

// Kinds returns the observed kinds in first-observed order.
func (s *Stats) Kinds() []string {
	out := make([]string, len(s.kinds))
	copy(out, s.kinds)
	return out
}

// Table returns every observed kind with its count.
func (s *Stats) Table() []KindCount {
	table := make([]KindCount, 0, len(s.kinds))
	for _, k := range s.kinds {
		table = append(table, KindCount{Kind: k, Count: s.counts[k]})
	}
	return table
}

// Vector returns the P, M and C counts. Absent kinds count 0; other kinds
// are left out.
func (s *Stats) Vector() [3]int {
	var v [3]int
	for i, k := range VectorKinds {
		v[i] = s.counts[k]
	}
	return v
}

// VectorString formats Vector as three space separated integers.
func (s *Stats) VectorString() string {
	v := s.Vector()
	vals := make([]string, len(v))
	for i, n := range v {
		vals[i] = strconv.Itoa(n)
	}
	return strings.Join(vals, " ")
}

// Merge adds the counts of other. Kinds new to s are appended in the order
// other observed them.
func (s *Stats) Merge(other *Stats) {
	if other == nil {
		return
	}
	for _, k := range other.kinds {
		s.AddN(k, other.counts[k])
	}
}
