// Package graph holds the in-memory dependency structure of one sentence.
//
// A Graph is built incrementally while one sentence worth of parser output
// is read, and sealed at the sentence boundary. A sealed graph is never
// mutated again.
package graph

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrMissingRoot   = errors.New("no ROOT dependent under the virtual root")
	ErrMultipleRoots = errors.New("more than one ROOT dependent under the virtual root")
	ErrUnknownHead   = errors.New("head address not present in sentence")
)

// Relation labels that attach a token to the virtual root.
const (
	RootUpper = "ROOT"
	RootLower = "root"
)

type Graph struct {
	nodes  map[int]*Node
	root   *Node
	sealed bool
}

// New returns an empty graph containing only the virtual root.
func New() *Graph {
	g := &Graph{nodes: map[int]*Node{}}
	g.nodes[0] = &Node{
		Address: 0,
		CTag:    TopTag,
		Tag:     TopTag,
		Head:    NoHead,
		Deps:    NewDeps(),
	}
	return g
}

// Upsert merges fields into the node at address, creating it first if it
// does not exist. Fields may arrive in any order.
func (g *Graph) Upsert(address int, fn func(n *Node)) *Node {
	g.mustBeOpen()
	n, ok := g.nodes[address]
	if !ok {
		n = &Node{Address: address, Head: NoHead, Deps: NewDeps()}
		g.nodes[address] = n
	}
	if fn != nil {
		fn(n)
	}
	return n
}

// AddDependent appends child to the dependents of head under rel.
func (g *Graph) AddDependent(head int, rel string, child int) error {
	g.mustBeOpen()
	n, ok := g.nodes[head]
	if !ok {
		return fmt.Errorf("%w: %d (dependent %d)", ErrUnknownHead, head, child)
	}
	n.Deps.Add(rel, child)
	return nil
}

// LinkDependents registers every real node as a dependent of its head, in
// ascending address order.
func (g *Graph) LinkDependents() error {
	for _, n := range g.Nodes() {
		if n.IsRoot() {
			continue
		}
		if err := g.AddDependent(n.Head, n.Rel, n.Address); err != nil {
			return err
		}
	}
	return nil
}

// ResolveRoot looks up the single ROOT dependent of the virtual root. No
// root leaves the graph root-less, which is not an error here.
func (g *Graph) ResolveRoot() error {
	top := g.nodes[0]
	candidates := append([]int{}, top.Deps.Get(RootUpper)...)
	candidates = append(candidates, top.Deps.Get(RootLower)...)

	switch len(candidates) {
	case 0:
		g.root = nil
		return nil
	case 1:
		g.root = g.nodes[candidates[0]]
		return nil
	}

	return fmt.Errorf("%w: addresses %v", ErrMultipleRoots, candidates)
}

// Root returns the node attached to the virtual root, or ErrMissingRoot.
func (g *Graph) Root() (*Node, error) {
	if g.root == nil {
		return nil, ErrMissingRoot
	}
	return g.root, nil
}

func (g *Graph) RootLess() bool {
	return g.root == nil
}

// Node returns the node at address.
func (g *Graph) Node(address int) (*Node, bool) {
	n, ok := g.nodes[address]
	return n, ok
}

// Nodes returns all nodes, virtual root included, in ascending address order.
func (g *Graph) Nodes() []*Node {
	addrs := make([]int, 0, len(g.nodes))
	for a := range g.nodes {
		addrs = append(addrs, a)
	}
	sort.Ints(addrs)

	nodes := make([]*Node, 0, len(addrs))
	for _, a := range addrs {
		nodes = append(nodes, g.nodes[a])
	}
	return nodes
}

// Len returns the number of real nodes.
func (g *Graph) Len() int {
	return len(g.nodes) - 1
}

// SentenceText joins the surface forms in address order.
func (g *Graph) SentenceText() string {
	words := make([]string, 0, len(g.nodes))
	for _, n := range g.Nodes() {
		if n.IsRoot() || n.Word == "" {
			continue
		}
		words = append(words, n.Word)
	}
	return strings.Join(words, " ")
}

func (g *Graph) Seal() {
	g.sealed = true
}

func (g *Graph) Sealed() bool {
	return g.sealed
}

func (g *Graph) mustBeOpen() {
	if g.sealed {
		panic("graph: mutation of a sealed graph")
	}
}
