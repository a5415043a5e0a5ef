package graph

// NoHead is the head value of the virtual root, which has no governor.
const NoHead = -1

// TopTag is the part-of-speech category carried by the virtual root.
const TopTag = "TOP"

// Node represents one token of a sentence, or the virtual root at address 0.
type Node struct {
	Address int

	// The surface form. Empty for the virtual root.
	Word  string
	Lemma string

	// Coarse and fine grained part-of-speech categories
	CTag string
	Tag  string

	Feats string

	// Address of the governing node. 0 attaches the node directly under
	// the virtual root.
	Head int

	// Dependency relation label, case significant
	Rel string

	Deps *Deps
}

// IsRoot reports whether n is the virtual root.
func (n *Node) IsRoot() bool {
	return n.Address == 0
}

// Deps is an ordered multimap from relation label to dependent addresses.
// Labels keep their first insertion order and each list keeps surface order.
type Deps struct {
	labels []string
	m      map[string][]int
}

func NewDeps() *Deps {
	return &Deps{m: map[string][]int{}}
}

// Add appends addr to the dependents registered under label.
func (d *Deps) Add(label string, addr int) {
	if _, ok := d.m[label]; !ok {
		d.labels = append(d.labels, label)
	}
	d.m[label] = append(d.m[label], addr)
}

// Get returns the dependents registered under label. Unknown labels return
// an empty list and leave the map untouched.
func (d *Deps) Get(label string) []int {
	if d == nil {
		return nil
	}
	return d.m[label]
}

// Labels returns the relation labels in first insertion order.
func (d *Deps) Labels() []string {
	if d == nil {
		return nil
	}
	out := make([]string, len(d.labels))
	copy(out, d.labels)
	return out
}

// Len returns the number of distinct labels.
func (d *Deps) Len() int {
	if d == nil {
		return 0
	}
	return len(d.labels)
}

// Map returns a copy of the multimap as a plain map.
func (d *Deps) Map() map[string][]int {
	out := make(map[string][]int, d.Len())
	if d == nil {
		return out
	}
	for _, l := range d.labels {
		addrs := make([]int, len(d.m[l]))
		copy(addrs, d.m[l])
		out[l] = addrs
	}
	return out
}
