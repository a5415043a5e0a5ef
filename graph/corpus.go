package graph

// Entry is one sentence position of a corpus. It carries either a sealed
// graph or the malformed-input error that caused the sentence to be dropped.
type Entry struct {
	Graph *Graph
	Err   error

	// Line of the input where the sentence started, 0 when unknown
	Line int
}

// Corpus is the ordered sequence of sentences produced by an adapter. It
// contains sentences only; the end of input is the end of Entries.
type Corpus struct {
	Entries []Entry
}

func (c *Corpus) Add(e Entry) {
	c.Entries = append(c.Entries, e)
}

// Len returns the number of sentence positions, malformed ones included.
func (c Corpus) Len() int {
	return len(c.Entries)
}

// Graphs returns the well-formed sentence graphs in order.
func (c Corpus) Graphs() []*Graph {
	graphs := make([]*Graph, 0, len(c.Entries))
	for _, e := range c.Entries {
		if e.Err == nil && e.Graph != nil {
			graphs = append(graphs, e.Graph)
		}
	}
	return graphs
}
