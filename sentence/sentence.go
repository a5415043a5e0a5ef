// Package sentence holds the token-stream form of a parse, as produced by an
// in-process parser (spacy, stanza), and converts it to dependency graphs.
package sentence

// Doc is one parsed input document: its sentences as token slices, in
// order. Title defaults to the file name when read from disk.
type Doc struct {
	Id     int
	Title  string
	Labels []string
	Tokens [][]Token `json:"tokens"`
}

// Token is one word of a sentence. Graph reads Index, Text, Lemma, Pos,
// Tag, Head and Dep; the remaining fields are carried for reference only.
type Token struct {
	Id         int `json:"id"`
	SentenceId int `json:"sent"`

	// coarse and fine part of speech
	Pos string `json:"pos"`
	Tag string `json:"tag"`

	// Dep labels the relation to the governor. "ROOT" attaches the token
	// to the virtual root whatever Head says.
	Dep string `json:"dep"`

	// Head is the 0-based Index of the governor.
	Head int `json:"head"`

	// character offset in the source document
	Idx int `json:"idx"`

	Text  string `json:"text"`
	Lemma string `json:"lemma"`

	// Index is the 0-based position in the sentence; the graph address is
	// Index+1.
	Index int `json:"index"`
}
