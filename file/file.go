package file

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/revelaction/idensity/conll"
	"github.com/revelaction/idensity/graph"
	sent "github.com/revelaction/idensity/sentence"
)

// Input kinds, chosen by file extension.
const (
	KindConll = "conll"
	KindDoc   = "doc"
	KindText  = "text"
)

// Kind returns the input kind of path: tabular for .conll, a token doc for
// .json, raw text otherwise.
func Kind(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".conll":
		return KindConll
	case ".json":
		return KindDoc
	}
	return KindText
}

// ReadDoc reads a Doc JSON from the given path and unmarshals it.
func ReadDoc(path string) (sent.Doc, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return sent.Doc{}, err
	}

	var doc sent.Doc
	err = json.Unmarshal(f, &doc)
	if err != nil {
		return sent.Doc{}, err
	}

	if doc.Title == "" {
		doc.Title = filepath.Base(path)
	}

	return doc, nil
}

// ReadConll reads a tabular parse file into a corpus.
func ReadConll(path string) (graph.Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return graph.Corpus{}, err
	}
	defer f.Close()

	return conll.Read(f)
}
