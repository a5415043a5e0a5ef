package filesystem

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/revelaction/idensity/storage"
)

// Extensions of the files picked up from a directory.
var InputExtensions = []string{".conll", ".json", ".txt"}

// InputStore lists the analysable files of a directory.
type InputStore struct {
	dir string
}

var _ storage.InputLister = (*InputStore)(nil)

func NewInputStore(dir string) *InputStore {
	return &InputStore{dir: dir}
}

// List returns the paths of the analysable files in the directory, sorted by
// name. Hidden files and subdirectories are ignored.
func (s *InputStore) List() ([]string, error) {
	files, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	paths := []string{}
	for _, file := range files {
		if file.IsDir() || strings.HasPrefix(file.Name(), ".") {
			continue
		}

		if !isInput(file.Name()) {
			continue
		}

		paths = append(paths, filepath.Join(s.dir, file.Name()))
	}

	sort.Strings(paths)
	return paths, nil
}

func isInput(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range InputExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// ExpandInputs replaces each directory argument with the files InputStore
// finds in it. File arguments are kept as given.
func ExpandInputs(args []string) ([]string, error) {
	var inputs []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			inputs = append(inputs, arg)
			continue
		}

		paths, err := NewInputStore(arg).List()
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, paths...)
	}
	return inputs, nil
}
