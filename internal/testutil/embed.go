package testutil

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// TestdataFS holds the embedded test data files.
//
//go:embed testdata
var TestdataFS embed.FS

// Dir is the location of the test data relative to the module root.
const Dir = "internal/testutil/testdata"

// ReadTestData reads and returns the content of an embedded test file.
func ReadTestData(name string) ([]byte, error) {
	data, err := fs.ReadFile(TestdataFS, path.Join("testdata", name))
	if err != nil {
		return nil, fmt.Errorf("failed to read test data file '%s': %w", name, err)
	}
	return data, nil
}

// Inputs returns the names of the embedded tokenizer inputs, the files
// ending in ".json", in lexical order.
func Inputs() ([]string, error) {
	matches, err := fs.Glob(TestdataFS, "testdata/*.json")
	if err != nil {
		return nil, err
	}
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = strings.TrimPrefix(m, "testdata/")
	}
	return names, nil
}

// GoldenName returns the name of the golden file paired with input.
func GoldenName(input string) string {
	return strings.TrimSuffix(input, ".json") + ".golden"
}
