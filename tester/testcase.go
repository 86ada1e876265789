package tester

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// TestCase is one <name>.txt/<name>.tree pair: source text and the
// ASCII tree driver.PrintTree should produce for it.
type TestCase struct {
	Name         string
	Path         string
	Input        string
	ExpectedTree string
}

// ListTestCases finds every <name>.txt file under dir with a matching
// <name>.tree sibling, sorted by name for deterministic run order.
func ListTestCases(dir string) ([]*TestCase, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("tester: reading %v: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(e.Name(), ".txt") {
			names = append(names, strings.TrimSuffix(e.Name(), ".txt"))
		}
	}
	sort.Strings(names)

	var cases []*TestCase
	for _, name := range names {
		txtPath := filepath.Join(dir, name+".txt")
		treePath := filepath.Join(dir, name+".tree")

		input, err := os.ReadFile(txtPath)
		if err != nil {
			return nil, fmt.Errorf("tester: reading %v: %w", txtPath, err)
		}
		expected, err := os.ReadFile(treePath)
		if err != nil {
			return nil, fmt.Errorf("tester: %v has no matching %v: %w", txtPath, treePath, err)
		}

		cases = append(cases, &TestCase{
			Name:         name,
			Path:         txtPath,
			Input:        string(input),
			ExpectedTree: string(expected),
		})
	}
	return cases, nil
}
