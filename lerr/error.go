// Package lerr is the error model shared by every collaborator around
// the core: a single positioned error that prints the offending source
// line, and a list of such errors for the grammar reader's failures
// that must be reported all at once rather than aborting on the first
// one.
package lerr

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Error is one positioned failure: a cause, the file and row/column it
// was found at, and (when available) the source line it points into.
type Error struct {
	Cause      error
	FilePath   string
	SourceName string
	Row        int
	Col        int
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.SourceName != "" {
		fmt.Fprintf(&b, "%v: ", e.SourceName)
	}
	if e.Row != 0 {
		if e.Col != 0 {
			fmt.Fprintf(&b, "%v:%v: ", e.Row, e.Col)
		} else {
			fmt.Fprintf(&b, "%v: ", e.Row)
		}
	}
	fmt.Fprintf(&b, "error: %v", e.Cause)

	line := readLine(e.FilePath, e.Row)
	if line != "" {
		fmt.Fprintf(&b, "\n    %v", line)
		if e.Col > 0 {
			fmt.Fprintf(&b, "\n    %v^", strings.Repeat(" ", e.Col-1))
		}
	}

	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func readLine(filePath string, row int) string {
	if filePath == "" || row <= 0 {
		return ""
	}

	f, err := os.Open(filePath)
	if err != nil {
		return ""
	}
	defer f.Close()

	i := 1
	s := bufio.NewScanner(f)
	for s.Scan() {
		if i == row {
			return s.Text()
		}
		i++
	}

	return ""
}

// List collects every error produced by a single pass of the grammar
// reader (parsing or building) instead of aborting on the first one.
// grammar.Grammar.Validate reports its structure errors as a plain
// []error rather than a List.
type List []error

func (l List) Error() string {
	if len(l) == 0 {
		return "no errors"
	}
	lines := make([]string, len(l))
	for i, e := range l {
		lines[i] = e.Error()
	}
	return strings.Join(lines, "\n")
}

func (l List) HasErrors() bool {
	return len(l) > 0
}
