// Package source supplies casm program text one normalized line at a time.
package source

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Line is one normalized program line with its 1-based position in the file
type Line struct {
	Num  int
	Text string
}

// Source is a forward-only cursor over program lines.
// The interpreter loop and the conditional block scanner share one Source.
type Source struct {
	r      *bufio.Reader
	closer io.Closer
	num    int
	err    error
	done   bool
}

// New wraps r in a Source
func New(r io.Reader) *Source {
	return &Source{r: bufio.NewReader(r)}
}

// FromLines builds a Source over in-memory lines
func FromLines(lines []string) *Source {
	return New(strings.NewReader(strings.Join(lines, "\n")))
}

// Open opens a program file. Close releases it.
func Open(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open program: %w", err)
	}
	s := New(f)
	s.closer = f
	return s, nil
}

// Next returns the next non-empty normalized line.
// ok is false once the source is exhausted or a read error occurred; see Err.
func (s *Source) Next() (Line, bool) {
	for !s.done {
		raw, err := ReadLine(s.r)
		if err != nil {
			s.done = true
			if err != io.EOF {
				s.err = fmt.Errorf("read program line %d: %w", s.num+1, err)
				return Line{}, false
			}
			if raw == "" {
				return Line{}, false
			}
		}
		s.num++
		text := Normalize(raw)
		if text == "" {
			continue
		}
		return Line{Num: s.num, Text: text}, true
	}
	return Line{}, false
}

// LineNum returns the number of the last line read
func (s *Source) LineNum() int {
	return s.num
}

// Err returns the first read error, if any. io.EOF is not an error.
func (s *Source) Err() error {
	return s.err
}

// Close releases the underlying file, if Open created one
func (s *Source) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// Normalize trims surrounding whitespace and trailing statement terminators
func Normalize(raw string) string {
	text := strings.TrimSpace(raw)
	text = strings.TrimRight(text, ";")
	return strings.TrimSpace(text)
}

// ReadLine reads one line without its terminator.
// At end of input it returns the trailing partial line (possibly empty) with io.EOF.
func ReadLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		return strings.TrimRight(line, "\r"), err
	}
	return strings.TrimRight(line, "\n\r"), nil
}
