package nori

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

const maxLineSize = 1024 * 1024

// LineSource reads input lines one at a time. Blank lines are returned as is.
type LineSource struct {
	scanner *bufio.Scanner
	closer  io.Closer
	name    string
}

// NewLineSource reads from r without taking ownership of it.
func NewLineSource(r io.Reader) *LineSource {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &LineSource{
		scanner: scanner,
		name:    "stdin",
	}
}

// OpenLineSource reads from the named file. Close releases it.
func OpenLineSource(path string) (*LineSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open input %s", path)
	}
	src := NewLineSource(f)
	src.closer = f
	src.name = path
	return src, nil
}

func (s *LineSource) Next() bool {
	return s.scanner.Scan()
}

func (s *LineSource) Text() string {
	return strings.TrimSuffix(s.scanner.Text(), "\r")
}

func (s *LineSource) Err() error {
	if err := s.scanner.Err(); err != nil {
		return errors.Wrapf(err, "read %s", s.name)
	}
	return nil
}

func (s *LineSource) Name() string { return s.name }

func (s *LineSource) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
