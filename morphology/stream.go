package morphology

// SliceStream is a Stream over morphemes that are already in memory.
type SliceStream struct {
	morphemes []Morpheme
	cursor    int
	closed    bool
}

func NewSliceStream(morphemes []Morpheme) *SliceStream {
	return &SliceStream{
		morphemes: morphemes,
		cursor:    -1,
	}
}

func (s *SliceStream) Next() bool {
	if s.closed || s.cursor+1 >= len(s.morphemes) {
		return false
	}
	s.cursor++
	return true
}

func (s *SliceStream) Morpheme() Morpheme {
	if s.cursor < 0 || s.cursor >= len(s.morphemes) {
		return Morpheme{}
	}
	return s.morphemes[s.cursor]
}

func (s *SliceStream) Err() error { return nil }

func (s *SliceStream) Close() error {
	s.closed = true
	return nil
}

// Closed reports whether Close has been called.
func (s *SliceStream) Closed() bool { return s.closed }
