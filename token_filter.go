package nori

import (
	"strings"

	"github.com/kotaroooo0/nori/morphology"
)

// TokenFilter wraps a morpheme stream. Filters stay lazy: nothing is read from
// the wrapped stream until the caller asks for the next morpheme.
type TokenFilter interface {
	Filter(morphology.Stream) morphology.Stream
}

// StopTagFilter drops morphemes whose leading POS is a stop tag.
type StopTagFilter struct {
	stopTags morphology.TagSet
}

func NewStopTagFilter(stopTags morphology.TagSet) StopTagFilter {
	return StopTagFilter{
		stopTags: stopTags,
	}
}

func (f StopTagFilter) Filter(s morphology.Stream) morphology.Stream {
	return &acceptStream{
		Stream: s,
		accept: func(m morphology.Morpheme) bool {
			return !f.stopTags.Contains(m.LeftPOS)
		},
	}
}

// ReadingformFilter replaces the surface with its reading (hanja to hangul)
// when the engine reports one.
type ReadingformFilter struct{}

func NewReadingformFilter() ReadingformFilter {
	return ReadingformFilter{}
}

func (f ReadingformFilter) Filter(s morphology.Stream) morphology.Stream {
	return &mapStream{
		Stream: s,
		mapper: func(m morphology.Morpheme) morphology.Morpheme {
			if m.Reading != "" {
				m.Surface = m.Reading
			}
			return m
		},
	}
}

type LowercaseFilter struct{}

func NewLowercaseFilter() LowercaseFilter {
	return LowercaseFilter{}
}

func (f LowercaseFilter) Filter(s morphology.Stream) morphology.Stream {
	return &mapStream{
		Stream: s,
		mapper: func(m morphology.Morpheme) morphology.Morpheme {
			m.Surface = strings.ToLower(m.Surface)
			return m
		},
	}
}

type acceptStream struct {
	morphology.Stream
	accept func(morphology.Morpheme) bool
}

func (s *acceptStream) Next() bool {
	for s.Stream.Next() {
		if s.accept(s.Stream.Morpheme()) {
			return true
		}
	}
	return false
}

type mapStream struct {
	morphology.Stream
	mapper func(morphology.Morpheme) morphology.Morpheme
}

func (s *mapStream) Morpheme() morphology.Morpheme {
	return s.mapper(s.Stream.Morpheme())
}
