package morphology

import (
	"strings"
	"unicode"

	ko "github.com/ikawaha/kagome-dict-ko"
	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome/v2/tokenizer"
	"github.com/pkg/errors"
)

// mecab-ko-dicの素性の並び
const (
	featurePOS = iota
	featureSemanticClass
	featureJongseong
	featureReading
	featureType
	featureLeftPOS
	featureRightPOS
	featureExpression
)

const (
	noValue           = "*"
	expressionSep     = "+"
	expressionPartSep = "/"
	userTokenSep      = "/"

	typeInflect     = "Inflect"
	typePreanalysis = "Preanalysis"
)

// github.com/ikawaha/kagomeに直接依存しないようにラップする
type Kagome struct {
	kagome   *tokenizer.Tokenizer
	mode     DecompoundMode
	userDict *dict.UserDict
}

type Option func(*Kagome)

func WithDecompoundMode(mode DecompoundMode) Option {
	return func(k *Kagome) {
		k.mode = mode
	}
}

func WithUserDictionary(udict *dict.UserDict) Option {
	return func(k *Kagome) {
		k.userDict = udict
	}
}

func NewKagome(options ...Option) (*Kagome, error) {
	k := &Kagome{mode: DecompoundDiscard}
	for _, option := range options {
		option(k)
	}

	opts := []tokenizer.Option{tokenizer.OmitBosEos()}
	if k.userDict != nil {
		opts = append(opts, tokenizer.UserDict(k.userDict))
	}
	t, err := tokenizer.New(ko.Dict(), opts...)
	if err != nil {
		return nil, errors.Wrap(err, "initialize kagome tokenizer")
	}
	k.kagome = t
	return k, nil
}

func (k *Kagome) Mode() DecompoundMode { return k.mode }

func (k *Kagome) Open(text string) (Stream, error) {
	return &kagomeStream{
		tokens: k.kagome.Analyze(text, tokenizer.Normal),
		mode:   k.mode,
	}, nil
}

// kagomeStream expands dictionary tokens into morphemes one token at a time.
type kagomeStream struct {
	tokens  []tokenizer.Token
	mode    DecompoundMode
	pending []Morpheme
	current Morpheme
	closed  bool
}

func (s *kagomeStream) Next() bool {
	if s.closed {
		return false
	}
	for len(s.pending) == 0 {
		if len(s.tokens) == 0 {
			return false
		}
		t := s.tokens[0]
		s.tokens = s.tokens[1:]
		if t.Class == tokenizer.DUMMY {
			continue
		}
		s.pending = expandEntry(t.Surface, t.Class == tokenizer.USER, t.Features(), s.mode)
	}
	s.current = s.pending[0]
	s.pending = s.pending[1:]
	return true
}

func (s *kagomeStream) Morpheme() Morpheme { return s.current }

func (s *kagomeStream) Err() error { return nil }

func (s *kagomeStream) Close() error {
	s.closed = true
	s.tokens = nil
	s.pending = nil
	return nil
}

// expandEntry turns one dictionary match into the morphemes emitted for it
// under the given decompound mode. Whitespace and punctuation are dropped.
func expandEntry(surface string, user bool, features []string, mode DecompoundMode) []Morpheme {
	if isPunctuation(surface) {
		return nil
	}
	if user {
		return expandUserEntry(surface, features, mode)
	}

	typ := feature(features, featureType)
	original := Morpheme{
		Surface: surface,
		Reading: reading(surface, feature(features, featureReading)),
	}
	// 活用形と既解析語だけが左右の品詞を別々に持つ
	if (typ == typeInflect || typ == typePreanalysis) && feature(features, featureLeftPOS) != noValue {
		original.LeftPOS = ResolveTag(feature(features, featureLeftPOS))
		original.RightPOS = ResolveTag(feature(features, featureRightPOS))
	} else {
		original.LeftPOS, original.RightPOS = splitPOS(feature(features, featurePOS))
	}
	if typ == noValue || mode == DecompoundNone {
		return []Morpheme{original}
	}

	parts := parseExpression(feature(features, featureExpression))
	if len(parts) == 0 {
		return []Morpheme{original}
	}
	if mode == DecompoundMixed {
		return append([]Morpheme{original}, parts...)
	}
	return parts
}

// isPunctuation reports whether every rune of s is a separator, control,
// punctuation or symbol character. The empty string counts.
func isPunctuation(s string) bool {
	for _, r := range s {
		switch {
		case unicode.IsSpace(r), unicode.IsControl(r), unicode.Is(unicode.Cf, r):
		case unicode.IsPunct(r), unicode.IsSymbol(r):
		default:
			return false
		}
	}
	return true
}

// ユーザー辞書の素性は [品詞, 分割(/区切り), 読み(/区切り)]
func expandUserEntry(surface string, features []string, mode DecompoundMode) []Morpheme {
	original := NewMorpheme(surface, userDictPOS, "")
	segments := strings.Split(feature(features, 1), userTokenSep)
	if len(segments) <= 1 || mode == DecompoundNone {
		return []Morpheme{original}
	}
	parts := make([]Morpheme, 0, len(segments)+1)
	if mode == DecompoundMixed {
		parts = append(parts, original)
	}
	for _, seg := range segments {
		parts = append(parts, NewMorpheme(seg, userDictPOS, ""))
	}
	return parts
}

// parseExpression reads "가락/NNG/*+지/NNG/*" style decompositions. A
// malformed expression yields nil.
func parseExpression(expr string) []Morpheme {
	if expr == "" || expr == noValue {
		return nil
	}
	entries := strings.Split(expr, expressionSep)
	parts := make([]Morpheme, 0, len(entries))
	for _, e := range entries {
		fields := strings.Split(e, expressionPartSep)
		if len(fields) < 2 || fields[0] == "" {
			return nil
		}
		parts = append(parts, NewMorpheme(fields[0], ResolveTag(fields[1]), ""))
	}
	return parts
}

func splitPOS(pos string) (left, right string) {
	tags := strings.Split(pos, expressionSep)
	return ResolveTag(tags[0]), ResolveTag(tags[len(tags)-1])
}

func reading(surface, r string) string {
	if r == "" || r == noValue || r == surface {
		return ""
	}
	return r
}

func feature(features []string, i int) string {
	if i < len(features) && features[i] != "" {
		return features[i]
	}
	return noValue
}
