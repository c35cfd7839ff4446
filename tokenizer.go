package nori

import (
	"github.com/kotaroooo0/nori/morphology"
	"github.com/pkg/errors"
)

// Tokenizer turns one line of text into a TokenStream using a configured
// morphological analyzer.
type Tokenizer struct {
	morphology morphology.Morphology
}

func NewTokenizer(morphology morphology.Morphology) *Tokenizer {
	return &Tokenizer{
		morphology: morphology,
	}
}

func (t *Tokenizer) Tokenize(text string) (ts TokenStream, err error) {
	stream, err := t.morphology.Open(text)
	if err != nil {
		return TokenStream{}, errors.Wrap(err, "open token stream")
	}
	// エラーで抜ける場合もストリームは必ず閉じる
	defer func() {
		if cerr := stream.Close(); cerr != nil && err == nil {
			ts, err = TokenStream{}, errors.Wrap(cerr, "close token stream")
		}
	}()

	tokens := make([]Token, 0)
	for stream.Next() {
		m := stream.Morpheme()
		tokens = append(tokens, NewToken(m.Surface, NewAttrs(m.RightPOS, m.Surface, m.Reading)))
	}
	if err := stream.Err(); err != nil {
		return TokenStream{}, errors.Wrap(err, "read token stream")
	}
	return NewTokenStream(tokens), nil
}
