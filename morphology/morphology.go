package morphology

//go:generate mockgen -source=morphology.go -destination=../mock_morphology_test.go -package=nori

// Morphology opens a single-pass stream of morphemes for one input text.
type Morphology interface {
	Open(text string) (Stream, error)
}

// Stream yields morphemes in emission order. Callers must Close it even when
// Next returned false because of an error.
type Stream interface {
	Next() bool
	Morpheme() Morpheme
	Err() error
	Close() error
}

type Morpheme struct {
	Surface  string
	LeftPOS  string
	RightPOS string
	Reading  string // 読みがない場合は空文字
}

func NewMorpheme(surface, pos, reading string) Morpheme {
	return Morpheme{
		Surface:  surface,
		LeftPOS:  pos,
		RightPOS: pos,
		Reading:  reading,
	}
}
