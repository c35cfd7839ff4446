package nori

// 属性の列数。MeCabの出力形式に合わせている
const AttrsSize = 8

const (
	attrPOS     = 0
	attrSurface = 3
	attrReading = 7
)

// Placeholder fills attribute slots that carry no value.
const Placeholder = "*"

// Attrs is the fixed MeCab-style attribute row of a token:
// [POS, *, *, surface, *, *, *, reading].
type Attrs [AttrsSize]string

func NewAttrs(pos, surface, reading string) Attrs {
	var attrs Attrs
	attrs[attrPOS] = pos
	for i := attrPOS + 1; i < attrSurface; i++ {
		attrs[i] = Placeholder
	}
	attrs[attrSurface] = surface
	for i := attrSurface + 1; i < attrReading; i++ {
		attrs[i] = Placeholder
	}
	if reading == "" {
		reading = Placeholder
	}
	attrs[attrReading] = reading
	return attrs
}

func (a Attrs) POS() string     { return a[attrPOS] }
func (a Attrs) Surface() string { return a[attrSurface] }
func (a Attrs) Reading() string { return a[attrReading] }

type Token struct {
	Surface string `json:"surface"`
	Attrs   Attrs  `json:"attrs"`
}

func NewToken(surface string, attrs Attrs) Token {
	return Token{
		Surface: surface,
		Attrs:   attrs,
	}
}

type TokenStream struct {
	Tokens []Token
}

func NewTokenStream(tokens []Token) TokenStream {
	return TokenStream{
		Tokens: tokens,
	}
}

func (ts TokenStream) Size() int {
	return len(ts.Tokens)
}

func (ts TokenStream) Surfaces() []string {
	surfaces := make([]string, ts.Size())
	for i, t := range ts.Tokens {
		surfaces[i] = t.Surface
	}
	return surfaces
}
