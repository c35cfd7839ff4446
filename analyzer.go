package nori

import (
	"github.com/kotaroooo0/nori/morphology"
	"github.com/pkg/errors"
)

// Config holds everything needed to build the analyzer for one run.
type Config struct {
	Mode           morphology.DecompoundMode
	StopTags       morphology.TagSet
	UserDictionary string // 空ならユーザー辞書を使わない
	NormalizeNFC   bool
	CharMappings   map[string]string // NFCの後に適用する
}

func NewConfig() Config {
	return Config{
		Mode:     morphology.DecompoundDiscard,
		StopTags: morphology.DefaultStopTags(),
	}
}

// Analyzer chains char filters, the morphological engine and token filters.
// It is itself a morphology.Morphology, so a Tokenizer can drive it directly.
type Analyzer struct {
	charFilters  []CharFilter
	morphology   morphology.Morphology
	tokenFilters []TokenFilter
}

func NewAnalyzer(charFilters []CharFilter, morphology morphology.Morphology, tokenFilters []TokenFilter) *Analyzer {
	return &Analyzer{
		charFilters:  charFilters,
		morphology:   morphology,
		tokenFilters: tokenFilters,
	}
}

// NewKoreanAnalyzer builds the engine once from cfg. A broken user dictionary
// fails here, before any text is tokenized.
func NewKoreanAnalyzer(cfg Config) (*Analyzer, error) {
	options := []morphology.Option{morphology.WithDecompoundMode(cfg.Mode)}
	if cfg.UserDictionary != "" {
		udict, err := morphology.LoadUserDictionary(cfg.UserDictionary)
		if err != nil {
			return nil, err
		}
		options = append(options, morphology.WithUserDictionary(udict))
	}
	kagome, err := morphology.NewKagome(options...)
	if err != nil {
		return nil, errors.Wrap(err, "build korean analyzer")
	}

	charFilters := []CharFilter{}
	if cfg.NormalizeNFC {
		charFilters = append(charFilters, NewNFCCharFilter())
	}
	if len(cfg.CharMappings) > 0 {
		charFilters = append(charFilters, NewMappingCharFilter(cfg.CharMappings))
	}
	stopTags := cfg.StopTags
	if stopTags == nil {
		stopTags = morphology.DefaultStopTags()
	}
	return NewAnalyzer(
		charFilters,
		kagome,
		[]TokenFilter{
			NewStopTagFilter(stopTags),
			NewReadingformFilter(),
			NewLowercaseFilter(),
		},
	), nil
}

func (a *Analyzer) Open(s string) (morphology.Stream, error) {
	for _, c := range a.charFilters {
		s = c.Filter(s)
	}
	stream, err := a.morphology.Open(s)
	if err != nil {
		return nil, err
	}
	for _, f := range a.tokenFilters {
		stream = f.Filter(stream)
	}
	return stream, nil
}
