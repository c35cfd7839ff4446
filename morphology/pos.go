package morphology

import "strings"

const (
	TagUnknown      = "UNA" // 未知語
	TagUnanalyzable = "NA"  // 解析不能
)

// mecab-ko-dicの品詞タグのうち、そのまま出力するもの
var knownTags = map[string]struct{}{
	"E": {}, "IC": {}, "J": {}, "MAG": {}, "MAJ": {}, "MM": {},
	"NNG": {}, "NNP": {}, "NNB": {}, "NNBC": {}, "NP": {}, "NR": {},
	"SF": {}, "SH": {}, "SL": {}, "SN": {}, "SP": {}, "SSC": {}, "SSO": {},
	"SC": {}, "SY": {}, "SE": {},
	"VA": {}, "VCN": {}, "VCP": {}, "VV": {}, "VX": {},
	"XPN": {}, "XR": {}, "XSA": {}, "XSN": {}, "XSV": {},
	"UNA": {}, "NA": {}, "VSV": {},
}

// ResolveTag maps a dictionary POS name onto the tag set reported to users.
// Every particle (J*) collapses to J and every ending (E*) to E.
func ResolveTag(name string) string {
	tag := strings.ToUpper(strings.TrimSpace(name))
	switch {
	case strings.HasPrefix(tag, "J"):
		return "J"
	case strings.HasPrefix(tag, "E"):
		return "E"
	}
	if _, ok := knownTags[tag]; ok {
		return tag
	}
	return TagUnknown
}

type TagSet map[string]struct{}

func NewTagSet(tags ...string) TagSet {
	s := make(TagSet, len(tags))
	for _, t := range tags {
		s[t] = struct{}{}
	}
	return s
}

func (s TagSet) Contains(tag string) bool {
	_, ok := s[tag]
	return ok
}

// DefaultStopTags drops morphemes the engine could not classify.
func DefaultStopTags() TagSet {
	return NewTagSet(TagUnknown, TagUnanalyzable)
}
