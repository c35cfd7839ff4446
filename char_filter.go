package nori

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/unicode/norm"
)

const charMappingSep = "="

type CharFilter interface {
	Filter(string) string
}

// MappingCharFilter replaces every occurrence of a key with its value in a
// single left-to-right pass. Where keys overlap at the same position the
// longest key wins.
type MappingCharFilter struct {
	replacer *strings.Replacer
}

func NewMappingCharFilter(mapper map[string]string) *MappingCharFilter {
	keys := make([]string, 0, len(mapper))
	for k := range mapper {
		if k != "" {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	oldnew := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		oldnew = append(oldnew, k, mapper[k])
	}
	return &MappingCharFilter{replacer: strings.NewReplacer(oldnew...)}
}

func (c *MappingCharFilter) Filter(s string) string {
	return c.replacer.Replace(s)
}

// ParseCharMappings reads "from=to" pairs. An empty "to" deletes "from".
func ParseCharMappings(entries []string) (map[string]string, error) {
	mapper := make(map[string]string, len(entries))
	for _, e := range entries {
		from, to, ok := strings.Cut(e, charMappingSep)
		if !ok || from == "" {
			return nil, errors.Errorf("unexpected char mapping: %s", e)
		}
		mapper[from] = to
	}
	return mapper, nil
}

// NFCCharFilter composes decomposed jamo sequences (as produced by macOS file
// names, for example) into precomposed syllables.
type NFCCharFilter struct{}

func NewNFCCharFilter() NFCCharFilter {
	return NFCCharFilter{}
}

func (c NFCCharFilter) Filter(s string) string {
	return norm.NFC.String(s)
}
