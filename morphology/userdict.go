package morphology

import (
	"bufio"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/ikawaha/kagome-dict/dict"
	"github.com/pkg/errors"
)

const (
	userDictPOS   = "NNG"
	commentPrefix = "#"
)

// ParseUserDictionary reads user dictionary entries, one per line:
//
//	# comment
//	세종
//	세종시 세종 시 # trailing comment
//
// Everything after a "#" is ignored. The first field is the surface; the remaining fields, when present, are its
// segmentation and must concatenate back to the surface.
func ParseUserDictionary(r io.Reader) (dict.UserDictRecords, error) {
	records := dict.UserDictRecords{}
	seen := make(map[string]struct{})

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.Index(line, commentPrefix); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		surface := fields[0]
		segments := fields[1:]
		if len(segments) == 0 {
			segments = []string{surface}
		}
		if joined := strings.Join(segments, ""); joined != surface {
			return nil, errors.Errorf("illegal user dictionary entry at line %d %q: the segmentation must match the surface", lineNo, line)
		}
		// 同じ表層形は最初のエントリを優先する
		if _, ok := seen[surface]; ok {
			continue
		}
		seen[surface] = struct{}{}
		records = append(records, dict.UserDicRecord{
			Text:   surface,
			Tokens: segments,
			Yomi:   segments,
			Pos:    userDictPOS,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read user dictionary")
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Text < records[j].Text
	})
	return records, nil
}

func LoadUserDictionary(path string) (*dict.UserDict, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open user dictionary %s", path)
	}
	defer f.Close()

	records, err := ParseUserDictionary(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parse user dictionary %s", path)
	}
	udict, err := records.NewUserDict()
	if err != nil {
		return nil, errors.Wrapf(err, "build user dictionary %s", path)
	}
	return udict, nil
}
