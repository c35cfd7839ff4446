package morphology

import "github.com/pkg/errors"

// DecompoundMode decides what happens to compound dictionary entries.
type DecompoundMode int

const (
	DecompoundDiscard DecompoundMode = iota // 分解して元の複合語は捨てる
	DecompoundNone                          // 分解しない
	DecompoundMixed                         // 元の複合語と分解結果の両方を出力する
)

func ParseDecompoundMode(s string) (DecompoundMode, error) {
	switch s {
	case "none":
		return DecompoundNone, nil
	case "discard":
		return DecompoundDiscard, nil
	case "mixed":
		return DecompoundMixed, nil
	}
	return DecompoundDiscard, errors.Errorf("unexpected tokenization mode: %s", s)
}

func (m DecompoundMode) String() string {
	switch m {
	case DecompoundNone:
		return "none"
	case DecompoundMixed:
		return "mixed"
	default:
		return "discard"
	}
}

// Set implements pflag.Value.
func (m *DecompoundMode) Set(s string) error {
	mode, err := ParseDecompoundMode(s)
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

func (m *DecompoundMode) Type() string { return "mode" }
