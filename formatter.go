package nori

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// EOS terminates the tagged-line output of one input line.
const EOS = "EOS"

type OutputFormat int

const (
	Mecab OutputFormat = iota
	JSON
)

func ParseOutputFormat(s string) (OutputFormat, error) {
	switch s {
	case "mecab":
		return Mecab, nil
	case "json":
		return JSON, nil
	}
	return Mecab, errors.Errorf("unexpected output format: %s", s)
}

func (f OutputFormat) String() string {
	if f == JSON {
		return "json"
	}
	return "mecab"
}

// Set implements pflag.Value.
func (f *OutputFormat) Set(s string) error {
	format, err := ParseOutputFormat(s)
	if err != nil {
		return err
	}
	*f = format
	return nil
}

func (f *OutputFormat) Type() string { return "format" }

// Formatter writes the tokens of one input line.
type Formatter interface {
	Format(io.Writer, TokenStream) error
}

func NewFormatter(format OutputFormat) Formatter {
	if format == JSON {
		return NewJSONFormatter()
	}
	return NewMecabFormatter()
}

type MecabFormatter struct{}

func NewMecabFormatter() MecabFormatter {
	return MecabFormatter{}
}

func (f MecabFormatter) Format(w io.Writer, ts TokenStream) error {
	for _, token := range ts.Tokens {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", token.Surface, strings.Join(token.Attrs[:], ",")); err != nil {
			return errors.Wrap(err, "write token")
		}
	}
	if _, err := fmt.Fprintln(w, EOS); err != nil {
		return errors.Wrap(err, "write EOS")
	}
	return nil
}

type JSONFormatter struct {
	marshal func(interface{}) ([]byte, error)
}

func NewJSONFormatter() JSONFormatter {
	return JSONFormatter{marshal: marshalJSON}
}

// Format writes the whole stream as one JSON array line. A marshal failure is
// written in place of the array and is not returned.
func (f JSONFormatter) Format(w io.Writer, ts TokenStream) error {
	tokens := ts.Tokens
	if tokens == nil {
		tokens = []Token{}
	}
	marshal := f.marshal
	if marshal == nil {
		marshal = marshalJSON
	}

	b, err := marshal(tokens)
	if err != nil {
		b = []byte(err.Error())
	}
	if _, err := fmt.Fprintf(w, "%s\n", b); err != nil {
		return errors.Wrap(err, "write json")
	}
	return nil
}

// 表層形をそのまま出力するためHTMLエスケープはしない
func marshalJSON(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
