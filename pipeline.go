package nori

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Pipeline tokenizes and prints input one line at a time. A line is fully
// written and flushed before the next one is read.
type Pipeline struct {
	tokenizer   *Tokenizer
	formatter   Formatter
	out         *bufio.Writer
	logger      *zap.Logger
	interactive bool
}

type PipelineOption func(*Pipeline)

func WithLogger(logger *zap.Logger) PipelineOption {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// Interactive keeps the run going after a line fails to tokenize. The failed
// line is logged and printed as an empty result.
func Interactive(interactive bool) PipelineOption {
	return func(p *Pipeline) {
		p.interactive = interactive
	}
}

func NewPipeline(tokenizer *Tokenizer, formatter Formatter, out io.Writer, options ...PipelineOption) *Pipeline {
	p := &Pipeline{
		tokenizer: tokenizer,
		formatter: formatter,
		out:       bufio.NewWriter(out),
		logger:    zap.NewNop(),
	}
	for _, option := range options {
		option(p)
	}
	return p
}

func (p *Pipeline) Run(src *LineSource) error {
	lineNo := 0
	for src.Next() {
		lineNo++
		text := src.Text()
		ts, err := p.tokenizer.Tokenize(text)
		if err != nil {
			if !p.interactive {
				return errors.Wrapf(err, "%s:%d", src.Name(), lineNo)
			}
			p.logger.Error("tokenize failed", zap.String("source", src.Name()), zap.Int("line", lineNo), zap.Error(err))
			// 失敗した行も空の結果として出力し、入力と出力の行を揃える
			ts = NewTokenStream([]Token{})
		} else {
			p.logger.Debug("tokenized", zap.Int("line", lineNo), zap.Int("tokens", ts.Size()))
		}

		if err := p.formatter.Format(p.out, ts); err != nil {
			return err
		}
		if err := p.out.Flush(); err != nil {
			return errors.Wrap(err, "flush output")
		}
	}
	return src.Err()
}
