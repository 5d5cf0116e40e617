// Package parser turns a line-oriented text stream into a sequence of values.
// Every line must hold exactly one real number; lines that do not are reported
// through a callback and skipped, so a single bad line never aborts a run.
package parser

import (
	"bufio"
	"errors"
	"io"
	"math/big"
	"strings"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/arith/internal/sentinel"
	"github.com/hyp3rd/arith/pkg/values"
)

// RejectFunc is called with the original text of every rejected line, terminator stripped.
type RejectFunc func(line string, err error)

// Summary counts what happened to the lines of one stream.
type Summary struct {
	Lines    int // lines read, accepted or not
	Accepted int // lines appended to the sequence
	Rejected int // lines skipped
}

// Parser reads values one per line.
type Parser struct {
	prec     uint
	onReject RejectFunc
}

// New returns a parser holding values at prec bits of mantissa.
// onReject may be nil, in which case rejected lines are dropped silently.
func New(prec uint, onReject RejectFunc) *Parser {
	if onReject == nil {
		onReject = func(string, error) {}
	}

	return &Parser{prec: prec, onReject: onReject}
}

// Parse consumes r until EOF, appending every accepted value to seq.
// Only a read failure is returned as an error; rejected lines are counted and reported.
func (p *Parser) Parse(r io.Reader, seq *values.Sequence) (Summary, error) {
	var summary Summary

	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			summary.Lines++
			p.handle(stripTerminator(line), seq, &summary)
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				return summary, nil
			}

			return summary, ewrap.Wrapf(sentinel.ErrReadInput, "after %d lines: %v", summary.Lines, err)
		}
	}
}

func (p *Parser) handle(line string, seq *values.Sequence, summary *Summary) {
	v, err := ParseValue(line, p.prec)
	if err != nil {
		summary.Rejected++
		p.onReject(line, err)

		return
	}

	summary.Accepted++
	seq.Append(v)
}

// Exponent bounds of the x87 extended format, in big.Float.MantExp terms
// (mantissa in [0.5, 1)). Values above maxExp overflow to infinity and are
// rejected; values below minExp underflow to zero.
const (
	maxExp = 16384
	minExp = -16444
)

// ParseValue parses text as a single finite real number held at prec bits of mantissa.
// Surrounding whitespace is ignored. Decimal, scientific and hexadecimal
// (0x1p-2) literals are accepted; anything left over after the number, blank
// text, infinities, NaN and magnitudes beyond the extended range fail with
// sentinel.ErrInvalidNumber.
func ParseValue(text string, prec uint) (*big.Float, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ewrap.Wrap(sentinel.ErrInvalidNumber, "blank line")
	}

	if !isFloatLiteral(trimmed) {
		return nil, ewrap.Wrapf(sentinel.ErrInvalidNumber, "%q", text)
	}

	v, _, err := new(big.Float).SetPrec(prec).SetMode(big.ToNearestEven).Parse(trimmed, 0)
	if err != nil {
		return nil, ewrap.Wrapf(sentinel.ErrInvalidNumber, "%q", text)
	}

	if v.IsInf() || v.MantExp(nil) > maxExp {
		return nil, ewrap.Wrapf(sentinel.ErrInvalidNumber, "%q is not finite", text)
	}

	if v.Sign() != 0 && v.MantExp(nil) < minExp {
		return new(big.Float).SetPrec(prec), nil
	}

	return v, nil
}

// isFloatLiteral screens out the literal forms big.Float accepts beyond C floating
// literals: digit separators, binary and octal prefixes, and a 'p' exponent on a
// decimal mantissa.
func isFloatLiteral(s string) bool {
	if strings.ContainsRune(s, '_') {
		return false
	}

	body := strings.TrimLeft(s, "+-")
	if len(body) >= 2 && body[0] == '0' {
		switch body[1] {
		case 'x', 'X':
			return true
		case 'b', 'B', 'o', 'O':
			return false
		}
	}

	return !strings.ContainsAny(body, "pP")
}

func stripTerminator(line string) string {
	line = strings.TrimSuffix(line, "\n")

	return strings.TrimSuffix(line, "\r")
}
