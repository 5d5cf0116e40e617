package serializer

import (
	"bytes"

	"github.com/hyp3rd/arith/pkg/format"
	"github.com/hyp3rd/arith/pkg/stats"
)

// TextSerializer prints one `name: value` line per statistic.
type TextSerializer struct {
	Digits int
}

// Marshal renders the report as text lines.
func (s *TextSerializer) Marshal(report *stats.Report) ([]byte, error) {
	var buf bytes.Buffer

	for _, res := range report.Results {
		buf.WriteString(res.Kind.String())
		buf.WriteString(": ")
		buf.WriteString(format.Decimal(res.Value, s.Digits))
		buf.WriteByte('\n')
	}

	return buf.Bytes(), nil
}
