package serializer

import (
	"github.com/goccy/go-json"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/arith/pkg/stats"
)

// JSONSerializer leverages goccy/go-json to encode the report document.
type JSONSerializer struct {
	Digits int
}

// Marshal encodes the report as a single JSON object followed by a newline.
func (s *JSONSerializer) Marshal(report *stats.Report) ([]byte, error) {
	data, err := json.Marshal(NewDocument(report, s.Digits))
	if err != nil {
		return nil, ewrap.Wrap(err, "failed to marshal json")
	}

	return append(data, '\n'), nil
}
