package serializer

import (
	"github.com/shamaton/msgpack/v2"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/arith/pkg/stats"
)

// MsgpackSerializer leverages `msgpack` to encode the report document.
type MsgpackSerializer struct {
	Digits int
}

// Marshal encodes the report document as MessagePack.
func (s *MsgpackSerializer) Marshal(report *stats.Report) ([]byte, error) {
	data, err := msgpack.Marshal(NewDocument(report, s.Digits))
	if err != nil {
		return nil, ewrap.Wrap(err, "failed to marshal msgpack")
	}

	return data, nil
}
