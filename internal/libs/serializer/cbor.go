package serializer

import (
	"github.com/ugorji/go/codec"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/arith/pkg/stats"
)

// cborHandle is shared; handles are safe for concurrent use once configured.
//
//nolint:gochecknoglobals
var cborHandle = &codec.CborHandle{}

// CBORSerializer leverages ugorji/go/codec to encode the report document as CBOR.
type CBORSerializer struct {
	Digits int
}

// Marshal encodes the report document as CBOR.
func (s *CBORSerializer) Marshal(report *stats.Report) ([]byte, error) {
	var data []byte

	err := codec.NewEncoderBytes(&data, cborHandle).Encode(NewDocument(report, s.Digits))
	if err != nil {
		return nil, ewrap.Wrap(err, "failed to marshal cbor")
	}

	return data, nil
}
