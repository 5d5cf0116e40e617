package serializer

import (
	"github.com/hyp3rd/arith/pkg/format"
	"github.com/hyp3rd/arith/pkg/stats"
)

// Document is the structured form of a report shared by the binary and JSON encodings.
// Values are decimal strings so no precision is lost to a float64 round trip.
type Document struct {
	Count      int         `codec:"count"      json:"count"      msgpack:"count"`
	Rejected   int         `codec:"rejected"   json:"rejected"   msgpack:"rejected"`
	Statistics []Statistic `codec:"statistics" json:"statistics" msgpack:"statistics"`
}

// Statistic is a single named value, in report order.
type Statistic struct {
	Name  string `codec:"name"  json:"name"  msgpack:"name"`
	Value string `codec:"value" json:"value" msgpack:"value"`
}

// NewDocument converts report into a Document with values rendered at digits fractional digits.
func NewDocument(report *stats.Report, digits int) Document {
	doc := Document{
		Count:      report.Count,
		Rejected:   report.Rejected,
		Statistics: make([]Statistic, 0, len(report.Results)),
	}

	for _, res := range report.Results {
		doc.Statistics = append(doc.Statistics, Statistic{
			Name:  res.Kind.String(),
			Value: format.Decimal(res.Value, digits),
		})
	}

	return doc
}
