// Package logging builds the logrus logger the CLI writes diagnostics with.
package logging

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/sirupsen/logrus"
)

// PlainFormatter prints the bare message so diagnostics keep a stable, greppable
// shape. Structured fields, when present, follow as sorted key=value pairs.
type PlainFormatter struct{}

// Format renders a single entry.
func (*PlainFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(&buf, " %s=%v", k, entry.Data[k])
	}

	buf.WriteByte('\n')

	return buf.Bytes(), nil
}

// New returns a logger writing to out. Warnings and errors are always printed;
// verbose enables debug output.
func New(out io.Writer, verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&PlainFormatter{})
	logger.SetLevel(logrus.WarnLevel)

	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	return logger
}
