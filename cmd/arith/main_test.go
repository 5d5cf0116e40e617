package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/longbridgeapp/assert"

	"github.com/hyp3rd/arith/internal/libs/serializer"
)

// untouchedReader fails the test if anything reads from it.
type untouchedReader struct {
	t *testing.T
}

func (r untouchedReader) Read([]byte) (int, error) {
	r.t.Fatal("stdin must not be read")

	return 0, nil
}

func execute(args []string, stdin string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer

	code = run(args, strings.NewReader(stdin), &out, &errOut)

	return code, out.String(), errOut.String()
}

func TestRun_Scenarios(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		stdin          string
		expectedCode   int
		expectedStdout string
		expectedStderr string
	}{
		{
			name:           "all statistics of one to four",
			args:           []string{"all"},
			stdin:          "1\n2\n3\n4\n",
			expectedCode:   exitOK,
			expectedStdout: "sum: 10\nmean: 2.5\nmedian: 2.5\nsd: 1.118033988749894848\n",
		},
		{
			name:           "default selection",
			args:           []string{},
			stdin:          "1\n2\n3\n4\n",
			expectedCode:   exitOK,
			expectedStdout: "sum: 10\nmean: 2.5\nmedian: 2.5\nsd: 1.118033988749894848\n",
		},
		{
			name:           "single median",
			args:           []string{"median"},
			stdin:          "5\n",
			expectedCode:   exitOK,
			expectedStdout: "median: 5\n",
		},
		{
			name:           "fixed output order",
			args:           []string{"sd,sum"},
			stdin:          "2\n2\n",
			expectedCode:   exitOK,
			expectedStdout: "sum: 4\nsd: 0\n",
		},
		{
			name:           "rejected lines are reported and skipped",
			args:           []string{"sum,mean"},
			stdin:          "1\nfoo bar\n2\n",
			expectedCode:   exitOK,
			expectedStdout: "sum: 3\nmean: 1.5\n",
			expectedStderr: "invalid number: foo bar\n",
		},
		{
			name:           "no usable values",
			args:           []string{"all"},
			stdin:          "abc\n",
			expectedCode:   exitFailure,
			expectedStderr: "invalid number: abc\n",
		},
		{
			name:           "literal forms outside C syntax are rejected",
			args:           []string{"sum"},
			stdin:          "1_000\n0b11\n0o17\n2\n",
			expectedCode:   exitOK,
			expectedStdout: "sum: 2\n",
			expectedStderr: "invalid number: 1_000\ninvalid number: 0b11\ninvalid number: 0o17\n",
		},
		{
			name:           "magnitude beyond the extended range is rejected",
			args:           []string{"sum"},
			stdin:          "1e20000000\n3\n",
			expectedCode:   exitOK,
			expectedStdout: "sum: 3\n",
			expectedStderr: "invalid number: 1e20000000\n",
		},
		{
			name:         "too many arguments",
			args:         []string{"sum", "mean"},
			stdin:        "1\n",
			expectedCode: exitFailure,
		},
		{
			name:           "fewer digits",
			args:           []string{"--digits", "3", "mean"},
			stdin:          "1\n2\n2\n",
			expectedCode:   exitOK,
			expectedStdout: "mean: 1.667\n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			code, stdout, stderr := execute(test.args, test.stdin)
			assert.Equal(t, test.expectedCode, code)
			assert.Equal(t, test.expectedStdout, stdout)

			assert.True(t, strings.HasPrefix(stderr, test.expectedStderr))
		})
	}
}

func TestRun_FailsFastWithoutReadingStdin(t *testing.T) {
	for _, args := range [][]string{
		{"bogus"},
		{"sum,,mean"},
		{"--format", "yaml", "sum"},
		{"--digits", "-1", "sum"},
		{"--precision", "0", "sum"},
	} {
		var out, errOut bytes.Buffer

		code := run(args, untouchedReader{t: t}, &out, &errOut)
		assert.Equal(t, exitFailure, code)
		assert.Equal(t, "", out.String())
		assert.True(t, errOut.Len() > 0)
	}
}

func TestRun_Help(t *testing.T) {
	for _, flag := range []string{"-h", "--help"} {
		var out, errOut bytes.Buffer

		code := run([]string{flag}, untouchedReader{t: t}, &out, &errOut)
		assert.Equal(t, exitOK, code)
		assert.Equal(t, "", out.String())
		assert.True(t, strings.HasPrefix(errOut.String(), "usage: arith (FUNC[,FUNC]*|all)\n"))
		assert.True(t, strings.Contains(errOut.String(), "supported functions:\n    sum, mean, median, sd\n"))
		assert.True(t, strings.Contains(errOut.String(), "--format"))
	}
}

func TestRun_JSONFormat(t *testing.T) {
	code, stdout, _ := execute([]string{"--format", "json", "sum,median"}, "3\nx\n1\n2\n")
	assert.Equal(t, exitOK, code)

	var doc serializer.Document

	assert.Nil(t, json.Unmarshal([]byte(stdout), &doc))
	assert.Equal(t, serializer.Document{
		Count:    3,
		Rejected: 1,
		Statistics: []serializer.Statistic{
			{Name: "sum", Value: "6"},
			{Name: "median", Value: "2"},
		},
	}, doc)
}

func TestRun_EnvironmentOverride(t *testing.T) {
	t.Setenv("ARITH_FORMAT", "json")
	t.Setenv("ARITH_DIGITS", "1")

	code, stdout, _ := execute([]string{"mean"}, "1\n2\n2\n")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, `{"count":3,"rejected":0,"statistics":[{"name":"mean","value":"1.7"}]}`+"\n", stdout)

	// an explicit flag wins over the environment
	code, stdout, _ = execute([]string{"--format", "text", "mean"}, "1\n2\n2\n")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "mean: 1.7\n", stdout)
}

func TestRun_InvalidEnvironmentOverride(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{key: "ARITH_DIGITS", value: "abc"},
		{key: "ARITH_PRECISION", value: "lots"},
		{key: "ARITH_VERBOSE", value: "maybe"},
	}

	for _, test := range tests {
		t.Run(test.key, func(t *testing.T) {
			t.Setenv(test.key, test.value)

			var out, errOut bytes.Buffer

			code := run([]string{"sum"}, untouchedReader{t: t}, &out, &errOut)
			assert.Equal(t, exitFailure, code)
			assert.Equal(t, "", out.String())
			assert.True(t, errOut.Len() > 0)
		})
	}
}

func TestRun_Verbose(t *testing.T) {
	code, stdout, stderr := execute([]string{"-v", "sum"}, "1\n")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "sum: 1\n", stdout)
	assert.True(t, strings.Contains(stderr, "configured"))
	assert.True(t, strings.Contains(stderr, "summarized 1 values, 0 lines rejected component=engine"))
}
