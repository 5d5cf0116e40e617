// Command arith reads numeric values on stdin, one per line, and prints basic
// statistics about them.
//
//	usage: arith (FUNC[,FUNC]*|all)
//
// Supported functions are sum, mean, median and sd (population standard deviation).
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hyp3rd/ewrap"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/hyp3rd/arith"
	"github.com/hyp3rd/arith/internal/constants"
	"github.com/hyp3rd/arith/internal/libs/serializer"
	"github.com/hyp3rd/arith/internal/logging"
	"github.com/hyp3rd/arith/internal/sentinel"
	"github.com/hyp3rd/arith/pkg/middleware"
	"github.com/hyp3rd/arith/pkg/selection"
)

const (
	exitOK      = 0
	exitFailure = 1

	instrumentationName = "github.com/hyp3rd/arith"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdin, stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err != nil {
		logging.New(stderr, false).Error(err)

		return exitFailure
	}

	return exitOK
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:           "arith (FUNC[,FUNC]*|all)",
		Short:         "Print basic statistics about numeric values read on stdin",
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			return summarize(v, args, stdin, stdout, stderr)
		},
	}

	defineFlags(cmd.Flags())

	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		fmt.Fprintf(stderr, "usage: %s\n", c.Use)
		fmt.Fprintf(stderr, "\nsupported functions:\n")
		fmt.Fprintf(stderr, "    %s\n", strings.Join(selection.Names(), ", "))
		fmt.Fprintf(stderr, "\nflags (or %s_<FLAG> environment variables):\n%s", constants.EnvPrefix, c.Flags().FlagUsages())
	})

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	_ = v.BindPFlags(cmd.Flags())

	return cmd
}

func defineFlags(flags *pflag.FlagSet) {
	flags.StringP("format", "f", constants.TextFormat, "Output format: text, json, msgpack or cbor")
	flags.Int("digits", constants.DefaultDigits, "Fractional digits printed before trailing zeros are trimmed")
	flags.Int("precision", int(constants.DefaultPrecision), "Mantissa bits used to hold and accumulate values")
	flags.BoolP("verbose", "v", false, "Print debug information on stderr")
}

// summarize validates the whole configuration before the first byte of stdin is
// read, then runs the engine and writes the encoded report in a single write.
func summarize(v *viper.Viper, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := loadSettings(v)
	if err != nil {
		return err
	}

	logger := logging.New(stderr, cfg.verbose)

	set := selection.Default()
	if len(args) == 1 {
		parsed, err := selection.Parse(args[0])
		if err != nil {
			return err
		}

		set = parsed
	}

	encoder, err := serializer.New(cfg.format, cfg.digits)
	if err != nil {
		return err
	}

	engine, err := arith.NewEngine(
		arith.WithSelection(set),
		arith.WithPrecision(uint(max(cfg.precision, 0))),
		arith.WithRejectHandler(func(line string, _ error) {
			logger.Warnf("invalid number: %s", line)
		}),
	)
	if err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"selection": set.String(),
		"format":    cfg.format,
		"digits":    cfg.digits,
		"precision": engine.Precision(),
	}).Debug("configured")

	svc, err := newService(engine, logger)
	if err != nil {
		return err
	}

	report, err := svc.Summarize(context.Background(), stdin)
	if err != nil {
		return err
	}

	data, err := encoder.Marshal(report)
	if err != nil {
		return err
	}

	_, err = stdout.Write(data)

	return err
}

type settings struct {
	format    string
	digits    int
	precision int
	verbose   bool
}

// loadSettings reads the flags, with their ARITH_* overrides, and rejects values
// that do not convert to the flag's type instead of falling back to zero.
func loadSettings(v *viper.Viper) (settings, error) {
	var (
		s   settings
		err error
	)

	s.format, err = cast.ToStringE(v.Get("format"))
	if err != nil {
		return s, ewrap.Wrapf(sentinel.ErrInvalidSetting, "format: %v", err)
	}

	s.digits, err = cast.ToIntE(v.Get("digits"))
	if err != nil {
		return s, ewrap.Wrapf(sentinel.ErrInvalidDigits, "%v", err)
	}

	s.precision, err = cast.ToIntE(v.Get("precision"))
	if err != nil {
		return s, ewrap.Wrapf(sentinel.ErrInvalidPrecision, "%v", err)
	}

	s.verbose, err = cast.ToBoolE(v.Get("verbose"))
	if err != nil {
		return s, ewrap.Wrapf(sentinel.ErrInvalidSetting, "verbose: %v", err)
	}

	return s, nil
}

// newService decorates the engine with logging, tracing and metrics. Telemetry goes
// to the global OpenTelemetry providers, which are no-ops unless an SDK is installed.
func newService(engine *arith.Engine, logger *logrus.Logger) (arith.Service, error) {
	metered, err := middleware.NewOTelMetricsMiddleware(engine, otel.Meter(instrumentationName))
	if err != nil {
		return nil, err
	}

	return arith.ApplyMiddleware(metered,
		func(next arith.Service) arith.Service {
			return middleware.NewOTelTracingMiddleware(next, otel.Tracer(instrumentationName),
				middleware.WithCommonAttributes(attribute.String("service.name", constants.ServiceName)))
		},
		func(next arith.Service) arith.Service {
			return middleware.NewLoggingMiddleware(next, logger.WithField("component", "engine"))
		},
	), nil
}
