package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/operator-framework/label-synthesizer/pkg/example"
	"github.com/operator-framework/label-synthesizer/pkg/lib/signals"
	"github.com/operator-framework/label-synthesizer/pkg/metrics"
	"github.com/operator-framework/label-synthesizer/pkg/synthesis"
	"github.com/operator-framework/label-synthesizer/pkg/synthesis/solver"
	"github.com/operator-framework/label-synthesizer/pkg/version"
)

type options struct {
	corpus      string
	output      string
	metricsFile string

	color       bool
	placement   bool
	containment bool

	maxDepth   int
	maxClauses int
	candidates int
	workers    int
	timeout    time.Duration

	verify  bool
	trace   bool
	debug   bool
	version bool
}

func newRootCmd() *cobra.Command {
	o := options{}

	cmd := &cobra.Command{
		Use:          "synthesizer",
		Short:        "Synthesizes labeling programs from annotated images",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.version {
				fmt.Print(version.String())
				return nil
			}

			if err := o.validate(); err != nil {
				return err
			}

			logger := logrus.New()
			if o.debug {
				logger.SetLevel(logrus.DebugLevel)
			}
			logger.Infof("log level %s", logger.Level)

			ctx, cancel := signals.Context(context.Background(), logger)
			defer cancel()

			return o.run(ctx, logger, cmd.OutOrStdout())
		},
	}

	o.addFlags(cmd.Flags())

	return cmd
}

func (o *options) addFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.corpus, "corpus", "", "path to the YAML corpus of annotated images")
	fs.StringVarP(&o.output, "output", "o", "", "path to write the synthesized programs to, stdout if empty")
	fs.StringVar(&o.metricsFile, "metrics-file", "", "path to write search metrics to in the Prometheus text format")

	fs.BoolVar(&o.color, "color", false, "allow average color comparisons")
	fs.BoolVar(&o.placement, "placement", false, "allow relative placement comparisons")
	fs.BoolVar(&o.containment, "containment", false, "allow overlap and containment thresholds")

	fs.IntVar(&o.maxDepth, "max-depth", synthesis.DefaultMaxDepth, "deepest quantifier nesting to try")
	fs.IntVar(&o.maxClauses, "max-clauses", synthesis.DefaultMaxClauses, "largest number of clauses per level to try")
	fs.IntVar(&o.candidates, "candidates", synthesis.DefaultMaxCandidates, "maximum number of candidates per label")
	fs.IntVar(&o.workers, "workers", synthesis.DefaultWorkers, "number of labels searched concurrently")
	fs.DurationVar(&o.timeout, "timeout", 0, "time limit for each search, 0 is considered as having no timeout")

	fs.BoolVar(&o.verify, "verify", false, "re-evaluate every candidate against the corpus before writing it")
	fs.BoolVar(&o.trace, "trace", false, "write every optimizer step to stderr")
	fs.BoolVar(&o.debug, "debug", false, "use debug log level")
	fs.BoolVar(&o.version, "version", false, "displays the synthesizer version")
}

func (o *options) validate() error {
	if o.corpus == "" {
		return fmt.Errorf("--corpus is required")
	}
	if o.maxDepth < synthesis.DefaultInitialDepth {
		return fmt.Errorf("--max-depth must be at least %d", synthesis.DefaultInitialDepth)
	}
	if o.maxClauses < synthesis.DefaultInitialClauses {
		return fmt.Errorf("--max-clauses must be at least %d", synthesis.DefaultInitialClauses)
	}
	return nil
}

func (o *options) config(logger logrus.FieldLogger) synthesis.Config {
	cfg := synthesis.Config{
		UseColorSynthesis:       o.color,
		UsePlacementSynthesis:   o.placement,
		UseContainmentSynthesis: o.containment,
		InitialDepth:            synthesis.DefaultInitialDepth,
		MaxDepth:                o.maxDepth,
		MaxClauses:              o.maxClauses,
		MaxCandidates:           o.candidates,
		Workers:                 o.workers,
		Logger:                  logger,
	}
	if o.trace {
		cfg.Tracer = solver.LoggingTracer{Writer: os.Stderr}
	}
	return cfg
}

func (o *options) run(ctx context.Context, logger *logrus.Logger, stdout io.Writer) error {
	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	images, err := example.LoadCorpus(o.corpus)
	if err != nil {
		return err
	}
	examples := example.Examples(images)
	logger.Infof("loaded %d examples from %s", len(examples), o.corpus)

	registry := prometheus.NewRegistry()
	metrics.RegisterSynthesisWith(registry)

	start := time.Now()
	result, err := synthesis.Synthesize(ctx, examples, o.config(logger))
	if err != nil {
		return err
	}
	logger.Infof("search finished in %s", time.Since(start))

	if o.verify {
		if err := result.Verify(examples); err != nil {
			return errors.Wrap(err, "verification failed")
		}
		logger.Info("every candidate verified")
	}

	if o.metricsFile != "" {
		if err := prometheus.WriteToTextfile(o.metricsFile, registry); err != nil {
			return errors.Wrapf(err, "writing metrics to %s", o.metricsFile)
		}
	}

	data, err := yaml.Marshal(newReport(result))
	if err != nil {
		return err
	}
	if o.output == "" {
		_, err = stdout.Write(data)
		return err
	}
	return errors.Wrapf(os.WriteFile(o.output, data, 0o644), "writing programs to %s", o.output)
}
