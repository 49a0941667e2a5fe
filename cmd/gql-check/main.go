package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	gqlcheck "github.com/ccbrown/gql-check"
	"github.com/ccbrown/gql-check/graphql"
)

// options can be given by a YAML file or by flags. Flags take precedence.
type options struct {
	Schema  string   `yaml:"schema"`
	Inputs  []string `yaml:"inputs"`
	Format  string   `yaml:"format"`
	Jobs    int      `yaml:"jobs"`
	Wrapper string   `yaml:"wrapper"`
	Listen  string   `yaml:"listen"`
}

func defaultOptions() *options {
	return &options{
		Format:  formatText,
		Wrapper: "gql",
	}
}

func loadOptions(path string) (*options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "error reading config file")
	}
	opts := defaultOptions()
	if err := yaml.Unmarshal(data, opts); err != nil {
		return nil, errors.Wrap(err, "error parsing config file")
	}
	return opts, nil
}

func LoadSchema(path string) (*graphql.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return graphql.LoadIntrospectionSchema(data)
}

// Run checks the inputs given by args, writing diagnostics to w. It returns an error for each file
// with diagnostics and for anything that prevented checking.
func Run(w io.Writer, args ...string) []error {
	return run(context.Background(), w, args)
}

func run(ctx context.Context, w io.Writer, args []string) []error {
	flags := pflag.NewFlagSet("gql-check", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	configPath := flags.String("config", "", "the path to a yaml config file")
	schemaPath := flags.String("schema", "", "the path to the schema introspection json file")
	inputs := flags.StringArrayP("input", "i", nil, "the input files to check (may be globs)")
	format := flags.String("format", formatText, "the output format (text or json)")
	jobs := flags.Int("jobs", 0, "the number of files to check concurrently (defaults to GOMAXPROCS)")
	wrapper := flags.String("wrapper", "gql", "the wrapper name to look for in go files")
	listen := flags.String("listen", "", "if given, serve checks over http at this address instead of checking files")
	verbose := flags.BoolP("verbose", "v", false, "enable debug logging")
	noColor := flags.Bool("no-color", false, "disable colored output")
	if err := flags.Parse(args); err != nil {
		return []error{err}
	}

	opts := defaultOptions()
	if *configPath != "" {
		loaded, err := loadOptions(*configPath)
		if err != nil {
			return []error{err}
		}
		opts = loaded
	}
	if flags.Changed("schema") {
		opts.Schema = *schemaPath
	}
	if flags.Changed("input") {
		opts.Inputs = *inputs
	}
	opts.Inputs = append(opts.Inputs, flags.Args()...)
	if flags.Changed("format") {
		opts.Format = *format
	}
	if flags.Changed("jobs") {
		opts.Jobs = *jobs
	}
	if flags.Changed("wrapper") {
		opts.Wrapper = *wrapper
	}
	if flags.Changed("listen") {
		opts.Listen = *listen
	}

	if opts.Schema == "" {
		return []error{fmt.Errorf("the --schema flag is required")}
	} else if opts.Format != formatText && opts.Format != formatJSON {
		return []error{fmt.Errorf("unknown format %q", opts.Format)}
	} else if opts.Listen == "" && len(opts.Inputs) == 0 {
		return []error{fmt.Errorf("no inputs given")}
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	schema, err := LoadSchema(opts.Schema)
	if err != nil {
		return []error{errors.Wrap(err, "error loading schema")}
	}

	storage := gqlcheck.NewMemoryStorage()
	registry := prometheus.NewRegistry()
	checker, err := gqlcheck.NewChecker(&gqlcheck.Config{
		Logger:                logger,
		Schema:                schema,
		ResultStorage:         storage,
		PersistedQueryStorage: storage,
		MetricsRegisterer:     registry,
	})
	if err != nil {
		return []error{err}
	}

	if opts.Listen != "" {
		if err := serve(ctx, opts.Listen, newServeMux(checker, registry), logger); err != nil {
			return []error{err}
		}
		return nil
	}

	files, err := expandInputs(opts.Inputs)
	if err != nil {
		return []error{err}
	}

	results, err := checkFiles(ctx, checker, files, opts.Wrapper, opts.Jobs)
	if err != nil {
		return []error{err}
	}

	switch opts.Format {
	case formatJSON:
		err = writeJSON(w, results)
	default:
		err = writeText(w, results, *noColor)
	}
	if err != nil {
		return []error{errors.Wrap(err, "error writing output")}
	}

	var errs []error
	for _, result := range results {
		if n := len(result.Errors); n > 0 {
			errs = append(errs, fmt.Errorf("%v: %v error(s)", result.File, n))
		}
	}
	return errs
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if errs := run(ctx, os.Stdout, os.Args[1:]); len(errs) > 0 {
		for _, err := range errs {
			fmt.Fprintln(os.Stderr, err.Error())
		}
		stop()
		os.Exit(1)
	}
}
