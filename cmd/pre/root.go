package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bjaus/pretty"
	"github.com/bjaus/pretty/internal/input"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type flags struct {
	verbosity  int
	configPath string
	format     string
	name       string
	limit      int
	depth      int
	sizes      bool
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "pre [file...]",
		Short: "Pretty-print JSON, YAML and TOML documents",
		Long: `pre decodes each document and prints it with bounded width and depth.
Without file arguments the document is read from stdin and --format selects
the decoder.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(cmd.ErrOrStderr(), f.verbosity)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(f.configPath)
			if err != nil {
				return err
			}
			f.merge(cmd, cfg)
			return run(cmd, f, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	fl := cmd.Flags()
	fl.CountVarP(&f.verbosity, "verbose", "v", "Increase log verbosity (-v INFO, -vv DEBUG)")
	fl.StringVarP(&f.configPath, "config", "c", "", "YAML file with rendering defaults")
	fl.StringVarP(&f.format, "format", "f", string(input.JSON), "Input format for stdin ("+formatList()+")")
	fl.StringVarP(&f.name, "name", "n", "", "Prefix output with \"<name>: \"")
	fl.IntVarP(&f.limit, "limit", "l", unbounded, "Maximum elements per container level (negative = unbounded)")
	fl.IntVarP(&f.depth, "depth", "d", unbounded, "Maximum nesting depth (negative = unbounded)")
	fl.BoolVarP(&f.sizes, "sizes", "s", false, "Annotate sequences with size and omitted count")
	return cmd
}

func formatList() string {
	formats := input.Formats()
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = f.String()
	}
	return strings.Join(names, ", ")
}

// merge fills every flag the user did not set from the config file.
func (f *flags) merge(cmd *cobra.Command, cfg config) {
	fl := cmd.Flags()
	if !fl.Changed("limit") && cfg.Limit != nil {
		f.limit = *cfg.Limit
	}
	if !fl.Changed("depth") && cfg.Depth != nil {
		f.depth = *cfg.Depth
	}
	if !fl.Changed("sizes") {
		f.sizes = cfg.Sizes
	}
	if !fl.Changed("format") && cfg.Input != "" {
		f.format = cfg.Input
	}
}

func run(cmd *cobra.Command, f *flags, args []string) error {
	out := cmd.OutOrStdout()
	opts := renderOptions(f.limit, f.depth, f.sizes)

	if len(args) == 0 {
		format, err := input.ParseFormat(f.format)
		if err != nil {
			return err
		}
		log.Debug().Str("format", format.String()).Msg("reading stdin")
		return render(out, cmd.InOrStdin(), format, f.name, opts)
	}

	for _, path := range args {
		format, err := input.FormatFor(path)
		if err != nil {
			return err
		}
		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		name := f.name
		if name == "" && len(args) > 1 {
			name = filepath.Base(path)
		}
		log.Debug().Str("path", path).Str("format", format.String()).Msg("reading file")
		err = render(out, file, format, name, opts)
		file.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func render(w io.Writer, r io.Reader, format input.Format, name string, opts []pretty.Option) error {
	doc, err := input.Decode(r, format)
	if err != nil {
		return err
	}
	var text string
	if name != "" {
		text = pretty.Named(name, doc, opts...)
	} else {
		text = pretty.Render(doc, opts...)
	}
	_, err = fmt.Fprintln(w, text)
	return err
}

func setupLogger(w io.Writer, verbosity int) {
	switch verbosity {
	case 0:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case 1:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
	pretty.SetLogger(log.Logger.With().Str("component", "pretty").Logger())
}
