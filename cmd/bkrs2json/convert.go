package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/at-ishikawa/bkrs2json/internal/config"
	"github.com/at-ishikawa/bkrs2json/internal/converter"
)

type outputFormat converter.Format

func (f *outputFormat) Set(val string) error {
	format, err := converter.ParseFormat(val)
	if err != nil {
		return err
	}
	*f = outputFormat(format)
	return nil
}

func (f outputFormat) String() string {
	return string(f)
}

func (f *outputFormat) Type() string {
	return "format"
}

var _ pflag.Value = (*outputFormat)(nil)

type convertFlags struct {
	altFormat  bool
	format     outputFormat
	reportFile string
}

const convertDescription = `Convert bkrs.info DSL files to JSON format.
This command processes bkrs.info dictionary files in DSL format and outputs a JSON file.

Default output structure:
[
    {
        "some word": ["pinyin of the word", ["meaning_1", "meaning_2", ...]]
    },
    ...
]

Alternative output structure (--alt-format):
[
    {
        "word": "some word",
        "pinyin": "pinyin of the word",
        "meanings": ["meaning_1", "meaning_2", ...]
    },
    ...
]`

func newConvertCommand() *cobra.Command {
	var flags convertFlags

	command := &cobra.Command{
		Use:   "bkrs2json <input_directory> <output_file>",
		Short: "Convert bkrs.info DSL dictionaries to JSON",
		Long:  convertDescription,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				printError(cmd.OutOrStdout(), err)
				return err
			}
			options, err := newConvertOptions(cfg, flags)
			if err != nil {
				err = &converter.ConfigurationError{Err: err}
				printError(cmd.OutOrStdout(), err)
				return err
			}
			return runConvert(cmd.OutOrStdout(), args[0], args[1], options, flags.reportFile)
		},
	}

	commandFlags := command.Flags()
	commandFlags.BoolVar(&flags.altFormat, "alt-format", false, `Use the alternative output format {"word", "pinyin", "meanings"}`)
	commandFlags.Var(&flags.format, "format", fmt.Sprintf("Output format. Possible values are %v", converter.AllFormats))
	commandFlags.StringVar(&flags.reportFile, "report", "", "Write a YAML conversion report to this file")
	return command
}

func newConvertOptions(cfg *config.Config, flags convertFlags) (converter.Options, error) {
	format, err := converter.ParseFormat(cfg.Convert.Format)
	if err != nil {
		return converter.Options{}, fmt.Errorf("converter.ParseFormat > %w", err)
	}
	if flags.format != "" {
		format = converter.Format(flags.format)
	}
	if flags.altFormat {
		if flags.format != "" && converter.Format(flags.format) != converter.FormatAlt {
			return converter.Options{}, fmt.Errorf("--alt-format cannot be combined with --format %s", flags.format)
		}
		format = converter.FormatAlt
	}

	return converter.Options{
		Extension:        cfg.Convert.Extension,
		HeaderLines:      cfg.Convert.HeaderLines,
		Format:           format,
		RussianThreshold: cfg.Convert.RussianThreshold,
	}, nil
}

func runConvert(output io.Writer, inputDirectory, outputFile string, options converter.Options, reportFile string) error {
	report, err := converter.NewConverter(options).Convert(inputDirectory, outputFile)
	if err != nil {
		printError(output, err)
		return err
	}

	if reportFile != "" {
		if err := converter.WriteReport(reportFile, report); err != nil {
			return fmt.Errorf("converter.WriteReport > %w", err)
		}
	}

	if report.FailedFiles > 0 {
		_, _ = color.New(color.FgRed).Fprintf(output, "%d of %d files could not be converted\n", report.FailedFiles, len(report.Files))
	}
	_, _ = color.New(color.FgGreen).Fprintf(output, "Successfully converted files from directory %s to %s\n", inputDirectory, outputFile)
	return nil
}
