package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

type OutputFormat string

func (f *OutputFormat) Set(val string) error {
	for _, format := range allOutputFormats {
		if val == string(format) {
			*f = format
			return nil
		}
	}
	return fmt.Errorf("invalid format: %s", val)
}

func (f OutputFormat) String() string {
	return string(f)
}

func (f *OutputFormat) Type() string {
	return "format"
}

const (
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)

var (
	_                pflag.Value = (*OutputFormat)(nil)
	allOutputFormats             = []OutputFormat{OutputFormatJSON, OutputFormatYAML}
)

type feedbackOptions struct {
	message string
	input   string
	format  OutputFormat
}

func (o *feedbackOptions) addFlags(flags *pflag.FlagSet) {
	flags.StringVar(&o.message, "message", "", "the message the user sent")
	flags.StringVar(&o.input, "input", "-", "file with the raw model output, or - for stdin")
}

func newFeedbackCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "feedback",
		Short: "Grade a saved model response without calling the model",
	}
	command.AddCommand(newFeedbackAnalyzeCommand())
	command.AddCommand(newFeedbackScoreCommand())
	return command
}

func newFeedbackAnalyzeCommand() *cobra.Command {
	options := feedbackOptions{
		format: OutputFormatJSON,
	}
	command := &cobra.Command{
		Use:   "analyze",
		Short: "Parse a model response into sections, categories, score and vocabulary",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			analyzer, err := newAnalyzer(cfg.Feedback)
			if err != nil {
				return err
			}
			raw, err := readInput(cmd.InOrStdin(), options.input)
			if err != nil {
				return err
			}

			result := analyzer.Analyze(options.message, raw)
			return writeOutput(cmd.OutOrStdout(), options.format, result)
		},
	}
	options.addFlags(command.Flags())
	command.Flags().Var(&options.format, "format", fmt.Sprintf("output format. Possible values are %v", allOutputFormats))
	return command
}

func newFeedbackScoreCommand() *cobra.Command {
	var options feedbackOptions
	command := &cobra.Command{
		Use:   "score",
		Short: "Print only the score of a model response",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			analyzer, err := newAnalyzer(cfg.Feedback)
			if err != nil {
				return err
			}
			raw, err := readInput(cmd.InOrStdin(), options.input)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), analyzer.Score(options.message, raw))
			return err
		},
	}
	options.addFlags(command.Flags())
	return command
}

func readInput(stdin io.Reader, path string) (string, error) {
	if path == "-" || path == "" {
		content, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("io.ReadAll > %w", err)
		}
		return string(content), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}
	return string(content), nil
}

func writeOutput(w io.Writer, format OutputFormat, v any) error {
	switch format {
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return fmt.Errorf("yaml.Encode > %w", err)
		}
		return encoder.Close()
	default:
		encoder := json.NewEncoder(w)
		encoder.SetEscapeHTML(false)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(v); err != nil {
			return fmt.Errorf("json.Encode > %w", err)
		}
		return nil
	}
}
