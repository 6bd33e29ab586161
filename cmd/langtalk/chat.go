package main

import (
	"fmt"
	"os"

	"github.com/at-ishikawa/langtalk/internal/assets"
	"github.com/at-ishikawa/langtalk/internal/cli"
	"github.com/at-ishikawa/langtalk/internal/config"
	"github.com/at-ishikawa/langtalk/internal/conversation"
	"github.com/at-ishikawa/langtalk/internal/inference/openai"
	"github.com/at-ishikawa/langtalk/internal/report"
	"github.com/spf13/cobra"
)

type chatOptions struct {
	topic    string
	aiRole   string
	userRole string
	report   bool
	pdf      bool
	lookup   bool
}

func newChatCommand() *cobra.Command {
	var options chatOptions
	command := &cobra.Command{
		Use:   "chat",
		Short: "Start a role-play conversation and get feedback on every message",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if cfg.OpenAI.APIKey == "" {
				return fmt.Errorf("OPENAI_API_KEY environment variable is required")
			}
			analyzer, err := newAnalyzer(cfg.Feedback)
			if err != nil {
				return err
			}

			var definer cli.Definer
			if options.lookup {
				definer = newDictionaryReader(cfg.Dictionaries.RapidAPI)
			}
			var reportWriter cli.ReportWriter
			if options.report {
				reportWriter, err = newReportWriter(cfg, options.pdf)
				if err != nil {
					return err
				}
			}

			openaiClient := openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, uint(cfg.OpenAI.MaxRetryAttempts))
			defer func() {
				_ = openaiClient.Close()
			}()
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Using OpenAI provider (model: %s)\n", openaiClient.GetModel())

			session := conversation.NewSession(openaiClient, analyzer, options.scenario(cfg.Roleplay))
			chatCLI := cli.NewChatCLI(os.Stdin, cmd.OutOrStdout(), session, definer, reportWriter)
			return chatCLI.Chat(cmd.Context())
		},
	}

	flags := command.Flags()
	flags.StringVar(&options.topic, "topic", "", "topic of the role-play. Defaults to roleplay.topic")
	flags.StringVar(&options.aiRole, "ai-role", "", "role the model plays. Defaults to roleplay.ai_role")
	flags.StringVar(&options.userRole, "user-role", "", "role you play. Defaults to roleplay.user_role")
	flags.BoolVar(&options.report, "report", true, "write a session report when the conversation ends")
	flags.BoolVar(&options.pdf, "pdf", false, "also write the report as PDF. Defaults to outputs.pdf")
	flags.BoolVar(&options.lookup, "lookup", false, "look up mined words with WordsAPI")
	return command
}

func (o chatOptions) scenario(cfg config.RoleplayConfig) conversation.Scenario {
	scenario := conversation.Scenario{
		Topic:    cfg.Topic,
		AIRole:   cfg.AIRole,
		UserRole: cfg.UserRole,
	}
	if o.topic != "" {
		scenario.Topic = o.topic
	}
	if o.aiRole != "" {
		scenario.AIRole = o.aiRole
	}
	if o.userRole != "" {
		scenario.UserRole = o.userRole
	}
	return scenario
}

func newReportWriter(cfg *config.Config, pdf bool) (*report.Writer, error) {
	tmpl, err := assets.ParseReportTemplate(cfg.Templates.SessionReportTemplate)
	if err != nil {
		return nil, fmt.Errorf("assets.ParseReportTemplate > %w", err)
	}
	return report.NewWriter(tmpl, cfg.Outputs.ReportDirectory, pdf || cfg.Outputs.PDF), nil
}
