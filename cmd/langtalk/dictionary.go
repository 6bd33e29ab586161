package main

import (
	"fmt"

	"github.com/at-ishikawa/langtalk/internal/dictionary/rapidapi"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type API string

func (a *API) Set(val string) error {
	for _, api := range allAPIs {
		if val == string(api) {
			*a = api
			return nil
		}
	}
	return fmt.Errorf("invalid API: %s", val)
}

func (a API) String() string {
	return string(a)
}

func (a *API) Type() string {
	return "API"
}

const (
	APIWordsAPIInRapidAPI API = "words_api"
)

var (
	_       pflag.Value = (*API)(nil)
	allAPIs             = []API{APIWordsAPIInRapidAPI}
)

func newDictionaryCommand() *cobra.Command {
	rootCommand := cobra.Command{
		Use:   "dictionary",
		Short: "Look up words mined from feedback",
	}
	flags := rootCommand.PersistentFlags()

	api := APIWordsAPIInRapidAPI
	flags.Var(&api, "api", fmt.Sprintf("API to use. Possible values are %v", allAPIs))

	rootCommand.AddCommand(&cobra.Command{
		Use:  "lookup",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			ctx := cmd.Context()
			switch api {
			case APIWordsAPIInRapidAPI:
				fallthrough
			default:
				reader := newDictionaryReader(cfg.Dictionaries.RapidAPI)
				for _, word := range args {
					var definitions rapidapi.Response
					definitions, err = reader.Lookup(ctx, word)
					if err != nil {
						return fmt.Errorf("dictionary.NewReader.Lookup > %w", err)
					}
					if err := reader.Show(cmd.OutOrStdout(), definitions); err != nil {
						return fmt.Errorf("reader.Show > %w", err)
					}
				}
			}
			return nil
		},
	})
	return &rootCommand
}
