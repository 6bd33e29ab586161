package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/at-ishikawa/langtalk/internal/inference"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	OpenAI       OpenAIConfig       `mapstructure:"openai"`
	Roleplay     RoleplayConfig     `mapstructure:"roleplay"`
	Feedback     FeedbackConfig     `mapstructure:"feedback"`
	Dictionaries DictionariesConfig `mapstructure:"dictionaries"`
	Templates    TemplatesConfig    `mapstructure:"templates"`
	Outputs      OutputsConfig      `mapstructure:"outputs"`
}

type OpenAIConfig struct {
	APIKey           string `mapstructure:"api_key"`
	Model            string `mapstructure:"model" validate:"required"`
	MaxRetryAttempts int    `mapstructure:"max_retry_attempts" validate:"gte=0,lte=10"`
}

// RoleplayConfig is the default scenario of a chat session.
type RoleplayConfig struct {
	Topic    string `mapstructure:"topic" validate:"required"`
	AIRole   string `mapstructure:"ai_role" validate:"required"`
	UserRole string `mapstructure:"user_role" validate:"required"`
}

type FeedbackConfig struct {
	VocabularyMining string `mapstructure:"vocabulary_mining" validate:"oneof=flagged always"`
	// Empty lists fall back to the built-in Korean keywords.
	PositiveKeywords []string `mapstructure:"positive_keywords" validate:"dive,keyword"`
	NegativeKeywords []string `mapstructure:"negative_keywords" validate:"dive,keyword"`
}

type DictionariesConfig struct {
	RapidAPI RapidAPIConfig `mapstructure:"rapidapi"`
}

type RapidAPIConfig struct {
	CacheDirectory string `mapstructure:"cache_directory"`
	Host           string `mapstructure:"host"`
	Key            string `mapstructure:"key"`
}

type TemplatesConfig struct {
	SessionReportTemplate string `mapstructure:"session_report_template" validate:"omitempty,file"`
}

type OutputsConfig struct {
	ReportDirectory string `mapstructure:"report_directory"`
	PDF             bool   `mapstructure:"pdf"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/langtalk")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("openai.max_retry_attempts", inference.DefaultMaxRetryAttempts)
	v.SetDefault("roleplay.topic", "hospital")
	v.SetDefault("roleplay.ai_role", "doctor")
	v.SetDefault("roleplay.user_role", "patient")
	v.SetDefault("feedback.vocabulary_mining", "flagged")
	v.SetDefault("dictionaries.rapidapi.cache_directory", filepath.Join("dictionaries", "rapidapi"))
	// Template is optional - if not specified, will use embedded fallback template
	v.SetDefault("templates.session_report_template", "")
	v.SetDefault("outputs.report_directory", filepath.Join("outputs", "sessions"))
	v.SetDefault("outputs.pdf", false)

	// Bind RapidAPI config to environment variables only (not from config file)
	if err := v.BindEnv("dictionaries.rapidapi.host", "RAPID_API_HOST"); err != nil {
		return nil, fmt.Errorf("failed to bind RAPID_API_HOST environment variable: %w", err)
	}
	if err := v.BindEnv("dictionaries.rapidapi.key", "RAPID_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind RAPID_API_KEY environment variable: %w", err)
	}

	// Bind OpenAI config to environment variables only (not from config file)
	if err := v.BindEnv("openai.api_key", "OPENAI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind OPENAI_API_KEY environment variable: %w", err)
	}
	if err := v.BindEnv("openai.model", "OPENAI_MODEL"); err != nil {
		return nil, fmt.Errorf("failed to bind OPENAI_MODEL environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
