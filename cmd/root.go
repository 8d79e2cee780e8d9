package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spigell/interview-simulator/internal/ai/gemini"
	"github.com/spigell/interview-simulator/internal/contact"
	"github.com/spigell/interview-simulator/internal/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	app = "interview-simulator"

	defaultQuestions = 5
)

type Config struct {
	Gemini    *GeminiConfig    `mapstructure:"gemini" validate:"required"`
	Interview *InterviewConfig `mapstructure:"interview" validate:"required"`
	Contact   *ContactConfig   `mapstructure:"contact" validate:"required"`
}

type GeminiConfig struct {
	APIKey       string `mapstructure:"api-key" json:"-"`
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model" validate:"required"`
	Transport    string `mapstructure:"transport" validate:"oneof=rest sdk"`
	URL          string `mapstructure:"url" validate:"omitempty,url"`
	BaseURL      string `mapstructure:"base-url" validate:"omitempty,url"`
	MaxLogLength int    `mapstructure:"max-log-length" validate:"gte=0"`
}

type InterviewConfig struct {
	Questions int `mapstructure:"questions" validate:"min=1,max=20"`
}

type ContactConfig struct {
	Endpoint      string        `mapstructure:"endpoint" validate:"required,url"`
	AccessKey     string        `mapstructure:"access-key" json:"-"`
	AccessKeyFile string        `mapstructure:"access-key-file"`
	Timeout       time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "interview-simulator asks you interview questions tailored to your resume and scores your answers",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	envBindings := map[string]string{
		"gemini.api-key":      "GEMINI_API_KEY",
		"gemini.api-key-file": "GEMINI_API_KEY_FILE",
		"gemini.url":          "GEMINI_API_URL",
		"contact.access-key":  "WEB3FORMS_ACCESS_KEY",
	}
	for key, env := range envBindings {
		if err := viper.BindEnv(key, env); err != nil {
			log.Fatalf("binding %s environment variable: %v", env, err)
		}
	}

	viper.SetDefault("gemini.model", gemini.DefaultModel)
	viper.SetDefault("gemini.transport", gemini.TransportREST)
	viper.SetDefault("gemini.max-log-length", 200)
	viper.SetDefault("interview.questions", defaultQuestions)
	viper.SetDefault("contact.endpoint", contact.DefaultEndpoint)
	viper.SetDefault("contact.timeout", contact.DefaultTimeout)

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is interview-simulator.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().String("log-file", "", "write logs to this file instead of stderr")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("log-file", rootCmd.PersistentFlags().Lookup("log-file"))
}

func initConfig() {
	// version needs nothing from the environment
	if versionCmd.CalledAs() != "" {
		return
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("loading .env: %v", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
	}

	// Defaults and environment are enough to run, so only an explicit or broken config is fatal.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config == nil {
		return nil, errors.New("config is empty")
	}

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// setup builds the logger and the validated config every command needs.
func setup() (*zap.Logger, *Config) {
	logger, err := logger.New(logger.Options{
		JSON:  viper.GetBool("json"),
		Debug: viper.GetBool("debug"),
		File:  viper.GetString("log-file"),
	})
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	return logger, config
}
