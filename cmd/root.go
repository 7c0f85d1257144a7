package cmd

import (
	"errors"
	"log"
	"strings"

	"github.com/Shreedhar-Khorate/hiredesk-cli/internal/hiredesk"
	"github.com/Shreedhar-Khorate/hiredesk-cli/internal/secrets"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	app = "hiredesk"
)

type Config struct {
	API       *APIConfig  `mapstructure:"api"`
	TokenFile string      `mapstructure:"token-file"`
	UserAgent string      `mapstructure:"user-agent"`
	Auth      *AuthConfig `mapstructure:"auth"`
	AI        *AIConfig   `mapstructure:"ai"`
}

type APIConfig struct {
	BaseURL string `mapstructure:"base-url"`
}

type AuthConfig struct {
	GoogleIDTokenFile string `mapstructure:"google-id-token-file"`
}

type AIConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Gemini  *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxRetries   int    `mapstructure:"max-retries"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "hiredesk is a cli client for the HireDesk recruiting platform: post jobs, upload resumes, review AI match scores",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("token-file", "HIREDESK_TOKEN_FILE"); err != nil {
		log.Fatalf("binding HIREDESK_TOKEN_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is hiredesk.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// The config file is optional: every setting has a flag or env fallback.
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
		config = &Config{}
	}

	return config, nil
}

// newClient builds the API client from the config, attaching the session
// token when one is available. Commands that need authentication fail with
// the server's error, not locally.
func newClient(config *Config, logger *zap.Logger) *hiredesk.Client {
	token, err := resolveToken(config)
	if err != nil {
		logger.Debug("no session token loaded", zap.Error(err))
	}

	client := hiredesk.New(token, logger)

	if config.API != nil && strings.TrimSpace(config.API.BaseURL) != "" {
		client.APIURL = strings.TrimRight(strings.TrimSpace(config.API.BaseURL), "/")
	}
	if config.UserAgent != "" {
		client.UserAgent = config.UserAgent
	}

	return client
}

func resolveToken(config *Config) (string, error) {
	return secrets.Load(secrets.Source{
		Name: "hiredesk session token",
		File: tokenFilePath(config),
	})
}

func tokenFilePath(config *Config) string {
	if config != nil {
		if file := strings.TrimSpace(config.TokenFile); file != "" {
			return file
		}
	}
	return strings.TrimSpace(viper.GetString("token-file"))
}
