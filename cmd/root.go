package cmd

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/talentscout/talentscout/internal/translate"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "talentscout"
)

type Config struct {
	BaseLanguage string               `mapstructure:"base-language"`
	Languages    []translate.Language `mapstructure:"languages"`
	TechKeywords []string             `mapstructure:"tech-keywords"`
	CallTimeout  time.Duration        `mapstructure:"call-timeout"`
	Store        *StoreConfig         `mapstructure:"store"`
	AI           *AIConfig            `mapstructure:"ai"`
	Translator   *TranslatorConfig    `mapstructure:"translator"`
}

type StoreConfig struct {
	Path string `mapstructure:"path"`
}

type AIConfig struct {
	Gemini *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxRetries   int    `mapstructure:"max-retries"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

type TranslatorConfig struct {
	Endpoint   string `mapstructure:"endpoint"`
	APIKeyFile string `mapstructure:"api-key-file"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "talentscout is an interactive hiring assistant that screens candidates based on their tech stack",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("ai.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}
	if err := viper.BindEnv("translator.api-key-file", "TRANSLATE_API_KEY_FILE"); err != nil {
		log.Fatalf("binding TRANSLATE_API_KEY_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is talentscout.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// Mirror the legacy behavior: secrets may live in a .env file next to the
	// binary. Missing .env is fine.
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	viper.SetDefault("base-language", translate.BaseLanguage)
	viper.SetDefault("call-timeout", "30s")
	viper.SetDefault("store.path", "candidate_data.json")

	// The wizard runs fine on defaults plus environment; only a broken config
	// file is fatal.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

// storePath resolves the candidate data file for one command. Both run and
// candidates carry their own --store flag, so the flag is read straight off
// the command instead of sharing a single viper key between them.
func storePath(cmd *cobra.Command, config *Config) string {
	if flag, err := cmd.Flags().GetString("store"); err == nil && strings.TrimSpace(flag) != "" {
		return flag
	}
	return config.Store.Path
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

	if config.BaseLanguage == "" {
		config.BaseLanguage = translate.BaseLanguage
	}
	if len(config.Languages) == 0 {
		config.Languages = translate.DefaultLanguages
	}
	if config.Store == nil {
		config.Store = &StoreConfig{}
	}

	return config, nil
}
