package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration.
type Config struct {
	Server     ServerConfig
	Logger     LoggerConfig
	GenAI      GenAIConfig
	Quiz       QuizConfig
	Translator TranslatorConfig
	Cache      CacheConfig
	Redis      RedisConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type LoggerConfig struct {
	Level string
	Env   string
}

type GenAIConfig struct {
	APIKey      string
	Model       string
	Temperature float64
	Timeout     time.Duration
}

// QuizConfig externalizes the retry-loop knobs. BatchSize is how many
// questions each generation call asks for; TargetCount is how many novel
// ones a request ultimately returns.
type QuizConfig struct {
	MaxAttempts  int
	TargetCount  int
	BatchSize    int
	RetryBackoff time.Duration
	SeenTTL      time.Duration
}

type TranslatorConfig struct {
	Endpoint  string
	Timeout   time.Duration
	ChunkSize int
}

// CacheConfig selects the seen-store backend: "memory" or "redis".
type CacheConfig struct {
	Backend string
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

// LoadConfig reads config.yaml (optional) and environment overrides into a
// Config with documented defaults.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetEnvPrefix("QUIZCRAFT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// A config file is optional; env vars and defaults are enough.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout"),
			WriteTimeout: viper.GetDuration("server.write_timeout"),
			IdleTimeout:  viper.GetDuration("server.idle_timeout"),
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
		GenAI: GenAIConfig{
			APIKey:      viper.GetString("genai.api_key"),
			Model:       viper.GetString("genai.model"),
			Temperature: viper.GetFloat64("genai.temperature"),
			Timeout:     viper.GetDuration("genai.timeout"),
		},
		Quiz: QuizConfig{
			MaxAttempts:  viper.GetInt("quiz.max_attempts"),
			TargetCount:  viper.GetInt("quiz.target_count"),
			BatchSize:    viper.GetInt("quiz.batch_size"),
			RetryBackoff: viper.GetDuration("quiz.retry_backoff"),
			SeenTTL:      viper.GetDuration("quiz.seen_ttl"),
		},
		Translator: TranslatorConfig{
			Endpoint:  viper.GetString("translator.endpoint"),
			Timeout:   viper.GetDuration("translator.timeout"),
			ChunkSize: viper.GetInt("translator.chunk_size"),
		},
		Cache: CacheConfig{
			Backend: viper.GetString("cache.backend"),
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
	}

	if cfg.GenAI.APIKey == "" {
		return nil, fmt.Errorf("genai.api_key (QUIZCRAFT_GENAI_API_KEY) is required")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 120*time.Second)
	viper.SetDefault("server.idle_timeout", 30*time.Second)

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.env", "development")

	viper.SetDefault("genai.model", "gemini-1.5-flash")
	viper.SetDefault("genai.temperature", 0.7)
	viper.SetDefault("genai.timeout", 60*time.Second)

	viper.SetDefault("quiz.max_attempts", 20)
	viper.SetDefault("quiz.target_count", 10)
	viper.SetDefault("quiz.batch_size", 25)
	viper.SetDefault("quiz.retry_backoff", time.Second)
	viper.SetDefault("quiz.seen_ttl", 5*time.Minute)

	viper.SetDefault("translator.endpoint", "https://translate.googleapis.com/translate_a/single")
	viper.SetDefault("translator.timeout", 15*time.Second)
	viper.SetDefault("translator.chunk_size", 5000)

	viper.SetDefault("cache.backend", "memory")

	viper.SetDefault("redis.address", "localhost:6379")
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
}
