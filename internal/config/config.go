package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Logger    LoggerConfig
	Redis     RedisConfig
	Backend   BackendConfig
	Quiz      QuizConfig
	CacheTTLs CacheTTLConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	AllowOrigins string
}

// LoggerConfig holds configuration for the logger
type LoggerConfig struct {
	Env   string
	Level string
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// BackendConfig points at the external quiz generation and result service.
// ServerBaseURL is used when rendering share pages; it falls back to BaseURL.
type BackendConfig struct {
	BaseURL       string
	ServerBaseURL string
	Timeout       time.Duration
}

// QuizConfig holds the question count bounds offered to users and the URL input flag.
type QuizConfig struct {
	MinQuestionCount int
	MaxQuestionCount int
	DisableURLInput  bool
}

type CacheTTLConfig struct {
	Attempt time.Duration
	Result  time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", 20)
	v.SetDefault("server.write_timeout", 20)
	v.SetDefault("server.allow_origins", "*")
	v.SetDefault("logger.env", "development")
	v.SetDefault("logger.level", "info")
	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("backend.base_url", "http://localhost:8000/api/v1")
	v.SetDefault("backend.timeout", "60s")
	v.SetDefault("quiz.min_question_count", 3)
	v.SetDefault("quiz.max_question_count", 10)
	v.SetDefault("quiz.disable_url_input", true)
	v.SetDefault("cache_ttls.attempt", "24h")
	v.SetDefault("cache_ttls.result", "1h")
}

func LoadConfig() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	config := &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  secondsOrDuration(v, "server.read_timeout"),
			WriteTimeout: secondsOrDuration(v, "server.write_timeout"),
			AllowOrigins: v.GetString("server.allow_origins"),
		},
		Logger: LoggerConfig{
			Env:   v.GetString("logger.env"),
			Level: v.GetString("logger.level"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Backend: BackendConfig{
			BaseURL:       strings.TrimRight(v.GetString("backend.base_url"), "/"),
			ServerBaseURL: strings.TrimRight(v.GetString("backend.server_base_url"), "/"),
			Timeout:       v.GetDuration("backend.timeout"),
		},
		Quiz: QuizConfig{
			MinQuestionCount: v.GetInt("quiz.min_question_count"),
			MaxQuestionCount: v.GetInt("quiz.max_question_count"),
			DisableURLInput:  v.GetBool("quiz.disable_url_input"),
		},
		CacheTTLs: CacheTTLConfig{
			Attempt: v.GetDuration("cache_ttls.attempt"),
			Result:  v.GetDuration("cache_ttls.result"),
		},
	}

	// Legacy flat environment variable names
	if crawl := os.Getenv("DISABLED_CRAWL"); crawl != "" {
		config.Quiz.DisableURLInput = crawl != "false"
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}

	if config.Backend.ServerBaseURL == "" {
		config.Backend.ServerBaseURL = config.Backend.BaseURL
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// secondsOrDuration reads key as a whole number of seconds or as a duration string like "20s".
func secondsOrDuration(v *viper.Viper, key string) time.Duration {
	raw := strings.TrimSpace(v.GetString(key))
	if n, err := strconv.Atoi(raw); err == nil {
		return time.Duration(n) * time.Second
	}
	return v.GetDuration(key)
}

// Validate checks the invariants the rest of the service relies on.
func (c *Config) Validate() error {
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("backend.base_url must be set")
	}
	if c.Quiz.MinQuestionCount < 1 {
		return fmt.Errorf("quiz.min_question_count must be at least 1, got %d", c.Quiz.MinQuestionCount)
	}
	if c.Quiz.MinQuestionCount > c.Quiz.MaxQuestionCount {
		return fmt.Errorf("quiz.min_question_count (%d) exceeds quiz.max_question_count (%d)",
			c.Quiz.MinQuestionCount, c.Quiz.MaxQuestionCount)
	}
	return nil
}
