package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Logger    LoggerConfig
	Redis     RedisConfig
	Generator GeneratorConfig
	Health    HealthConfig
	Cache     CacheConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LoggerConfig struct {
	Level string
	Env   string
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// GeneratorConfig selects and configures the generation backend.
// Source is either "remote" (the HTTP generation service) or "ollama"
// (a local model via langchaingo).
type GeneratorConfig struct {
	Source string
	Remote RemoteGeneratorConfig
	Ollama OllamaGeneratorConfig
}

type RemoteGeneratorConfig struct {
	BaseURL string
}

type OllamaGeneratorConfig struct {
	ServerURL string
	Model     string
}

type HealthConfig struct {
	Interval time.Duration
}

type CacheConfig struct {
	ResultTTL time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../config")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.AutomaticEnv()

	viper.SetDefault("server.port", 8090)
	viper.SetDefault("server.read_timeout", 20)
	viper.SetDefault("server.write_timeout", 20)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("generator.source", "remote")
	viper.SetDefault("health.interval", 30)
	viper.SetDefault("cache.result_ttl", 3600)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Generator: GeneratorConfig{
			Source: viper.GetString("generator.source"),
			Remote: RemoteGeneratorConfig{
				BaseURL: viper.GetString("generator.remote.base_url"),
			},
			Ollama: OllamaGeneratorConfig{
				ServerURL: viper.GetString("generator.ollama.server_url"),
				Model:     viper.GetString("generator.ollama.model"),
			},
		},
		Health: HealthConfig{
			Interval: viper.GetDuration("health.interval") * time.Second,
		},
		Cache: CacheConfig{
			ResultTTL: viper.GetDuration("cache.result_ttl") * time.Second,
		},
	}

	// Override with environment variables if set
	if env := os.Getenv("ENV"); env != "" {
		config.Logger.Env = env
	}
	if baseURL := os.Getenv("GENERATOR_BASE_URL"); baseURL != "" {
		config.Generator.Remote.BaseURL = baseURL
	}
	if ollamaURL := os.Getenv("OLLAMA_SERVER_URL"); ollamaURL != "" {
		config.Generator.Ollama.ServerURL = ollamaURL
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}

	return config, nil
}
