package config

import (
	"fmt"
	"github.com/spf13/viper"
)

// Config holds everything the server needs at startup.
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	ServerPort  string `mapstructure:"SERVER_PORT"`

	// database
	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`

	// redis
	RedisHost     string `mapstructure:"REDIS_HOST"`
	RedisPort     string `mapstructure:"REDIS_PORT"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// AI gateway (any OpenAI-compatible endpoint)
	OpenAIAPIKey      string `mapstructure:"OPENAI_API_KEY"`
	OpenAIAPIEndpoint string `mapstructure:"OPENAI_API_ENDPOINT"`
	OpenAIModel       string `mapstructure:"OPENAI_MODEL"`
	AITimeoutSeconds  int    `mapstructure:"AI_TIMEOUT_SECONDS"`

	// JWT
	JWTSecret string `mapstructure:"JWT_SECRET"`
}

// LoadConfig reads configuration from a .env file or the environment.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	viper.SetDefault("AI_TIMEOUT_SECONDS", 60)

	err = viper.ReadInConfig()
	if err != nil {
		// missing file is fine, the environment still applies
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
	}

	err = viper.Unmarshal(&config)
	return
}

// GetDBConnString returns the MySQL DSN.
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// GetRedisConnString returns the Redis address.
func (c *Config) GetRedisConnString() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}
