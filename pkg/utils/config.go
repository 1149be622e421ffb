package utils

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App   AppConfig
	Mongo MongoConfig
	JWT   JWTConfig
}

type AppConfig struct {
	Name         string
	Port         string
	Debug        bool
	LogPath      string
	AllowedHosts []string
}

type MongoConfig struct {
	URI             string
	Database        string
	UsersCollection string
	MaxConnections  uint64
	MinConnections  uint64
}

type JWTConfig struct {
	Secret string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("MONGO_DATABASE", "accounts")
	viper.SetDefault("MONGO_USERS_COLLECTION", "users")
	viper.SetDefault("MAX_CONNECTIONS_COUNT", 10)
	viper.SetDefault("MIN_CONNECTIONS_COUNT", 10)
	viper.SetDefault("ALLOWED_HOSTS", "")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:         viper.GetString("APP_NAME"),
			Port:         viper.GetString("PORT"),
			Debug:        viper.GetBool("DEBUG"),
			LogPath:      viper.GetString("LOG_PATH"),
			AllowedHosts: splitHosts(viper.GetString("ALLOWED_HOSTS")),
		},
		Mongo: MongoConfig{
			URI:             viper.GetString("MONGO_URI"),
			Database:        viper.GetString("MONGO_DATABASE"),
			UsersCollection: viper.GetString("MONGO_USERS_COLLECTION"),
			MaxConnections:  viper.GetUint64("MAX_CONNECTIONS_COUNT"),
			MinConnections:  viper.GetUint64("MIN_CONNECTIONS_COUNT"),
		},
		JWT: JWTConfig{
			Secret: viper.GetString("SECRET_KEY"),
		},
	}

	return config, nil
}

// splitHosts parses the comma-separated ALLOWED_HOSTS value
func splitHosts(value string) []string {
	if value == "" {
		return nil
	}

	var hosts []string
	for _, host := range strings.Split(value, ",") {
		host = strings.TrimSpace(host)
		if host != "" {
			hosts = append(hosts, host)
		}
	}

	return hosts
}
