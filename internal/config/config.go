package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application level configuration aggregated from env/config files.
type Config struct {
	Server struct {
		Addr string
	}
	Database struct {
		Path string
	}
	Upload struct {
		Dir string
	}
	Auth struct {
		JWTSecret       string
		TokenTTLMinutes int
	}
	Storage struct {
		Bucket        string
		KeyPrefix     string
		Region        string
		Endpoint      string
		PublicBaseURL string
	}
	AWS struct {
		Profile string
	}
}

// Load reads configuration from environment variables and optional config files.
func Load() (Config, error) {
	_ = godotenv.Load() // optional .env overlay

	v := viper.New()
	v.SetEnvPrefix("INFLUENCER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", "0.0.0.0:8080")
	v.SetDefault("database.path", "data/influencer.db")
	v.SetDefault("upload.dir", "data/uploads")
	v.SetDefault("auth.jwtsecret", "")
	v.SetDefault("auth.tokenttlminutes", 60)
	v.SetDefault("storage.bucket", "")
	v.SetDefault("storage.keyprefix", "profile-images")
	v.SetDefault("storage.region", "us-east-1")
	v.SetDefault("storage.endpoint", "")
	v.SetDefault("storage.publicbaseurl", "")
	v.SetDefault("aws.profile", "")

	v.SetConfigName("config")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional file

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}
