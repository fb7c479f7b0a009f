package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	DB      DBConfig      `mapstructure:"database"`
	Redis   RedisConfig   `mapstructure:"redis"`
	CORS    CORSConfig    `mapstructure:"cors"`
	JWT     JWTConfig     `mapstructure:"jwt"`
	GraphQL GraphQLConfig `mapstructure:"graphql"`
	Storage StorageConfig `mapstructure:"storage"`
	Images  ImagesConfig  `mapstructure:"images"`
	Rules   RulesConfig   `mapstructure:"rules"`
	Theme   string        `mapstructure:"theme"`
}

// ServerConfig holds server specific configuration
type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Host string `mapstructure:"host"`
}

// DBConfig holds database specific configuration
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
}

// RedisConfig holds redis connection settings.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// CORSConfig holds CORS specific configuration
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// JWTConfig holds the secret shared with the marketplace API for bearer tokens.
type JWTConfig struct {
	Secret string `mapstructure:"secret"`
}

// GraphQLConfig points at the marketplace GraphQL API.
type GraphQLConfig struct {
	Endpoint string        `mapstructure:"endpoint"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// StorageConfig selects where session state lives and how it is sealed.
type StorageConfig struct {
	SessionBackend string        `mapstructure:"session_backend"` // "redis" or "postgres"
	SessionTTL     time.Duration `mapstructure:"session_ttl"`
	SecretKey      string        `mapstructure:"secret_key"` // 32 bytes, used to seal tokens
}

// ImagesConfig configures job image uploads.
type ImagesConfig struct {
	Backend   string `mapstructure:"backend"` // "s3" or "local"
	LocalPath string `mapstructure:"local_path"`
	BaseURL   string `mapstructure:"base_url"`
	Bucket    string `mapstructure:"bucket"`
	Region    string `mapstructure:"region"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	MaxWidth  uint   `mapstructure:"max_width"`
}

// RulesConfig holds the configured minimums and maximums used by form validation.
type RulesConfig struct {
	MinTitle       int     `mapstructure:"min_title"`
	MinSkills      int     `mapstructure:"min_skills"`
	MinWage        float64 `mapstructure:"min_wage"`
	MinHours       int     `mapstructure:"min_hours"`
	MinDescription int     `mapstructure:"min_description"`
	MaxImages      int     `mapstructure:"max_images"`
	MinQuote       float64 `mapstructure:"min_quote"`
	MinProposal    int     `mapstructure:"min_proposal"`
	MinBio         int     `mapstructure:"min_bio"`
	PageSize       int     `mapstructure:"page_size"`
}

// Load configuration from file and environment variables
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment.")
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/app/config")
	viper.AddConfigPath("/app")

	setDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Config file not found, using defaults and environment variables.")
		} else {
			log.Printf("Error reading config file: %v", err)
		}
	}

	viper.SetEnvPrefix("API") // e.g. API_GRAPHQL_ENDPOINT
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	viper.BindEnv("cors.allowed_origins", "CORS_ALLOWED_ORIGINS")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(&cfg)

	log.Printf("Configuration loaded: Server Port=%d, GraphQL=%s, Session backend=%s, Allowed Origins=%v",
		cfg.Server.Port, cfg.GraphQL.Endpoint, cfg.Storage.SessionBackend, cfg.CORS.AllowedOrigins)

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.host", "localhost")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.name", "bff_db")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("cors.allowed_origins", []string{"http://localhost:3000", "http://127.0.0.1:3000"})
	v.SetDefault("jwt.secret", "change-me")
	v.SetDefault("graphql.endpoint", "http://localhost:4000/graphql")
	v.SetDefault("graphql.timeout", 15*time.Second)
	v.SetDefault("storage.session_backend", "redis")
	v.SetDefault("storage.session_ttl", 30*24*time.Hour)
	v.SetDefault("storage.secret_key", "")
	v.SetDefault("images.backend", "local")
	v.SetDefault("images.local_path", "./uploads")
	v.SetDefault("images.base_url", "http://localhost:8080/uploads")
	v.SetDefault("images.max_width", 1600)
	v.SetDefault("theme", "light")

	rules := DefaultRules()
	v.SetDefault("rules.min_title", rules.MinTitle)
	v.SetDefault("rules.min_skills", rules.MinSkills)
	v.SetDefault("rules.min_wage", rules.MinWage)
	v.SetDefault("rules.min_hours", rules.MinHours)
	v.SetDefault("rules.min_description", rules.MinDescription)
	v.SetDefault("rules.max_images", rules.MaxImages)
	v.SetDefault("rules.min_quote", rules.MinQuote)
	v.SetDefault("rules.min_proposal", rules.MinProposal)
	v.SetDefault("rules.min_bio", rules.MinBio)
	v.SetDefault("rules.page_size", rules.PageSize)
}

// DefaultRules returns the thresholds used when nothing is configured.
func DefaultRules() RulesConfig {
	return RulesConfig{
		MinTitle:       5,
		MinSkills:      1,
		MinWage:        14,
		MinHours:       1,
		MinDescription: 20,
		MaxImages:      10,
		MinQuote:       14,
		MinProposal:    20,
		MinBio:         20,
		PageSize:       20,
	}
}

// applyEnvOverrides lets plain (unprefixed) environment variables win over everything else.
func applyEnvOverrides(cfg *Config) {
	if portStr := os.Getenv("SERVER_PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			cfg.Server.Port = port
		}
	}
	if host := os.Getenv("SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if host := os.Getenv("DB_HOST"); host != "" {
		cfg.DB.Host = host
	}
	if portStr := os.Getenv("DB_PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			cfg.DB.Port = port
		}
	}
	if user := os.Getenv("DB_USER"); user != "" {
		cfg.DB.User = user
	}
	if pass := os.Getenv("DB_PASSWORD"); pass != "" {
		cfg.DB.Password = pass
	}
	if name := os.Getenv("DB_NAME"); name != "" {
		cfg.DB.Name = name
	}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.Redis.Addr = addr
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.JWT.Secret = secret
	}
	if endpoint := os.Getenv("GRAPHQL_ENDPOINT"); endpoint != "" {
		cfg.GraphQL.Endpoint = endpoint
	}

	// CORS_ALLOWED_ORIGINS is a comma-separated list
	if originsStr := os.Getenv("CORS_ALLOWED_ORIGINS"); originsStr != "" {
		cfg.CORS.AllowedOrigins = strings.Split(originsStr, ",")
		for i, origin := range cfg.CORS.AllowedOrigins {
			cfg.CORS.AllowedOrigins[i] = strings.TrimSpace(origin)
		}
	}
}
