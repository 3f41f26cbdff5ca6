package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	InternalAPIKey string
}

type AwsConfig struct {
	Region          string
	UsersTable      string
	UsersTablePK    string
	ProductsTable   string
	PriceIndex      string
	PicturesBucket  string
	UploadsBucket   string
	StateMachineArn string
}

type RewardsConfig struct {
	PointsParam string
	CardParam   string
}

type Config struct {
	Environment string
	Server      ServerConfig
	Aws         AwsConfig
	Rewards     RewardsConfig
}

// Load reads configuration from the environment. A .env file is honored for
// local development; deployed Lambdas get everything from function env vars.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			ReadTimeout:    getDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:   getDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:    getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
			InternalAPIKey: os.Getenv("INTERNAL_API_KEY"),
		},
		Aws: AwsConfig{
			Region:          getEnv("AWS_REGION", "us-east-1"),
			UsersTable:      os.Getenv("USERS_TABLE_NAME"),
			UsersTablePK:    getEnv("USERS_TABLE_PK", "uetr"),
			ProductsTable:   os.Getenv("PRODUCTS_TABLE_NAME"),
			PriceIndex:      getEnv("PRODUCTS_PRICE_INDEX", "price-index"),
			PicturesBucket:  os.Getenv("PICTURES_BUCKET_NAME"),
			UploadsBucket:   os.Getenv("BUCKET_NAME"),
			StateMachineArn: os.Getenv("REWARDS_STATE_MACHINE_ARN"),
		},
		Rewards: RewardsConfig{
			PointsParam: getEnv("POINTS_PARAM_NAME", "/app/rewards/points-per-user"),
			CardParam:   getEnv("CC_PARAM_NAME", "/app/rewards/credit-card-secret"),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
