package config

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env         string     `yaml:"env" env:"ENV" env-default:"local"`
	FrontendURL string     `yaml:"frontend_url" env:"FRONTEND_URL" env-default:"http://localhost:3000"`
	HTTPServer  HTTPServer `yaml:"http_server"`
	Database    Database   `yaml:"database"`
	Redis       Redis      `yaml:"redis"`
	Auth        Auth       `yaml:"auth"`
	Esewa       Esewa      `yaml:"esewa"`
	Booking     Booking    `yaml:"booking"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8082"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type Database struct {
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DBName   string `yaml:"dbname" env:"DB_NAME" env-default:"tridivya"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
}

type Redis struct {
	Address  string `yaml:"address" env:"REDIS_ADDRESS" env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

type Auth struct {
	JWTSecret string        `yaml:"jwt_secret" env:"JWT_SECRET" env-required:"true"`
	TokenTTL  time.Duration `yaml:"token_ttl" env:"TOKEN_TTL" env-default:"24h"`
}

type Esewa struct {
	URL         string `yaml:"url" env:"ESEWA_URL" env-default:"https://rc-epay.esewa.com.np/api/epay/main/v2/form"`
	ProductCode string `yaml:"product_code" env:"ESEWA_PRODUCT_CODE" env-default:"EPAYTEST"`
	SecretKey   string `yaml:"secret_key" env:"ESEWA_SECRET_KEY" env-required:"true"`
	SuccessURL  string `yaml:"success_url" env:"ESEWA_SUCCESS_URL" env-default:"http://localhost:8082/api/payments/esewa/success"`
	FailureURL  string `yaml:"failure_url" env:"ESEWA_FAILURE_URL" env-default:"http://localhost:8082/api/payments/esewa/failure"`
}

type Booking struct {
	// PaymentDeadline is how long an unpaid online booking stays upcoming.
	PaymentDeadline time.Duration `yaml:"payment_deadline" env-default:"30m"`
	SweepInterval   time.Duration `yaml:"sweep_interval" env-default:"1m"`
	// Timezone decides what "today" means for booking dates.
	Timezone string `yaml:"timezone" env:"BOOKING_TIMEZONE" env-default:"Asia/Kathmandu"`
}

func MustLoad() *Config {
	configPath := fetchConfigPath()
	if configPath == "" {
		log.Fatal("config path is not set")
	}

	return MustLoadPath(configPath)
}

func MustLoadPath(configPath string) *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}

// fetchConfigPath fetches config path from command line flag or environment variable.
// Priority: flag > env > default.
func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
