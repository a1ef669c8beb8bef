package config

import (
	"os"

	"github.com/gotify/configor"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr    string `default:"" env:"APP_HOST"`
		Port          int    `default:"8080"  env:"APP_PORT"`
		BodyLimit     int    `default:"10485760" env:"APP_BODY_LIMIT"`
		ErrNotifyAddr string `default:"" env:"APP_ERR_NOTIFY_ADDR"` // webhook for 5xx answers
		LogLevel      string `default:"info" env:"APP_LOG_LEVEL"`
	}
	Database struct {
		Host                   string `default:"127.0.0.1" env:"DB_HOST"`
		Port                   string `default:"5432" env:"DB_PORT"`
		Name                   string `default:"tpo-portal" env:"DB_NAME"`
		User                   string `default:"postgres" env:"DB_USER"`
		Password               string `default:"postgres" env:"DB_PASSWORD"`
		SSLMode                string `default:"disable" env:"DB_SSL_MODE"`
		MaxOpenConns           int    `default:"20" env:"DB_MAX_OPEN_CONNS"`
		MaxIdleConns           int    `default:"5" env:"DB_MAX_IDLE_CONNS"`
		ConnMaxLifetimeMinutes int    `default:"30" env:"DB_CONN_MAX_LIFETIME_MINUTES"`
		MigrateOnStart         *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode              *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Auth struct {
		JWTSecret string `default:"" env:"AUTH_JWT_SECRET"`
	}
	Smtp struct {
		User        string `default:"" env:"SMTP_USER"`
		Password    string `default:"" env:"SMTP_PASSWORD"`
		Host        string `default:"" env:"SMTP_HOST"`
		Port        string `default:"" env:"SMTP_PORT"`
		TLSEnabled  *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
		SenderEmail string `default:"" env:"SMTP_SENDER_EMAIL"`
	}
	S3 struct {
		Endpoint        string `default:"" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		BucketName      string `default:"tpo-portal" env:"S3_BUCKET_NAME"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
		LinkTTLMinutes  int    `default:"15" env:"S3_LINK_TTL_MINUTES"`
	}
	Kafka struct {
		Brokers  string `default:"" env:"KAFKA_BROKERS"` // comma separated host:port list
		Topic    string `default:"tpo-notifications" env:"KAFKA_TOPIC"`
		Username string `default:"" env:"KAFKA_USERNAME"`
		Password string `default:"" env:"KAFKA_PASSWORD"`
		TLS      *bool  `default:"false" env:"KAFKA_TLS"`
	}
	Redis struct {
		Addr     string `default:"" env:"REDIS_ADDR"`
		Password string `default:"" env:"REDIS_PASSWORD"`
		DB       int    `default:"0" env:"REDIS_DB"`
	}
	RateLimit struct {
		Enabled       *bool `default:"true" env:"RATE_LIMIT_ENABLED"`
		Requests      int   `default:"120" env:"RATE_LIMIT_REQUESTS"`
		WindowSeconds int   `default:"60" env:"RATE_LIMIT_WINDOW_SECONDS"`
	}
	Notification struct {
		EmailEnabled         *bool `default:"true" env:"NOTIFICATION_EMAIL_ENABLED"`
		RetentionDays        int   `default:"30" env:"NOTIFICATION_RETENTION_DAYS"`
		CleanupIntervalHours int   `default:"6" env:"NOTIFICATION_CLEANUP_INTERVAL_HOURS"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	loadDotEnv()
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}

// loadDotEnv fills the process environment from .env, variables already set win
func loadDotEnv() {
	if _, err := os.Stat(".env"); err != nil {
		return
	}
	if err := godotenv.Load(); err != nil {
		log.WithError(err).Warn(".env file could not be loaded")
	}
}
