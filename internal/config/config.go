package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env      Env
	Minio    MinioConfig
	Queue    QueueConfig
	Cache    CacheConfig
	WS       WSConfig
	NATS     NATSConfig
	Database DatabaseConfig
	Server   ServerConfig
	Upload   UploadConfig
}

type Env struct {
	Env string `envconfig:"ENV" default:"DEV"`
}

type ServerConfig struct {
	Host string `envconfig:"SERVER_HOST" default:"localhost"`
	Port string `envconfig:"SERVER_PORT" default:"8080"`
}

type MinioConfig struct {
	Endpoint   string `envconfig:"MINIO_ENDPOINT" required:"true"`
	BucketName string `envconfig:"MINIO_BUCKET_NAME" required:"true"`
	AccessKey  string `envconfig:"MINIO_ACCESS_KEY" required:"true"`
	SecretKey  string `envconfig:"MINIO_SECRET_KEY" required:"true"`
	PublicBase string `envconfig:"MINIO_PUBLIC_BASE_URL"`
	UseSSL     bool   `envconfig:"MINIO_USE_SSL" default:"false"`
}

// QueueConfig selects the job queue implementation. Mode "inline" runs jobs
// on the submitting goroutine; "pooled" drains an in-memory queue with a
// fixed worker pool.
type QueueConfig struct {
	Mode        string `envconfig:"QUEUE_MODE" default:"pooled"`
	Concurrency int    `envconfig:"QUEUE_CONCURRENCY" default:"5"`
}

type CacheConfig struct {
	Dir       string        `envconfig:"CACHE_DIR" default:"/var/cache/ui-media"`
	ClientTTL time.Duration `envconfig:"CACHE_CLIENT_TTL" default:"8760h"`
}

type WSConfig struct {
	ReadBufferSize  int           `envconfig:"WS_READ_BUFFER_SIZE" default:"1024"`
	WriteBufferSize int           `envconfig:"WS_WRITE_BUFFER_SIZE" default:"1024"`
	SendBufferSize  int           `envconfig:"WS_SEND_BUFFER_SIZE" default:"256"`
	WriteWait       time.Duration `envconfig:"WS_WRITE_WAIT" default:"10s"`
	PongWait        time.Duration `envconfig:"WS_PONG_WAIT" default:"60s"`
	PingInterval    time.Duration `envconfig:"WS_PING_INTERVAL" default:"54s"`
	MaxMessageSize  int64         `envconfig:"WS_MAX_MESSAGE_SIZE" default:"4096"`
}

type UploadConfig struct {
	TempDir     string `envconfig:"UPLOAD_TEMP_DIR" default:"/tmp/ui-uploads"`
	MaxFileSize int64  `envconfig:"UPLOAD_MAX_FILE_SIZE" default:"104857600"` // 100MB
}

type NATSConfig struct {
	URL          string `envconfig:"NATS_URL" required:"true"`
	StreamName   string `envconfig:"NATS_STREAM_NAME" default:"PAYMENTS"`
	ConsumerName string `envconfig:"NATS_CONSUMER_NAME" default:"ui-marketplace"`
	Subject      string `envconfig:"NATS_SUBJECT" default:"payments.confirmed"`
}

type DatabaseConfig struct {
	Host           string        `envconfig:"DB_HOST" required:"true"`
	Port           int           `envconfig:"DB_PORT" default:"5432"`
	User           string        `envconfig:"DB_USER" required:"true"`
	Password       string        `envconfig:"DB_PASSWORD" required:"true"`
	Name           string        `envconfig:"DB_NAME" required:"true"`
	SSLMode        string        `envconfig:"DB_SSLMODE" default:"disable"`
	MaxOpenCons    int           `envconfig:"DB_MAX_OPEN_CONS" default:"25"`
	MaxIdleCons    int           `envconfig:"DB_MAX_IDLE_CONS" default:"5"`
	ConMaxLifeTime time.Duration `envconfig:"DB_CONMAX_LIFE_TIME" default:"5m"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
