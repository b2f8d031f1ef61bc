package config

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type TLSConfig struct {
	Enabled  bool
	CertFile string
	KeyFile  string
}

type HTTPConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type PostgresConfig struct {
	DSN             string
	MaxOpen         int
	MaxIdle         int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type StorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	Region    string
}

type CDNConfig struct {
	BaseURL string
}

type UploadConfig struct {
	MaxFileSize int64
}

type SecurityConfig struct {
	JWTSecret     string
	JWTTTL        time.Duration
	AdminEmail    string
	AdminPassword string
}

type NotifyConfig struct {
	Stream        string
	Group         string
	Consumer      string
	ClaimInterval time.Duration
	EmailAPIURL   string
	EmailAPIKey   string
	EmailFrom     string
	SMSAPIURL     string
	SMSAPIKey     string
	DigestTo      string
}

type AppConfig struct {
	Environment      string
	HTTP             HTTPConfig
	TLS              TLSConfig
	Postgres         PostgresConfig
	Redis            RedisConfig
	Storage          StorageConfig
	CDN              CDNConfig
	Upload           UploadConfig
	Security         SecurityConfig
	Notify           NotifyConfig
	AllowCORSOrigins []string
}

func Load() (*AppConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("../config")

	v.SetEnvPrefix("IMPILO")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")

	v.SetDefault("http.host", "0.0.0.0")
	v.SetDefault("http.port", 5050)
	v.SetDefault("http.readtimeout", "10s")
	v.SetDefault("http.writetimeout", "15s")
	v.SetDefault("http.idletimeout", "60s")

	v.SetDefault("postgres.maxopen", 30)
	v.SetDefault("postgres.maxidle", 10)
	v.SetDefault("postgres.connmaxlifetime", "30m")

	v.SetDefault("redis.addr", "127.0.0.1:6379")
	v.SetDefault("redis.db", 0)

	v.SetDefault("storage.bucket", "impilo-registrations")
	v.SetDefault("storage.usessl", false)
	v.SetDefault("storage.region", "af-south-1")

	v.SetDefault("cdn.baseurl", "https://cdn.impilomag.co.za")

	// 500MB ceiling per uploaded file, same as the public submission form.
	v.SetDefault("upload.maxfilesize", int64(500*1024*1024))

	v.SetDefault("security.jwtttl", "2h")
	v.SetDefault("security.adminemail", "admin@impilomag.co.za")

	v.SetDefault("notify.stream", "notify:dispatch")
	v.SetDefault("notify.group", "notifiers")
	v.SetDefault("notify.consumer", "notifier-1")
	v.SetDefault("notify.claiminterval", "1m")
	v.SetDefault("notify.emailfrom", "no-reply@impilomag.co.za")
	v.SetDefault("notify.digestto", "admin@impilomag.co.za")
}
