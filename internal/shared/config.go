package shared

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	GMapsBase   string
	GMapsKey    string
	GMapsRPS    int
	Workers     int
	PhotoCount  int
	CacheTTL    time.Duration

	AdminUser     string
	AdminPassHash string // bcrypt
	JWTSecret     string
	TokenTTL      time.Duration
}

func Load() Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "prod")
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("METRICS_ADDR", "")
	v.SetDefault("MYSQL_DSN", "root:root@tcp(localhost:3306)/guide?parseTime=true&charset=utf8mb4,utf8&loc=UTC")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("GMAPS_BASE_URL", "https://maps.googleapis.com/maps/api")
	v.SetDefault("GMAPS_API_KEY", "")
	v.SetDefault("GMAPS_RPS", 5)
	v.SetDefault("ENRICH_WORKERS", 4)
	v.SetDefault("ENRICH_PHOTO_COUNT", 5)
	v.SetDefault("CACHE_TTL_SECONDS", 900)
	v.SetDefault("ADMIN_USER", "admin")
	v.SetDefault("ADMIN_PASSWORD_HASH", "")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("TOKEN_TTL_MINUTES", 60)

	c := Config{
		AppEnv:        v.GetString("APP_ENV"),
		HTTPAddr:      v.GetString("HTTP_ADDR"),
		MetricsAddr:   v.GetString("METRICS_ADDR"),
		MySQLDSN:      v.GetString("MYSQL_DSN"),
		RedisAddr:     v.GetString("REDIS_ADDR"),
		RedisPass:     v.GetString("REDIS_PASSWORD"),
		RedisDB:       v.GetInt("REDIS_DB"),
		GMapsBase:     v.GetString("GMAPS_BASE_URL"),
		GMapsKey:      v.GetString("GMAPS_API_KEY"),
		GMapsRPS:      v.GetInt("GMAPS_RPS"),
		Workers:       v.GetInt("ENRICH_WORKERS"),
		PhotoCount:    v.GetInt("ENRICH_PHOTO_COUNT"),
		CacheTTL:      time.Duration(v.GetInt("CACHE_TTL_SECONDS")) * time.Second,
		AdminUser:     v.GetString("ADMIN_USER"),
		AdminPassHash: v.GetString("ADMIN_PASSWORD_HASH"),
		JWTSecret:     v.GetString("JWT_SECRET"),
		TokenTTL:      time.Duration(v.GetInt("TOKEN_TTL_MINUTES")) * time.Minute,
	}
	if c.GMapsKey == "" {
		log.Warn().Msg("GMAPS_API_KEY is empty")
	}
	if c.JWTSecret == "" || c.AdminPassHash == "" {
		log.Warn().Msg("admin API disabled: JWT_SECRET or ADMIN_PASSWORD_HASH is empty")
	}
	return c
}

// AdminEnabled reports whether the admin routes can issue and check tokens.
func (c Config) AdminEnabled() bool { return c.JWTSecret != "" && c.AdminPassHash != "" }
