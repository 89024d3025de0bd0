package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/sangkips/insights-api/pkg/money"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Log       LogConfig
	Format    FormatConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type DatabaseConfig struct {
	Host        string
	Port        string
	Name        string
	User        string
	Password    string
	SSLMode     string
	Timezone    string
	AutoMigrate bool
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

type LogConfig struct {
	Level  string
	Pretty bool
}

// FormatConfig controls how money, quantities and dates are displayed
type FormatConfig struct {
	CurrencySymbol     string
	Precision          int32
	QtyPrecision       int32
	ThousandsSeparator string
	DecimalSeparator   string
	DateFormat         string
}

// Formatter builds the display formatter for these settings
func (c FormatConfig) Formatter() money.Formatter {
	return money.Formatter{
		Symbol:       c.CurrencySymbol,
		Precision:    c.Precision,
		QtyPrecision: c.QtyPrecision,
		ThousandsSep: c.ThousandsSeparator,
		DecimalSep:   c.DecimalSeparator,
		DateLayout:   c.DateFormat,
	}
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg(".env file not found, using environment variables")
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "insights-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", "insights")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_TIMEZONE", "UTC")
	viper.SetDefault("DB_AUTO_MIGRATE", false)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_RPS", 10)
	viper.SetDefault("RATE_LIMIT_BURST", 20)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_PRETTY", false)
	viper.SetDefault("CURRENCY_SYMBOL", "")
	viper.SetDefault("CURRENCY_PRECISION", 2)
	viper.SetDefault("QTY_PRECISION", 2)
	viper.SetDefault("THOUSANDS_SEPARATOR", ",")
	viper.SetDefault("DECIMAL_SEPARATOR", ".")
	viper.SetDefault("DATE_FORMAT", "02-01-2006")

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Database: DatabaseConfig{
			Host:        viper.GetString("DB_HOST"),
			Port:        viper.GetString("DB_PORT"),
			Name:        viper.GetString("DB_NAME"),
			User:        viper.GetString("DB_USER"),
			Password:    viper.GetString("DB_PASSWORD"),
			SSLMode:     viper.GetString("DB_SSL_MODE"),
			Timezone:    viper.GetString("DB_TIMEZONE"),
			AutoMigrate: viper.GetBool("DB_AUTO_MIGRATE"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst:             viper.GetInt("RATE_LIMIT_BURST"),
		},
		Log: LogConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Pretty: viper.GetBool("LOG_PRETTY"),
		},
		Format: FormatConfig{
			CurrencySymbol:     viper.GetString("CURRENCY_SYMBOL"),
			Precision:          viper.GetInt32("CURRENCY_PRECISION"),
			QtyPrecision:       viper.GetInt32("QTY_PRECISION"),
			ThousandsSeparator: viper.GetString("THOUSANDS_SEPARATOR"),
			DecimalSeparator:   viper.GetString("DECIMAL_SEPARATOR"),
			DateFormat:         viper.GetString("DATE_FORMAT"),
		},
	}
}

func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.Timezone
}
