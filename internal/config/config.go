package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	// Backend de persistencia: Postgres si DATABASE_URL está presente,
	// MongoDB si MONGO_URI está presente, memoria en otro caso.
	DatabaseURL string `env:"DATABASE_URL"`
	MongoURI    string `env:"MONGO_URI"`
	MongoDB     string `env:"MONGO_DB" envDefault:"support_admin"`

	AllowedEmails []string `env:"ALLOWED_EMAILS" envSeparator:","`

	JWTSecret          string `env:"JWT_SECRET"`
	JWTSessionTTLHours int    `env:"JWT_SESSION_TTL_HOURS" envDefault:"8"`

	OTPTTLMinutes             int `env:"OTP_TTL_MINUTES" envDefault:"5"`
	OTPRateLimitMax           int `env:"OTP_RATE_LIMIT_MAX" envDefault:"5"`
	OTPRateLimitWindowMinutes int `env:"OTP_RATE_LIMIT_WINDOW_MINUTES" envDefault:"10"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser     string `env:"SMTP_USER"`
	SMTPPass     string `env:"SMTP_PASS"`
	SMTPFrom     string `env:"SMTP_FROM"`
	SMTPFromName string `env:"SMTP_FROM_NAME"`
	SMTPUseTLS   bool   `env:"SMTP_USE_TLS" envDefault:"false"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
