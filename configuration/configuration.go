package configuration

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/FlixonCoder/Ketpa-backend/models"
)

// Config carries everything the process needs from the environment. It is
// loaded once in main and handed to the collaborators explicitly; nothing
// reads os.Getenv after startup.
type Config struct {
	Port        string
	DatabaseDSN string
	RedisAddr   string
	JWTSecret   string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string

	FrontendURL string
	City        string
	Timezone    string
}

// Load reads the .env file when present and builds the Config. JWT_SECRET
// has no default on purpose.
func Load() (Config, error) {
	_ = godotenv.Load(".env")

	cfg := Config{
		Port:         env("PORT", "8080"),
		DatabaseDSN:  env("DB", "host=localhost user=postgres password=postgres dbname=ketpa port=5432 sslmode=disable"),
		RedisAddr:    os.Getenv("REDIS_ADDR"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		SMTPHost:     env("SMTP_HOST", "smtp.gmail.com"),
		SMTPUser:     os.Getenv("SMTP_EMAIL"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		FrontendURL:  env("FRONTEND_URL", "https://ketpa-frontend.vercel.app"),
		City:         env("CLINIC_CITY", "Bangalore"),
		Timezone:     env("CLINIC_TIMEZONE", "IST"),
	}

	port, err := strconv.Atoi(env("SMTP_PORT", "587"))
	if err != nil {
		return cfg, errors.New("SMTP_PORT must be a number")
	}
	cfg.SMTPPort = port

	if cfg.JWTSecret == "" {
		return cfg, errors.New("JWT_SECRET is required")
	}
	return cfg, nil
}

// ConnectDB opens the postgres connection and migrates the schema.
func ConnectDB(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate keeps the schema in sync. Split out so tests can run it against
// their own database handle.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Doctor{},
		&models.Appointment{},
	)
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
