package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	JWTSecret   string
	MongoURI    string
	DBName      string
	SkipAuth    bool
	Environment string
	AppId       string

	// Firebase / FCM
	FirebaseCredentialsFile string
	FirebaseProjectID       string
	AdminFCMToken           string // fallback recipient for event-triggered sends without a target

	// Google Analytics Admin (audience lookup)
	AnalyticsPropertyID string

	// Bootstrap admin account for the console
	AdminEmail    string
	AdminPassword string
	AdminName     string

	// Automation scheduler
	SweepIntervalMinutes int
	SweepBudgetSeconds   int
	HistoryLimit         int
	DefaultEnabled       bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file successfully")
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		JWTSecret:   getEnv("JWT_SECRET", "secret"),
		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:      getEnv("DB_NAME", "push-console"),
		SkipAuth:    getEnv("SKIP_AUTH", "false") == "true",
		Environment: getEnv("ENVIRONMENT", "development"),
		AppId:       getEnv("APP_ID", "push-console"),

		FirebaseCredentialsFile: getEnv("FIREBASE_CREDENTIALS_FILE", "./serviceAccountKey.json"),
		FirebaseProjectID:       getEnv("FIREBASE_PROJECT_ID", ""),
		AdminFCMToken:           getEnv("ADMIN_FCM_TOKEN", ""),

		AnalyticsPropertyID: getEnv("ANALYTICS_PROPERTY_ID", ""),

		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@localhost"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin"),
		AdminName:     getEnv("ADMIN_NAME", "Administrator"),

		SweepIntervalMinutes: getEnvInt("SWEEP_INTERVAL_MINUTES", 5),
		SweepBudgetSeconds:   getEnvInt("SWEEP_BUDGET_SECONDS", 120),
		HistoryLimit:         getEnvInt("HISTORY_LIMIT", 200),
		DefaultEnabled:       getEnv("DEFAULT_ENABLED", "false") == "true",
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
