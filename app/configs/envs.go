package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Placeholder sentinels shipped in .env.example. While the DSN values still
// carry these, the app runs against the static demo catalog instead of a
// real database.
const (
	PlaceholderDBHost     = "your-database-host"
	PlaceholderDBPassword = "your-database-password"
)

type ENV struct {
	DBHost         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBPort         string
	Port           string
	SESSION_KEY    string
	AppAuthKey     string
	AppEncKey      string
	AdminEmail     string
	AdminPassHash  string
	StoreStatePath string
	APP_URL        string
	APP_ENV        string
}

func LoadEnv() ENV {

	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found ")
	}

	return ENV{
		DBHost:         os.Getenv("DB_HOST"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		DBPort:         os.Getenv("DB_PORT"),
		Port:           os.Getenv("APP_PORT"),
		SESSION_KEY:    os.Getenv("SESSION_KEY"),
		AppAuthKey:     os.Getenv("APP_AUTH_KEY"),
		AppEncKey:      os.Getenv("APP_ENC_KEY"),
		AdminEmail:     os.Getenv("ADMIN_EMAIL"),
		AdminPassHash:  os.Getenv("ADMIN_PASSWORD_HASH"),
		StoreStatePath: os.Getenv("STORE_STATE_PATH"),
		APP_URL:        os.Getenv("APP_URL"),
		APP_ENV:        os.Getenv("APP_ENV"),
	}

}

var LoadENV = LoadEnv()

// IsDatabaseConfigured reports whether the DSN env values are present and are
// not the .env.example placeholders. When false the app serves the demo
// catalog and never opens a connection.
func IsDatabaseConfigured() bool {
	env := LoadENV
	if env.DBHost == "" || env.DBUser == "" || env.DBName == "" {
		return false
	}
	if env.DBHost == PlaceholderDBHost || env.DBPassword == PlaceholderDBPassword {
		return false
	}
	return true
}
