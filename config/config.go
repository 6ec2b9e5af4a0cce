package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

var loadOnce sync.Once

var defaults = map[string]string{
	"APP_PORT":          "8000",
	"PUBLIC_BASE_URL":   "http://127.0.0.1:8000",
	"UPLOAD_DIR":        "uploads",
	"BODY_LIMIT_MB":     "100",
	"CORS_ORIGINS":      "http://localhost,http://localhost:5173",
	"DB_HOST":           "localhost",
	"DB_PORT":           "5432",
	"DB_USER":           "postgres",
	"DB_NAME":           "db_jetsetgo",
	"BLOB_DRIVER":       "disk",
	"CLOUDINARY_FOLDER": "jetsetgo",
	"SMTP_PORT":         "587",
	"DIGEST_HOUR":       "8",
}

// Config returns the value for key from the process environment (after
// loading .env once), falling back to the built-in default.
func Config(key string) string {
	loadOnce.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Println("no .env file found, using system environment")
		}
	})
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return defaults[key]
}

func Int(key string) int {
	v, err := strconv.Atoi(Config(key))
	if err != nil {
		log.Printf("config %s is not a number, using %s", key, defaults[key])
		v, _ = strconv.Atoi(defaults[key])
	}
	return v
}

func List(key string) []string {
	var out []string
	for _, s := range strings.Split(Config(key), ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
