package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port        string
	Timezone    string
	DBPath      string
	ProfileCSV  string
	GuideHosts  []string
	StrictAuth  bool
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:       get("PORT", "8080"),
		Timezone:   get("TZ", "America/New_York"),
		DBPath:     get("DB_PATH", "sprout.db"),
		ProfileCSV: get("PROFILE_CSV", "./PlantProfiles.csv"),
		StrictAuth: get("STRICT_AUTH", "false") == "true",
	}
	if hosts := get("GUIDE_HOSTS", "www.almanac.com,extension.umn.edu"); hosts != "" {
		cfg.GuideHosts = strings.Split(hosts, ",")
	}
	log.Printf("[cfg] %+v", cfg)
	return cfg
}
