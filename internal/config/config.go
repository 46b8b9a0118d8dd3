package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	Port     string
	DBDSN    string
	LogFile  string
	RadiusKm float64
}

// DefaultRadiusKm bounds proximity discovery when the client sends none.
const DefaultRadiusKm = 100

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "ubishop.db" // sqlite file in project root
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./ubishop.log"
	}
	radius := float64(DefaultRadiusKm)
	if v := os.Getenv("RADIUS_KM"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			radius = f
		} else {
			log.Printf("[warn] ignoring invalid RADIUS_KM=%q", v)
		}
	}

	cfg := Config{Port: port, DBDSN: dsn, LogFile: logFile, RadiusKm: radius}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s RADIUS_KM=%v", cfg.Port, cfg.DBDSN, cfg.LogFile, cfg.RadiusKm)
	return cfg
}
