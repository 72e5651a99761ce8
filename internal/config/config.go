package config

import (
	"log"
	"os"
)

type Config struct {
	Port      string
	DBDSN     string
	LogFile   string
	StoreName string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "billing.db" // sqlite file in project root
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./electromart.log" // default log sink in project root
	}
	store := os.Getenv("STORE_NAME")
	if store == "" {
		store = "INDIA ELECTRONICS MART"
	}

	cfg := Config{Port: port, DBDSN: dsn, LogFile: logFile, StoreName: store}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s STORE_NAME=%s", cfg.Port, cfg.DBDSN, cfg.LogFile, cfg.StoreName)
	return cfg
}
