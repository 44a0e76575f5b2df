package config

import "os"

func Addr() string {
	addr, ok := os.LookupEnv("APP_ADDR")
	if !ok {
		return ":8080"
	}
	return addr
}

func LogFile() string {
	return os.Getenv("APP_LOG_FILE")
}
