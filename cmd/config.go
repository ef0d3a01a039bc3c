package cmd

import "time"

type Config struct {
	HTTPPort        string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBSslMode       string
	RateProvider    string
	CanonicalSource string
	QuoteTTL        time.Duration
}
