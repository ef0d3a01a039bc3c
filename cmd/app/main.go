package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"rateshop/cmd"
	httpadapter "rateshop/internal/adapters/in/http"
	"rateshop/internal/adapters/out/postgres/quoterepo"
	"rateshop/internal/adapters/out/postgres/selectionrepo"
	"rateshop/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := connectDB(configs)

	app := cmd.NewCompositionRoot(configs, db)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreatePurgeExpiredQuotesCommandHandler(), configs.QuoteTTL, logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	quoteTTL, err := time.ParseDuration(goDotEnvVariable("QUOTE_TTL"))
	if err != nil {
		quoteTTL = 30 * time.Minute
	}

	config := cmd.Config{
		HTTPPort:        goDotEnvVariable("HTTP_PORT"),
		DBHost:          goDotEnvVariable("DB_HOST"),
		DBPort:          goDotEnvVariable("DB_PORT"),
		DBUser:          goDotEnvVariable("DB_USER"),
		DBPassword:      goDotEnvVariable("DB_PASSWORD"),
		DBName:          goDotEnvVariable("DB_NAME"),
		DBSslMode:       goDotEnvVariable("DB_SSLMODE"),
		RateProvider:    goDotEnvVariable("RATE_PROVIDER"),
		CanonicalSource: goDotEnvVariable("CANONICAL_RATE_SOURCE"),
		QuoteTTL:        quoteTTL,
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	if err = db.AutoMigrate(&quoterepo.QuoteDTO{}, &selectionrepo.SelectionDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		app.CreateFetchRatesCommandHandler(),
		app.CreateSelectRateCommandHandler(),
		app.CreateGetRateViewQueryHandler(),
		app.CreateGetActiveSelectionQueryHandler(),
		app.CreateResolveDimensionsQueryHandler(),
		app.CreateClassifyVolumeQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
