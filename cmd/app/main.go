package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"shipping/cmd"
	httpin "shipping/internal/adapters/in/http"
	"shipping/internal/adapters/out/email"
	"shipping/internal/adapters/out/postgres/addressrepo"
	"shipping/internal/adapters/out/postgres/catalogrepo"
	"shipping/internal/adapters/out/postgres/notificationrepo"
	"shipping/internal/adapters/out/postgres/shipmentrepo"
	"shipping/internal/core/ports"
	"shipping/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	configs := getConfigs()

	gormDB := mustOpenDatabase(configs)
	mustMigrate(gormDB)

	sender := createSender(configs, logger)

	app := cmd.NewCompositionRoot(configs, gormDB, sender, logger)

	jobManager := jobs.NewJobManager(app.CreateSendPendingNotificationsCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		logger.Error("failed to start jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:     goDotEnvVariable("HTTP_PORT"),
		DBHost:       goDotEnvVariable("DB_HOST"),
		DBPort:       goDotEnvVariable("DB_PORT"),
		DBUser:       goDotEnvVariable("DB_USER"),
		DBPassword:   goDotEnvVariable("DB_PASSWORD"),
		DBName:       goDotEnvVariable("DB_NAME"),
		DBSslMode:    goDotEnvVariable("DB_SSLMODE"),
		SESRegion:    goDotEnvVariable("SES_REGION"),
		SESFromEmail: goDotEnvVariable("SES_FROM_EMAIL"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

// mustMigrate creates the tables this context owns. The users and orders
// tables belong to other bounded contexts and are never migrated here.
func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&addressrepo.AddressDTO{},
		&catalogrepo.MethodDTO{},
		&catalogrepo.ZoneDTO{},
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.TrackingEventDTO{},
		&notificationrepo.NotificationDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func createSender(configs cmd.Config, logger *slog.Logger) ports.NotificationSender {
	if configs.SESRegion == "" || configs.SESFromEmail == "" {
		logger.Info("SES not configured, notifications go to the log")
		return email.NewLogSender(logger)
	}

	sender, err := email.NewSESSender(context.Background(), configs.SESRegion, configs.SESFromEmail)
	if err != nil {
		log.Fatalf("Failed to create SES sender: %v", err)
	}
	return sender
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateAddressCommandHandler(),
		app.CreateUpdateAddressCommandHandler(),
		app.CreateRemoveAddressCommandHandler(),
		app.CreateCreateMethodCommandHandler(),
		app.CreateCreateZoneCommandHandler(),
		app.CreateCreateShipmentCommandHandler(),
		app.CreateUpdateShipmentStatusCommandHandler(),
		app.CreateRemoveShipmentCommandHandler(),
		app.CreateListAddressesQueryHandler(),
		app.CreateGetAddressQueryHandler(),
		app.CreateListMethodsQueryHandler(),
		app.CreateListZonesQueryHandler(),
		app.CreateCalculateRatesQueryHandler(),
		app.CreateGetShipmentQueryHandler(),
		app.CreateTrackShipmentQueryHandler(),
		app.CreateListShipmentsQueryHandler(),
		app.CreateGetShipmentStatsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
