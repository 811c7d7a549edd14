package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"localcrust/cmd"
	lchttp "localcrust/internal/adapters/in/http"
	"localcrust/internal/adapters/out/postgres/bakerrepo"
	"localcrust/internal/adapters/out/postgres/customerrepo"
	"localcrust/internal/adapters/out/postgres/notificationrepo"
	"localcrust/internal/adapters/out/postgres/orderrepo"
	"localcrust/internal/adapters/out/postgres/productrepo"
	"localcrust/internal/adapters/out/postgres/reviewrepo"
	"localcrust/internal/adapters/out/postgres/wishlistrepo"
	"localcrust/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := connectDB(configs)
	migrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	paymentWindow, err := time.ParseDuration(configs.StalePaymentWindow)
	if err != nil {
		log.Fatalf("Invalid STALE_PAYMENT_WINDOW: %v", err)
	}

	jobManager := jobs.NewJobManager(
		app.CreateCancelStaleOrdersCommandHandler(), paymentWindow, logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	server := lchttp.NewServer(app.HTTPHandlers(), app.TokenIssuer(), lchttp.AdminCredentials{
		Email:        configs.AdminEmail,
		PasswordHash: configs.AdminPasswordHash,
	})

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	server.RegisterRoutes(e)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		jobManager.StopAll()
		if closeErr := app.Publisher().Close(); closeErr != nil {
			logger.Error("Failed to close Kafka publisher", "error", closeErr)
		}
		_ = e.Close()
	}()

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		KafkaBrokers:       goDotEnvVariable("KAFKA_BROKERS"),
		RedisAddr:          goDotEnvVariable("REDIS_ADDR"),
		RazorpayKeyID:      goDotEnvVariable("RAZORPAY_KEY_ID"),
		RazorpayKeySecret:  goDotEnvVariable("RAZORPAY_KEY_SECRET"),
		TokenSecret:        goDotEnvVariable("TOKEN_SECRET"),
		StalePaymentWindow: goDotEnvVariable("STALE_PAYMENT_WINDOW"),
		AdminEmail:         goDotEnvVariable("ADMIN_EMAIL"),
		AdminPasswordHash:  goDotEnvVariable("ADMIN_PASSWORD_HASH"),
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

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func migrateDB(db *gorm.DB) {
	err := db.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&bakerrepo.BakerDTO{},
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&reviewrepo.ReviewDTO{},
		&notificationrepo.NotificationDTO{},
		&wishlistrepo.WishlistItemDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}
