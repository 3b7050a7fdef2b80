package main

import (
	"fmt"
	"os"

	"ordersvc/cmd"
	httpin "ordersvc/internal/adapters/in/http"
	"ordersvc/internal/adapters/out/postgres/deliveryrepo"
	"ordersvc/internal/adapters/out/postgres/orderrepo"
	"ordersvc/internal/adapters/out/postgres/paymentrepo"
	"ordersvc/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := jobs.NewJobManager(
		app.CreateDispatchDeliveriesCommandHandler(),
		app.Logger(),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	// TranslateError maps driver unique-violation errors onto gorm.ErrDuplicatedKey
	// so the HTTP layer can answer 409 on order number collisions.
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&paymentrepo.PaymentDTO{},
		&deliveryrepo.DeliveryDTO{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateUpdateOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateUpdateOrderPaymentStatusCommandHandler(),
		app.CreateRescheduleDeliveryCommandHandler(),
		app.CreateGetAllOrdersQueryHandler(),
		app.CreateGetOrdersByCustomerQueryHandler(),
		app.CreateCountOrdersQueryHandler(),
		app.CreateSumPaymentsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
