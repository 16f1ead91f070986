package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"picante/cmd"
	httpin "picante/internal/adapters/in/http"
	"picante/internal/adapters/out/postgres/deliveryrepo"
	"picante/internal/adapters/out/postgres/orderrepo"
	"picante/internal/adapters/out/postgres/productrepo"
	"picante/internal/adapters/out/postgres/tablerepo"
	"picante/internal/jobs"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDatabase(configs)
	mustMigrate(gormDB)
	mustSeed(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	kitchenLoadJob := jobs.NewKitchenLoadJob(gormDB, logger)
	if err := kitchenLoadJob.Start(); err != nil {
		log.Fatalf("Error starting kitchen load job: %v", err)
	}
	defer kitchenLoadJob.Stop()

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

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&tablerepo.TableDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&deliveryrepo.DeliveryOrderDTO{},
		&deliveryrepo.DeliveryOrderItemDTO{},
		&productrepo.ProductDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

// mustSeed inserts the initial floor plan and menu on an empty database.
func mustSeed(gormDB *gorm.DB) {
	var tableCount int64
	if err := gormDB.Model(&tablerepo.TableDTO{}).Count(&tableCount).Error; err != nil {
		log.Fatalf("Error counting tables: %v", err)
	}

	if tableCount == 0 {
		seedTables := []tablerepo.TableDTO{
			{Name: "Mesa 1 (Ventana)", Capacity: 2, Status: "AVAILABLE"},
			{Name: "Mesa 2 (Centro)", Capacity: 4, Status: "AVAILABLE"},
			{Name: "Mesa 3 (Barra)", Capacity: 2, Status: "AVAILABLE"},
			{Name: "Mesa 4 (Terraza)", Capacity: 6, Status: "AVAILABLE"},
		}
		if err := gormDB.Create(&seedTables).Error; err != nil {
			log.Fatalf("Error seeding tables: %v", err)
		}
	}

	var productCount int64
	if err := gormDB.Model(&productrepo.ProductDTO{}).Count(&productCount).Error; err != nil {
		log.Fatalf("Error counting products: %v", err)
	}

	if productCount == 0 {
		price := func(v float64) *float64 { return &v }
		seedProducts := []productrepo.ProductDTO{
			{Name: "Lomo Saltado", Price: price(25.0), Description: "Salteado de res con papas fritas y arroz", Available: true},
			{Name: "Causa Limena", Price: price(15.0), Description: "Papa amarilla prensada rellena de pollo", Available: true},
			{Name: "Aji de Gallina", Price: price(22.0), Description: "Pollo deshilachado en crema de aji amarillo", Available: true},
			{Name: "Ceviche Clasico", Price: price(28.0), Description: "Pescado del dia en leche de tigre", Available: true},
			{Name: "Chicha Morada", Price: price(8.0), Description: "Bebida de maiz morado", Available: true},
			{Name: "Suspiro Limeno", Price: price(12.0), Description: "Manjar blanco con merengue al oporto", Available: true},
		}
		if err := gormDB.Create(&seedProducts).Error; err != nil {
			log.Fatalf("Error seeding products: %v", err)
		}
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateOccupyTableCommandHandler(),
		app.CreateConfirmTableOrderCommandHandler(),
		app.CreateSendTableToKitchenCommandHandler(),
		app.CreateStartPreparationCommandHandler(),
		app.CreateMarkTableReadyCommandHandler(),
		app.CreateServeTableCommandHandler(),
		app.CreateRequestBillCommandHandler(),
		app.CreatePayTableCommandHandler(),
		app.CreateFreeTableCommandHandler(),
		app.CreateCancelTableOrderCommandHandler(),
		app.CreateCreateDeliveryOrderCommandHandler(),
		app.CreateUpdateDeliveryStatusCommandHandler(),
		app.CreateSendDeliveryToKitchenCommandHandler(),
		app.CreateGetAllTablesQueryHandler(),
		app.CreateGetTableOrderQueryHandler(),
		app.CreateGetCompletedOrdersQueryHandler(),
		app.CreateGetDeliveryOrderQueryHandler(),
		app.CreateGetAllDeliveryOrdersQueryHandler(),
		app.CreateGetDeliveryOrdersByStatusQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
