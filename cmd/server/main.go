package main

import (
	"log"
	"os"

	"aircargo-admin-api/config"
	"aircargo-admin-api/internal/account"
	"aircargo-admin-api/internal/auth"
	"aircargo-admin-api/internal/bizconfig"
	"aircargo-admin-api/internal/booking"
	"aircargo-admin-api/internal/customer"
	"aircargo-admin-api/internal/department"
	"aircargo-admin-api/internal/dictionary"
	"aircargo-admin-api/internal/logs"
	"aircargo-admin-api/internal/settlement"
	"aircargo-admin-api/internal/snowflake"
	"aircargo-admin-api/internal/waybill"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg := config.LoadConfig()

	dsn := "host=" + cfg.DBHost +
		" user=" + cfg.DBUser +
		" password=" + cfg.DBPassword +
		" dbname=" + cfg.DBName +
		" port=" + cfg.DBPort +
		" sslmode=disable"

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	idGen, err := snowflake.New(cfg.RegionID, cfg.WorkerID)
	if err != nil {
		log.Fatal("Failed to create id generator:", err)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	logService := &logs.LogService{DB: db, IDGen: idGen}
	logs.RegisterRoutes(r, logService)

	authService := &auth.AuthService{DB: db, Logger: logService}
	auth.RegisterRoutes(r, authService)

	accountService := &account.AccountService{DB: db, IDGen: idGen, Logger: logService}
	account.RegisterRoutes(r, accountService)

	departmentService := &department.DepartmentService{DB: db, IDGen: idGen}
	department.RegisterRoutes(r, departmentService)

	dictionaryService := &dictionary.DictionaryService{DB: db, IDGen: idGen, Logger: logService}
	dictionary.RegisterRoutes(r, dictionaryService)

	customerService := &customer.CustomerService{DB: db, IDGen: idGen}
	customer.RegisterRoutes(r, customerService)

	waybillService := &waybill.WaybillService{DB: db, IDGen: idGen}
	waybill.RegisterRoutes(r, waybillService)

	bookingService := &booking.BookingService{DB: db, IDGen: idGen}
	booking.RegisterRoutes(r, bookingService)

	settlementService := &settlement.SettlementService{DB: db, IDGen: idGen}
	settlement.RegisterRoutes(r, settlementService)

	bizConfigService := &bizconfig.BizConfigService{DB: db, IDGen: idGen}
	bizconfig.RegisterRoutes(r, bizConfigService)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting server on 0.0.0.0:%s ...", port)
	log.Fatal(r.Run("0.0.0.0:" + port))
}
