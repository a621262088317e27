package main

import (
	"log"
	"net/http"

	"cafeteria-be/internal/api"
	"cafeteria-be/internal/category"
	"cafeteria-be/internal/config"
	"cafeteria-be/internal/db"
	"cafeteria-be/internal/logger"
	"cafeteria-be/internal/menu"
	"cafeteria-be/internal/middleware"
	"cafeteria-be/internal/order"
	"cafeteria-be/internal/payment"
	"cafeteria-be/internal/report"
	"cafeteria-be/internal/table"
	"cafeteria-be/internal/user"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	categoryRepo := category.NewRepository(database)
	categorySvc := category.NewService(categoryRepo)

	menuRepo := menu.NewRepository(database)
	menuSvc := menu.NewService(menuRepo)

	tableRepo := table.NewRepository(database)
	tableSvc := table.NewService(tableRepo, cfg.AppURL)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo)

	paymentRepo := payment.NewRepository(database)
	paymentSvc := payment.NewService(paymentRepo)

	reportRepo := report.NewRepository(database)
	reportSvc := report.NewService(reportRepo)

	router := api.NewRouter(api.Handlers{
		Auth:     api.NewAuthHandler(userSvc),
		Order:    api.NewOrderHandler(orderSvc),
		Payment:  api.NewPaymentHandler(paymentSvc),
		Menu:     api.NewMenuHandler(menuSvc),
		Category: api.NewCategoryHandler(categorySvc),
		Table:    api.NewTableHandler(tableSvc),
		Admin:    api.NewAdminHandler(userSvc, tableSvc, reportSvc),
	})

	handler := logger.RequestIDMiddleware(
		middleware.AuthMiddleware(
			middleware.RateLimitMiddleware(
				logger.LoggingMiddleware(router),
			),
		),
	)

	log.Printf("Cafeteria API running at http://localhost:%s/", cfg.AppPort)
	log.Fatal(http.ListenAndServe(":"+cfg.AppPort, handler))
}
