// main.go
package main

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"food-delivery-api/config"
	"food-delivery-api/controllers"
	"food-delivery-api/middleware"
	"food-delivery-api/routes"
	"food-delivery-api/store"
	"food-delivery-api/utils"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	cfg := config.Load()

	// Connect to MongoDB
	client := utils.ConnectDB(cfg.MongoURI)
	defer func() {
		if err := client.Disconnect(context.TODO()); err != nil {
			log.Fatal(err)
		}
	}()
	db := client.Database(cfg.MongoDB)

	orderStore := store.NewMongoOrderStore(db)
	userStore := store.NewMongoUserStore(db)
	gateway := utils.NewStripeGateway(cfg.StripeSecretKey, cfg.FrontendURL)

	// The mailer is optional; without a token, notifications are skipped.
	var mailer utils.Mailer
	if es := utils.NewEmailService(cfg.PostmarkAPIToken, cfg.EmailSender); es != nil {
		mailer = es
	}

	orderController := controllers.NewOrderController(orderStore, userStore, gateway, mailer)

	// Set up the router
	router := mux.NewRouter()
	router.Use(middleware.LoggingMiddleware)
	routes.RegisterRoutes(router, orderController)

	// Start the server
	log.Infof("Server is running on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}
