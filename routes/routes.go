// routes/routes.go
package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"food-delivery-api/controllers"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, orderController *controllers.OrderController) {
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}).Methods("GET")

	// Order routes
	order := router.PathPrefix("/api/order").Subrouter()
	order.HandleFunc("/place-order", orderController.PlaceOrder).Methods("POST")
	order.HandleFunc("/verify-order", orderController.VerifyOrder).Methods("POST")
	order.HandleFunc("/user-orders", orderController.UserOrders).Methods("POST")
	order.HandleFunc("/list-orders", orderController.ListOrders).Methods("POST")
	order.HandleFunc("/update-status", orderController.UpdateStatus).Methods("POST")
}
