// controllers/order.go
package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"food-delivery-api/models"
	"food-delivery-api/store"
	"food-delivery-api/utils"
)

// OrderController handles order-related requests
type OrderController struct {
	Orders  store.OrderStore
	Users   store.UserStore
	Gateway utils.Gateway
	Email   utils.Mailer
}

// NewOrderController creates a new OrderController
func NewOrderController(orders store.OrderStore, users store.UserStore, gateway utils.Gateway, email utils.Mailer) *OrderController {
	return &OrderController{
		Orders:  orders,
		Users:   users,
		Gateway: gateway,
		Email:   email,
	}
}

// PlaceOrder persists a new order, clears the user's cart and opens a hosted
// checkout session. The three steps are independent calls; an error after the
// insert leaves the order in place.
func (oc *OrderController) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID  string                 `json:"userId"`
		Items   []models.OrderItem     `json:"items"`
		Amount  float64                `json:"amount"`
		Address map[string]interface{} `json:"address"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if req.UserID == "" || len(req.Items) == 0 || req.Amount <= 0 || len(req.Address) == 0 {
		utils.WriteError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	order := &models.Order{
		UserID:    req.UserID,
		Items:     req.Items,
		Amount:    req.Amount,
		Address:   req.Address,
		Payment:   false,
		Status:    models.DefaultStatus,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := oc.Orders.Create(ctx, order); err != nil {
		oc.internalError(w, "PlaceOrder", err)
		return
	}

	if err := oc.Users.ClearCart(ctx, req.UserID); err != nil {
		oc.internalError(w, "PlaceOrder", err)
		return
	}

	sessionURL, err := oc.Gateway.CreateCheckoutSession(ctx, order)
	if err != nil {
		oc.internalError(w, "PlaceOrder", err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, SessionURL: sessionURL})
}

// VerifyOrder reconciles the payment redirect. Only the literal JSON string
// "true" confirms payment; any other present value (booleans included) takes
// the failure branch and deletes the order. The redirect query string is the
// reason this is a string comparison.
func (oc *OrderController) VerifyOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OrderID string          `json:"orderId"`
		Success json.RawMessage `json:"success"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if req.OrderID == "" || len(req.Success) == 0 {
		utils.WriteError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	orderID, err := primitive.ObjectIDFromHex(req.OrderID)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if string(req.Success) == `"true"` {
		if err := oc.Orders.SetPayment(ctx, orderID, true); err != nil {
			oc.internalError(w, "VerifyOrder", err)
			return
		}
		go oc.notifyOrderOwner(orderID, utils.PaymentConfirmedEmail)
		utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Payment Successful"})
		return
	}

	if err := oc.Orders.Delete(ctx, orderID); err != nil {
		oc.internalError(w, "VerifyOrder", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: false, Message: "Payment Failed"})
}

// UserOrders returns the requesting user's orders, most recent first.
func (oc *OrderController) UserOrders(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == "" {
		utils.WriteError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	orders, err := oc.Orders.ByUser(ctx, req.UserID)
	if err != nil {
		oc.internalError(w, "UserOrders", err)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Data: orders})
}

// ListOrders returns every order in the system, most recent first. The userId
// in the body is an authorization input, not a filter: only admins may list.
func (oc *OrderController) ListOrders(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == "" {
		utils.WriteError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, err := oc.Users.ByID(ctx, req.UserID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		oc.internalError(w, "ListOrders", err)
		return
	}
	if err != nil || !user.IsAdmin() {
		utils.WriteError(w, http.StatusForbidden, "Unauthorized access")
		return
	}

	orders, err := oc.Orders.All(ctx)
	if err != nil {
		oc.internalError(w, "ListOrders", err)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Data: orders})
}

// UpdateStatus lets an admin replace an order's status label.
func (oc *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID  string `json:"userId"`
		OrderID string `json:"orderId"`
		Status  string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if req.UserID == "" || req.OrderID == "" || req.Status == "" {
		utils.WriteError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Authorization comes first: non-admins get 403 no matter what the rest
	// of the body looks like.
	user, err := oc.Users.ByID(ctx, req.UserID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		oc.internalError(w, "UpdateStatus", err)
		return
	}
	if err != nil || !user.IsAdmin() {
		utils.WriteError(w, http.StatusForbidden, "Unauthorized access")
		return
	}

	orderID, err := primitive.ObjectIDFromHex(req.OrderID)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	if err := oc.Orders.UpdateStatus(ctx, orderID, req.Status); err != nil {
		oc.internalError(w, "UpdateStatus", err)
		return
	}
	go oc.notifyOrderOwner(orderID, utils.StatusUpdatedEmail)

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Status Updated Successfully"})
}

// notifyOrderOwner sends a best-effort notification mail to the owner of an
// order. Lookup or delivery failures are logged and otherwise ignored.
func (oc *OrderController) notifyOrderOwner(orderID primitive.ObjectID, build func(*models.User, *models.Order) (string, string)) {
	if oc.Email == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	order, err := oc.Orders.ByID(ctx, orderID)
	if err != nil {
		log.WithError(err).Warnf("Could not load order %s for notification", orderID.Hex())
		return
	}
	user, err := oc.Users.ByID(ctx, order.UserID)
	if err != nil {
		log.WithError(err).Warnf("Could not load user %s for notification", order.UserID)
		return
	}

	subject, body := build(user, order)
	if err := oc.Email.SendEmail(user.Email, subject, body); err != nil {
		log.WithError(err).Errorf("Failed to send email to %s", user.Email)
	}
}

func (oc *OrderController) internalError(w http.ResponseWriter, op string, err error) {
	log.WithError(err).Errorf("Error in %s", op)
	utils.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
}
