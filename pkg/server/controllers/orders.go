/* Copyright 2025 Fieldsync Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package controllers

import (
	"net/http"
	"time"

	"github.com/fieldsync/fieldsync/pkg/server/app"
	"github.com/fieldsync/fieldsync/pkg/server/presenters"
	"github.com/gorilla/mux"
	pkgErrors "github.com/pkg/errors"
)

// NewOrders creates a new Orders controller
func NewOrders(app *app.App) *Orders {
	return &Orders{app: app}
}

// Orders is an orders controller
type Orders struct {
	app *app.App
}

// Index handles GET /orders
func (c *Orders) Index(w http.ResponseWriter, r *http.Request) {
	orders, err := c.app.GetOrders()
	if err != nil {
		handleJSONError(w, err, "getting orders")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentOrders(orders))
}

// OrderItemPayload is a product-quantity entry of an order creation payload
type OrderItemPayload struct {
	ProductUUID string `json:"product_uuid"`
	Quantity    int    `json:"quantity"`
}

// CreateOrderPayload is the payload for creating an order
type CreateOrderPayload struct {
	ClientUUID string             `json:"client_uuid"`
	Total      float64            `json:"total"`
	Date       *time.Time         `json:"date"`
	Products   []OrderItemPayload `json:"products"`
}

// CreateOrderResponse is the response body of a successful order creation
type CreateOrderResponse struct {
	UUID    string `json:"uuid"`
	Message string `json:"message"`
}

// Create handles POST /orders
func (c *Orders) Create(w http.ResponseWriter, r *http.Request) {
	var payload CreateOrderPayload
	if err := parseRequestData(r, &payload); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}

	items := make([]app.OrderItemParams, 0, len(payload.Products))
	for _, item := range payload.Products {
		items = append(items, app.OrderItemParams{
			ProductUUID: item.ProductUUID,
			Quantity:    item.Quantity,
		})
	}

	order, err := c.app.CreateOrder(app.CreateOrderParams{
		ClientUUID: payload.ClientUUID,
		Total:      payload.Total,
		Date:       payload.Date,
		Items:      items,
	})
	if err != nil {
		handleJSONError(w, err, "creating order")
		return
	}

	respondJSON(w, http.StatusCreated, CreateOrderResponse{
		UUID:    order.UUID,
		Message: "order created successfully",
	})
}

// Items handles GET /orders/{orderUUID}/items
func (c *Orders) Items(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	orderUUID := vars["orderUUID"]

	items, err := c.app.GetOrderLineItems(orderUUID)
	if err != nil {
		if pkgErrors.Cause(err) == app.ErrOrderNotFound {
			respondJSON(w, http.StatusNotFound, ErrorResponse{Message: "order not found"})
			return
		}

		handleJSONError(w, err, "getting line items")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentOrderLineItems(items))
}
