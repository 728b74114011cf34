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
)

// NewSync creates a new Sync controller
func NewSync(app *app.App) *Sync {
	return &Sync{app: app}
}

// Sync is a controller for the pull, acknowledge and upload operations of
// the sync protocol
type Sync struct {
	app *app.App
}

// PullClients handles GET /sync/clients
func (c *Sync) PullClients(w http.ResponseWriter, r *http.Request) {
	clients, err := c.app.GetUndeliveredClients()
	if err != nil {
		handleJSONError(w, err, "getting undelivered clients")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentClients(clients))
}

// PullProducts handles GET /sync/products
func (c *Sync) PullProducts(w http.ResponseWriter, r *http.Request) {
	products, err := c.app.GetUndeliveredProducts()
	if err != nil {
		handleJSONError(w, err, "getting undelivered products")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentProducts(products))
}

// PullOrders handles GET /sync/orders
func (c *Sync) PullOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := c.app.GetUndeliveredOrders()
	if err != nil {
		handleJSONError(w, err, "getting undelivered orders")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentOrders(orders))
}

// PullOrderLineItems handles GET /sync/order-items
func (c *Sync) PullOrderLineItems(w http.ResponseWriter, r *http.Request) {
	items, err := c.app.GetUndeliveredOrderLineItems()
	if err != nil {
		handleJSONError(w, err, "getting undelivered line items")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentOrderLineItems(items))
}

// AckPayload is the payload for acknowledging delivery of pulled records
type AckPayload struct {
	UUIDs []string `schema:"uuids" json:"uuids"`
}

func (c *Sync) acknowledge(w http.ResponseWriter, r *http.Request, mark func([]string) error, msg string) {
	var payload AckPayload
	if err := parseRequestData(r, &payload); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}

	if err := mark(payload.UUIDs); err != nil {
		handleJSONError(w, err, "marking records delivered")
		return
	}

	respondJSON(w, http.StatusOK, MessageResponse{Message: msg})
}

// AckClients handles PUT /sync/clients/ack
func (c *Sync) AckClients(w http.ResponseWriter, r *http.Request) {
	c.acknowledge(w, r, c.app.MarkClientsDelivered, "clients marked as delivered")
}

// AckProducts handles PUT /sync/products/ack
func (c *Sync) AckProducts(w http.ResponseWriter, r *http.Request) {
	c.acknowledge(w, r, c.app.MarkProductsDelivered, "products marked as delivered")
}

// AckOrders handles PUT /sync/orders/ack
func (c *Sync) AckOrders(w http.ResponseWriter, r *http.Request) {
	c.acknowledge(w, r, c.app.MarkOrdersDelivered, "orders marked as delivered")
}

// AckOrderLineItems handles PUT /sync/order-items/ack
func (c *Sync) AckOrderLineItems(w http.ResponseWriter, r *http.Request) {
	c.acknowledge(w, r, c.app.MarkOrderLineItemsDelivered, "line items marked as delivered")
}

// UploadClientRow is an uploaded client row
type UploadClientRow struct {
	UUID  string `json:"uuid"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// UploadClients handles POST /sync/clients
func (c *Sync) UploadClients(w http.ResponseWriter, r *http.Request) {
	var payload []UploadClientRow
	if err := parseRequestData(r, &payload); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}

	batch := make([]app.UploadClientParams, 0, len(payload))
	for _, row := range payload {
		batch = append(batch, app.UploadClientParams{
			UUID:  row.UUID,
			Name:  row.Name,
			Phone: row.Phone,
		})
	}

	if err := c.app.UploadClients(batch); err != nil {
		handleJSONError(w, err, "uploading clients")
		return
	}

	respondJSON(w, http.StatusOK, MessageResponse{Message: "clients uploaded successfully"})
}

// UploadProductRow is an uploaded product row
type UploadProductRow struct {
	UUID  string  `json:"uuid"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Unit  string  `json:"unit"`
}

// UploadProducts handles POST /sync/products
func (c *Sync) UploadProducts(w http.ResponseWriter, r *http.Request) {
	var payload []UploadProductRow
	if err := parseRequestData(r, &payload); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}

	batch := make([]app.UploadProductParams, 0, len(payload))
	for _, row := range payload {
		batch = append(batch, app.UploadProductParams{
			UUID:  row.UUID,
			Name:  row.Name,
			Price: row.Price,
			Unit:  row.Unit,
		})
	}

	if err := c.app.UploadProducts(batch); err != nil {
		handleJSONError(w, err, "uploading products")
		return
	}

	respondJSON(w, http.StatusOK, MessageResponse{Message: "products uploaded successfully"})
}

// UploadOrderRow is an uploaded order header row
type UploadOrderRow struct {
	UUID       string    `json:"uuid"`
	ClientUUID string    `json:"client_uuid"`
	Total      float64   `json:"total"`
	Date       time.Time `json:"date"`
	Completed  bool      `json:"completed"`
}

// UploadOrders handles POST /sync/orders
func (c *Sync) UploadOrders(w http.ResponseWriter, r *http.Request) {
	var payload []UploadOrderRow
	if err := parseRequestData(r, &payload); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}

	batch := make([]app.UploadOrderParams, 0, len(payload))
	for _, row := range payload {
		batch = append(batch, app.UploadOrderParams{
			UUID:       row.UUID,
			ClientUUID: row.ClientUUID,
			Total:      row.Total,
			Date:       row.Date,
			Completed:  row.Completed,
		})
	}

	if err := c.app.UploadOrders(batch); err != nil {
		handleJSONError(w, err, "uploading orders")
		return
	}

	respondJSON(w, http.StatusOK, MessageResponse{Message: "orders uploaded successfully"})
}

// UploadOrderLineItemRow is an uploaded line item row
type UploadOrderLineItemRow struct {
	UUID        string `json:"uuid"`
	OrderUUID   string `json:"order_uuid"`
	ProductUUID string `json:"product_uuid"`
	Quantity    int    `json:"quantity"`
}

// UploadOrderLineItems handles POST /sync/order-items
func (c *Sync) UploadOrderLineItems(w http.ResponseWriter, r *http.Request) {
	var payload []UploadOrderLineItemRow
	if err := parseRequestData(r, &payload); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}

	batch := make([]app.UploadOrderLineItemParams, 0, len(payload))
	for _, row := range payload {
		batch = append(batch, app.UploadOrderLineItemParams{
			UUID:        row.UUID,
			OrderUUID:   row.OrderUUID,
			ProductUUID: row.ProductUUID,
			Quantity:    row.Quantity,
		})
	}

	if err := c.app.UploadOrderLineItems(batch); err != nil {
		handleJSONError(w, err, "uploading line items")
		return
	}

	respondJSON(w, http.StatusOK, MessageResponse{Message: "line items uploaded successfully"})
}
