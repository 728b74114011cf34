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

package presenters

import (
	"time"

	"github.com/fieldsync/fieldsync/pkg/server/database"
)

// Order is a result of PresentOrders
type Order struct {
	UUID       string    `json:"uuid"`
	ClientUUID string    `json:"client_uuid"`
	Total      float64   `json:"total"`
	Date       time.Time `json:"date"`
	Completed  bool      `json:"completed"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// PresentOrder presents an order
func PresentOrder(order database.Order) Order {
	return Order{
		UUID:       order.UUID,
		ClientUUID: order.ClientUUID,
		Total:      order.Total,
		Date:       FormatTS(order.Date),
		Completed:  order.Completed,
		CreatedAt:  FormatTS(order.CreatedAt),
		UpdatedAt:  FormatTS(order.UpdatedAt),
	}
}

// PresentOrders presents orders
func PresentOrders(orders []database.Order) []Order {
	ret := []Order{}

	for _, order := range orders {
		ret = append(ret, PresentOrder(order))
	}

	return ret
}

// OrderLineItem is a result of PresentOrderLineItems
type OrderLineItem struct {
	UUID        string    `json:"uuid"`
	OrderUUID   string    `json:"order_uuid"`
	ProductUUID string    `json:"product_uuid"`
	Quantity    int       `json:"quantity"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PresentOrderLineItem presents a line item
func PresentOrderLineItem(item database.OrderLineItem) OrderLineItem {
	return OrderLineItem{
		UUID:        item.UUID,
		OrderUUID:   item.OrderUUID,
		ProductUUID: item.ProductUUID,
		Quantity:    item.Quantity,
		CreatedAt:   FormatTS(item.CreatedAt),
		UpdatedAt:   FormatTS(item.UpdatedAt),
	}
}

// PresentOrderLineItems presents line items
func PresentOrderLineItems(items []database.OrderLineItem) []OrderLineItem {
	ret := []OrderLineItem{}

	for _, item := range items {
		ret = append(ret, PresentOrderLineItem(item))
	}

	return ret
}
