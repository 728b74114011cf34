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

package app

import (
	"fmt"
	"time"

	"github.com/fieldsync/fieldsync/pkg/server/database"
	"github.com/fieldsync/fieldsync/pkg/server/helpers"
	"github.com/fieldsync/fieldsync/pkg/server/notif"
	pkgErrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

// OrderItemParams is a product-quantity entry of an order creation request
type OrderItemParams struct {
	ProductUUID string
	Quantity    int
}

// CreateOrderParams is the parameters for creating an order
type CreateOrderParams struct {
	ClientUUID string
	Total      float64
	Date       *time.Time
	Items      []OrderItemParams
}

func validateCreateOrderParams(p CreateOrderParams) error {
	if p.ClientUUID == "" {
		return ErrClientRequired
	}
	if p.Total < 0 {
		return ErrInvalidTotal
	}
	if len(p.Items) == 0 {
		return ErrEmptyOrder
	}

	for idx, item := range p.Items {
		if item.ProductUUID == "" {
			return pkgErrors.Wrapf(ErrProductRequired, "item %d", idx)
		}
		if item.Quantity <= 0 {
			return pkgErrors.Wrapf(ErrInvalidQuantity, "item %d", idx)
		}
	}

	return nil
}

// CreateOrder creates an order header along with all of its line items in a
// single transaction, then publishes a new order notification. The order and
// its line items become visible together or not at all.
func (a *App) CreateOrder(p CreateOrderParams) (database.Order, error) {
	if err := validateCreateOrderParams(p); err != nil {
		return database.Order{}, err
	}

	var orderDate time.Time
	if p.Date == nil {
		orderDate = a.Clock.Now()
	} else {
		orderDate = *p.Date
	}

	tx := a.DB.Begin()

	var client database.Client
	err := tx.Where("uuid = ?", p.ClientUUID).First(&client).Error
	if err == gorm.ErrRecordNotFound {
		tx.Rollback()
		return database.Order{}, ErrClientNotFound
	}
	if err != nil {
		tx.Rollback()
		return database.Order{}, pkgErrors.Wrap(err, "finding client")
	}

	orderUUID, err := helpers.GenUUID()
	if err != nil {
		tx.Rollback()
		return database.Order{}, err
	}

	order := database.Order{
		UUID:       orderUUID,
		ClientUUID: p.ClientUUID,
		Total:      p.Total,
		Date:       orderDate,
	}
	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		return order, pkgErrors.Wrap(err, "inserting order")
	}

	for idx, item := range p.Items {
		var count int64
		if err := tx.Model(&database.Product{}).Where("uuid = ?", item.ProductUUID).Count(&count).Error; err != nil {
			tx.Rollback()
			return order, pkgErrors.Wrapf(err, "finding product for item %d", idx)
		}
		if count == 0 {
			tx.Rollback()
			return order, pkgErrors.Wrapf(ErrProductNotFound, "item %d", idx)
		}

		itemUUID, err := helpers.GenUUID()
		if err != nil {
			tx.Rollback()
			return order, err
		}

		lineItem := database.OrderLineItem{
			UUID:        itemUUID,
			OrderUUID:   orderUUID,
			ProductUUID: item.ProductUUID,
			Quantity:    item.Quantity,
		}
		if err := tx.Create(&lineItem).Error; err != nil {
			tx.Rollback()
			return order, pkgErrors.Wrapf(err, "inserting line item %d", idx)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return order, pkgErrors.Wrap(err, "committing order")
	}

	a.Notifier.Publish(notif.TopicNewOrders, notif.Notification{
		Title: "New Order",
		Body:  fmt.Sprintf("A new order was created with ID %s", orderUUID),
	})

	return order, nil
}

// GetOrders returns all orders
func (a *App) GetOrders() ([]database.Order, error) {
	orders := []database.Order{}
	if err := a.DB.Order("date ASC").Find(&orders).Error; err != nil {
		return nil, pkgErrors.Wrap(err, "finding orders")
	}

	return orders, nil
}

// GetOrderLineItems returns the line items of the order with the given uuid
func (a *App) GetOrderLineItems(orderUUID string) ([]database.OrderLineItem, error) {
	var count int64
	if err := a.DB.Model(&database.Order{}).Where("uuid = ?", orderUUID).Count(&count).Error; err != nil {
		return nil, pkgErrors.Wrap(err, "finding order")
	}
	if count == 0 {
		return nil, ErrOrderNotFound
	}

	items := []database.OrderLineItem{}
	if err := a.DB.Where("order_uuid = ?", orderUUID).Find(&items).Error; err != nil {
		return nil, pkgErrors.Wrap(err, "finding line items")
	}

	return items, nil
}
