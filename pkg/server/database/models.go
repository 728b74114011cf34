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

package database

import (
	"time"
)

// Model is the base model definition
type Model struct {
	ID        int       `gorm:"primaryKey" json:"-"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// Client is a model for a client of the store. Clients are created either by
// a server-side submission or by an offline device uploading its local rows.
type Client struct {
	Model
	UUID       string `json:"uuid" gorm:"uniqueIndex;type:text"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Propagated bool   `json:"-" gorm:"default:false;index"`
}

// Product is a model for a sellable product
type Product struct {
	Model
	UUID       string  `json:"uuid" gorm:"uniqueIndex;type:text"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Unit       string  `json:"unit"`
	Propagated bool    `json:"-" gorm:"default:false;index"`
}

// Order is a model for an order header. An order is immutable after creation
// except for its propagated flag, and is always written in the same
// transaction as its line items.
type Order struct {
	Model
	UUID       string          `json:"uuid" gorm:"uniqueIndex;type:text"`
	ClientUUID string          `json:"client_uuid" gorm:"index;type:text"`
	Client     Client          `json:"-" gorm:"foreignKey:ClientUUID;references:UUID"`
	LineItems  []OrderLineItem `json:"-" gorm:"foreignKey:OrderUUID;references:UUID"`
	Total      float64         `json:"total"`
	Date       time.Time       `json:"date"`
	Completed  bool            `json:"completed" gorm:"default:false"`
	Propagated bool            `json:"-" gorm:"default:false;index"`
}

// OrderLineItem is a model for a single product-quantity entry of an order
type OrderLineItem struct {
	Model
	UUID        string `json:"uuid" gorm:"uniqueIndex;type:text"`
	OrderUUID   string `json:"order_uuid" gorm:"index;type:text"`
	ProductUUID string `json:"product_uuid" gorm:"index;type:text"`
	Quantity    int    `json:"quantity"`
	Propagated  bool   `json:"-" gorm:"default:false;index"`
}
