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
	"github.com/fieldsync/fieldsync/pkg/clock"
	"github.com/fieldsync/fieldsync/pkg/server/notif"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var (
	// ErrEmptyDB is an error for missing database connection in the app configuration
	ErrEmptyDB = errors.New("No database connection was provided")
	// ErrEmptyClock is an error for missing clock in the app configuration
	ErrEmptyClock = errors.New("No clock was provided")
	// ErrEmptyNotifier is an error for missing notification publisher in the app configuration
	ErrEmptyNotifier = errors.New("No notification publisher was provided")
)

var (
	// ErrClientNameRequired is an error for creating a client without a name
	ErrClientNameRequired = errors.New("name is required")
	// ErrProductNameRequired is an error for creating a product without a name
	ErrProductNameRequired = errors.New("name is required")
	// ErrInvalidPrice is an error for a negative product price
	ErrInvalidPrice = errors.New("price must not be negative")
	// ErrClientRequired is an error for creating an order without a client reference
	ErrClientRequired = errors.New("client is required")
	// ErrInvalidTotal is an error for a negative order total
	ErrInvalidTotal = errors.New("total must not be negative")
	// ErrEmptyOrder is an error for creating an order without line items
	ErrEmptyOrder = errors.New("order must have at least one product")
	// ErrProductRequired is an error for a line item without a product reference
	ErrProductRequired = errors.New("product is required")
	// ErrInvalidQuantity is an error for a line item with a non-positive quantity
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
	// ErrEmptyBatch is an error for a sync operation with an empty batch
	ErrEmptyBatch = errors.New("batch is empty")
	// ErrUUIDRequired is an error for an uploaded row without an identity
	ErrUUIDRequired = errors.New("uuid is required")
	// ErrClientNotFound is an error for a reference to a nonexistent client
	ErrClientNotFound = errors.New("client not found")
	// ErrProductNotFound is an error for a reference to a nonexistent product
	ErrProductNotFound = errors.New("product not found")
	// ErrOrderNotFound is an error for a reference to a nonexistent order
	ErrOrderNotFound = errors.New("order not found")
)

// App is an application context
type App struct {
	DB       *gorm.DB
	Clock    clock.Clock
	Notifier notif.Publisher
	Port     string
	DBPath   string
}

// Validate validates the app configuration
func (a *App) Validate() error {
	if a.DB == nil {
		return ErrEmptyDB
	}
	if a.Clock == nil {
		return ErrEmptyClock
	}
	if a.Notifier == nil {
		return ErrEmptyNotifier
	}

	return nil
}
