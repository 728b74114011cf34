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

// Package testutils provides utilities used in tests
package testutils

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fieldsync/fieldsync/pkg/server/database"
	"github.com/fieldsync/fieldsync/pkg/server/helpers"
	"github.com/fieldsync/fieldsync/pkg/server/notif"
	"github.com/pkg/errors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitMemoryDB creates an in-memory SQLite database with the schema initialized
func InitMemoryDB(t *testing.T) *gorm.DB {
	// Use file-based in-memory database with unique UUID per test to avoid sharing
	uuid, err := helpers.GenUUID()
	if err != nil {
		t.Fatalf("failed to generate UUID for test database: %v", err)
	}
	dbName := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid)
	db, err := gorm.Open(sqlite.Open(dbName), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}

	database.InitSchema(db)

	return db
}

// MustUUID generates a UUID and fails the test on error
func MustUUID(t *testing.T) string {
	uuid, err := helpers.GenUUID()
	if err != nil {
		t.Fatal(errors.Wrap(err, "Failed to generate UUID"))
	}
	return uuid
}

// MustExec fails the test if the given database query has error
func MustExec(t *testing.T, db *gorm.DB, message string) {
	if err := db.Error; err != nil {
		t.Fatalf("%s: %s", message, err.Error())
	}
}

// SetupClientData creates and returns a new client for testing purposes
func SetupClientData(db *gorm.DB, name, phone string) database.Client {
	uuid, err := helpers.GenUUID()
	if err != nil {
		panic(errors.Wrap(err, "Failed to generate UUID"))
	}

	client := database.Client{
		UUID:  uuid,
		Name:  name,
		Phone: phone,
	}
	if err := db.Save(&client).Error; err != nil {
		panic(errors.Wrap(err, "Failed to prepare client"))
	}

	return client
}

// SetupProductData creates and returns a new product for testing purposes
func SetupProductData(db *gorm.DB, name string, price float64, unit string) database.Product {
	uuid, err := helpers.GenUUID()
	if err != nil {
		panic(errors.Wrap(err, "Failed to generate UUID"))
	}

	product := database.Product{
		UUID:  uuid,
		Name:  name,
		Price: price,
		Unit:  unit,
	}
	if err := db.Save(&product).Error; err != nil {
		panic(errors.Wrap(err, "Failed to prepare product"))
	}

	return product
}

// SetupOrderData creates and returns a new order for testing purposes
func SetupOrderData(db *gorm.DB, client database.Client, total float64) database.Order {
	uuid, err := helpers.GenUUID()
	if err != nil {
		panic(errors.Wrap(err, "Failed to generate UUID"))
	}

	order := database.Order{
		UUID:       uuid,
		ClientUUID: client.UUID,
		Total:      total,
		Date:       time.Date(2024, time.March, 12, 9, 0, 0, 0, time.UTC),
	}
	if err := db.Save(&order).Error; err != nil {
		panic(errors.Wrap(err, "Failed to prepare order"))
	}

	return order
}

// HTTPDo makes an HTTP request and returns a response
func HTTPDo(t *testing.T, req *http.Request) *http.Response {
	hc := http.Client{}

	res, err := hc.Do(req)
	if err != nil {
		t.Fatal(errors.Wrap(err, "performing http request"))
	}

	return res
}

// MakeReq makes an HTTP request and returns a response
func MakeReq(endpoint string, method, path, data string) *http.Request {
	u := fmt.Sprintf("%s%s", endpoint, path)

	req, err := http.NewRequest(method, u, strings.NewReader(data))
	if err != nil {
		panic(errors.Wrap(err, "constructing http request"))
	}

	if data != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	return req
}

// PublishedNotification is a notification recorded by the mock notifier
type PublishedNotification struct {
	Topic        string
	Notification notif.Notification
}

// MockNotifier is a notification publisher that records notifications
// instead of delivering them
type MockNotifier struct {
	mu        sync.Mutex
	Published []PublishedNotification
}

// Publish implements notif.Publisher by recording the notification
func (m *MockNotifier) Publish(topic string, n notif.Notification) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Published = append(m.Published, PublishedNotification{
		Topic:        topic,
		Notification: n,
	})
}

// PublishedCount returns the number of recorded notifications
func (m *MockNotifier) PublishedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.Published)
}
