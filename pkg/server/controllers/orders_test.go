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
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/fieldsync/fieldsync/pkg/assert"
	"github.com/fieldsync/fieldsync/pkg/server/app"
	"github.com/fieldsync/fieldsync/pkg/server/database"
	"github.com/fieldsync/fieldsync/pkg/server/presenters"
	"github.com/fieldsync/fieldsync/pkg/server/testutils"
	"github.com/pkg/errors"
)

func TestCreateOrder(t *testing.T) {
	db := testutils.InitMemoryDB(t)

	// Setup
	a := app.NewTest()
	a.DB = db
	server := MustNewServer(t, &a)
	defer server.Close()

	client := testutils.SetupClientData(db, "corner store", "555-0101")
	p1 := testutils.SetupProductData(db, "flour", 2.5, "kg")
	p2 := testutils.SetupProductData(db, "sugar", 1.8, "kg")

	// Execute
	body := fmt.Sprintf(`{
		"client_uuid": %q,
		"total": 10.4,
		"products": [
			{"product_uuid": %q, "quantity": 2},
			{"product_uuid": %q, "quantity": 3}
		]
	}`, client.UUID, p1.UUID, p2.UUID)

	req := testutils.MakeReq(server.URL, "POST", "/orders", body)
	res := testutils.HTTPDo(t, req)

	// Test
	assert.StatusCodeEquals(t, res, http.StatusCreated, "")

	var payload CreateOrderResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		t.Fatal(errors.Wrap(err, "decoding payload"))
	}
	assert.Equal(t, payload.Message, "order created successfully", "message mismatch")
	assert.NotEqual(t, payload.UUID, "", "UUID should have been generated")

	var orderCount, itemCount int64
	testutils.MustExec(t, db.Model(&database.Order{}).Count(&orderCount), "counting orders")
	testutils.MustExec(t, db.Model(&database.OrderLineItem{}).Count(&itemCount), "counting line items")
	assert.Equalf(t, orderCount, int64(1), "order count mismatch")
	assert.Equalf(t, itemCount, int64(2), "line item count mismatch")

	var orderRecord database.Order
	testutils.MustExec(t, db.Where("uuid = ?", payload.UUID).First(&orderRecord), "finding order")
	assert.Equal(t, orderRecord.ClientUUID, client.UUID, "ClientUUID mismatch")
	assert.Equal(t, orderRecord.Total, 10.4, "Total mismatch")
	assert.Equal(t, orderRecord.Propagated, false, "Propagated mismatch")

	var itemRecords []database.OrderLineItem
	testutils.MustExec(t, db.Where("order_uuid = ?", payload.UUID).Order("created_at ASC").Find(&itemRecords), "finding line items")
	assert.Equal(t, itemRecords[0].ProductUUID, p1.UUID, "item 0 ProductUUID mismatch")
	assert.Equal(t, itemRecords[0].Quantity, 2, "item 0 Quantity mismatch")
	assert.Equal(t, itemRecords[1].ProductUUID, p2.UUID, "item 1 ProductUUID mismatch")
	assert.Equal(t, itemRecords[1].Quantity, 3, "item 1 Quantity mismatch")
}

func TestCreateOrder_EmptyProducts(t *testing.T) {
	db := testutils.InitMemoryDB(t)

	// Setup
	a := app.NewTest()
	a.DB = db
	server := MustNewServer(t, &a)
	defer server.Close()

	client := testutils.SetupClientData(db, "corner store", "555-0101")

	// Execute
	body := fmt.Sprintf(`{"client_uuid": %q, "total": 10.4, "products": []}`, client.UUID)
	req := testutils.MakeReq(server.URL, "POST", "/orders", body)
	res := testutils.HTTPDo(t, req)

	// Test
	assert.StatusCodeEquals(t, res, http.StatusBadRequest, "")

	var orderCount, itemCount int64
	testutils.MustExec(t, db.Model(&database.Order{}).Count(&orderCount), "counting orders")
	testutils.MustExec(t, db.Model(&database.OrderLineItem{}).Count(&itemCount), "counting line items")
	assert.Equalf(t, orderCount, int64(0), "order count mismatch")
	assert.Equalf(t, itemCount, int64(0), "line item count mismatch")
}

func TestCreateOrder_UnknownClient(t *testing.T) {
	db := testutils.InitMemoryDB(t)

	// Setup
	a := app.NewTest()
	a.DB = db
	server := MustNewServer(t, &a)
	defer server.Close()

	p1 := testutils.SetupProductData(db, "flour", 2.5, "kg")

	// Execute
	body := fmt.Sprintf(`{
		"client_uuid": %q,
		"total": 5.0,
		"products": [{"product_uuid": %q, "quantity": 2}]
	}`, testutils.MustUUID(t), p1.UUID)

	req := testutils.MakeReq(server.URL, "POST", "/orders", body)
	res := testutils.HTTPDo(t, req)

	// Test
	assert.StatusCodeEquals(t, res, http.StatusBadRequest, "")

	var orderCount int64
	testutils.MustExec(t, db.Model(&database.Order{}).Count(&orderCount), "counting orders")
	assert.Equalf(t, orderCount, int64(0), "order count mismatch")
}

func TestGetOrders(t *testing.T) {
	db := testutils.InitMemoryDB(t)

	// Setup
	a := app.NewTest()
	a.DB = db
	server := MustNewServer(t, &a)
	defer server.Close()

	client := testutils.SetupClientData(db, "corner store", "555-0101")
	o1 := testutils.SetupOrderData(db, client, 10.4)

	// Execute
	req := testutils.MakeReq(server.URL, "GET", "/orders", "")
	res := testutils.HTTPDo(t, req)

	// Test
	assert.StatusCodeEquals(t, res, http.StatusOK, "")

	var payload []presenters.Order
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		t.Fatal(errors.Wrap(err, "decoding payload"))
	}

	assert.Equalf(t, len(payload), 1, "payload length mismatch")
	assert.Equal(t, payload[0].UUID, o1.UUID, "UUID mismatch")
	assert.Equal(t, payload[0].ClientUUID, client.UUID, "ClientUUID mismatch")
	assert.Equal(t, payload[0].Total, 10.4, "Total mismatch")
}

func TestGetOrderItems(t *testing.T) {
	db := testutils.InitMemoryDB(t)

	// Setup
	a := app.NewTest()
	a.DB = db
	server := MustNewServer(t, &a)
	defer server.Close()

	client := testutils.SetupClientData(db, "corner store", "555-0101")
	product := testutils.SetupProductData(db, "flour", 2.5, "kg")
	order := testutils.SetupOrderData(db, client, 5.0)

	item := database.OrderLineItem{
		UUID:        testutils.MustUUID(t),
		OrderUUID:   order.UUID,
		ProductUUID: product.UUID,
		Quantity:    2,
	}
	testutils.MustExec(t, db.Save(&item), "preparing line item")

	// Execute
	req := testutils.MakeReq(server.URL, "GET", fmt.Sprintf("/orders/%s/items", order.UUID), "")
	res := testutils.HTTPDo(t, req)

	// Test
	assert.StatusCodeEquals(t, res, http.StatusOK, "")

	var payload []presenters.OrderLineItem
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		t.Fatal(errors.Wrap(err, "decoding payload"))
	}

	assert.Equalf(t, len(payload), 1, "payload length mismatch")
	assert.Equal(t, payload[0].UUID, item.UUID, "UUID mismatch")
	assert.Equal(t, payload[0].OrderUUID, order.UUID, "OrderUUID mismatch")
	assert.Equal(t, payload[0].ProductUUID, product.UUID, "ProductUUID mismatch")
	assert.Equal(t, payload[0].Quantity, 2, "Quantity mismatch")
}

func TestGetOrderItems_NotFound(t *testing.T) {
	db := testutils.InitMemoryDB(t)

	// Setup
	a := app.NewTest()
	a.DB = db
	server := MustNewServer(t, &a)
	defer server.Close()

	// Execute
	req := testutils.MakeReq(server.URL, "GET", fmt.Sprintf("/orders/%s/items", testutils.MustUUID(t)), "")
	res := testutils.HTTPDo(t, req)

	// Test
	assert.StatusCodeEquals(t, res, http.StatusNotFound, "")
}
