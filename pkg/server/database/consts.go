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

const (
	// TableClients is the table name for the Client model
	TableClients = "clients"
	// TableProducts is the table name for the Product model
	TableProducts = "products"
	// TableOrders is the table name for the Order model
	TableOrders = "orders"
	// TableOrderLineItems is the table name for the OrderLineItem model
	TableOrderLineItems = "order_line_items"
)
