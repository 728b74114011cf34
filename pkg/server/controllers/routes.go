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

	"github.com/fieldsync/fieldsync/pkg/server/app"
	mw "github.com/fieldsync/fieldsync/pkg/server/middleware"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

// Route represents a single route
type Route struct {
	Method    string
	Pattern   string
	Handler   http.HandlerFunc
	RateLimit bool
}

// RouteConfig is the configuration for routes
type RouteConfig struct {
	Controllers *Controllers
	Routes      []Route
}

// NewRoutes returns the routes of the server
func NewRoutes(a *app.App, c *Controllers) []Route {
	return []Route{
		{"GET", "/health", c.Health.Index, true},

		{"GET", "/clients", c.Clients.Index, true},
		{"POST", "/clients", c.Clients.Create, true},
		{"GET", "/products", c.Products.Index, true},
		{"POST", "/products", c.Products.Create, true},
		{"GET", "/orders", c.Orders.Index, true},
		{"POST", "/orders", c.Orders.Create, true},
		{"GET", "/orders/{orderUUID}/items", c.Orders.Items, true},

		// sync endpoints are polled by field devices and are not rate limited
		{"GET", "/sync/clients", c.Sync.PullClients, false},
		{"PUT", "/sync/clients/ack", c.Sync.AckClients, false},
		{"POST", "/sync/clients", c.Sync.UploadClients, false},
		{"GET", "/sync/products", c.Sync.PullProducts, false},
		{"PUT", "/sync/products/ack", c.Sync.AckProducts, false},
		{"POST", "/sync/products", c.Sync.UploadProducts, false},
		{"GET", "/sync/orders", c.Sync.PullOrders, false},
		{"PUT", "/sync/orders/ack", c.Sync.AckOrders, false},
		{"POST", "/sync/orders", c.Sync.UploadOrders, false},
		{"GET", "/sync/order-items", c.Sync.PullOrderLineItems, false},
		{"PUT", "/sync/order-items/ack", c.Sync.AckOrderLineItems, false},
		{"POST", "/sync/order-items", c.Sync.UploadOrderLineItems, false},
	}
}

func registerRoutes(router *mux.Router, wrapper mw.Middleware, app *app.App, routes []Route) {
	for _, route := range routes {
		wrappedHandler := wrapper(route.Handler, app, route.RateLimit)

		router.
			Handle(route.Pattern, wrappedHandler).
			Methods(route.Method, "OPTIONS")
	}
}

// NewRouter creates and returns a new router
func NewRouter(app *app.App, rc RouteConfig) (http.Handler, error) {
	if err := app.Validate(); err != nil {
		return nil, errors.Wrap(err, "validating the app parameters")
	}

	router := mux.NewRouter().StrictSlash(true)

	registerRoutes(router, mw.APIMw, app, rc.Routes)

	return mw.Global(router), nil
}
