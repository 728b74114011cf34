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
	"github.com/fieldsync/fieldsync/pkg/server/presenters"
)

// NewProducts creates a new Products controller
func NewProducts(app *app.App) *Products {
	return &Products{app: app}
}

// Products is a products controller
type Products struct {
	app *app.App
}

// Index handles GET /products
func (c *Products) Index(w http.ResponseWriter, r *http.Request) {
	products, err := c.app.GetProducts()
	if err != nil {
		handleJSONError(w, err, "getting products")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentProducts(products))
}

// CreateProductPayload is the payload for creating a product
type CreateProductPayload struct {
	UUID  string  `schema:"uuid" json:"uuid"`
	Name  string  `schema:"name" json:"name"`
	Price float64 `schema:"price" json:"price"`
	Unit  string  `schema:"unit" json:"unit"`
}

// Create handles POST /products
func (c *Products) Create(w http.ResponseWriter, r *http.Request) {
	var payload CreateProductPayload
	if err := parseRequestData(r, &payload); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}

	product, err := c.app.CreateProduct(app.CreateProductParams{
		UUID:  payload.UUID,
		Name:  payload.Name,
		Price: payload.Price,
		Unit:  payload.Unit,
	})
	if err != nil {
		handleJSONError(w, err, "creating product")
		return
	}

	respondJSON(w, http.StatusCreated, presenters.PresentProduct(product))
}
