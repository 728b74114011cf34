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

// Product is a result of PresentProducts
type Product struct {
	UUID      string    `json:"uuid"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Unit      string    `json:"unit"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PresentProduct presents a product
func PresentProduct(product database.Product) Product {
	return Product{
		UUID:      product.UUID,
		Name:      product.Name,
		Price:     product.Price,
		Unit:      product.Unit,
		CreatedAt: FormatTS(product.CreatedAt),
		UpdatedAt: FormatTS(product.UpdatedAt),
	}
}

// PresentProducts presents products
func PresentProducts(products []database.Product) []Product {
	ret := []Product{}

	for _, product := range products {
		ret = append(ret, PresentProduct(product))
	}

	return ret
}
