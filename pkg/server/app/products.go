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
	"github.com/fieldsync/fieldsync/pkg/server/database"
	"github.com/fieldsync/fieldsync/pkg/server/helpers"
	"github.com/pkg/errors"
)

// CreateProductParams is the parameters for creating a product
type CreateProductParams struct {
	UUID  string
	Name  string
	Price float64
	Unit  string
}

// CreateProduct creates a product record
func (a *App) CreateProduct(p CreateProductParams) (database.Product, error) {
	if p.Name == "" {
		return database.Product{}, ErrProductNameRequired
	}
	if p.Price < 0 {
		return database.Product{}, ErrInvalidPrice
	}

	uuid := p.UUID
	if uuid == "" {
		var err error
		uuid, err = helpers.GenUUID()
		if err != nil {
			return database.Product{}, err
		}
	}

	product := database.Product{
		UUID:  uuid,
		Name:  p.Name,
		Price: p.Price,
		Unit:  p.Unit,
	}
	if err := a.DB.Create(&product).Error; err != nil {
		return product, errors.Wrap(err, "inserting product")
	}

	return product, nil
}

// GetProducts returns all products
func (a *App) GetProducts() ([]database.Product, error) {
	products := []database.Product{}
	if err := a.DB.Order("created_at ASC").Find(&products).Error; err != nil {
		return nil, errors.Wrap(err, "finding products")
	}

	return products, nil
}
