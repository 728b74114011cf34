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

// CreateClientParams is the parameters for creating a client.
// UUID may be pre-supplied by a client that minted the identity offline;
// when empty, the server assigns one.
type CreateClientParams struct {
	UUID  string
	Name  string
	Phone string
}

// CreateClient creates a client record
func (a *App) CreateClient(p CreateClientParams) (database.Client, error) {
	if p.Name == "" {
		return database.Client{}, ErrClientNameRequired
	}

	uuid := p.UUID
	if uuid == "" {
		var err error
		uuid, err = helpers.GenUUID()
		if err != nil {
			return database.Client{}, err
		}
	}

	client := database.Client{
		UUID:  uuid,
		Name:  p.Name,
		Phone: p.Phone,
	}
	if err := a.DB.Create(&client).Error; err != nil {
		return client, errors.Wrap(err, "inserting client")
	}

	return client, nil
}

// GetClients returns all clients
func (a *App) GetClients() ([]database.Client, error) {
	clients := []database.Client{}
	if err := a.DB.Order("created_at ASC").Find(&clients).Error; err != nil {
		return nil, errors.Wrap(err, "finding clients")
	}

	return clients, nil
}
