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

// Client is a result of PresentClients
type Client struct {
	UUID      string    `json:"uuid"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PresentClient presents a client
func PresentClient(client database.Client) Client {
	return Client{
		UUID:      client.UUID,
		Name:      client.Name,
		Phone:     client.Phone,
		CreatedAt: FormatTS(client.CreatedAt),
		UpdatedAt: FormatTS(client.UpdatedAt),
	}
}

// PresentClients presents clients
func PresentClients(clients []database.Client) []Client {
	ret := []Client{}

	for _, client := range clients {
		ret = append(ret, PresentClient(client))
	}

	return ret
}
