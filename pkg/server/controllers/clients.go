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

// NewClients creates a new Clients controller
func NewClients(app *app.App) *Clients {
	return &Clients{app: app}
}

// Clients is a clients controller
type Clients struct {
	app *app.App
}

// Index handles GET /clients
func (c *Clients) Index(w http.ResponseWriter, r *http.Request) {
	clients, err := c.app.GetClients()
	if err != nil {
		handleJSONError(w, err, "getting clients")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentClients(clients))
}

// CreateClientPayload is the payload for creating a client
type CreateClientPayload struct {
	UUID  string `schema:"uuid" json:"uuid"`
	Name  string `schema:"name" json:"name"`
	Phone string `schema:"phone" json:"phone"`
}

// Create handles POST /clients
func (c *Clients) Create(w http.ResponseWriter, r *http.Request) {
	var payload CreateClientPayload
	if err := parseRequestData(r, &payload); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}

	client, err := c.app.CreateClient(app.CreateClientParams{
		UUID:  payload.UUID,
		Name:  payload.Name,
		Phone: payload.Phone,
	})
	if err != nil {
		handleJSONError(w, err, "creating client")
		return
	}

	respondJSON(w, http.StatusCreated, presenters.PresentClient(client))
}
