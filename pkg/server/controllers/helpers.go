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
	"strings"

	"github.com/fieldsync/fieldsync/pkg/server/app"
	"github.com/fieldsync/fieldsync/pkg/server/log"
	"github.com/gorilla/schema"
	pkgErrors "github.com/pkg/errors"
)

var schemaDecoder = schema.NewDecoder()

func init() {
	schemaDecoder.IgnoreUnknownKeys(true)
}

// parseRequestData decodes the request body into dest. It accepts a JSON
// body or an HTML form body.
func parseRequestData(r *http.Request, dest interface{}) error {
	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "application/json") {
		if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
			return pkgErrors.Wrap(err, "decoding json payload")
		}

		return nil
	}

	return parseForm(r, dest)
}

// parseForm decodes a form body into dest
func parseForm(r *http.Request, dest interface{}) error {
	if err := r.ParseForm(); err != nil {
		return pkgErrors.Wrap(err, "parsing form")
	}
	if err := schemaDecoder.Decode(dest, r.PostForm); err != nil {
		return pkgErrors.Wrap(err, "decoding form")
	}

	return nil
}

// ErrorResponse is the shape of an error response body
type ErrorResponse struct {
	Message string `json:"message"`
}

// MessageResponse is the shape of a confirmation response body
type MessageResponse struct {
	Message string `json:"message"`
}

// getStatusCode returns the HTTP status code for the given error
func getStatusCode(err error) int {
	switch pkgErrors.Cause(err) {
	case app.ErrClientNameRequired,
		app.ErrProductNameRequired,
		app.ErrInvalidPrice,
		app.ErrClientRequired,
		app.ErrInvalidTotal,
		app.ErrEmptyOrder,
		app.ErrProductRequired,
		app.ErrInvalidQuantity,
		app.ErrEmptyBatch,
		app.ErrUUIDRequired,
		app.ErrClientNotFound,
		app.ErrProductNotFound,
		app.ErrOrderNotFound:
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

// respondJSON responds with the JSON-encoding of the given payload
func respondJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ErrorWrap(err, "encoding json response")
	}
}

// handleJSONError logs the given error and responds with an error body.
// Internal errors are not exposed to the caller.
func handleJSONError(w http.ResponseWriter, err error, msg string) {
	statusCode := getStatusCode(err)

	if statusCode >= 500 {
		log.ErrorWrap(err, msg)
		respondJSON(w, statusCode, ErrorResponse{Message: "Internal server error"})
		return
	}

	respondJSON(w, statusCode, ErrorResponse{Message: fmt.Sprintf("%s: %s", msg, err)})
}
