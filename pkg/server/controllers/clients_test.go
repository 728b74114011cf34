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
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/fieldsync/fieldsync/pkg/assert"
	"github.com/fieldsync/fieldsync/pkg/server/app"
	"github.com/fieldsync/fieldsync/pkg/server/database"
	"github.com/fieldsync/fieldsync/pkg/server/presenters"
	"github.com/fieldsync/fieldsync/pkg/server/testutils"
	"github.com/pkg/errors"
)

// truncateMicro rounds time to microsecond precision to match SQLite storage
func truncateMicro(t time.Time) time.Time {
	return t.Round(time.Microsecond)
}

func TestGetClients(t *testing.T) {
	db := testutils.InitMemoryDB(t)

	// Setup
	a := app.NewTest()
	a.DB = db
	server := MustNewServer(t, &a)
	defer server.Close()

	c1 := testutils.SetupClientData(db, "corner store", "555-0101")
	c2 := testutils.SetupClientData(db, "farm stand", "555-0102")

	// Execute
	req := testutils.MakeReq(server.URL, "GET", "/clients", "")
	res := testutils.HTTPDo(t, req)

	// Test
	assert.StatusCodeEquals(t, res, http.StatusOK, "")

	var payload []presenters.Client
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		t.Fatal(errors.Wrap(err, "decoding payload"))
	}

	var c1Record, c2Record database.Client
	testutils.MustExec(t, db.Where("uuid = ?", c1.UUID).First(&c1Record), "finding c1")
	testutils.MustExec(t, db.Where("uuid = ?", c2.UUID).First(&c2Record), "finding c2")

	expected := []presenters.Client{
		{
			UUID:      c1Record.UUID,
			Name:      c1Record.Name,
			Phone:     c1Record.Phone,
			CreatedAt: truncateMicro(c1Record.CreatedAt),
			UpdatedAt: truncateMicro(c1Record.UpdatedAt),
		},
		{
			UUID:      c2Record.UUID,
			Name:      c2Record.Name,
			Phone:     c2Record.Phone,
			CreatedAt: truncateMicro(c2Record.CreatedAt),
			UpdatedAt: truncateMicro(c2Record.UpdatedAt),
		},
	}

	assert.DeepEqual(t, payload, expected, "payload mismatch")
}

func TestCreateClient(t *testing.T) {
	db := testutils.InitMemoryDB(t)

	// Setup
	a := app.NewTest()
	a.DB = db
	server := MustNewServer(t, &a)
	defer server.Close()

	// Execute
	req := testutils.MakeReq(server.URL, "POST", "/clients", `{"name": "corner store", "phone": "555-0101"}`)
	res := testutils.HTTPDo(t, req)

	// Test
	assert.StatusCodeEquals(t, res, http.StatusCreated, "")

	var clientCount int64
	testutils.MustExec(t, db.Model(&database.Client{}).Count(&clientCount), "counting clients")
	assert.Equalf(t, clientCount, int64(1), "client count mismatch")

	var clientRecord database.Client
	testutils.MustExec(t, db.First(&clientRecord), "finding client")
	assert.Equal(t, clientRecord.Name, "corner store", "Name mismatch")
	assert.Equal(t, clientRecord.Phone, "555-0101", "Phone mismatch")
	assert.Equal(t, clientRecord.Propagated, false, "Propagated mismatch")
	assert.NotEqual(t, clientRecord.UUID, "", "UUID should have been generated")

	var payload presenters.Client
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		t.Fatal(errors.Wrap(err, "decoding payload"))
	}
	assert.Equal(t, payload.UUID, clientRecord.UUID, "payload UUID mismatch")
}

func TestCreateClient_FormBody(t *testing.T) {
	db := testutils.InitMemoryDB(t)

	// Setup
	a := app.NewTest()
	a.DB = db
	server := MustNewServer(t, &a)
	defer server.Close()

	// Execute
	form := url.Values{}
	form.Set("name", "roadside stall")
	form.Set("phone", "555-0103")

	req, err := http.NewRequest("POST", server.URL+"/clients", strings.NewReader(form.Encode()))
	if err != nil {
		t.Fatal(errors.Wrap(err, "constructing request"))
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res := testutils.HTTPDo(t, req)

	// Test
	assert.StatusCodeEquals(t, res, http.StatusCreated, "")

	var clientRecord database.Client
	testutils.MustExec(t, db.First(&clientRecord), "finding client")
	assert.Equal(t, clientRecord.Name, "roadside stall", "Name mismatch")
	assert.Equal(t, clientRecord.Phone, "555-0103", "Phone mismatch")
}

func TestCreateClient_MissingName(t *testing.T) {
	db := testutils.InitMemoryDB(t)

	// Setup
	a := app.NewTest()
	a.DB = db
	server := MustNewServer(t, &a)
	defer server.Close()

	// Execute
	req := testutils.MakeReq(server.URL, "POST", "/clients", `{"phone": "555-0101"}`)
	res := testutils.HTTPDo(t, req)

	// Test
	assert.StatusCodeEquals(t, res, http.StatusBadRequest, "")

	var clientCount int64
	testutils.MustExec(t, db.Model(&database.Client{}).Count(&clientCount), "counting clients")
	assert.Equalf(t, clientCount, int64(0), "client count mismatch")
}
