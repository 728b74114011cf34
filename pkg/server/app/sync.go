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
	"time"

	"github.com/fieldsync/fieldsync/pkg/server/database"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// The pull side of the sync protocol. Pulling never flips the propagated
// flag: a row stays pullable until the client explicitly acknowledges it,
// so a crash between receiving a response and persisting locally loses
// nothing.

// GetUndeliveredClients returns clients not yet delivered to field devices
func (a *App) GetUndeliveredClients() ([]database.Client, error) {
	ret := []database.Client{}
	if err := a.DB.Where("propagated = ?", false).Find(&ret).Error; err != nil {
		return nil, errors.Wrap(err, "finding undelivered clients")
	}

	return ret, nil
}

// GetUndeliveredProducts returns products not yet delivered to field devices
func (a *App) GetUndeliveredProducts() ([]database.Product, error) {
	ret := []database.Product{}
	if err := a.DB.Where("propagated = ?", false).Find(&ret).Error; err != nil {
		return nil, errors.Wrap(err, "finding undelivered products")
	}

	return ret, nil
}

// GetUndeliveredOrders returns orders not yet delivered to field devices
func (a *App) GetUndeliveredOrders() ([]database.Order, error) {
	ret := []database.Order{}
	if err := a.DB.Where("propagated = ?", false).Find(&ret).Error; err != nil {
		return nil, errors.Wrap(err, "finding undelivered orders")
	}

	return ret, nil
}

// GetUndeliveredOrderLineItems returns line items not yet delivered to field devices
func (a *App) GetUndeliveredOrderLineItems() ([]database.OrderLineItem, error) {
	ret := []database.OrderLineItem{}
	if err := a.DB.Where("propagated = ?", false).Find(&ret).Error; err != nil {
		return nil, errors.Wrap(err, "finding undelivered line items")
	}

	return ret, nil
}

// markDelivered sets the propagated flag for the given identity set as a
// single statement, so the batch applies completely or not at all. Marking
// an already delivered row again is a no-op.
func (a *App) markDelivered(table string, uuids []string) error {
	if len(uuids) == 0 {
		return ErrEmptyBatch
	}

	if err := a.DB.Table(table).Where("uuid IN (?)", uuids).Update("propagated", true).Error; err != nil {
		return errors.Wrapf(err, "marking %s delivered", table)
	}

	return nil
}

// MarkClientsDelivered marks the given clients as delivered to the counterpart
func (a *App) MarkClientsDelivered(uuids []string) error {
	return a.markDelivered(database.TableClients, uuids)
}

// MarkProductsDelivered marks the given products as delivered to the counterpart
func (a *App) MarkProductsDelivered(uuids []string) error {
	return a.markDelivered(database.TableProducts, uuids)
}

// MarkOrdersDelivered marks the given orders as delivered to the counterpart
func (a *App) MarkOrdersDelivered(uuids []string) error {
	return a.markDelivered(database.TableOrders, uuids)
}

// MarkOrderLineItemsDelivered marks the given line items as delivered to the counterpart
func (a *App) MarkOrderLineItemsDelivered(uuids []string) error {
	return a.markDelivered(database.TableOrderLineItems, uuids)
}

// upsertByUUID inserts the given rows, treating a duplicate identity as
// already applied. Re-uploading a batch is therefore safe: the retry wins
// nothing and loses nothing.
func upsertByUUID(tx *gorm.DB, rows interface{}) *gorm.DB {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "uuid"}},
		DoNothing: true,
	}).Create(rows)
}

// UploadClientParams is a client row uploaded from a field device
type UploadClientParams struct {
	UUID  string
	Name  string
	Phone string
}

// UploadClients stores a batch of clients created on a field device. The rows
// are marked delivered at insert time since the server now has them.
func (a *App) UploadClients(batch []UploadClientParams) error {
	if len(batch) == 0 {
		return ErrEmptyBatch
	}
	for idx, row := range batch {
		if row.UUID == "" {
			return errors.Wrapf(ErrUUIDRequired, "row %d", idx)
		}
		if row.Name == "" {
			return errors.Wrapf(ErrClientNameRequired, "row %d", idx)
		}
	}

	rows := make([]database.Client, 0, len(batch))
	for _, row := range batch {
		rows = append(rows, database.Client{
			UUID:       row.UUID,
			Name:       row.Name,
			Phone:      row.Phone,
			Propagated: true,
		})
	}

	if err := upsertByUUID(a.DB, &rows).Error; err != nil {
		return errors.Wrap(err, "inserting clients")
	}

	return nil
}

// UploadProductParams is a product row uploaded from a field device
type UploadProductParams struct {
	UUID  string
	Name  string
	Price float64
	Unit  string
}

// UploadProducts stores a batch of products created on a field device
func (a *App) UploadProducts(batch []UploadProductParams) error {
	if len(batch) == 0 {
		return ErrEmptyBatch
	}
	for idx, row := range batch {
		if row.UUID == "" {
			return errors.Wrapf(ErrUUIDRequired, "row %d", idx)
		}
		if row.Name == "" {
			return errors.Wrapf(ErrProductNameRequired, "row %d", idx)
		}
		if row.Price < 0 {
			return errors.Wrapf(ErrInvalidPrice, "row %d", idx)
		}
	}

	rows := make([]database.Product, 0, len(batch))
	for _, row := range batch {
		rows = append(rows, database.Product{
			UUID:       row.UUID,
			Name:       row.Name,
			Price:      row.Price,
			Unit:       row.Unit,
			Propagated: true,
		})
	}

	if err := upsertByUUID(a.DB, &rows).Error; err != nil {
		return errors.Wrap(err, "inserting products")
	}

	return nil
}

// UploadOrderParams is an order header row uploaded from a field device
type UploadOrderParams struct {
	UUID       string
	ClientUUID string
	Total      float64
	Date       time.Time
	Completed  bool
}

// UploadOrders stores a batch of order headers created on a field device.
// Every row's client reference must resolve; one bad row aborts the batch.
func (a *App) UploadOrders(batch []UploadOrderParams) error {
	if len(batch) == 0 {
		return ErrEmptyBatch
	}
	for idx, row := range batch {
		if row.UUID == "" {
			return errors.Wrapf(ErrUUIDRequired, "row %d", idx)
		}
		if row.ClientUUID == "" {
			return errors.Wrapf(ErrClientRequired, "row %d", idx)
		}
		if row.Total < 0 {
			return errors.Wrapf(ErrInvalidTotal, "row %d", idx)
		}
	}

	tx := a.DB.Begin()

	for idx, row := range batch {
		var count int64
		if err := tx.Model(&database.Client{}).Where("uuid = ?", row.ClientUUID).Count(&count).Error; err != nil {
			tx.Rollback()
			return errors.Wrapf(err, "finding client for row %d", idx)
		}
		if count == 0 {
			tx.Rollback()
			return errors.Wrapf(ErrClientNotFound, "row %d", idx)
		}
	}

	rows := make([]database.Order, 0, len(batch))
	for _, row := range batch {
		rows = append(rows, database.Order{
			UUID:       row.UUID,
			ClientUUID: row.ClientUUID,
			Total:      row.Total,
			Date:       row.Date,
			Completed:  row.Completed,
			Propagated: true,
		})
	}

	if err := upsertByUUID(tx, &rows).Error; err != nil {
		tx.Rollback()
		return errors.Wrap(err, "inserting orders")
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "committing orders")
	}

	return nil
}

// UploadOrderLineItemParams is a line item row uploaded from a field device
type UploadOrderLineItemParams struct {
	UUID        string
	OrderUUID   string
	ProductUUID string
	Quantity    int
}

// UploadOrderLineItems stores a batch of line items created on a field
// device. Order and product references must resolve for every row; one bad
// row aborts the batch.
func (a *App) UploadOrderLineItems(batch []UploadOrderLineItemParams) error {
	if len(batch) == 0 {
		return ErrEmptyBatch
	}
	for idx, row := range batch {
		if row.UUID == "" {
			return errors.Wrapf(ErrUUIDRequired, "row %d", idx)
		}
		if row.OrderUUID == "" {
			return errors.Wrapf(ErrOrderNotFound, "row %d", idx)
		}
		if row.ProductUUID == "" {
			return errors.Wrapf(ErrProductRequired, "row %d", idx)
		}
		if row.Quantity <= 0 {
			return errors.Wrapf(ErrInvalidQuantity, "row %d", idx)
		}
	}

	tx := a.DB.Begin()

	for idx, row := range batch {
		var count int64
		if err := tx.Model(&database.Order{}).Where("uuid = ?", row.OrderUUID).Count(&count).Error; err != nil {
			tx.Rollback()
			return errors.Wrapf(err, "finding order for row %d", idx)
		}
		if count == 0 {
			tx.Rollback()
			return errors.Wrapf(ErrOrderNotFound, "row %d", idx)
		}

		if err := tx.Model(&database.Product{}).Where("uuid = ?", row.ProductUUID).Count(&count).Error; err != nil {
			tx.Rollback()
			return errors.Wrapf(err, "finding product for row %d", idx)
		}
		if count == 0 {
			tx.Rollback()
			return errors.Wrapf(ErrProductNotFound, "row %d", idx)
		}
	}

	rows := make([]database.OrderLineItem, 0, len(batch))
	for _, row := range batch {
		rows = append(rows, database.OrderLineItem{
			UUID:        row.UUID,
			OrderUUID:   row.OrderUUID,
			ProductUUID: row.ProductUUID,
			Quantity:    row.Quantity,
			Propagated:  true,
		})
	}

	if err := upsertByUUID(tx, &rows).Error; err != nil {
		tx.Rollback()
		return errors.Wrap(err, "inserting line items")
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "committing line items")
	}

	return nil
}
