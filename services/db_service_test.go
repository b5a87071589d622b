package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"requisition-actions-server/models"
)

func TestInsertLineItem(t *testing.T) {
	db, mock := newMockDB(t)

	createdAt := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	item := &models.LineItem{
		RequisitionID: "REQ1",
		ItemName:      "Bolt",
		MaterialCode:  "MC5",
		Quantity:      10,
		CreatedAt:     createdAt,
	}

	mock.ExpectExec("INSERT INTO requisitions_lineitems").
		WithArgs("REQ1", "Bolt", "MC5", 10, createdAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := db.InsertLineItem(context.Background(), item)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertLineItemError(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec("INSERT INTO requisitions_lineitems").
		WillReturnError(errors.New("duplicate key value"))

	err := db.InsertLineItem(context.Background(), &models.LineItem{
		RequisitionID: "REQ1",
		ItemName:      "Bolt",
		Quantity:      10,
		CreatedAt:     time.Now().UTC(),
	})
	assert.EqualError(t, err, "duplicate key value")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListLineItems(t *testing.T) {
	db, mock := newMockDB(t)

	newer := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	older := newer.Add(-time.Hour)

	rows := sqlmock.NewRows([]string{"id", "requisition_id", "item_name", "material_code", "quantity", "created_at"}).
		AddRow(int64(2), "REQ1", "Nut", "", 4, newer).
		AddRow(int64(1), "REQ1", "Bolt", "MC5", 10, older)

	mock.ExpectQuery("SELECT id, requisition_id, item_name, material_code, quantity, created_at").
		WithArgs("REQ1", 20).
		WillReturnRows(rows)

	items, err := db.ListLineItems(context.Background(), "REQ1", 0)
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "Nut", items[0].ItemName)
	assert.Equal(t, "Bolt", items[1].ItemName)
	assert.Equal(t, "MC5", items[1].MaterialCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListLineItemsQueryError(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT id, requisition_id, item_name, material_code, quantity, created_at").
		WillReturnError(errors.New("relation does not exist"))

	items, err := db.ListLineItems(context.Background(), "REQ1", 5)
	assert.Error(t, err)
	assert.Nil(t, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}
