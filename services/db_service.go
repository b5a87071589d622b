package services

import (
	"context"
	"database/sql"
	"fmt"

	"requisition-actions-server/models"

	_ "github.com/lib/pq"
)

type DBService struct {
	db *sql.DB
}

func NewDBService(host string, port int, user, password, dbname string) (*DBService, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return &DBService{db: db}, nil
}

// NewDBServiceFromConn wraps an already-open connection; used by tests
func NewDBServiceFromConn(db *sql.DB) *DBService {
	return &DBService{db: db}
}

func (s *DBService) Close() error {
	return s.db.Close()
}

// Ping checks database reachability
func (s *DBService) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// InitSchema creates the line-items table if it doesn't exist
func (s *DBService) InitSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS requisitions_lineitems (
		id BIGSERIAL PRIMARY KEY,
		requisition_id VARCHAR(100) NOT NULL,
		item_name VARCHAR(255) NOT NULL,
		material_code VARCHAR(100) NOT NULL DEFAULT '',
		quantity INTEGER NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE INDEX IF NOT EXISTS idx_requisitions_lineitems_requisition_id ON requisitions_lineitems(requisition_id);
	`

	_, err := s.db.ExecContext(ctx, schema)
	return err
}

// InsertLineItem writes one line-item row. Single parameterized statement in
// autocommit mode, so either the whole row lands or nothing does.
func (s *DBService) InsertLineItem(ctx context.Context, item *models.LineItem) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO requisitions_lineitems (requisition_id, item_name, material_code, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, item.RequisitionID, item.ItemName, item.MaterialCode, item.Quantity, item.CreatedAt)
	return err
}

// ListLineItems returns the line items of a requisition, newest first
func (s *DBService) ListLineItems(ctx context.Context, requisitionID string, limit int) ([]models.LineItem, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, requisition_id, item_name, material_code, quantity, created_at
		FROM requisitions_lineitems
		WHERE requisition_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, requisitionID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.LineItem
	for rows.Next() {
		var item models.LineItem
		err := rows.Scan(&item.ID, &item.RequisitionID, &item.ItemName, &item.MaterialCode, &item.Quantity, &item.CreatedAt)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
