package repositories

import (
	"context"
	"encoding/json"
	"time"

	"agricola-shop/config"
	"agricola-shop/models"
)

type ResellerRepository struct{}

func NewResellerRepository() *ResellerRepository {
	return &ResellerRepository{}
}

func (r *ResellerRepository) Create(ctx context.Context, reseller *models.Reseller) error {
	query := `
		INSERT INTO resellers (email, password, company_name, vat_number, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return config.DB.QueryRow(
		ctx,
		query,
		reseller.Email,
		reseller.Password,
		reseller.CompanyName,
		reseller.VATNumber,
		now,
		now,
	).Scan(&reseller.ID, &reseller.CreatedAt, &reseller.UpdatedAt)
}

func (r *ResellerRepository) FindByEmail(ctx context.Context, email string) (*models.Reseller, error) {
	query := `
		SELECT id, email, password, company_name, COALESCE(vat_number, ''), created_at, updated_at
		FROM resellers WHERE email = $1
	`
	reseller := &models.Reseller{}
	err := config.DB.QueryRow(ctx, query, email).Scan(
		&reseller.ID,
		&reseller.Email,
		&reseller.Password,
		&reseller.CompanyName,
		&reseller.VATNumber,
		&reseller.CreatedAt,
		&reseller.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return reseller, nil
}

func (r *ResellerRepository) CreateOrder(ctx context.Context, order *models.ResellerOrder) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO reseller_orders (reseller_id, items, total, status, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	return config.DB.QueryRow(
		ctx,
		query,
		order.ResellerID,
		items,
		order.Total,
		order.Status,
		order.Notes,
		time.Now(),
	).Scan(&order.ID, &order.CreatedAt)
}

func (r *ResellerRepository) FindOrdersByReseller(ctx context.Context, resellerID int) ([]models.ResellerOrder, error) {
	query := `
		SELECT id, reseller_id, items, total, status, COALESCE(notes, ''), created_at
		FROM reseller_orders
		WHERE reseller_id = $1
		ORDER BY created_at DESC
	`
	rows, err := config.DB.Query(ctx, query, resellerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.ResellerOrder{}
	for rows.Next() {
		var order models.ResellerOrder
		var items []byte
		if err := rows.Scan(&order.ID, &order.ResellerID, &items, &order.Total, &order.Status, &order.Notes, &order.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(items, &order.Items); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, rows.Err()
}
