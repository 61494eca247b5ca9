package repositories

import (
	"context"
	"time"

	"agricola-shop/config"
	"agricola-shop/models"
)

type ContactRepository struct{}

func NewContactRepository() *ContactRepository {
	return &ContactRepository{}
}

func (r *ContactRepository) Save(ctx context.Context, sub *models.ContactSubmission) error {
	query := `
		INSERT INTO contacts (name, email, phone, subject, message, consent, source, page, ip_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`
	return config.DB.QueryRow(
		ctx,
		query,
		sub.Name,
		sub.Email,
		sub.Phone,
		sub.Subject,
		sub.Message,
		sub.Consent,
		sub.Source,
		sub.Page,
		sub.IPHash,
		time.Now(),
	).Scan(&sub.ID, &sub.CreatedAt)
}
