package postgres

import (
	"context"

	"go-studio-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type inquiryRepo struct {
	db *pgxpool.Pool
}

// NewInquiryRepository archives accepted inquiries. The table:
//
//	CREATE TABLE inquiries (
//	    id               UUID PRIMARY KEY,
//	    name             TEXT NOT NULL,
//	    email            TEXT NOT NULL,
//	    phone            TEXT NOT NULL,
//	    project_type     TEXT NOT NULL,
//	    pages_count      INT NOT NULL DEFAULT 0,
//	    site_purpose     TEXT NOT NULL DEFAULT '',
//	    idea             TEXT NOT NULL DEFAULT '',
//	    contact_methods  TEXT[] NOT NULL,
//	    telegram_username TEXT NOT NULL DEFAULT '',
//	    consent_data     BOOLEAN NOT NULL,
//	    consent_promo    BOOLEAN NOT NULL,
//	    delivery_id      TEXT NOT NULL,
//	    submitted_at     TIMESTAMPTZ NOT NULL
//	)
func NewInquiryRepository(db *pgxpool.Pool) domain.InquiryRepository {
	return &inquiryRepo{db: db}
}

func (r *inquiryRepo) Save(ctx context.Context, rec *domain.InquiryRecord) error {
	query := `INSERT INTO inquiries
              (id, name, email, phone, project_type, pages_count, site_purpose, idea,
               contact_methods, telegram_username, consent_data, consent_promo,
               delivery_id, submitted_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	methods := make([]string, len(rec.Request.ContactMethods))
	for i, m := range rec.Request.ContactMethods {
		methods[i] = string(m)
	}

	_, err := r.db.Exec(ctx, query,
		rec.ID,
		rec.Request.Name,
		rec.Request.Email,
		rec.Request.Phone,
		string(rec.Request.ProjectType),
		rec.Request.PagesCount,
		string(rec.Request.SitePurpose),
		rec.Request.Idea,
		methods,
		rec.Request.TelegramUsername,
		rec.Request.ConsentData,
		rec.Request.ConsentPromo,
		rec.DeliveryID,
		rec.SubmittedAt,
	)
	return err
}
