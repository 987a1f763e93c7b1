package domain

import (
	"context"
	"errors"
	"time"
)

// ProjectType is the kind of site the visitor wants built.
type ProjectType string

const (
	ProjectLanding   ProjectType = "landing"
	ProjectMultipage ProjectType = "multipage"
)

// SitePurpose is the declared purpose of the requested site.
type SitePurpose string

const (
	PurposeBusiness  SitePurpose = "business"
	PurposePortfolio SitePurpose = "portfolio"
	PurposeEcommerce SitePurpose = "ecommerce"
	PurposeOther     SitePurpose = "other"
)

// ContactMethod is a channel the visitor agrees to be reached on.
type ContactMethod string

const (
	MethodTelegram ContactMethod = "telegram"
	MethodWhatsapp ContactMethod = "whatsapp"
	MethodMail     ContactMethod = "mail"
	MethodPhone    ContactMethod = "phone"
)

// Validation failures surfaced to the delivery layer. The client form blocks
// all of these before submitting, but the server never trusts the client.
var (
	ErrMissingContactFields = errors.New("missing required contact fields")
	ErrNoContactMethods     = errors.New("at least one contact method is required")
	ErrConsentRequired      = errors.New("personal data processing consent is required")
)

// InquiryRequest is one project inquiry as transmitted by the contact form.
//
// Required-field checks are done in the usecase rather than via binding tags
// so that the response body stays on the documented wire contract; binding
// tags here only guard shape (enums, formats).
type InquiryRequest struct {
	Name             string          `json:"name" binding:"omitempty,valid_name"`
	Email            string          `json:"email" binding:"omitempty,email"`
	Phone            string          `json:"phone" binding:"omitempty,valid_phone"`
	ProjectType      ProjectType     `json:"projectType" binding:"omitempty,oneof=landing multipage"`
	PagesCount       int             `json:"pagesCount" binding:"gte=0"`
	SitePurpose      SitePurpose     `json:"sitePurpose" binding:"omitempty,oneof=business portfolio ecommerce other"`
	Idea             string          `json:"idea"`
	ContactMethods   []ContactMethod `json:"contactMethods" binding:"omitempty,dive,oneof=telegram whatsapp mail phone"`
	TelegramUsername string          `json:"telegramUsername" binding:"omitempty,telegram_handle"`
	ConsentData      bool            `json:"consentData"`
	ConsentPromo     bool            `json:"consentPromo"`
}

// InquiryRecord is an archived inquiry row.
type InquiryRecord struct {
	ID          string
	Request     InquiryRequest
	DeliveryID  string
	SubmittedAt time.Time
}

// InquiryUsecase defines the interface for inquiry submission
type InquiryUsecase interface {
	// SubmitInquiry validates, formats and relays one inquiry.
	// Returns the delivery identifier produced by the mail collaborator.
	SubmitInquiry(ctx context.Context, req *InquiryRequest) (string, error)
}

// InquiryRepository archives accepted inquiries. Optional collaborator;
// archive failures must never fail a submission.
type InquiryRepository interface {
	Save(ctx context.Context, rec *InquiryRecord) error
}
