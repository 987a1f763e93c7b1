package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-studio-backend/internal/domain"
	"go-studio-backend/pkg/email"
	"go-studio-backend/pkg/logger"

	"github.com/google/uuid"
)

type inquiryUsecase struct {
	mailer  email.Mailer
	archive domain.InquiryRepository // nil when no database is configured
	from    string
	to      string
}

// NewInquiryUsecase creates a new inquiry usecase. archive may be nil.
func NewInquiryUsecase(mailer email.Mailer, archive domain.InquiryRepository, from, to string) domain.InquiryUsecase {
	return &inquiryUsecase{
		mailer:  mailer,
		archive: archive,
		from:    from,
		to:      to,
	}
}

// SubmitInquiry re-checks every invariant the form enforces, composes the
// notification mail and relays it. Client-side checks are a UX convenience
// only; nothing the browser sends is trusted here.
func (uc *inquiryUsecase) SubmitInquiry(ctx context.Context, req *domain.InquiryRequest) (string, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.TelegramUsername = strings.TrimSpace(req.TelegramUsername)

	if req.Name == "" || req.Email == "" || req.Phone == "" {
		return "", domain.ErrMissingContactFields
	}
	if len(req.ContactMethods) == 0 {
		return "", domain.ErrNoContactMethods
	}
	if !req.ConsentData {
		return "", domain.ErrConsentRequired
	}

	if req.ProjectType == "" {
		req.ProjectType = domain.ProjectLanding
	}

	msg := email.Message{
		From:    fmt.Sprintf("Contact Form <%s>", uc.from),
		To:      uc.to,
		ReplyTo: req.Email,
		Subject: fmt.Sprintf("New Inquiry from %s: %s", req.Name, strings.ToUpper(string(req.ProjectType))),
		Body:    FormatInquiryBody(req),
	}

	deliveryID, err := uc.mailer.Send(ctx, msg)
	if err != nil {
		return "", fmt.Errorf("failed to send inquiry email: %w", err)
	}

	// One delivery attempt per request, no retry and no idempotency key;
	// a transport-level client retry may produce a duplicate mail.
	if uc.archive != nil {
		rec := &domain.InquiryRecord{
			ID:          uuid.NewString(),
			Request:     *req,
			DeliveryID:  deliveryID,
			SubmittedAt: time.Now().UTC(),
		}
		if err := uc.archive.Save(ctx, rec); err != nil {
			// The mail is already out; archiving is best effort.
			logger.Log.Error("Failed to archive inquiry", "error", err, "delivery_id", deliveryID)
		}
	}

	return deliveryID, nil
}

// FormatInquiryBody renders the plain-text notification the studio inbox
// receives.
func FormatInquiryBody(req *domain.InquiryRequest) string {
	var b strings.Builder

	b.WriteString("NEW PROJECT INQUIRY\n\n")

	b.WriteString("CONTACT DETAILS:\n")
	fmt.Fprintf(&b, "Name: %s\n", req.Name)
	fmt.Fprintf(&b, "Email: %s\n", req.Email)
	fmt.Fprintf(&b, "Phone: %s\n", req.Phone)
	fmt.Fprintf(&b, "Preferred Contact Methods: %s\n", renderContactMethods(req.ContactMethods))
	if req.TelegramUsername != "" {
		fmt.Fprintf(&b, "Telegram Username: %s\n", req.TelegramUsername)
	}

	b.WriteString("\nPROJECT INFORMATION:\n")
	fmt.Fprintf(&b, "Type: %s\n", renderProjectType(req.ProjectType, req.PagesCount))
	fmt.Fprintf(&b, "Purpose: %s\n", req.SitePurpose)

	b.WriteString("\nIDEA DESCRIPTION:\n")
	if req.Idea != "" {
		b.WriteString(req.Idea + "\n")
	} else {
		b.WriteString("No description provided.\n")
	}

	b.WriteString("\nUser Consents:\n")
	fmt.Fprintf(&b, "- Personal Data Processing: %s\n", renderConsent(req.ConsentData))
	fmt.Fprintf(&b, "- Promotional Emails: %s\n", renderConsent(req.ConsentPromo))

	return b.String()
}

// renderContactMethods capitalizes and comma-joins the selected channels.
// An empty set never reaches this point; SubmitInquiry rejects it first.
func renderContactMethods(methods []domain.ContactMethod) string {
	rendered := make([]string, 0, len(methods))
	for _, m := range methods {
		s := string(m)
		if s == "" {
			continue
		}
		rendered = append(rendered, strings.ToUpper(s[:1])+s[1:])
	}
	return strings.Join(rendered, ", ")
}

func renderProjectType(t domain.ProjectType, pages int) string {
	if t == domain.ProjectMultipage {
		return fmt.Sprintf("Multi-page (%d pages)", pages)
	}
	return "Landing Page"
}

func renderConsent(granted bool) string {
	if granted {
		return "GRANTED"
	}
	return "DENIED"
}
