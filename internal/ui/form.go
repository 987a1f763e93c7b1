package ui

import (
	"context"
	"errors"
	"sync"

	"go-studio-backend/internal/domain"
)

// FormStatus is the submission lifecycle of the contact form.
type FormStatus string

const (
	StatusIdle       FormStatus = "idle"
	StatusSubmitting FormStatus = "submitting"
	StatusSuccess    FormStatus = "success"
	StatusFailed     FormStatus = "failed"
)

// ErrNotSubmittable is returned when Submit is called while the draft is
// invalid or another submission is in flight. The rendered submit control
// is disabled in both cases, so reaching this error means a consumer
// bypassed the control.
var ErrNotSubmittable = errors.New("form is not submittable")

// InquirySender transmits one serialized draft to the intake endpoint.
type InquirySender interface {
	SendInquiry(ctx context.Context, req *domain.InquiryRequest) error
}

// ContactForm tracks one visitor's in-progress inquiry and its submission
// state. At most one submission is in flight per form instance.
type ContactForm struct {
	mu     sync.Mutex
	draft  domain.InquiryRequest
	status FormStatus
	sender InquirySender
}

func NewContactForm(sender InquirySender) *ContactForm {
	return &ContactForm{
		draft:  defaultDraft(),
		status: StatusIdle,
		sender: sender,
	}
}

func defaultDraft() domain.InquiryRequest {
	return domain.InquiryRequest{
		ProjectType:    domain.ProjectLanding,
		SitePurpose:    domain.PurposeBusiness,
		ContactMethods: nil,
	}
}

// Draft returns a copy of the current field values.
func (f *ContactForm) Draft() domain.InquiryRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	d := f.draft
	d.ContactMethods = append([]domain.ContactMethod(nil), f.draft.ContactMethods...)
	return d
}

// Status returns the current submission status.
func (f *ContactForm) Status() FormStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

func (f *ContactForm) SetName(v string) {
	f.set(func(d *domain.InquiryRequest) { d.Name = v })
}

func (f *ContactForm) SetEmail(v string) {
	f.set(func(d *domain.InquiryRequest) { d.Email = v })
}

func (f *ContactForm) SetPhone(v string) {
	f.set(func(d *domain.InquiryRequest) { d.Phone = v })
}

func (f *ContactForm) SetIdea(v string) {
	f.set(func(d *domain.InquiryRequest) { d.Idea = v })
}

func (f *ContactForm) SetPagesCount(v int) {
	f.set(func(d *domain.InquiryRequest) { d.PagesCount = v })
}

func (f *ContactForm) SetTelegramUsername(v string) {
	f.set(func(d *domain.InquiryRequest) { d.TelegramUsername = v })
}

func (f *ContactForm) SetConsentData(v bool) {
	f.set(func(d *domain.InquiryRequest) { d.ConsentData = v })
}

func (f *ContactForm) SetConsentPromo(v bool) {
	f.set(func(d *domain.InquiryRequest) { d.ConsentPromo = v })
}

func (f *ContactForm) SetProjectType(v domain.ProjectType) {
	f.set(func(d *domain.InquiryRequest) { d.ProjectType = v })
}

func (f *ContactForm) SetSitePurpose(v domain.SitePurpose) {
	f.set(func(d *domain.InquiryRequest) { d.SitePurpose = v })
}

func (f *ContactForm) set(mutate func(*domain.InquiryRequest)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	mutate(&f.draft)
}

// ToggleContactMethod adds the method if absent, removes it if present.
func (f *ContactForm) ToggleContactMethod(method domain.ContactMethod) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, m := range f.draft.ContactMethods {
		if m == method {
			f.draft.ContactMethods = append(f.draft.ContactMethods[:i], f.draft.ContactMethods[i+1:]...)
			return
		}
	}
	f.draft.ContactMethods = append(f.draft.ContactMethods, method)
}

// CanSubmit reports whether the submit control is enabled: required contact
// fields filled, at least one contact method selected, data-processing
// consent granted and no submission in flight.
func (f *ContactForm) CanSubmit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.canSubmitLocked()
}

func (f *ContactForm) canSubmitLocked() bool {
	if f.status == StatusSubmitting {
		return false
	}
	d := &f.draft
	return d.Name != "" && d.Email != "" && d.Phone != "" &&
		len(d.ContactMethods) > 0 && d.ConsentData
}

// Submit serializes the draft and transmits it once.
//
// Success clears the fields back to defaults and leaves the success marker
// visible; failure keeps every field so the visitor can correct and retry.
// There is no automatic retry and no timeout beyond transport defaults.
func (f *ContactForm) Submit(ctx context.Context) error {
	f.mu.Lock()
	if !f.canSubmitLocked() {
		f.mu.Unlock()
		return ErrNotSubmittable
	}
	f.status = StatusSubmitting
	payload := f.draft
	payload.ContactMethods = append([]domain.ContactMethod(nil), f.draft.ContactMethods...)
	f.mu.Unlock()

	err := f.sender.SendInquiry(ctx, &payload)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.status = StatusFailed
		return err
	}
	f.status = StatusSuccess
	f.draft = defaultDraft()
	return nil
}

// Dismiss clears a terminal success/failure marker back to idle. The draft
// is untouched; it was already reset on success and kept on failure.
func (f *ContactForm) Dismiss() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.status == StatusSuccess || f.status == StatusFailed {
		f.status = StatusIdle
	}
}
