package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go-studio-backend/config"
	v1 "go-studio-backend/internal/delivery/http/v1"
	"go-studio-backend/internal/domain"
	"go-studio-backend/internal/usecase"
	"go-studio-backend/pkg/email"
	"go-studio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init()
}

// stubMailer captures the message and returns a scripted result.
type stubMailer struct {
	sent []email.Message
	id   string
	err  error
}

func (m *stubMailer) Send(_ context.Context, msg email.Message) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.sent = append(m.sent, msg)
	return m.id, nil
}

func newTestRouter(t *testing.T, mailer email.Mailer) *gin.Engine {
	t.Helper()
	cfg := &config.Config{
		RateLimitWindowSeconds: 60,
		RateLimitSendThreshold: 1000,
		LegalDocsDir:           t.TempDir(),
	}
	return v1.NewRouter(v1.RouterDeps{
		InquiryUC: usecase.NewInquiryUsecase(mailer, nil, "noreply@prostolab.ru", "hello@prostolab.ru"),
		ContentUC: usecase.NewContentUsecase(),
		Config:    cfg,
	})
}

func postJSON(router *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func validPayload() map[string]interface{} {
	return map[string]interface{}{
		"name":             "Ivan Petrov",
		"email":            "ivan@example.com",
		"phone":            "+79001234567",
		"projectType":      "landing",
		"pagesCount":       0,
		"sitePurpose":      "business",
		"idea":             "",
		"contactMethods":   []string{"telegram"},
		"telegramUsername": "",
		"consentData":      true,
		"consentPromo":     false,
	}
}

func TestSubmitInquiryMissingFields(t *testing.T) {
	mailer := &stubMailer{id: "msg-1"}
	router := newTestRouter(t, mailer)

	w := postJSON(router, "/v1/send", map[string]interface{}{
		"name":  "",
		"email": "a@b.com",
		"phone": "123 4567",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Missing required contact fields"}`, w.Body.String())
	assert.Empty(t, mailer.sent)
}

func TestSubmitInquiryRejectsEmptyContactMethods(t *testing.T) {
	mailer := &stubMailer{id: "msg-1"}
	router := newTestRouter(t, mailer)

	payload := validPayload()
	payload["contactMethods"] = []string{}
	w := postJSON(router, "/v1/send", payload)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, mailer.sent)
}

func TestSubmitInquiryRejectsDeniedConsent(t *testing.T) {
	mailer := &stubMailer{id: "msg-1"}
	router := newTestRouter(t, mailer)

	payload := validPayload()
	payload["consentData"] = false
	w := postJSON(router, "/v1/send", payload)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, mailer.sent)
}

func TestSubmitInquirySuccess(t *testing.T) {
	mailer := &stubMailer{id: "msg-42"}
	router := newTestRouter(t, mailer)

	payload := validPayload()
	payload["projectType"] = "multipage"
	payload["pagesCount"] = 5
	payload["contactMethods"] = []string{"telegram", "mail"}
	payload["telegramUsername"] = "@ivan_petrov"
	payload["idea"] = "Корпоративный сайт"
	w := postJSON(router, "/v1/send", payload)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"msg-42"}`, w.Body.String())

	require.Len(t, mailer.sent, 1)
	msg := mailer.sent[0]
	assert.Equal(t, "ivan@example.com", msg.ReplyTo)
	assert.Equal(t, "New Inquiry from Ivan Petrov: MULTIPAGE", msg.Subject)
	assert.Contains(t, msg.Body, "Multi-page (5 pages)")
	assert.Contains(t, msg.Body, "Preferred Contact Methods: Telegram, Mail")
	assert.Contains(t, msg.Body, "Telegram Username: @ivan_petrov")
	assert.Contains(t, msg.Body, "Корпоративный сайт")
}

func TestSubmitInquiryDeliveryFailure(t *testing.T) {
	mailer := &stubMailer{err: errors.New("relay down")}
	router := newTestRouter(t, mailer)

	w := postJSON(router, "/v1/send", validPayload())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, w.Body.String())
}

func TestSubmitInquiryMalformedJSON(t *testing.T) {
	router := newTestRouter(t, &stubMailer{})

	req := httptest.NewRequest(http.MethodPost, "/v1/send", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInquiryRoundTrip(t *testing.T) {
	// A draft serialized by the client parses server-side with every
	// field's value and type preserved.
	draft := domain.InquiryRequest{
		Name:             "Anna",
		Email:            "anna@example.com",
		Phone:            "+79009876543",
		ProjectType:      domain.ProjectMultipage,
		PagesCount:       7,
		SitePurpose:      domain.PurposeEcommerce,
		Idea:             "Магазин керамики",
		ContactMethods:   []domain.ContactMethod{domain.MethodWhatsapp, domain.MethodPhone},
		TelegramUsername: "",
		ConsentData:      true,
		ConsentPromo:     true,
	}

	wire, err := json.Marshal(draft)
	require.NoError(t, err)

	var parsed domain.InquiryRequest
	require.NoError(t, json.Unmarshal(wire, &parsed))
	assert.Equal(t, draft, parsed)
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t, &stubMailer{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestContentEndpoints(t *testing.T) {
	router := newTestRouter(t, &stubMailer{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/content/packages", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var packages []domain.PricingPackage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &packages))
	assert.Len(t, packages, 3)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/content/faq", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var faq []domain.FAQItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &faq))
	assert.NotEmpty(t, faq)
}

func TestSendRateLimit(t *testing.T) {
	mailer := &stubMailer{id: "msg-1"}
	cfg := &config.Config{
		RateLimitWindowSeconds: 1,
		RateLimitSendThreshold: 1,
		LegalDocsDir:           t.TempDir(),
	}
	router := v1.NewRouter(v1.RouterDeps{
		InquiryUC: usecase.NewInquiryUsecase(mailer, nil, "noreply@prostolab.ru", "hello@prostolab.ru"),
		ContentUC: usecase.NewContentUsecase(),
		Config:    cfg,
	})

	// Distinct client IP so the per-IP counter starts fresh.
	send := func() *httptest.ResponseRecorder {
		body, _ := json.Marshal(validPayload())
		req := httptest.NewRequest(http.MethodPost, "/v1/send", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.RemoteAddr = "203.0.113.7:40000"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	first := send()
	require.Equal(t, http.StatusOK, first.Code)

	second := send()
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.JSONEq(t, `{"error":"Too many requests. Please try again later."}`, second.Body.String())
	assert.NotEmpty(t, second.Header().Get("Retry-After"))
	assert.Equal(t, "0", second.Header().Get("X-RateLimit-Remaining"))
	assert.Len(t, mailer.sent, 1)

	// The counter resets once the window elapses.
	time.Sleep(1100 * time.Millisecond)
	third := send()
	assert.Equal(t, http.StatusOK, third.Code)
}

func TestLegalEndpoint(t *testing.T) {
	cfg := &config.Config{
		RateLimitWindowSeconds: 60,
		RateLimitSendThreshold: 1000,
		LegalDocsDir:           t.TempDir(),
	}
	require.NoError(t, os.WriteFile(filepath.Join(cfg.LegalDocsDir, "consent.md"), []byte("# Согласие\n"), 0o600))

	router := v1.NewRouter(v1.RouterDeps{
		InquiryUC: usecase.NewInquiryUsecase(&stubMailer{}, nil, "noreply@prostolab.ru", "hello@prostolab.ru"),
		ContentUC: usecase.NewContentUsecase(),
		Config:    cfg,
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/legal/consent", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Согласие")

	// Unknown documents are not served, path tricks included.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/legal/passwd", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
