package v1

import (
	"net/http"

	"go-studio-backend/internal/delivery/http/response"
	"go-studio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	contentUC domain.ContentUsecase
}

// NewContentHandler registers the landing-page content routes
func NewContentHandler(public *gin.RouterGroup, contentUC domain.ContentUsecase) {
	handler := &ContentHandler{
		contentUC: contentUC,
	}

	content := public.Group("/content")
	content.GET("/packages", handler.Packages)
	content.GET("/faq", handler.FAQ)
}

// Packages godoc
// @Summary      Pricing Packages
// @Tags         content
// @Produce      json
// @Success      200  {array}  domain.PricingPackage
// @Router       /content/packages [get]
func (h *ContentHandler) Packages(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.contentUC.Packages())
}

// FAQ godoc
// @Summary      Frequently Asked Questions
// @Tags         content
// @Produce      json
// @Success      200  {array}  domain.FAQItem
// @Router       /content/faq [get]
func (h *ContentHandler) FAQ(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.contentUC.FAQ())
}
