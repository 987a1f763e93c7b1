package v1

import (
	"errors"
	"net/http"

	"go-studio-backend/internal/delivery/http/response"
	"go-studio-backend/internal/domain"
	"go-studio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type InquiryHandler struct {
	inquiryUC domain.InquiryUsecase
}

// NewInquiryHandler registers the inquiry routes (public, no auth required)
func NewInquiryHandler(public *gin.RouterGroup, inquiryUC domain.InquiryUsecase) {
	handler := &InquiryHandler{
		inquiryUC: inquiryUC,
	}

	public.POST("/send", handler.SubmitInquiry)
}

// SendResponse carries the delivery identifier of an accepted inquiry.
type SendResponse struct {
	ID string `json:"id"`
}

// SubmitInquiry godoc
// @Summary      Submit Project Inquiry
// @Description  Relay a contact form submission to the studio inbox. Public endpoint.
// @Tags         inquiry
// @Accept       json
// @Produce      json
// @Param        inquiry  body      domain.InquiryRequest  true  "Inquiry Form Data"
// @Success      200      {object}  SendResponse
// @Failure      400      {object}  response.ErrorBody
// @Failure      429      {object}  response.ErrorBody
// @Failure      500      {object}  response.ErrorBody
// @Router       /send [post]
func (h *InquiryHandler) SubmitInquiry(c *gin.Context) {
	var req domain.InquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	deliveryID, err := h.inquiryUC.SubmitInquiry(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingContactFields):
			c.Error(apperror.BadRequest("Missing required contact fields"))
		case errors.Is(err, domain.ErrNoContactMethods):
			c.Error(apperror.BadRequest("At least one contact method is required"))
		case errors.Is(err, domain.ErrConsentRequired):
			c.Error(apperror.BadRequest("Personal data processing consent is required"))
		default:
			c.Error(apperror.Internal(err))
		}
		return
	}

	response.JSON(c, http.StatusOK, SendResponse{ID: deliveryID})
}
