package v1

import (
	"errors"
	"net/http"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact route on each group behind one shared limiter
func NewContactHandler(groups []*gin.RouterGroup, contactUC domain.ContactUsecase, limiter gin.HandlerFunc) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	for _, g := range groups {
		g.POST("/contact", limiter, handler.SubmitContact)
	}
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Validate a contact message and forward it to the form relay. Public endpoint.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactSubmission  true  "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Failure      502      {object}  response.Response
// @Failure      503      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var sub domain.ContactSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	if err := h.contactUC.SendContactMessage(c.Request.Context(), sub); err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			c.Error(apperror.Validation(verr.Violations, err))
		case errors.Is(err, domain.ErrRelayNotConfigured):
			c.Error(apperror.Unavailable("Contact service temporarily unavailable", err))
		default:
			// HTTP and network failures look the same to the caller
			c.Error(apperror.BadGateway(err))
		}
		return
	}

	response.Success(c, http.StatusOK, "Message Sent Successfully!", nil)
}
