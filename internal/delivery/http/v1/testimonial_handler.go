package v1

import (
	"errors"
	"net/http"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type TestimonialHandler struct {
	testimonialUC domain.TestimonialUsecase
}

func NewTestimonialHandler(groups []*gin.RouterGroup, testimonialUC domain.TestimonialUsecase) {
	handler := &TestimonialHandler{
		testimonialUC: testimonialUC,
	}

	for _, g := range groups {
		g.GET("/testimonials", handler.ListTestimonials)
		g.POST("/testimonials", handler.AddTestimonial)
	}
}

// ListTestimonials godoc
// @Summary      List Testimonials
// @Description  Upstream testimonials, or the built-in set when none are available
// @Tags         testimonials
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Testimonial}
// @Router       /testimonials [get]
func (h *TestimonialHandler) ListTestimonials(c *gin.Context) {
	response.Success(c, http.StatusOK, "OK", h.testimonialUC.List(c.Request.Context()))
}

// AddTestimonial godoc
// @Summary      Add Testimonial
// @Tags         testimonials
// @Accept       json
// @Produce      json
// @Param        testimonial  body      domain.Testimonial  true  "Testimonial"
// @Success      201          {object}  response.Response{data=domain.Testimonial}
// @Failure      400          {object}  response.Response
// @Failure      502          {object}  response.Response
// @Failure      503          {object}  response.Response
// @Router       /testimonials [post]
func (h *TestimonialHandler) AddTestimonial(c *gin.Context) {
	var t domain.Testimonial
	if err := c.ShouldBindJSON(&t); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	created, err := h.testimonialUC.Add(c.Request.Context(), t)
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			c.Error(apperror.Validation(verr.Violations, err))
		case errors.Is(err, domain.ErrUpstreamNotConfigured):
			c.Error(apperror.Unavailable("Testimonials are read-only right now", err))
		default:
			c.Error(apperror.New(http.StatusBadGateway, "Failed to add testimonial", err))
		}
		return
	}

	response.Success(c, http.StatusCreated, "Testimonial added", created)
}
