package contact

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/yamada-kensetsu/corporate-backend/config"
)

var validate = validator.New()

// SubmitRequest is the contact form body. Name, email and message are
// required; company and phone are optional.
type SubmitRequest struct {
	Name    string  `json:"name" validate:"required"`
	Email   string  `json:"email" validate:"required,email"`
	Company *string `json:"company,omitempty"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Message string  `json:"message" validate:"required"`
}

type Store interface {
	Create(ctx context.Context, s Submission) (*Submission, error)
}

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// Register attaches the contact route to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.submit)
}

func (h *Handler) submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name, email and message are required"})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)

	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": validationMessage(err)})
		return
	}

	created, err := h.store.Create(c.Request.Context(), Submission{
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		config.Log.WithError(err).Error("contact submission failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to submit contact form"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Field() == "Email" && fe.Tag() == "email" {
				return "A valid email address is required"
			}
		}
	}
	return "Name, email and message are required"
}
