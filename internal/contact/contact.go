// Package contact submits the feedback form to a Web3Forms-compatible endpoint.
package contact

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spigell/interview-simulator/internal/logger"
	"go.uber.org/zap"
)

const (
	DefaultEndpoint = "https://api.web3forms.com/submit"
	DefaultTimeout  = 10 * time.Second
	DefaultSubject  = "General Inquiry"
)

// Subjects lists the topics accepted by the form, in display order.
var Subjects = []string{
	DefaultSubject,
	"Technical Support",
	"Feedback",
	"Feature Request",
	"Partnership Opportunities",
}

// Message is one form submission.
type Message struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,email"`
	Subject string `validate:"omitempty,subject"`
	Message string `validate:"required"`
}

type Client struct {
	Endpoint   string
	HTTPClient *http.Client

	accessKey string
	logger    *zap.Logger
	validate  *validator.Validate
}

func New(accessKey string, log *zap.Logger) *Client {
	return &Client{
		Endpoint: DefaultEndpoint,
		HTTPClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		accessKey: accessKey,
		logger:    logger.WithFields(log),
		validate:  newValidator(),
	}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails for an empty tag or a nil func.
	_ = v.RegisterValidation("subject", func(fl validator.FieldLevel) bool {
		return isSubject(fl.Field().String())
	})
	return v
}

func isSubject(s string) bool {
	for _, subject := range Subjects {
		if s == subject {
			return true
		}
	}
	return false
}
