package contact

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/spigell/interview-simulator/internal/utils"
	"go.uber.org/zap"
)

const (
	successMarker       = "<title>Success!"
	unknownRejection    = "Unknown error occurred"
	responsePreviewSize = 200
)

var ErrNoAccessKey = errors.New("contact form access key is not configured")

// Submit validates the message and posts it as a urlencoded form.
func (c *Client) Submit(ctx context.Context, msg Message) error {
	if c.accessKey == "" {
		return ErrNoAccessKey
	}

	if msg.Subject == "" {
		msg.Subject = DefaultSubject
	}

	if err := c.validate.Struct(msg); err != nil {
		return fmt.Errorf("invalid contact message: %w", err)
	}

	form := url.Values{}
	form.Set("access_key", c.accessKey)
	form.Set("name", msg.Name)
	form.Set("email", msg.Email)
	form.Set("subject", msg.Subject)
	form.Set("message", msg.Message)
	form.Set("botcheck", "")
	form.Set("redirect", "false")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	c.logger.Debug("make request", zap.String("url", req.URL.String()), zap.String("subject", msg.Subject))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err}
	}

	return c.checkResponse(resp.StatusCode, string(body))
}

func (c *Client) checkResponse(status int, body string) error {
	if status == http.StatusOK && strings.Contains(body, successMarker) {
		c.logger.Info("contact message sent")
		return nil
	}

	var result map[string]any
	if err := json.Unmarshal([]byte(body), &result); err != nil {
		return &ResponseError{StatusCode: status, Body: utils.Head(body, responsePreviewSize) + "..."}
	}

	if truthy(result["success"]) {
		c.logger.Info("contact message sent")
		return nil
	}

	message, _ := result["message"].(string)
	if message == "" {
		message = unknownRejection
	}

	c.logger.Warn("contact message rejected", zap.Int("status", status), zap.String("message", message))
	return &RejectedError{Message: message}
}

func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	case nil:
		return false
	default:
		return true
	}
}
