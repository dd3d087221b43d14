package slackbridge

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/url"
	"strings"

	"github.com/slack-go/slack"
)

var errUnsupportedContentType = errors.New("unsupported content type")

// parsePayload decodes the verified request body into an interaction
// callback. Slack sends either a form body with a single `payload` field
// holding JSON, or (for some app configurations) a raw JSON body. No
// semantic validation happens here; the dispatcher checks field presence.
func parsePayload(body []byte, contentType string) (slack.InteractionCallback, error) {
	var callback slack.InteractionCallback

	mediaType := contentType
	if parsed, _, err := mime.ParseMediaType(contentType); err == nil {
		mediaType = parsed
	}

	switch strings.ToLower(strings.TrimSpace(mediaType)) {
	case "application/x-www-form-urlencoded":
		form, err := url.ParseQuery(string(body))
		if err != nil {
			return callback, fmt.Errorf("parse form body: %w", err)
		}
		payload := form.Get("payload")
		if payload == "" {
			return callback, errors.New("form body missing payload field")
		}
		if err := json.Unmarshal([]byte(payload), &callback); err != nil {
			return callback, fmt.Errorf("decode payload field: %w", err)
		}
	case "application/json":
		if err := json.Unmarshal(body, &callback); err != nil {
			return callback, fmt.Errorf("decode json body: %w", err)
		}
	default:
		return callback, fmt.Errorf("%w: %q", errUnsupportedContentType, contentType)
	}

	return callback, nil
}
