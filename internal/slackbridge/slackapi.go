package slackbridge

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"
)

// WebAPIDialogOpener opens modals through the Slack Web API, authenticated
// with the acting user's own bot token rather than a shared credential.
type WebAPIDialogOpener struct {
	options []slack.Option
}

// NewWebAPIDialogOpener constructs the Web API opener. Options are passed
// through to the underlying client (tests use slack.OptionAPIURL).
func NewWebAPIDialogOpener(options ...slack.Option) *WebAPIDialogOpener {
	return &WebAPIDialogOpener{options: options}
}

// OpenView opens the modal with the single-use trigger token.
func (o *WebAPIDialogOpener) OpenView(ctx context.Context, botToken, triggerID string, view slack.ModalViewRequest) error {
	client := slack.New(botToken, o.options...)
	if _, err := client.OpenViewContext(ctx, triggerID, view); err != nil {
		return fmt.Errorf("open view: %w", err)
	}
	return nil
}
