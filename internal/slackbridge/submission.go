package slackbridge

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/slack-go/slack"

	"github.com/currentlyhq/currently/internal/app/ports"
)

// handleSubmission records the pin a user selected in the modal. The user
// id on the forwarded request is always the internal account id; the pin
// endpoint's ownership model rejects Slack ids.
func (h *Handler) handleSubmission(ctx context.Context, callback slack.InteractionCallback) viewResponse {
	log := h.log.With(
		"interaction", string(callback.Type),
		"slack_user", callback.User.ID,
		"view_callback", callback.View.CallbackID,
	)

	var meta pinMetadata
	if callback.View.PrivateMetadata == "" {
		log.WarnContext(ctx, "View submission without private metadata")
		return errorResponse(generalErrorKey, "This dialog has expired. Start again from the message.")
	}
	if err := json.Unmarshal([]byte(callback.View.PrivateMetadata), &meta); err != nil {
		log.WarnContext(ctx, "Unparsable dialog metadata", "error", err)
		return errorResponse(generalErrorKey, "This dialog has expired. Start again from the message.")
	}

	selected := selectedProjectValue(callback.View.State)
	if selected == "" {
		return errorResponse(projectBlockID, "Pick a project to pin this message into.")
	}
	projectID, err := strconv.ParseInt(selected, 10, 64)
	if err != nil || projectID <= 0 {
		log.WarnContext(ctx, "Invalid project selection", "value", selected)
		return errorResponse(projectBlockID, "Pick a project to pin this message into.")
	}

	integration, err := h.accounts.ResolveIntegrationBySlackUser(ctx, callback.User.ID)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return errorResponse(generalErrorKey, "Connect your Currently account to Slack before pinning messages.")
		}
		log.ErrorContext(ctx, "Failed to resolve Slack integration", "error", err)
		return errorResponse(generalErrorKey, "Something went wrong resolving your account. Try again.")
	}

	req := ports.PinRequest{
		ProjectID:   projectID,
		UserID:      integration.UserID,
		ChannelID:   meta.ChannelID,
		ChannelName: meta.ChannelName,
		MessageTS:   meta.MessageTS,
		Text:        meta.Text,
		AuthorID:    meta.AuthorID,
		AuthorName:  meta.AuthorName,
		Permalink:   meta.Permalink,
	}

	if err := h.pins.ForwardPin(ctx, req); err != nil {
		log.ErrorContext(ctx, "Failed to forward pin request", "error", err, "project_id", projectID, "user_id", integration.UserID)
		var downstream interface{ DownstreamMessage() string }
		if errors.As(err, &downstream) && downstream.DownstreamMessage() != "" {
			return errorResponse(generalErrorKey, downstream.DownstreamMessage())
		}
		return errorResponse(generalErrorKey, "Could not save the pin. Try again.")
	}

	return clearResponse()
}

// selectedProjectValue scans all submitted blocks for the project select.
func selectedProjectValue(state *slack.ViewState) string {
	if state == nil {
		return ""
	}
	for _, actions := range state.Values {
		for actionID, action := range actions {
			if actionID == projectSelectActionID && action.SelectedOption.Value != "" {
				return action.SelectedOption.Value
			}
		}
	}
	return ""
}
