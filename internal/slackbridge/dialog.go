package slackbridge

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/slack-go/slack"

	"github.com/currentlyhq/currently/internal/app/ports"
	"github.com/currentlyhq/currently/internal/app/services"
)

const (
	// descriptionDisplayLimit caps option descriptions to what the modal renders.
	descriptionDisplayLimit = 72
	displayIDLength         = 12
)

// pinMetadata is the private-metadata blob round-tripped through the modal
// so the submission handler can recover the message without re-querying.
type pinMetadata struct {
	ChannelID   string            `json:"channel_id"`
	ChannelName string            `json:"channel_name"`
	MessageTS   string            `json:"message_ts"`
	Text        string            `json:"text"`
	AuthorID    string            `json:"author_id"`
	AuthorName  string            `json:"author_name"`
	Permalink   string            `json:"permalink"`
	Extra       map[string]string `json:"extra"`
}

// openPinDialog resolves the acting account, gathers its accessible
// projects, and opens the project-selection modal with the trigger token.
func (h *Handler) openPinDialog(ctx context.Context, callback slack.InteractionCallback) viewResponse {
	log := h.log.With(
		"interaction", string(callback.Type),
		"slack_user", callback.User.ID,
		"channel", callback.Channel.ID,
	)

	if callback.Message.Timestamp == "" {
		log.WarnContext(ctx, "Pin trigger without message snapshot")
		return errorResponse(generalErrorKey, "That message could not be read. Try again from the message menu.")
	}
	if callback.TriggerID == "" {
		log.WarnContext(ctx, "Pin trigger without trigger id")
		return errorResponse(generalErrorKey, "This action has expired. Trigger it again from the message.")
	}

	integration, err := h.accounts.ResolveIntegrationBySlackUser(ctx, callback.User.ID)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return errorResponse(generalErrorKey, "Connect your Currently account to Slack before pinning messages.")
		}
		log.ErrorContext(ctx, "Failed to resolve Slack integration", "error", err)
		return errorResponse(generalErrorKey, "Something went wrong resolving your account. Try again.")
	}

	projects, err := h.projects.ListAccessibleProjects(ctx, integration.UserID)
	if err != nil {
		if errors.Is(err, services.ErrNoOrganizations) {
			return errorResponse(generalErrorKey, "You don't belong to any organization in Currently yet.")
		}
		log.ErrorContext(ctx, "Failed to list accessible projects", "error", err, "user_id", integration.UserID)
		return errorResponse(generalErrorKey, "Something went wrong loading your projects. Try again.")
	}
	if len(projects) == 0 {
		return errorResponse(generalErrorKey, "You have no active projects you can pin into.")
	}

	if strings.TrimSpace(integration.BotToken) == "" {
		log.WarnContext(ctx, "Slack integration missing bot credential", "user_id", integration.UserID)
		return errorResponse(generalErrorKey, "Your Slack connection is missing its credential. Reconnect it in Currently.")
	}

	meta := metadataFromCallback(callback)
	blob, err := json.Marshal(meta)
	if err != nil {
		log.ErrorContext(ctx, "Failed to encode dialog metadata", "error", err)
		return errorResponse(generalErrorKey, "Something went wrong preparing the dialog. Try again.")
	}

	view := buildPinModal(string(blob), meta, projects)
	if err := h.opener.OpenView(ctx, integration.BotToken, callback.TriggerID, view); err != nil {
		log.ErrorContext(ctx, "Failed to open pin dialog", "error", err, "user_id", integration.UserID)
		return errorResponse(generalErrorKey, "Could not open the pin dialog. Try again.")
	}

	return clearResponse()
}

// metadataFromCallback derives display names from fields already on the
// snapshot; no extra Slack API calls are made for this.
func metadataFromCallback(callback slack.InteractionCallback) pinMetadata {
	authorName := callback.Message.Username
	if authorName == "" {
		authorName = displayFallback(callback.Message.User)
	}
	channelName := callback.Channel.Name
	if channelName == "" {
		channelName = displayFallback(callback.Channel.ID)
	}
	return pinMetadata{
		ChannelID:   callback.Channel.ID,
		ChannelName: channelName,
		MessageTS:   callback.Message.Timestamp,
		Text:        callback.Message.Text,
		AuthorID:    callback.Message.User,
		AuthorName:  authorName,
		Permalink:   callback.Message.Permalink,
		Extra:       map[string]string{},
	}
}

func buildPinModal(metadata string, meta pinMetadata, projects []ports.Project) slack.ModalViewRequest {
	options := make([]*slack.OptionBlockObject, 0, len(projects))
	for _, project := range projects {
		var description *slack.TextBlockObject
		if strings.TrimSpace(project.Description) != "" {
			description = slack.NewTextBlockObject(slack.PlainTextType, truncateDisplay(project.Description, descriptionDisplayLimit), false, false)
		}
		options = append(options, slack.NewOptionBlockObject(
			strconv.FormatInt(project.ID, 10),
			slack.NewTextBlockObject(slack.PlainTextType, project.Name, false, false),
			description,
		))
	}

	projectSelect := slack.NewOptionsSelectBlockElement(
		slack.OptTypeStatic,
		slack.NewTextBlockObject(slack.PlainTextType, "Choose a project", false, false),
		projectSelectActionID,
		options...,
	)

	return slack.ModalViewRequest{
		Type:            slack.VTModal,
		CallbackID:      pinModalCallbackID,
		PrivateMetadata: metadata,
		Title:           slack.NewTextBlockObject(slack.PlainTextType, "Pin to project", false, false),
		Submit:          slack.NewTextBlockObject(slack.PlainTextType, "Pin", false, false),
		Close:           slack.NewTextBlockObject(slack.PlainTextType, "Cancel", false, false),
		Blocks: slack.Blocks{
			BlockSet: []slack.Block{
				slack.NewSectionBlock(
					slack.NewTextBlockObject(slack.MarkdownType, messagePreview(meta), false, false),
					nil, nil,
				),
				slack.NewInputBlock(
					projectBlockID,
					slack.NewTextBlockObject(slack.PlainTextType, "Project", false, false),
					nil,
					projectSelect,
				),
			},
		},
	}
}

func messagePreview(meta pinMetadata) string {
	var b strings.Builder
	b.WriteString("*")
	b.WriteString(meta.AuthorName)
	b.WriteString("* in #")
	b.WriteString(meta.ChannelName)
	if text := strings.TrimSpace(meta.Text); text != "" {
		b.WriteString("\n>")
		b.WriteString(truncateDisplay(text, descriptionDisplayLimit))
	}
	return b.String()
}

func truncateDisplay(value string, limit int) string {
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	return string(runes[:limit]) + "…"
}

func displayFallback(id string) string {
	if len(id) <= displayIDLength {
		return id
	}
	return id[:displayIDLength]
}
