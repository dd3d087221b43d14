package slackbridge

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/slack-go/slack"

	"github.com/currentlyhq/currently/internal/app/ports"
)

const (
	// pinActionID identifies the pin trigger both as a block action id and
	// as the shortcut/message-action callback id.
	pinActionID = "pin_message"
	// pinModalCallbackID identifies the project-selection modal.
	pinModalCallbackID = "pin_message_modal"
	// projectBlockID is the input block holding the project select; it is
	// also the key Slack uses to attach validation errors in place.
	projectBlockID = "project_selection"
	// projectSelectActionID identifies the select control inside the block.
	projectSelectActionID = "project_select"

	generalErrorKey = "general"
	maxPayloadBytes = 1 << 20
)

// AccountResolver maps a Slack user id to the internal integration record.
type AccountResolver interface {
	ResolveIntegrationBySlackUser(ctx context.Context, slackUserID string) (ports.SlackIntegration, error)
}

// DialogOpener opens a modal through the Slack Web API.
type DialogOpener interface {
	OpenView(ctx context.Context, botToken, triggerID string, view slack.ModalViewRequest) error
}

// ProjectDirectory lists the projects an account can pin into.
type ProjectDirectory interface {
	ListAccessibleProjects(ctx context.Context, userID int64) ([]ports.Project, error)
}

// PinForwarder sends an assembled pin request to the persistence endpoint.
type PinForwarder interface {
	ForwardPin(ctx context.Context, req ports.PinRequest) error
}

// Handler processes signed interactive callbacks from Slack. Each request
// is one full traversal: classify the payload, run the matching flow, emit
// exactly one well-formed response. Nothing is held between requests.
type Handler struct {
	signingSecret string
	accounts      AccountResolver
	projects      ProjectDirectory
	opener        DialogOpener
	pins          PinForwarder
	log           *slog.Logger
	now           func() time.Time
}

// NewHandler constructs the Slack interaction handler.
func NewHandler(signingSecret string, accounts AccountResolver, projects ProjectDirectory, opener DialogOpener, pins PinForwarder, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{
		signingSecret: signingSecret,
		accounts:      accounts,
		projects:      projects,
		opener:        opener,
		pins:          pins,
		log:           log,
		now:           time.Now,
	}
}

// ackResponse acknowledges an interaction that needs no dialog work.
type ackResponse struct {
	Text string `json:"text"`
}

// viewResponse is the dialog-lifecycle response shape Slack expects with
// HTTP 200 even for declared errors.
type viewResponse struct {
	ResponseAction string            `json:"response_action"`
	Errors         map[string]string `json:"errors,omitempty"`
}

func clearResponse() viewResponse {
	return viewResponse{ResponseAction: "clear"}
}

func errorResponse(key, message string) viewResponse {
	return viewResponse{ResponseAction: "errors", Errors: map[string]string{key: message}}
}

// Handle verifies, parses, and dispatches one interaction callback.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	if strings.TrimSpace(h.signingSecret) == "" {
		h.log.ErrorContext(ctx, "Slack signing secret not configured")
		http.Error(w, "signing secret not configured", http.StatusInternalServerError)
		return nil
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxPayloadBytes))
	if err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return nil
	}

	if err := verifySignature(body, r.Header.Get(TimestampHeader), r.Header.Get(SignatureHeader), h.signingSecret, h.now()); err != nil {
		h.log.WarnContext(ctx, "Rejected Slack callback", "error", err)
		http.Error(w, "invalid signature", http.StatusUnauthorized)
		return nil
	}

	callback, err := parsePayload(body, r.Header.Get("Content-Type"))
	if err != nil {
		h.log.WarnContext(ctx, "Unparsable Slack callback", "error", err)
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return nil
	}

	return h.dispatch(ctx, w, callback)
}

// dispatch routes the classified payload. Every branch terminates in a
// syntactically valid Slack response; a missing or malformed body is
// itself a protocol violation on Slack's side.
func (h *Handler) dispatch(ctx context.Context, w http.ResponseWriter, callback slack.InteractionCallback) error {
	switch callback.Type {
	case slack.InteractionTypeBlockActions:
		for _, action := range callback.ActionCallback.BlockActions {
			if action != nil && action.ActionID == pinActionID {
				return writeJSON(w, h.openPinDialog(ctx, callback))
			}
		}
		return writeJSON(w, ackResponse{Text: "OK"})

	case slack.InteractionTypeShortcut, slack.InteractionTypeMessageAction:
		if callback.CallbackID == pinActionID {
			return writeJSON(w, h.openPinDialog(ctx, callback))
		}
		return writeJSON(w, ackResponse{Text: "OK"})

	case slack.InteractionTypeViewSubmission:
		return writeJSON(w, h.handleSubmission(ctx, callback))

	default:
		return writeJSON(w, ackResponse{Text: "OK"})
	}
}

func writeJSON(w http.ResponseWriter, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(body)
}
