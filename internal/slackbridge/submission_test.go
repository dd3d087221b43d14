package slackbridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/slack-go/slack"

	"github.com/currentlyhq/currently/internal/app/ports"
)

func submissionCallback(t *testing.T, selectedValue string) slack.InteractionCallback {
	t.Helper()
	meta := pinMetadata{
		ChannelID:   "C200",
		ChannelName: "general",
		MessageTS:   "1712345678.000100",
		Text:        "ship it friday",
		AuthorID:    "U900",
		AuthorName:  "jo",
		Permalink:   "https://example.slack.com/archives/C200/p1712345678000100",
		Extra:       map[string]string{},
	}
	blob, err := json.Marshal(meta)
	if err != nil {
		t.Fatalf("encode metadata: %v", err)
	}

	values := map[string]map[string]slack.BlockAction{}
	if selectedValue != "" {
		values[projectBlockID] = map[string]slack.BlockAction{
			projectSelectActionID: {SelectedOption: slack.OptionBlockObject{Value: selectedValue}},
		}
	}

	return slack.InteractionCallback{
		Type: slack.InteractionTypeViewSubmission,
		User: slack.User{ID: "U100"},
		View: slack.View{
			CallbackID:      pinModalCallbackID,
			PrivateMetadata: string(blob),
			State:           &slack.ViewState{Values: values},
		},
	}
}

func TestHandleSubmissionForwardsPin(t *testing.T) {
	t.Parallel()

	f := newFixture()
	resp := f.handler.handleSubmission(context.Background(), submissionCallback(t, "7"))
	if resp.ResponseAction != "clear" {
		t.Fatalf("unexpected response action: %q errors=%v", resp.ResponseAction, resp.Errors)
	}
	if f.forwarder.calls != 1 {
		t.Fatalf("expected one forward call, got %d", f.forwarder.calls)
	}

	req := f.forwarder.reqs[0]
	if req.ProjectID != 7 {
		t.Fatalf("unexpected project id: %d", req.ProjectID)
	}
	if req.UserID != 42 {
		t.Fatalf("expected internal user id 42 on forwarded request, got %d", req.UserID)
	}
	if req.ChannelID != "C200" || req.MessageTS != "1712345678.000100" || req.Text != "ship it friday" {
		t.Fatalf("metadata not carried into request: %+v", req)
	}
	if req.AuthorID != "U900" || req.AuthorName != "jo" || req.Permalink == "" {
		t.Fatalf("author fields not carried into request: %+v", req)
	}
}

func TestHandleSubmissionRequiresProjectSelection(t *testing.T) {
	t.Parallel()

	f := newFixture()
	resp := f.handler.handleSubmission(context.Background(), submissionCallback(t, ""))
	if resp.ResponseAction != "errors" {
		t.Fatalf("unexpected response action: %q", resp.ResponseAction)
	}
	if resp.Errors[projectBlockID] == "" {
		t.Fatalf("expected error keyed on project block, got %v", resp.Errors)
	}
	if f.forwarder.calls != 0 {
		t.Fatalf("expected no forward call, got %d", f.forwarder.calls)
	}
}

func TestHandleSubmissionRejectsMalformedSelection(t *testing.T) {
	t.Parallel()

	for _, value := range []string{"not-a-number", "0", "-3"} {
		f := newFixture()
		resp := f.handler.handleSubmission(context.Background(), submissionCallback(t, value))
		if resp.ResponseAction != "errors" || resp.Errors[projectBlockID] == "" {
			t.Fatalf("value %q: expected project selection error, got %+v", value, resp)
		}
		if f.forwarder.calls != 0 {
			t.Fatalf("value %q: expected no forward call", value)
		}
	}
}

func TestHandleSubmissionRejectsExpiredMetadata(t *testing.T) {
	t.Parallel()

	for name, metadata := range map[string]string{
		"missing":   "",
		"malformed": "{not json",
	} {
		f := newFixture()
		callback := submissionCallback(t, "7")
		callback.View.PrivateMetadata = metadata
		resp := f.handler.handleSubmission(context.Background(), callback)
		if resp.ResponseAction != "errors" || resp.Errors[generalErrorKey] == "" {
			t.Fatalf("%s metadata: expected general error, got %+v", name, resp)
		}
		if f.forwarder.calls != 0 {
			t.Fatalf("%s metadata: expected no forward call", name)
		}
	}
}

func TestHandleSubmissionReportsUnlinkedAccount(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.accounts.err = ports.ErrNotFound
	resp := f.handler.handleSubmission(context.Background(), submissionCallback(t, "7"))
	if resp.ResponseAction != "errors" || resp.Errors[generalErrorKey] == "" {
		t.Fatalf("expected general error for unlinked account, got %+v", resp)
	}
	if f.forwarder.calls != 0 {
		t.Fatalf("expected no forward call for unlinked account")
	}
}

type downstreamError struct{ message string }

func (e downstreamError) Error() string             { return "pin endpoint rejected request" }
func (e downstreamError) DownstreamMessage() string { return e.message }

func TestHandleSubmissionSurfacesDownstreamMessage(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.forwarder.err = downstreamError{message: "You are not a member of that project."}
	resp := f.handler.handleSubmission(context.Background(), submissionCallback(t, "7"))
	if resp.ResponseAction != "errors" {
		t.Fatalf("unexpected response action: %q", resp.ResponseAction)
	}
	if resp.Errors[generalErrorKey] != "You are not a member of that project." {
		t.Fatalf("expected downstream message surfaced, got %v", resp.Errors)
	}
}

func TestHandleSubmissionReportsOpaqueForwardFailure(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.forwarder.err = errors.New("connection refused")
	resp := f.handler.handleSubmission(context.Background(), submissionCallback(t, "7"))
	if resp.ResponseAction != "errors" || resp.Errors[generalErrorKey] == "" {
		t.Fatalf("expected generic error for opaque failure, got %+v", resp)
	}
}

func TestHandleSubmissionOverHTTPIsRepeatable(t *testing.T) {
	t.Parallel()

	meta := `{\"channel_id\":\"C200\",\"channel_name\":\"general\",\"message_ts\":\"1712345678.000100\",\"text\":\"ship it friday\",\"author_id\":\"U900\",\"author_name\":\"jo\",\"permalink\":\"\",\"extra\":{}}`
	payload := fmt.Sprintf(`{
		"type": "view_submission",
		"user": {"id": "U100"},
		"view": {
			"id": "V1",
			"callback_id": "pin_message_modal",
			"private_metadata": "%s",
			"state": {"values": {"project_selection": {"project_select": {"type": "static_select", "selected_option": {"value": "7"}}}}}
		}
	}`, meta)

	f := newFixture()
	for attempt := range 2 {
		rec := httptest.NewRecorder()
		if err := f.handler.Handle(rec, signedRequest(t, testSigningSecret, payload)); err != nil {
			t.Fatalf("attempt %d: handle: %v", attempt, err)
		}
		resp := decodeViewResponse(t, rec)
		if resp.ResponseAction != "clear" {
			t.Fatalf("attempt %d: unexpected response action: %q errors=%v", attempt, resp.ResponseAction, resp.Errors)
		}
	}
	if f.forwarder.calls != 2 {
		t.Fatalf("expected a forward per submission, got %d", f.forwarder.calls)
	}
	if f.forwarder.reqs[0] != f.forwarder.reqs[1] {
		t.Fatalf("expected identical forwarded requests, got %+v and %+v", f.forwarder.reqs[0], f.forwarder.reqs[1])
	}
}
