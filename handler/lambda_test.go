package handler

import (
	"context"
	"encoding/base64"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/require"

	"dafani-support/internal/usecase"
)

func makeEvent(method, path, body string) events.APIGatewayProxyRequest {
	return events.APIGatewayProxyRequest{
		HTTPMethod: method,
		Path:       path,
		Headers:    map[string]string{"content-type": "application/json"},
		Body:       body,
	}
}

func TestHandle_Chat(t *testing.T) {
	uc := &stubUseCase{out: usecase.ChatOutput{Response: "hello", ConversationID: "conv-1"}}
	h := newTestHandler(t, uc)

	resp, err := h.Handle(context.Background(), makeEvent(http.MethodPost, "/chat", `{"message":"Bonjour","conversation_id":"conv-1"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "application/json", resp.Headers["Content-Type"])
	require.NotEmpty(t, resp.Headers["X-Request-Id"])
	require.Equal(t, usecase.ChatInput{Message: "Bonjour", ConversationID: "conv-1"}, uc.in)

	out := parseBody[chatResponse](t, resp.Body)
	require.Equal(t, "hello", out.Response)
	require.Equal(t, "conv-1", out.ConversationID)
}

func TestHandle_Root(t *testing.T) {
	h := newTestHandler(t, &stubUseCase{})

	resp, err := h.Handle(context.Background(), events.APIGatewayProxyRequest{})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, ServiceName, parseBody[rootResponse](t, resp.Body).Message)
}

func TestHandle_EmptyMessage(t *testing.T) {
	h := newTestHandler(t, &stubUseCase{err: &usecase.Error{Code: usecase.ErrorInvalidInput, Reason: "empty_message"}})

	resp, err := h.Handle(context.Background(), makeEvent(http.MethodPost, "/chat", `{"message":""}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandle_Base64Body(t *testing.T) {
	uc := &stubUseCase{out: usecase.ChatOutput{Response: "ok", ConversationID: "abc"}}
	h := newTestHandler(t, uc)

	event := makeEvent(http.MethodPost, "/chat", base64.StdEncoding.EncodeToString([]byte(`{"message":"Où ?"}`)))
	event.IsBase64Encoded = true
	resp, err := h.Handle(context.Background(), event)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "Où ?", uc.in.Message)
}

func TestHandle_InvalidBase64(t *testing.T) {
	h := newTestHandler(t, &stubUseCase{})

	event := makeEvent(http.MethodPost, "/chat", "%%%")
	event.IsBase64Encoded = true
	_, err := h.Handle(context.Background(), event)
	require.Error(t, err)
	require.Contains(t, err.Error(), "base64")
}

func TestHandle_UnknownRoute(t *testing.T) {
	h := newTestHandler(t, &stubUseCase{})

	resp, err := h.Handle(context.Background(), makeEvent(http.MethodGet, "/missing", ""))
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestEventQuery_MergesSingleAndMultiValue(t *testing.T) {
	q := eventQuery(events.APIGatewayProxyRequest{
		QueryStringParameters:           map[string]string{"a": "1", "b": "2"},
		MultiValueQueryStringParameters: map[string][]string{"a": {"1", "3"}},
	})
	require.Equal(t, []string{"1", "3"}, q["a"])
	require.Equal(t, "2", q.Get("b"))
}
