package llm_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openai/openai-go/v3/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mailtriage/internal/domain/email"
	"mailtriage/internal/infrastructure/llm"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *llm.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return llm.NewClient("test-key", "gpt-4o", option.WithBaseURL(srv.URL+"/"), option.WithMaxRetries(0))
}

func completionHandler(t *testing.T, content string) http.HandlerFunc {
	t.Helper()

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(map[string]any{
			"id":     "chatcmpl-test",
			"object": "chat.completion",
			"model":  "gpt-4o",
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message": map[string]any{
					"role":    "assistant",
					"content": content,
				},
			}},
		})
		require.NoError(t, err)
	}
}

func testEmail() *email.Email {
	return email.NewEmail("001", "customer@example.com", "Broken product received",
		"It arrived damaged and I demand a refund.", "2024-03-15T10:30:00Z")
}

func TestClassifyNormalizesModelOutput(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    email.Category
	}{
		{name: "plain token", content: "complaint", want: email.CategoryComplaint},
		{name: "padded uppercase", content: "  Support_Request \n", want: email.CategorySupportRequest},
		{name: "other", content: "other", want: email.CategoryOther},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, completionHandler(t, tc.content))

			got, err := client.Classify(context.Background(), testEmail())
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestClassifyRejectsOutOfSetOutput(t *testing.T) {
	client := newTestClient(t, completionHandler(t, "spam"))

	_, err := client.Classify(context.Background(), testEmail())
	require.ErrorIs(t, err, email.ErrUnknownCategory)
}

func TestClassifyProviderError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"boom"}}`, http.StatusInternalServerError)
	})

	_, err := client.Classify(context.Background(), testEmail())
	require.Error(t, err)
	assert.NotErrorIs(t, err, email.ErrUnknownCategory)
}

func TestDraftReturnsContentVerbatim(t *testing.T) {
	reply := "We're sorry about the damaged order.\nA refund is on its way."
	client := newTestClient(t, completionHandler(t, reply))

	got, err := client.Draft(context.Background(), testEmail(), email.CategoryComplaint)
	require.NoError(t, err)
	assert.Equal(t, reply, got)
}

func TestDraftProviderError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"boom"}}`, http.StatusInternalServerError)
	})

	_, err := client.Draft(context.Background(), testEmail(), email.CategoryFeedback)
	require.Error(t, err)
}
