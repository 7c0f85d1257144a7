package flow

import (
	"encoding/json"
	"testing"
)

func TestJobCreateErrorMessagePrecedence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload any
		expect  string
	}{
		{
			name:    "string payload used verbatim",
			payload: "title required",
			expect:  "title required",
		},
		{
			name:    "detail field",
			payload: map[string]any{"detail": "x"},
			expect:  "x",
		},
		{
			name:    "detail wins over message and error",
			payload: map[string]any{"detail": "d", "message": "m", "error": "e"},
			expect:  "d",
		},
		{
			name:    "message field",
			payload: map[string]any{"message": "m"},
			expect:  "m",
		},
		{
			name:    "error field",
			payload: map[string]any{"error": "e"},
			expect:  "e",
		},
		{
			name:    "empty object falls back",
			payload: map[string]any{},
			expect:  JobCreateFailedMessage,
		},
		{
			name:    "nil payload falls back",
			payload: nil,
			expect:  JobCreateFailedMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := JobCreateErrorMessage(tt.payload); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestJobCreateErrorMessageSerializesUnknownShape(t *testing.T) {
	payload := map[string]any{"code": "ERR_42"}

	got := JobCreateErrorMessage(payload)

	var decoded map[string]any
	if err := json.Unmarshal([]byte(got), &decoded); err != nil {
		t.Fatalf("expected serialized payload, got %q: %v", got, err)
	}
	if decoded["code"] != "ERR_42" {
		t.Fatalf("unexpected serialized payload: %q", got)
	}
}

func TestUploadErrorMessage(t *testing.T) {
	if got := UploadErrorMessage(map[string]any{"message": "too large"}); got != "too large" {
		t.Fatalf("expected server message, got %q", got)
	}

	if got := UploadErrorMessage(map[string]any{"detail": "ignored"}); got != UploadFailedMessage {
		t.Fatalf("expected fallback for detail-only payload, got %q", got)
	}

	if got := UploadErrorMessage(nil); got != UploadFailedMessage {
		t.Fatalf("expected fallback for nil payload, got %q", got)
	}
}
