package hiredesk

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Shreedhar-Khorate/hiredesk-cli/internal/flow"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := New("test-token", nil)
	client.APIURL = server.URL
	return client
}

func TestListJobs(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != jobsPath {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("unexpected authorization header: %q", got)
		}
		io.WriteString(w, `[{"id":"j1","title":"Go Developer","department":"Platform"},{"id":"j2","title":"SRE"}]`)
	})

	jobs, err := client.ListJobs(context.Background())
	if err != nil {
		t.Fatalf("ListJobs: %v", err)
	}
	if jobs.Len() != 2 {
		t.Fatalf("expected 2 jobs, got %d", jobs.Len())
	}
	if job := jobs.FindByID("j1"); job == nil || job.Label() != "Go Developer - Platform" {
		t.Fatalf("unexpected job: %+v", job)
	}
	if job := jobs.FindByTitle("SRE"); job == nil || job.Label() != "SRE - General" {
		t.Fatalf("expected department fallback, got %+v", job)
	}
}

func TestCreateJobPayloadAndResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
		}

		var payload map[string]string
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		if payload["title"] != "Go Developer" || payload["department"] != "Platform" {
			t.Errorf("unexpected payload: %v", payload)
		}

		io.WriteString(w, `{"id":"j9","title":"Go Developer"}`)
	})

	created, err := client.CreateJob(context.Background(), flow.JobDraft{
		Title:        "Go Developer",
		Description:  "Build services",
		Requirements: "Go",
		Department:   "Platform",
	})
	if err != nil {
		t.Fatalf("CreateJob: %v", err)
	}
	if created.ID != "j9" {
		t.Fatalf("unexpected created job: %+v", created)
	}
}

func TestCreateJobErrorKeepsPayload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"detail":"title already exists"}`)
	})

	_, err := client.CreateJob(context.Background(), flow.JobDraft{Title: "Go Developer"})
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Status != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", apiErr.Status)
	}

	payload, ok := apiErr.Payload().(map[string]any)
	if !ok {
		t.Fatalf("expected map payload, got %T", apiErr.Payload())
	}
	if payload["detail"] != "title already exists" {
		t.Fatalf("unexpected payload: %v", payload)
	}
}

func TestListCandidatesToleratesExtraFields(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("job_id"); got != "j1" {
			t.Errorf("unexpected job_id: %q", got)
		}
		io.WriteString(w, `[
			{"name":"Ada","score":92,"internal_rank":3,"resume":{"uploaded_at":"2025-06-01T10:30:00Z","parsed_data":{"skills":["Go"],"years":6}}},
			{"name":"Grace"}
		]`)
	})

	candidates, err := client.ListCandidates(context.Background(), "j1")
	if err != nil {
		t.Fatalf("ListCandidates: %v", err)
	}
	if candidates.Len() != 2 {
		t.Fatalf("expected 2 candidates, got %d", candidates.Len())
	}

	ada := candidates.FindByName("Ada")
	if ada == nil || ada.Score != 92 {
		t.Fatalf("unexpected candidate: %+v", ada)
	}
	if ada.Resume == nil || ada.Resume.ParsedData == nil || ada.Resume.ParsedData.Years != 6 {
		t.Fatalf("parsed data not decoded: %+v", ada.Resume)
	}

	if grace := candidates.FindByName("Grace"); grace == nil || grace.Resume != nil {
		t.Fatalf("expected candidate without resume, got %+v", grace)
	}
}

func TestUploadResumeMultipartFields(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != uploadPath {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if got := r.FormValue("job_id"); got != "j1" {
			t.Errorf("unexpected job_id field: %q", got)
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("missing file part: %v", err)
		}
		defer file.Close()

		if header.Filename != "resume.pdf" {
			t.Errorf("unexpected filename: %q", header.Filename)
		}
		if got := header.Header.Get("Content-Type"); got != "application/pdf" {
			t.Errorf("unexpected media type: %q", got)
		}

		data, _ := io.ReadAll(file)
		if string(data) != "resume body" {
			t.Errorf("unexpected file content: %q", data)
		}
	})

	path := filepath.Join(t.TempDir(), "resume.pdf")
	if err := os.WriteFile(path, []byte("resume body"), 0o600); err != nil {
		t.Fatal(err)
	}

	attachment, err := flow.NewAttachment(path)
	if err != nil {
		t.Fatalf("NewAttachment: %v", err)
	}

	if err := client.UploadResume(context.Background(), "j1", attachment); err != nil {
		t.Fatalf("UploadResume: %v", err)
	}
}

func TestAuthLoginReturnsSession(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != loginPath {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}

		var payload map[string]string
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		if payload["email"] != "ada@example.com" || payload["password"] != "pw" {
			t.Errorf("unexpected payload: %v", payload)
		}

		io.WriteString(w, `{"token":"tok123","email":"ada@example.com"}`)
	})

	session, err := NewAuth(client, "").Login(context.Background(), "ada@example.com", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if session.Token != "tok123" {
		t.Fatalf("unexpected session: %+v", session)
	}
}

func TestAuthGoogleRequiresToken(t *testing.T) {
	client := New("", nil)

	if _, err := NewAuth(client, "").LoginWithGoogle(context.Background()); err == nil {
		t.Fatal("expected error when google token is unconfigured")
	}
}

func TestAuthErrorCarriesUserMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"message":"Invalid credentials"}`)
	})

	_, err := NewAuth(client, "").Login(context.Background(), "ada@example.com", "bad")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "Invalid credentials") {
		t.Fatalf("expected server message in error, got %q", err)
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.UserMessage() != "Invalid credentials" {
		t.Fatalf("unexpected user message: %q", apiErr.UserMessage())
	}
}

func TestDecodePayloadShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want any
	}{
		{"empty", "", nil},
		{"plain text", "server exploded", "server exploded"},
		{"json string", `"title required"`, "title required"},
		{"json array", `[1,2]`, `[1,2]`},
	}

	for _, tt := range tests {
		if got := decodePayload([]byte(tt.body)); got != tt.want {
			t.Errorf("%s: decodePayload = %#v, want %#v", tt.name, got, tt.want)
		}
	}
}
