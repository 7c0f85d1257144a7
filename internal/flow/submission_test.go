package flow

import (
	"context"
	"errors"
	"testing"
)

type stubUploader struct {
	calls     int
	err       error
	lastJobID string
	lastFile  string
}

func (s *stubUploader) UploadResume(_ context.Context, jobID string, attachment *Attachment) error {
	s.calls++
	s.lastJobID = jobID
	if attachment != nil {
		s.lastFile = attachment.Name
	}
	return s.err
}

type payloadErr struct {
	payload any
}

func (e *payloadErr) Error() string { return "api error" }

func (e *payloadErr) Payload() any { return e.payload }

func TestSubmissionValidatesBeforeNetwork(t *testing.T) {
	uploader := &stubUploader{}
	submission := NewSubmission(uploader, nil)

	result := submission.Submit(context.Background())

	if !result.Failed() {
		t.Fatalf("expected error state, got %v", result.State)
	}
	if result.Message != SelectFileAndJobMessage {
		t.Fatalf("unexpected message: %q", result.Message)
	}
	if uploader.calls != 0 {
		t.Fatalf("expected zero network calls, got %d", uploader.calls)
	}
}

func TestSubmissionValidatesMissingJob(t *testing.T) {
	uploader := &stubUploader{}
	submission := NewSubmission(uploader, nil)
	submission.Attach(&Attachment{Name: "cv.pdf"})

	result := submission.Submit(context.Background())

	if result.Message != SelectFileAndJobMessage {
		t.Fatalf("unexpected message: %q", result.Message)
	}
	if uploader.calls != 0 {
		t.Fatalf("expected zero network calls, got %d", uploader.calls)
	}
}

func TestSubmissionAttachKeepsFirstAndReplaces(t *testing.T) {
	submission := NewSubmission(&stubUploader{}, nil)

	submission.Attach(&Attachment{Name: "first.pdf"}, &Attachment{Name: "ignored.pdf"})
	if got := submission.Attachment().Name; got != "first.pdf" {
		t.Fatalf("expected first file to be kept, got %q", got)
	}

	// A failed submit leaves a status behind; attaching again must clear it.
	submission.Submit(context.Background())
	if !submission.Status().Failed() {
		t.Fatalf("expected a failed status before re-attach")
	}

	submission.Attach(&Attachment{Name: "second.docx"})
	if got := submission.Attachment().Name; got != "second.docx" {
		t.Fatalf("expected replacement file, got %q", got)
	}
	if submission.Status().State != StateIdle {
		t.Fatalf("expected status cleared after attach, got %v", submission.Status().State)
	}
}

func TestSubmissionRemoveClearsEverything(t *testing.T) {
	submission := NewSubmission(&stubUploader{}, nil)
	submission.Attach(&Attachment{Name: "cv.pdf"})
	submission.Submit(context.Background())

	submission.Remove()

	if submission.Attachment() != nil {
		t.Fatalf("expected attachment cleared")
	}
	if submission.Status().State != StateIdle {
		t.Fatalf("expected status cleared, got %v", submission.Status().State)
	}
}

func TestSubmissionSuccessResetsFileAndJob(t *testing.T) {
	uploader := &stubUploader{}
	submission := NewSubmission(uploader, nil)
	submission.Attach(&Attachment{Name: "cv.pdf"})
	submission.SelectJob("job-1")

	result := submission.Submit(context.Background())

	if !result.Succeeded() {
		t.Fatalf("expected success, got %v", result.State)
	}
	if result.Message != UploadSuccessMessage {
		t.Fatalf("unexpected message: %q", result.Message)
	}
	if uploader.lastJobID != "job-1" || uploader.lastFile != "cv.pdf" {
		t.Fatalf("unexpected upload: job %q file %q", uploader.lastJobID, uploader.lastFile)
	}
	if submission.Attachment() != nil {
		t.Fatalf("expected attachment cleared after success")
	}
	if submission.JobID() != "" {
		t.Fatalf("expected job selection cleared after success")
	}
}

func TestSubmissionFailureKeepsAttachment(t *testing.T) {
	uploader := &stubUploader{err: &payloadErr{payload: map[string]any{"message": "virus scan failed"}}}
	submission := NewSubmission(uploader, nil)
	submission.Attach(&Attachment{Name: "cv.pdf"})
	submission.SelectJob("job-1")

	result := submission.Submit(context.Background())

	if result.Message != "virus scan failed" {
		t.Fatalf("expected server message, got %q", result.Message)
	}
	if submission.Attachment() == nil {
		t.Fatalf("expected attachment preserved so retry is a single call")
	}

	// Retry after the collaborator recovers.
	uploader.err = nil
	result = submission.Submit(context.Background())
	if !result.Succeeded() {
		t.Fatalf("expected retry to succeed, got %v", result.State)
	}
	if uploader.calls != 2 {
		t.Fatalf("expected 2 calls, got %d", uploader.calls)
	}
}

func TestSubmissionFailureFallbackMessage(t *testing.T) {
	uploader := &stubUploader{err: errors.New("connection refused")}
	submission := NewSubmission(uploader, nil)
	submission.Attach(&Attachment{Name: "cv.pdf"})
	submission.SelectJob("job-1")

	result := submission.Submit(context.Background())

	if result.Message != UploadFailedMessage {
		t.Fatalf("expected generic fallback, got %q", result.Message)
	}
}
