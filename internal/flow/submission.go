package flow

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// Fixed user-facing messages for the resume submission flow.
const (
	SelectFileAndJobMessage = "Please select a file and job role"
	UploadSuccessMessage    = "Resume uploaded and processed successfully!"
	UploadFailedMessage     = "Upload failed. Please try again."
)

// Uploader is the transport collaborator that ships a resume to the server
// for parsing and scoring.
type Uploader interface {
	UploadResume(ctx context.Context, jobID string, attachment *Attachment) error
}

// PayloadCarrier is implemented by transport errors that kept the raw error
// payload returned by the server.
type PayloadCarrier interface {
	Payload() any
}

func errorPayload(err error) any {
	var carrier PayloadCarrier
	if errors.As(err, &carrier) {
		return carrier.Payload()
	}
	return nil
}

// Submission tracks one resume upload attempt: at most one attached file, an
// optional job selection and the outcome of the last submit.
type Submission struct {
	uploader   Uploader
	logger     *zap.Logger
	attachment *Attachment
	jobID      string
	result     Result[struct{}]
}

func NewSubmission(uploader Uploader, logger *zap.Logger) *Submission {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Submission{uploader: uploader, logger: logger}
}

// Attach keeps the first of the provided files, replacing any previous
// attachment and clearing the prior status.
func (s *Submission) Attach(files ...*Attachment) {
	if len(files) == 0 || files[0] == nil {
		return
	}

	s.attachment = files[0]
	s.result = Result[struct{}]{}

	if s.attachment.Oversized() {
		s.logger.Warn("resume exceeds the advisory size limit",
			zap.String("file", s.attachment.Name),
			zap.Float64("size_mb", s.attachment.SizeMB()),
		)
	}
}

// Remove clears the attachment and status unconditionally.
func (s *Submission) Remove() {
	s.attachment = nil
	s.result = Result[struct{}]{}
}

// SelectJob records the job the resume will be scored against.
func (s *Submission) SelectJob(jobID string) {
	s.jobID = jobID
}

// Attachment returns the currently attached file, if any.
func (s *Submission) Attachment() *Attachment {
	return s.attachment
}

// JobID returns the currently selected job.
func (s *Submission) JobID() string {
	return s.jobID
}

// Status returns the outcome of the last submit attempt.
func (s *Submission) Status() Result[struct{}] {
	return s.result
}

// Submit uploads the attached resume against the selected job. Missing
// preconditions fail locally without touching the network. A successful
// upload clears the attachment and job selection; a failed one keeps the
// attachment so a retry is a single call.
func (s *Submission) Submit(ctx context.Context) Result[struct{}] {
	if s.result.Busy() {
		return s.result
	}

	if s.attachment == nil || s.jobID == "" {
		s.result = failure[struct{}](SelectFileAndJobMessage)
		return s.result
	}

	s.result = Result[struct{}]{State: StateBusy}

	err := s.uploader.UploadResume(ctx, s.jobID, s.attachment)
	if err != nil {
		s.logger.Debug("resume upload failed",
			zap.String("job_id", s.jobID),
			zap.String("file", s.attachment.Name),
			zap.Error(err),
		)
		s.result = failure[struct{}](UploadErrorMessage(errorPayload(err)))
		return s.result
	}

	s.attachment = nil
	s.jobID = ""
	s.result = success(UploadSuccessMessage, struct{}{})
	return s.result
}
