package flow

import (
	"context"

	"go.uber.org/zap"
)

// JobCreateFailedMessage is shown when nothing usable can be extracted from a
// job-creation error payload.
const JobCreateFailedMessage = "Failed to create job"

// JobDraft holds the fields of a job opening before it is posted. Emptiness
// of the required fields is enforced at the input layer (required flags), not
// by a second validation pass here.
type JobDraft struct {
	Title        string
	Description  string
	Requirements string
	Department   string
}

// JobCreator is the transport collaborator that posts a new job opening and
// returns the record the server created.
type JobCreator[T any] interface {
	CreateJob(ctx context.Context, draft JobDraft) (T, error)
}

// JobCreation drives one job-posting session: idle, then submitting, then
// back to idle carrying either the created job or an error message.
type JobCreation[T any] struct {
	creator JobCreator[T]
	logger  *zap.Logger
	onAdded func(T)
	draft   JobDraft
	result  Result[T]
	closed  bool
}

// NewJobCreation builds the flow. onAdded receives the job exactly as the
// server returned it and may be nil.
func NewJobCreation[T any](creator JobCreator[T], onAdded func(T), logger *zap.Logger) *JobCreation[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JobCreation[T]{creator: creator, onAdded: onAdded, logger: logger}
}

func (j *JobCreation[T]) SetDraft(draft JobDraft) {
	j.draft = draft
}

func (j *JobCreation[T]) Draft() JobDraft {
	return j.draft
}

// Status returns the outcome of the last submit attempt.
func (j *JobCreation[T]) Status() Result[T] {
	return j.result
}

// CloseRequested reports whether the flow asked its host to close after a
// successful creation.
func (j *JobCreation[T]) CloseRequested() bool {
	return j.closed
}

// Reopen resets all fields and error state so a later session starts clean.
func (j *JobCreation[T]) Reopen() {
	j.draft = JobDraft{}
	j.result = Result[T]{}
	j.closed = false
}

// Submit posts the draft. On success the created job is handed to the
// onAdded callback, the draft is cleared and the flow signals close. On
// failure the draft is preserved and the message is derived from the error
// payload.
func (j *JobCreation[T]) Submit(ctx context.Context) Result[T] {
	if j.result.Busy() {
		return j.result
	}

	j.result = Result[T]{State: StateBusy}

	created, err := j.creator.CreateJob(ctx, j.draft)
	if err != nil {
		j.logger.Debug("job creation failed",
			zap.String("title", j.draft.Title),
			zap.Error(err),
		)
		j.result = failure[T](JobCreateErrorMessage(errorPayload(err)))
		return j.result
	}

	if j.onAdded != nil {
		j.onAdded(created)
	}
	j.draft = JobDraft{}
	j.closed = true
	j.result = success("Job created successfully", created)
	return j.result
}
