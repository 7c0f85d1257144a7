package flow

import (
	"encoding/json"
	"strings"
)

// An extractor pulls a user-facing message out of a raw error payload.
// Extractors are tried in order and the first non-empty result wins, which
// keeps the fallback precedence flat and testable.
type extractor func(payload any) string

func stringPayload(payload any) string {
	s, _ := payload.(string)
	return strings.TrimSpace(s)
}

func objectField(name string) extractor {
	return func(payload any) string {
		obj, ok := payload.(map[string]any)
		if !ok {
			return ""
		}
		s, _ := obj[name].(string)
		return strings.TrimSpace(s)
	}
}

func serializedPayload(payload any) string {
	obj, ok := payload.(map[string]any)
	if !ok || len(obj) == 0 {
		return ""
	}
	data, err := json.Marshal(obj)
	if err != nil {
		return ""
	}
	return string(data)
}

// jobCreateExtractors is the contract order for job-creation error payloads:
// a bare string is used verbatim, then detail, message and error fields, then
// the whole payload serialized as a last resort before the generic fallback.
var jobCreateExtractors = []extractor{
	stringPayload,
	objectField("detail"),
	objectField("message"),
	objectField("error"),
	serializedPayload,
}

// uploadExtractors is the shorter chain for resume-upload failures: only an
// explicit message field is trusted.
var uploadExtractors = []extractor{
	objectField("message"),
}

// ExtractMessage runs the extractors against the payload and falls back to
// the provided generic message when none of them produce anything.
func ExtractMessage(payload any, extractors []extractor, fallback string) string {
	for _, extract := range extractors {
		if msg := extract(payload); msg != "" {
			return msg
		}
	}
	return fallback
}

// JobCreateErrorMessage derives the message shown after a failed job creation.
func JobCreateErrorMessage(payload any) string {
	return ExtractMessage(payload, jobCreateExtractors, JobCreateFailedMessage)
}

// UploadErrorMessage derives the message shown after a failed resume upload.
func UploadErrorMessage(payload any) string {
	return ExtractMessage(payload, uploadExtractors, UploadFailedMessage)
}
