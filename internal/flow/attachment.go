package flow

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MaxAttachmentSize is advisory: oversized files are reported but never
// rejected locally, the server has the final say.
const MaxAttachmentSize = 10 << 20

var allowedMediaTypes = map[string]string{
	".pdf":  "application/pdf",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
}

// Attachment is a resume file picked for upload.
type Attachment struct {
	Name      string
	Path      string
	Size      int64
	MediaType string
}

// NewAttachment stats the file at path and validates it against the resume
// allow-list (PDF, DOCX, JPEG).
func NewAttachment(path string) (*Attachment, error) {
	ext := strings.ToLower(filepath.Ext(path))
	mediaType, ok := allowedMediaTypes[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported resume type %q: expected PDF, DOCX or JPEG", ext)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading resume file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("resume path %q is a directory", path)
	}

	return &Attachment{
		Name:      filepath.Base(path),
		Path:      path,
		Size:      info.Size(),
		MediaType: mediaType,
	}, nil
}

// Oversized reports whether the file exceeds the advisory size limit.
func (a *Attachment) Oversized() bool {
	return a.Size > MaxAttachmentSize
}

func (a *Attachment) SizeMB() float64 {
	return float64(a.Size) / (1 << 20)
}
