package hiredesk

import (
	"context"
	"fmt"
	"os"

	"github.com/Shreedhar-Khorate/hiredesk-cli/internal/flow"
)

// UploadResume ships one resume file plus its job reference as a multipart
// request to the parsing and scoring engine.
func (c *Client) UploadResume(ctx context.Context, jobID string, attachment *flow.Attachment) error {
	if attachment == nil {
		return fmt.Errorf("attachment is required")
	}

	file, err := os.Open(attachment.Path)
	if err != nil {
		return fmt.Errorf("open resume file: %w", err)
	}
	defer file.Close()

	fields := map[string]string{"job_id": jobID}

	return c.postMultipart(ctx, c.APIURL+uploadPath, fields, "file", attachment.Name, attachment.MediaType, file)
}
