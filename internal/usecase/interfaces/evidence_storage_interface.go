package interfaces

import (
	"context"
	"io"
)

// IEvidenceStorage stores uploaded transfer screenshots and returns a reference
// that is persisted on the evidence record.
type IEvidenceStorage interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
}
