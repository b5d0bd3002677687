package common

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/estatedesk/estatedesk/internal/shared/errors"
)

// Upload is one file read from a multipart form.
type Upload struct {
	FileName    string
	ContentType string
	Data        []byte
}

// ReadUpload reads the named multipart file field. Files larger than maxSize
// are rejected with a validation error.
func ReadUpload(c *gin.Context, field string, maxSize int64) (*Upload, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, errors.NewValidationError(fmt.Sprintf("%s is required", field))
	}
	if fh.Size > maxSize {
		return nil, errors.NewValidationError(fmt.Sprintf("file exceeds maximum size of %d bytes", maxSize))
	}

	f, err := fh.Open()
	if err != nil {
		return nil, errors.NewBadRequestError("failed to read upload")
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxSize+1))
	if err != nil {
		return nil, errors.NewBadRequestError("failed to read upload")
	}
	if int64(len(data)) > maxSize {
		return nil, errors.NewValidationError(fmt.Sprintf("file exceeds maximum size of %d bytes", maxSize))
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}

	return &Upload{FileName: fh.Filename, ContentType: contentType, Data: data}, nil
}

// ServeBinary writes an attachment inline with its stored content type.
func ServeBinary(c *gin.Context, fileName, contentType string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", fileName))
	c.Data(http.StatusOK, contentType, data)
}
