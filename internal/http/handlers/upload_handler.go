package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avlatos/go-wishlist-backend/internal/problem"
	"github.com/avlatos/go-wishlist-backend/internal/upload"
	"github.com/avlatos/go-wishlist-backend/internal/validation"
)

// AttachmentStore persists validated upload bytes and returns the server
// destination path. The path stays server-side; responses never carry it.
type AttachmentStore interface {
	Save(content []byte) (string, error)
}

// AttachmentResponse is the metadata returned after a successful upload.
// It deliberately excludes any filesystem path.
type AttachmentResponse struct {
	ItemID            int64  `json:"item_id" example:"1"`
	OriginalFilename  string `json:"original_filename" example:"bike.jpg"`
	DetectedMIME      string `json:"detected_mime" example:"image/jpeg"`
	SizeBytes         int64  `json:"size_bytes" example:"48213"`
	GeneratedFilename string `json:"generated_filename" example:"9f2c1f34-7f36-4b86-9d5f-0c1f34b86d5f.jpg"`
}

// UploadAttachment godoc
// @ID          uploadWishlistAttachment
// @Summary     Attach a file to a wishlist item
// @Description Accepts PNG, JPEG, or PDF content. The file type is verified
// @Description from byte signatures against the declared content type, and
// @Description the stored filename is server-generated.
// @Tags        Wishlist
// @Accept      multipart/form-data
// @Produce     json
// @Param       id    path      int   true  "Item ID"
// @Param       file  formData  file  true  "File to attach"
// @Success     201  {object}  handlers.AttachmentResponse
// @Failure     400  {object}  problem.Envelope  "Validation failure"
// @Failure     404  {object}  problem.Envelope  "Item not found"
// @Failure     500  {object}  problem.Envelope  "Internal error"
// @Router      /wishlist/items/{id}/attachments [post]
func (h *Handlers) UploadAttachment(c *gin.Context) {
	id, err := itemID(c)
	if err != nil {
		problem.Dispatch(c, err)
		return
	}
	if _, err := h.svc.Get(c.Request.Context(), id); err != nil {
		problem.Dispatch(c, err)
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		// A body that blew through the server-wide limiter also lands
		// here; it must answer 413, not "file is required".
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			problem.Dispatch(c, err)
			return
		}
		problem.Dispatch(c, &validation.Error{Field: "file", Message: "is required"})
		return
	}

	f, err := fh.Open()
	if err != nil {
		problem.Dispatch(c, err)
		return
	}
	defer f.Close()

	// Read one byte past the ceiling so oversize bodies are detected
	// without buffering them whole.
	content, err := io.ReadAll(io.LimitReader(f, upload.MaxFileSize+1))
	if err != nil {
		problem.Dispatch(c, err)
		return
	}

	validated, err := upload.Validate(content, fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		problem.Dispatch(c, err)
		return
	}

	if _, err := h.uploads.Save(content); err != nil {
		problem.Dispatch(c, err)
		return
	}

	ok(c, http.StatusCreated, AttachmentResponse{
		ItemID:            id,
		OriginalFilename:  validated.OriginalFilename,
		DetectedMIME:      validated.DetectedMIME,
		SizeBytes:         validated.SizeBytes,
		GeneratedFilename: validated.GeneratedFilename,
	})
}
