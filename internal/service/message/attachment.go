package message

import (
	"mime"
	"path/filepath"
	"strings"

	"school_hub_server/internal/model"
	"school_hub_server/pkg/constants"
	"school_hub_server/pkg/errorx"
)

// allowedMimeTypes maps each accepted MIME type to its attachment category.
var allowedMimeTypes = map[string]string{
	"image/jpeg": model.AttachmentTypeImage,
	"image/png":  model.AttachmentTypeImage,
	"image/gif":  model.AttachmentTypeImage,
	"image/webp": model.AttachmentTypeImage,

	"application/pdf":    model.AttachmentTypeDocument,
	"application/msword": model.AttachmentTypeDocument,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": model.AttachmentTypeDocument,
	"application/vnd.ms-excel": model.AttachmentTypeDocument,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": model.AttachmentTypeDocument,
	"text/plain": model.AttachmentTypeDocument,

	"video/mp4":  model.AttachmentTypeVideo,
	"video/webm": model.AttachmentTypeVideo,

	"audio/mpeg": model.AttachmentTypeAudio,
	"audio/ogg":  model.AttachmentTypeAudio,
	"audio/wav":  model.AttachmentTypeAudio,
}

// AttachmentCategory resolves a MIME type (parameters stripped) to its
// category, reporting whether it is allowed at all.
func AttachmentCategory(mimeType string) (string, bool) {
	category, ok := allowedMimeTypes[normalizeMime(mimeType)]
	return category, ok
}

// CheckAttachment validates a prospective attachment. The two failure modes
// carry distinct codes so the API can answer 415 versus 413 precisely; both
// messages name the offending value and the limit.
func CheckAttachment(mimeType string, size int64) (string, error) {
	category, ok := AttachmentCategory(mimeType)
	if !ok {
		return "", errorx.Newf(errorx.CodeUnsupportedFileType,
			"file type %s is not allowed", normalizeMime(mimeType))
	}
	if size > constants.FILE_MAX_SIZE {
		return "", errorx.Newf(errorx.CodeFileTooLarge,
			"file is %d bytes, limit is %d", size, constants.FILE_MAX_SIZE)
	}
	return category, nil
}

// extensionMimeTypes covers the office extensions the platform mime table
// often lacks. mime.TypeByExtension handles the rest.
var extensionMimeTypes = map[string]string{
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".xls":  "application/vnd.ms-excel",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".pdf":  "application/pdf",
	".txt":  "text/plain",
}

// resolveMime picks the effective MIME type from the sniffed content and the
// original filename. Magic-byte sniffing cannot tell office documents apart
// (they look like zip or ole containers), so generic sniffs defer to the
// extension.
func resolveMime(sniffed, filename string) string {
	sniffed = normalizeMime(sniffed)
	switch sniffed {
	case "application/octet-stream", "application/zip", "application/x-ole-storage", "":
		ext := strings.ToLower(filepath.Ext(filename))
		if byExt, ok := extensionMimeTypes[ext]; ok {
			return byExt
		}
		if byExt := normalizeMime(mime.TypeByExtension(ext)); byExt != "" {
			return byExt
		}
	}
	return sniffed
}

func normalizeMime(mimeType string) string {
	if i := strings.Index(mimeType, ";"); i >= 0 {
		mimeType = mimeType[:i]
	}
	return strings.TrimSpace(strings.ToLower(mimeType))
}
