package message

import (
	"errors"
	"testing"

	"school_hub_server/internal/model"
	"school_hub_server/pkg/constants"
	"school_hub_server/pkg/errorx"
)

func codeOf(t *testing.T, err error) int {
	t.Helper()
	var codeErr *errorx.CodeError
	if !errors.As(err, &codeErr) {
		t.Fatalf("expected a CodeError, got %v", err)
	}
	return codeErr.Code
}

func TestCheckAttachmentCategories(t *testing.T) {
	tests := []struct {
		mimeType string
		want     string
	}{
		{"image/png", model.AttachmentTypeImage},
		{"image/jpeg", model.AttachmentTypeImage},
		{"application/pdf", model.AttachmentTypeDocument},
		{"application/vnd.openxmlformats-officedocument.wordprocessingml.document", model.AttachmentTypeDocument},
		{"text/plain; charset=utf-8", model.AttachmentTypeDocument},
		{"video/mp4", model.AttachmentTypeVideo},
		{"audio/mpeg", model.AttachmentTypeAudio},
	}
	for _, tt := range tests {
		category, err := CheckAttachment(tt.mimeType, 1024)
		if err != nil {
			t.Errorf("CheckAttachment(%q): %v", tt.mimeType, err)
			continue
		}
		if category != tt.want {
			t.Errorf("CheckAttachment(%q) category = %q, want %q", tt.mimeType, category, tt.want)
		}
	}
}

func TestCheckAttachmentRejectsUnknownType(t *testing.T) {
	for _, mimeType := range []string{"application/x-msdownload", "application/zip", "text/html"} {
		_, err := CheckAttachment(mimeType, 1024)
		if codeOf(t, err) != errorx.CodeUnsupportedFileType {
			t.Errorf("CheckAttachment(%q) code = %d, want unsupported-file-type", mimeType, codeOf(t, err))
		}
	}
}

func TestCheckAttachmentSizeCeilingInclusive(t *testing.T) {
	// Exactly the limit passes; one byte over does not.
	if _, err := CheckAttachment("image/png", constants.FILE_MAX_SIZE); err != nil {
		t.Fatalf("file at exactly the limit was rejected: %v", err)
	}
	_, err := CheckAttachment("image/png", constants.FILE_MAX_SIZE+1)
	if codeOf(t, err) != errorx.CodeFileTooLarge {
		t.Fatalf("oversized file code = %d, want file-too-large", codeOf(t, err))
	}
}

func TestCheckAttachmentTypeCheckedBeforeSize(t *testing.T) {
	_, err := CheckAttachment("text/html", constants.FILE_MAX_SIZE+1)
	if codeOf(t, err) != errorx.CodeUnsupportedFileType {
		t.Fatalf("expected the type rejection to win, got code %d", codeOf(t, err))
	}
}

func TestResolveMime(t *testing.T) {
	tests := []struct {
		sniffed  string
		filename string
		want     string
	}{
		// Office documents sniff as zip containers; the extension decides.
		{"application/zip", "report.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
		{"application/x-ole-storage", "legacy.doc", "application/msword"},
		{"application/octet-stream", "notes.pdf", "application/pdf"},
		// A confident sniff wins over the extension.
		{"image/png", "disguised.pdf", "image/png"},
		// No extension to fall back on: keep the sniff.
		{"application/octet-stream", "blob", "application/octet-stream"},
	}
	for _, tt := range tests {
		if got := resolveMime(tt.sniffed, tt.filename); got != tt.want {
			t.Errorf("resolveMime(%q, %q) = %q, want %q", tt.sniffed, tt.filename, got, tt.want)
		}
	}
}

func TestNormalizeMime(t *testing.T) {
	if got := normalizeMime("Text/Plain; charset=UTF-8"); got != "text/plain" {
		t.Fatalf("normalizeMime = %q", got)
	}
}
