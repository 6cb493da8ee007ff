// Package document converts uploaded resume files (PDF, Word) into plain
// text suitable for section-based field extraction.
package document

// MediaType identifies the declared format of an uploaded document
type MediaType string

// Accepted upload media types
const (
	MediaTypePDF  MediaType = "application/pdf"
	MediaTypeDoc  MediaType = "application/msword"
	MediaTypeDocx MediaType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MediaTypeText MediaType = "text/plain"
)

// Document is an opaque byte buffer plus its declared media type. It is
// created at file-selection time and consumed once by ExtractText.
type Document struct {
	Data      []byte
	MediaType MediaType
}

// MediaTypeForExtension maps a lowercase file extension (with leading dot)
// to its media type. Returns "" for unsupported extensions.
func MediaTypeForExtension(ext string) MediaType {
	switch ext {
	case ".pdf":
		return MediaTypePDF
	case ".doc":
		return MediaTypeDoc
	case ".docx":
		return MediaTypeDocx
	case ".txt":
		return MediaTypeText
	default:
		return ""
	}
}
