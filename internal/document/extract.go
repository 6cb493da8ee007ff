package document

import (
	"bytes"
	"strings"

	"code.sajari.com/docconv"
	"github.com/ledongthuc/pdf"
)

// ExtractText converts a document into plain text. PDF pages are joined by
// a newline with text runs within a page joined by single spaces; Word
// documents go through a raw-text conversion that strips formatting. A blank
// document yields an empty string rather than an error. There is no retry:
// parser failures surface immediately as CorruptDocumentError.
func ExtractText(doc Document) (string, error) {
	switch doc.MediaType {
	case MediaTypePDF:
		return extractPDF(doc.Data)
	case MediaTypeDoc, MediaTypeDocx:
		return extractWord(doc)
	case MediaTypeText:
		return strings.TrimSpace(string(doc.Data)), nil
	default:
		return "", &UnsupportedFormatError{MediaType: doc.MediaType}
	}
}

// extractPDF walks pages in order and accumulates their text runs
func extractPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &CorruptDocumentError{MediaType: MediaTypePDF, Cause: err}
	}

	var pages []string
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		pageText := extractPageText(page)
		if pageText == "" {
			continue
		}
		pages = append(pages, pageText)
	}

	return strings.TrimSpace(strings.Join(pages, "\n")), nil
}

// extractPageText joins the positioned text runs of one page with spaces
func extractPageText(page pdf.Page) string {
	content := page.Content()

	var sb strings.Builder
	for _, run := range content.Text {
		s := strings.TrimSpace(run.S)
		if s == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(s)
	}
	return sb.String()
}

// extractWord delegates to docconv's raw-text conversion
func extractWord(doc Document) (string, error) {
	res, err := docconv.Convert(bytes.NewReader(doc.Data), string(doc.MediaType), true)
	if err != nil {
		return "", &CorruptDocumentError{MediaType: doc.MediaType, Cause: err}
	}
	return strings.TrimSpace(res.Body), nil
}
