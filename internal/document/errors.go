package document

import "fmt"

// UnsupportedFormatError indicates the declared media type is not one of
// the accepted upload formats.
type UnsupportedFormatError struct {
	MediaType MediaType
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported document format: %q", e.MediaType)
}

// CorruptDocumentError indicates the underlying parser rejected the file
type CorruptDocumentError struct {
	MediaType MediaType
	Cause     error
}

func (e *CorruptDocumentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("corrupt %s document: %v", e.MediaType, e.Cause)
	}
	return fmt.Sprintf("corrupt %s document", e.MediaType)
}

func (e *CorruptDocumentError) Unwrap() error {
	return e.Cause
}
