// internal/apiclient/multipart.go
package apiclient

import (
	"fmt"
	"mime/multipart"
)

// OpenFormFiles turns uploaded files under field into forwardable parts. The
// returned closer must be called once the backend request has finished.
func OpenFormFiles(form *multipart.Form, field string) ([]FilePart, func(), error) {
	var parts []FilePart
	var opened []multipart.File

	closeAll := func() {
		for _, f := range opened {
			f.Close()
		}
	}

	for _, fh := range form.File[field] {
		f, err := fh.Open()
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("failed to open upload %s: %w", fh.Filename, err)
		}
		opened = append(opened, f)
		parts = append(parts, FilePart{Field: field, Name: fh.Filename, Reader: f})
	}

	return parts, closeAll, nil
}
