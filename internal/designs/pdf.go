package designs

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
)

// combineImages lays out each image on its own page of a new PDF.
func combineImages(images [][]byte) ([]byte, error) {
	readers := make([]io.Reader, len(images))
	for i, img := range images {
		readers[i] = bytes.NewReader(img)
	}

	var buf bytes.Buffer
	if err := api.ImportImages(nil, &buf, readers, pdfcpu.DefaultImportConfig(), nil); err != nil {
		return nil, fmt.Errorf("import images: %w", err)
	}

	pages, err := api.PageCount(bytes.NewReader(buf.Bytes()), nil)
	if err != nil {
		return nil, fmt.Errorf("count pdf pages: %w", err)
	}
	if pages != len(images) {
		return nil, fmt.Errorf("pdf has %d pages, want %d", pages, len(images))
	}

	return buf.Bytes(), nil
}
