// Package extract turns uploaded file payloads into plain text.
package extract

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Result reports one extraction attempt. Failure is data: a bad payload
// produces OK=false with a populated Err, never an error return.
type Result struct {
	Text string
	OK   bool
	Err  string
}

// DefaultMaxBytes bounds decoded upload size when none is configured.
const DefaultMaxBytes = 10 << 20 // 10 MiB

// Extractor decodes base64 file payloads and extracts plain text from
// PDF and textual content.
type Extractor struct {
	maxBytes int64
}

// New creates an Extractor with the given decoded-size bound. maxBytes <= 0
// selects DefaultMaxBytes.
func New(maxBytes int64) *Extractor {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Extractor{maxBytes: maxBytes}
}

// Extract decodes fileData and extracts text according to the declared MIME
// type. filename is informational only; routing is by MIME type.
func (e *Extractor) Extract(filename, mimeType, fileData string) Result {
	if int64(base64.StdEncoding.DecodedLen(len(fileData))) > e.maxBytes {
		return Result{Err: fmt.Sprintf("file exceeds maximum size of %d bytes", e.maxBytes)}
	}

	raw, err := base64.StdEncoding.DecodeString(fileData)
	if err != nil {
		return Result{Err: err.Error()}
	}

	switch {
	case mimeType == "application/pdf":
		return extractPDF(raw)
	case strings.HasPrefix(mimeType, "text/") || mimeType == "application/json":
		// Invalid byte sequences become U+FFFD rather than failing.
		return Result{Text: strings.ToValidUTF8(string(raw), "�"), OK: true}
	default:
		return Result{Err: "Unsupported: " + mimeType}
	}
}

// extractPDF joins the plain text of every page with newlines. A page with
// no extractable text contributes an empty string. The pdf package panics
// on some malformed streams, so corrupt input is recovered into a failure
// result.
func extractPDF(raw []byte) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Result{Err: fmt.Sprintf("corrupt PDF: %v", r)}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return Result{Err: err.Error()}
	}

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			pages = append(pages, "")
			continue
		}
		pages = append(pages, content)
	}

	return Result{Text: strings.TrimSpace(strings.Join(pages, "\n")), OK: true}
}
