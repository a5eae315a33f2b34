package resume

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"io"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	pdf "github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"golang.org/x/sync/semaphore"
)

const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

	formatPDF  = "pdf"
	formatDOCX = "docx"
	formatText = "text"
)

var (
	reTags     = regexp.MustCompile(`<[^>]+>`)
	reBlanks   = regexp.MustCompile(`[ \t\r\f\v]+`)
	reNewlines = regexp.MustCompile(`\s*\n\s*`)
	errNotUTF8 = errors.New("content is not valid UTF-8 text")
	errNoPages = errors.New("document has no readable pages")
)

// Parser extracts plain text from uploaded resumes and bounds how many
// documents are decoded at the same time.
type Parser struct {
	sem *semaphore.Weighted
}

// NewParser returns a Parser that runs at most maxConcurrent decodes at once.
func NewParser(maxConcurrent int) *Parser {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	return &Parser{sem: semaphore.NewWeighted(int64(maxConcurrent))}
}

// Decode extracts text from a PDF, a DOCX or a plain-text upload. The format
// is taken from the MIME type, then the file extension; anything else is read
// as UTF-8 text.
func (p *Parser) Decode(ctx context.Context, filename, mimeType string, data []byte) (string, error) {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer p.sem.Release(1)

	format := detectFormat(filename, mimeType)
	text, err := ParseResumeText(format, data)
	if err != nil {
		return "", &DecodeError{Filename: filename, Format: format, Err: err}
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyText
	}
	return text, nil
}

func detectFormat(filename, mimeType string) string {
	mimeType = strings.ToLower(strings.TrimSpace(mimeType))
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = strings.TrimSpace(mimeType[:i])
	}
	switch mimeType {
	case MimePDF:
		return formatPDF
	case MimeDOCX:
		return formatDOCX
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return formatPDF
	case ".docx":
		return formatDOCX
	}
	return formatText
}

// ParseResumeText extracts plain text from data in the given format
// ("pdf", "docx" or "text").
func ParseResumeText(format string, data []byte) (string, error) {
	switch format {
	case formatPDF:
		return extractTextFromPDF(data)
	case formatDOCX:
		return extractTextFromDocx(data)
	case formatText:
		if !utf8.Valid(data) {
			return "", errNotUTF8
		}
		return normalizeWhitespace(string(data)), nil
	default:
		return "", fmt.Errorf("unsupported format %q", format)
	}
}

func extractTextFromPDF(data []byte) (text string, err error) {
	// the pdf reader panics on some malformed inputs
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("malformed pdf: %v", r)
		}
	}()
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	if r.NumPage() == 0 {
		return "", errNoPages
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", err
	}
	return normalizeWhitespace(buf.String()), nil
}

func extractTextFromDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	defer doc.Close()

	xml := doc.Editable().GetContent()
	// Convert paragraph boundaries to newlines (very naive but effective).
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	txt := reTags.ReplaceAllString(xml, " ")
	return normalizeWhitespace(html.UnescapeString(txt)), nil
}

func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\u00A0", " ")
	s = reBlanks.ReplaceAllString(s, " ")
	// Preserve line breaks but collapse runs and the blanks around them
	s = reNewlines.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
