// Package ingestion turns uploaded documents into plain text for analysis.
package ingestion

import (
	"bytes"
	"fmt"
	"html"
	"mime"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Supported content types.
const (
	TypePlain = "text/plain"
	TypeHTML  = "text/html"
	TypePDF   = "application/pdf"
	TypeDOCX  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var extensionTypes = map[string]string{
	".txt":  TypePlain,
	".text": TypePlain,
	".md":   TypePlain,
	".htm":  TypeHTML,
	".html": TypeHTML,
	".pdf":  TypePDF,
	".docx": TypeDOCX,
}

var (
	xmlTag       = regexp.MustCompile(`<[^>]+>`)
	docxBreak    = regexp.MustCompile(`</w:p>|<w:br\s*/>|<w:cr\s*/>`)
	docxTab      = regexp.MustCompile(`<w:tab\s*/>`)
	htmlBlockSel = "p, li, h1, h2, h3, h4, h5, h6, tr, div, br"
)

// UnsupportedTypeError is returned for documents that are not plain text, HTML, PDF or DOCX.
type UnsupportedTypeError struct {
	ContentType string
	Filename    string
}

func (e *UnsupportedTypeError) Error() string {
	if e.Filename != "" {
		return fmt.Sprintf("unsupported document type %q (%s)", e.ContentType, e.Filename)
	}
	return fmt.Sprintf("unsupported document type %q", e.ContentType)
}

// ExtractionError represents a failure to read text out of a supported document.
type ExtractionError struct {
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction failed: %s", e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// DetectType resolves the document type from the declared content type,
// falling back to the file extension when the declaration is missing or generic.
func DetectType(contentType, filename string) string {
	if contentType != "" {
		if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
			switch mediaType {
			case TypePlain, TypeHTML, TypePDF, TypeDOCX:
				return mediaType
			case "text/markdown":
				return TypePlain
			}
		}
	}
	if t, ok := extensionTypes[strings.ToLower(filepath.Ext(filename))]; ok {
		return t
	}
	return contentType
}

// ExtractText returns the cleaned text of data. The returned text is passed
// through CleanText, so line structure survives but control noise does not.
func ExtractText(contentType, filename string, data []byte) (string, error) {
	var (
		text string
		err  error
	)
	switch t := DetectType(contentType, filename); t {
	case TypePlain:
		text = string(data)
	case TypeHTML:
		text, err = extractHTML(data)
	case TypePDF:
		text, err = extractPDF(data)
	case TypeDOCX:
		text, err = extractDOCX(data)
	default:
		return "", &UnsupportedTypeError{ContentType: t, Filename: filename}
	}
	if err != nil {
		return "", err
	}

	text = CleanText(text)
	if text == "" {
		return "", &ExtractionError{Message: "document contains no text"}
	}
	return text, nil
}

func extractHTML(data []byte) (string, error) {
	return htmlText(data, nil, nil)
}

// htmlText parses HTML, removes noise elements, and returns the text of the
// first matching content selector, or of the body when none match.
func htmlText(data []byte, contentSelectors, noiseSelectors []string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", &ExtractionError{Message: "failed to parse HTML", Cause: err}
	}
	doc.Find("script, style, noscript, nav, footer, .sidebar, .advertisement, .cookie-banner").Remove()
	for _, selector := range noiseSelectors {
		doc.Find(selector).Remove()
	}

	// Block elements end with a newline so headers and bullets stay on their own lines.
	doc.Find(htmlBlockSel).Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	for _, selector := range contentSelectors {
		if sel := doc.Find(selector); sel.Length() > 0 {
			return sel.First().Text(), nil
		}
	}
	if body := doc.Find("body"); body.Length() > 0 {
		return body.Text(), nil
	}
	return doc.Text(), nil
}

func extractPDF(data []byte) (text string, err error) {
	// The pdf reader panics on some malformed object streams.
	defer func() {
		if r := recover(); r != nil {
			text, err = "", &ExtractionError{Message: fmt.Sprintf("malformed PDF: %v", r)}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Message: "failed to read PDF", Cause: err}
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(pageText)
		sb.WriteString("\n\n")
	}
	return sb.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Message: "failed to read DOCX", Cause: err}
	}
	defer doc.Close()

	return docxText(doc.Editable().GetContent()), nil
}

// docxText strips WordprocessingML markup, keeping paragraph breaks and tabs.
func docxText(content string) string {
	content = docxBreak.ReplaceAllString(content, "\n")
	content = docxTab.ReplaceAllString(content, "\t")
	content = xmlTag.ReplaceAllString(content, "")
	return html.UnescapeString(content)
}
