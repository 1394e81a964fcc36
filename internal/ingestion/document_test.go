package ingestion

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectType(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		filename    string
		want        string
	}{
		{"plain with charset", "text/plain; charset=utf-8", "", TypePlain},
		{"markdown", "text/markdown", "", TypePlain},
		{"pdf by header", "application/pdf", "resume", TypePDF},
		{"pdf by extension", "", "Resume.PDF", TypePDF},
		{"docx by extension", "application/octet-stream", "cv.docx", TypeDOCX},
		{"html by extension", "", "posting.html", TypeHTML},
		{"unknown", "image/png", "photo.png", "image/png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectType(tt.contentType, tt.filename))
		})
	}
}

func TestExtractText_Plain(t *testing.T) {
	text, err := ExtractText(TypePlain, "resume.txt", []byte("Jane Doe\r\nGo developer   \r\n"))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nGo developer", text)
}

func TestExtractText_HTML(t *testing.T) {
	page := `<html><head><style>h1 { color: red; }</style></head>
<body><nav>Menu</nav><h1>Jane Doe</h1><p>Go developer</p><script>track()</script></body></html>`

	text, err := ExtractText("text/html", "", []byte(page))
	require.NoError(t, err)

	assert.Contains(t, text, "Jane Doe\n")
	assert.Contains(t, text, "Go developer")
	assert.NotContains(t, text, "Menu")
	assert.NotContains(t, text, "track()")
	assert.NotContains(t, text, "color")
}

func TestExtractText_Unsupported(t *testing.T) {
	_, err := ExtractText("image/png", "photo.png", []byte{0x89, 0x50})
	require.Error(t, err)

	var typeErr *UnsupportedTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "image/png", typeErr.ContentType)
	assert.Contains(t, err.Error(), "photo.png")
}

func TestExtractText_CorruptPDF(t *testing.T) {
	_, err := ExtractText(TypePDF, "resume.pdf", []byte("this is not a pdf"))
	require.Error(t, err)

	var extractErr *ExtractionError
	assert.ErrorAs(t, err, &extractErr)
}

func TestExtractText_CorruptDOCX(t *testing.T) {
	_, err := ExtractText(TypeDOCX, "resume.docx", []byte("not a zip archive"))
	require.Error(t, err)

	var extractErr *ExtractionError
	require.ErrorAs(t, err, &extractErr)
	assert.NotNil(t, extractErr.Unwrap())
}

func TestExtractText_EmptyDocument(t *testing.T) {
	_, err := ExtractText(TypePlain, "", []byte("  \n\t\n"))
	require.Error(t, err)

	var extractErr *ExtractionError
	assert.ErrorAs(t, err, &extractErr)
}

func TestExtractText_DOCX(t *testing.T) {
	data := buildDocx(t, `<w:document><w:body>`+
		`<w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>`+
		`<w:p><w:r><w:t>Skills:</w:t><w:tab/><w:t>Go &amp; Python</w:t></w:r></w:p>`+
		`</w:body></w:document>`)

	text, err := ExtractText("", "resume.docx", data)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nSkills:\tGo & Python", text)
}

func TestDocxText(t *testing.T) {
	xml := `<w:p><w:r><w:t>First</w:t></w:r><w:br/><w:r><w:t>Second &lt;line&gt;</w:t></w:r></w:p>`
	assert.Equal(t, "First\nSecond <line>\n", docxText(xml))
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Jane Doe\n\n\n\nGo developer"), 0o644))

	text, doc, err := ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe\n\nGo developer", text)
	assert.Equal(t, "resume.txt", doc.Filename)
	assert.Equal(t, TypePlain, doc.ContentType)
	assert.Len(t, doc.Hash, 64)
	assert.Equal(t, len(text), doc.Chars)
	assert.NotEmpty(t, doc.Timestamp)
}

func TestReadFile_NotFound(t *testing.T) {
	_, doc, err := ReadFile("/nonexistent/resume.txt")
	require.Error(t, err)
	assert.Nil(t, doc)
	assert.Contains(t, err.Error(), "file not found")
}

func TestContentHash(t *testing.T) {
	assert.Equal(t, ContentHash("same"), ContentHash("same"))
	assert.NotEqual(t, ContentHash("one"), ContentHash("two"))
}

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	files := map[string]string{
		"[Content_Types].xml":          `<?xml version="1.0" encoding="UTF-8"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"></Types>`,
		"word/_rels/document.xml.rels": `<?xml version="1.0" encoding="UTF-8"?><Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
		"word/document.xml":            documentXML,
	}
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}
