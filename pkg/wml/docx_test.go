package wml

import (
	"archive/zip"
	"bytes"
	"testing"
)

const testDocumentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"
            xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
	<w:body>
		<w:p>
			<w:pPr><w:pStyle w:val="Heading1"/></w:pPr>
			<w:r><w:t>Title</w:t></w:r>
		</w:p>
		<w:p>
			<w:hyperlink r:id="rId1">
				<w:r><w:rPr><w:rStyle w:val="Link"/></w:rPr><w:t>example</w:t></w:r>
			</w:hyperlink>
		</w:p>
		<w:tbl>
			<w:tr><w:tc><w:p><w:r><w:t>cell text</w:t></w:r></w:p></w:tc></w:tr>
		</w:tbl>
	</w:body>
</w:document>`

const testStylesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
	<w:docDefaults>
		<w:rPrDefault><w:rPr><w:sz w:val="22"/></w:rPr></w:rPrDefault>
	</w:docDefaults>
	<w:style w:type="paragraph" w:styleId="Normal" w:default="1">
		<w:name w:val="Normal"/>
	</w:style>
	<w:style w:type="paragraph" w:styleId="Heading1">
		<w:name w:val="heading 1"/>
		<w:basedOn w:val="Normal"/>
		<w:rPr><w:b/><w:sz w:val="32"/></w:rPr>
	</w:style>
	<w:style w:type="character" w:styleId="Link">
		<w:name w:val="Hyperlink"/>
		<w:rPr><w:u w:val="single"/><w:color w:val="0563C1"/></w:rPr>
	</w:style>
</w:styles>`

const testRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
	<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink" Target="https://example.com/" TargetMode="External"/>
</Relationships>`

// createTestDocx builds a minimal DOCX package in memory.
func createTestDocx(t *testing.T, parts map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range parts {
		f, err := w.Create(name)
		if err != nil {
			t.Fatalf("failed to create zip entry %s: %v", name, err)
		}
		if _, err := f.Write([]byte(content)); err != nil {
			t.Fatalf("failed to write zip entry %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close zip writer: %v", err)
	}
	return buf.Bytes()
}

func TestNewDocxReader(t *testing.T) {
	data := createTestDocx(t, map[string]string{
		"word/document.xml": testDocumentXML,
		"word/styles.xml":   testStylesXML,
	})

	reader, err := NewDocxReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("NewDocxReader() unexpected error: %v", err)
	}
	if !reader.HasPart("word/document.xml") {
		t.Error("document part not indexed")
	}
	if !reader.HasPart("word/styles.xml") {
		t.Error("styles part not indexed")
	}
	if reader.HasPart("word/footnotes.xml") {
		t.Error("HasPart() reported an absent part")
	}
	if len(reader.ListParts()) != 2 {
		t.Errorf("ListParts() returned %d parts, want 2", len(reader.ListParts()))
	}
}

func TestNewDocxReaderErrors(t *testing.T) {
	t.Run("not a zip", func(t *testing.T) {
		data := []byte("plain text, not an archive")
		_, err := NewDocxReader(bytes.NewReader(data), int64(len(data)))
		if !IsDocumentError(err) {
			t.Errorf("expected DocumentError, got %v", err)
		}
	})

	t.Run("missing main document part", func(t *testing.T) {
		data := createTestDocx(t, map[string]string{
			"word/styles.xml": testStylesXML,
		})
		_, err := NewDocxReader(bytes.NewReader(data), int64(len(data)))
		if !IsDocumentError(err) {
			t.Errorf("expected DocumentError, got %v", err)
		}
	})
}

func TestDocxReaderGetPart(t *testing.T) {
	data := createTestDocx(t, map[string]string{
		"word/document.xml": testDocumentXML,
	})
	reader, err := NewDocxReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("NewDocxReader() unexpected error: %v", err)
	}

	content, err := reader.GetPart("word/document.xml")
	if err != nil {
		t.Fatalf("GetPart() unexpected error: %v", err)
	}
	if string(content) != testDocumentXML {
		t.Error("GetPart() content mismatch")
	}

	if _, err := reader.GetPart("word/nothing.xml"); !IsDocumentError(err) {
		t.Errorf("expected DocumentError for missing part, got %v", err)
	}
}

func TestDocxReaderStylesOptional(t *testing.T) {
	data := createTestDocx(t, map[string]string{
		"word/document.xml": testDocumentXML,
	})
	reader, err := NewDocxReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("NewDocxReader() unexpected error: %v", err)
	}

	root, err := reader.StylesRoot()
	if err != nil {
		t.Fatalf("StylesRoot() unexpected error: %v", err)
	}
	if root != nil {
		t.Error("StylesRoot() should be nil when the part is absent")
	}
}

func TestDocxReaderHyperlinkTarget(t *testing.T) {
	data := createTestDocx(t, map[string]string{
		"word/document.xml":            testDocumentXML,
		"word/_rels/document.xml.rels": testRelsXML,
	})
	reader, err := NewDocxReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("NewDocxReader() unexpected error: %v", err)
	}

	target, err := reader.HyperlinkTarget("rId1")
	if err != nil {
		t.Fatalf("HyperlinkTarget() unexpected error: %v", err)
	}
	if target != "https://example.com/" {
		t.Errorf("HyperlinkTarget() = %s, want https://example.com/", target)
	}

	if _, err := reader.HyperlinkTarget("rId99"); !IsDocumentError(err) {
		t.Errorf("expected DocumentError for unknown relationship, got %v", err)
	}
}

func TestOpenFullPackage(t *testing.T) {
	data := createTestDocx(t, map[string]string{
		"word/document.xml":            testDocumentXML,
		"word/styles.xml":              testStylesXML,
		"word/_rels/document.xml.rels": testRelsXML,
	})

	doc, err := Open(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("Open() unexpected error: %v", err)
	}

	paragraphs := doc.Paragraphs()
	if len(paragraphs) != 3 {
		t.Fatalf("Paragraphs() returned %d, want 3 including the table cell", len(paragraphs))
	}
	if got := paragraphs[0].GetText(); got != "Title" {
		t.Errorf("first paragraph text = %q, want Title", got)
	}
	if got := paragraphs[2].GetText(); got != "cell text" {
		t.Errorf("table paragraph text = %q, want 'cell text'", got)
	}

	resolver := doc.Resolver()
	resolved, err := resolver.ResolveParagraph(paragraphs[0])
	if err != nil {
		t.Fatalf("ResolveParagraph() unexpected error: %v", err)
	}
	if resolved.Run.Size == nil || *resolved.Run.Size != 32 {
		t.Errorf("heading mark size = %v, want 32 from Heading1", resolved.Run.Size)
	}

	link := paragraphs[1].Content[0].(*Hyperlink)
	run := link.Content[0].(*Run)
	runStyle, err := resolver.ResolveRun(paragraphs[1], run)
	if err != nil {
		t.Fatalf("ResolveRun() unexpected error: %v", err)
	}
	if runStyle.Run.Underline == nil || runStyle.Run.Underline.Style != "single" {
		t.Error("hyperlink run should inherit underline from the Link style")
	}

	target, err := doc.Reader().HyperlinkTarget(link.RelationshipID)
	if err != nil {
		t.Fatalf("HyperlinkTarget() unexpected error: %v", err)
	}
	if target != "https://example.com/" {
		t.Errorf("resolved target = %s, want https://example.com/", target)
	}
}

func TestOpenDecodesStrictly(t *testing.T) {
	broken := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
	<w:body><w:p><w:r><w:drawing/></w:r></w:p></w:body>
</w:document>`
	data := createTestDocx(t, map[string]string{
		"word/document.xml": broken,
	})

	_, err := Open(bytes.NewReader(data), int64(len(data)))
	if !IsNotGroupMemberError(err) {
		t.Errorf("expected NotGroupMemberError, got %v", err)
	}
}
