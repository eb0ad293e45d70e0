package wml

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
)

// DocxReader handles reading the parts of a DOCX package that feed the
// decoder: the main document, the styles part, and relationships.
type DocxReader struct {
	reader *zip.Reader
	Parts  map[string]*zip.File
}

const (
	documentPart = "word/document.xml"
	stylesPart   = "word/styles.xml"
)

// Relationship represents a relationship in the DOCX package
type Relationship struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr,omitempty"`
}

// Relationships represents the collection of relationships
type Relationships struct {
	XMLName      xml.Name       `xml:"Relationships"`
	Relationship []Relationship `xml:"Relationship"`
}

// NewDocxReader creates a new DOCX reader over in-memory package data.
func NewDocxReader(r io.ReaderAt, size int64) (*DocxReader, error) {
	zipReader, err := zip.NewReader(r, size)
	if err != nil {
		return nil, NewDocumentError("open", "", fmt.Errorf("failed to read zip file: %w", err))
	}

	dr := &DocxReader{
		reader: zipReader,
		Parts:  make(map[string]*zip.File),
	}

	// Index all parts by name
	for _, file := range zipReader.File {
		dr.Parts[file.Name] = file
	}

	if _, ok := dr.Parts[documentPart]; !ok {
		return nil, NewDocumentError("open", documentPart, fmt.Errorf("not a valid DOCX file: missing part"))
	}

	return dr, nil
}

// DocxReaderFromFile creates a DocxReader from a file path.
func DocxReaderFromFile(path string) (*DocxReader, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, NewDocumentError("read", path, err)
	}
	reader := bytes.NewReader(content)
	return NewDocxReader(reader, int64(len(content)))
}

// GetPart retrieves the content of a specific part.
func (dr *DocxReader) GetPart(partName string) ([]byte, error) {
	file, ok := dr.Parts[partName]
	if !ok {
		return nil, NewDocumentError("read", partName, fmt.Errorf("part not found"))
	}

	rc, err := file.Open()
	if err != nil {
		return nil, NewDocumentError("open", partName, err)
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, NewDocumentError("read", partName, err)
	}

	return content, nil
}

// HasPart reports whether a part exists in the package.
func (dr *DocxReader) HasPart(partName string) bool {
	_, ok := dr.Parts[partName]
	return ok
}

// DocumentRoot parses word/document.xml and returns its root node.
func (dr *DocxReader) DocumentRoot() (*Node, error) {
	content, err := dr.GetPart(documentPart)
	if err != nil {
		return nil, err
	}
	root, err := ParseXML(content)
	if err != nil {
		return nil, NewDocumentError("parse", documentPart, err)
	}
	return root, nil
}

// StylesRoot parses word/styles.xml and returns its root node. A missing
// styles part yields nil without error; documents may omit it.
func (dr *DocxReader) StylesRoot() (*Node, error) {
	if !dr.HasPart(stylesPart) {
		return nil, nil
	}
	content, err := dr.GetPart(stylesPart)
	if err != nil {
		return nil, err
	}
	root, err := ParseXML(content)
	if err != nil {
		return nil, NewDocumentError("parse", stylesPart, err)
	}
	return root, nil
}

// GetRelationships retrieves relationships for a given part. A missing
// relationships part is not an error.
func (dr *DocxReader) GetRelationships(partName string) ([]Relationship, error) {
	dir := ""
	base := partName
	if idx := strings.LastIndex(partName, "/"); idx != -1 {
		dir = partName[:idx]
		base = partName[idx+1:]
	}

	relPath := fmt.Sprintf("%s/_rels/%s.rels", dir, base)
	if dir == "" {
		relPath = fmt.Sprintf("_rels/%s.rels", base)
	}

	file, ok := dr.Parts[relPath]
	if !ok {
		return []Relationship{}, nil
	}

	rc, err := file.Open()
	if err != nil {
		return nil, NewDocumentError("open", relPath, err)
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, NewDocumentError("read", relPath, err)
	}

	var rels Relationships
	if err := xml.Unmarshal(content, &rels); err != nil {
		return nil, NewDocumentError("parse", relPath, err)
	}

	return rels.Relationship, nil
}

// HyperlinkTarget resolves a hyperlink relationship id to its target URL.
func (dr *DocxReader) HyperlinkTarget(relationshipID string) (string, error) {
	rels, err := dr.GetRelationships(documentPart)
	if err != nil {
		return "", err
	}
	for _, rel := range rels {
		if rel.ID == relationshipID {
			return rel.Target, nil
		}
	}
	return "", NewDocumentError("resolve", relationshipID, fmt.Errorf("relationship not found"))
}

// ListParts returns a list of all part names in the DOCX.
func (dr *DocxReader) ListParts() []string {
	parts := make([]string, 0, len(dr.Parts))
	for name := range dr.Parts {
		parts = append(parts, name)
	}
	return parts
}
