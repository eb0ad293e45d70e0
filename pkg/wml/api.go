// Package wml decodes WordprocessingML documents into a validated,
// strongly-typed, read-only model and resolves the effective formatting of
// any run or paragraph by cascading property fragments through document
// defaults, named-style inheritance chains, and direct formatting.
//
// Basic Usage:
//
//	doc, err := wml.OpenFile("report.docx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resolver := doc.Resolver()
//	for _, para := range doc.Paragraphs() {
//	    resolved, err := resolver.ResolveParagraph(para)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(para.GetText(), resolved.Paragraph.Alignment)
//	}
//
// Decoding is strict: the first structural violation in document order
// aborts with a typed error, and no partially-populated model escapes.
package wml

import (
	"io"
)

// DocFile bundles a decoded document with its style registry and package
// reader.
type DocFile struct {
	reader   *DocxReader
	Document *Document
	Styles   *StyleRegistry
}

// OpenFile opens and fully decodes a DOCX file.
func OpenFile(path string) (*DocFile, error) {
	reader, err := DocxReaderFromFile(path)
	if err != nil {
		return nil, err
	}
	return decodeDocFile(reader)
}

// Open opens and fully decodes an in-memory DOCX package.
func Open(r io.ReaderAt, size int64) (*DocFile, error) {
	reader, err := NewDocxReader(r, size)
	if err != nil {
		return nil, err
	}
	return decodeDocFile(reader)
}

func decodeDocFile(reader *DocxReader) (*DocFile, error) {
	root, err := reader.DocumentRoot()
	if err != nil {
		return nil, err
	}
	document, err := DecodeDocument(root)
	if err != nil {
		return nil, err
	}

	styles := NewStyleRegistry()
	stylesRoot, err := reader.StylesRoot()
	if err != nil {
		return nil, err
	}
	if stylesRoot != nil {
		styles, err = DecodeStyles(stylesRoot)
		if err != nil {
			return nil, err
		}
	}

	GetLogger().WithFields(Fields{
		"elements": len(document.Body.Elements),
		"styles":   styles.Len(),
	}).Debug("decoded document")

	return &DocFile{reader: reader, Document: document, Styles: styles}, nil
}

// Reader returns the underlying package reader.
func (d *DocFile) Reader() *DocxReader {
	return d.reader
}

// Resolver returns a cascade resolver over the document's styles.
func (d *DocFile) Resolver() *Resolver {
	return NewResolver(d.Styles)
}

// Paragraphs returns every paragraph in the body in document order,
// including paragraphs nested inside table cells.
func (d *DocFile) Paragraphs() []*Paragraph {
	return collectParagraphs(d.Document.Body.Elements)
}

func collectParagraphs(elements []BodyElement) []*Paragraph {
	var out []*Paragraph
	for _, element := range elements {
		switch e := element.(type) {
		case *Paragraph:
			out = append(out, e)
		case *Table:
			for _, row := range e.Rows {
				for _, cell := range row.Cells {
					out = append(out, collectParagraphs(cell.Elements)...)
				}
			}
		}
	}
	return out
}
