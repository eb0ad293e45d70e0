package wml

// Typed document model. Every constructor below goes through the choice
// dispatcher and the occurrence validator, so a value that exists is
// structurally valid.

// BodyElement is any element that can appear in the document body.
type BodyElement interface {
	isBodyElement()
}

// ParagraphContent is any element that can appear inside a paragraph.
type ParagraphContent interface {
	isParagraphContent()
}

// RunContent is any element that can appear inside a run.
type RunContent interface {
	isRunContent()
}

// Document is the root of the typed tree.
type Document struct {
	Body *Body
}

// Body holds the document's block-level elements in document order.
type Body struct {
	Elements []BodyElement
	Section  *SectionProperties
}

// Paragraph is a block of paragraph content with optional properties.
type Paragraph struct {
	Properties *ParagraphProperties
	Content    []ParagraphContent
}

func (p *Paragraph) isBodyElement() {}

// GetText returns the concatenated text of all runs in the paragraph,
// including runs nested in hyperlinks and fields.
func (p *Paragraph) GetText() string {
	var out string
	for _, content := range p.Content {
		switch c := content.(type) {
		case *Run:
			out += c.GetText()
		case *Hyperlink:
			out += c.GetText()
		case *SimpleField:
			out += c.GetText()
		}
	}
	return out
}

// Run is a sequence of run content sharing one set of properties.
type Run struct {
	Properties *RunProperties
	Content    []RunContent
}

func (r *Run) isParagraphContent() {}

// GetText returns the text content of the run.
func (r *Run) GetText() string {
	var out string
	for _, content := range r.Content {
		if t, ok := content.(*Text); ok {
			out += t.Value
		}
	}
	return out
}

// Hyperlink wraps paragraph content behind a link target.
type Hyperlink struct {
	RelationshipID string
	Anchor         string
	History        *bool
	Content        []ParagraphContent
}

func (h *Hyperlink) isParagraphContent() {}

// GetText returns the text of the hyperlink's nested content.
func (h *Hyperlink) GetText() string {
	var out string
	for _, content := range h.Content {
		if r, ok := content.(*Run); ok {
			out += r.GetText()
		}
	}
	return out
}

// SimpleField is a fldSimple element: a field instruction with its cached
// result as nested content.
type SimpleField struct {
	Instruction string
	Content     []ParagraphContent
}

func (f *SimpleField) isParagraphContent() {}

// GetText returns the text of the field's cached result.
func (f *SimpleField) GetText() string {
	var out string
	for _, content := range f.Content {
		if r, ok := content.(*Run); ok {
			out += r.GetText()
		}
	}
	return out
}

// SubDocument references an external subdocument by relationship id.
type SubDocument struct {
	RelationshipID string
}

func (s *SubDocument) isParagraphContent() {}

// BookmarkStart opens a named bookmark range.
type BookmarkStart struct {
	ID   int64
	Name string
}

func (b *BookmarkStart) isParagraphContent() {}

// BookmarkEnd closes a bookmark range.
type BookmarkEnd struct {
	ID int64
}

func (b *BookmarkEnd) isParagraphContent() {}

// CommentRangeStart opens a comment anchor range.
type CommentRangeStart struct {
	ID int64
}

func (c *CommentRangeStart) isParagraphContent() {}

// CommentRangeEnd closes a comment anchor range.
type CommentRangeEnd struct {
	ID int64
}

func (c *CommentRangeEnd) isParagraphContent() {}

// ProofError marks a spelling or grammar squiggle boundary.
type ProofError struct {
	Type string
}

func (p *ProofError) isParagraphContent() {}

// PermStart opens an editing permission range.
type PermStart struct {
	ID          string
	EditorGroup string
}

func (p *PermStart) isParagraphContent() {}

// PermEnd closes an editing permission range.
type PermEnd struct {
	ID string
}

func (p *PermEnd) isParagraphContent() {}

// Text is literal run text.
type Text struct {
	Value         string
	PreserveSpace bool
}

func (t *Text) isRunContent() {}

// Break is a line, column, or page break.
type Break struct {
	Type  string
	Clear string
}

func (b *Break) isRunContent() {}

// TabChar is a tab character.
type TabChar struct{}

func (t *TabChar) isRunContent() {}

// NoBreakHyphen is a non-breaking hyphen character.
type NoBreakHyphen struct{}

func (n *NoBreakHyphen) isRunContent() {}

// CarriageReturn is a carriage return character.
type CarriageReturn struct{}

func (c *CarriageReturn) isRunContent() {}

// Symbol is a character from a specific symbol font.
type Symbol struct {
	Font string
	Char string
}

func (s *Symbol) isRunContent() {}

// FieldChar delimits a complex field (begin, separate, end).
type FieldChar struct {
	Type string
}

func (f *FieldChar) isRunContent() {}

// InstrText is a field instruction fragment inside a complex field.
type InstrText struct {
	Value string
}

func (i *InstrText) isRunContent() {}

// Table is a minimally modeled table: enough structure to cascade the
// styles of the paragraphs inside its cells.
type Table struct {
	Properties *TableProperties
	Rows       []*TableRow
}

func (t *Table) isBodyElement() {}

// TableProperties currently carries only the table style reference.
type TableProperties struct {
	StyleID *string
}

// TableRow is one table row.
type TableRow struct {
	Cells []*TableCell
}

// TableCell holds block content.
type TableCell struct {
	Elements []BodyElement
}

// SectionProperties carries the page geometry of a section.
type SectionProperties struct {
	PageSize    *PageSize
	PageMargins *PageMargins
}

func (s *SectionProperties) isBodyElement() {}

// PageSize is the page extent in twentieths of a point.
type PageSize struct {
	Width  uint64
	Height uint64
}

// PageMargins are the page margins in twentieths of a point.
type PageMargins struct {
	Top    int64
	Right  int64
	Bottom int64
	Left   int64
	Header int64
	Footer int64
	Gutter int64
}

// Choice group wiring. The paragraph-level set composes three groups in a
// fixed priority order: ordinary content first, range markup second, and
// run-level bookkeeping last. The sets are built in init so the decoder
// functions below can dispatch nested content back through them.
var (
	bodyGroups      *GroupSet[BodyElement]
	paragraphGroups *GroupSet[ParagraphContent]
	runGroups       *GroupSet[RunContent]
	cellGroups      *GroupSet[BodyElement]
)

func init() {
	runContent := NewChoiceGroup[RunContent]("run content").
		Bind("t", decodeText).
		Bind("br", decodeBreak).
		Bind("tab", decodeTabChar).
		Bind("noBreakHyphen", decodeNoBreakHyphen).
		Bind("cr", decodeCarriageReturn).
		Bind("sym", decodeSymbol).
		Bind("fldChar", decodeFieldChar).
		Bind("instrText", decodeInstrText)
	runGroups = MustGroupSet("run content", runContent)

	content := NewChoiceGroup[ParagraphContent]("paragraph content").
		Bind("r", decodeRunContent).
		Bind("hyperlink", decodeHyperlinkContent).
		Bind("fldSimple", decodeSimpleFieldContent).
		Bind("subDoc", decodeSubDocumentContent)
	rangeMarkup := NewChoiceGroup[ParagraphContent]("range markup").
		Bind("bookmarkStart", decodeBookmarkStart).
		Bind("bookmarkEnd", decodeBookmarkEnd).
		Bind("commentRangeStart", decodeCommentRangeStart).
		Bind("commentRangeEnd", decodeCommentRangeEnd)
	runLevel := NewChoiceGroup[ParagraphContent]("run-level bookkeeping").
		Bind("proofErr", decodeProofError).
		Bind("permStart", decodePermStart).
		Bind("permEnd", decodePermEnd)
	paragraphGroups = MustGroupSet("paragraph children", content, rangeMarkup, runLevel)

	block := NewChoiceGroup[BodyElement]("body content").
		Bind("p", decodeParagraphElement).
		Bind("tbl", decodeTableElement).
		Bind("sectPr", decodeSectionElement)
	bodyGroups = MustGroupSet("body children", block)

	cellBlock := NewChoiceGroup[BodyElement]("cell content").
		Bind("p", decodeParagraphElement).
		Bind("tbl", decodeTableElement)
	cellGroups = MustGroupSet("cell children", cellBlock)
}

// DecodeDocument decodes the root document element into the typed tree.
func DecodeDocument(root *Node) (*Document, error) {
	if root.Tag() != "document" {
		return nil, NewNotGroupMemberError(root.Tag(), "document root")
	}
	bodies, err := CollectChildren(root, "body", OccursOnce)
	if err != nil {
		return nil, err
	}
	body, err := DecodeBody(bodies[0])
	if err != nil {
		return nil, err
	}
	return &Document{Body: body}, nil
}

// DecodeBody decodes the body's block elements in document order. At most
// one sectPr may close the body.
func DecodeBody(n *Node) (*Body, error) {
	if _, err := CollectChildren(n, "sectPr", OccursOptional); err != nil {
		return nil, err
	}
	elements, err := bodyGroups.DecodeChildren(n)
	if err != nil {
		return nil, err
	}
	body := &Body{}
	for _, element := range elements {
		if section, ok := element.(*SectionProperties); ok {
			body.Section = section
			continue
		}
		body.Elements = append(body.Elements, element)
	}
	return body, nil
}

// DecodeParagraph decodes a w:p element: at most one pPr, then paragraph
// content dispatched across the composed choice groups.
func DecodeParagraph(n *Node) (*Paragraph, error) {
	p := &Paragraph{}
	propNodes, err := CollectChildren(n, "pPr", OccursOptional)
	if err != nil {
		return nil, err
	}
	if len(propNodes) == 1 {
		p.Properties, err = DecodeParagraphProperties(propNodes[0])
		if err != nil {
			return nil, err
		}
	}
	p.Content, err = paragraphGroups.DecodeChildren(n, "pPr")
	if err != nil {
		return nil, err
	}
	return p, nil
}

// DecodeRun decodes a w:r element: at most one rPr, then run content.
func DecodeRun(n *Node) (*Run, error) {
	r := &Run{}
	propNodes, err := CollectChildren(n, "rPr", OccursOptional)
	if err != nil {
		return nil, err
	}
	if len(propNodes) == 1 {
		r.Properties, err = DecodeRunProperties(propNodes[0])
		if err != nil {
			return nil, err
		}
	}
	r.Content, err = runGroups.DecodeChildren(n, "rPr")
	if err != nil {
		return nil, err
	}
	return r, nil
}

func decodeParagraphElement(n *Node) (BodyElement, error) {
	return DecodeParagraph(n)
}

func decodeTableElement(n *Node) (BodyElement, error) {
	return DecodeTable(n)
}

func decodeSectionElement(n *Node) (BodyElement, error) {
	return DecodeSectionProperties(n)
}

func decodeRunContent(n *Node) (ParagraphContent, error) {
	return DecodeRun(n)
}

func decodeHyperlinkContent(n *Node) (ParagraphContent, error) {
	h := &Hyperlink{}
	if id, ok := n.Attr("id"); ok {
		h.RelationshipID = id
	}
	if anchor, ok := n.Attr("anchor"); ok {
		h.Anchor = anchor
	}
	if raw, ok := n.Attr("history"); ok {
		v, err := ParseOnOff(raw)
		if err != nil {
			return nil, err
		}
		h.History = &v
	}
	content, err := paragraphGroups.DecodeChildren(n)
	if err != nil {
		return nil, err
	}
	h.Content = content
	return h, nil
}

func decodeSimpleFieldContent(n *Node) (ParagraphContent, error) {
	instr, err := RequireAttr(n, "instr")
	if err != nil {
		return nil, err
	}
	content, err := paragraphGroups.DecodeChildren(n)
	if err != nil {
		return nil, err
	}
	return &SimpleField{Instruction: instr, Content: content}, nil
}

func decodeSubDocumentContent(n *Node) (ParagraphContent, error) {
	id, err := RequireAttr(n, "id")
	if err != nil {
		return nil, err
	}
	return &SubDocument{RelationshipID: id}, nil
}

func decodeBookmarkStart(n *Node) (ParagraphContent, error) {
	raw, err := RequireAttr(n, "id")
	if err != nil {
		return nil, err
	}
	id, err := ParseInt(raw)
	if err != nil {
		return nil, err
	}
	name, err := RequireAttr(n, "name")
	if err != nil {
		return nil, err
	}
	return &BookmarkStart{ID: id, Name: name}, nil
}

func decodeBookmarkEnd(n *Node) (ParagraphContent, error) {
	raw, err := RequireAttr(n, "id")
	if err != nil {
		return nil, err
	}
	id, err := ParseInt(raw)
	if err != nil {
		return nil, err
	}
	return &BookmarkEnd{ID: id}, nil
}

func decodeCommentRangeStart(n *Node) (ParagraphContent, error) {
	raw, err := RequireAttr(n, "id")
	if err != nil {
		return nil, err
	}
	id, err := ParseInt(raw)
	if err != nil {
		return nil, err
	}
	return &CommentRangeStart{ID: id}, nil
}

func decodeCommentRangeEnd(n *Node) (ParagraphContent, error) {
	raw, err := RequireAttr(n, "id")
	if err != nil {
		return nil, err
	}
	id, err := ParseInt(raw)
	if err != nil {
		return nil, err
	}
	return &CommentRangeEnd{ID: id}, nil
}

var proofErrorValues = []string{"spellStart", "spellEnd", "gramStart", "gramEnd"}

func decodeProofError(n *Node) (ParagraphContent, error) {
	raw, err := RequireAttr(n, "type")
	if err != nil {
		return nil, err
	}
	kind, err := ParseEnum(raw, proofErrorValues)
	if err != nil {
		return nil, err
	}
	return &ProofError{Type: kind}, nil
}

func decodePermStart(n *Node) (ParagraphContent, error) {
	id, err := RequireAttr(n, "id")
	if err != nil {
		return nil, err
	}
	perm := &PermStart{ID: id}
	if group, ok := n.Attr("edGrp"); ok {
		perm.EditorGroup = group
	}
	return perm, nil
}

func decodePermEnd(n *Node) (ParagraphContent, error) {
	id, err := RequireAttr(n, "id")
	if err != nil {
		return nil, err
	}
	return &PermEnd{ID: id}, nil
}

func decodeText(n *Node) (RunContent, error) {
	t := &Text{Value: n.Text()}
	if space, ok := n.Attr("space"); ok && space == "preserve" {
		t.PreserveSpace = true
	}
	return t, nil
}

var breakTypeValues = []string{"page", "column", "textWrapping"}
var breakClearValues = []string{"none", "left", "right", "all"}

func decodeBreak(n *Node) (RunContent, error) {
	br := &Break{}
	if raw, ok := n.Attr("type"); ok {
		v, err := ParseEnum(raw, breakTypeValues)
		if err != nil {
			return nil, err
		}
		br.Type = v
	}
	if raw, ok := n.Attr("clear"); ok {
		v, err := ParseEnum(raw, breakClearValues)
		if err != nil {
			return nil, err
		}
		br.Clear = v
	}
	return br, nil
}

func decodeTabChar(n *Node) (RunContent, error) {
	return &TabChar{}, nil
}

func decodeNoBreakHyphen(n *Node) (RunContent, error) {
	return &NoBreakHyphen{}, nil
}

func decodeCarriageReturn(n *Node) (RunContent, error) {
	return &CarriageReturn{}, nil
}

func decodeSymbol(n *Node) (RunContent, error) {
	char, err := RequireAttr(n, "char")
	if err != nil {
		return nil, err
	}
	sym := &Symbol{Char: char}
	if font, ok := n.Attr("font"); ok {
		sym.Font = font
	}
	return sym, nil
}

var fieldCharValues = []string{"begin", "separate", "end"}

func decodeFieldChar(n *Node) (RunContent, error) {
	raw, err := RequireAttr(n, "fldCharType")
	if err != nil {
		return nil, err
	}
	kind, err := ParseEnum(raw, fieldCharValues)
	if err != nil {
		return nil, err
	}
	return &FieldChar{Type: kind}, nil
}

func decodeInstrText(n *Node) (RunContent, error) {
	return &InstrText{Value: n.Text()}, nil
}

// DecodeTable decodes a w:tbl element. A table requires at least one row
// and every row at least one cell. tblGrid carries column geometry only
// and is accepted and skipped; any other foreign child aborts.
func DecodeTable(n *Node) (*Table, error) {
	table := &Table{}
	for _, child := range n.Children() {
		switch child.Tag() {
		case "tblPr", "tblGrid", "tr":
		default:
			return nil, NewNotGroupMemberError(child.Tag(), "table children")
		}
	}
	if props := n.Child("tblPr"); props != nil {
		table.Properties = &TableProperties{}
		if style := props.Child("tblStyle"); style != nil {
			id, err := stringChild(style)
			if err != nil {
				return nil, err
			}
			table.Properties.StyleID = id
		}
	}
	rows, err := CollectChildren(n, "tr", Occurs{Min: 1, Max: Unbounded})
	if err != nil {
		return nil, err
	}
	for _, rowNode := range rows {
		row, err := decodeTableRow(rowNode)
		if err != nil {
			return nil, err
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

func decodeTableRow(n *Node) (*TableRow, error) {
	for _, child := range n.Children() {
		switch child.Tag() {
		case "tc", "trPr":
		default:
			return nil, NewNotGroupMemberError(child.Tag(), "row children")
		}
	}
	cells, err := CollectChildren(n, "tc", Occurs{Min: 1, Max: Unbounded})
	if err != nil {
		return nil, err
	}
	row := &TableRow{}
	for _, cellNode := range cells {
		cell, err := decodeTableCell(cellNode)
		if err != nil {
			return nil, err
		}
		row.Cells = append(row.Cells, cell)
	}
	return row, nil
}

func decodeTableCell(n *Node) (*TableCell, error) {
	elements, err := cellGroups.DecodeChildren(n, "tcPr")
	if err != nil {
		return nil, err
	}
	if len(elements) == 0 {
		return nil, NewMissingChildError(n.Tag(), "p")
	}
	return &TableCell{Elements: elements}, nil
}

// DecodeSectionProperties decodes the page geometry of a sectPr element.
// Children other than pgSz and pgMar are ignored; section bookkeeping
// like headers and footers is out of scope.
func DecodeSectionProperties(n *Node) (*SectionProperties, error) {
	section := &SectionProperties{}
	if pgSz := n.Child("pgSz"); pgSz != nil {
		size := &PageSize{}
		if raw, ok := pgSz.Attr("w"); ok {
			v, err := ParseUint(raw)
			if err != nil {
				return nil, err
			}
			size.Width = v
		}
		if raw, ok := pgSz.Attr("h"); ok {
			v, err := ParseUint(raw)
			if err != nil {
				return nil, err
			}
			size.Height = v
		}
		section.PageSize = size
	}
	if pgMar := n.Child("pgMar"); pgMar != nil {
		margins := &PageMargins{}
		fields := []struct {
			attr string
			dst  *int64
		}{
			{"top", &margins.Top},
			{"right", &margins.Right},
			{"bottom", &margins.Bottom},
			{"left", &margins.Left},
			{"header", &margins.Header},
			{"footer", &margins.Footer},
			{"gutter", &margins.Gutter},
		}
		for _, f := range fields {
			if raw, ok := pgMar.Attr(f.attr); ok {
				v, err := ParseInt(raw)
				if err != nil {
					return nil, err
				}
				*f.dst = v
			}
		}
		section.PageMargins = margins
	}
	return section, nil
}
