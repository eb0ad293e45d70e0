package wml

import (
	"testing"
)

func TestParseXML(t *testing.T) {
	node, err := ParseXML([]byte(`<?xml version="1.0"?><w:document ` + wNS + `><w:body/></w:document>`))
	if err != nil {
		t.Fatalf("ParseXML() unexpected error: %v", err)
	}
	if node.Tag() != "document" {
		t.Errorf("Tag() = %s, want document (local name, prefix stripped)", node.Tag())
	}

	if _, err := ParseXML([]byte(`not xml <<<`)); err == nil {
		t.Error("ParseXML() should fail on malformed input")
	}
	if _, err := ParseXML([]byte(`<?xml version="1.0"?>`)); err == nil {
		t.Error("ParseXML() should fail when no root element exists")
	}
}

func TestNodeAttrLocalName(t *testing.T) {
	node := mustParse(t, `<w:pStyle `+wNS+` w:val="Heading1"/>`)

	value, ok := node.Attr("val")
	if !ok || value != "Heading1" {
		t.Errorf("Attr(val) = %q, %v; want Heading1, true", value, ok)
	}
	if _, ok := node.Attr("missing"); ok {
		t.Error("Attr() reported a missing attribute as present")
	}
}

func TestNodeChildrenOrder(t *testing.T) {
	node := mustParse(t, `<w:p `+wNS+`><w:first/>text<w:second/><!-- note --><w:third/></w:p>`)

	children := node.Children()
	if len(children) != 3 {
		t.Fatalf("Children() returned %d nodes, want 3 (text and comments skipped)", len(children))
	}
	want := []string{"first", "second", "third"}
	for i, child := range children {
		if child.Tag() != want[i] {
			t.Errorf("children[%d] = %s, want %s", i, child.Tag(), want[i])
		}
	}

	if node.Child("second") == nil {
		t.Error("Child() did not find an existing child")
	}
	if node.Child("fourth") != nil {
		t.Error("Child() found a nonexistent child")
	}
	if count := node.ChildCount("first"); count != 1 {
		t.Errorf("ChildCount(first) = %d, want 1", count)
	}
}

func TestNodeText(t *testing.T) {
	node := mustParse(t, `<w:t `+wNS+` xml:space="preserve">  padded  </w:t>`)

	if got := node.Text(); got != "  padded  " {
		t.Errorf("Text() = %q, whitespace must be kept", got)
	}

	nested := mustParse(t, `<w:r `+wNS+`><w:t>inner</w:t></w:r>`)
	if got := nested.Text(); got != "" {
		t.Errorf("Text() = %q, want empty for element-only children", got)
	}
	if got := nested.InnerText(); got != "inner" {
		t.Errorf("InnerText() = %q, want inner", got)
	}
}

func TestNodeQuery(t *testing.T) {
	node := mustParse(t, `<w:body `+wNS+`>
		<w:p><w:r><w:t>one</w:t></w:r></w:p>
		<w:p><w:r><w:t>two</w:t></w:r></w:p>
	</w:body>`)

	found, err := node.Query("//w:t")
	if err != nil {
		t.Fatalf("Query() unexpected error: %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("Query() returned %d nodes, want 2", len(found))
	}
	if found[0].InnerText() != "one" || found[1].InnerText() != "two" {
		t.Error("Query() results out of document order")
	}

	if _, err := node.Query("///broken["); err == nil {
		t.Error("Query() should fail on an invalid expression")
	}
}

func TestNilNodeIsSafe(t *testing.T) {
	var n *Node
	if n.Tag() != "" {
		t.Error("nil Tag() should be empty")
	}
	if _, ok := n.Attr("val"); ok {
		t.Error("nil Attr() should report absent")
	}
	if n.Children() != nil {
		t.Error("nil Children() should be nil")
	}
	if Wrap(nil) != nil {
		t.Error("Wrap(nil) should be nil")
	}
}
