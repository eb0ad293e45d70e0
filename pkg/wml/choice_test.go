package wml

import (
	"fmt"
	"testing"
)

func TestChoiceGroupMembershipMatchesDispatch(t *testing.T) {
	// Membership and dispatch must never disagree: Contains(tag) is true
	// exactly when Decode does not fail with a membership error.
	for _, group := range []struct {
		tags []string
		try  func(n *Node) error
	}{
		{tags: paragraphGroups.groups[0].Tags(), try: func(n *Node) error {
			_, err := paragraphGroups.groups[0].Decode(n)
			return err
		}},
		{tags: runGroups.groups[0].Tags(), try: func(n *Node) error {
			_, err := runGroups.groups[0].Decode(n)
			return err
		}},
	} {
		for _, tag := range group.tags {
			node := mustParse(t, `<w:`+tag+` `+wNS+`/>`)
			err := group.try(node)
			if IsNotGroupMemberError(err) {
				t.Errorf("tag %s: member tag dispatched to membership error", tag)
			}
		}
	}

	foreign := mustParse(t, `<w:drawing `+wNS+`/>`)
	if paragraphGroups.groups[0].Contains("drawing") {
		t.Error("Contains() claims foreign tag")
	}
	_, err := paragraphGroups.groups[0].Decode(foreign)
	if !IsNotGroupMemberError(err) {
		t.Errorf("Decode() of foreign tag: expected NotGroupMemberError, got %v", err)
	}
}

func TestGroupSetRejectsOverlap(t *testing.T) {
	a := NewChoiceGroup[ParagraphContent]("a").Bind("r", decodeRunContent)
	b := NewChoiceGroup[ParagraphContent]("b").Bind("r", decodeRunContent)

	_, err := NewGroupSet("overlapping", a, b)
	if err == nil {
		t.Fatal("NewGroupSet() accepted overlapping groups")
	}
}

func TestGroupSetClassifyPriority(t *testing.T) {
	tests := []struct {
		tag       string
		wantGroup string
	}{
		{tag: "r", wantGroup: "paragraph content"},
		{tag: "hyperlink", wantGroup: "paragraph content"},
		{tag: "bookmarkStart", wantGroup: "range markup"},
		{tag: "commentRangeEnd", wantGroup: "range markup"},
		{tag: "proofErr", wantGroup: "run-level bookkeeping"},
		{tag: "permStart", wantGroup: "run-level bookkeeping"},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			g := paragraphGroups.Classify(tt.tag)
			if g == nil {
				t.Fatalf("Classify(%s) = nil", tt.tag)
			}
			if g.Name() != tt.wantGroup {
				t.Errorf("Classify(%s) = %s, want %s", tt.tag, g.Name(), tt.wantGroup)
			}
		})
	}

	if g := paragraphGroups.Classify("drawing"); g != nil {
		t.Errorf("Classify(drawing) = %s, want nil", g.Name())
	}
}

func TestDecodeChildrenPreservesOrder(t *testing.T) {
	// Interleaved content, range markup, and bookkeeping siblings keep
	// their original document order in the output sequence.
	node := mustParse(t, `<w:p `+wNS+`>
		<w:bookmarkStart w:id="0" w:name="intro"/>
		<w:r><w:t>one</w:t></w:r>
		<w:proofErr w:type="spellStart"/>
		<w:r><w:t>two</w:t></w:r>
		<w:proofErr w:type="spellEnd"/>
		<w:bookmarkEnd w:id="0"/>
	</w:p>`)

	content, err := paragraphGroups.DecodeChildren(node)
	if err != nil {
		t.Fatalf("DecodeChildren() unexpected error: %v", err)
	}
	if len(content) != 6 {
		t.Fatalf("DecodeChildren() returned %d items, want 6", len(content))
	}

	wantTypes := []string{"*wml.BookmarkStart", "*wml.Run", "*wml.ProofError", "*wml.Run", "*wml.ProofError", "*wml.BookmarkEnd"}
	for i, item := range content {
		got := fmt.Sprintf("%T", item)
		if got != wantTypes[i] {
			t.Errorf("content[%d] = %s, want %s", i, got, wantTypes[i])
		}
	}
}

func TestDecodeChildrenFailsFast(t *testing.T) {
	node := mustParse(t, `<w:p `+wNS+`>
		<w:r><w:t>ok</w:t></w:r>
		<w:drawing/>
		<w:r><w:t>never decoded</w:t></w:r>
	</w:p>`)

	content, err := paragraphGroups.DecodeChildren(node)
	if !IsNotGroupMemberError(err) {
		t.Fatalf("expected NotGroupMemberError, got %v", err)
	}
	if content != nil {
		t.Error("DecodeChildren() returned a partial result alongside the error")
	}
}
