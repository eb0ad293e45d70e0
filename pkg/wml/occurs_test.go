package wml

import (
	"testing"
)

func TestOccursValidate(t *testing.T) {
	tests := []struct {
		name    string
		occurs  Occurs
		actual  int
		wantErr bool
	}{
		{name: "zero below min two", occurs: Occurs{Min: 2, Max: Unbounded}, actual: 0, wantErr: true},
		{name: "one below min two", occurs: Occurs{Min: 2, Max: Unbounded}, actual: 1, wantErr: true},
		{name: "exactly min two", occurs: Occurs{Min: 2, Max: Unbounded}, actual: 2},
		{name: "many above min two", occurs: Occurs{Min: 2, Max: Unbounded}, actual: 17},
		{name: "above bounded max", occurs: Occurs{Min: 0, Max: 1}, actual: 2, wantErr: true},
		{name: "within bounds", occurs: Occurs{Min: 1, Max: 3}, actual: 3},
		{name: "optional absent", occurs: OccursOptional, actual: 0},
		{name: "required absent", occurs: OccursOnce, actual: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.occurs.Validate("parent", "child", tt.actual)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				limitErr, ok := err.(*LimitViolationError)
				if !ok {
					t.Fatalf("expected LimitViolationError, got %T", err)
				}
				if limitErr.Element != "parent" || limitErr.Child != "child" {
					t.Errorf("error names wrong site: %+v", limitErr)
				}
				if limitErr.Actual != tt.actual {
					t.Errorf("error actual = %d, want %d", limitErr.Actual, tt.actual)
				}
			}
		})
	}
}

func TestRequireChild(t *testing.T) {
	node := mustParse(t, `<w:p `+wNS+`><w:pPr/></w:p>`)

	child, err := RequireChild(node, "pPr")
	if err != nil {
		t.Fatalf("RequireChild() unexpected error: %v", err)
	}
	if child.Tag() != "pPr" {
		t.Errorf("RequireChild() tag = %s, want pPr", child.Tag())
	}

	_, err = RequireChild(node, "rPr")
	if !IsMissingChildError(err) {
		t.Errorf("expected MissingChildError, got %v", err)
	}
	missing := err.(*MissingChildError)
	if missing.Element != "p" || missing.Expected != "rPr" {
		t.Errorf("error names wrong site: %+v", missing)
	}
}

func TestRequireAttr(t *testing.T) {
	node := mustParse(t, `<w:pStyle `+wNS+` w:val="Heading1"/>`)

	value, err := RequireAttr(node, "val")
	if err != nil {
		t.Fatalf("RequireAttr() unexpected error: %v", err)
	}
	if value != "Heading1" {
		t.Errorf("RequireAttr() = %s, want Heading1", value)
	}

	_, err = RequireAttr(node, "type")
	if !IsMissingAttributeError(err) {
		t.Errorf("expected MissingAttributeError, got %v", err)
	}
}

func TestCollectChildren(t *testing.T) {
	node := mustParse(t, `<w:tbl `+wNS+`><w:tr/><w:tr/><w:tblPr/></w:tbl>`)

	rows, err := CollectChildren(node, "tr", Occurs{Min: 1, Max: Unbounded})
	if err != nil {
		t.Fatalf("CollectChildren() unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Errorf("CollectChildren() returned %d rows, want 2", len(rows))
	}

	_, err = CollectChildren(node, "tr", Occurs{Min: 3, Max: Unbounded})
	if !IsLimitViolationError(err) {
		t.Errorf("expected LimitViolationError, got %v", err)
	}
}
