package wml

import (
	"testing"
)

const wNS = `xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"`

// mustParse parses an XML fixture and returns its root element.
func mustParse(t *testing.T, data string) *Node {
	t.Helper()
	root, err := ParseXML([]byte(data))
	if err != nil {
		t.Fatalf("parsing fixture: %v", err)
	}
	return root
}

func boolPtr(v bool) *bool {
	return &v
}

func strPtr(v string) *string {
	return &v
}
