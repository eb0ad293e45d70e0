package wml

import (
	"fmt"
)

// MissingAttributeError reports a required attribute absent from an element.
type MissingAttributeError struct {
	Element   string
	Attribute string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("element '%s' is missing required attribute '%s'", e.Element, e.Attribute)
}

// NewMissingAttributeError creates a new missing attribute error
func NewMissingAttributeError(element, attribute string) error {
	return &MissingAttributeError{Element: element, Attribute: attribute}
}

// MissingChildError reports a required child element absent from its parent.
type MissingChildError struct {
	Element  string
	Expected string
}

func (e *MissingChildError) Error() string {
	return fmt.Sprintf("element '%s' is missing required child '%s'", e.Element, e.Expected)
}

// NewMissingChildError creates a new missing child error
func NewMissingChildError(element, expected string) error {
	return &MissingChildError{Element: element, Expected: expected}
}

// NotGroupMemberError reports a tag that does not belong to any admissible
// choice group at its position.
type NotGroupMemberError struct {
	Element string
	Group   string
}

func (e *NotGroupMemberError) Error() string {
	return fmt.Sprintf("element '%s' is not a member of choice group '%s'", e.Element, e.Group)
}

// NewNotGroupMemberError creates a new group membership error
func NewNotGroupMemberError(element, group string) error {
	return &NotGroupMemberError{Element: element, Group: group}
}

// LimitViolationError reports a repeated child whose occurrence count falls
// outside its declared bounds. Max of -1 means unbounded.
type LimitViolationError struct {
	Element string
	Child   string
	Min     int
	Max     int
	Actual  int
}

func (e *LimitViolationError) Error() string {
	max := "unbounded"
	if e.Max >= 0 {
		max = fmt.Sprintf("%d", e.Max)
	}
	return fmt.Sprintf("element '%s' has %d occurrences of '%s', expected between %d and %s",
		e.Element, e.Actual, e.Child, e.Min, max)
}

// NewLimitViolationError creates a new occurrence limit error
func NewLimitViolationError(element, child string, min, max, actual int) error {
	return &LimitViolationError{Element: element, Child: child, Min: min, Max: max, Actual: actual}
}

// PatternError reports a lexical value that fails a constrained grammar,
// such as the text-scale percentage format.
type PatternError struct {
	Value string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("value '%s' does not match the required pattern", e.Value)
}

// NewPatternError creates a new pattern restriction error
func NewPatternError(value string) error {
	return &PatternError{Value: value}
}

// ParseEnumError reports a token outside its closed string set.
type ParseEnumError struct {
	Value string
}

func (e *ParseEnumError) Error() string {
	return fmt.Sprintf("value '%s' is not a valid enumeration token", e.Value)
}

// NewParseEnumError creates a new enumeration parse error
func NewParseEnumError(value string) error {
	return &ParseEnumError{Value: value}
}

// ParseBoolError reports a token that is not a legal on/off value.
type ParseBoolError struct {
	Value string
}

func (e *ParseBoolError) Error() string {
	return fmt.Sprintf("value '%s' is not a valid on/off token", e.Value)
}

// NewParseBoolError creates a new boolean parse error
func NewParseBoolError(value string) error {
	return &ParseBoolError{Value: value}
}

// ParseHexColorError reports a token that is neither 'auto' nor six hex digits.
type ParseHexColorError struct {
	Value string
}

func (e *ParseHexColorError) Error() string {
	return fmt.Sprintf("value '%s' is not a valid hex color", e.Value)
}

// NewParseHexColorError creates a new hex color parse error
func NewParseHexColorError(value string) error {
	return &ParseHexColorError{Value: value}
}

// ParseIntError reports a numeric token that failed integer parsing.
type ParseIntError struct {
	Value string
	Cause error
}

func (e *ParseIntError) Error() string {
	return fmt.Sprintf("value '%s' is not a valid integer: %v", e.Value, e.Cause)
}

func (e *ParseIntError) Unwrap() error {
	return e.Cause
}

// NewParseIntError creates a new integer parse error
func NewParseIntError(value string, cause error) error {
	return &ParseIntError{Value: value, Cause: cause}
}

// DuplicateStyleError reports a style id registered twice while strict
// style checking is enabled.
type DuplicateStyleError struct {
	StyleID string
}

func (e *DuplicateStyleError) Error() string {
	return fmt.Sprintf("style '%s' is defined more than once", e.StyleID)
}

// NewDuplicateStyleError creates a new duplicate style error
func NewDuplicateStyleError(styleID string) error {
	return &DuplicateStyleError{StyleID: styleID}
}

// DuplicateDefaultError reports a second default marker for one style type
// while strict style checking is enabled.
type DuplicateDefaultError struct {
	StyleID string
	Type    string
}

func (e *DuplicateDefaultError) Error() string {
	return fmt.Sprintf("style '%s' carries an extra default marker for type '%s'", e.StyleID, e.Type)
}

// NewDuplicateDefaultError creates a new duplicate default marker error
func NewDuplicateDefaultError(styleID, styleType string) error {
	return &DuplicateDefaultError{StyleID: styleID, Type: styleType}
}

// DepthLimitError reports an element nested deeper than the configured
// decode depth bound.
type DepthLimitError struct {
	Element string
	Depth   int
	Max     int
}

func (e *DepthLimitError) Error() string {
	return fmt.Sprintf("element '%s' at nesting depth %d exceeds the decode depth limit %d", e.Element, e.Depth, e.Max)
}

// NewDepthLimitError creates a new decode depth limit error
func NewDepthLimitError(element string, depth, max int) error {
	return &DepthLimitError{Element: element, Depth: depth, Max: max}
}

// CycleError reports a style transitively based on itself.
type CycleError struct {
	StyleID string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("style '%s' participates in a basedOn cycle", e.StyleID)
}

// NewCycleError creates a new basedOn cycle error
func NewCycleError(styleID string) error {
	return &CycleError{StyleID: styleID}
}

// UnknownStyleError reports a resolution request for an id that was never
// registered.
type UnknownStyleError struct {
	StyleID string
}

func (e *UnknownStyleError) Error() string {
	return fmt.Sprintf("style '%s' is not in the registry", e.StyleID)
}

// NewUnknownStyleError creates a new unknown style error
func NewUnknownStyleError(styleID string) error {
	return &UnknownStyleError{StyleID: styleID}
}

// DanglingReferenceError reports a basedOn target absent from the registry.
type DanglingReferenceError struct {
	StyleID  string
	ParentID string
}

func (e *DanglingReferenceError) Error() string {
	return fmt.Sprintf("style '%s' is based on unknown style '%s'", e.StyleID, e.ParentID)
}

// NewDanglingReferenceError creates a new dangling reference error
func NewDanglingReferenceError(styleID, parentID string) error {
	return &DanglingReferenceError{StyleID: styleID, ParentID: parentID}
}

// DocumentError represents an error during package-level operations
type DocumentError struct {
	Operation string
	Path      string
	Cause     error
}

func (e *DocumentError) Error() string {
	if e.Path != "" && e.Cause != nil {
		return fmt.Sprintf("document error during %s of '%s': %v", e.Operation, e.Path, e.Cause)
	} else if e.Path != "" {
		return fmt.Sprintf("document error during %s of '%s'", e.Operation, e.Path)
	} else if e.Cause != nil {
		return fmt.Sprintf("document error during %s: %v", e.Operation, e.Cause)
	}
	return fmt.Sprintf("document error during %s", e.Operation)
}

func (e *DocumentError) Unwrap() error {
	return e.Cause
}

// NewDocumentError creates a new document error
func NewDocumentError(operation, path string, cause error) error {
	return &DocumentError{Operation: operation, Path: path, Cause: cause}
}

// IsMissingAttributeError checks if an error is a missing attribute error
func IsMissingAttributeError(err error) bool {
	_, ok := err.(*MissingAttributeError)
	return ok
}

// IsMissingChildError checks if an error is a missing child error
func IsMissingChildError(err error) bool {
	_, ok := err.(*MissingChildError)
	return ok
}

// IsNotGroupMemberError checks if an error is a group membership error
func IsNotGroupMemberError(err error) bool {
	_, ok := err.(*NotGroupMemberError)
	return ok
}

// IsLimitViolationError checks if an error is an occurrence limit error
func IsLimitViolationError(err error) bool {
	_, ok := err.(*LimitViolationError)
	return ok
}

// IsPatternError checks if an error is a pattern restriction error
func IsPatternError(err error) bool {
	_, ok := err.(*PatternError)
	return ok
}

// IsParseEnumError checks if an error is an enumeration parse error
func IsParseEnumError(err error) bool {
	_, ok := err.(*ParseEnumError)
	return ok
}

// IsParseBoolError checks if an error is a boolean parse error
func IsParseBoolError(err error) bool {
	_, ok := err.(*ParseBoolError)
	return ok
}

// IsParseHexColorError checks if an error is a hex color parse error
func IsParseHexColorError(err error) bool {
	_, ok := err.(*ParseHexColorError)
	return ok
}

// IsDuplicateStyleError checks if an error is a duplicate style error
func IsDuplicateStyleError(err error) bool {
	_, ok := err.(*DuplicateStyleError)
	return ok
}

// IsDuplicateDefaultError checks if an error is a duplicate default marker error
func IsDuplicateDefaultError(err error) bool {
	_, ok := err.(*DuplicateDefaultError)
	return ok
}

// IsDepthLimitError checks if an error is a decode depth limit error
func IsDepthLimitError(err error) bool {
	_, ok := err.(*DepthLimitError)
	return ok
}

// IsCycleError checks if an error is a basedOn cycle error
func IsCycleError(err error) bool {
	_, ok := err.(*CycleError)
	return ok
}

// IsUnknownStyleError checks if an error is an unknown style error
func IsUnknownStyleError(err error) bool {
	_, ok := err.(*UnknownStyleError)
	return ok
}

// IsDanglingReferenceError checks if an error is a dangling reference error
func IsDanglingReferenceError(err error) bool {
	_, ok := err.(*DanglingReferenceError)
	return ok
}

// IsDocumentError checks if an error is a document error
func IsDocumentError(err error) bool {
	_, ok := err.(*DocumentError)
	return ok
}
