package wml

import (
	"golang.org/x/text/language"
)

// Property fragments are records of independently optional formatting
// fields. A nil field is "unset" and is semantically distinct from a field
// set to its zero value; in particular *bool false means "explicitly off".
//
// Fragments are value types: merging never mutates its inputs, it builds a
// fresh fragment whose fields may alias the inputs' field storage. Nothing
// in this package writes through those pointers after construction.

// Underline is the underline style with an optional explicit color.
type Underline struct {
	Style string
	Color *HexColor
}

// RunFonts selects fonts per character range.
type RunFonts struct {
	ASCII    string
	HiAnsi   string
	EastAsia string
	CS       string
	Hint     string
}

// Lang carries the language settings of a run.
type Lang struct {
	Val      string
	EastAsia string
	Bidi     string
}

// Tag parses the primary language value as a BCP-47 tag.
func (l Lang) Tag() (language.Tag, error) {
	return language.Parse(l.Val)
}

// Shading is a pattern fill behind text or a paragraph.
type Shading struct {
	Pattern string
	Color   *HexColor
	Fill    *HexColor
}

// Border is one border edge.
type Border struct {
	Style string
	Size  uint64
	Space uint64
	Color *HexColor
}

// ParagraphBorders groups the border edges of a paragraph.
type ParagraphBorders struct {
	Top     *Border
	Bottom  *Border
	Left    *Border
	Right   *Border
	Between *Border
}

// Indent is the indentation of a paragraph.
type Indent struct {
	Left      *Measure
	Right     *Measure
	FirstLine *Measure
	Hanging   *Measure
}

// LineSpacing is the inter-line and inter-paragraph spacing.
type LineSpacing struct {
	Before   *Measure
	After    *Measure
	Line     *int64
	LineRule string
}

// TabStop is one tab stop definition.
type TabStop struct {
	Kind     string
	Leader   string
	Position int64
}

// NumberingRef points a paragraph at a numbering definition and level.
type NumberingRef struct {
	ID    uint64
	Level uint64
}

// RunFragment is the run-level property record. The boolean fields listed
// in the toggle section of runMergeRules follow toggle (XOR) semantics
// when merged across the paragraph-style/character-style juncture.
type RunFragment struct {
	// Toggle attributes.
	Bold          *bool
	BoldCS        *bool
	Italic        *bool
	ItalicCS      *bool
	SmallCaps     *bool
	Caps          *bool
	Strike        *bool
	DoubleStrike  *bool
	Outline       *bool
	Shadow        *bool
	Emboss        *bool
	Imprint       *bool
	Vanish        *bool
	WebHidden     *bool
	SpecVanish    *bool
	NoProof       *bool
	SnapToGrid    *bool
	RTL           *bool
	ComplexScript *bool
	Math          *bool

	// Plain override attributes.
	Underline        *Underline
	Color            *HexColor
	Highlight        *string
	Size             *uint64
	SizeCS           *uint64
	Kern             *uint64
	CharacterSpacing *Measure
	Position         *Measure
	TextScale        *float64
	Fonts            *RunFonts
	Lang             *Lang
	Shading          *Shading
	Border           *Border
	VertAlign        *string
	Effect           *string
}

// ParagraphFragment is the paragraph-level property record. None of its
// boolean fields are toggles; the cascade always override-merges them.
type ParagraphFragment struct {
	Alignment           *string
	Indent              *Indent
	Spacing             *LineSpacing
	KeepNext            *bool
	KeepLines           *bool
	PageBreakBefore     *bool
	WidowControl        *bool
	OutlineLevel        *uint64
	Borders             *ParagraphBorders
	Shading             *Shading
	Tabs                []TabStop
	ContextualSpacing   *bool
	Bidi                *bool
	TextAlignment       *string
	TextDirection       *string
	Numbering           *NumberingRef
	SuppressAutoHyphens *bool
	SuppressLineNumbers *bool
	WordWrap            *bool
}

// MergeMode selects the combinator applied to toggle attributes.
type MergeMode int

const (
	// MergeOverride applies rightmost-wins to every field.
	MergeOverride MergeMode = iota
	// MergeToggle XORs toggle attributes set on both sides.
	MergeToggle
)

// overrideField is the plain combinator: overlay wins when present.
func overrideField[T any](base, overlay *T) *T {
	if overlay != nil {
		return overlay
	}
	return base
}

// toggleField XORs two present toggle values; a single present value
// propagates unchanged. Stacking "on" over "on" cancels back to "off".
func toggleField(base, overlay *bool, mode MergeMode) *bool {
	if mode == MergeOverride {
		return overrideField(base, overlay)
	}
	if base != nil && overlay != nil {
		v := *base != *overlay
		return &v
	}
	if overlay != nil {
		return overlay
	}
	return base
}

// runMergeRules is the ordered field/combinator table driving both merge
// operators over RunFragment. Adding a formatting field means adding one
// entry here and one struct field above.
type runMergeRule func(dst, base, overlay *RunFragment, mode MergeMode)

var runMergeRules = []runMergeRule{
	// Toggle attributes.
	func(d, b, o *RunFragment, m MergeMode) { d.Bold = toggleField(b.Bold, o.Bold, m) },
	func(d, b, o *RunFragment, m MergeMode) { d.BoldCS = toggleField(b.BoldCS, o.BoldCS, m) },
	func(d, b, o *RunFragment, m MergeMode) { d.Italic = toggleField(b.Italic, o.Italic, m) },
	func(d, b, o *RunFragment, m MergeMode) { d.ItalicCS = toggleField(b.ItalicCS, o.ItalicCS, m) },
	func(d, b, o *RunFragment, m MergeMode) { d.SmallCaps = toggleField(b.SmallCaps, o.SmallCaps, m) },
	func(d, b, o *RunFragment, m MergeMode) { d.Caps = toggleField(b.Caps, o.Caps, m) },
	func(d, b, o *RunFragment, m MergeMode) { d.Strike = toggleField(b.Strike, o.Strike, m) },
	func(d, b, o *RunFragment, m MergeMode) { d.DoubleStrike = toggleField(b.DoubleStrike, o.DoubleStrike, m) },
	func(d, b, o *RunFragment, m MergeMode) { d.Outline = toggleField(b.Outline, o.Outline, m) },
	func(d, b, o *RunFragment, m MergeMode) { d.Shadow = toggleField(b.Shadow, o.Shadow, m) },
	func(d, b, o *RunFragment, m MergeMode) { d.Emboss = toggleField(b.Emboss, o.Emboss, m) },
	func(d, b, o *RunFragment, m MergeMode) { d.Imprint = toggleField(b.Imprint, o.Imprint, m) },
	func(d, b, o *RunFragment, m MergeMode) { d.Vanish = toggleField(b.Vanish, o.Vanish, m) },
	func(d, b, o *RunFragment, m MergeMode) { d.WebHidden = toggleField(b.WebHidden, o.WebHidden, m) },
	func(d, b, o *RunFragment, m MergeMode) { d.SpecVanish = toggleField(b.SpecVanish, o.SpecVanish, m) },
	func(d, b, o *RunFragment, m MergeMode) { d.NoProof = toggleField(b.NoProof, o.NoProof, m) },
	func(d, b, o *RunFragment, m MergeMode) { d.SnapToGrid = toggleField(b.SnapToGrid, o.SnapToGrid, m) },
	func(d, b, o *RunFragment, m MergeMode) { d.RTL = toggleField(b.RTL, o.RTL, m) },
	// ComplexScript merges base against overlay like every other toggle.
	func(d, b, o *RunFragment, m MergeMode) { d.ComplexScript = toggleField(b.ComplexScript, o.ComplexScript, m) },
	func(d, b, o *RunFragment, m MergeMode) { d.Math = toggleField(b.Math, o.Math, m) },

	// Plain override attributes.
	func(d, b, o *RunFragment, _ MergeMode) { d.Underline = overrideField(b.Underline, o.Underline) },
	func(d, b, o *RunFragment, _ MergeMode) { d.Color = overrideField(b.Color, o.Color) },
	func(d, b, o *RunFragment, _ MergeMode) { d.Highlight = overrideField(b.Highlight, o.Highlight) },
	func(d, b, o *RunFragment, _ MergeMode) { d.Size = overrideField(b.Size, o.Size) },
	func(d, b, o *RunFragment, _ MergeMode) { d.SizeCS = overrideField(b.SizeCS, o.SizeCS) },
	func(d, b, o *RunFragment, _ MergeMode) { d.Kern = overrideField(b.Kern, o.Kern) },
	func(d, b, o *RunFragment, _ MergeMode) {
		d.CharacterSpacing = overrideField(b.CharacterSpacing, o.CharacterSpacing)
	},
	func(d, b, o *RunFragment, _ MergeMode) { d.Position = overrideField(b.Position, o.Position) },
	func(d, b, o *RunFragment, _ MergeMode) { d.TextScale = overrideField(b.TextScale, o.TextScale) },
	func(d, b, o *RunFragment, _ MergeMode) { d.Fonts = overrideField(b.Fonts, o.Fonts) },
	func(d, b, o *RunFragment, _ MergeMode) { d.Lang = overrideField(b.Lang, o.Lang) },
	func(d, b, o *RunFragment, _ MergeMode) { d.Shading = overrideField(b.Shading, o.Shading) },
	func(d, b, o *RunFragment, _ MergeMode) { d.Border = overrideField(b.Border, o.Border) },
	func(d, b, o *RunFragment, _ MergeMode) { d.VertAlign = overrideField(b.VertAlign, o.VertAlign) },
	func(d, b, o *RunFragment, _ MergeMode) { d.Effect = overrideField(b.Effect, o.Effect) },
}

// Merge applies override semantics: every overlay field set wins, unset
// overlay fields keep the base value. Idempotent.
func (f RunFragment) Merge(overlay RunFragment) RunFragment {
	return mergeRun(f, overlay, MergeOverride)
}

// MergeToggle applies override semantics to plain fields and XOR semantics
// to toggle attributes. Used when a character style's run properties land
// on run defaults inherited from a paragraph style. Not idempotent.
func (f RunFragment) MergeToggle(overlay RunFragment) RunFragment {
	return mergeRun(f, overlay, MergeToggle)
}

func mergeRun(base, overlay RunFragment, mode MergeMode) RunFragment {
	var dst RunFragment
	for _, rule := range runMergeRules {
		rule(&dst, &base, &overlay, mode)
	}
	return dst
}

// paragraphMergeRules is the override table for ParagraphFragment.
type paragraphMergeRule func(dst, base, overlay *ParagraphFragment)

var paragraphMergeRules = []paragraphMergeRule{
	func(d, b, o *ParagraphFragment) { d.Alignment = overrideField(b.Alignment, o.Alignment) },
	func(d, b, o *ParagraphFragment) { d.Indent = overrideField(b.Indent, o.Indent) },
	func(d, b, o *ParagraphFragment) { d.Spacing = overrideField(b.Spacing, o.Spacing) },
	func(d, b, o *ParagraphFragment) { d.KeepNext = overrideField(b.KeepNext, o.KeepNext) },
	func(d, b, o *ParagraphFragment) { d.KeepLines = overrideField(b.KeepLines, o.KeepLines) },
	func(d, b, o *ParagraphFragment) { d.PageBreakBefore = overrideField(b.PageBreakBefore, o.PageBreakBefore) },
	func(d, b, o *ParagraphFragment) { d.WidowControl = overrideField(b.WidowControl, o.WidowControl) },
	func(d, b, o *ParagraphFragment) { d.OutlineLevel = overrideField(b.OutlineLevel, o.OutlineLevel) },
	func(d, b, o *ParagraphFragment) { d.Borders = overrideField(b.Borders, o.Borders) },
	func(d, b, o *ParagraphFragment) { d.Shading = overrideField(b.Shading, o.Shading) },
	func(d, b, o *ParagraphFragment) {
		if o.Tabs != nil {
			d.Tabs = o.Tabs
		} else {
			d.Tabs = b.Tabs
		}
	},
	func(d, b, o *ParagraphFragment) { d.ContextualSpacing = overrideField(b.ContextualSpacing, o.ContextualSpacing) },
	func(d, b, o *ParagraphFragment) { d.Bidi = overrideField(b.Bidi, o.Bidi) },
	func(d, b, o *ParagraphFragment) { d.TextAlignment = overrideField(b.TextAlignment, o.TextAlignment) },
	func(d, b, o *ParagraphFragment) { d.TextDirection = overrideField(b.TextDirection, o.TextDirection) },
	func(d, b, o *ParagraphFragment) { d.Numbering = overrideField(b.Numbering, o.Numbering) },
	func(d, b, o *ParagraphFragment) {
		d.SuppressAutoHyphens = overrideField(b.SuppressAutoHyphens, o.SuppressAutoHyphens)
	},
	func(d, b, o *ParagraphFragment) {
		d.SuppressLineNumbers = overrideField(b.SuppressLineNumbers, o.SuppressLineNumbers)
	},
	func(d, b, o *ParagraphFragment) { d.WordWrap = overrideField(b.WordWrap, o.WordWrap) },
}

// Merge applies override semantics field by field. Idempotent.
func (f ParagraphFragment) Merge(overlay ParagraphFragment) ParagraphFragment {
	var dst ParagraphFragment
	for _, rule := range paragraphMergeRules {
		rule(&dst, &f, &overlay)
	}
	return dst
}
