package wml

// Decoders for the run-level (rPr) and paragraph-level (pPr) property
// containers. Each child element is decoded exactly once, in document
// order; an unrecognized child aborts the whole container.

// RunProperties is a decoded rPr: an optional character style reference
// plus the direct formatting fragment.
type RunProperties struct {
	StyleID  *string
	Fragment RunFragment
}

// ParagraphProperties is a decoded pPr: an optional paragraph style
// reference, the paragraph fragment, and the run defaults carried by the
// nested rPr (formatting of the paragraph mark).
type ParagraphProperties struct {
	StyleID     *string
	Fragment    ParagraphFragment
	RunDefaults *RunProperties
}

// Closed token sets for the enumerated attribute values understood here.
var (
	alignmentValues = []string{
		"start", "end", "left", "right", "center", "both",
		"distribute", "mediumKashida", "highKashida", "lowKashida", "thaiDistribute",
	}
	vertAlignValues  = []string{"baseline", "superscript", "subscript"}
	lineRuleValues   = []string{"auto", "exact", "atLeast"}
	underlineValues  = []string{
		"single", "words", "double", "thick", "dotted", "dottedHeavy",
		"dash", "dashedHeavy", "dashLong", "dashLongHeavy", "dotDash",
		"dashDotHeavy", "dotDotDash", "dashDotDotHeavy", "wave", "wavyHeavy",
		"wavyDouble", "none",
	}
	highlightValues = []string{
		"black", "blue", "cyan", "green", "magenta", "red", "yellow", "white",
		"darkBlue", "darkCyan", "darkGreen", "darkMagenta", "darkRed",
		"darkYellow", "darkGray", "lightGray", "none",
	}
	borderStyleValues = []string{
		"nil", "none", "single", "thick", "double", "dotted", "dashed",
		"dotDash", "dotDotDash", "triple", "wave", "doubleWave", "inset",
		"outset", "thinThickSmallGap", "thickThinSmallGap",
		"thinThickThinSmallGap", "thinThickMediumGap", "thickThinMediumGap",
		"thinThickThinMediumGap", "thinThickLargeGap", "thickThinLargeGap",
		"thinThickThinLargeGap", "dashSmallGap",
	}
	shadingPatternValues = []string{
		"nil", "clear", "solid", "horzStripe", "vertStripe",
		"reverseDiagStripe", "diagStripe", "horzCross", "diagCross",
		"thinHorzStripe", "thinVertStripe", "thinReverseDiagStripe",
		"thinDiagStripe", "thinHorzCross", "thinDiagCross",
		"pct5", "pct10", "pct12", "pct15", "pct20", "pct25", "pct30",
		"pct35", "pct37", "pct40", "pct45", "pct50", "pct55", "pct60",
		"pct62", "pct65", "pct70", "pct75", "pct80", "pct85", "pct87",
		"pct90", "pct95",
	}
	tabKindValues = []string{
		"clear", "start", "end", "left", "right", "center", "decimal", "bar", "num",
	}
	tabLeaderValues = []string{
		"none", "dot", "hyphen", "underscore", "heavy", "middleDot",
	}
	fontHintValues     = []string{"default", "eastAsia", "cs"}
	effectValues       = []string{
		"blinkBackground", "lights", "antsBlack", "antsRed", "shimmer",
		"sparkle", "none",
	}
	textDirectionValues = []string{
		"lrTb", "tbRl", "btLr", "lrTbV", "tbRlV", "tbLrV",
	}
	textAlignmentValues = []string{"top", "center", "baseline", "bottom", "auto"}
)

// onOffChild decodes an on/off toggle element: a missing val attribute
// means "on", otherwise the four-token convention applies.
func onOffChild(n *Node) (*bool, error) {
	value, ok := n.Attr("val")
	if !ok {
		v := true
		return &v, nil
	}
	v, err := ParseOnOff(value)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func uintChild(n *Node) (*uint64, error) {
	value, err := RequireAttr(n, "val")
	if err != nil {
		return nil, err
	}
	v, err := ParseUint(value)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func enumChild(n *Node, allowed []string) (*string, error) {
	value, err := RequireAttr(n, "val")
	if err != nil {
		return nil, err
	}
	v, err := ParseEnum(value, allowed)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func stringChild(n *Node) (*string, error) {
	value, err := RequireAttr(n, "val")
	if err != nil {
		return nil, err
	}
	return &value, nil
}

func signedMeasureChild(n *Node) (*Measure, error) {
	value, err := RequireAttr(n, "val")
	if err != nil {
		return nil, err
	}
	m, err := ParseSignedMeasure(value)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func colorChild(n *Node) (*HexColor, error) {
	value, err := RequireAttr(n, "val")
	if err != nil {
		return nil, err
	}
	c, err := ParseHexColor(value)
	if err != nil {
		return nil, err
	}
	if theme, ok := n.Attr("themeColor"); ok {
		c.ThemeColor = theme
	}
	if tint, ok := n.Attr("themeTint"); ok {
		c.ThemeTint = tint
	}
	if shade, ok := n.Attr("themeShade"); ok {
		c.ThemeShade = shade
	}
	return &c, nil
}

func decodeUnderline(n *Node) (*Underline, error) {
	style, err := enumChild(n, underlineValues)
	if err != nil {
		return nil, err
	}
	u := &Underline{Style: *style}
	if raw, ok := n.Attr("color"); ok {
		c, err := ParseHexColor(raw)
		if err != nil {
			return nil, err
		}
		u.Color = &c
	}
	return u, nil
}

func decodeRunFonts(n *Node) (*RunFonts, error) {
	fonts := &RunFonts{}
	if v, ok := n.Attr("ascii"); ok {
		fonts.ASCII = v
	}
	if v, ok := n.Attr("hAnsi"); ok {
		fonts.HiAnsi = v
	}
	if v, ok := n.Attr("eastAsia"); ok {
		fonts.EastAsia = v
	}
	if v, ok := n.Attr("cs"); ok {
		fonts.CS = v
	}
	if v, ok := n.Attr("hint"); ok {
		hint, err := ParseEnum(v, fontHintValues)
		if err != nil {
			return nil, err
		}
		fonts.Hint = hint
	}
	return fonts, nil
}

func decodeLang(n *Node) *Lang {
	lang := &Lang{}
	if v, ok := n.Attr("val"); ok {
		lang.Val = v
	}
	if v, ok := n.Attr("eastAsia"); ok {
		lang.EastAsia = v
	}
	if v, ok := n.Attr("bidi"); ok {
		lang.Bidi = v
	}
	return lang
}

func decodeShading(n *Node) (*Shading, error) {
	pattern, err := enumChild(n, shadingPatternValues)
	if err != nil {
		return nil, err
	}
	shd := &Shading{Pattern: *pattern}
	if raw, ok := n.Attr("color"); ok {
		c, err := ParseHexColor(raw)
		if err != nil {
			return nil, err
		}
		shd.Color = &c
	}
	if raw, ok := n.Attr("fill"); ok {
		c, err := ParseHexColor(raw)
		if err != nil {
			return nil, err
		}
		shd.Fill = &c
	}
	return shd, nil
}

func decodeBorder(n *Node) (*Border, error) {
	style, err := enumChild(n, borderStyleValues)
	if err != nil {
		return nil, err
	}
	border := &Border{Style: *style}
	if raw, ok := n.Attr("sz"); ok {
		v, err := ParseUint(raw)
		if err != nil {
			return nil, err
		}
		border.Size = v
	}
	if raw, ok := n.Attr("space"); ok {
		v, err := ParseUint(raw)
		if err != nil {
			return nil, err
		}
		border.Space = v
	}
	if raw, ok := n.Attr("color"); ok {
		c, err := ParseHexColor(raw)
		if err != nil {
			return nil, err
		}
		border.Color = &c
	}
	return border, nil
}

func decodeParagraphBorders(n *Node) (*ParagraphBorders, error) {
	borders := &ParagraphBorders{}
	for _, child := range n.Children() {
		edge, err := decodeBorder(child)
		if err != nil {
			return nil, err
		}
		switch child.Tag() {
		case "top":
			borders.Top = edge
		case "bottom":
			borders.Bottom = edge
		case "left", "start":
			borders.Left = edge
		case "right", "end":
			borders.Right = edge
		case "between":
			borders.Between = edge
		case "bar":
			// Bar borders apply between facing pages; not modeled.
		default:
			return nil, NewNotGroupMemberError(child.Tag(), "paragraph borders")
		}
	}
	return borders, nil
}

func decodeIndent(n *Node) (*Indent, error) {
	ind := &Indent{}
	set := func(dst **Measure, raw string, signed bool) error {
		var m Measure
		var err error
		if signed {
			m, err = ParseSignedMeasure(raw)
		} else {
			m, err = ParseUnsignedMeasure(raw)
		}
		if err != nil {
			return err
		}
		*dst = &m
		return nil
	}
	for _, attr := range n.Attrs() {
		var err error
		switch attr.Name {
		case "left", "start":
			err = set(&ind.Left, attr.Value, true)
		case "right", "end":
			err = set(&ind.Right, attr.Value, true)
		case "firstLine":
			err = set(&ind.FirstLine, attr.Value, false)
		case "hanging":
			err = set(&ind.Hanging, attr.Value, false)
		}
		if err != nil {
			return nil, err
		}
	}
	return ind, nil
}

func decodeLineSpacing(n *Node) (*LineSpacing, error) {
	spacing := &LineSpacing{}
	if raw, ok := n.Attr("before"); ok {
		m, err := ParseUnsignedMeasure(raw)
		if err != nil {
			return nil, err
		}
		spacing.Before = &m
	}
	if raw, ok := n.Attr("after"); ok {
		m, err := ParseUnsignedMeasure(raw)
		if err != nil {
			return nil, err
		}
		spacing.After = &m
	}
	if raw, ok := n.Attr("line"); ok {
		v, err := ParseInt(raw)
		if err != nil {
			return nil, err
		}
		spacing.Line = &v
	}
	if raw, ok := n.Attr("lineRule"); ok {
		rule, err := ParseEnum(raw, lineRuleValues)
		if err != nil {
			return nil, err
		}
		spacing.LineRule = rule
	}
	return spacing, nil
}

// decodeTabs decodes the tab stop list. The container requires at least
// one tab child.
func decodeTabs(n *Node) ([]TabStop, error) {
	children, err := CollectChildren(n, "tab", Occurs{Min: 1, Max: Unbounded})
	if err != nil {
		return nil, err
	}
	stops := make([]TabStop, 0, len(children))
	for _, child := range children {
		kind, err := enumChild(child, tabKindValues)
		if err != nil {
			return nil, err
		}
		stop := TabStop{Kind: *kind}
		if raw, ok := child.Attr("leader"); ok {
			leader, err := ParseEnum(raw, tabLeaderValues)
			if err != nil {
				return nil, err
			}
			stop.Leader = leader
		}
		pos, err := RequireAttr(child, "pos")
		if err != nil {
			return nil, err
		}
		v, err := ParseInt(pos)
		if err != nil {
			return nil, err
		}
		stop.Position = v
		stops = append(stops, stop)
	}
	return stops, nil
}

func decodeNumbering(n *Node) (*NumberingRef, error) {
	ref := &NumberingRef{}
	if child := n.Child("numId"); child != nil {
		id, err := uintChild(child)
		if err != nil {
			return nil, err
		}
		ref.ID = *id
	}
	if child := n.Child("ilvl"); child != nil {
		lvl, err := uintChild(child)
		if err != nil {
			return nil, err
		}
		ref.Level = *lvl
	}
	return ref, nil
}

// DecodeRunProperties decodes an rPr element. Strike and double strike
// are mutually exclusive: within one property list the later occurrence
// wins and clears the other.
func DecodeRunProperties(n *Node) (*RunProperties, error) {
	props := &RunProperties{}
	frag := &props.Fragment
	for _, child := range n.Children() {
		var err error
		switch child.Tag() {
		case "rStyle":
			props.StyleID, err = stringChild(child)
		case "b":
			frag.Bold, err = onOffChild(child)
		case "bCs":
			frag.BoldCS, err = onOffChild(child)
		case "i":
			frag.Italic, err = onOffChild(child)
		case "iCs":
			frag.ItalicCS, err = onOffChild(child)
		case "smallCaps":
			frag.SmallCaps, err = onOffChild(child)
		case "caps":
			frag.Caps, err = onOffChild(child)
		case "strike":
			frag.Strike, err = onOffChild(child)
			frag.DoubleStrike = nil
		case "dstrike":
			frag.DoubleStrike, err = onOffChild(child)
			frag.Strike = nil
		case "outline":
			frag.Outline, err = onOffChild(child)
		case "shadow":
			frag.Shadow, err = onOffChild(child)
		case "emboss":
			frag.Emboss, err = onOffChild(child)
		case "imprint":
			frag.Imprint, err = onOffChild(child)
		case "vanish":
			frag.Vanish, err = onOffChild(child)
		case "webHidden":
			frag.WebHidden, err = onOffChild(child)
		case "specVanish":
			frag.SpecVanish, err = onOffChild(child)
		case "noProof":
			frag.NoProof, err = onOffChild(child)
		case "snapToGrid":
			frag.SnapToGrid, err = onOffChild(child)
		case "rtl":
			frag.RTL, err = onOffChild(child)
		case "cs":
			frag.ComplexScript, err = onOffChild(child)
		case "oMath":
			frag.Math, err = onOffChild(child)
		case "u":
			frag.Underline, err = decodeUnderline(child)
		case "color":
			frag.Color, err = colorChild(child)
		case "highlight":
			frag.Highlight, err = enumChild(child, highlightValues)
		case "sz":
			frag.Size, err = uintChild(child)
		case "szCs":
			frag.SizeCS, err = uintChild(child)
		case "kern":
			frag.Kern, err = uintChild(child)
		case "spacing":
			frag.CharacterSpacing, err = signedMeasureChild(child)
		case "position":
			frag.Position, err = signedMeasureChild(child)
		case "w":
			var raw string
			raw, err = RequireAttr(child, "val")
			if err == nil {
				var scale float64
				scale, err = ParseTextScale(raw)
				if err == nil {
					frag.TextScale = &scale
				}
			}
		case "rFonts":
			frag.Fonts, err = decodeRunFonts(child)
		case "lang":
			frag.Lang = decodeLang(child)
		case "shd":
			frag.Shading, err = decodeShading(child)
		case "bdr":
			frag.Border, err = decodeBorder(child)
		case "vertAlign":
			frag.VertAlign, err = enumChild(child, vertAlignValues)
		case "effect":
			frag.Effect, err = enumChild(child, effectValues)
		default:
			err = NewNotGroupMemberError(child.Tag(), "run properties")
		}
		if err != nil {
			return nil, err
		}
	}
	return props, nil
}

// DecodeParagraphProperties decodes a pPr element, including the nested
// rPr that carries the paragraph mark's run defaults.
func DecodeParagraphProperties(n *Node) (*ParagraphProperties, error) {
	props := &ParagraphProperties{}
	frag := &props.Fragment
	for _, child := range n.Children() {
		var err error
		switch child.Tag() {
		case "pStyle":
			props.StyleID, err = stringChild(child)
		case "jc":
			frag.Alignment, err = enumChild(child, alignmentValues)
		case "ind":
			frag.Indent, err = decodeIndent(child)
		case "spacing":
			frag.Spacing, err = decodeLineSpacing(child)
		case "keepNext":
			frag.KeepNext, err = onOffChild(child)
		case "keepLines":
			frag.KeepLines, err = onOffChild(child)
		case "pageBreakBefore":
			frag.PageBreakBefore, err = onOffChild(child)
		case "widowControl":
			frag.WidowControl, err = onOffChild(child)
		case "outlineLvl":
			frag.OutlineLevel, err = uintChild(child)
		case "pBdr":
			frag.Borders, err = decodeParagraphBorders(child)
		case "shd":
			frag.Shading, err = decodeShading(child)
		case "tabs":
			frag.Tabs, err = decodeTabs(child)
		case "contextualSpacing":
			frag.ContextualSpacing, err = onOffChild(child)
		case "bidi":
			frag.Bidi, err = onOffChild(child)
		case "textAlignment":
			frag.TextAlignment, err = enumChild(child, textAlignmentValues)
		case "textDirection":
			frag.TextDirection, err = enumChild(child, textDirectionValues)
		case "numPr":
			frag.Numbering, err = decodeNumbering(child)
		case "suppressAutoHyphens":
			frag.SuppressAutoHyphens, err = onOffChild(child)
		case "suppressLineNumbers":
			frag.SuppressLineNumbers, err = onOffChild(child)
		case "wordWrap":
			frag.WordWrap, err = onOffChild(child)
		case "rPr":
			props.RunDefaults, err = DecodeRunProperties(child)
		default:
			err = NewNotGroupMemberError(child.Tag(), "paragraph properties")
		}
		if err != nil {
			return nil, err
		}
	}
	return props, nil
}
