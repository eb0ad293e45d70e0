package wml

import (
	"github.com/samber/lo"
)

// StyleType classifies a named style.
type StyleType string

const (
	StyleTypeParagraph StyleType = "paragraph"
	StyleTypeCharacter StyleType = "character"
	StyleTypeTable     StyleType = "table"
	StyleTypeNumbering StyleType = "numbering"
)

var styleTypeValues = []string{"paragraph", "character", "table", "numbering"}

// Style is one named style definition from the styles part.
type Style struct {
	ID        string
	Type      StyleType
	Name      string
	BasedOn   *string
	Default   bool
	Paragraph ParagraphFragment
	Run       RunFragment
}

// DocDefaults are the document-wide default fragments, the lowest level of
// the cascade.
type DocDefaults struct {
	Paragraph ParagraphFragment
	Run       RunFragment
}

// StyleRegistry indexes styles by id and resolves basedOn chains. basedOn
// references are validated lazily, at the first resolution that walks the
// affected chain, never at registration time.
type StyleRegistry struct {
	styles      map[string]*Style
	order       []string
	defaults    map[StyleType]*Style
	docDefaults DocDefaults
}

// NewStyleRegistry creates an empty registry.
func NewStyleRegistry() *StyleRegistry {
	return &StyleRegistry{
		styles:   make(map[string]*Style),
		defaults: make(map[StyleType]*Style),
	}
}

// Add registers a style. By default a duplicate id replaces the earlier
// definition and the first default marker per type wins, each with a
// warning; with Config.StrictStyles both conditions are hard errors.
func (r *StyleRegistry) Add(s *Style) error {
	strict := GetGlobalConfig().StrictStyles
	if _, exists := r.styles[s.ID]; exists {
		if strict {
			return NewDuplicateStyleError(s.ID)
		}
		GetLogger().Warn("duplicate style id '%s' replaces earlier definition", s.ID)
	} else {
		r.order = append(r.order, s.ID)
	}
	r.styles[s.ID] = s
	if s.Default {
		if _, taken := r.defaults[s.Type]; taken {
			if strict {
				return NewDuplicateDefaultError(s.ID, string(s.Type))
			}
			GetLogger().Warn("ignoring extra default marker on style '%s' for type '%s'", s.ID, s.Type)
		} else {
			r.defaults[s.Type] = s
		}
	}
	return nil
}

// Get returns the style registered under the id.
func (r *StyleRegistry) Get(id string) (*Style, bool) {
	s, ok := r.styles[id]
	return s, ok
}

// Default returns the default style for the type, or nil.
func (r *StyleRegistry) Default(t StyleType) *Style {
	return r.defaults[t]
}

// DocDefaults returns the document-wide default fragments.
func (r *StyleRegistry) DocDefaults() DocDefaults {
	return r.docDefaults
}

// SetDocDefaults records the document-wide default fragments.
func (r *StyleRegistry) SetDocDefaults(d DocDefaults) {
	r.docDefaults = d
}

// Len returns the number of registered styles.
func (r *StyleRegistry) Len() int {
	return len(r.styles)
}

// IDs returns the registered style ids in registration order.
func (r *StyleRegistry) IDs() []string {
	return append([]string(nil), r.order...)
}

// ResolveChain walks basedOn pointers from the id to the root ancestor and
// returns the chain ordered root first, the id's own style last. It fails
// with a cycle error when a style is transitively based on itself and with
// a dangling reference error when a basedOn target is unregistered.
func (r *StyleRegistry) ResolveChain(id string) ([]*Style, error) {
	start, ok := r.styles[id]
	if !ok {
		return nil, NewUnknownStyleError(id)
	}
	var chain []*Style
	seen := map[string]bool{}
	current := start
	for {
		if seen[current.ID] {
			return nil, NewCycleError(current.ID)
		}
		seen[current.ID] = true
		chain = append(chain, current)
		if current.BasedOn == nil {
			break
		}
		parent, ok := r.styles[*current.BasedOn]
		if !ok {
			return nil, NewDanglingReferenceError(current.ID, *current.BasedOn)
		}
		current = parent
	}
	return lo.Reverse(chain), nil
}

// styleBookkeepingTags are style children that carry presentation
// bookkeeping with no bearing on effective formatting. They are accepted
// and skipped.
var styleBookkeepingTags = []string{
	"name", "aliases", "next", "link", "autoRedefine", "hidden",
	"uiPriority", "semiHidden", "unhideWhenUsed", "qFormat", "locked",
	"personal", "personalCompose", "personalReply", "rsid",
	"tblPr", "trPr", "tcPr", "tblStylePr",
}

// DecodeStyle decodes one w:style element.
func DecodeStyle(n *Node) (*Style, error) {
	id, err := RequireAttr(n, "styleId")
	if err != nil {
		return nil, err
	}
	style := &Style{ID: id, Type: StyleTypeParagraph}
	if raw, ok := n.Attr("type"); ok {
		t, err := ParseEnum(raw, styleTypeValues)
		if err != nil {
			return nil, err
		}
		style.Type = StyleType(t)
	}
	if raw, ok := n.Attr("default"); ok {
		v, err := ParseOnOff(raw)
		if err != nil {
			return nil, err
		}
		style.Default = v
	}
	for _, child := range n.Children() {
		switch child.Tag() {
		case "basedOn":
			ref, err := stringChild(child)
			if err != nil {
				return nil, err
			}
			style.BasedOn = ref
		case "pPr":
			props, err := DecodeParagraphProperties(child)
			if err != nil {
				return nil, err
			}
			style.Paragraph = props.Fragment
		case "rPr":
			props, err := DecodeRunProperties(child)
			if err != nil {
				return nil, err
			}
			style.Run = props.Fragment
		case "name":
			name, err := stringChild(child)
			if err != nil {
				return nil, err
			}
			style.Name = *name
		default:
			if !lo.Contains(styleBookkeepingTags, child.Tag()) {
				return nil, NewNotGroupMemberError(child.Tag(), "style properties")
			}
		}
	}
	return style, nil
}

// DecodeStyles decodes the styles part root (w:styles) into a registry.
func DecodeStyles(root *Node) (*StyleRegistry, error) {
	if root.Tag() != "styles" {
		return nil, NewNotGroupMemberError(root.Tag(), "styles root")
	}
	registry := NewStyleRegistry()
	for _, child := range root.Children() {
		switch child.Tag() {
		case "docDefaults":
			defaults, err := decodeDocDefaults(child)
			if err != nil {
				return nil, err
			}
			registry.SetDocDefaults(defaults)
		case "style":
			style, err := DecodeStyle(child)
			if err != nil {
				return nil, err
			}
			if err := registry.Add(style); err != nil {
				return nil, err
			}
		case "latentStyles":
			// Latent style hints affect UI visibility only.
		default:
			return nil, NewNotGroupMemberError(child.Tag(), "styles children")
		}
	}
	GetLogger().Debug("decoded %d styles", registry.Len())
	return registry, nil
}

func decodeDocDefaults(n *Node) (DocDefaults, error) {
	var defaults DocDefaults
	if rDefault := n.Child("rPrDefault"); rDefault != nil {
		if rPr := rDefault.Child("rPr"); rPr != nil {
			props, err := DecodeRunProperties(rPr)
			if err != nil {
				return DocDefaults{}, err
			}
			defaults.Run = props.Fragment
		}
	}
	if pDefault := n.Child("pPrDefault"); pDefault != nil {
		if pPr := pDefault.Child("pPr"); pPr != nil {
			props, err := DecodeParagraphProperties(pPr)
			if err != nil {
				return DocDefaults{}, err
			}
			defaults.Paragraph = props.Fragment
		}
	}
	return defaults, nil
}
