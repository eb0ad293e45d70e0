package wml

// ResolvedStyle is the effective formatting of one run or paragraph after
// the full cascade. It is built on demand and owned by the caller.
type ResolvedStyle struct {
	Paragraph ParagraphFragment
	Run       RunFragment
}

// Resolver folds property fragments through the cascade: document
// defaults, then the paragraph style's basedOn chain root to leaf, then
// the character style, then direct formatting. Toggle (XOR) merging
// happens at exactly one juncture: when the character style's run
// fragment lands on the run defaults inherited through the paragraph
// style.
type Resolver struct {
	registry *StyleRegistry
}

// NewResolver creates a resolver over the given registry.
func NewResolver(registry *StyleRegistry) *Resolver {
	return &Resolver{registry: registry}
}

// paragraphStyleID picks the explicit pStyle if present, falling back to
// the registry's default paragraph style.
func (r *Resolver) paragraphStyleID(p *Paragraph) *string {
	if p.Properties != nil && p.Properties.StyleID != nil {
		return p.Properties.StyleID
	}
	if def := r.registry.Default(StyleTypeParagraph); def != nil {
		id := def.ID
		return &id
	}
	return nil
}

// paragraphBase resolves the paragraph fragment and the run defaults up to
// and including the assigned paragraph style, before any direct
// formatting or character style is applied.
func (r *Resolver) paragraphBase(p *Paragraph) (ParagraphFragment, RunFragment, error) {
	defaults := r.registry.DocDefaults()
	paraFrag := defaults.Paragraph
	runFrag := defaults.Run

	if id := r.paragraphStyleID(p); id != nil {
		chain, err := r.registry.ResolveChain(*id)
		if err != nil {
			return ParagraphFragment{}, RunFragment{}, err
		}
		for _, ancestor := range chain {
			GetLogger().DebugCascade("paragraph style", ancestor.ID)
			paraFrag = paraFrag.Merge(ancestor.Paragraph)
			runFrag = runFrag.Merge(ancestor.Run)
		}
	}
	return paraFrag, runFrag, nil
}

// ResolveParagraph computes the effective formatting of a paragraph. The
// run half of the result is the paragraph mark's formatting: the inherited
// run defaults overlaid with the pPr's own rPr.
func (r *Resolver) ResolveParagraph(p *Paragraph) (*ResolvedStyle, error) {
	paraFrag, runFrag, err := r.paragraphBase(p)
	if err != nil {
		return nil, err
	}
	if p.Properties != nil {
		paraFrag = paraFrag.Merge(p.Properties.Fragment)
		if p.Properties.RunDefaults != nil {
			runFrag = runFrag.Merge(p.Properties.RunDefaults.Fragment)
		}
	}
	GetLogger().Debug("resolved paragraph style (pStyle=%v)", styleIDForLog(p))
	return &ResolvedStyle{Paragraph: paraFrag, Run: runFrag}, nil
}

// ResolveRun computes the effective formatting of one run within its
// paragraph. The character style chain is folded with override merge and
// then toggled onto the paragraph-level run defaults, so a toggle set both
// by the paragraph style and the character style cancels to off. Direct
// run formatting overrides last.
func (r *Resolver) ResolveRun(p *Paragraph, run *Run) (*ResolvedStyle, error) {
	paraFrag, runFrag, err := r.paragraphBase(p)
	if err != nil {
		return nil, err
	}
	if p.Properties != nil {
		paraFrag = paraFrag.Merge(p.Properties.Fragment)
	}

	if run.Properties != nil && run.Properties.StyleID != nil {
		chain, err := r.registry.ResolveChain(*run.Properties.StyleID)
		if err != nil {
			return nil, err
		}
		var charFrag RunFragment
		for _, ancestor := range chain {
			GetLogger().DebugCascade("character style", ancestor.ID)
			charFrag = charFrag.Merge(ancestor.Run)
		}
		runFrag = runFrag.MergeToggle(charFrag)
	}

	if run.Properties != nil {
		runFrag = runFrag.Merge(run.Properties.Fragment)
	}
	return &ResolvedStyle{Paragraph: paraFrag, Run: runFrag}, nil
}

func styleIDForLog(p *Paragraph) string {
	if p.Properties != nil && p.Properties.StyleID != nil {
		return *p.Properties.StyleID
	}
	return "<default>"
}
