// Command wml inspects WordprocessingML documents: it prints paragraphs
// with their effective (cascaded) formatting, dumps style inheritance
// chains, and runs XPath queries against raw package parts.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-json"

	"github.com/docmint/go-wml/pkg/wml"
)

const version = "0.1.0"

// CLI defines the command-line interface for wml.
var CLI struct {
	// Global flags
	Config   string `name:"config" help:"Path to a YAML config file" type:"path"`
	LogLevel string `name:"log-level" help:"Log level (debug, info, warn, error, off)"`

	Inspect InspectCmd `cmd:"" help:"Print paragraphs with resolved formatting as JSON"`
	Styles  StylesCmd  `cmd:"" help:"Print style definitions and basedOn chains"`
	Query   QueryCmd   `cmd:"" help:"Run an XPath query against a package part"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

func applyGlobalFlags() error {
	config := wml.GetGlobalConfig()
	if CLI.Config != "" {
		loaded, err := wml.ConfigFromFile(CLI.Config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		config = loaded
	}
	if CLI.LogLevel != "" {
		config.LogLevel = CLI.LogLevel
	}
	if err := config.Validate(); err != nil {
		return err
	}
	wml.SetGlobalConfig(config)
	return nil
}

// InspectCmd prints every paragraph with its resolved formatting.
type InspectCmd struct {
	Path string `arg:"" help:"Path to the DOCX file" type:"existingfile"`
	Runs bool   `name:"runs" help:"Resolve each run instead of whole paragraphs"`
}

type paragraphReport struct {
	Index    int                `json:"index"`
	StyleID  string             `json:"styleId,omitempty"`
	Text     string             `json:"text"`
	Resolved *wml.ResolvedStyle `json:"resolved"`
	Runs     []runReport        `json:"runs,omitempty"`
}

type runReport struct {
	Index    int                `json:"index"`
	StyleID  string             `json:"styleId,omitempty"`
	Text     string             `json:"text"`
	Language string             `json:"language,omitempty"`
	Resolved *wml.ResolvedStyle `json:"resolved"`
}

func (c *InspectCmd) Run() error {
	doc, err := wml.OpenFile(c.Path)
	if err != nil {
		return err
	}
	resolver := doc.Resolver()

	var reports []paragraphReport
	for i, para := range doc.Paragraphs() {
		resolved, err := resolver.ResolveParagraph(para)
		if err != nil {
			return fmt.Errorf("paragraph %d: %w", i, err)
		}
		report := paragraphReport{
			Index:    i,
			Text:     para.GetText(),
			Resolved: resolved,
		}
		if para.Properties != nil && para.Properties.StyleID != nil {
			report.StyleID = *para.Properties.StyleID
		}
		if c.Runs {
			j := 0
			for _, content := range para.Content {
				run, ok := content.(*wml.Run)
				if !ok {
					continue
				}
				runResolved, err := resolver.ResolveRun(para, run)
				if err != nil {
					return fmt.Errorf("paragraph %d run %d: %w", i, j, err)
				}
				rr := runReport{Index: j, Text: run.GetText(), Resolved: runResolved}
				if run.Properties != nil && run.Properties.StyleID != nil {
					rr.StyleID = *run.Properties.StyleID
				}
				if runResolved.Run.Lang != nil {
					if tag, err := runResolved.Run.Lang.Tag(); err == nil {
						rr.Language = tag.String()
					}
				}
				report.Runs = append(report.Runs, rr)
				j++
			}
		}
		reports = append(reports, report)
	}

	return printJSON(reports)
}

// StylesCmd prints each style with its resolved inheritance chain.
type StylesCmd struct {
	Path string `arg:"" help:"Path to the DOCX file" type:"existingfile"`
	ID   string `name:"id" help:"Limit output to one style id"`
}

type styleReport struct {
	ID      string   `json:"id"`
	Type    string   `json:"type"`
	Name    string   `json:"name,omitempty"`
	Default bool     `json:"default,omitempty"`
	Chain   []string `json:"chain"`
}

func (c *StylesCmd) Run() error {
	doc, err := wml.OpenFile(c.Path)
	if err != nil {
		return err
	}

	ids := doc.Styles.IDs()
	if c.ID != "" {
		ids = []string{c.ID}
	}

	var reports []styleReport
	for _, id := range ids {
		style, ok := doc.Styles.Get(id)
		if !ok {
			return fmt.Errorf("style '%s' not found", id)
		}
		chain, err := doc.Styles.ResolveChain(id)
		if err != nil {
			return fmt.Errorf("style '%s': %w", id, err)
		}
		report := styleReport{
			ID:      style.ID,
			Type:    string(style.Type),
			Name:    style.Name,
			Default: style.Default,
		}
		for _, ancestor := range chain {
			report.Chain = append(report.Chain, ancestor.ID)
		}
		reports = append(reports, report)
	}

	return printJSON(reports)
}

// QueryCmd runs an XPath expression against a raw package part.
type QueryCmd struct {
	Path string `arg:"" help:"Path to the DOCX file" type:"existingfile"`
	Expr string `arg:"" help:"XPath expression"`
	Part string `name:"part" default:"word/document.xml" help:"Package part to query"`
}

func (c *QueryCmd) Run() error {
	reader, err := wml.DocxReaderFromFile(c.Path)
	if err != nil {
		return err
	}
	content, err := reader.GetPart(c.Part)
	if err != nil {
		return err
	}
	root, err := wml.ParseXML(content)
	if err != nil {
		return err
	}
	matches, err := root.Query(c.Expr)
	if err != nil {
		return err
	}
	for _, match := range matches {
		fmt.Printf("%s\t%s\n", match.Tag(), match.InnerText())
	}
	fmt.Fprintf(os.Stderr, "%d match(es)\n", len(matches))
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("wml version %s\n", version)
	return nil
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("wml"),
		kong.Description("WordprocessingML document model and style cascade inspector"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	if err := applyGlobalFlags(); err != nil {
		ctx.FatalIfErrorf(err)
	}
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
