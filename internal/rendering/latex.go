package rendering

import (
	"embed"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/jonathan/resume-tailor/internal/types"
)

//go:embed templates/*.tex
var builtinTemplates embed.FS

// Block kinds used by LaTeX templates
const (
	BlockText    = "text"
	BlockBullets = "bullets"
	BlockSpace   = "space"
)

// LaTeXOptions selects the template. TemplatePath wins over Template.
type LaTeXOptions struct {
	Template     string
	TemplatePath string
}

// TemplateData represents the data structure passed to the LaTeX template
type TemplateData struct {
	Sections []SectionData
}

// SectionData is one resume section split into renderable blocks
type SectionData struct {
	Title  string
	Blocks []Block
}

// Block is a run of plain lines, a bullet list, or vertical space
type Block struct {
	Kind  string
	Text  string
	Items []string
}

// RenderLaTeX renders sections through a LaTeX template. Text is escaped by
// the template's "escape" function, so data is passed through raw.
func RenderLaTeX(sections []types.ResumeSection, opts LaTeXOptions) (string, error) {
	tmpl, err := parseTemplate(opts)
	if err != nil {
		return "", err
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, buildTemplateData(sections)); err != nil {
		return "", &TemplateError{
			Message: "failed to execute template",
			Cause:   err,
		}
	}
	return result.String(), nil
}

func parseTemplate(opts LaTeXOptions) (*template.Template, error) {
	var content []byte
	var err error

	if opts.TemplatePath != "" {
		content, err = os.ReadFile(opts.TemplatePath)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, &TemplateError{
					Message: fmt.Sprintf("template file not found: %s", opts.TemplatePath),
					Cause:   err,
				}
			}
			return nil, &TemplateError{
				Message: fmt.Sprintf("failed to read template file: %s", opts.TemplatePath),
				Cause:   err,
			}
		}
	} else {
		name := opts.Template
		if name == "" {
			name = types.DefaultTemplate
		}
		content, err = builtinTemplates.ReadFile("templates/" + name + ".tex")
		if err != nil {
			return nil, &TemplateError{
				Message: fmt.Sprintf("unknown template: %s", name),
				Cause:   err,
			}
		}
	}

	tmpl, err := template.New("resume").Funcs(template.FuncMap{
		"escape": EscapeLaTeX,
	}).Parse(string(content))
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse template",
			Cause:   err,
		}
	}
	return tmpl, nil
}

// buildTemplateData groups consecutive "- " lines into bullet blocks and
// turns blank lines into spacing.
func buildTemplateData(sections []types.ResumeSection) *TemplateData {
	data := &TemplateData{Sections: make([]SectionData, 0, len(sections))}

	for _, sec := range sections {
		sd := SectionData{Title: sec.Title}
		for _, line := range sec.Lines {
			switch {
			case line == "":
				sd.Blocks = append(sd.Blocks, Block{Kind: BlockSpace})
			case strings.HasPrefix(line, "- "):
				n := len(sd.Blocks)
				if n > 0 && sd.Blocks[n-1].Kind == BlockBullets {
					sd.Blocks[n-1].Items = append(sd.Blocks[n-1].Items, line[2:])
				} else {
					sd.Blocks = append(sd.Blocks, Block{Kind: BlockBullets, Items: []string{line[2:]}})
				}
			default:
				sd.Blocks = append(sd.Blocks, Block{Kind: BlockText, Text: line})
			}
		}
		data.Sections = append(data.Sections, sd)
	}
	return data
}
