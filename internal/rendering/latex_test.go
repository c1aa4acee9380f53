package rendering

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-tailor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderLaTeX_BuiltinTemplate(t *testing.T) {
	sections, _ := Assemble(AssembleInput{
		SkillNames:        []string{"C#", "R&D"},
		Items:             sampleItems(),
		MaxBulletsPerItem: 2,
	})

	out, err := RenderLaTeX(sections, LaTeXOptions{})
	require.NoError(t, err)

	assert.Contains(t, out, `\documentclass`)
	assert.Contains(t, out, `\section*{Summary}`)
	assert.Contains(t, out, `\section*{Relevant Work}`)
	assert.Contains(t, out, `C\#, R\&D`)
	assert.Contains(t, out, `\item Built matching API`)
	assert.Contains(t, out, `\medskip`)
	assert.Contains(t, out, `\end{document}`)
}

func TestRenderLaTeX_UnknownTemplate(t *testing.T) {
	_, err := RenderLaTeX(nil, LaTeXOptions{Template: "fancy_v9"})

	var tmplErr *TemplateError
	require.ErrorAs(t, err, &tmplErr)
	assert.Contains(t, tmplErr.Error(), "unknown template")
}

func TestRenderLaTeX_CustomTemplatePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mini.tex")
	content := `{{range .Sections}}[{{escape .Title}}]{{range .Blocks}}{{.Kind}};{{end}}{{end}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	out, err := RenderLaTeX([]types.ResumeSection{
		{Title: "A_B", Lines: []string{"text", "- one", "- two", "", "tail"}},
	}, LaTeXOptions{TemplatePath: path})
	require.NoError(t, err)
	assert.Equal(t, `[A\_B]text;bullets;space;text;`, out)
}

func TestRenderLaTeX_MissingTemplateFile(t *testing.T) {
	_, err := RenderLaTeX(nil, LaTeXOptions{TemplatePath: "does/not/exist.tex"})

	var tmplErr *TemplateError
	require.ErrorAs(t, err, &tmplErr)
	assert.Contains(t, tmplErr.Error(), "template file not found")
}

func TestRenderLaTeX_BadTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.tex")
	require.NoError(t, os.WriteFile(path, []byte(`{{range}}`), 0644))

	_, err := RenderLaTeX(nil, LaTeXOptions{TemplatePath: path})
	var tmplErr *TemplateError
	require.ErrorAs(t, err, &tmplErr)
	assert.Contains(t, tmplErr.Error(), "failed to parse template")
}

func TestBuildTemplateData_GroupsBullets(t *testing.T) {
	data := buildTemplateData([]types.ResumeSection{
		{Title: "Work", Lines: []string{"Header", "- a", "- b", "", "Next", "- c"}},
	})

	require.Len(t, data.Sections, 1)
	blocks := data.Sections[0].Blocks
	require.Len(t, blocks, 5)
	assert.Equal(t, Block{Kind: BlockText, Text: "Header"}, blocks[0])
	assert.Equal(t, Block{Kind: BlockBullets, Items: []string{"a", "b"}}, blocks[1])
	assert.Equal(t, BlockSpace, blocks[2].Kind)
	assert.Equal(t, []string{"c"}, blocks[4].Items)
}
