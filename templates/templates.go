// Package templates renders the diffweb demo front end's HTML pages from
// the embedded *.tmpl files.
package templates

import (
	"embed"
	"html"
	"html/template"
	"maps"
	"net/url"
	"strconv"
	"strings"
)

var (
	Templates = template.Must(
		template.New("").
			ParseFS(templateFS, "*.tmpl"),
	)
	//go:embed *.tmpl
	templateFS embed.FS
)

// FileTemplateData is handed to file.tmpl to render a single diff result.
type FileTemplateData struct {
	ID string
	// DiffText is the rendered unified-format diff body, ready to be shown
	// verbatim in a <pre> block.
	DiffText string
	Space    string
	Context  int
	Split    bool
	Query    url.Values
}

func (f *FileTemplateData) WithQueryValue(key, value string) string {
	uvCopy := make(url.Values)
	maps.Copy(uvCopy, f.Query)
	if value == "" {
		uvCopy.Del(key)
	} else {
		uvCopy.Set(key, value)
	}
	if len(uvCopy) == 0 {
		return ""
	}
	return "?" + uvCopy.Encode()
}

func (f *FileTemplateData) ContextLinks() template.HTML {
	const (
		minVal = 0
		maxVal = 1000
	)
	smallest := f.Context - 3
	greatest := f.Context + 3
	if smallest < minVal {
		greatest += minVal - smallest
		smallest = minVal
	}
	if greatest > maxVal {
		smallest -= greatest - maxVal
		greatest = maxVal
	}
	var bld strings.Builder

	for i := smallest; i <= greatest; i++ {
		if bld.Len() != 0 {
			bld.WriteString(" | ")
		}
		if i == f.Context {
			bld.WriteString("<b>" + strconv.Itoa(f.Context) + "</b>")
			continue
		}
		intString := strconv.Itoa(i)
		if intString == "3" {
			intString = ""
		}
		uri := "/" + f.ID + f.WithQueryValue("c", intString)
		bld.WriteString(
			`<a href="` + html.EscapeString(uri) + `">` +
				strconv.Itoa(i) + `</a>`,
		)
	}
	return template.HTML(bld.String())
}
