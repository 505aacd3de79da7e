package newpost

import (
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"text/template"

	"github.com/eringen/newpost/scaffold"
)

// Built-in index layouts.
const (
	LayoutPug  = "pug"
	LayoutMeta = "meta"
)

const templateRoot = "templates"

var templateFuncs = template.FuncMap{
	"joinTags": JoinTags,
	// attr escapes a value for a double-quoted pug attribute.
	"attr": strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace,
}

// Layouts returns the names of the embedded index layouts, sorted.
func Layouts() []string {
	entries, err := fs.ReadDir(scaffold.Templates, templateRoot)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".tmpl") {
			names = append(names, strings.TrimSuffix(e.Name(), ".tmpl"))
		}
	}
	sort.Strings(names)
	return names
}

func hasLayout(layout string) bool {
	for _, l := range Layouts() {
		if l == layout {
			return true
		}
	}
	return false
}

// RenderIndex renders the index document for the given layout.
func RenderIndex(layout string, data IndexData) (string, error) {
	if !hasLayout(layout) {
		return "", fmt.Errorf("%w: %q (available: %s)", ErrUnknownLayout, layout, strings.Join(Layouts(), ", "))
	}
	name := layout + ".tmpl"
	content, err := fs.ReadFile(scaffold.Templates, templateRoot+"/"+name)
	if err != nil {
		return "", fmt.Errorf("read template %s: %w", name, err)
	}
	tmpl, err := template.New(name).Funcs(templateFuncs).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return "", fmt.Errorf("parse template %s: %w", name, err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, withPlaceholders(data)); err != nil {
		return "", fmt.Errorf("execute template %s: %w", name, err)
	}
	return b.String(), nil
}

func withPlaceholders(d IndexData) IndexData {
	if d.Description == "" {
		d.Description = PlaceholderDescription
	}
	if d.Keywords == "" {
		d.Keywords = PlaceholderKeywords
	}
	if d.Date == "" {
		d.Date = PlaceholderDate
	}
	if len(d.Tags) == 0 {
		d.Tags = []string{PlaceholderTags}
	}
	return d
}
