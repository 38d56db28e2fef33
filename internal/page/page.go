// Package page формирует HTML-страницы: заглушки разделов и страницы ошибок.
package page

import (
	"embed"
	"html"
	"html/template"
	"strings"
)

//go:embed templates/*.html
var templatesFS embed.FS

var (
	errorTemplate       = template.Must(template.ParseFS(templatesFS, "templates/layout.html", "templates/error.html"))
	placeholderTemplate = template.Must(template.ParseFS(templatesFS, "templates/layout.html", "templates/placeholder.html"))
)

// Названия страниц-заглушек.
const (
	DefaultName = "DEFAULT"
	MediaName   = "MEDIA"
)

// Definition Пара термин/описание для списка <dl>.
type Definition struct {
	Term        string
	Description string
}

type document struct {
	Title       string
	Subtitle    string
	Paragraphs  []string
	Definitions []Definition
}

// Error Страница ошибки: заголовок, необязательный подзаголовок, абзацы и список определений.
// Все значения экранируются.
func Error(title, subtitle string, paragraphs []string, defs ...Definition) string {
	return render(errorTemplate, document{
		Title:       title,
		Subtitle:    subtitle,
		Paragraphs:  paragraphs,
		Definitions: defs,
	})
}

// Placeholder Страница-заглушка с заголовком и телом name.
func Placeholder(name string) string {
	return render(placeholderTemplate, document{Title: name})
}

func render(tmpl *template.Template, doc document) string {
	var sb strings.Builder

	// шаблоны встроены в бинарник, ошибка возможна только при записи
	if err := tmpl.ExecuteTemplate(&sb, "layout.html", doc); err != nil {
		return "<h1>" + html.EscapeString(doc.Title) + "</h1>"
	}

	return sb.String()
}
