// Package route разбирает путь запроса на сегменты и определяет тип маршрута по первому сегменту.
package route

import (
	"net/http"
	"net/url"
	"strings"
)

// Kind Тип маршрута, выбранный по первому сегменту пути.
type Kind int

const (
	Default Kind = iota
	Assets
	Media
	NotFound
)

func (k Kind) String() string {
	switch k {
	case Default:
		return "default"
	case Assets:
		return "assets"
	case Media:
		return "media"
	default:
		return "notfound"
	}
}

// Request Разобранный запрос: исходный путь, сегменты, ключ маршрута и остаток пути.
type Request struct {
	Path     string
	Segments []string
	Key      string
	Kind     Kind
	Rest     []string
	Query    url.Values
}

// Split Убирает все ведущие `/` и делит путь на сегменты. Пустые сегменты после первого
// сохраняются, `/` и пустой путь дают [""].
func Split(path string) []string {
	return strings.Split(strings.TrimLeft(path, "/"), "/")
}

// Resolve Определяет тип маршрута по первому сегменту. Неизвестные ключи дают NotFound.
func Resolve(segments []string) Kind {
	if len(segments) == 0 || segments[0] == "" {
		return Default
	}

	switch segments[0] {
	case "assets":
		return Assets
	case "media":
		return Media
	default:
		return NotFound
	}
}

// Classify Разбирает HTTP-запрос. Метод запроса не учитывается.
func Classify(r *http.Request) Request {
	path := r.URL.Path
	segments := Split(path)

	req := Request{
		Path:     path,
		Segments: segments,
		Key:      segments[0],
		Kind:     Resolve(segments),
		Rest:     segments[1:],
		Query:    r.URL.Query(),
	}

	return req
}
