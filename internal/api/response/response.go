package response

import (
	"net/http"
	"strconv"
)

// Header Заголовок ответа. Порядок заголовков в Result сохраняется.
type Header struct {
	Name  string
	Value string
}

// Result Ответ хендлера: код статуса, заголовки и тело.
type Result struct {
	Status  int
	Headers []Header
	Body    []byte
}

// HTML Ответ с HTML-телом и заголовками по умолчанию.
func HTML(status int, body string) Result {
	return Result{Status: status, Body: []byte(body)}
}

// Bytes Ответ с произвольным телом и указанным Content-Type.
func Bytes(status int, contentType string, body []byte) Result {
	return Result{
		Status:  status,
		Headers: []Header{{Name: "Content-Type", Value: contentType}},
		Body:    body,
	}
}

// Write Пишет Result в ответ одним куском. Заголовки хендлера перекрывают заголовки по умолчанию
// (Content-Type: text/html и Content-Length по длине тела).
func Write(w http.ResponseWriter, res Result) error {
	h := w.Header()
	h.Set("Content-Type", "text/html")
	h.Set("Content-Length", strconv.Itoa(len(res.Body)))

	for _, header := range res.Headers {
		h.Set(header.Name, header.Value)
	}

	w.WriteHeader(res.Status)

	_, err := w.Write(res.Body)

	return err
}
