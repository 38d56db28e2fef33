package contextkeys

type contextKey string

// RequestID Ключ контекста для идентификатора запроса.
const RequestID contextKey = "request_id"
