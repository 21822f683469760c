package api

import "encoding/json"

// Имена коллекций, которые понимает сервер
const (
	CollectionMembers  = "members"
	CollectionAudit    = "audit"
	CollectionRoles    = "roles"
	CollectionInvites  = "invites"
	CollectionSettings = "settings"
)

// Record представляет одну запись произвольной коллекции на проводе.
// Data несет доменный объект как есть; сервер не заглядывает внутрь,
// кроме операций над коллекцией members.
type Record struct {
	ID      string          `json:"id"`
	Section string          `json:"section,omitempty"`
	Data    json.RawMessage `json:"data"`
}

// RecordsResponse представляет ответ сервера на выборку коллекции
type RecordsResponse struct {
	Records []Record `json:"records"`
}

// Mark представляет одну отметку участника на проводе
type Mark struct {
	Date      string `json:"date"`
	Score     int    `json:"score"`
	Behaviour *int   `json:"behaviour,omitempty"`
}

// UpdateFieldsRequest представляет обновление скалярных полей записи.
// Коллекции отметок это обновление не касается: для них есть
// отдельная операция merge marks.
type UpdateFieldsRequest struct {
	Section string          `json:"section"`
	Fields  json.RawMessage `json:"fields"`
}

// MergeMarksRequest представляет атомарную операцию слияния отметок
// участника на сервере, в отличие от полной перезаписи записи.
type MergeMarksRequest struct {
	Marks []Mark `json:"marks"`
}

// AuditEntryRequest представляет добавление записи в журнал изменений
type AuditEntryRequest struct {
	Entry json.RawMessage `json:"entry"`
}

// ErrorResponse представляет ответ сервера с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
