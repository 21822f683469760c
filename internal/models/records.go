package models

import "time"

// Role представляет роль пользователя в приложении
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleLeader Role = "leader"
	RoleViewer Role = "viewer"
)

// AuditEntry представляет запись журнала изменений.
// Snapshot хранит состояние участника до изменения и используется
// как revert payload.
type AuditEntry struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	MemberID  string    `json:"member_id"`
	Section   Section   `json:"section"`
	Actor     string    `json:"actor"`
	Snapshot  *Member   `json:"snapshot,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Audit actions
const (
	AuditActionCreate   = "create"
	AuditActionUpdate   = "update"
	AuditActionDelete   = "delete"
	AuditActionRecreate = "recreate"
)

// UserRole представляет закэшированную роль пользователя.
// Источник истины - backend авторизации; клиент хранит только копию,
// чтобы UI мог работать offline.
type UserRole struct {
	UserID    string    `json:"user_id"`
	Role      Role      `json:"role"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InviteCode представляет одноразовый код приглашения.
// Бизнес-правила выдачи и погашения кода живут на сервере,
// клиент только кэширует записи.
type InviteCode struct {
	Code      string    `json:"code"`
	Role      Role      `json:"role"`
	Used      bool      `json:"used"`
	CreatedAt time.Time `json:"created_at"`
}

// SectionSettings представляет настройки одной секции
type SectionSettings struct {
	Section   Section `json:"section"`
	Title     string  `json:"title"`
	YearLabel string  `json:"year_label"`
}
