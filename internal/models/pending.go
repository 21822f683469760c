package models

// Op представляет тип отложенной мутации в очереди записи.
// Закрытый набор: replay умеет воспроизводить только эти операции.
type Op string

const (
	OpCreateMember   Op = "create_member"
	OpUpdateMember   Op = "update_member"
	OpDeleteMember   Op = "delete_member"
	OpRecreateMember Op = "recreate_member"
	OpAppendAudit    Op = "append_audit"
	OpUpdateUserRole Op = "update_user_role"
	OpDeleteUserRole Op = "delete_user_role"
)

// Valid reports whether op belongs to the closed operation set.
func (op Op) Valid() bool {
	switch op {
	case OpCreateMember, OpUpdateMember, OpDeleteMember, OpRecreateMember,
		OpAppendAudit, OpUpdateUserRole, OpDeleteUserRole:
		return true
	}
	return false
}

// PendingWrite представляет одну запись в очереди отложенных мутаций.
// Seq назначается очередью монотонно, никогда вызывающим кодом.
// Payload зашифрован; Op, Section и RecordID - открытые метаданные,
// по которым replay выбирает операцию без расшифровки.
type PendingWrite struct {
	Seq      uint64  `json:"seq"`
	Op       Op      `json:"op"`
	Section  Section `json:"section,omitempty"`
	RecordID string  `json:"record_id,omitempty"`
	Payload  []byte  `json:"payload"`
}
