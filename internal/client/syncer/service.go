package syncer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/rollbook/internal/client/gateway"
	"github.com/iudanet/rollbook/internal/client/storage"
	"github.com/iudanet/rollbook/internal/models"
	"github.com/iudanet/rollbook/internal/validation"
	"github.com/iudanet/rollbook/pkg/api"
)

//go:generate go tool moq -out service_mock.go . Service

// Service определяет интерфейс координатора синхронизации.
// Все мутации и чтения локального кэша идут через него: UI не трогает
// ни хранилище, ни очередь напрямую.
type Service interface {
	// CreateMember создает участника: remote-then-cache в online,
	// queue-then-cache в offline
	CreateMember(ctx context.Context, member *models.Member) error

	// UpdateMember сохраняет правку участника, сливая отметки
	// с актуальным состоянием сервера (см. UpdateOptions)
	UpdateMember(ctx context.Context, member *models.Member, opts UpdateOptions) error

	// DeleteMember удаляет участника
	DeleteMember(ctx context.Context, id string, section models.Section) error

	// RecreateMember восстанавливает участника (upsert), например
	// при откате удаления из audit snapshot
	RecreateMember(ctx context.Context, member *models.Member) error

	// AppendAuditEntry добавляет запись в журнал изменений
	AppendAuditEntry(ctx context.Context, entry *models.AuditEntry) error

	// SetUserRole обновляет закэшированную роль пользователя
	SetUserRole(ctx context.Context, role *models.UserRole) error

	// DeleteUserRole удаляет роль пользователя
	DeleteUserRole(ctx context.Context, userID string) error

	// FetchMembers возвращает участников секции (read-through кэш
	// с фоновой ревалидацией)
	FetchMembers(ctx context.Context, section models.Section) ([]*models.Member, error)

	// Settings возвращает настройки секции (read-through кэш)
	Settings(ctx context.Context, section models.Section) (*models.SectionSettings, error)

	// Invites возвращает коды приглашений
	Invites(ctx context.Context) ([]*models.InviteCode, error)

	// Revalidate синхронно сверяет кэш секции с сервером
	Revalidate(ctx context.Context, section models.Section) error

	// Replay воспроизводит очередь отложенных мутаций строго по порядку
	Replay(ctx context.Context) error

	// HandleOnline вызывается на переходе offline -> online
	HandleOnline(ctx context.Context) error

	// PendingCount возвращает количество мутаций, ожидающих replay
	PendingCount(ctx context.Context) (int, error)

	// Subscribe регистрирует подписчика на события изменения кэша
	Subscribe(fn func(ChangeEvent))
}

// UpdateOptions управляет сохранением правки участника
type UpdateOptions struct {
	// Actor - кто выполняет правку (для журнала изменений)
	Actor string

	// Audit - писать ли audit запись. Запись появится только если
	// удалось получить снимок состояния до правки: корректность
	// revert данных важнее полноты журнала.
	Audit bool
}

// coordinator реализует Service
type coordinator struct {
	gw       gateway.Gateway
	records  storage.RecordStore
	queue    storage.PendingQueue
	conn     Connectivity
	notifier *Notifier
	logger   *slog.Logger

	// mu сериализует мутации и replay: взаимное исключение очереди и
	// хранилища достигается единственной точкой входа, а не локами
	// внутри компонентов
	mu sync.Mutex

	// stamps защищает кэш от затирания устаревшей фоновой ревалидацией:
	// запись в кэш применяется только если её source read не старше
	// текущего штампа секции
	stampMu sync.Mutex
	stamps  map[models.Section]time.Time
}

// New creates a new sync coordinator
func New(gw gateway.Gateway, records storage.RecordStore, queue storage.PendingQueue, conn Connectivity, logger *slog.Logger) Service {
	return &coordinator{
		gw:       gw,
		records:  records,
		queue:    queue,
		conn:     conn,
		notifier: NewNotifier(),
		logger:   logger,
		stamps:   make(map[models.Section]time.Time),
	}
}

// Subscribe регистрирует подписчика на события изменения кэша
func (c *coordinator) Subscribe(fn func(ChangeEvent)) {
	c.notifier.Subscribe(fn)
}

// PendingCount возвращает количество мутаций, ожидающих replay
func (c *coordinator) PendingCount(ctx context.Context) (int, error) {
	return c.queue.Count(ctx)
}

// CreateMember создает участника.
// Online: сначала remote, затем кэш; ошибка remote поднимается наверх,
// тихого перехода в очередь нет. Offline: очередь, затем оптимистичная
// запись в кэш, чтобы UI сразу увидел результат.
func (c *coordinator) CreateMember(ctx context.Context, member *models.Member) error {
	if member != nil && member.ID == "" {
		member.ID = uuid.New().String()
	}
	if err := validation.ValidateMember(member); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	models.SortMarks(member.Marks)

	payload, err := json.Marshal(member)
	if err != nil {
		return fmt.Errorf("failed to marshal member: %w", err)
	}

	if !c.conn.Online() {
		return c.queueAndCache(ctx, &models.PendingWrite{
			Op:       models.OpCreateMember,
			Section:  member.Section,
			RecordID: member.ID,
			Payload:  payload,
		}, storage.CollectionMembers, member.ID, payload, member.Section)
	}

	readAt := time.Now()
	resp, err := c.gw.CreateRecord(ctx, api.CollectionMembers, memberRecord(member))
	if err != nil {
		return fmt.Errorf("failed to create member remotely: %w", err)
	}

	// Кэшируем подтвержденный сервером результат
	confirmed := payload
	if resp != nil && len(resp.Data) > 0 {
		confirmed = resp.Data
	}
	return c.cacheWrite(ctx, storage.CollectionMembers, member.ID, confirmed, member.Section, readAt)
}

// UpdateMember сохраняет правку участника.
//
// Online путь - единственное место настоящего слияния: правка могла
// делаться поверх устаревших данных, поэтому перед записью читается
// remoteCurrent и отметки сливаются (local выигрывает по датам, которые
// тронул, remote-only даты сохраняются). Скалярные поля пишутся отдельным
// вызовом от отметок, чтобы конкурентные правки "только отметки" и
// "только скаляры" не затирали друг друга.
func (c *coordinator) UpdateMember(ctx context.Context, member *models.Member, opts UpdateOptions) error {
	if err := validation.ValidateMember(member); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	models.SortMarks(member.Marks)

	if !c.conn.Online() {
		// Offline: сырое (до слияния) намерение в очередь, слияние
		// отложено до момента, когда запись реально дойдет до сервера
		payload, err := json.Marshal(member)
		if err != nil {
			return fmt.Errorf("failed to marshal member: %w", err)
		}
		return c.queueAndCache(ctx, &models.PendingWrite{
			Op:       models.OpUpdateMember,
			Section:  member.Section,
			RecordID: member.ID,
			Payload:  payload,
		}, storage.CollectionMembers, member.ID, payload, member.Section)
	}

	readAt := time.Now()

	merged, snapshot, err := c.pushMemberUpdate(ctx, member)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(merged)
	if err != nil {
		return fmt.Errorf("failed to marshal merged member: %w", err)
	}
	if err := c.cacheWrite(ctx, storage.CollectionMembers, merged.ID, payload, merged.Section, readAt); err != nil {
		return err
	}

	// Audit пишется только при валидном снимке до правки:
	// без снимка revert payload был бы выдумкой
	if opts.Audit && snapshot != nil {
		if err := c.appendAuditLocked(ctx, &models.AuditEntry{
			ID:        uuid.New().String(),
			Action:    models.AuditActionUpdate,
			MemberID:  merged.ID,
			Section:   merged.Section,
			Actor:     opts.Actor,
			Snapshot:  snapshot,
			CreatedAt: time.Now(),
		}); err != nil {
			// Сама правка уже прошла; неудачный audit не откатывает её
			c.logger.Warn("failed to append audit entry", "member_id", merged.ID, "error", err)
		}
	}

	return nil
}

// pushMemberUpdate выполняет remote часть правки: читает remoteCurrent,
// сливает отметки и пишет скаляры и отметки двумя вызовами.
// Возвращает слитого участника и снимок до правки (nil, если снимок
// получить не удалось).
func (c *coordinator) pushMemberUpdate(ctx context.Context, member *models.Member) (*models.Member, *models.Member, error) {
	merged := member.Clone()

	var snapshot *models.Member
	remote, err := c.gw.FetchOne(ctx, api.CollectionMembers, member.ID, member.Section)
	switch {
	case err == nil:
		remoteCurrent, decErr := decodeMember(remote)
		if decErr != nil {
			c.logger.Warn("failed to decode remote member, skipping merge",
				"member_id", member.ID, "error", decErr)
		} else {
			snapshot = remoteCurrent
			merged.Marks = models.MergeMarks(member.Marks, remoteCurrent.Marks)
		}
	case errors.Is(err, gateway.ErrNotFound):
		// Записи на сервере нет: сливать не с чем
	default:
		// Fetch не удался: слияние пропускаем, reconciliation
		// произойдет при следующем успешном чтении
		c.logger.Warn("failed to fetch remote member before update, skipping merge",
			"member_id", member.ID, "error", err)
	}

	fields, err := scalarFields(member)
	if err != nil {
		return nil, nil, err
	}

	if _, err := c.gw.UpdateRecordFields(ctx, api.CollectionMembers, member.ID, member.Section, fields); err != nil {
		return nil, nil, fmt.Errorf("failed to update member fields remotely: %w", err)
	}
	if _, err := c.gw.MergeMarks(ctx, member.ID, apiMarks(merged.Marks)); err != nil {
		return nil, nil, fmt.Errorf("failed to merge marks remotely: %w", err)
	}

	return merged, snapshot, nil
}

// DeleteMember удаляет участника
func (c *coordinator) DeleteMember(ctx context.Context, id string, section models.Section) error {
	if id == "" {
		return fmt.Errorf("member id is required")
	}
	if !section.Valid() {
		return fmt.Errorf("unknown section %q", section)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.conn.Online() {
		if _, err := c.queue.Enqueue(ctx, &models.PendingWrite{
			Op:       models.OpDeleteMember,
			Section:  section,
			RecordID: id,
		}); err != nil {
			return fmt.Errorf("failed to enqueue delete: %w", err)
		}
		return c.records.Delete(ctx, storage.CollectionMembers, id)
	}

	if err := c.gw.DeleteRecord(ctx, api.CollectionMembers, id, section); err != nil {
		return fmt.Errorf("failed to delete member remotely: %w", err)
	}
	return c.records.Delete(ctx, storage.CollectionMembers, id)
}

// RecreateMember восстанавливает участника (upsert)
func (c *coordinator) RecreateMember(ctx context.Context, member *models.Member) error {
	if err := validation.ValidateMember(member); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	models.SortMarks(member.Marks)

	payload, err := json.Marshal(member)
	if err != nil {
		return fmt.Errorf("failed to marshal member: %w", err)
	}

	if !c.conn.Online() {
		return c.queueAndCache(ctx, &models.PendingWrite{
			Op:       models.OpRecreateMember,
			Section:  member.Section,
			RecordID: member.ID,
			Payload:  payload,
		}, storage.CollectionMembers, member.ID, payload, member.Section)
	}

	readAt := time.Now()
	resp, err := c.gw.UpsertRecord(ctx, api.CollectionMembers, memberRecord(member))
	if err != nil {
		return fmt.Errorf("failed to recreate member remotely: %w", err)
	}

	confirmed := payload
	if resp != nil && len(resp.Data) > 0 {
		confirmed = resp.Data
	}
	return c.cacheWrite(ctx, storage.CollectionMembers, member.ID, confirmed, member.Section, readAt)
}

// AppendAuditEntry добавляет запись в журнал изменений
func (c *coordinator) AppendAuditEntry(ctx context.Context, entry *models.AuditEntry) error {
	if entry != nil && entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if err := validation.ValidateAuditEntry(entry); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return c.appendAuditLocked(ctx, entry)
}

func (c *coordinator) appendAuditLocked(ctx context.Context, entry *models.AuditEntry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal audit entry: %w", err)
	}

	if !c.conn.Online() {
		return c.queueAndCache(ctx, &models.PendingWrite{
			Op:       models.OpAppendAudit,
			Section:  entry.Section,
			RecordID: entry.ID,
			Payload:  payload,
		}, storage.CollectionAudit, entry.ID, payload, entry.Section)
	}

	if err := c.gw.AppendAuditEntry(ctx, payload); err != nil {
		return fmt.Errorf("failed to append audit entry remotely: %w", err)
	}
	return c.records.Put(ctx, storage.CollectionAudit, entry.ID, payload, entry.Section)
}

// SetUserRole обновляет закэшированную роль пользователя
func (c *coordinator) SetUserRole(ctx context.Context, role *models.UserRole) error {
	if err := validation.ValidateUserRole(role); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	role.UpdatedAt = time.Now()
	payload, err := json.Marshal(role)
	if err != nil {
		return fmt.Errorf("failed to marshal user role: %w", err)
	}

	if !c.conn.Online() {
		return c.queueAndCache(ctx, &models.PendingWrite{
			Op:       models.OpUpdateUserRole,
			RecordID: role.UserID,
			Payload:  payload,
		}, storage.CollectionRoles, role.UserID, payload, "")
	}

	if _, err := c.gw.UpsertRecord(ctx, api.CollectionRoles, api.Record{ID: role.UserID, Data: payload}); err != nil {
		return fmt.Errorf("failed to update user role remotely: %w", err)
	}
	return c.records.Put(ctx, storage.CollectionRoles, role.UserID, payload, "")
}

// DeleteUserRole удаляет роль пользователя
func (c *coordinator) DeleteUserRole(ctx context.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("user id is required")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.conn.Online() {
		if _, err := c.queue.Enqueue(ctx, &models.PendingWrite{
			Op:       models.OpDeleteUserRole,
			RecordID: userID,
		}); err != nil {
			return fmt.Errorf("failed to enqueue role delete: %w", err)
		}
		return c.records.Delete(ctx, storage.CollectionRoles, userID)
	}

	if err := c.gw.DeleteRecord(ctx, api.CollectionRoles, userID, ""); err != nil {
		return fmt.Errorf("failed to delete user role remotely: %w", err)
	}
	return c.records.Delete(ctx, storage.CollectionRoles, userID)
}

// queueAndCache - offline путь мутации: сначала durable запись в очередь,
// затем оптимистичная запись намерения в кэш
func (c *coordinator) queueAndCache(ctx context.Context, write *models.PendingWrite, collection storage.Collection, id string, payload []byte, section models.Section) error {
	if _, err := c.queue.Enqueue(ctx, write); err != nil {
		return fmt.Errorf("failed to enqueue %s: %w", write.Op, err)
	}
	if err := c.records.Put(ctx, collection, id, payload, section); err != nil {
		return fmt.Errorf("failed to cache optimistic write: %w", err)
	}
	return nil
}

// cacheWrite пишет подтвержденную сервером мутацию в кэш.
// Запись применяется безусловно: сервер принял её позже, чем любая
// параллельная ревалидация начала свой fetch. Штамп секции при этом
// продвигается, чтобы такая ревалидация была отброшена (см. applyStamp).
func (c *coordinator) cacheWrite(ctx context.Context, collection storage.Collection, id string, payload []byte, section models.Section, readAt time.Time) error {
	c.applyStamp(section, readAt)
	return c.records.Put(ctx, collection, id, payload, section)
}

// applyStamp продвигает штамп секции до readAt.
// Возвращает false, если readAt старше текущего штампа: ревалидация
// с таким source read устарела и её результат отбрасывается.
func (c *coordinator) applyStamp(section models.Section, readAt time.Time) bool {
	c.stampMu.Lock()
	defer c.stampMu.Unlock()

	if readAt.Before(c.stamps[section]) {
		return false
	}
	c.stamps[section] = readAt
	return true
}

// memberRecord собирает проводное представление участника
func memberRecord(member *models.Member) api.Record {
	data, _ := json.Marshal(member)
	return api.Record{
		ID:      member.ID,
		Section: string(member.Section),
		Data:    data,
	}
}

// decodeMember разбирает участника из проводной записи
func decodeMember(record *api.Record) (*models.Member, error) {
	member := &models.Member{}
	if err := json.Unmarshal(record.Data, member); err != nil {
		return nil, fmt.Errorf("failed to unmarshal member record: %w", err)
	}
	return member, nil
}

// scalarFields собирает payload обновления скалярных полей:
// отметки сюда намеренно не входят
func scalarFields(member *models.Member) (json.RawMessage, error) {
	fields, err := json.Marshal(map[string]any{
		"name":         member.Name,
		"squad":        member.Squad,
		"year":         member.Year,
		"squad_leader": member.SquadLeader,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal scalar fields: %w", err)
	}
	return fields, nil
}

// apiMarks конвертирует отметки в проводной формат
func apiMarks(marks []models.Mark) []api.Mark {
	result := make([]api.Mark, 0, len(marks))
	for _, m := range marks {
		result = append(result, api.Mark{
			Date:      m.Date,
			Score:     m.Score,
			Behaviour: m.Behaviour,
		})
	}
	return result
}
