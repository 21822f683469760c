package syncer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"time"

	"github.com/iudanet/rollbook/internal/client/gateway"
	"github.com/iudanet/rollbook/internal/client/storage"
	"github.com/iudanet/rollbook/internal/models"
	"github.com/iudanet/rollbook/pkg/api"
)

// FetchMembers возвращает участников секции.
//
// Кэш непустой: отдаем кэш сразу, ревалидацию запускаем в фоне.
// Кэш пустой и сеть есть: синхронно тянем с сервера и наполняем кэш.
// Кэш пустой и сети нет: пустой список - это валидный ответ.
func (c *coordinator) FetchMembers(ctx context.Context, section models.Section) ([]*models.Member, error) {
	if !section.Valid() {
		return nil, fmt.Errorf("unknown section %q", section)
	}

	cached, err := c.cachedMembers(ctx, section)
	if err != nil {
		return nil, err
	}

	if len(cached) > 0 {
		if c.conn.Online() {
			go func() {
				// Фон живет дольше запроса, породившего его
				if err := c.Revalidate(context.Background(), section); err != nil {
					c.logger.Warn("background revalidation failed",
						"section", section, "error", err)
				}
			}()
		}
		return cached, nil
	}

	if !c.conn.Online() {
		return []*models.Member{}, nil
	}

	readAt := time.Now()
	fetched, err := c.fetchRemoteMembers(ctx, section)
	if err != nil {
		return nil, err
	}
	if _, err := c.replaceCachedMembers(ctx, section, fetched, readAt); err != nil {
		return nil, err
	}
	return fetched, nil
}

// Revalidate синхронно сверяет кэш секции с сервером и при расхождении
// замещает кэш и публикует ChangeEvent
func (c *coordinator) Revalidate(ctx context.Context, section models.Section) error {
	if !section.Valid() {
		return fmt.Errorf("unknown section %q", section)
	}

	// source read фиксируется до похода в сеть: если мутация успеет
	// записаться позже, её штамп будет новее и этот результат отбросится
	readAt := time.Now()

	fetched, err := c.fetchRemoteMembers(ctx, section)
	if err != nil {
		return fmt.Errorf("failed to revalidate section %s: %w", section, err)
	}

	cached, err := c.cachedMembers(ctx, section)
	if err != nil {
		return err
	}

	if membersEqual(cached, fetched) {
		return nil
	}

	applied, err := c.replaceCachedMembers(ctx, section, fetched, readAt)
	if err != nil {
		return err
	}
	if applied {
		c.notifier.Publish(ChangeEvent{Section: section})
	}
	return nil
}

// cachedMembers читает и декодирует участников секции из кэша.
// Нечитаемые записи пропускаются с предупреждением, как и на уровне
// хранилища.
func (c *coordinator) cachedMembers(ctx context.Context, section models.Section) ([]*models.Member, error) {
	raw, err := c.records.GetAll(ctx, storage.CollectionMembers, section)
	if err != nil {
		return nil, fmt.Errorf("failed to read cached members: %w", err)
	}

	members := make([]*models.Member, 0, len(raw))
	for _, data := range raw {
		member := &models.Member{}
		if err := json.Unmarshal(data, member); err != nil {
			c.logger.Warn("skipping cached member that failed to decode", "error", err)
			continue
		}
		members = append(members, member)
	}
	sortMembers(members)
	return members, nil
}

// fetchRemoteMembers тянет участников секции с сервера
func (c *coordinator) fetchRemoteMembers(ctx context.Context, section models.Section) ([]*models.Member, error) {
	records, err := c.gw.FetchAll(ctx, api.CollectionMembers, section)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch members: %w", err)
	}

	members := make([]*models.Member, 0, len(records))
	for i := range records {
		member, err := decodeMember(&records[i])
		if err != nil {
			c.logger.Warn("skipping remote member that failed to decode",
				"record_id", records[i].ID, "error", err)
			continue
		}
		models.SortMarks(member.Marks)
		members = append(members, member)
	}
	sortMembers(members)
	return members, nil
}

// replaceCachedMembers замещает кэш секции свежим списком, если штамп
// секции не ушел вперед source read этого списка. Возвращает true,
// если замещение действительно применилось.
func (c *coordinator) replaceCachedMembers(ctx context.Context, section models.Section, members []*models.Member, readAt time.Time) (bool, error) {
	if !c.applyStamp(section, readAt) {
		c.logger.Debug("discarding stale revalidation result", "section", section)
		return false, nil
	}

	// Замещение поверх GetAll/Delete/Put вместо Clear: в бакете живут
	// обе секции, Clear снес бы и соседнюю
	existing, err := c.records.GetAll(ctx, storage.CollectionMembers, section)
	if err != nil {
		return false, fmt.Errorf("failed to read cached members: %w", err)
	}

	fresh := make(map[string]struct{}, len(members))
	for _, member := range members {
		fresh[member.ID] = struct{}{}
		payload, err := json.Marshal(member)
		if err != nil {
			return false, fmt.Errorf("failed to marshal member: %w", err)
		}
		if err := c.records.Put(ctx, storage.CollectionMembers, member.ID, payload, section); err != nil {
			return false, fmt.Errorf("failed to cache member: %w", err)
		}
	}

	for _, data := range existing {
		member := &models.Member{}
		if err := json.Unmarshal(data, member); err != nil {
			continue
		}
		if _, ok := fresh[member.ID]; !ok {
			if err := c.records.Delete(ctx, storage.CollectionMembers, member.ID); err != nil {
				return false, fmt.Errorf("failed to evict cached member: %w", err)
			}
		}
	}

	return true, nil
}

// Settings возвращает настройки секции: сначала кэш, при промахе и
// живой сети запись подтягивается с сервера. Отсутствие настроек не
// ошибка, возвращаются пустые значения.
func (c *coordinator) Settings(ctx context.Context, section models.Section) (*models.SectionSettings, error) {
	if !section.Valid() {
		return nil, fmt.Errorf("unknown section %q", section)
	}

	data, err := c.records.Get(ctx, storage.CollectionSettings, string(section))
	switch {
	case err == nil:
		settings := &models.SectionSettings{}
		if jsonErr := json.Unmarshal(data, settings); jsonErr == nil {
			return settings, nil
		}
		c.logger.Warn("cached settings failed to decode", "section", section)
	case !errors.Is(err, storage.ErrRecordNotFound):
		return nil, fmt.Errorf("failed to read cached settings: %w", err)
	}

	if !c.conn.Online() {
		return &models.SectionSettings{Section: section}, nil
	}

	rec, err := c.gw.FetchOne(ctx, api.CollectionSettings, string(section), section)
	if errors.Is(err, gateway.ErrNotFound) {
		return &models.SectionSettings{Section: section}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch settings: %w", err)
	}

	settings := &models.SectionSettings{}
	if err := json.Unmarshal(rec.Data, settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings record: %w", err)
	}
	if err := c.records.Put(ctx, storage.CollectionSettings, string(section), rec.Data, section); err != nil {
		return nil, fmt.Errorf("failed to cache settings: %w", err)
	}
	return settings, nil
}

// Invites возвращает коды приглашений (только для администратора).
// Online: свежий список с сервера с обновлением кэша, offline: кэш.
func (c *coordinator) Invites(ctx context.Context) ([]*models.InviteCode, error) {
	if c.conn.Online() {
		records, err := c.gw.FetchAll(ctx, api.CollectionInvites, "")
		if err != nil {
			return nil, fmt.Errorf("failed to fetch invites: %w", err)
		}
		invites := make([]*models.InviteCode, 0, len(records))
		for i := range records {
			invite := &models.InviteCode{}
			if err := json.Unmarshal(records[i].Data, invite); err != nil {
				c.logger.Warn("skipping invite that failed to decode",
					"record_id", records[i].ID, "error", err)
				continue
			}
			invites = append(invites, invite)
			if err := c.records.Put(ctx, storage.CollectionInvites, records[i].ID, records[i].Data, ""); err != nil {
				return nil, fmt.Errorf("failed to cache invite: %w", err)
			}
		}
		return invites, nil
	}

	raw, err := c.records.GetAll(ctx, storage.CollectionInvites, "")
	if err != nil {
		return nil, fmt.Errorf("failed to read cached invites: %w", err)
	}
	invites := make([]*models.InviteCode, 0, len(raw))
	for _, data := range raw {
		invite := &models.InviteCode{}
		if err := json.Unmarshal(data, invite); err != nil {
			c.logger.Warn("skipping cached invite that failed to decode", "error", err)
			continue
		}
		invites = append(invites, invite)
	}
	return invites, nil
}

// membersEqual сравнивает два списка участников по содержимому
func membersEqual(a, b []*models.Member) bool {
	if len(a) != len(b) {
		return false
	}
	byID := make(map[string]*models.Member, len(a))
	for _, member := range a {
		byID[member.ID] = member
	}
	for _, member := range b {
		other, ok := byID[member.ID]
		if !ok || !reflect.DeepEqual(member, other) {
			return false
		}
	}
	return true
}

// sortMembers упорядочивает список стабильно для UI: отряд, затем имя
func sortMembers(members []*models.Member) {
	sort.Slice(members, func(i, j int) bool {
		if members[i].Squad != members[j].Squad {
			return members[i].Squad < members[j].Squad
		}
		return members[i].Name < members[j].Name
	})
}
