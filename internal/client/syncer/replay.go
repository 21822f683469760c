package syncer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/iudanet/rollbook/internal/client/gateway"
	"github.com/iudanet/rollbook/internal/models"
	"github.com/iudanet/rollbook/pkg/api"
)

// ReplayError описывает остановку replay на конкретной записи очереди.
// Запись и весь хвост за ней остаются в очереди.
type ReplayError struct {
	Seq uint64
	Op  models.Op
	Err error
}

func (e *ReplayError) Error() string {
	return fmt.Sprintf("replay of %s (seq %d) failed: %v", e.Op, e.Seq, e.Err)
}

func (e *ReplayError) Unwrap() error {
	return e.Err
}

// HandleOnline вызывается на переходе offline -> online: воспроизводит
// накопленную очередь. Вызывать стоит и при старте процесса - очередь
// durable и могла пережить перезапуск.
func (c *coordinator) HandleOnline(ctx context.Context) error {
	count, err := c.queue.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count pending writes: %w", err)
	}
	if count == 0 {
		return nil
	}
	c.logger.Info("connectivity restored, replaying pending writes", "count", count)
	return c.Replay(ctx)
}

// Replay воспроизводит очередь отложенных мутаций строго в порядке
// enqueue. Первая неудача останавливает проход: упавшая запись и все
// за ней остаются в очереди, порядок не нарушается. После чистого
// прохода кэш полностью ревалидируется.
func (c *coordinator) Replay(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	writes, err := c.queue.Drain(ctx)
	if err != nil {
		return fmt.Errorf("failed to drain queue: %w", err)
	}

	for _, write := range writes {
		if err := c.replayWrite(ctx, write); err != nil {
			c.logger.Warn("replay halted",
				"seq", write.Seq, "op", write.Op, "error", err)
			return &ReplayError{Seq: write.Seq, Op: write.Op, Err: err}
		}
		if err := c.queue.Remove(ctx, write.Seq); err != nil {
			return fmt.Errorf("failed to remove replayed write: %w", err)
		}
		c.logger.Debug("replayed pending write", "seq", write.Seq, "op", write.Op)
	}

	// Кэш наполнялся оптимистичными записями; после чистого replay
	// сверяем его с подтвержденным состоянием сервера
	for _, section := range []models.Section{models.SectionCompany, models.SectionJunior} {
		if err := c.Revalidate(ctx, section); err != nil {
			c.logger.Warn("post-replay revalidation failed",
				"section", section, "error", err)
		}
	}

	return nil
}

// replayWrite выполняет remote операцию одной отложенной записи
func (c *coordinator) replayWrite(ctx context.Context, write *models.PendingWrite) error {
	switch write.Op {
	case models.OpCreateMember:
		_, err := c.gw.CreateRecord(ctx, api.CollectionMembers, api.Record{
			ID:      write.RecordID,
			Section: string(write.Section),
			Data:    write.Payload,
		})
		return err

	case models.OpUpdateMember:
		return c.replayMemberUpdate(ctx, write)

	case models.OpDeleteMember:
		err := c.gw.DeleteRecord(ctx, api.CollectionMembers, write.RecordID, write.Section)
		if errors.Is(err, gateway.ErrNotFound) {
			// Уже удален - цель достигнута
			return nil
		}
		return err

	case models.OpRecreateMember:
		_, err := c.gw.UpsertRecord(ctx, api.CollectionMembers, api.Record{
			ID:      write.RecordID,
			Section: string(write.Section),
			Data:    write.Payload,
		})
		return err

	case models.OpAppendAudit:
		return c.gw.AppendAuditEntry(ctx, write.Payload)

	case models.OpUpdateUserRole:
		_, err := c.gw.UpsertRecord(ctx, api.CollectionRoles, api.Record{
			ID:   write.RecordID,
			Data: write.Payload,
		})
		return err

	case models.OpDeleteUserRole:
		err := c.gw.DeleteRecord(ctx, api.CollectionRoles, write.RecordID, "")
		if errors.Is(err, gateway.ErrNotFound) {
			return nil
		}
		return err

	default:
		return fmt.Errorf("unknown pending op %q", write.Op)
	}
}

// replayMemberUpdate доигрывает отложенную правку участника.
// Слияние отметок происходит здесь, в момент фактической доставки:
// в очереди лежало сырое намерение, а сервер мог уйти вперед.
func (c *coordinator) replayMemberUpdate(ctx context.Context, write *models.PendingWrite) error {
	member := &models.Member{}
	if err := json.Unmarshal(write.Payload, member); err != nil {
		return fmt.Errorf("failed to unmarshal queued member: %w", err)
	}

	remote, err := c.gw.FetchOne(ctx, api.CollectionMembers, write.RecordID, write.Section)
	switch {
	case err == nil:
		remoteCurrent, decErr := decodeMember(remote)
		if decErr != nil {
			c.logger.Warn("failed to decode remote member during replay, skipping merge",
				"member_id", write.RecordID, "error", decErr)
		} else {
			member.Marks = models.MergeMarks(member.Marks, remoteCurrent.Marks)
		}
	case errors.Is(err, gateway.ErrNotFound):
		// Участника на сервере больше нет: восстанавливаем его
		// локальным состоянием целиком
		payload, mErr := json.Marshal(member)
		if mErr != nil {
			return fmt.Errorf("failed to marshal queued member: %w", mErr)
		}
		_, uErr := c.gw.UpsertRecord(ctx, api.CollectionMembers, api.Record{
			ID:      write.RecordID,
			Section: string(write.Section),
			Data:    payload,
		})
		return uErr
	default:
		return err
	}

	fields, err := scalarFields(member)
	if err != nil {
		return err
	}
	if _, err := c.gw.UpdateRecordFields(ctx, api.CollectionMembers, write.RecordID, write.Section, fields); err != nil {
		return err
	}
	_, err = c.gw.MergeMarks(ctx, write.RecordID, apiMarks(member.Marks))
	return err
}
