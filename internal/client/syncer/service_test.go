package syncer

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/rollbook/internal/client/gateway"
	"github.com/iudanet/rollbook/internal/client/storage"
	"github.com/iudanet/rollbook/internal/models"
	"github.com/iudanet/rollbook/pkg/api"
)

const (
	memberID = "2f0c2d5a-9f1e-4d0b-8a4f-5e7d7c2b1a3c"
	actorID  = "a7b8c9d0-1e2f-4a3b-8c4d-5e6f7a8b9c0d"
)

func TestCreateMember_Online(t *testing.T) {
	f := newFixture(t, true)
	member := testMember(memberID, "Иванов Петр", models.SectionCompany)

	err := f.svc.CreateMember(context.Background(), member)
	require.NoError(t, err)

	calls := f.gw.CreateRecordCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, api.CollectionMembers, calls[0].Collection)
	assert.Equal(t, memberID, calls[0].Record.ID)

	// Подтвержденный результат лежит в кэше, очередь пуста
	cached := f.cachedMember(t, memberID)
	assert.Equal(t, "Иванов Петр", cached.Name)
	assert.Equal(t, 0, f.pendingCount(t))
}

func TestCreateMember_GeneratesID(t *testing.T) {
	f := newFixture(t, true)
	member := testMember("", "Иванов Петр", models.SectionJunior)

	require.NoError(t, f.svc.CreateMember(context.Background(), member))
	assert.NotEmpty(t, member.ID)
}

func TestCreateMember_OnlineFailureSurfaces(t *testing.T) {
	f := newFixture(t, true)
	f.gw.CreateRecordFunc = func(ctx context.Context, collection string, record api.Record) (*api.Record, error) {
		return nil, errBoom
	}

	err := f.svc.CreateMember(context.Background(), testMember(memberID, "Иванов Петр", models.SectionCompany))
	require.ErrorIs(t, err, gateway.ErrUnavailable)

	// Неудача online мутации не уходит тихо в очередь и не попадает в кэш
	assert.Equal(t, 0, f.pendingCount(t))
	_, getErr := f.records.Get(context.Background(), storage.CollectionMembers, memberID)
	assert.ErrorIs(t, getErr, storage.ErrRecordNotFound)
}

func TestCreateMember_OfflineQueuesAndCaches(t *testing.T) {
	f := newFixture(t, false)
	member := testMember(memberID, "Иванов Петр", models.SectionCompany)

	require.NoError(t, f.svc.CreateMember(context.Background(), member))

	assert.Empty(t, f.gw.CreateRecordCalls())
	require.Equal(t, 1, f.pendingCount(t))

	writes, err := f.queue.Drain(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.OpCreateMember, writes[0].Op)
	assert.Equal(t, memberID, writes[0].RecordID)

	// Оптимистичная запись сразу видна при чтении
	members, err := f.svc.FetchMembers(context.Background(), models.SectionCompany)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "Иванов Петр", members[0].Name)
}

func TestCreateMember_InvalidNeverTouchesStore(t *testing.T) {
	f := newFixture(t, false)
	member := testMember(memberID, "", models.SectionCompany)

	err := f.svc.CreateMember(context.Background(), member)
	require.Error(t, err)

	assert.Equal(t, 0, f.pendingCount(t))
	assert.Empty(t, f.records.PutCalls())
}

func TestUpdateMember_MergesRemoteMarks(t *testing.T) {
	f := newFixture(t, true)

	remote := testMember(memberID, "Иванов Петр", models.SectionJunior,
		models.Mark{Date: "2025-01-08", Score: 3},
		models.Mark{Date: "2025-01-01", Score: 9},
	)
	f.gw.FetchOneFunc = func(ctx context.Context, collection, id string, section models.Section) (*api.Record, error) {
		rec := memberAPIRecord(t, remote)
		return &rec, nil
	}

	// Локальная правка трогает только 2025-01-08
	local := testMember(memberID, "Иванов Петр", models.SectionJunior,
		models.Mark{Date: "2025-01-08", Score: 10},
	)
	require.NoError(t, f.svc.UpdateMember(context.Background(), local, UpdateOptions{}))

	require.Len(t, f.gw.UpdateRecordFieldsCalls(), 1)

	mergeCalls := f.gw.MergeMarksCalls()
	require.Len(t, mergeCalls, 1)
	require.Len(t, mergeCalls[0].Marks, 2)
	// Локальная отметка выигрывает на своей дате, remote-only дата сохранена
	assert.Equal(t, "2025-01-08", mergeCalls[0].Marks[0].Date)
	assert.Equal(t, 10, mergeCalls[0].Marks[0].Score)
	assert.Equal(t, "2025-01-01", mergeCalls[0].Marks[1].Date)
	assert.Equal(t, 9, mergeCalls[0].Marks[1].Score)

	cached := f.cachedMember(t, memberID)
	require.Len(t, cached.Marks, 2)
	assert.Equal(t, 10, cached.Marks[0].Score)
}

func TestUpdateMember_CacheWriteWinsOverNewerStamp(t *testing.T) {
	f := newFixture(t, true)

	// Параллельная ревалидация уже продвинула штамп секции вперед
	c := f.svc.(*coordinator)
	c.applyStamp(models.SectionJunior, time.Now().Add(time.Minute))

	local := testMember(memberID, "Иванов Пётр Сергеевич", models.SectionJunior)
	require.NoError(t, f.svc.UpdateMember(context.Background(), local, UpdateOptions{}))

	// Подтвержденная сервером мутация попадает в кэш несмотря на штамп
	cached := f.cachedMember(t, memberID)
	assert.Equal(t, "Иванов Пётр Сергеевич", cached.Name)
}

func TestUpdateMember_AuditWithSnapshot(t *testing.T) {
	f := newFixture(t, true)

	remote := testMember(memberID, "Иванов Петр", models.SectionJunior,
		models.Mark{Date: "2025-01-01", Score: 5},
	)
	f.gw.FetchOneFunc = func(ctx context.Context, collection, id string, section models.Section) (*api.Record, error) {
		rec := memberAPIRecord(t, remote)
		return &rec, nil
	}

	local := testMember(memberID, "Иванов П.", models.SectionJunior)
	require.NoError(t, f.svc.UpdateMember(context.Background(), local, UpdateOptions{Actor: actorID, Audit: true}))

	calls := f.gw.AppendAuditEntryCalls()
	require.Len(t, calls, 1)

	entry := &models.AuditEntry{}
	require.NoError(t, json.Unmarshal(calls[0].Entry, entry))
	assert.Equal(t, models.AuditActionUpdate, entry.Action)
	assert.Equal(t, actorID, entry.Actor)
	// Snapshot хранит состояние до правки
	require.NotNil(t, entry.Snapshot)
	assert.Equal(t, "Иванов Петр", entry.Snapshot.Name)
}

func TestUpdateMember_NoSnapshotSkipsAudit(t *testing.T) {
	f := newFixture(t, true)
	f.gw.FetchOneFunc = func(ctx context.Context, collection, id string, section models.Section) (*api.Record, error) {
		return nil, errBoom
	}

	local := testMember(memberID, "Иванов Петр", models.SectionJunior,
		models.Mark{Date: "2025-01-08", Score: 7},
	)
	require.NoError(t, f.svc.UpdateMember(context.Background(), local, UpdateOptions{Actor: actorID, Audit: true}))

	// Правка прошла, но без снимка до правки audit запись не пишется
	assert.Len(t, f.gw.UpdateRecordFieldsCalls(), 1)
	assert.Len(t, f.gw.MergeMarksCalls(), 1)
	assert.Empty(t, f.gw.AppendAuditEntryCalls())
}

func TestUpdateMember_OfflineDefersMerge(t *testing.T) {
	f := newFixture(t, false)

	local := testMember(memberID, "Иванов Петр", models.SectionCompany,
		models.Mark{Date: "2025-01-08", Score: 7, Behaviour: intPtr(2)},
	)
	require.NoError(t, f.svc.UpdateMember(context.Background(), local, UpdateOptions{}))

	// Remote не трогали, в очереди сырое намерение
	assert.Empty(t, f.gw.FetchOneCalls())
	assert.Empty(t, f.gw.UpdateRecordFieldsCalls())

	writes, err := f.queue.Drain(context.Background())
	require.NoError(t, err)
	require.Len(t, writes, 1)
	assert.Equal(t, models.OpUpdateMember, writes[0].Op)

	queued := &models.Member{}
	require.NoError(t, json.Unmarshal(writes[0].Payload, queued))
	require.Len(t, queued.Marks, 1)
	assert.Equal(t, 7, queued.Marks[0].Score)
}

func TestDeleteMember_Online(t *testing.T) {
	f := newFixture(t, true)
	require.NoError(t, f.svc.CreateMember(context.Background(), testMember(memberID, "Иванов Петр", models.SectionCompany)))

	require.NoError(t, f.svc.DeleteMember(context.Background(), memberID, models.SectionCompany))

	require.Len(t, f.gw.DeleteRecordCalls(), 1)
	_, err := f.records.Get(context.Background(), storage.CollectionMembers, memberID)
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)
}

func TestDeleteMember_Offline(t *testing.T) {
	f := newFixture(t, false)
	require.NoError(t, f.svc.CreateMember(context.Background(), testMember(memberID, "Иванов Петр", models.SectionCompany)))

	require.NoError(t, f.svc.DeleteMember(context.Background(), memberID, models.SectionCompany))

	assert.Empty(t, f.gw.DeleteRecordCalls())
	assert.Equal(t, 2, f.pendingCount(t))

	members, err := f.svc.FetchMembers(context.Background(), models.SectionCompany)
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestRecreateMember_OnlineUpserts(t *testing.T) {
	f := newFixture(t, true)
	member := testMember(memberID, "Иванов Петр", models.SectionCompany)

	require.NoError(t, f.svc.RecreateMember(context.Background(), member))

	calls := f.gw.UpsertRecordCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, api.CollectionMembers, calls[0].Collection)
	assert.Equal(t, memberID, f.cachedMember(t, memberID).ID)
}

func TestSetUserRole(t *testing.T) {
	f := newFixture(t, true)
	role := &models.UserRole{UserID: actorID, Role: models.RoleLeader}

	require.NoError(t, f.svc.SetUserRole(context.Background(), role))

	calls := f.gw.UpsertRecordCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, api.CollectionRoles, calls[0].Collection)

	data, err := f.records.Get(context.Background(), storage.CollectionRoles, actorID)
	require.NoError(t, err)
	cached := &models.UserRole{}
	require.NoError(t, json.Unmarshal(data, cached))
	assert.Equal(t, models.RoleLeader, cached.Role)
}

func TestDeleteUserRole_Offline(t *testing.T) {
	f := newFixture(t, false)

	require.NoError(t, f.svc.DeleteUserRole(context.Background(), actorID))

	writes, err := f.queue.Drain(context.Background())
	require.NoError(t, err)
	require.Len(t, writes, 1)
	assert.Equal(t, models.OpDeleteUserRole, writes[0].Op)
	assert.Equal(t, actorID, writes[0].RecordID)
}

func intPtr(v int) *int {
	return &v
}
