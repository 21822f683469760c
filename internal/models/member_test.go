package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestMergeMarks_LocalWinsOnCollision(t *testing.T) {
	local := []Mark{
		{Date: "2025-01-08", Score: 7},
	}
	remote := []Mark{
		{Date: "2025-01-01", Score: 9},
	}

	merged := MergeMarks(local, remote)

	// Remote-only дата сохраняется, local дата остается как есть
	require.Len(t, merged, 2)
	assert.Equal(t, Mark{Date: "2025-01-08", Score: 7}, merged[0])
	assert.Equal(t, Mark{Date: "2025-01-01", Score: 9}, merged[1])
}

func TestMergeMarks_CollisionTakesLocalValue(t *testing.T) {
	local := []Mark{
		{Date: "2025-01-01", Score: 5},
	}
	remote := []Mark{
		{Date: "2025-01-01", Score: 9},
	}

	merged := MergeMarks(local, remote)

	require.Len(t, merged, 1)
	assert.Equal(t, 5, merged[0].Score)
}

func TestMergeMarks_Idempotent(t *testing.T) {
	marks := []Mark{
		{Date: "2025-03-10", Score: 8, Behaviour: intPtr(9)},
		{Date: "2025-03-03", Score: ScoreAbsent},
	}

	merged := MergeMarks(marks, marks)

	assert.Equal(t, marks, merged)
}

func TestMergeMarks_EmptyRemote(t *testing.T) {
	marks := []Mark{
		{Date: "2025-02-17", Score: 6},
		{Date: "2025-02-10", Score: 4},
	}

	assert.Equal(t, marks, MergeMarks(marks, nil))
}

func TestMergeMarks_EmptyLocal(t *testing.T) {
	remote := []Mark{
		{Date: "2025-02-10", Score: 4},
		{Date: "2025-02-17", Score: 6},
	}

	merged := MergeMarks(nil, remote)

	require.Len(t, merged, 2)
	// Результат отсортирован по убыванию даты
	assert.Equal(t, "2025-02-17", merged[0].Date)
	assert.Equal(t, "2025-02-10", merged[1].Date)
}

func TestMergeMarks_SortedDescending(t *testing.T) {
	local := []Mark{
		{Date: "2025-01-06", Score: 3},
		{Date: "2025-04-07", Score: 5},
	}
	remote := []Mark{
		{Date: "2025-02-03", Score: 7},
		{Date: "2024-12-16", Score: 2},
	}

	merged := MergeMarks(local, remote)

	require.Len(t, merged, 4)
	for i := 1; i < len(merged); i++ {
		assert.True(t, merged[i-1].Date > merged[i].Date,
			"marks must be sorted descending by date: %s before %s", merged[i-1].Date, merged[i].Date)
	}
}

func TestMergeMarks_NoOtherDates(t *testing.T) {
	local := []Mark{{Date: "2025-01-01", Score: 1}}
	remote := []Mark{
		{Date: "2025-01-01", Score: 2},
		{Date: "2025-01-08", Score: 3},
	}

	merged := MergeMarks(local, remote)

	dates := make(map[string]int)
	for _, m := range merged {
		dates[m.Date]++
	}
	// Не более одной отметки на дату и никаких лишних дат
	assert.Equal(t, map[string]int{"2025-01-01": 1, "2025-01-08": 1}, dates)
}

func TestMergeMarks_DoesNotMutateArguments(t *testing.T) {
	local := []Mark{{Date: "2025-01-08", Score: 7}}
	remote := []Mark{{Date: "2025-01-15", Score: 2}}

	_ = MergeMarks(local, remote)

	assert.Equal(t, []Mark{{Date: "2025-01-08", Score: 7}}, local)
	assert.Equal(t, []Mark{{Date: "2025-01-15", Score: 2}}, remote)
}

func TestMemberClone(t *testing.T) {
	member := &Member{
		ID:      "m-1",
		Name:    "Anna",
		Squad:   2,
		Section: SectionCompany,
		Marks:   []Mark{{Date: "2025-01-01", Score: 5}},
	}

	clone := member.Clone()
	clone.Marks[0].Score = 9
	clone.Name = "Berta"

	// Оригинал не тронут
	assert.Equal(t, "Anna", member.Name)
	assert.Equal(t, 5, member.Marks[0].Score)
}

func TestMarkAbsent(t *testing.T) {
	assert.True(t, Mark{Date: "2025-01-01", Score: ScoreAbsent}.Absent())
	assert.False(t, Mark{Date: "2025-01-01", Score: 0}.Absent())
}

func TestSectionValid(t *testing.T) {
	assert.True(t, SectionCompany.Valid())
	assert.True(t, SectionJunior.Valid())
	assert.False(t, Section("senior").Valid())
}

func TestOpValid(t *testing.T) {
	for _, op := range []Op{
		OpCreateMember, OpUpdateMember, OpDeleteMember, OpRecreateMember,
		OpAppendAudit, OpUpdateUserRole, OpDeleteUserRole,
	} {
		assert.True(t, op.Valid(), string(op))
	}
	assert.False(t, Op("truncate_everything").Valid())
}
