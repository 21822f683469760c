package validation

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/rollbook/internal/models"
)

func intPtr(v int) *int { return &v }

func validCompanyMember() *models.Member {
	return &models.Member{
		ID:      uuid.New().String(),
		Name:    "Anna Ozola",
		Squad:   3,
		Year:    "2010",
		Section: models.SectionCompany,
		Marks: []models.Mark{
			{Date: "2025-01-06", Score: 8, Behaviour: intPtr(9)},
			{Date: "2025-01-13", Score: models.ScoreAbsent},
		},
	}
}

func TestValidateMember_OK(t *testing.T) {
	require.NoError(t, ValidateMember(validCompanyMember()))
}

func TestValidateMember_Nil(t *testing.T) {
	assert.Error(t, ValidateMember(nil))
}

func TestValidateMember_MissingID(t *testing.T) {
	m := validCompanyMember()
	m.ID = ""
	assert.Error(t, ValidateMember(m))
}

func TestValidateMember_BadSection(t *testing.T) {
	m := validCompanyMember()
	m.Section = "seniors"
	assert.Error(t, ValidateMember(m))
}

func TestValidateMember_EmptyName(t *testing.T) {
	m := validCompanyMember()
	m.Name = ""
	assert.Error(t, ValidateMember(m))
}

func TestValidateMember_DuplicateMarkDate(t *testing.T) {
	m := validCompanyMember()
	m.Marks = append(m.Marks, models.Mark{Date: "2025-01-06", Score: 5, Behaviour: intPtr(5)})
	assert.Error(t, ValidateMember(m))
}

func TestValidateMark(t *testing.T) {
	tests := []struct {
		name    string
		section models.Section
		mark    models.Mark
		wantErr bool
	}{
		{
			name:    "junior ok",
			section: models.SectionJunior,
			mark:    models.Mark{Date: "2025-02-03", Score: 7},
		},
		{
			name:    "junior absent",
			section: models.SectionJunior,
			mark:    models.Mark{Date: "2025-02-03", Score: models.ScoreAbsent},
		},
		{
			name:    "company ok",
			section: models.SectionCompany,
			mark:    models.Mark{Date: "2025-02-03", Score: 10, Behaviour: intPtr(0)},
		},
		{
			name:    "company absent without behaviour",
			section: models.SectionCompany,
			mark:    models.Mark{Date: "2025-02-03", Score: models.ScoreAbsent},
		},
		{
			name:    "bad date format",
			section: models.SectionJunior,
			mark:    models.Mark{Date: "03.02.2025", Score: 7},
			wantErr: true,
		},
		{
			name:    "date not a calendar day",
			section: models.SectionJunior,
			mark:    models.Mark{Date: "2025-02-30", Score: 7},
			wantErr: true,
		},
		{
			name:    "score above range",
			section: models.SectionJunior,
			mark:    models.Mark{Date: "2025-02-03", Score: models.ScoreMax + 1},
			wantErr: true,
		},
		{
			name:    "score below range",
			section: models.SectionJunior,
			mark:    models.Mark{Date: "2025-02-03", Score: -2},
			wantErr: true,
		},
		{
			name:    "company without behaviour",
			section: models.SectionCompany,
			mark:    models.Mark{Date: "2025-02-03", Score: 5},
			wantErr: true,
		},
		{
			name:    "company absent with behaviour",
			section: models.SectionCompany,
			mark:    models.Mark{Date: "2025-02-03", Score: models.ScoreAbsent, Behaviour: intPtr(5)},
			wantErr: true,
		},
		{
			name:    "company behaviour out of range",
			section: models.SectionCompany,
			mark:    models.Mark{Date: "2025-02-03", Score: 5, Behaviour: intPtr(11)},
			wantErr: true,
		},
		{
			name:    "company behaviour absent sentinel",
			section: models.SectionCompany,
			mark:    models.Mark{Date: "2025-02-03", Score: 5, Behaviour: intPtr(models.ScoreAbsent)},
			wantErr: true,
		},
		{
			name:    "junior with behaviour",
			section: models.SectionJunior,
			mark:    models.Mark{Date: "2025-02-03", Score: 5, Behaviour: intPtr(5)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMark(tt.section, tt.mark)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateAuditEntry(t *testing.T) {
	entry := &models.AuditEntry{
		ID:        uuid.New().String(),
		Action:    models.AuditActionUpdate,
		MemberID:  uuid.New().String(),
		Section:   models.SectionJunior,
		CreatedAt: time.Now(),
	}
	require.NoError(t, ValidateAuditEntry(entry))

	entry.Action = "rewrite_history"
	assert.Error(t, ValidateAuditEntry(entry))

	assert.Error(t, ValidateAuditEntry(nil))
}

func TestValidateUserRole(t *testing.T) {
	role := &models.UserRole{UserID: "user-1", Role: models.RoleLeader}
	require.NoError(t, ValidateUserRole(role))

	role.Role = "owner"
	assert.Error(t, ValidateUserRole(role))

	assert.Error(t, ValidateUserRole(&models.UserRole{Role: models.RoleViewer}))
	assert.Error(t, ValidateUserRole(nil))
}
