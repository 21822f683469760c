package validation

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/iudanet/rollbook/internal/models"
)

// DateFormat - единственный принимаемый формат даты отметки
const DateFormat = time.DateOnly // YYYY-MM-DD

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// markdate: строгая проверка формата YYYY-MM-DD
	_ = v.RegisterValidation("markdate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(DateFormat, fl.Field().String())
		return err == nil
	})

	return v
}

// memberRules зеркалирует models.Member с проверочными тегами.
// Отдельная структура, чтобы не навешивать validate-теги на доменную модель.
type memberRules struct {
	ID      string `validate:"required,uuid4"`
	Name    string `validate:"required,min=1,max=128"`
	Squad   int    `validate:"min=0,max=99"`
	Year    string `validate:"max=32"`
	Section string `validate:"required,oneof=company junior"`
}

// ValidateMember проверяет участника и все его отметки.
// Возвращает описательную ошибку; при ошибке ни кэш, ни очередь
// не должны быть тронуты вызывающим кодом.
func ValidateMember(m *models.Member) error {
	if m == nil {
		return fmt.Errorf("member is nil")
	}

	rules := memberRules{
		ID:      m.ID,
		Name:    m.Name,
		Squad:   m.Squad,
		Year:    m.Year,
		Section: string(m.Section),
	}
	if err := validate.Struct(rules); err != nil {
		return fmt.Errorf("invalid member: %w", err)
	}

	seen := make(map[string]struct{}, len(m.Marks))
	for i := range m.Marks {
		if err := ValidateMark(m.Section, m.Marks[i]); err != nil {
			return err
		}
		if _, dup := seen[m.Marks[i].Date]; dup {
			return fmt.Errorf("duplicate mark for date %s", m.Marks[i].Date)
		}
		seen[m.Marks[i].Date] = struct{}{}
	}

	return nil
}

// ValidateMark проверяет одну отметку по правилам секции.
// Для company отметка несет пару (оценка за форму, оценка за поведение);
// для junior - одиночную оценку. ScoreAbsent допустим только в Score.
func ValidateMark(section models.Section, mark models.Mark) error {
	if _, err := time.Parse(DateFormat, mark.Date); err != nil {
		return fmt.Errorf("invalid mark date %q: expected %s", mark.Date, DateFormat)
	}

	if err := validateScore(mark.Score, true); err != nil {
		return fmt.Errorf("mark %s: %w", mark.Date, err)
	}

	switch section {
	case models.SectionCompany:
		// Оценка за поведение обязательна, если участник присутствовал
		if mark.Absent() {
			if mark.Behaviour != nil {
				return fmt.Errorf("mark %s: absent mark cannot carry a behaviour score", mark.Date)
			}
			return nil
		}
		if mark.Behaviour == nil {
			return fmt.Errorf("mark %s: company mark requires a behaviour score", mark.Date)
		}
		if err := validateScore(*mark.Behaviour, false); err != nil {
			return fmt.Errorf("mark %s: behaviour: %w", mark.Date, err)
		}
	case models.SectionJunior:
		if mark.Behaviour != nil {
			return fmt.Errorf("mark %s: junior mark cannot carry a behaviour score", mark.Date)
		}
	default:
		return fmt.Errorf("unknown section %q", section)
	}

	return nil
}

func validateScore(score int, allowAbsent bool) error {
	if score == models.ScoreAbsent {
		if allowAbsent {
			return nil
		}
		return fmt.Errorf("absent sentinel is not allowed here")
	}
	if score < models.ScoreMin || score > models.ScoreMax {
		return fmt.Errorf("score %d out of range [%d..%d]", score, models.ScoreMin, models.ScoreMax)
	}
	return nil
}

// ValidateAuditEntry проверяет запись журнала перед отправкой
func ValidateAuditEntry(entry *models.AuditEntry) error {
	if entry == nil {
		return fmt.Errorf("audit entry is nil")
	}
	if entry.ID == "" {
		return fmt.Errorf("audit entry id is required")
	}
	switch entry.Action {
	case models.AuditActionCreate, models.AuditActionUpdate,
		models.AuditActionDelete, models.AuditActionRecreate:
	default:
		return fmt.Errorf("unknown audit action %q", entry.Action)
	}
	if !entry.Section.Valid() {
		return fmt.Errorf("unknown section %q", entry.Section)
	}
	return nil
}

// ValidateUserRole проверяет запись роли перед отправкой
func ValidateUserRole(role *models.UserRole) error {
	if role == nil {
		return fmt.Errorf("user role is nil")
	}
	if role.UserID == "" {
		return fmt.Errorf("user id is required")
	}
	switch role.Role {
	case models.RoleAdmin, models.RoleLeader, models.RoleViewer:
	default:
		return fmt.Errorf("unknown role %q", role.Role)
	}
	return nil
}
