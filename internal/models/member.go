package models

import "sort"

// Section представляет жёсткое разделение данных на две возрастные группы.
// Каждый запрос и каждая запись в кэше привязаны ровно к одной секции.
type Section string

const (
	SectionCompany Section = "company" // Основной состав
	SectionJunior  Section = "junior"  // Младшая группа
)

// Valid reports whether s is one of the known sections.
func (s Section) Valid() bool {
	return s == SectionCompany || s == SectionJunior
}

const (
	// ScoreAbsent - sentinel значение оценки, означающее отсутствие на занятии.
	// Это не ноль баллов: ноль - это присутствие с нулевой оценкой.
	ScoreAbsent = -1

	// ScoreMin и ScoreMax задают допустимый диапазон числовых оценок
	ScoreMin = 0
	ScoreMax = 10
)

// Mark представляет одну отметку участника за конкретный день.
// Mark - неизменяемый value object: правки заменяют отметку целиком,
// частичных изменений не бывает.
type Mark struct {
	// Date - календарный день в формате YYYY-MM-DD.
	// Для ISO дат лексикографический порядок совпадает с хронологическим.
	Date string `json:"date"`

	// Score - числовая оценка (для company - за форму), либо ScoreAbsent
	Score int `json:"score"`

	// Behaviour - оценка за поведение, только для секции company
	Behaviour *int `json:"behaviour,omitempty"`
}

// Absent reports whether the mark denotes absence rather than a score.
func (m Mark) Absent() bool {
	return m.Score == ScoreAbsent
}

// Member представляет участника с историей отметок.
// ID генерируется на клиенте (UUID), поэтому создание участника
// полностью работает в offline режиме.
type Member struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Squad       int     `json:"squad"`
	Year        string  `json:"year"`
	Section     Section `json:"section"`
	SquadLeader bool    `json:"squad_leader"`
	Marks       []Mark  `json:"marks"`
}

// Clone создает глубокую копию участника
func (m *Member) Clone() *Member {
	marks := make([]Mark, len(m.Marks))
	copy(marks, m.Marks)

	clone := *m
	clone.Marks = marks
	return &clone
}

// MergeMarks реконсилирует две коллекции отметок одного участника.
// Правила слияния:
//  1. Каждая дата из local входит в результат со значением из local -
//     явное намерение редактора авторитетно для всех дат, которые он тронул.
//  2. Даты, которые есть только в remote, сохраняются со значением из remote -
//     конкурентные правки других сессий не затираются.
//  3. Других дат в результате нет.
//
// Результат отсортирован по дате по убыванию. После слияния на одну дату
// приходится не более одной отметки.
//
// Функция чистая: аргументы не модифицируются.
func MergeMarks(local, remote []Mark) []Mark {
	merged := make([]Mark, 0, len(local)+len(remote))
	seen := make(map[string]struct{}, len(local))

	for _, mark := range local {
		if _, dup := seen[mark.Date]; dup {
			// Дубликат даты внутри local: первая запись выигрывает
			continue
		}
		seen[mark.Date] = struct{}{}
		merged = append(merged, mark)
	}

	for _, mark := range remote {
		if _, taken := seen[mark.Date]; taken {
			continue
		}
		seen[mark.Date] = struct{}{}
		merged = append(merged, mark)
	}

	SortMarks(merged)
	return merged
}

// SortMarks сортирует отметки по дате по убыванию (свежие первыми)
func SortMarks(marks []Mark) {
	sort.SliceStable(marks, func(i, j int) bool {
		return marks[i].Date > marks[j].Date
	})
}
