package roster

import "strings"

type (
	Student struct {
		ID      int    `json:"id"`
		ClassID int    `json:"class_id"` // 0 when not placed in a class
		Number  string `json:"number"`   // NISN
		Name    string `json:"name"`
		Gender  string `json:"gender"`
		Address string `json:"address"`
		Phone   string `json:"phone"`
	}

	Class struct {
		ID    int    `json:"id"`
		Name  string `json:"name"`
		Major string `json:"major"`
	}

	// QueryFilter applies AND operation on its set fields.
	// Search does a case-insensitive match on Student.Name, or a match on Student.Number.
	QueryFilter struct {
		ClassID int
		Search  string
	}

	Roster struct {
		Students []Student `json:"students"`
		Classes  []Class   `json:"classes"`
	}
)

func (f QueryFilter) match(st Student) bool {
	if f.ClassID > 0 && st.ClassID != f.ClassID {
		return false
	}
	search := strings.TrimSpace(f.Search)
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(st.Name), strings.ToLower(search)) || strings.Contains(st.Number, search)
}

// ClassName returns the name of the class `id`, or "" if unknown.
func (r Roster) ClassName(id int) string {
	for _, c := range r.Classes {
		if c.ID == id {
			return c.Name
		}
	}
	return ""
}
