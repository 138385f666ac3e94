package models

import "strings"

// Course represents one academic offering in the catalog.
type Course struct {
	ID          int64  `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Credits     int    `json:"credits"`
	Hours       int    `json:"hours"`
	Filiere     string `json:"filiere"`             // academic program, e.g. INFO
	Niveau      string `json:"niveau"`              // level, e.g. L2
	TeacherID   *int64 `json:"teacherId,omitempty"` // not checked against any registry
	Room        string `json:"room"`                // informational only, unrelated to schedule rooms
}

// Clone returns a copy that shares no memory with c.
func (c Course) Clone() Course {
	if c.TeacherID != nil {
		id := *c.TeacherID
		c.TeacherID = &id
	}
	return c
}

// CourseFilter narrows a course listing. Empty fields are ignored.
type CourseFilter struct {
	Filiere string
	Niveau  string
	Code    string
	Name    string
}

// IsEmpty reports whether no filter field is set
func (f CourseFilter) IsEmpty() bool {
	return f.Filiere == "" && f.Niveau == "" && f.Code == "" && f.Name == ""
}

// Matches reports whether c satisfies every non-empty filter field.
// Filiere and niveau compare case-insensitively; code and name match by
// case-insensitive substring. An empty course field fails any filter set on it.
func (f CourseFilter) Matches(c Course) bool {
	if f.Filiere != "" && (c.Filiere == "" || !strings.EqualFold(c.Filiere, f.Filiere)) {
		return false
	}
	if f.Niveau != "" && (c.Niveau == "" || !strings.EqualFold(c.Niveau, f.Niveau)) {
		return false
	}
	if f.Code != "" && (c.Code == "" || !containsFold(c.Code, f.Code)) {
		return false
	}
	if f.Name != "" && (c.Name == "" || !containsFold(c.Name, f.Name)) {
		return false
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
