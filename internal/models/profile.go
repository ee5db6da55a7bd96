package models

import "strings"

const DefaultEducationLevel = "College"

type StudentProfile struct {
	Interests      string `json:"interests"`
	Skills         string `json:"skills"`
	EducationLevel string `json:"education"`
}

func NewStudentProfile(interests, skills, education string) StudentProfile {
	education = strings.TrimSpace(education)
	if education == "" {
		education = DefaultEducationLevel
	}

	return StudentProfile{
		Interests:      strings.TrimSpace(interests),
		Skills:         strings.TrimSpace(skills),
		EducationLevel: education,
	}
}

// FirstInterest returns the first entry of a comma or semicolon separated
// interest list, or "" when none was given.
func (p StudentProfile) FirstInterest() string {
	parts := strings.FieldsFunc(p.Interests, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n'
	})
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			return part
		}
	}
	return ""
}
