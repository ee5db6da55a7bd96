package models

type SuggestRequest struct {
	Interests string `json:"interests" form:"interests" query:"interests"`
	Skills    string `json:"skills" form:"skills" query:"skills"`
	Education string `json:"education" form:"education" query:"education"`
}

func (r SuggestRequest) Profile() StudentProfile {
	return NewStudentProfile(r.Interests, r.Skills, r.Education)
}

type SuggestResponse struct {
	Profile StudentProfile     `json:"profile"`
	Careers []CareerSuggestion `json:"careers"`
}

type RoadmapResponse struct {
	Career  string         `json:"career"`
	Profile StudentProfile `json:"profile"`
	Roadmap RoadmapSet     `json:"roadmap"`
}
