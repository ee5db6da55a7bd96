package services

import (
	"fmt"

	"alfredoptarigan/career-pathfinder/internal/models"
)

const (
	noSkillsPlaceholder = "None provided"
	beginnerPlaceholder = "Beginner"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildCareerSuggestionPrompt creates prompt for career suggestions
func (pb *PromptBuilder) BuildCareerSuggestionPrompt(profile models.StudentProfile) string {
	skills := profile.Skills
	if skills == "" {
		skills = noSkillsPlaceholder
	}

	return fmt.Sprintf(`You are a helpful career advisor for Indian students.

STUDENT PROFILE:
- Interests: %s
- Skills: %s
- Education Level: %s

Your task is to suggest exactly 3 suitable career paths in India for this student.

For EACH career, return:
- name: short job title
- demand: one of High, Medium or Emerging
- match_reason: one sentence on why it fits the student's interests and skills
- desc: one concise sentence in simple language

Return ONLY a valid JSON array in the following format:
[
  {"name": "Data Analyst", "demand": "High", "match_reason": "...", "desc": "..."}
]

Do not wrap the JSON in markdown code fences and do not add any text before or after it.`,
		profile.Interests, skills, profile.EducationLevel)
}

// BuildRoadmapPrompt creates prompt for the three roadmap paths of one career
func (pb *PromptBuilder) BuildRoadmapPrompt(career string, profile models.StudentProfile) string {
	skills := profile.Skills
	if skills == "" {
		skills = beginnerPlaceholder
	}

	return fmt.Sprintf(`You are a practical career coach creating roadmaps for an Indian student who wants to become a %s.

STUDENT PROFILE:
- Interests: %s
- Skills: %s
- Education Level: %s

Create three alternative roadmaps:
1. dream_path - driven mostly by the student's interests
2. skill_path - driven mostly by the student's current skills
3. hybrid_path - a balance of interests and skills

Each roadmap must contain:
- short_term: 2-4 concrete steps for the next 0-6 months (skills, courses to start)
- mid_term: 2-4 steps for 6-18 months (projects, certifications, internships)
- long_term: 2-4 steps for 2-3 years (job roles and next growth steps)
- progress: estimated readiness percentage for this student, an integer from 0 to 100
- badge: a short motivational badge with one emoji

Return ONLY a single JSON object in the following format:
{
  "dream_path": {
    "short_term": ["..."],
    "mid_term": ["..."],
    "long_term": ["..."],
    "progress": 40,
    "badge": "Dream Chaser 🌟"
  },
  "skill_path": { ... same fields ... },
  "hybrid_path": { ... same fields ... }
}

Do not wrap the JSON in markdown code fences and do not add any text before or after it.`,
		career, profile.Interests, skills, profile.EducationLevel)
}
