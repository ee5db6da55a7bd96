package services

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"alfredoptarigan/career-pathfinder/internal/models"
)

var staticSuggestions = []models.CareerSuggestion{
	{Name: "Data Analyst", Demand: "High", Desc: "Analyze data to find insights and support decisions."},
	{Name: "Cloud Engineer", Demand: "Medium", Desc: "Build and manage apps and infrastructure on cloud."},
	{Name: "UX Designer", Demand: "Emerging", Desc: "Design simple, user-friendly app and website experiences."},
}

// FallbackSuggestions leads with a career named after the first interest,
// followed by the static list.
func FallbackSuggestions(profile models.StudentProfile) []models.CareerSuggestion {
	suggestions := make([]models.CareerSuggestion, 0, len(staticSuggestions)+1)

	if interest := profile.FirstInterest(); interest != "" {
		// Casers keep state, so one per call.
		title := cases.Title(language.English).String(interest)
		suggestions = append(suggestions, models.CareerSuggestion{
			Name:        title + " Specialist",
			Demand:      "Emerging",
			MatchReason: fmt.Sprintf("Builds directly on your interest in %s.", interest),
			Desc:        fmt.Sprintf("Turn %s into a career through focused projects and courses.", interest),
		})
	}

	return append(suggestions, staticSuggestions...)
}

func FallbackRoadmaps(career string, profile models.StudentProfile) models.RoadmapPaths {
	focus := profile.FirstInterest()
	if focus == "" {
		focus = career
	}

	skills := profile.Skills
	if skills == "" {
		skills = "your current skills"
	}

	return models.RoadmapPaths{
		models.DreamPath: {
			ShortTerm: []string{
				fmt.Sprintf("Explore what a %s does day to day through videos and interviews.", career),
				fmt.Sprintf("Start a free beginner course connected to %s.", focus),
			},
			MidTerm: []string{
				fmt.Sprintf("Build two small projects that show your interest in %s.", focus),
				fmt.Sprintf("Join a community or club where %s professionals share work.", career),
			},
			LongTerm: []string{
				fmt.Sprintf("Apply for internships and entry-level %s roles.", career),
				"Keep growing a portfolio of real-world projects.",
			},
			Progress: 40,
			Badge:    "Dream Chaser 🌟",
		},
		models.SkillPath: {
			ShortTerm: []string{
				fmt.Sprintf("List how %s apply to %s work.", skills, career),
				"Learn Python and SQL basics; practice with small datasets.",
			},
			MidTerm: []string{
				"Build 2 projects, take one certification, start applying for internships.",
				fmt.Sprintf("Add one core %s tool to your toolkit each quarter.", career),
			},
			LongTerm: []string{
				"Land an entry-level role; keep improving with real-world projects.",
				"Mentor juniors to deepen your own expertise.",
			},
			Progress: 55,
			Badge:    "Skill Builder 🛠️",
		},
		models.HybridPath: {
			ShortTerm: []string{
				fmt.Sprintf("Pick one project that mixes %s with %s.", focus, skills),
				fmt.Sprintf("Follow a structured %s learning path for 30 minutes a day.", career),
			},
			MidTerm: []string{
				"Finish the project and publish it with a short write-up.",
				"Take one certification and apply for internships.",
			},
			LongTerm: []string{
				fmt.Sprintf("Move into a %s role that uses both your interests and skills.", career),
				"Specialize in the area you enjoyed most.",
			},
			Progress: 50,
			Badge:    "Momentum Unlocked 🚀",
		},
	}
}
