package models

type CareerSuggestion struct {
	Name        string `json:"name"`
	Demand      string `json:"demand,omitempty"`
	MatchReason string `json:"match_reason,omitempty"`
	Desc        string `json:"desc,omitempty"`
}

type PathKind string

const (
	DreamPath  PathKind = "dream_path"
	SkillPath  PathKind = "skill_path"
	HybridPath PathKind = "hybrid_path"
)

// PathKinds lists every path a roadmap must carry, in display order.
var PathKinds = []PathKind{DreamPath, SkillPath, HybridPath}

type RoadmapPath struct {
	ShortTerm []string `json:"short_term"`
	MidTerm   []string `json:"mid_term"`
	LongTerm  []string `json:"long_term"`
	Progress  int      `json:"progress"`
	Badge     string   `json:"badge"`
}

type RoadmapPaths map[PathKind]RoadmapPath

// RoadmapSet is keyed by career name.
type RoadmapSet map[string]RoadmapPaths
