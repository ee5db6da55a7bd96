package services

import (
	"math"
	"strconv"
	"strings"

	"alfredoptarigan/career-pathfinder/internal/models"
)

// RepairRoadmaps normalizes decoded model output into a complete RoadmapPaths,
// taking anything missing or mistyped from fallback. raw may be generic JSON
// (map[string]any) or already typed paths, so repairing its own result is a
// no-op.
func RepairRoadmaps(raw any, fallback models.RoadmapPaths) models.RoadmapPaths {
	repaired := make(models.RoadmapPaths, len(models.PathKinds))
	for _, kind := range models.PathKinds {
		fb := fallback[kind]

		pathObj, ok := pathObject(raw, kind)
		if !ok {
			repaired[kind] = clonePath(fb)
			continue
		}

		repaired[kind] = models.RoadmapPath{
			ShortTerm: repairSteps(lookup(pathObj, "short_term", "shortTerm"), fb.ShortTerm),
			MidTerm:   repairSteps(lookup(pathObj, "mid_term", "midTerm"), fb.MidTerm),
			LongTerm:  repairSteps(lookup(pathObj, "long_term", "longTerm"), fb.LongTerm),
			Progress:  repairProgress(lookup(pathObj, "progress"), fb.Progress),
			Badge:     repairBadge(lookup(pathObj, "badge"), fb.Badge),
		}
	}

	return repaired
}

// pathObject finds the path for kind in raw and exposes its fields by their
// JSON names.
func pathObject(raw any, kind models.PathKind) (map[string]any, bool) {
	switch paths := raw.(type) {
	case map[string]any:
		return pathFields(paths[string(kind)])
	case models.RoadmapPaths:
		path, ok := paths[kind]
		if !ok {
			return nil, false
		}
		return pathFields(path)
	case map[models.PathKind]models.RoadmapPath:
		path, ok := paths[kind]
		if !ok {
			return nil, false
		}
		return pathFields(path)
	case map[string]models.RoadmapPath:
		path, ok := paths[string(kind)]
		if !ok {
			return nil, false
		}
		return pathFields(path)
	}
	return nil, false
}

func pathFields(value any) (map[string]any, bool) {
	switch p := value.(type) {
	case map[string]any:
		return p, true
	case *models.RoadmapPath:
		if p == nil {
			return nil, false
		}
		return pathFields(*p)
	case models.RoadmapPath:
		return map[string]any{
			"short_term": p.ShortTerm,
			"mid_term":   p.MidTerm,
			"long_term":  p.LongTerm,
			"progress":   p.Progress,
			"badge":      p.Badge,
		}, true
	}
	return nil, false
}

func lookup(obj map[string]any, keys ...string) any {
	for _, key := range keys {
		if v, ok := obj[key]; ok {
			return v
		}
	}
	return nil
}

func repairSteps(value any, fallback []string) []string {
	var steps []string

	switch v := value.(type) {
	case string:
		if s := strings.TrimSpace(v); s != "" {
			steps = []string{s}
		}
	case []any:
		for _, item := range v {
			if s := stepText(item); s != "" {
				steps = append(steps, s)
			}
		}
	case []string:
		for _, item := range v {
			if s := strings.TrimSpace(item); s != "" {
				steps = append(steps, s)
			}
		}
	}

	if len(steps) == 0 {
		return cloneSteps(fallback)
	}
	return steps
}

func stepText(item any) string {
	switch v := item.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

func repairProgress(value any, fallback int) int {
	switch v := value.(type) {
	case float64:
		return clampProgress(v)
	case int:
		return clampProgress(float64(v))
	case string:
		s := strings.TrimSuffix(strings.TrimSpace(v), "%")
		if n, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return clampProgress(n)
		}
	}
	return fallback
}

func clampProgress(n float64) int {
	if math.IsNaN(n) {
		return 0
	}
	return int(math.Max(0, math.Min(100, math.Round(n))))
}

func repairBadge(value any, fallback string) string {
	if s, ok := value.(string); ok {
		if s = strings.TrimSpace(s); s != "" {
			return s
		}
	}
	return fallback
}

func clonePath(p models.RoadmapPath) models.RoadmapPath {
	return models.RoadmapPath{
		ShortTerm: cloneSteps(p.ShortTerm),
		MidTerm:   cloneSteps(p.MidTerm),
		LongTerm:  cloneSteps(p.LongTerm),
		Progress:  p.Progress,
		Badge:     p.Badge,
	}
}

func cloneSteps(steps []string) []string {
	if steps == nil {
		return nil
	}
	return append([]string(nil), steps...)
}
