package services

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/career-pathfinder/internal/models"
)

func testFallbackRoadmaps() models.RoadmapPaths {
	return FallbackRoadmaps("Cloud Engineer", models.NewStudentProfile("data science, design", "", "College"))
}

func decodeAny(t *testing.T, raw string) any {
	t.Helper()

	var v any
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v
}

func assertComplete(t *testing.T, paths models.RoadmapPaths) {
	t.Helper()

	require.Len(t, paths, len(models.PathKinds))
	for _, kind := range models.PathKinds {
		path, ok := paths[kind]
		require.True(t, ok, "missing %s", kind)
		assert.NotEmpty(t, path.ShortTerm, "%s short_term", kind)
		assert.NotEmpty(t, path.MidTerm, "%s mid_term", kind)
		assert.NotEmpty(t, path.LongTerm, "%s long_term", kind)
		assert.NotEmpty(t, path.Badge, "%s badge", kind)
		assert.GreaterOrEqual(t, path.Progress, 0)
		assert.LessOrEqual(t, path.Progress, 100)
	}
}

var repairInputs = []string{
	`null`,
	`[]`,
	`"just text"`,
	`{}`,
	`{"dream_path": {"progress": 10}}`,
	`{"dream_path": "not an object", "skill_path": 3}`,
	`{"dream_path": {"short_term": "Learn SQL", "mid_term": 7, "long_term": [], "progress": "75%", "badge": ""}}`,
	`{"skill_path": {"short_term": ["a", 2, true, null, {"x":1}, "  "], "progress": 250.6, "badge": "Go 🚀"}}`,
	`{"hybrid_path": {"shortTerm": ["camel"], "midTerm": "camel mid", "longTerm": ["camel long"], "progress": -5, "badge": 9}}`,
	`{"dream_path": {"short_term": ["s"], "mid_term": ["m"], "long_term": ["l"], "progress": 33, "badge": "b"},
	  "skill_path": {"short_term": ["s"], "mid_term": ["m"], "long_term": ["l"], "progress": 66, "badge": "b"},
	  "hybrid_path": {"short_term": ["s"], "mid_term": ["m"], "long_term": ["l"], "progress": 99, "badge": "b"},
	  "extra_path": {}}`,
}

func TestRepairRoadmaps_AlwaysComplete(t *testing.T) {
	fallback := testFallbackRoadmaps()

	for _, raw := range repairInputs {
		t.Run(raw, func(t *testing.T) {
			assertComplete(t, RepairRoadmaps(decodeAny(t, raw), fallback))
		})
	}
}

func TestRepairRoadmaps_Idempotent(t *testing.T) {
	fallback := testFallbackRoadmaps()

	for _, raw := range repairInputs {
		once := RepairRoadmaps(decodeAny(t, raw), fallback)
		twice := RepairRoadmaps(once, fallback)

		if diff := cmp.Diff(once, twice); diff != "" {
			t.Errorf("repair of %s not idempotent (-once +twice):\n%s", raw, diff)
		}
	}
}

func TestRepairRoadmaps_IdempotentAfterEncoding(t *testing.T) {
	fallback := testFallbackRoadmaps()

	for _, raw := range repairInputs {
		once := RepairRoadmaps(decodeAny(t, raw), fallback)

		encoded, err := json.Marshal(once)
		require.NoError(t, err)
		twice := RepairRoadmaps(decodeAny(t, string(encoded)), fallback)

		if diff := cmp.Diff(once, twice); diff != "" {
			t.Errorf("repair of encoded %s not idempotent (-once +twice):\n%s", raw, diff)
		}
	}
}

func TestRepairRoadmaps_TypedInput(t *testing.T) {
	fallback := testFallbackRoadmaps()
	dream := models.RoadmapPath{ShortTerm: []string{" s "}, MidTerm: []string{"m"}, LongTerm: []string{"l"}, Progress: 10, Badge: "b"}
	skill := models.RoadmapPath{ShortTerm: []string{""}, Progress: 140}

	tests := []struct {
		name string
		raw  any
	}{
		{"RoadmapPaths", models.RoadmapPaths{models.DreamPath: dream, models.SkillPath: skill}},
		{"map keyed by PathKind", map[models.PathKind]models.RoadmapPath{models.DreamPath: dream, models.SkillPath: skill}},
		{"map keyed by string", map[string]models.RoadmapPath{"dream_path": dream, "skill_path": skill}},
		{"generic map of typed paths", map[string]any{"dream_path": dream, "skill_path": &skill}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RepairRoadmaps(tt.raw, fallback)
			assertComplete(t, got)

			assert.Equal(t, models.RoadmapPath{ShortTerm: []string{"s"}, MidTerm: []string{"m"}, LongTerm: []string{"l"}, Progress: 10, Badge: "b"}, got[models.DreamPath])

			fb := fallback[models.SkillPath]
			assert.Equal(t, fb.ShortTerm, got[models.SkillPath].ShortTerm)
			assert.Equal(t, fb.Badge, got[models.SkillPath].Badge)
			assert.Equal(t, 100, got[models.SkillPath].Progress)

			assert.Equal(t, fallback[models.HybridPath], got[models.HybridPath])
		})
	}
}

func TestRepairRoadmaps_FieldRules(t *testing.T) {
	fallback := testFallbackRoadmaps()

	got := RepairRoadmaps(decodeAny(t, repairInputs[6]), fallback)
	dream := got[models.DreamPath]
	assert.Equal(t, []string{"Learn SQL"}, dream.ShortTerm)
	assert.Equal(t, fallback[models.DreamPath].MidTerm, dream.MidTerm)
	assert.Equal(t, fallback[models.DreamPath].LongTerm, dream.LongTerm)
	assert.Equal(t, 75, dream.Progress)
	assert.Equal(t, fallback[models.DreamPath].Badge, dream.Badge)

	got = RepairRoadmaps(decodeAny(t, repairInputs[7]), fallback)
	skill := got[models.SkillPath]
	assert.Equal(t, []string{"a", "2", "true"}, skill.ShortTerm)
	assert.Equal(t, 100, skill.Progress)
	assert.Equal(t, "Go 🚀", skill.Badge)

	got = RepairRoadmaps(decodeAny(t, repairInputs[8]), fallback)
	hybrid := got[models.HybridPath]
	assert.Equal(t, []string{"camel"}, hybrid.ShortTerm)
	assert.Equal(t, []string{"camel mid"}, hybrid.MidTerm)
	assert.Equal(t, []string{"camel long"}, hybrid.LongTerm)
	assert.Equal(t, 0, hybrid.Progress)
	assert.Equal(t, fallback[models.HybridPath].Badge, hybrid.Badge)
}

func TestRepairRoadmaps_KeepsCompleteInput(t *testing.T) {
	got := RepairRoadmaps(decodeAny(t, repairInputs[9]), testFallbackRoadmaps())

	want := models.RoadmapPaths{
		models.DreamPath:  {ShortTerm: []string{"s"}, MidTerm: []string{"m"}, LongTerm: []string{"l"}, Progress: 33, Badge: "b"},
		models.SkillPath:  {ShortTerm: []string{"s"}, MidTerm: []string{"m"}, LongTerm: []string{"l"}, Progress: 66, Badge: "b"},
		models.HybridPath: {ShortTerm: []string{"s"}, MidTerm: []string{"m"}, LongTerm: []string{"l"}, Progress: 99, Badge: "b"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestRepairRoadmaps_DoesNotAliasFallback(t *testing.T) {
	fallback := testFallbackRoadmaps()
	original := fallback[models.DreamPath].ShortTerm[0]

	got := RepairRoadmaps(nil, fallback)
	got[models.DreamPath].ShortTerm[0] = "mutated"

	assert.Equal(t, original, fallback[models.DreamPath].ShortTerm[0])
}
