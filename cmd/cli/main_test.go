package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/career-pathfinder/internal/config"
	"alfredoptarigan/career-pathfinder/internal/models"
	"alfredoptarigan/career-pathfinder/internal/services"
)

type stubCareerService struct {
	profile  models.StudentProfile
	career   string
	deadline time.Time
}

func (s *stubCareerService) SuggestCareers(ctx context.Context, profile models.StudentProfile) []models.CareerSuggestion {
	s.profile = profile
	s.deadline, _ = ctx.Deadline()
	return services.FallbackSuggestions(profile)
}

func (s *stubCareerService) BuildRoadmaps(ctx context.Context, career string, profile models.StudentProfile) models.RoadmapSet {
	s.profile = profile
	s.career = career
	s.deadline, _ = ctx.Deadline()
	return models.RoadmapSet{career: services.FallbackRoadmaps(career, profile)}
}

func execute(t *testing.T, svc services.CareerService, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cfg := &config.Config{Server: config.ServerConfig{GenerationTimeout: time.Minute}}
	cmd := newRootCmd(cfg, svc)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestSuggestCommand(t *testing.T) {
	svc := &stubCareerService{}

	out, err := execute(t, svc, "suggest", "--interests", "music, art", "--skills", "piano")
	require.NoError(t, err)

	var resp models.SuggestResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))

	assert.Equal(t, "music, art", svc.profile.Interests)
	assert.Equal(t, models.DefaultEducationLevel, svc.profile.EducationLevel)
	require.NotEmpty(t, resp.Careers)
	assert.Equal(t, "Music Specialist", resp.Careers[0].Name)
}

func TestSuggestCommand_RequiresInterests(t *testing.T) {
	svc := &stubCareerService{}

	_, err := execute(t, svc, "suggest", "--skills", "piano")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--interests")
	assert.Empty(t, svc.profile.Skills)
}

func TestRoadmapCommand(t *testing.T) {
	svc := &stubCareerService{}

	out, err := execute(t, svc, "roadmap", "UX Designer", "--interests", "design", "--education", "High School")
	require.NoError(t, err)

	var resp struct {
		Career  string                                   `json:"career"`
		Roadmap map[string]map[string]models.RoadmapPath `json:"roadmap"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))

	assert.Equal(t, "UX Designer", svc.career)
	assert.Equal(t, "High School", svc.profile.EducationLevel)
	assert.Len(t, resp.Roadmap["UX Designer"], len(models.PathKinds))
	assert.Contains(t, out, "🌟")
}

func TestRoadmapCommand_RequiresCareer(t *testing.T) {
	_, err := execute(t, &stubCareerService{}, "roadmap")
	assert.Error(t, err)
}

func TestRoadmapCommand_TrimsCareer(t *testing.T) {
	svc := &stubCareerService{}

	out, err := execute(t, svc, "roadmap", "  UX Designer ")
	require.NoError(t, err)

	var resp struct {
		Career  string                                   `json:"career"`
		Roadmap map[string]map[string]models.RoadmapPath `json:"roadmap"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))

	assert.Equal(t, "UX Designer", svc.career)
	assert.Equal(t, "UX Designer", resp.Career)
	assert.Contains(t, resp.Roadmap, resp.Career)
}

func TestCommands_ApplyGenerationTimeout(t *testing.T) {
	svc := &stubCareerService{}

	start := time.Now()
	_, err := execute(t, svc, "suggest", "--interests", "music")
	require.NoError(t, err)

	require.False(t, svc.deadline.IsZero())
	assert.WithinDuration(t, start.Add(time.Minute), svc.deadline, 5*time.Second)

	_, err = execute(t, svc, "roadmap", "UX Designer", "--timeout", "10s")
	require.NoError(t, err)
	assert.WithinDuration(t, start.Add(10*time.Second), svc.deadline, 5*time.Second)
}
