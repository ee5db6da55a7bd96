package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"alfredoptarigan/career-pathfinder/internal/models"
)

var (
	suggestionParams = GenerationParams{Temperature: 0.4, MaxOutputTokens: 600}
	roadmapParams    = GenerationParams{Temperature: 0.65, MaxOutputTokens: 1800}
)

type CareerService interface {
	SuggestCareers(ctx context.Context, profile models.StudentProfile) []models.CareerSuggestion
	BuildRoadmaps(ctx context.Context, career string, profile models.StudentProfile) models.RoadmapSet
}

type careerService struct {
	invoker       Invoker
	promptBuilder *PromptBuilder
	logger        *zap.Logger
}

func NewCareerService(invoker Invoker, logger *zap.Logger) CareerService {
	return &careerService{
		invoker:       invoker,
		promptBuilder: NewPromptBuilder(),
		logger:        logger,
	}
}

// SuggestCareers implements CareerService.
func (s *careerService) SuggestCareers(ctx context.Context, profile models.StudentProfile) []models.CareerSuggestion {
	ctx, _ = ensureRequestID(ctx)
	fallback := FallbackSuggestions(profile)

	prompt := s.promptBuilder.BuildCareerSuggestionPrompt(profile)
	s.logger.Info("🤖 Generating career suggestions",
		requestField(ctx),
		zap.Int("prompt_chars", len(prompt)),
	)

	response := s.invoker.Invoke(ctx, prompt, suggestionParams)
	if response == "" {
		s.logger.Warn("⚠️ Empty model output, using fallback suggestions", requestField(ctx))
		return fallback
	}

	suggestions := namedOnly(ExtractJSON(response, fallback))
	if len(suggestions) == 0 {
		s.logger.Warn("⚠️ No usable suggestions in model output, using fallback", requestField(ctx))
		return fallback
	}

	s.logger.Info("✅ Career suggestions ready",
		requestField(ctx),
		zap.Int("count", len(suggestions)),
	)
	return suggestions
}

// BuildRoadmaps implements CareerService.
func (s *careerService) BuildRoadmaps(ctx context.Context, career string, profile models.StudentProfile) models.RoadmapSet {
	ctx, _ = ensureRequestID(ctx)
	career = strings.TrimSpace(career)
	fallback := FallbackRoadmaps(career, profile)

	prompt := s.promptBuilder.BuildRoadmapPrompt(career, profile)
	s.logger.Info("🤖 Generating roadmaps",
		requestField(ctx),
		zap.String("career", career),
		zap.Int("prompt_chars", len(prompt)),
	)

	response := s.invoker.Invoke(ctx, prompt, roadmapParams)

	// Only objects are roadmaps, so stray arrays in prose are skipped. A nil
	// decode repairs to the full fallback; repair also runs on decoded output
	// because the model may return a partial object.
	var decoded map[string]any
	if response != "" {
		decoded = ExtractJSON[map[string]any](response, nil)
	} else {
		s.logger.Warn("⚠️ Empty model output, using fallback roadmaps", requestField(ctx))
	}

	roadmaps := RepairRoadmaps(decoded, fallback)

	s.logger.Info("✅ Roadmaps ready", requestField(ctx), zap.String("career", career))
	return models.RoadmapSet{career: roadmaps}
}

// namedOnly drops suggestions the model left without a name.
func namedOnly(suggestions []models.CareerSuggestion) []models.CareerSuggestion {
	named := suggestions[:0:0]
	for _, suggestion := range suggestions {
		suggestion.Name = strings.TrimSpace(suggestion.Name)
		if suggestion.Name != "" {
			named = append(named, suggestion)
		}
	}
	return named
}
