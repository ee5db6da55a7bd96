package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"alfredoptarigan/career-pathfinder/internal/config"
	"alfredoptarigan/career-pathfinder/internal/models"
	"alfredoptarigan/career-pathfinder/internal/services"
)

type profileFlags struct {
	interests string
	skills    string
	education string
}

func (f *profileFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.interests, "interests", "", "comma separated interests")
	cmd.Flags().StringVar(&f.skills, "skills", "", "comma separated skills")
	cmd.Flags().StringVar(&f.education, "education", models.DefaultEducationLevel, "education level")
}

func (f *profileFlags) profile() models.StudentProfile {
	return models.NewStudentProfile(f.interests, f.skills, f.education)
}

func main() {
	if err := newRootCmd(config.Load(), nil).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd wires the commands. A nil service is built from cfg on first use.
func newRootCmd(cfg *config.Config, svc services.CareerService) *cobra.Command {
	root := &cobra.Command{
		Use:           "pathfinder",
		Short:         "Generate career suggestions and roadmaps from the command line",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	var timeout time.Duration
	root.PersistentFlags().DurationVar(&timeout, "timeout", cfg.Server.GenerationTimeout, "upper bound for one generation")

	resolve := func() (services.CareerService, error) {
		if svc != nil {
			return svc, nil
		}
		return buildService(context.Background(), cfg)
	}

	var suggestFlags profileFlags
	suggestCmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest careers for a student profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile := suggestFlags.profile()
			if profile.Interests == "" {
				return fmt.Errorf("--interests is required")
			}

			careerService, err := resolve()
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd, timeout)
			defer cancel()

			careers := careerService.SuggestCareers(ctx, profile)
			return writeJSON(cmd.OutOrStdout(), models.SuggestResponse{Profile: profile, Careers: careers})
		},
	}
	suggestFlags.register(suggestCmd)

	var roadmapFlags profileFlags
	roadmapCmd := &cobra.Command{
		Use:   "roadmap <career>",
		Short: "Build dream, skill and hybrid roadmaps for a career",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			careerService, err := resolve()
			if err != nil {
				return err
			}

			career := strings.TrimSpace(args[0])
			if career == "" {
				return fmt.Errorf("career must not be blank")
			}

			ctx, cancel := commandContext(cmd, timeout)
			defer cancel()

			profile := roadmapFlags.profile()
			roadmap := careerService.BuildRoadmaps(ctx, career, profile)
			return writeJSON(cmd.OutOrStdout(), models.RoadmapResponse{Career: career, Profile: profile, Roadmap: roadmap})
		},
	}
	roadmapFlags.register(roadmapCmd)

	root.AddCommand(suggestCmd, roadmapCmd)
	return root
}

func buildService(ctx context.Context, cfg *config.Config) (services.CareerService, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	zapLogger, err := zap.NewDevelopment()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	geminiService, err := services.NewGeminiService(ctx, cfg.Vertex, zapLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini AI: %w", err)
	}

	invoker := services.NewRemoteInvoker(geminiService, cfg.Retry.MaxAttempts, cfg.Retry.InitialDelay, zapLogger)
	return services.NewCareerService(invoker, zapLogger), nil
}

func commandContext(cmd *cobra.Command, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(cmd.Context())
	}
	return context.WithTimeout(cmd.Context(), timeout)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
