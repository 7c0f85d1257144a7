package cmd

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/Shreedhar-Khorate/hiredesk-cli/internal/ai"
	"github.com/Shreedhar-Khorate/hiredesk-cli/internal/ai/gemini"
	"github.com/Shreedhar-Khorate/hiredesk-cli/internal/filtering"
	"github.com/Shreedhar-Khorate/hiredesk-cli/internal/logger"
	"github.com/Shreedhar-Khorate/hiredesk-cli/internal/present"
	"github.com/Shreedhar-Khorate/hiredesk-cli/internal/secrets"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var candidatesCmd = &cobra.Command{
	Use:   "candidates",
	Short: "Review scored candidates",
}

var candidatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List scored candidates for a job",
	Run: func(cmd *cobra.Command, _ []string) {
		listCandidates(cmd)
	},
}

var candidatesShowCmd = &cobra.Command{
	Use:   "show <candidate-name>",
	Short: "Show the full scored report for one candidate",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		showCandidate(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(candidatesCmd)
	candidatesCmd.AddCommand(candidatesListCmd)
	candidatesCmd.AddCommand(candidatesShowCmd)

	candidatesListCmd.Flags().String("job", "", "job id to list candidates for")
	candidatesListCmd.Flags().Float64("min-score", 0, "hide candidates scoring below this value")
	candidatesListCmd.Flags().String("tier", "", "show only one score tier (excellent, good, fair, poor)")
	candidatesListCmd.Flags().Bool("require-contact", false, "hide candidates without an email or phone")
	candidatesListCmd.MarkFlagRequired("job")

	candidatesShowCmd.Flags().String("job", "", "job id the candidate was scored against")
	candidatesShowCmd.Flags().Bool("summarize", false, "append an AI summary of the report")
	candidatesShowCmd.MarkFlagRequired("job")
}

func listCandidates(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	client := newClient(config, logger)

	jobID, _ := cmd.Flags().GetString("job")

	candidates, err := client.ListCandidates(ctx, jobID)
	if err != nil {
		logger.Fatal("listing candidates", zap.Error(err))
	}

	filters, err := prepareCandidateFilters(cmd)
	if err != nil {
		logger.Fatal("preparing filters", zap.Error(err))
	}

	candidates, err = filtering.Run(logger, filters, candidates)
	if err != nil {
		logger.Fatal("filtering candidates", zap.Error(err))
	}

	if candidates.Len() == 0 {
		logger.Info("no candidates left to show")
		return
	}

	for _, candidate := range candidates.Items {
		view := present.NewCandidateView(candidate)
		fmt.Printf("%-30s %8s  %-9s uploaded %s\n", view.Name, view.ScoreLabel, view.Tier, view.UploadedAt)
	}
}

func prepareCandidateFilters(cmd *cobra.Command) ([]filtering.Filter, error) {
	var filters []filtering.Filter

	if min, _ := cmd.Flags().GetFloat64("min-score"); min > 0 {
		filters = append(filters, filtering.NewMinScore(min))
	}

	if tier, _ := cmd.Flags().GetString("tier"); tier != "" {
		switch t := present.Tier(strings.ToLower(tier)); t {
		case present.TierExcellent, present.TierGood, present.TierFair, present.TierPoor:
			filters = append(filters, filtering.NewTier(t))
		default:
			return nil, fmt.Errorf("unknown tier %q", tier)
		}
	}

	if required, _ := cmd.Flags().GetBool("require-contact"); required {
		filters = append(filters, filtering.NewRequireContact())
	}

	return filters, nil
}

func showCandidate(cmd *cobra.Command, name string) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	client := newClient(config, logger)

	jobID, _ := cmd.Flags().GetString("job")

	candidates, err := client.ListCandidates(ctx, jobID)
	if err != nil {
		logger.Fatal("listing candidates", zap.Error(err))
	}

	candidate := candidates.FindByName(name)
	if candidate == nil {
		logger.Fatal("candidate not found",
			zap.String("name", name),
			zap.Strings("known candidates", candidates.Names()),
		)
	}

	view := present.NewCandidateView(candidate)
	fmt.Print(view.Render())

	if summarize, _ := cmd.Flags().GetBool("summarize"); summarize {
		summarizer, err := newSummarizer(ctx, config, logger)
		if err != nil {
			logger.Fatal("building summarizer", zap.Error(err))
		}

		summary, err := summarizer.Summarize(ctx, view)
		if err != nil {
			logger.Fatal("summarizing candidate", zap.Error(err))
		}

		fmt.Printf("\nSummary:\n%s\n", summary)
	}
}

func newSummarizer(ctx context.Context, config *Config, log *zap.Logger) (ai.Summarizer, error) {
	if config.AI == nil || !config.AI.Enabled {
		return nil, fmt.Errorf("ai summaries are disabled: set ai.enabled in the configuration file")
	}
	if config.AI.Gemini == nil {
		return nil, fmt.Errorf("gemini configuration is required for summaries")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: config.AI.Gemini.APIKeyFile,
	})
	if err != nil {
		return nil, err
	}

	genLogger := logger.WithCommonFields(log, "gemini", config.AI.Gemini.Model)

	generator, err := gemini.NewGenerator(ctx, apiKey, config.AI.Gemini.Model, config.AI.Gemini.MaxRetries, genLogger)
	if err != nil {
		return nil, err
	}

	return gemini.NewSummarizer(generator, genLogger, config.AI.Gemini.MaxLogLength), nil
}
