package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/Shreedhar-Khorate/hiredesk-cli/internal/flow"
	"github.com/Shreedhar-Khorate/hiredesk-cli/internal/hiredesk"
	"github.com/Shreedhar-Khorate/hiredesk-cli/internal/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Work with job openings",
}

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List open job postings",
	Run: func(_ *cobra.Command, _ []string) {
		listJobs()
	},
}

var jobsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Post a new job opening",
	Run: func(cmd *cobra.Command, _ []string) {
		createJob(cmd)
	},
}

func init() {
	rootCmd.AddCommand(jobsCmd)
	jobsCmd.AddCommand(jobsListCmd)
	jobsCmd.AddCommand(jobsCreateCmd)

	jobsCreateCmd.Flags().String("title", "", "job title")
	jobsCreateCmd.Flags().String("description", "", "brief description of the role")
	jobsCreateCmd.Flags().String("requirements", "", "skills and qualifications required")
	jobsCreateCmd.Flags().String("department", "", "department the opening belongs to")

	// Required fields are enforced here, at the input layer.
	jobsCreateCmd.MarkFlagRequired("title")
	jobsCreateCmd.MarkFlagRequired("description")
	jobsCreateCmd.MarkFlagRequired("requirements")
}

func listJobs() {
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

	jobs, err := client.ListJobs(ctx)
	if err != nil {
		logger.Fatal("listing jobs", zap.Error(err))
	}

	if jobs.Len() == 0 {
		logger.Info("no open jobs")
		return
	}

	for _, job := range jobs.Items {
		fmt.Printf("%s  %s\n", job.ID, job.Label())
	}
}

func createJob(cmd *cobra.Command) {
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

	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	requirements, _ := cmd.Flags().GetString("requirements")
	department, _ := cmd.Flags().GetString("department")

	creation := flow.NewJobCreation(client, func(job *hiredesk.Job) {
		fmt.Printf("created job %s: %s\n", job.ID, job.Label())
	}, logger)

	creation.SetDraft(flow.JobDraft{
		Title:        title,
		Description:  description,
		Requirements: requirements,
		Department:   department,
	})

	result := creation.Submit(ctx)
	if result.Failed() {
		logger.Fatal(result.Message)
	}
}
