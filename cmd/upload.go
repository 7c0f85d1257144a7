package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/Shreedhar-Khorate/hiredesk-cli/internal/flow"
	"github.com/Shreedhar-Khorate/hiredesk-cli/internal/hiredesk"
	"github.com/Shreedhar-Khorate/hiredesk-cli/internal/logger"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <resume-file>",
	Short: "Upload a candidate resume against a job for parsing and scoring",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		upload(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(uploadCmd)

	uploadCmd.Flags().String("job", "", "id of the job to score the resume against (prompted when omitted)")
}

func upload(cmd *cobra.Command, path string) {
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

	attachment, err := flow.NewAttachment(path)
	if err != nil {
		logger.Fatal("attaching resume", zap.Error(err))
	}

	jobID, _ := cmd.Flags().GetString("job")
	if jobID == "" {
		jobID, err = pickJob(ctx, client)
		if err != nil {
			logger.Fatal("selecting a job", zap.Error(err))
		}
	}

	submission := flow.NewSubmission(client, logger)
	submission.Attach(attachment)
	submission.SelectJob(jobID)

	logger.Info("uploading resume",
		zap.String("file", attachment.Name),
		zap.String("job_id", jobID),
	)

	result := submission.Submit(ctx)
	if result.Failed() {
		logger.Fatal(result.Message)
	}

	fmt.Println(result.Message)
}

// pickJob fetches the open jobs and asks the user to choose one.
func pickJob(ctx context.Context, client *hiredesk.Client) (string, error) {
	jobs, err := client.ListJobs(ctx)
	if err != nil {
		return "", err
	}

	if jobs.Len() == 0 {
		return "", fmt.Errorf("no open jobs to score against")
	}

	prompt := promptui.Select{
		Label: "Choose a position",
		Items: jobs.Labels(),
	}

	idx, _, err := prompt.Run()
	if err != nil {
		return "", err
	}

	return jobs.Items[idx].ID, nil
}
