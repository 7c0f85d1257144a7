package cmd

import (
	"context"
	"log"

	"github.com/Shreedhar-Khorate/hiredesk-cli/internal/auth"
	"github.com/Shreedhar-Khorate/hiredesk-cli/internal/hiredesk"
	"github.com/Shreedhar-Khorate/hiredesk-cli/internal/logger"
	"github.com/Shreedhar-Khorate/hiredesk-cli/internal/secrets"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to HireDesk and store the session token",
	Run: func(cmd *cobra.Command, _ []string) {
		runAuth(cmd, auth.ModeLogin)
	},
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a HireDesk account",
	Run: func(cmd *cobra.Command, _ []string) {
		runAuth(cmd, auth.ModeSignup)
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(signupCmd)

	for _, cmd := range []*cobra.Command{loginCmd, signupCmd} {
		cmd.Flags().String("email", "", "account email")
		cmd.Flags().String("password", "", "account password (prompted when omitted)")
	}
	signupCmd.Flags().String("confirm-password", "", "password confirmation (prompted when omitted)")
	loginCmd.Flags().Bool("google", false, "sign in with Google instead of email/password")
}

func runAuth(cmd *cobra.Command, mode auth.Mode) {
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
	authFlow := auth.NewFlow(hiredesk.NewAuth(client, resolveGoogleToken(config, logger)), mode, logger)

	useGoogle, _ := cmd.Flags().GetBool("google")

	var result = authFlow.Status()
	if useGoogle {
		result = authFlow.LoginWithGoogle(ctx)
	} else {
		creds, err := collectCredentials(cmd, mode)
		if err != nil {
			logger.Fatal("reading credentials", zap.Error(err))
		}

		authFlow.SetCredentials(creds)
		result = authFlow.Submit(ctx)
	}

	if result.Failed() {
		logger.Fatal(result.Message)
	}

	session := result.Value
	if session == nil || session.Token == "" {
		logger.Fatal("authentication succeeded but no session token was returned")
	}

	tokenFile := tokenFilePath(config)
	if tokenFile == "" {
		logger.Fatal("token file is not configured",
			zap.String("hint", "set HIREDESK_TOKEN_FILE or the 'token-file' key in the configuration file"),
		)
	}

	if err := secrets.Save(tokenFile, session.Token); err != nil {
		logger.Fatal("saving session token", zap.Error(err))
	}

	logger.Info("signed in", zap.String("mode", string(mode)), zap.String("token_file", tokenFile))
}

func collectCredentials(cmd *cobra.Command, mode auth.Mode) (auth.Credentials, error) {
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")

	var err error
	if email == "" {
		if email, err = askText("Email"); err != nil {
			return auth.Credentials{}, err
		}
	}
	if password == "" {
		if password, err = askPassword("Password"); err != nil {
			return auth.Credentials{}, err
		}
	}

	creds := auth.Credentials{Email: email, Password: password}
	if mode != auth.ModeSignup {
		return creds, nil
	}

	confirm, _ := cmd.Flags().GetString("confirm-password")
	if confirm == "" {
		if confirm, err = askPassword("Confirm password"); err != nil {
			return auth.Credentials{}, err
		}
	}
	creds.ConfirmPassword = confirm

	return creds, nil
}

func askText(label string) (string, error) {
	prompt := promptui.Prompt{Label: label}
	return prompt.Run()
}

func askPassword(label string) (string, error) {
	prompt := promptui.Prompt{Label: label, Mask: '*'}
	return prompt.Run()
}

func resolveGoogleToken(config *Config, logger *zap.Logger) string {
	if config == nil || config.Auth == nil || config.Auth.GoogleIDTokenFile == "" {
		return ""
	}

	token, err := secrets.Load(secrets.Source{
		Name: "google identity token",
		File: config.Auth.GoogleIDTokenFile,
	})
	if err != nil {
		logger.Debug("google identity token not loaded", zap.Error(err))
		return ""
	}

	return token
}
