package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	dotdigital "github.com/lindar-open/dotdigital-cli"
	"github.com/lindar-open/dotdigital-cli/logger"
	"github.com/lindar-open/dotdigital-cli/replace"
)

const (
	envUsername = "DOTDIGITAL_USERNAME"
	envPassword = "DOTDIGITAL_PASSWORD"
	envBaseUrl  = "DOTDIGITAL_BASE_URL"
)

type rootFlags struct {
	username     string
	password     string
	find         string
	replaceWith  string
	campaign     string
	allCampaigns bool
	dryRun       bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "dotdigital-cli",
		Short: "Tool for updating dotdigital campaigns",
		Long: `Bulk find-and-replace across dotdigital email campaigns.

Fetches one campaign (--campaign) or every campaign (--all-campaigns),
replaces every literal occurrence of the find text in the HTML and
plain-text bodies, and writes the result back. Updates are paced to stay
under dotdigital's API rate limits and retried on transient failures.

Credentials may also come from ` + envUsername + ` / ` + envPassword + `
(a .env file in the working directory is read when present).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(flags)
		},
	}

	cmd.Flags().StringVar(&flags.username, "username", "", "dotdigital API username")
	cmd.Flags().StringVar(&flags.password, "password", "", "dotdigital API password")
	cmd.Flags().StringVar(&flags.find, "find", "", "the text to find in the campaign")
	cmd.Flags().StringVar(&flags.replaceWith, "replace", "", "the text to replace it with (may be empty)")
	cmd.Flags().StringVar(&flags.campaign, "campaign", "", "campaign id to be updated")
	cmd.Flags().BoolVar(&flags.allCampaigns, "all-campaigns", false, "all campaigns to be updated")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "no campaigns will be updated, only logged")

	_ = cmd.MarkFlagRequired("find")
	_ = cmd.MarkFlagRequired("replace")
	cmd.MarkFlagsMutuallyExclusive("campaign", "all-campaigns")

	return cmd
}

func run(flags *rootFlags) error {
	log := logger.NewStdOut()

	// .env is optional; explicit flags win over the environment.
	_ = godotenv.Load()
	if flags.username == "" {
		flags.username = os.Getenv(envUsername)
	}
	if flags.password == "" {
		flags.password = os.Getenv(envPassword)
	}
	if flags.username == "" || flags.password == "" {
		err := fmt.Errorf(
			"username and password are required (flags or %s/%s)",
			envUsername, envPassword,
		)
		log.Errorf("%v", err)
		return err
	}
	if flags.find == "" {
		err := fmt.Errorf("find text must not be empty")
		log.Errorf("%v", err)
		return err
	}

	opts := []dotdigital.ConfigOption{dotdigital.WithLogger(log)}
	if baseUrl := os.Getenv(envBaseUrl); baseUrl != "" {
		opts = append(opts, dotdigital.WithBaseUrl(baseUrl))
	}
	client := dotdigital.NewClient(flags.username, flags.password, opts...)

	executor := replace.NewExecutor(replace.ExecutorConfig{Logger: log})
	runner := replace.NewRunner(replace.NewCampaignService(client), executor, log)

	_, err := runner.Run(replace.Config{
		Find:         flags.find,
		Replace:      flags.replaceWith,
		CampaignId:   flags.campaign,
		AllCampaigns: flags.allCampaigns,
		DryRun:       flags.dryRun,
	})
	return err
}
