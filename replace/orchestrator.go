package replace

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/lindar-open/dotdigital-cli/logger"
	"github.com/lindar-open/dotdigital-cli/types"
)

var (
	// ErrInvalidSelector means the config named neither a single campaign
	// nor all campaigns, or both at once.
	ErrInvalidSelector = errors.New("exactly one of 'campaign' or 'all-campaigns' must be set")

	// ErrInvalidCampaignId means the campaign selector was not a positive
	// integer.
	ErrInvalidCampaignId = errors.New("campaign id must be a positive integer")
)

// Config describes one find-and-replace run.
type Config struct {
	// Find is the literal text to search for; must be non-empty.
	Find string

	// Replace is the literal replacement text; may be empty.
	Replace string

	// CampaignId selects a single campaign by id; raw operator input,
	// parsed and validated by the run. Mutually exclusive with
	// AllCampaigns.
	CampaignId string

	// AllCampaigns selects every campaign on the account.
	AllCampaigns bool

	// DryRun reports matches without writing anything back.
	DryRun bool
}

// Outcome is what happened to one campaign during a run.
type Outcome int

const (
	OutcomeNoMatch Outcome = iota
	OutcomeMatchedDryRun
	OutcomeUpdated
	OutcomeFailed
)

// Summary aggregates a run. Matched counts campaigns that contained the
// find text and were updated (or would have been, under dry-run).
type Summary struct {
	Processed int
	Matched   int
}

// Runner drives one find-and-replace run: resolve the campaign set, match
// and substitute each campaign, and commit updates through the executor.
type Runner struct {
	service  CampaignService
	executor *Executor
	logger   logger.Logger
}

func NewRunner(service CampaignService, executor *Executor, log logger.Logger) *Runner {
	if log == nil {
		log = &logger.Noop{}
	}
	return &Runner{
		service:  service,
		executor: executor,
		logger:   log,
	}
}

// Run executes the whole find-and-replace pass. The returned error is nil
// only when the run completed; an aborted run returns the failure together
// with the summary of what was processed before the abort. Campaigns whose
// update the service rejected are logged and skipped without aborting.
func (r *Runner) Run(cfg Config) (Summary, error) {
	var summary Summary

	if (cfg.CampaignId != "") == cfg.AllCampaigns {
		r.logger.Errorf("Only one of 'campaign' or 'all-campaigns' options should be set")
		return summary, ErrInvalidSelector
	}

	// Parse the id up front so a typo is caught before any remote call.
	var campaignId int64
	if !cfg.AllCampaigns {
		var err error
		campaignId, err = strconv.ParseInt(cfg.CampaignId, 10, 64)
		if err != nil || campaignId <= 0 {
			r.logger.Errorf("Unable to parse [%s] for the campaign id", cfg.CampaignId)
			return summary, fmt.Errorf("%w: %q", ErrInvalidCampaignId, cfg.CampaignId)
		}
	}

	if cfg.DryRun {
		r.logger.Infof("Dry run is enabled, no campaigns will be updated")
	}
	r.logger.Infof("Finding text '%s' and replacing with '%s'", cfg.Find, cfg.Replace)

	if _, err := r.service.AccountInfo(); err != nil {
		r.logger.Errorf("Failed to get account info with error: %v", err)
		r.logger.Errorf("Check the username and password are correct")
		return summary, fmt.Errorf("verify account: %w", err)
	}

	campaigns, err := r.resolve(cfg, campaignId)
	if err != nil {
		return summary, err
	}

	r.logger.Infof("Found %d campaigns", len(campaigns))

	for _, campaign := range campaigns {
		outcome, err := r.process(campaign, cfg)
		if err != nil {
			r.logger.Errorf("%v", err)
			return summary, err
		}
		summary.Processed++
		if outcome == OutcomeMatchedDryRun || outcome == OutcomeUpdated {
			summary.Matched++
		}
	}

	if cfg.DryRun {
		r.logger.Infof("%d with matching text, not updated", summary.Matched)
		r.logger.Infof("Run without dry-run to update them")
	} else {
		r.logger.Infof("%d with matching text, updated", summary.Matched)
	}
	r.logger.Infof("Finished")

	return summary, nil
}

func (r *Runner) resolve(cfg Config, campaignId int64) ([]types.Campaign, error) {
	if cfg.AllCampaigns {
		campaigns, err := r.service.Campaigns()
		if err != nil {
			r.logger.Errorf("Unable to fetch all campaigns, failed with error: %v", err)
			return nil, fmt.Errorf("list campaigns: %w", err)
		}
		return campaigns, nil
	}

	campaign, err := r.service.Campaign(campaignId)
	if err != nil {
		r.logger.Errorf("Unable to fetch campaign with id [%d], failed with error: %v", campaignId, err)
		return nil, fmt.Errorf("fetch campaign %d: %w", campaignId, err)
	}
	return []types.Campaign{*campaign}, nil
}

func (r *Runner) process(campaign types.Campaign, cfg Config) (Outcome, error) {
	r.logger.Infof("Processing campaign %d, %s", campaign.Id, campaign.Name)

	campaign, err := r.ensureContent(campaign)
	if err != nil {
		// A fetch failing mid-run means the service is unreliable
		// enough that carrying on is unsafe.
		return OutcomeFailed, &FatalError{Err: err}
	}

	if !ContainsText(campaign, cfg.Find) {
		return OutcomeNoMatch, nil
	}

	if cfg.DryRun {
		r.logger.Infof("- found - %d, %s", campaign.Id, campaign.Name)
		return OutcomeMatchedDryRun, nil
	}

	updated := ReplaceText(campaign, cfg.Find, cfg.Replace)
	err = r.executor.Do("update-campaign", func() error {
		_, err := r.service.UpdateCampaign(updated)
		return err
	})
	if err != nil {
		var fatal *FatalError
		if errors.As(err, &fatal) {
			return OutcomeFailed, err
		}
		r.logger.Errorf("Unable to update campaign with id [%d], failed with error: %v", campaign.Id, err)
		return OutcomeFailed, nil
	}

	r.logger.Infof("- updated - %d, %s", campaign.Id, campaign.Name)
	return OutcomeUpdated, nil
}

// ensureContent loads the campaign bodies when the list endpoint left them
// out. Both the single-id path and the all-campaigns loop go through here;
// for the former the bodies are already loaded and this is a no-op.
func (r *Runner) ensureContent(campaign types.Campaign) (types.Campaign, error) {
	if campaign.HasContent() {
		return campaign, nil
	}
	full, err := r.service.Campaign(campaign.Id)
	if err != nil {
		r.logger.Errorf("Unable to fetch campaign with id [%d], failed with error: %v", campaign.Id, err)
		return campaign, fmt.Errorf("fetch campaign %d: %w", campaign.Id, err)
	}
	return *full, nil
}
