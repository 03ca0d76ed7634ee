package replace

import (
	dotdigital "github.com/lindar-open/dotdigital-cli"
	"github.com/lindar-open/dotdigital-cli/types"
)

// CampaignService is the slice of the dotdigital API an update run needs.
// The orchestrator only ever verifies the account, reads campaigns and
// writes one back.
type CampaignService interface {
	AccountInfo() (*types.AccountInfo, error)
	Campaign(campaignId int64) (*types.Campaign, error)
	Campaigns() ([]types.Campaign, error)
	UpdateCampaign(campaign types.Campaign) (*types.Campaign, error)
}

type clientService struct {
	client *dotdigital.Client
}

var _ CampaignService = &clientService{}

// NewCampaignService adapts a dotdigital client to the CampaignService
// interface the orchestrator consumes.
func NewCampaignService(client *dotdigital.Client) CampaignService {
	return &clientService{client: client}
}

func (s *clientService) AccountInfo() (*types.AccountInfo, error) {
	return s.client.Account().Info()
}

func (s *clientService) Campaign(campaignId int64) (*types.Campaign, error) {
	return s.client.Campaigns().Get(campaignId)
}

func (s *clientService) Campaigns() ([]types.Campaign, error) {
	return s.client.Campaigns().All()
}

func (s *clientService) UpdateCampaign(campaign types.Campaign) (*types.Campaign, error) {
	return s.client.Campaigns().Update(campaign)
}
