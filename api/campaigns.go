package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/lindar-open/dotdigital-cli/errors"
	"github.com/lindar-open/dotdigital-cli/logger"
	"github.com/lindar-open/dotdigital-cli/types"
)

var (
	PathCampaigns = "campaigns"
	PathCampaign  = "campaigns/{campaignId}"
)

// listPageSize is the dotdigital maximum for the select paging parameter.
const listPageSize = 1000

// Campaigns implements the /v2/campaigns API methods.
// See: https://developer.dotdigital.com/reference/get-all-campaigns
type Campaigns struct {
	api *apiClient
}

func NewCampaignsApi(
	baseUrl string,
	username string,
	password string,
	httpClient *http.Client,
	logger logger.Logger,
) *Campaigns {
	return &Campaigns{
		api: newApiClient(baseUrl, username, password, httpClient, logger),
	}
}

// Get fetches a single campaign with its HTML and plain-text bodies
// populated.
func (c *Campaigns) Get(campaignId int64) (*types.Campaign, error) {
	var res types.Campaign
	return toNilErr(&res, c.api.getJson(campaignPath(campaignId), &res))
}

// All lists every campaign on the account, following the select/skip
// paging convention until a short page. Campaigns in the result carry no
// content bodies; fetch by id to load them.
func (c *Campaigns) All() ([]types.Campaign, error) {
	var all []types.Campaign
	for skip := 0; ; skip += listPageSize {
		var page []types.Campaign
		path := fmt.Sprintf(
			"%s?select=%d&skip=%d", PathCampaigns, listPageSize, skip,
		)
		if err := c.api.getJson(path, &page); err != nil {
			return toNilErr(all, err)
		}
		all = append(all, page...)
		if len(page) < listPageSize {
			return all, nil
		}
	}
}

// Update rewrites the remote campaign with the given content and returns
// the stored resource.
func (c *Campaigns) Update(campaign types.Campaign) (*types.Campaign, error) {
	if campaign.Id <= 0 {
		return nil, &errors.ApiError{
			Stage:     errors.STAGE_BEFORE_REQUEST,
			Type:      errors.TYPE_REQUEST_PREP,
			SourceErr: fmt.Errorf("campaign id must be positive, got %d", campaign.Id),
		}
	}
	var res types.Campaign
	return toNilErr(&res, c.api.putJson(campaignPath(campaign.Id), campaign, &res))
}

func campaignPath(campaignId int64) string {
	id := strconv.FormatInt(campaignId, 10)
	return strings.Replace(PathCampaign, "{campaignId}", id, 1)
}
