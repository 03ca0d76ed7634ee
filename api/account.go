package api

import (
	"net/http"

	"github.com/lindar-open/dotdigital-cli/logger"
	"github.com/lindar-open/dotdigital-cli/types"
)

var (
	PathAccountInfo = "account-info"
)

// Account implements the /v2/account-info API methods.
// See: https://developer.dotdigital.com/reference/get-account-information
type Account struct {
	api *apiClient
}

func NewAccountApi(
	baseUrl string,
	username string,
	password string,
	httpClient *http.Client,
	logger logger.Logger,
) *Account {
	return &Account{
		api: newApiClient(baseUrl, username, password, httpClient, logger),
	}
}

// Info fetches the account the credentials belong to. A successful call
// is also the cheapest way to verify the credentials themselves.
func (a *Account) Info() (*types.AccountInfo, error) {
	var res types.AccountInfo
	return toNilErr(&res, a.api.getJson(PathAccountInfo, &res))
}
