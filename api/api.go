package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/lindar-open/dotdigital-cli/errors"
	"github.com/lindar-open/dotdigital-cli/logger"
)

const (
	// DefaultBaseUrl is the region-1 dotdigital API host. Accounts on
	// other regions pass their own base URL through the client config.
	DefaultBaseUrl = "https://r1-api.dotdigital.com/v2"
)

type apiClient struct {
	baseUrl    string
	username   string
	password   string
	httpClient *http.Client
	logger     logger.Logger
}

func newApiClient(
	baseUrl string,
	username string,
	password string,
	httpClient *http.Client,
	logger logger.Logger,
) *apiClient {
	return &apiClient{
		baseUrl:    baseUrl,
		username:   username,
		password:   password,
		httpClient: httpClient,
		logger:     logger,
	}
}

func (c *apiClient) getJson(path string, resData any) *errors.ApiError {
	return c.sendJson(http.MethodGet, path, nil, resData)
}

func (c *apiClient) postJson(path string, reqData, resData any) *errors.ApiError {
	return c.sendJson(http.MethodPost, path, reqData, resData)
}

func (c *apiClient) putJson(path string, reqData, resData any) *errors.ApiError {
	return c.sendJson(http.MethodPut, path, reqData, resData)
}

func (c *apiClient) sendJson(
	httpMethod string,
	path string,
	reqData any,
	resData any,
) *errors.ApiError {
	body, err := c.send(httpMethod, path, reqData)
	if err != nil {
		if len(err.Body) > 0 {
			msg := dotdigitalErr{}
			err2 := json.Unmarshal(err.Body, &msg)
			if err2 == nil {
				err.Message = msg.Message
			}
			// Best effort to return some data
			_ = json.Unmarshal(body, resData)
		}
		return err
	}
	jsonErr := json.Unmarshal(body, resData)
	if jsonErr != nil {
		return &errors.ApiError{
			Stage:          errors.STAGE_AFTER_REQUEST,
			Type:           errors.TYPE_JSON_PARSE,
			SourceErr:      jsonErr,
			Body:           body,
			HttpStatusCode: http.StatusOK,
		}
	}
	return nil
}

func (c *apiClient) send(
	httpMethod string,
	path string,
	reqData any,
) ([]byte, *errors.ApiError) {
	endpoint := c.baseUrl + "/" + path

	var err error
	var req *http.Request

	if reqData != nil {
		data, jsonErr := json.Marshal(reqData)
		if jsonErr != nil {
			return nil, &errors.ApiError{
				Stage:     errors.STAGE_BEFORE_REQUEST,
				Type:      errors.TYPE_JSON_PARSE,
				SourceErr: jsonErr,
			}
		}
		req, err = http.NewRequest(
			httpMethod, endpoint, bytes.NewBuffer(data),
		)
	} else {
		req, err = http.NewRequest(
			httpMethod, endpoint, nil,
		)
	}

	if err != nil {
		return nil, &errors.ApiError{
			Stage:     errors.STAGE_BEFORE_REQUEST,
			Type:      errors.TYPE_REQUEST_PREP,
			SourceErr: err,
		}
	}

	req.Header.Add("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(c.username, c.password)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &errors.ApiError{
			Stage:     errors.STAGE_REQUEST,
			Type:      errors.TYPE_IO,
			SourceErr: err,
		}
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		var body []byte
		if res.Body != nil {
			body, _ = io.ReadAll(res.Body)
			defer func() { _ = res.Body.Close() }()
		}
		return body, &errors.ApiError{
			Stage:          errors.STAGE_AFTER_REQUEST,
			Type:           errors.TYPE_HTTP_STATUS,
			Body:           body,
			HttpStatusCode: res.StatusCode,
			SourceErr:      err,
		}
	}

	body, err := io.ReadAll(res.Body)
	defer func() { _ = res.Body.Close() }()
	if err != nil {
		return body, &errors.ApiError{
			Stage:          errors.STAGE_AFTER_REQUEST,
			Type:           errors.TYPE_IO,
			Body:           body,
			HttpStatusCode: res.StatusCode,
			SourceErr:      err,
		}
	}

	return body, nil
}

// toNilErr converts a *errors.ApiError type to be a true nil interface.
// Internally, a Go interface has a Type and Value.
// An interface value is nil only if the V and T are both unset.
// See: https://go.dev/doc/faq#nil_error
func toNilErr[T any](r T, e *errors.ApiError) (T, error) {
	if e != nil {
		return r, e
	}
	return r, nil
}

type dotdigitalErr struct {
	Message string `json:"message"`
}
