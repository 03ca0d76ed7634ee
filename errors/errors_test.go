package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ApiError_Temporary(t *testing.T) {
	testCases := []struct {
		name   string
		err    *ApiError
		expect bool
	}{
		{
			name:   "network error",
			err:    &ApiError{Stage: STAGE_REQUEST, Type: TYPE_IO, SourceErr: fmt.Errorf("connection reset")},
			expect: true,
		},
		{
			name:   "429",
			err:    &ApiError{Stage: STAGE_AFTER_REQUEST, Type: TYPE_HTTP_STATUS, HttpStatusCode: 429},
			expect: true,
		},
		{
			name:   "503",
			err:    &ApiError{Stage: STAGE_AFTER_REQUEST, Type: TYPE_HTTP_STATUS, HttpStatusCode: 503},
			expect: true,
		},
		{
			name:   "400 rejection",
			err:    &ApiError{Stage: STAGE_AFTER_REQUEST, Type: TYPE_HTTP_STATUS, HttpStatusCode: 400, Message: "Campaign is locked"},
			expect: false,
		},
		{
			name:   "404",
			err:    &ApiError{Stage: STAGE_AFTER_REQUEST, Type: TYPE_HTTP_STATUS, HttpStatusCode: 404},
			expect: false,
		},
		{
			name:   "malformed response json",
			err:    &ApiError{Stage: STAGE_AFTER_REQUEST, Type: TYPE_JSON_PARSE, HttpStatusCode: 200},
			expect: false,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, tt.err.Temporary())
		})
	}
}

func Test_ApiError_message_wins_in_Error(t *testing.T) {
	err := &ApiError{
		Stage:          STAGE_AFTER_REQUEST,
		Type:           TYPE_HTTP_STATUS,
		HttpStatusCode: 400,
		Body:           []byte(`{"message":"Campaign is locked"}`),
		Message:        "Campaign is locked",
	}

	assert.Contains(t, err.Error(), "Campaign is locked")
	assert.Contains(t, err.Error(), "not-ok-http-status")
}

func Test_ApiError_Is(t *testing.T) {
	wrapped := fmt.Errorf("update: %w", &ApiError{Type: TYPE_IO})

	assert.True(t, errors.Is(wrapped, &ApiError{}))
	assert.False(t, errors.Is(fmt.Errorf("plain"), &ApiError{}))
}
