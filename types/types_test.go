package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Campaign_HasContent(t *testing.T) {
	empty := ""
	html := "<html>Hello</html>"

	testCases := []struct {
		name     string
		campaign Campaign
		expect   bool
	}{
		{
			name:     "no content",
			campaign: Campaign{Id: 1, Name: "listed"},
			expect:   false,
		},
		{
			name:     "html only",
			campaign: Campaign{Id: 2, HtmlContent: &html},
			expect:   true,
		},
		{
			name:     "explicitly empty plain text",
			campaign: Campaign{Id: 3, PlainTextContent: &empty},
			expect:   true,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, tt.campaign.HasContent())
		})
	}
}

func Test_AccountInfo_Property(t *testing.T) {
	a := AccountInfo{
		Id: 100,
		Properties: []AccountProperty{
			{Name: "MainEmail", Value: "owner@example.com"},
			{Name: "ApiEndpoint", Value: "https://r1-api.dotdigital.com"},
		},
	}

	assert.Equal(t, "owner@example.com", a.Property("MainEmail"))
	assert.Equal(t, "", a.Property("Missing"))
}
