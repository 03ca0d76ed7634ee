package types

// Campaign is a dotdigital v2 campaign resource.
//
// HtmlContent and PlainTextContent are pointers because the list endpoint
// returns campaigns without bodies; they stay nil until the campaign is
// fetched by id, after which both are populated (possibly as empty strings).
type Campaign struct {
	Id               int64   `json:"id"`
	Name             string  `json:"name"`
	Subject          string  `json:"subject,omitempty"`
	FromName         string  `json:"fromName,omitempty"`
	HtmlContent      *string `json:"htmlContent,omitempty"`
	PlainTextContent *string `json:"plainTextContent,omitempty"`
	ReplyAction      string  `json:"replyAction,omitempty"`
	ReplyToAddress   string  `json:"replyToAddress,omitempty"`
	Status           string  `json:"status,omitempty"`
}

// HasContent reports whether the campaign's bodies have been loaded.
// Campaigns coming from the list endpoint have neither body set.
func (c Campaign) HasContent() bool {
	return c.HtmlContent != nil || c.PlainTextContent != nil
}
