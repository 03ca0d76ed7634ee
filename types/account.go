package types

// AccountInfo is the dotdigital account-info resource. The CLI only ever
// calls it to verify credentials, but the property list carries useful
// context (account owner email, API endpoint) for debug logging.
type AccountInfo struct {
	Id         int64             `json:"id"`
	Properties []AccountProperty `json:"properties,omitempty"`
}

type AccountProperty struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Property returns the named account property value, or "" if absent.
func (a AccountInfo) Property(name string) string {
	for _, p := range a.Properties {
		if p.Name == name {
			return p.Value
		}
	}
	return ""
}
