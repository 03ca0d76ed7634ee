package replace

import (
	"strings"

	"github.com/lindar-open/dotdigital-cli/types"
)

// ContainsText reports whether find occurs as a literal substring of either
// campaign body. Bodies that have not been loaded never match.
func ContainsText(c types.Campaign, find string) bool {
	return contains(c.HtmlContent, find) || contains(c.PlainTextContent, find)
}

// ReplaceText returns a copy of the campaign with every literal occurrence
// of find replaced in each loaded body. Unloaded bodies stay unloaded and
// the input campaign is left untouched.
func ReplaceText(c types.Campaign, find, replace string) types.Campaign {
	c.HtmlContent = replaced(c.HtmlContent, find, replace)
	c.PlainTextContent = replaced(c.PlainTextContent, find, replace)
	return c
}

func contains(s *string, find string) bool {
	return s != nil && strings.Contains(*s, find)
}

func replaced(s *string, find, replace string) *string {
	if s == nil {
		return nil
	}
	out := strings.ReplaceAll(*s, find, replace)
	return &out
}
