package train

import (
	"context"
)

// DefaultFeedURL is the rti-giken train delay feed.
const DefaultFeedURL = "https://tetsudo.rti-giken.jp/free/delay.json"

// Service fetches the train delay feed.
type Service interface {
	// Fetch retrieves the list of currently delayed lines.
	Fetch(ctx context.Context) ([]LineStatus, error)
}

// LineStatus is one entry of the delay feed. An entry's presence in the feed
// means the line is delayed right now.
type LineStatus struct {
	Name       string `json:"name"`
	Company    string `json:"company"`
	Website    string `json:"website"`
	Lastupdate int64  `json:"lastupdate_gmt"`
	Source     string `json:"source"`
}

// Matches reports whether the given line name appears as a value of this
// entry. The feed keys line identity loosely, so both the line name and the
// company fields are compared.
func (x LineStatus) Matches(name string) bool {
	return name != "" && (x.Name == name || x.Company == name)
}

// IsDelayed reports whether the named line appears anywhere in the feed.
func IsDelayed(statuses []LineStatus, name string) bool {
	for _, st := range statuses {
		if st.Matches(name) {
			return true
		}
	}
	return false
}
