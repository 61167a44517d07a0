package models

// SyncCredentials is the owner/repo/credential tuple that identifies the
// remote file store. It is persisted locally only, never inside the
// encrypted vault, so losing the master password does not expose the
// sync token and vice versa.
type SyncCredentials struct {
	Owner  string `json:"owner"`
	Repo   string `json:"repo"`
	Path   string `json:"path"`
	Branch string `json:"branch,omitempty"`
	Token  string `json:"token"`
}

// Complete reports whether the tuple is sufficient to reach the remote
// store.
func (c SyncCredentials) Complete() bool {
	return c.Owner != "" && c.Repo != "" && c.Path != "" && c.Token != ""
}
