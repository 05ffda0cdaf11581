package domain

// TokenPair holds the short-lived bearer access token and the longer-lived
// refresh token. Both are minted and validated by the remote API; this client
// only stores and rotates them.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}
