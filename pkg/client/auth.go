package client

import "context"

// ChallengeResponse is the result of create_challenge: the caller
// retrieves a short numeric code out-of-band from the local service
// and supplies it to CreateAPIKey (spec §4.2 authentication lifecycle).
type ChallengeResponse struct {
	ChallengeID string `json:"challenge_id"`
}

// APIKeyResponse carries the bearer credential minted from a solved
// challenge. The caller is responsible for persisting it via an
// external credential store and calling Client.SetAPIKey.
type APIKeyResponse struct {
	APIKey string `json:"api_key"`
}

// CreateChallenge starts the authentication lifecycle. It requires no
// credential.
func (c *Client) CreateChallenge(ctx context.Context) (*ChallengeResponse, error) {
	var out ChallengeResponse
	if err := c.Post(ctx, "auth.create_challenge", "/v1/auth/challenges", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateAPIKey exchanges a challenge id and the out-of-band numeric
// code for a long-lived bearer API key.
func (c *Client) CreateAPIKey(ctx context.Context, challengeID, code string) (*APIKeyResponse, error) {
	req := struct {
		ChallengeID string `json:"challenge_id"`
		Code        string `json:"code"`
	}{challengeID, code}
	var out APIKeyResponse
	if err := c.Post(ctx, "auth.create_api_key", "/v1/auth/api_keys", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
