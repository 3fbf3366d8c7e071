package response

import (
	"nagoyameshi/internal/usecase/commands"
)

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

func FromIssuedToken(t *commands.IssuedToken) *TokenResponse {
	return &TokenResponse{
		AccessToken: t.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   t.ExpiresIn,
	}
}
