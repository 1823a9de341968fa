// Package respond defines the JSON payloads the API returns.
package respond

// LoginRespond carries the authenticated user plus a token pair. Reused by
// register and refresh since the shape is identical.
type LoginRespond struct {
	UserId       string   `json:"userId"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Avatar       string   `json:"avatar"`
	Roles        []string `json:"roles"`
	ActiveRole   string   `json:"activeRole"`
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
}
