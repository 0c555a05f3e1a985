package dto

// TokenResponse carries a newly issued bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}
