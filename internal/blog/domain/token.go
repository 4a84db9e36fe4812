package domain

// AuthData is what a successful login hands back to the client.
type AuthData struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}
