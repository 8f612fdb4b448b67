package domain

// AuthPayload is the claim set this service reads from a caller's
// token. Authorization itself is the identity service's concern; the
// judging core only needs to know who is submitting.
type AuthPayload struct {
	Subject    string   `json:"sub"`
	Username   string   `json:"username"`
	Permission []string `json:"permission"`
}
