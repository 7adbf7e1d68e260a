package models

// TwilioCredential is the single stored Twilio account pair
type TwilioCredential struct {
	SID       string `db:"sid" json:"sid"`
	AuthToken string `db:"auth_token" json:"auth_token"`
}

// MaskedToken hides all but the last four characters of the auth token
func (c *TwilioCredential) MaskedToken() string {
	if len(c.AuthToken) <= 4 {
		return "****"
	}
	masked := make([]byte, len(c.AuthToken)-4)
	for i := range masked {
		masked[i] = '*'
	}
	return string(masked) + c.AuthToken[len(c.AuthToken)-4:]
}
