package common

// UsernameHeaderName and PasswordHeaderName are the gRPC metadata keys used
// to carry remote-store credentials on outbound requests.
const (
	UsernameHeaderName = "username"
	PasswordHeaderName = "password"
)
