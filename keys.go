package quiz

type Key string

const (
	// IpAddrKey stashes the IP address of an HTTP request being handled by the quiz web server.
	IpAddrKey Key = "IpAddrKey"

	// RequestIDKey stashes a unique UUID for each HTTP request.
	RequestIDKey Key = "RequestIDKey"
)

// String formats the stringified key with additional contextual information
func (k Key) String() string {
	return "quiz context key: " + string(k)
}
