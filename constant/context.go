package constant

type ContextKey string

// UsernameKey carries the gateway-resolved caller identity through the request context.
const UsernameKey ContextKey = "username"
