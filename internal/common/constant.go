package common

// AuthorizationHeaderName is the HTTP header carrying the bearer token on
// protected requests.
const AuthorizationHeaderName = "Authorization"

// IdentifierContextKey is the request context key under which the
// authorization gate stores the authenticated identifier for downstream
// handlers.
const IdentifierContextKey = "identifier"
