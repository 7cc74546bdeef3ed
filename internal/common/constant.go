package common

// APIKeyHeaderName is the HTTP header that carries the caller's API key
// on every authenticated request.
const APIKeyHeaderName = "Authorization"
