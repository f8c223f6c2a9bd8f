package core

import "rest-explorer/internal/types"

// AuthorizationHeader is the header key that receives the access token.
const AuthorizationHeader = "Authorization"

// AuthorizeHeaders returns a copy of headers whose Authorization value is the
// template value followed by token. The input is left untouched.
func AuthorizeHeaders(headers types.Object, token string) (types.Object, error) {
	if headers == nil {
		return nil, malformedDocument("request headers are missing", nil)
	}
	current, ok := headers.Get(AuthorizationHeader)
	if !ok {
		return nil, malformedDocument("request headers have no Authorization entry", nil)
	}
	prefix, ok := current.(string)
	if !ok {
		return nil, malformedDocument("Authorization header must be a string", nil)
	}
	return headers.With(AuthorizationHeader, prefix+token), nil
}
