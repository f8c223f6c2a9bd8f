package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"rest-explorer/internal/types"
)

// ParseMethod accepts "GET" or "POST" in any letter case. The input is not
// trimmed: "get " is rejected.
func ParseMethod(raw string) (types.HTTPMethod, error) {
	switch {
	case strings.EqualFold(raw, string(types.HTTPMethodGet)):
		return types.HTTPMethodGet, nil
	case strings.EqualFold(raw, string(types.HTTPMethodPost)):
		return types.HTTPMethodPost, nil
	default:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid method %q: the HTTP method can only be GET or POST", raw))
	}
}

// NewRequestTemplate validates the method and builds an immutable template.
// Headers and body are copied so later changes to the inputs do not leak in.
func NewRequestTemplate(apiURL string, method string, headers types.Object, body types.Object) (types.RequestTemplate, error) {
	parsed, err := ParseMethod(method)
	if err != nil {
		return types.RequestTemplate{}, err
	}
	return types.RequestTemplate{
		APIURL:    apiURL,
		Method:    parsed,
		RawMethod: method,
		Headers:   headers.Clone(),
		Body:      body.Clone(),
	}, nil
}
