package domain

import (
	"strconv"
	"strings"
)

// Callback token namespaces
const (
	TokenNamespaceUser  = "usr"
	TokenNamespaceAdmin = "adm"
)

// CallbackToken is a decoded inline-button action of the form
// <namespace>:<action>[:<arg>]. The arg is either a decimal user ID or a
// raw channel handle depending on the action.
type CallbackToken struct {
	Namespace string
	Action    string
	Arg       string
}

// ParseCallbackToken decodes raw callback data into a token.
// Tokens outside the usr:/adm: namespaces are rejected with ErrUnknownToken.
func ParseCallbackToken(data string) (CallbackToken, error) {
	parts := strings.SplitN(data, ":", 3)
	if len(parts) < 2 {
		return CallbackToken{}, ErrUnknownToken
	}

	tok := CallbackToken{
		Namespace: parts[0],
		Action:    parts[1],
	}
	if len(parts) == 3 {
		tok.Arg = parts[2]
	}

	if tok.Namespace != TokenNamespaceUser && tok.Namespace != TokenNamespaceAdmin {
		return CallbackToken{}, ErrUnknownToken
	}
	if tok.Action == "" {
		return CallbackToken{}, ErrUnknownToken
	}

	return tok, nil
}

// UserID parses the token argument as a user ID
func (t CallbackToken) UserID() (int64, error) {
	id, err := strconv.ParseInt(t.Arg, 10, 64)
	if err != nil {
		return 0, ErrInvalidUserID
	}
	return id, nil
}

// String re-encodes the token as callback data
func (t CallbackToken) String() string {
	if t.Arg == "" {
		return t.Namespace + ":" + t.Action
	}
	return t.Namespace + ":" + t.Action + ":" + t.Arg
}
