package txtlocal

import (
	"strings"

	"github.com/rendau/txtlocal/adapters/sms"
	"github.com/rendau/txtlocal/errs"
)

type CredsKind int

const (
	CredsKindNone CredsKind = iota
	CredsKindApiKey
	CredsKindHash
	CredsKindPassword
)

// CredsSt holds one of three shapes: apikey, username+hash or
// username+password. The first complete shape in that order wins.
type CredsSt struct {
	ApiKey   string `mapstructure:"apikey" form:"apikey,omitempty"`
	Username string `mapstructure:"username" form:"username,omitempty"`
	Hash     string `mapstructure:"hash" form:"hash,omitempty"`
	Password string `mapstructure:"password" form:"password,omitempty"`
}

func ApiKeyCreds(apiKey string) CredsSt {
	return CredsSt{ApiKey: apiKey}
}

func HashCreds(username, hash string) CredsSt {
	return CredsSt{Username: username, Hash: hash}
}

func PasswordCreds(username, password string) CredsSt {
	return CredsSt{Username: username, Password: password}
}

func (c *CredsSt) Kind() CredsKind {
	switch {
	case c == nil:
		return CredsKindNone
	case c.ApiKey != "":
		return CredsKindApiKey
	case c.Username != "" && c.Hash != "":
		return CredsKindHash
	case c.Username != "" && c.Password != "":
		return CredsKindPassword
	}

	return CredsKindNone
}

// Normalized keeps only the fields of the detected shape.
func (c *CredsSt) Normalized() (CredsSt, error) {
	switch c.Kind() {
	case CredsKindApiKey:
		return ApiKeyCreds(c.ApiKey), nil
	case CredsKindHash:
		return HashCreds(c.Username, c.Hash), nil
	case CredsKindPassword:
		return PasswordCreds(c.Username, c.Password), nil
	}

	return CredsSt{}, errs.InvalidCredentials
}

type FailRepErr struct {
	Rep *sms.RepSt
}

func (e *FailRepErr) Error() string {
	if e.Rep == nil {
		return errs.FailResponse.Error()
	}

	msg := errs.FailResponse.Error() + ", status:" + e.Rep.Status

	if len(e.Rep.Errors) > 0 {
		descs := make([]string, 0, len(e.Rep.Errors))
		for _, x := range e.Rep.Errors {
			descs = append(descs, x.Message)
		}
		msg += ", errors:" + strings.Join(descs, "; ")
	}

	return msg
}

func (e *FailRepErr) Unwrap() error {
	return errs.FailResponse
}
