package httpc

import (
	"context"
	"net/url"
)

type HttpC interface {
	GetOptions() OptionsSt
	Send(ctx context.Context, reqBody []byte, opts OptionsSt) ([]byte, error)
	SendForm(ctx context.Context, form url.Values, opts OptionsSt) ([]byte, error)
}
