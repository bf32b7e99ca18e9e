package sms

import (
	"context"
	"net/url"
)

type Sms interface {
	SendMessage(ctx context.Context, message string, numbers []string, params url.Values) (*RepSt, error)
}
