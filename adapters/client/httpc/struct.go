package httpc

import (
	"net/http"
	"strings"
	"time"
)

type OptionsSt struct {
	Client        *http.Client
	BaseUrl       string
	BaseHeaders   http.Header
	BaseLogPrefix string

	Method        string
	Path          string
	Headers       http.Header
	LogFlags      int
	LogPrefix     string
	RetryCount    int
	RetryInterval time.Duration
	Timeout       time.Duration
}

func (o OptionsSt) GetMergedWith(v OptionsSt) OptionsSt {
	res := OptionsSt{
		Client:        o.Client,
		BaseUrl:       o.BaseUrl,
		BaseHeaders:   o.BaseHeaders,
		BaseLogPrefix: o.BaseLogPrefix,
		Method:        o.Method,
		Path:          o.Path,
		Headers:       o.Headers,
		LogFlags:      o.LogFlags,
		LogPrefix:     o.LogPrefix,
		RetryCount:    o.RetryCount,
		RetryInterval: o.RetryInterval,
		Timeout:       o.Timeout,
	}

	if v.Client != nil {
		res.Client = v.Client
	}
	if v.BaseUrl != "" {
		if v.BaseUrl == "-" {
			res.BaseUrl = ""
		} else {
			res.BaseUrl = v.BaseUrl
		}
	}
	if v.BaseHeaders != nil {
		res.BaseHeaders = v.BaseHeaders
	}
	if v.BaseLogPrefix != "" {
		if v.BaseLogPrefix == "-" {
			res.BaseLogPrefix = ""
		} else {
			res.BaseLogPrefix = v.BaseLogPrefix
		}
	}
	if v.Method != "" {
		if v.Method == "-" {
			res.Method = ""
		} else {
			res.Method = v.Method
		}
	}
	if v.Path != "" {
		if v.Path == "-" {
			res.Path = ""
		} else {
			res.Path = v.Path
		}
	}
	if v.Headers != nil {
		res.Headers = v.Headers
	}
	if v.LogFlags != 0 {
		if v.LogFlags < 0 {
			res.LogFlags = 0
		} else {
			res.LogFlags = v.LogFlags
		}
	}
	if v.LogPrefix != "" {
		if v.LogPrefix == "-" {
			res.LogPrefix = ""
		} else {
			res.LogPrefix = v.LogPrefix
		}
	}
	if v.RetryCount != 0 {
		if v.RetryCount < 0 {
			res.RetryCount = 0
		} else {
			res.RetryCount = v.RetryCount
		}
	}
	if v.RetryInterval != 0 {
		if v.RetryInterval < 0 {
			res.RetryInterval = 0
		} else {
			res.RetryInterval = v.RetryInterval
		}
	}
	if v.Timeout != 0 {
		if v.Timeout < 0 {
			res.Timeout = 0
		} else {
			res.Timeout = v.Timeout
		}
	}

	return res
}

// Uri joins BaseUrl and Path.
func (o OptionsSt) Uri() string {
	if o.BaseUrl == "" {
		return o.Path
	}

	return strings.TrimRight(o.BaseUrl, "/") + "/" + strings.TrimLeft(o.Path, "/")
}
