package httpclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rendau/txtlocal/adapters/client/httpc"
	"github.com/rendau/txtlocal/adapters/logger"
	"github.com/rendau/txtlocal/errs"
)

type St struct {
	lg   logger.Lite
	opts httpc.OptionsSt
}

func New(lg logger.Lite, opts httpc.OptionsSt) *St {
	if opts.BaseUrl != "" {
		opts.BaseUrl = strings.TrimRight(opts.BaseUrl, "/") + "/"
	}

	if opts.Client == nil {
		opts.Client = http.DefaultClient
	}

	return &St{
		lg:   lg,
		opts: opts,
	}
}

func (c *St) GetOptions() httpc.OptionsSt {
	return c.opts
}

func (c *St) Send(ctx context.Context, reqBody []byte, opts httpc.OptionsSt) ([]byte, error) {
	opts = c.opts.GetMergedWith(opts)

	origLogFlags := opts.LogFlags

	var err error
	var repBody []byte

	for i := opts.RetryCount; i >= 0; i-- {
		if i == 0 {
			opts.LogFlags = origLogFlags
		} else {
			opts.LogFlags = origLogFlags | httpc.NoLogError
		}

		repBody, err = c.send(ctx, reqBody, opts)
		if err == nil {
			return repBody, nil
		}

		if i > 0 && opts.RetryInterval > 0 {
			select {
			case <-ctx.Done():
				return nil, err
			case <-time.After(opts.RetryInterval):
			}
		}

		if ctx.Err() != nil {
			return nil, err
		}
	}

	return nil, err
}

func (c *St) send(ctx context.Context, reqBody []byte, opts httpc.OptionsSt) ([]byte, error) {
	var err error

	uri := opts.Uri()

	logError := opts.LogFlags&httpc.NoLogError <= 0

	if opts.LogFlags&httpc.LogRequest > 0 {
		c.lg.Infow(opts.BaseLogPrefix+opts.LogPrefix+"request: /"+opts.Path,
			"uri", uri,
			"body", string(reqBody),
		)
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, opts.Method, uri, bytes.NewBuffer(reqBody))
	if err != nil {
		if logError {
			c.lg.Errorw(opts.BaseLogPrefix+opts.LogPrefix+"Fail to create http-request", err)
		}
		return nil, err
	}

	// Headers
	for k, v := range opts.BaseHeaders {
		req.Header[k] = v
	}
	for k, v := range opts.Headers {
		req.Header[k] = v
	}

	// Do request
	rep, err := opts.Client.Do(req)
	if err != nil {
		if logError {
			c.lg.Errorw(
				opts.BaseLogPrefix+opts.LogPrefix+"Fail to send http-request", err,
				"uri", uri,
			)
		}
		return nil, err
	}
	defer rep.Body.Close()

	// read response body
	repBody, err := io.ReadAll(rep.Body)
	if err != nil {
		if logError {
			c.lg.Errorw(
				opts.BaseLogPrefix+opts.LogPrefix+"Fail to read body", err,
				"uri", uri,
			)
		}
		return nil, err
	}

	if rep.StatusCode < 200 || rep.StatusCode > 299 {
		if rep.StatusCode == http.StatusUnauthorized || rep.StatusCode == http.StatusForbidden {
			if logError && opts.LogFlags&httpc.NoLogNotAuthorized <= 0 {
				c.lg.Errorw(
					opts.BaseLogPrefix+opts.LogPrefix+"Bad status code", nil,
					"status_code", rep.StatusCode,
					"rep_body", string(repBody),
					"uri", uri,
				)
			}
			return nil, errs.NotAuthorized
		}
		if logError && opts.LogFlags&httpc.NoLogBadStatus <= 0 {
			c.lg.Errorw(
				opts.BaseLogPrefix+opts.LogPrefix+"Bad status code", nil,
				"status_code", rep.StatusCode,
				"rep_body", string(repBody),
				"uri", uri,
			)
		}
		return nil, errs.ErrWithDesc{
			Err:  errs.BadStatusCode,
			Desc: strconv.Itoa(rep.StatusCode),
		}
	}

	if opts.LogFlags&httpc.LogResponse > 0 {
		c.lg.Infow(opts.BaseLogPrefix+opts.LogPrefix+"response: /"+opts.Path,
			"uri", uri,
			"body", string(repBody),
		)
	}

	return repBody, nil
}

func (c *St) SendForm(ctx context.Context, form url.Values, opts httpc.OptionsSt) ([]byte, error) {
	opts.Headers = cloneHeaders(opts.Headers)
	opts.Headers.Set("Content-Type", httpc.ContentTypeForm)

	return c.Send(ctx, []byte(form.Encode()), opts)
}

func cloneHeaders(h http.Header) http.Header {
	if h == nil {
		return http.Header{}
	}

	return h.Clone()
}
