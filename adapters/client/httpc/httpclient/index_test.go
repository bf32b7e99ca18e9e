package httpclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/rendau/txtlocal/adapters/client/httpc"
	"github.com/rendau/txtlocal/adapters/logger/zap"
	"github.com/rendau/txtlocal/errs"
)

var _ httpc.HttpC = (*St)(nil)

func TestSendForm(t *testing.T) {
	var gotForm url.Values
	var gotContentType, gotMethod, gotPath string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		if err := r.ParseForm(); err != nil {
			t.Errorf("ParseForm: %v", err)
		}
		gotForm = r.PostForm
		w.Header().Set("Content-Type", httpc.ContentTypeJson)
		_, _ = io.WriteString(w, `{"status":"success"}`)
	}))
	defer srv.Close()

	c := New(zap.NewNop(), httpc.OptionsSt{
		Client:  srv.Client(),
		BaseUrl: srv.URL,
	})

	repBody, err := c.SendForm(context.Background(), url.Values{
		"apikey":  {"k"},
		"numbers": {"447000000000,447000000001"},
	}, httpc.OptionsSt{
		Method: http.MethodPost,
		Path:   "send",
	})
	if err != nil {
		t.Fatalf("SendForm: %v", err)
	}

	if string(repBody) != `{"status":"success"}` {
		t.Errorf("repBody = %s", repBody)
	}
	if gotMethod != http.MethodPost || gotPath != "/send" {
		t.Errorf("request = %s %s", gotMethod, gotPath)
	}
	if gotContentType != httpc.ContentTypeForm {
		t.Errorf("Content-Type = %q", gotContentType)
	}

	want := url.Values{
		"apikey":  {"k"},
		"numbers": {"447000000000,447000000001"},
	}
	if diff := cmp.Diff(want, gotForm); diff != "" {
		t.Errorf("form mismatch (-want +got):\n%s", diff)
	}
}

func TestSendHeaders(t *testing.T) {
	var got http.Header

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(zap.NewNop(), httpc.OptionsSt{
		BaseUrl:     srv.URL,
		Method:      http.MethodPost,
		BaseHeaders: http.Header{"User-Agent": {"txtlocal-cli"}, "Accept": {"*/*"}},
	})

	_, err := c.SendForm(context.Background(), url.Values{"apikey": {"k"}}, httpc.OptionsSt{
		Path:    "send",
		Headers: http.Header{"Accept": {httpc.ContentTypeXml}},
	})
	if err != nil {
		t.Fatalf("SendForm: %v", err)
	}

	if v := got.Get("User-Agent"); v != "txtlocal-cli" {
		t.Errorf("User-Agent = %q", v)
	}
	if v := got.Get("Accept"); v != httpc.ContentTypeXml {
		t.Errorf("Accept = %q", v)
	}
	if v := got.Get("Content-Type"); v != httpc.ContentTypeForm {
		t.Errorf("Content-Type = %q", v)
	}
}

func TestSendBadStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, want: errs.NotAuthorized},
		{name: "forbidden", status: http.StatusForbidden, want: errs.NotAuthorized},
		{name: "server error", status: http.StatusInternalServerError, want: errs.BadStatusCode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			c := New(zap.NewNop(), httpc.OptionsSt{BaseUrl: srv.URL, Method: http.MethodPost})

			_, err := c.Send(context.Background(), nil, httpc.OptionsSt{Path: "send"})
			if !errors.Is(err, tt.want) {
				t.Errorf("Send() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSendRetry(t *testing.T) {
	var calls int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = io.WriteString(w, "ok")
	}))
	defer srv.Close()

	c := New(zap.NewNop(), httpc.OptionsSt{
		BaseUrl:       srv.URL,
		Method:        http.MethodPost,
		RetryCount:    2,
		RetryInterval: time.Millisecond,
	})

	repBody, err := c.Send(context.Background(), nil, httpc.OptionsSt{Path: "send"})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if string(repBody) != "ok" {
		t.Errorf("repBody = %q", repBody)
	}
	if n := atomic.LoadInt32(&calls); n != 3 {
		t.Errorf("calls = %d, want 3", n)
	}

	atomic.StoreInt32(&calls, 0)

	_, err = c.Send(context.Background(), nil, httpc.OptionsSt{Path: "send", RetryCount: -1})
	if !errors.Is(err, errs.BadStatusCode) {
		t.Errorf("Send() error = %v, want %v", err, errs.BadStatusCode)
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Errorf("calls = %d, want 1", n)
	}
}

func TestSendTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	uri := srv.URL
	srv.Close()

	c := New(zap.NewNop(), httpc.OptionsSt{BaseUrl: uri, Method: http.MethodPost})

	_, err := c.Send(context.Background(), nil, httpc.OptionsSt{Path: "send"})
	if err == nil {
		t.Fatal("Send() error = nil, want transport error")
	}

	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		t.Errorf("Send() error = %T, want *url.Error", err)
	}
}
