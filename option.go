package go_payflow

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/stremovskyy/go-payflow/internal/httpclient"
	"github.com/stremovskyy/go-payflow/log"
	"github.com/stremovskyy/recorder"
)

type Option func(*options) error

type options struct {
	endpointURL string

	httpClient *http.Client
	logger     log.Logger
	logBodies  bool
	recorder   recorder.Recorder
}

func defaultOptions() options {
	return options{
		httpClient: httpclient.DefaultHTTPClient(),
		logger:     log.NewDefault(),
	}
}

// WithHTTPClient sets a custom *http.Client. Timeouts and cancellation come from it.
//
// The default client does not follow redirects; a custom client keeps its own CheckRedirect policy.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) error {
		if client == nil {
			return errors.New("http client is nil")
		}
		o.httpClient = client
		return nil
	}
}

func WithLogger(logger log.Logger) Option {
	return func(o *options) error {
		if logger == nil {
			o.logger = log.NopLogger{}
			return nil
		}
		o.logger = logger
		return nil
	}
}

// WithLogHTTPBodies enables request/response body logging for debugging.
//
// Disabled by default. PWD, ACCT, CVV2 and EXPDATE are always masked.
func WithLogHTTPBodies(enabled bool) Option {
	return func(o *options) error {
		o.logBodies = enabled
		return nil
	}
}

// WithRecorder attaches a recorder. Recorded requests are masked like logged ones.
func WithRecorder(r recorder.Recorder) Option {
	return func(o *options) error {
		o.recorder = r
		return nil
	}
}

// WithEndpointURL overrides the endpoint selected by Config.TestMode.
func WithEndpointURL(endpointURL string) Option {
	return func(o *options) error {
		if endpointURL == "" {
			return errors.New("endpoint url is empty")
		}
		u, err := url.Parse(endpointURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return errors.New("endpoint url must be absolute")
		}
		o.endpointURL = endpointURL
		return nil
	}
}
