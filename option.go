package go_swish

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/stremovskyy/recorder"
	"github.com/viklundst/go-swish/consts"
	"github.com/viklundst/go-swish/internal/mtls"
	"github.com/viklundst/go-swish/log"
)

type Option func(*config) error

type config struct {
	baseURL string

	alias              string
	payeeAlias         string // validated form of alias, set by NewClient
	paymentCallbackURL string
	refundCallbackURL  string

	tls mtls.Material

	httpClient *http.Client
	logger     log.Logger
	logBodies  bool
	recorder   recorder.Recorder

	idGenerator func() string
}

func defaultConfig() config {
	return config{
		baseURL:            consts.ProductionBaseURL,
		paymentCallbackURL: consts.DefaultCallbackURL,
		refundCallbackURL:  consts.DefaultCallbackURL,
		httpClient:         &http.Client{Timeout: 30 * time.Second},
		logger:             log.NewDefault(),
		idGenerator:        NewID,
	}
}

// WithAlias sets the merchant Swish number. Required; the alias is validated
// when the client is constructed.
func WithAlias(alias string) Option {
	return func(cfg *config) error {
		alias = strings.TrimSpace(alias)
		if alias == "" {
			return NewError(CodeMissingAlias)
		}
		cfg.alias = alias
		return nil
	}
}

// WithBaseURL overrides the Swish API base URL. Use consts.TestBaseURL to
// target the merchant simulator.
func WithBaseURL(baseURL string) Option {
	return func(cfg *config) error {
		if baseURL == "" {
			return errors.New("base url is empty")
		}
		cfg.baseURL = baseURL
		return nil
	}
}

// WithPaymentCallbackURL sets the URL Swish calls with payment request
// status changes. Must use https.
func WithPaymentCallbackURL(callbackURL string) Option {
	return func(cfg *config) error {
		if callbackURL == "" {
			return nil
		}
		cfg.paymentCallbackURL = callbackURL
		return nil
	}
}

// WithRefundCallbackURL sets the URL Swish calls with refund status changes.
// Must use https.
func WithRefundCallbackURL(callbackURL string) Option {
	return func(cfg *config) error {
		if callbackURL == "" {
			return nil
		}
		cfg.refundCallbackURL = callbackURL
		return nil
	}
}

// WithCertificate sets the merchant TLS client certificate, as inline PEM
// content or a file path. An empty source is ignored.
func WithCertificate(src string) Option {
	return func(cfg *config) error {
		if src == "" {
			return nil
		}
		pemBytes, err := mtls.LoadPEM(src)
		if err != nil {
			return NewError(CodeInvalidCertificate)
		}
		cfg.tls.Cert = pemBytes
		return nil
	}
}

// WithKey sets the merchant TLS private key, as inline PEM content or a
// file path. An empty source is ignored.
func WithKey(src string) Option {
	return func(cfg *config) error {
		if src == "" {
			return nil
		}
		pemBytes, err := mtls.LoadPEM(src)
		if err != nil {
			return NewError(CodeInvalidKey)
		}
		cfg.tls.Key = pemBytes
		return nil
	}
}

// WithCA sets the Swish root CA bundle, as inline PEM content or a file
// path. An empty source is ignored.
func WithCA(src string) Option {
	return func(cfg *config) error {
		if src == "" {
			return nil
		}
		pemBytes, err := mtls.LoadPEM(src)
		if err != nil {
			return NewError(CodeInvalidCA)
		}
		cfg.tls.CA = pemBytes
		return nil
	}
}

// WithPassphrase sets the passphrase for an encrypted private key.
func WithPassphrase(passphrase string) Option {
	return func(cfg *config) error {
		cfg.tls.Passphrase = passphrase
		return nil
	}
}

// WithHTTPClient sets a custom *http.Client. TLS material configured via
// WithCertificate/WithKey/WithCA still applies to it.
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *config) error {
		if client == nil {
			return errors.New("http client is nil")
		}
		cfg.httpClient = client
		return nil
	}
}

// WithTimeout sets http client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(cfg *config) error {
		if timeout <= 0 {
			return errors.New("timeout must be > 0")
		}
		cfg.httpClient.Timeout = timeout
		return nil
	}
}

func WithLogger(logger log.Logger) Option {
	return func(cfg *config) error {
		if logger == nil {
			cfg.logger = log.NopLogger{}
			return nil
		}
		cfg.logger = logger
		return nil
	}
}

// WithLogHTTPBodies enables verbose request/response body logging for debugging.
//
// Disabled by default because bodies may contain sensitive data.
func WithLogHTTPBodies(enabled bool) Option {
	return func(cfg *config) error {
		cfg.logBodies = enabled
		return nil
	}
}

// WithRecorder attaches a recorder for request/response traffic.
func WithRecorder(r recorder.Recorder) Option {
	return func(cfg *config) error {
		cfg.recorder = r
		return nil
	}
}

// WithIDGenerator overrides the Swish instruction id generator. The
// generator must return 32 hexadecimal characters per call.
func WithIDGenerator(gen func() string) Option {
	return func(cfg *config) error {
		if gen == nil {
			return errors.New("id generator is nil")
		}
		cfg.idGenerator = gen
		return nil
	}
}
