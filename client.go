package go_swish

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path"

	"github.com/viklundst/go-swish/consts"
	"github.com/viklundst/go-swish/internal/httpclient"
	"github.com/viklundst/go-swish/internal/mtls"
	"github.com/viklundst/go-swish/log"
	"github.com/viklundst/go-swish/payment"
	"github.com/viklundst/go-swish/refund"
	"github.com/viklundst/go-swish/validate"
)

// Client is the Swish merchant SDK client.
//
// It supports:
//   - Payment requests: create + retrieve
//   - Refunds: create + retrieve
//
// Requests go over mutual TLS using the configured merchant certificate.
// Field validation happens before any network I/O; nothing is sent when a
// field fails its grammar.
type Client struct {
	cfg config

	http *httpclient.Client

	payments *PaymentService
	refunds  *RefundService
}

// NewClient builds a client. A merchant alias is required; TLS material and
// callback URLs are validated here, so a misconfigured client is rejected
// before the first request.
func NewClient(opts ...Option) (Swish, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if cfg.alias == "" {
		return nil, NewError(CodeMissingAlias)
	}
	alias, ok := validate.MerchantAlias(cfg.alias)
	if !ok {
		return nil, NewError(CodeInvalidMerchantAlias)
	}
	cfg.payeeAlias = alias

	if cfg.paymentCallbackURL, ok = validate.CallbackURL(cfg.paymentCallbackURL); !ok {
		return nil, NewError(CodeInvalidCallbackURL)
	}
	if cfg.refundCallbackURL, ok = validate.CallbackURL(cfg.refundCallbackURL); !ok {
		return nil, NewError(CodeInvalidCallbackURL)
	}

	httpClient := cfg.httpClient
	if !cfg.tls.Empty() {
		tlsCfg, err := cfg.tls.Config()
		if err != nil {
			switch {
			case errors.Is(err, mtls.ErrKey):
				return nil, NewError(CodeInvalidKey)
			case errors.Is(err, mtls.ErrCA):
				return nil, NewError(CodeInvalidCA)
			default:
				return nil, NewError(CodeInvalidCertificate)
			}
		}
		httpClient = &http.Client{
			Timeout:   cfg.httpClient.Timeout,
			Transport: &http.Transport{TLSClientConfig: tlsCfg},
		}
	}

	c := &Client{cfg: cfg}
	c.http = httpclient.New(httpClient, cfg.logger, cfg.recorder, cfg.logBodies)
	c.payments = &PaymentService{c: c}
	c.refunds = &RefundService{c: c}
	return c, nil
}

func (c *Client) Payments() *PaymentService { return c.payments }
func (c *Client) Refunds() *RefundService   { return c.refunds }

// SetLogLevel updates SDK log level when current logger supports it.
func (c *Client) SetLogLevel(level log.Level) {
	if c == nil || c.cfg.logger == nil {
		return
	}
	if l, ok := c.cfg.logger.(interface{ SetLevel(log.Level) }); ok {
		l.SetLevel(level)
	}
}

func joinURL(base string, p string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid base url %q: %w", base, err)
	}
	u.Path = path.Join(u.Path, p)
	return u.String(), nil
}

// wrapAPIError translates a transport outcome into the uniform error shape.
// Non-2xx responses carry a JSON array of rejection reasons which is mapped
// entry for entry; anything without a response maps to the connection code.
func wrapAPIError(err error) error {
	if err == nil {
		return nil
	}
	var se *Error
	if errors.As(err, &se) {
		return se
	}
	var hs *httpclient.HTTPStatusError
	if errors.As(err, &hs) {
		return errorFromRemote(hs.Body)
	}
	return NewError(CodeConnectionFailed)
}

// =========================
// Payment requests
// =========================

type PaymentService struct{ c *Client }

// Create issues a payment request prompting the payer's Swish app to approve
// a charge. On success the returned id can be used to retrieve the request
// and to refund the eventual payment.
func (s *PaymentService) Create(ctx context.Context, req *payment.CreateRequest, runOpts ...RunOption) (*payment.CreateResult, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if req == nil {
		req = &payment.CreateRequest{}
	}

	body := map[string]any{
		"callbackUrl": s.c.cfg.paymentCallbackURL,
		"payeeAlias":  s.c.cfg.payeeAlias,
		"currency":    consts.Currency,
	}
	rules := []fieldRule{
		{target: "amount", kind: validate.KindAmount, required: true, code: CodeInvalidAmount, value: req.Amount},
		{target: "payerAlias", kind: validate.KindPayerAlias, required: true, code: CodeInvalidPhoneNumber, value: req.PhoneNumber},
		{target: "message", kind: validate.KindMessage, required: true, code: CodeInvalidMessage, value: req.Message},
		{target: "payeePaymentReference", kind: validate.KindPaymentReference, code: CodeInvalidPaymentReference, value: req.PayeePaymentReference},
		{target: "payerSSN", kind: validate.KindPersonNummer, code: CodeInvalidPersonNummer, value: req.PersonNummer},
		{target: "ageLimit", kind: validate.KindAgeLimit, code: CodeInvalidAgeLimit, value: req.AgeLimit},
	}
	if verr := assemble(body, rules); verr != nil {
		return nil, verr
	}

	id := s.c.cfg.idGenerator()
	full, err := joinURL(s.c.cfg.baseURL, consts.CreatePaymentRequestPath+id)
	if err != nil {
		return nil, err
	}
	if shouldDryRun(runOpts, http.MethodPut, full, body) {
		return &payment.CreateResult{ID: id}, nil
	}
	_, _, err = s.c.http.DoJSON(ctx, http.MethodPut, full, body, nil)
	if err != nil {
		return nil, wrapAPIError(err)
	}
	return &payment.CreateResult{ID: id}, nil
}

// Retrieve fetches the current state of a payment request by its id.
func (s *PaymentService) Retrieve(ctx context.Context, req *payment.RetrieveRequest, runOpts ...RunOption) (*payment.Payment, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if req == nil || req.ID == "" {
		return nil, NewError(CodeMissingID)
	}

	full, err := joinURL(s.c.cfg.baseURL, consts.RetrievePaymentRequestPath+req.ID)
	if err != nil {
		return nil, err
	}
	if shouldDryRun(runOpts, http.MethodGet, full, nil) {
		return nil, nil
	}
	var out payment.Payment
	_, _, err = s.c.http.DoJSON(ctx, http.MethodGet, full, nil, &out)
	if err != nil {
		return nil, wrapAPIError(err)
	}
	return &out, nil
}

// =========================
// Refunds
// =========================

type RefundService struct{ c *Client }

// Create issues a refund against a previously paid payment request. The
// merchant alias takes the payer role in a refund.
func (s *RefundService) Create(ctx context.Context, req *refund.CreateRequest, runOpts ...RunOption) (*refund.CreateResult, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if req == nil {
		req = &refund.CreateRequest{}
	}

	body := map[string]any{
		"callbackUrl": s.c.cfg.refundCallbackURL,
		"payerAlias":  s.c.cfg.payeeAlias,
		"currency":    consts.Currency,
	}
	rules := []fieldRule{
		{target: "amount", kind: validate.KindAmount, required: true, code: CodeInvalidAmount, value: req.Amount},
		{target: "originalPaymentReference", kind: validate.KindUUID, required: true, code: CodeInvalidOriginalPaymentReference, value: req.OriginalPaymentReference},
		{target: "message", kind: validate.KindMessage, required: true, code: CodeInvalidMessage, value: req.Message},
		{target: "payerPaymentReference", kind: validate.KindPaymentReference, code: CodeInvalidPaymentReference, value: req.PayerPaymentReference},
	}
	if verr := assemble(body, rules); verr != nil {
		return nil, verr
	}

	id := s.c.cfg.idGenerator()
	full, err := joinURL(s.c.cfg.baseURL, consts.CreateRefundPath+id)
	if err != nil {
		return nil, err
	}
	if shouldDryRun(runOpts, http.MethodPut, full, body) {
		return &refund.CreateResult{ID: id}, nil
	}
	_, _, err = s.c.http.DoJSON(ctx, http.MethodPut, full, body, nil)
	if err != nil {
		return nil, wrapAPIError(err)
	}
	return &refund.CreateResult{ID: id}, nil
}

// Retrieve fetches the current state of a refund by its id.
func (s *RefundService) Retrieve(ctx context.Context, req *refund.RetrieveRequest, runOpts ...RunOption) (*refund.Refund, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if req == nil || req.ID == "" {
		return nil, NewError(CodeMissingID)
	}

	full, err := joinURL(s.c.cfg.baseURL, consts.RetrieveRefundPath+req.ID)
	if err != nil {
		return nil, err
	}
	if shouldDryRun(runOpts, http.MethodGet, full, nil) {
		return nil, nil
	}
	var out refund.Refund
	_, _, err = s.c.http.DoJSON(ctx, http.MethodGet, full, nil, &out)
	if err != nil {
		return nil, wrapAPIError(err)
	}
	return &out, nil
}
