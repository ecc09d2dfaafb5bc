// Package quality hooks an external reviewer into the generation pipeline.
// A proxy sees rendered output before parsing and may accept it, swap in a
// modified body, or reject it outright.
package quality

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/stencil/internal/core/logging"
)

// Verdict is a proxy's judgment of rendered output.
type Verdict string

const (
	VerdictAccept Verdict = "accept"
	VerdictModify Verdict = "modify"
	VerdictReject Verdict = "reject"
)

// ErrRejected is returned when a proxy rejects the output.
var ErrRejected = errors.New("quality proxy rejected output")

// Decision is a proxy response. Body is only consulted for VerdictModify.
type Decision struct {
	Verdict Verdict `json:"verdict"`
	Body    string  `json:"body,omitempty"`
	Reason  string  `json:"reason,omitempty"`
}

// Proxy reviews rendered output before parsing.
type Proxy interface {
	Review(ctx context.Context, templateID, body string) (Decision, error)
}

// NopProxy accepts everything. It is the default when no endpoint is
// configured.
type NopProxy struct{}

func (NopProxy) Review(ctx context.Context, templateID, body string) (Decision, error) {
	return Decision{Verdict: VerdictAccept}, nil
}

// HTTPProxy posts rendered output to an external endpoint and interprets
// the JSON decision it returns.
type HTTPProxy struct {
	endpoint string
	client   *http.Client
	log      zerolog.Logger
}

// NewHTTPProxy returns a proxy posting to endpoint. A nil client gets a
// 10 second timeout default.
func NewHTTPProxy(endpoint string, client *http.Client) *HTTPProxy {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTPProxy{endpoint: endpoint, client: client, log: logging.Component("quality")}
}

type reviewRequest struct {
	TemplateID string `json:"template_id"`
	Body       string `json:"body"`
}

func (p *HTTPProxy) Review(ctx context.Context, templateID, body string) (Decision, error) {
	payload, err := json.Marshal(reviewRequest{TemplateID: templateID, Body: body})
	if err != nil {
		return Decision{}, fmt.Errorf("encode review request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(payload))
	if err != nil {
		return Decision{}, fmt.Errorf("build review request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return Decision{}, fmt.Errorf("post review: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Decision{}, fmt.Errorf("review endpoint returned %s", resp.Status)
	}

	var dec Decision
	if err := json.NewDecoder(resp.Body).Decode(&dec); err != nil {
		return Decision{}, fmt.Errorf("decode review response: %w", err)
	}

	switch dec.Verdict {
	case VerdictAccept, VerdictModify, VerdictReject:
	default:
		return Decision{}, fmt.Errorf("review endpoint returned unknown verdict %q", dec.Verdict)
	}

	p.log.Debug().
		Str("template_id", templateID).
		Str("verdict", string(dec.Verdict)).
		Msg("output reviewed")
	return dec, nil
}
