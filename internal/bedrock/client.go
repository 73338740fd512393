package bedrock

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a thin HTTP client for the Bedrock runtime and control
// plane. Credentials are an API key resolved by the environment; no
// request signing happens here.
type Client struct {
	runtimeURL string
	controlURL string
	apiKey     string
	httpClient *http.Client
}

type ClientConfig struct {
	RuntimeURL string
	ControlURL string
	APIKey     string
	HTTPClient *http.Client
}

func NewClient(cfg ClientConfig) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &Client{
		runtimeURL: strings.TrimRight(cfg.RuntimeURL, "/"),
		controlURL: strings.TrimRight(cfg.ControlURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
	}
}

// InvokeModel sends a provider-specific body to a model and returns the
// raw response payload. Failures come back as *InvokeError, never as raw
// transport errors.
func (c *Client) InvokeModel(ctx context.Context, modelID string, body json.RawMessage) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/model/%s/invoke", c.runtimeURL, url.PathEscape(modelID))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &InvokeError{Kind: KindOther, ModelID: modelID, Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &InvokeError{Kind: KindOther, ModelID: modelID, Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, &InvokeError{Kind: KindOther, ModelID: modelID, Message: fmt.Sprintf("read response: %v", err)}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, invokeErrorFrom(modelID, resp, raw)
	}
	return raw, nil
}

// invokeErrorFrom classifies a failed invocation by its AWS error code,
// taken from the X-Amzn-Errortype header or the __type body field.
func invokeErrorFrom(modelID string, resp *http.Response, raw []byte) *InvokeError {
	code := resp.Header.Get("X-Amzn-Errortype")

	var body struct {
		Type    string `json:"__type"`
		Message string `json:"message"`
	}
	_ = json.Unmarshal(raw, &body)
	if code == "" {
		code = body.Type
	}

	message := body.Message
	if message == "" {
		message = strings.TrimSpace(string(raw))
	}
	if message == "" {
		message = fmt.Sprintf("HTTP %d", resp.StatusCode)
	}

	kind := KindOther
	switch {
	case strings.Contains(code, "ValidationException"):
		kind = KindValidation
	case strings.Contains(code, "AccessDeniedException"):
		kind = KindAccessDenied
	}

	return &InvokeError{Kind: kind, ModelID: modelID, Message: message}
}

// ListFoundationModels fetches the full model catalog.
func (c *Client) ListFoundationModels(ctx context.Context) ([]ModelSummary, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.controlURL+"/foundation-models", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: read catalog response: %v", ErrCatalogUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: HTTP %d: %s", ErrCatalogUnavailable, resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var parsed struct {
		ModelSummaries []ModelSummary `json:"modelSummaries"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("%w: cannot parse catalog: %v", ErrCatalogUnavailable, err)
	}
	return parsed.ModelSummaries, nil
}

// ListChatModels lists the catalog filtered down to selectable chat
// models. On a failed listing it returns an empty result alongside the
// ErrCatalogUnavailable-wrapped cause.
func (c *Client) ListChatModels(ctx context.Context) ([]ModelSummary, error) {
	models, err := c.ListFoundationModels(ctx)
	if err != nil {
		return nil, err
	}
	return FilterChatModels(models), nil
}

// Chat sends one user message to a model and returns the extracted
// response text, composing the request and response adapters.
func (c *Client) Chat(ctx context.Context, modelID, userText string, p Sampling) (string, error) {
	body, err := BuildRequest(modelID, userText, p)
	if err != nil {
		return "", err
	}
	raw, err := c.InvokeModel(ctx, modelID, body)
	if err != nil {
		return "", err
	}
	return ExtractText(modelID, raw)
}
