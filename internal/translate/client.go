package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/talentscout/talentscout/internal/util"
	"go.uber.org/zap"
)

const (
	contentType    = "application/json"
	translatePath  = "/translate"
	defaultTimeout = 10 * time.Second
	previewLimit   = 80
)

// Client talks to a LibreTranslate-compatible HTTP endpoint. Failures never
// surface to the caller: the untranslated text is returned and the degrade
// is logged.
type Client struct {
	HTTPClient *http.Client

	endpoint string
	apiKey   string
	base     string
	logger   *zap.Logger
}

// NewClient creates a translation client for the given endpoint. base is the
// language passthrough target; requests to it short-circuit.
func NewClient(endpoint, apiKey, base string, logger *zap.Logger) *Client {
	if strings.TrimSpace(base) == "" {
		base = BaseLanguage
	}

	return &Client{
		HTTPClient: &http.Client{Timeout: defaultTimeout},
		endpoint:   strings.TrimRight(strings.TrimSpace(endpoint), "/"),
		apiKey:     apiKey,
		base:       base,
		logger:     logger,
	}
}

// Translate implements Translator.
func (c *Client) Translate(ctx context.Context, text, target string) string {
	target = strings.TrimSpace(target)
	if target == "" || target == c.base || strings.TrimSpace(text) == "" {
		return text
	}

	translated, err := c.translate(ctx, text, target)
	if err != nil {
		c.logger.Debug("translation degraded to original text",
			zap.String("target", target),
			zap.String("text_preview", util.TruncateForLog(text, previewLimit)),
			zap.Error(err),
		)
		return text
	}

	return translated
}

type translateRequest struct {
	Query  string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
	Error          string `json:"error,omitempty"`
}

func (c *Client) translate(ctx context.Context, text, target string) (string, error) {
	if c.endpoint == "" {
		return "", fmt.Errorf("translation endpoint is not configured")
	}

	endpoint, err := url.JoinPath(c.endpoint, translatePath)
	if err != nil {
		return "", fmt.Errorf("building translate url: %w", err)
	}

	body, err := json.Marshal(translateRequest{
		Query:  text,
		Source: "auto",
		Target: target,
		Format: "text",
		APIKey: c.apiKey,
	})
	if err != nil {
		return "", fmt.Errorf("marshal translate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var decoded translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode translate response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := decoded.Error
		if msg == "" {
			msg = resp.Status
		}
		return "", fmt.Errorf("translate request failed: %s", msg)
	}

	translated := strings.TrimSpace(decoded.TranslatedText)
	if translated == "" {
		return "", fmt.Errorf("translate response is empty")
	}

	return translated, nil
}
