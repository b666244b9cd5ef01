package checker

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/918apps/indiwtfcheck/internal/core/domain"

	"github.com/rs/zerolog/log"
)

// Indiwtf provides a wrapper for the Indiwtf domain status API.
type Indiwtf struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewIndiwtf(baseURL, token string, timeout time.Duration) *Indiwtf {
	return &Indiwtf{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: timeout},
	}
}

// Check performs one lookup. Transport errors, timeouts and non-2xx
// responses are converted to a result with Err set; no error is returned.
func (c *Indiwtf) Check(ctx context.Context, name string) domain.StatusResult {
	query := url.Values{}
	query.Set("domain", name)
	query.Set("token", c.token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/check?%s", c.baseURL, query.Encode()), nil)
	if err != nil {
		log.Error().Err(err).Str("domain", name).Msg("error creating indiwtf request")
		return domain.StatusResult{Err: err.Error()}
	}

	res, err := c.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("domain", name).Msg("indiwtf request failed")
		return domain.StatusResult{Err: err.Error()}
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		log.Error().Err(err).Str("domain", name).Msg("error reading indiwtf response")
		return domain.StatusResult{Err: err.Error()}
	}

	var result domain.StatusResult
	decodeErr := json.Unmarshal(body, &result)

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		// The API reports failures as an {"error": ...} body; fall back to
		// the status code when there is none.
		msg := result.Err
		if decodeErr != nil || msg == "" {
			msg = fmt.Sprintf("unexpected status code: %d", res.StatusCode)
		}
		log.Error().Str("domain", name).Str("error", msg).Msg("indiwtf check failed")
		return domain.StatusResult{Err: msg}
	}

	if decodeErr != nil {
		log.Error().Err(decodeErr).Str("domain", name).Msg("error decoding indiwtf response")
		return domain.StatusResult{Err: fmt.Sprintf("error decoding response: %s", decodeErr)}
	}

	return result
}
