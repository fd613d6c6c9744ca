// Package dictionary talks to the Wordnik definitions API. The only thing the
// rest of the service needs from it is the ordered list of senses of a word.
package dictionary

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"wordthink/config"
	"wordthink/pkg/logger"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const maxBodyBytes = 4 << 20

var ErrUnavailable = errors.New("dictionary unavailable")

// Sense is one definition of a word. ID is nil when the source dictionary
// does not assign one.
type Sense struct {
	ID               *string `json:"id,omitempty"`
	Text             string  `json:"text"`
	PartOfSpeech     string  `json:"partOfSpeech,omitempty"`
	SourceDictionary string  `json:"sourceDictionary,omitempty"`
}

type Client struct {
	baseURL string
	apiKey  string
	limit   int
	http    *http.Client
	group   singleflight.Group
}

func NewClient(cfg config.DictionaryConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		limit:   cfg.DefinitionLimit,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

// GetDefinitions returns the senses of word in the order Wordnik lists them.
// An unknown word yields an empty slice, not an error. Concurrent calls for
// the same word share one upstream request, which is not tied to any single
// caller's cancellation; each caller still stops waiting when its own ctx ends.
func (c *Client) GetDefinitions(ctx context.Context, word string) ([]Sense, error) {
	ch := c.group.DoChan(word, func() (interface{}, error) {
		return c.fetchDefinitions(context.WithoutCancel(ctx), word)
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			logger.Log.Debug("dictionary lookup shared", zap.String("word", word))
		}
		return slices.Clone(res.Val.([]Sense)), nil
	}
}

func (c *Client) fetchDefinitions(ctx context.Context, word string) ([]Sense, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(c.limit))
	q.Set("includeRelated", "false")
	q.Set("useCanonical", "false")
	q.Set("includeTags", "false")
	endpoint := fmt.Sprintf("%s/word.json/%s/definitions?%s", c.baseURL, url.PathEscape(word), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	// The key travels as a header so it never shows up in a logged URL.
	req.Header.Set("api_key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Sugar.Errorf("Dictionary request for %q failed: %v", word, err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return []Sense{}, nil
	}
	if resp.StatusCode != http.StatusOK {
		logger.Sugar.Errorf("Dictionary returned %d for %q", resp.StatusCode, word)
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrUnavailable, err)
	}
	return parseSenses(body)
}

func parseSenses(body []byte) ([]Sense, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: malformed response", ErrUnavailable)
	}
	res := gjson.ParseBytes(body)
	if !res.IsArray() {
		return nil, fmt.Errorf("%w: expected a definition list", ErrUnavailable)
	}

	items := res.Array()
	senses := make([]Sense, 0, len(items))
	for _, item := range items {
		s := Sense{
			Text:             item.Get("text").String(),
			PartOfSpeech:     item.Get("partOfSpeech").String(),
			SourceDictionary: item.Get("sourceDictionary").String(),
		}
		if id := item.Get("id"); id.Exists() && id.Type != gjson.Null && id.String() != "" {
			v := id.String()
			s.ID = &v
		}
		senses = append(senses, s)
	}
	return senses, nil
}
