package llm

import (
	"context"
	"fmt"
	log "log/slog"
	"net/url"
	"strings"
	"time"

	"mysonai/internal/api/config"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	readability "github.com/go-shiori/go-readability"
)

const toolUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// WebTools fetches external context: search snippets for chat requests with
// web search enabled, and full article text for the auto-blog generator.
type WebTools struct {
	httpClient *resty.Client
}

func NewWebTools() *WebTools {
	client := resty.New().
		SetTimeout(20 * time.Second).
		SetHeader("User-Agent", toolUserAgent)

	if gw := config.Cfg.LLM.SearchGateway; gw != "" {
		client.SetProxy(gw)
	}

	return &WebTools{httpClient: client}
}

// Search runs a query against the HTML search endpoint and returns the top
// result snippets as a single context block. Failures degrade to "".
func (s *WebTools) Search(ctx context.Context, query string, maxResults int) string {
	resp, err := s.httpClient.R().
		SetContext(ctx).
		SetQueryParam("q", query).
		Get("https://html.duckduckgo.com/html/")
	if err != nil {
		log.WarnContext(ctx, "web search failed", "query", query, "err", err)
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(resp.String()))
	if err != nil {
		return ""
	}

	var builder strings.Builder
	count := 0
	doc.Find(".result").Each(func(i int, sel *goquery.Selection) {
		if count >= maxResults {
			return
		}
		title := strings.TrimSpace(sel.Find(".result__title").Text())
		snippet := strings.TrimSpace(sel.Find(".result__snippet").Text())
		if title == "" {
			return
		}
		builder.WriteString(fmt.Sprintf("- %s: %s\n", title, snippet))
		count++
	})

	return builder.String()
}

// FetchArticle downloads a page and extracts its readable text.
func (s *WebTools) FetchArticle(ctx context.Context, rawURL string) (string, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid source url: %w", err)
	}

	resp, err := s.httpClient.R().SetContext(ctx).Get(rawURL)
	if err != nil {
		return "", err
	}

	article, err := readability.FromReader(strings.NewReader(resp.String()), parsedURL)
	if err != nil {
		return "", fmt.Errorf("failed to extract article: %w", err)
	}

	text := article.TextContent
	if len(text) > 8000 {
		text = text[:8000]
	}
	return text, nil
}
