package scraper

import (
	"context"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"webrag-api/internal/domain/entity"
)

const (
	userAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	maxBodyBytes   = 10 << 20
	minContentSize = 100
)

// noise elements removed before text extraction
var blockPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`),
	regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style>`),
	regexp.MustCompile(`(?is)<nav\b[^>]*>.*?</nav>`),
	regexp.MustCompile(`(?is)<header\b[^>]*>.*?</header>`),
	regexp.MustCompile(`(?is)<footer\b[^>]*>.*?</footer>`),
	regexp.MustCompile(`(?is)<aside\b[^>]*>.*?</aside>`),
}

// main-content candidates, tried in order before falling back to <body>
var contentPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)<article\b[^>]*>(.*?)</article>`),
	regexp.MustCompile(`(?is)<main\b[^>]*>(.*?)</main>`),
	regexp.MustCompile(`(?is)<body\b[^>]*>(.*?)</body>`),
}

var (
	commentPattern = regexp.MustCompile(`(?s)<!--.*?-->`)
	tagPattern     = regexp.MustCompile(`(?s)<[^>]*>`)
	titlePattern   = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	h1Pattern      = regexp.MustCompile(`(?is)<h1[^>]*>(.*?)</h1>`)
	spacePattern   = regexp.MustCompile(`\s+`)
)

// Scraper fetches a web page and reduces it to a title and cleaned text.
type Scraper struct {
	client *http.Client
}

func New(timeout time.Duration) *Scraper {
	return &Scraper{
		client: &http.Client{Timeout: timeout},
	}
}

func (s *Scraper) Scrape(ctx context.Context, rawURL string) (*entity.ScrapedContent, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &entity.FetchError{URL: rawURL, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &entity.FetchError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, &entity.FetchError{URL: rawURL, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &entity.FetchError{URL: rawURL, Err: err}
	}

	page := commentPattern.ReplaceAllString(string(body), " ")
	title := extractTitle(page)

	for _, pattern := range blockPatterns {
		page = pattern.ReplaceAllString(page, " ")
	}

	content := cleanText(extractContent(page))
	if len(content) < minContentSize {
		return nil, &entity.FetchError{URL: rawURL, Err: errors.New("page content too short or empty")}
	}

	return &entity.ScrapedContent{
		URL:       rawURL,
		Title:     title,
		Content:   content,
		Timestamp: time.Now().UTC(),
	}, nil
}

func extractTitle(page string) string {
	if groups := titlePattern.FindStringSubmatch(page); groups != nil {
		if title := cleanText(stripTags(groups[1])); title != "" {
			return title
		}
	}
	if groups := h1Pattern.FindStringSubmatch(page); groups != nil {
		if title := cleanText(stripTags(groups[1])); title != "" {
			return title
		}
	}
	return "Başlık bulunamadı"
}

func extractContent(page string) string {
	for _, pattern := range contentPatterns {
		if groups := pattern.FindStringSubmatch(page); groups != nil {
			return stripTags(groups[1])
		}
	}
	return stripTags(page)
}

func stripTags(fragment string) string {
	return html.UnescapeString(tagPattern.ReplaceAllString(fragment, " "))
}

func cleanText(text string) string {
	return strings.TrimSpace(spacePattern.ReplaceAllString(text, " "))
}
