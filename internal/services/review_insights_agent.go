package services

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"tripmate/internal/models/response_models"
	"tripmate/pkg/utils"
)

const (
	maxReviewSources    = 4
	maxSourceChars      = 15000
	maxContextChars     = 30000
	reviewSourceDivider = "\n\n---\n\n"
	browserUserAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"
)

var excludedReviewLinks = []string{"wikipedia.org", "google.com/maps", "tripadvisor.in/Flights"}

var whitespaceRun = regexp.MustCompile(`\s+`)

type SearchConfig struct {
	SerpAPIKey string
	SerpAPIURL string
	Timeout    time.Duration
}

type ReviewSource struct {
	URL   string
	Title string
}

type ReviewInsightsAgentInterface interface {
	Run(ctx context.Context, city string) (response_models.ReviewInsights, error)
}

type ReviewInsightsAgent struct {
	cfg     SearchConfig
	client  *resty.Client
	invoker utils.ModelInvokerInterface
}

func NewReviewInsightsAgent(cfg SearchConfig, invoker utils.ModelInvokerInterface) ReviewInsightsAgentInterface {
	if cfg.SerpAPIURL == "" {
		cfg.SerpAPIURL = "https://serpapi.com/search"
	}
	client := resty.New().SetHeader("User-Agent", browserUserAgent)
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}
	return &ReviewInsightsAgent{cfg: cfg, client: client, invoker: invoker}
}

func notEnoughReviews(city string) response_models.ReviewInsights {
	return response_models.ReviewInsights{
		City:       city,
		Summary:    fmt.Sprintf("Could not find enough recent traveler reviews for %s. Try another city or check back later.", city),
		Love:       response_models.StringList{},
		Complaints: response_models.StringList{},
		Tips:       response_models.StringList{},
	}
}

func (a *ReviewInsightsAgent) Run(ctx context.Context, city string) (response_models.ReviewInsights, error) {
	if strings.TrimSpace(city) == "" {
		return response_models.ReviewInsights{}, utils.InvalidInput("city is required")
	}

	sources, err := a.findSources(ctx, city)
	if err != nil {
		return response_models.ReviewInsights{}, err
	}
	log.Debug().Str("city", city).Int("sources", len(sources)).Msg("review sources found")
	if len(sources) == 0 {
		return notEnoughReviews(city), nil
	}

	texts := a.fetchTexts(ctx, sources)
	if strings.TrimSpace(strings.Join(texts, "")) == "" {
		return notEnoughReviews(city), nil
	}
	merged := truncateRunes(strings.Join(texts, reviewSourceDivider), maxContextChars)

	raw, err := requestObject(ctx, a.invoker, "ReviewInsightsAgent", reviewPrompt(city, merged), reviewSystemInstruction)
	if err != nil {
		return response_models.ReviewInsights{}, err
	}

	var payload struct {
		Summary    response_models.Text       `json:"summary"`
		Love       response_models.StringList `json:"love"`
		Complaints response_models.StringList `json:"complaints"`
		Tips       response_models.StringList `json:"tips"`
	}
	_ = json.Unmarshal(raw, &payload)
	if strings.TrimSpace(string(payload.Summary)) == "" {
		return response_models.ReviewInsights{}, utils.InvalidAgentResponse("ReviewInsightsAgent", "summary is required")
	}

	return response_models.ReviewInsights{
		City:       city,
		Summary:    string(payload.Summary),
		Love:       response_models.OrEmpty(payload.Love),
		Complaints: response_models.OrEmpty(payload.Complaints),
		Tips:       response_models.OrEmpty(payload.Tips),
	}, nil
}

func (a *ReviewInsightsAgent) findSources(ctx context.Context, city string) ([]ReviewSource, error) {
	if a.cfg.SerpAPIKey == "" {
		return nil, utils.Classify(utils.ErrUpstreamTransport, errors.New("SERPAPI_KEY is not set"))
	}

	var result struct {
		OrganicResults []struct {
			Link  string `json:"link"`
			Title string `json:"title"`
		} `json:"organic_results"`
	}
	resp, err := a.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"engine":        "google",
			"api_key":       a.cfg.SerpAPIKey,
			"q":             city + " city review travel blog",
			"hl":            "en",
			"num":           "6",
			"location":      "India",
			"google_domain": "google.co.in",
			"gl":            "in",
		}).
		SetResult(&result).
		Get(a.cfg.SerpAPIURL)
	if err != nil {
		return nil, utils.Classify(utils.ErrUpstreamTransport, errors.Wrap(err, "search request"))
	}
	if resp.IsError() {
		return nil, utils.Classify(utils.ErrUpstreamTransport, fmt.Errorf("SerpApi error %d: %s", resp.StatusCode(), resp.String()))
	}

	sources := make([]ReviewSource, 0, maxReviewSources)
	for _, r := range result.OrganicResults {
		if r.Link == "" || isExcludedLink(r.Link) {
			continue
		}
		sources = append(sources, ReviewSource{URL: r.Link, Title: r.Title})
		if len(sources) == maxReviewSources {
			break
		}
	}
	return sources, nil
}

func isExcludedLink(link string) bool {
	for _, excluded := range excludedReviewLinks {
		if strings.Contains(link, excluded) {
			return true
		}
	}
	return false
}

// fetchTexts downloads every source concurrently. A failed page contributes
// an empty string.
func (a *ReviewInsightsAgent) fetchTexts(ctx context.Context, sources []ReviewSource) []string {
	texts := make([]string, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		g.Go(func() error {
			text, err := a.fetchText(gctx, src.URL)
			if err != nil {
				log.Warn().Err(err).Str("url", src.URL).Msg("review source fetch failed")
				return nil
			}
			texts[i] = text
			return nil
		})
	}
	_ = g.Wait()
	return texts
}

func (a *ReviewInsightsAgent) fetchText(ctx context.Context, url string) (string, error) {
	resp, err := a.client.R().SetContext(ctx).SetDoNotParseResponse(true).Get(url)
	if err != nil {
		return "", err
	}
	body := resp.RawBody()
	defer body.Close()
	if resp.IsError() {
		return "", fmt.Errorf("status %d", resp.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return "", err
	}
	return ExtractArticleText(doc), nil
}

// ExtractArticleText returns the text of the first non-empty article, main,
// #content or body element, whitespace-collapsed and truncated.
func ExtractArticleText(doc *goquery.Document) string {
	var text string
	for _, selector := range []string{"article", "main", "#content", "body"} {
		text = strings.TrimSpace(doc.Find(selector).Text())
		if text != "" {
			break
		}
	}
	text = whitespaceRun.ReplaceAllString(text, " ")
	return truncateRunes(strings.TrimSpace(text), maxSourceChars)
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

const reviewSystemInstruction = `You are a travel review analyst.
You read recent blog posts and city review articles about destinations.
Your job is to extract a realistic, balanced picture of what visitors
are saying right now. You must ALWAYS return STRICTLY valid JSON and
no extra text outside JSON.`

func reviewPrompt(city, context string) string {
	return fmt.Sprintf(`
Return ONLY valid JSON. Do not include any explanation text before or after.

CITY: %[1]s

CONTEXT FROM RECENT BLOGS AND CITY REVIEW POSTS:
%[2]s

TASKS:
1. Write a 2–3 paragraph overview that captures the current vibe of %[1]s
   for visitors (tone: neutral but practical).
2. Then produce 3 sections of bullet points:
   - "What people love" (3–5 bullets)
   - "Common complaints" (3–5 bullets)
   - "Tips from recent visitors" (3–5 bullets)
3. Use relative time phrases like "recently" or "in the last few years"
   instead of exact dates.
4. Ignore personal names and private details; focus on places, logistics,
   pros/cons, and experience.

JSON SHAPE:

{
  "summary": "2–3 paragraph natural-language overview.",
  "love": ["bullet 1", "bullet 2", "..."],
  "complaints": ["bullet 1", "bullet 2", "..."],
  "tips": ["bullet 1", "bullet 2", "..."]
}
`, city, context)
}
