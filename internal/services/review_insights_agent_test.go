package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripmate/pkg/utils"
)

const insightsReply = `{
	"summary": "Lisbon feels lively and walkable.",
	"love": ["Trams", "Pastries"],
	"complaints": "Steep hills",
	"tips": []
}`

func newReviewServer(t *testing.T, organic func(base string) string) *httptest.Server {
	t.Helper()
	var server *httptest.Server
	mux := http.NewServeMux()
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "google", q.Get("engine"))
		assert.Equal(t, "key", q.Get("api_key"))
		assert.Equal(t, "Lisbon city review travel blog", q.Get("q"))
		assert.Equal(t, "in", q.Get("gl"))
		assert.Equal(t, "6", q.Get("num"))
		writeJSON(w, http.StatusOK, organic(server.URL))
	})
	mux.HandleFunc("/post/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprintf(w, `<html><body><nav>menu</nav><article><h1>%s</h1>
		<p>Great   food
		and views.</p></article></body></html>`, strings.TrimPrefix(r.URL.Path, "/post/"))
	})
	mux.HandleFunc("/broken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	server = httptest.NewServer(mux)
	return server
}

func TestReviewInsightsAgent_Run(t *testing.T) {
	server := newReviewServer(t, func(base string) string {
		return fmt.Sprintf(`{"organic_results": [
			{"link": "https://en.wikipedia.org/wiki/Lisbon", "title": "Wiki"},
			{"link": "%[1]s/post/one", "title": "One"},
			{"link": "%[1]s/broken", "title": "Broken"},
			{"link": "https://www.google.com/maps/place/Lisbon", "title": "Maps"},
			{"link": "%[1]s/post/two", "title": "Two"},
			{"link": "%[1]s/post/three", "title": "Three"},
			{"link": "%[1]s/post/four", "title": "Four"}
		]}`, base)
	})
	defer server.Close()

	invoker := newFakeInvoker(insightsReply)
	agent := NewReviewInsightsAgent(SearchConfig{SerpAPIKey: "key", SerpAPIURL: server.URL + "/search"}, invoker)

	insights, err := agent.Run(context.Background(), "Lisbon")
	require.NoError(t, err)

	assert.Equal(t, "Lisbon", insights.City)
	assert.Equal(t, "Lisbon feels lively and walkable.", insights.Summary)
	assert.Equal(t, []string{"Trams", "Pastries"}, []string(insights.Love))
	assert.Equal(t, []string{"Steep hills"}, []string(insights.Complaints))
	assert.NotNil(t, insights.Tips)
	assert.Empty(t, insights.Tips)

	prompt := invoker.lastPrompt()
	assert.Contains(t, prompt, "one Great food and views.")
	assert.Contains(t, prompt, "two Great food and views.")
	assert.Contains(t, prompt, "three Great food and views.")
	assert.NotContains(t, prompt, "four")
	assert.NotContains(t, prompt, "menu")
	assert.Contains(t, prompt, "\n\n---\n\n")
}

func TestReviewInsightsAgent_NoSources(t *testing.T) {
	server := newReviewServer(t, func(string) string {
		return `{"organic_results": [{"link": "https://en.wikipedia.org/wiki/Lisbon"}]}`
	})
	defer server.Close()

	invoker := newFakeInvoker(insightsReply)
	agent := NewReviewInsightsAgent(SearchConfig{SerpAPIKey: "key", SerpAPIURL: server.URL + "/search"}, invoker)

	insights, err := agent.Run(context.Background(), "Lisbon")
	require.NoError(t, err)

	assert.Equal(t, "Could not find enough recent traveler reviews for Lisbon. Try another city or check back later.", insights.Summary)
	assert.Empty(t, insights.Love)
	assert.Empty(t, insights.Complaints)
	assert.Empty(t, insights.Tips)
	assert.Empty(t, invoker.prompts)
}

func TestReviewInsightsAgent_SummaryRequired(t *testing.T) {
	server := newReviewServer(t, func(base string) string {
		return fmt.Sprintf(`{"organic_results": [{"link": "%s/post/one"}]}`, base)
	})
	defer server.Close()

	agent := NewReviewInsightsAgent(SearchConfig{SerpAPIKey: "key", SerpAPIURL: server.URL + "/search"},
		newFakeInvoker(`{"love": ["x"]}`))

	_, err := agent.Run(context.Background(), "Lisbon")
	assert.ErrorIs(t, err, utils.ErrInvalidAgentResponse)
}

func TestReviewInsightsAgent_MissingKey(t *testing.T) {
	agent := NewReviewInsightsAgent(SearchConfig{}, newFakeInvoker(insightsReply))

	_, err := agent.Run(context.Background(), "Lisbon")
	assert.ErrorIs(t, err, utils.ErrUpstreamTransport)

	_, err = agent.Run(context.Background(), " ")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestExtractArticleText(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{name: "article wins", html: `<body><main>main text</main><article> the   article </article></body>`, want: "the article"},
		{name: "main", html: `<body><p>body</p><main>main
			text</main></body>`, want: "main text"},
		{name: "content id", html: `<body><div id="content">content text</div><p>x</p></body>`, want: "content text"},
		{name: "body", html: `<body><p>just</p><p>body</p></body>`, want: "justbody"},
		{name: "empty article falls through", html: `<body><article>  </article><p>fallback</p></body>`, want: "fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := goquery.NewDocumentFromReader(strings.NewReader("<html>" + tt.html + "</html>"))
			require.NoError(t, err)
			assert.Equal(t, tt.want, ExtractArticleText(doc))
		})
	}
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "héll", truncateRunes("héllo", 4))
	assert.Equal(t, "abc", truncateRunes("abc", 10))
}
