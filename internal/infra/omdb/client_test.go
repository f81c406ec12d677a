package omdb

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"movie-search-service/internal/domain"
)

const testBaseURL = "https://omdb.example.com"

func newTestClient() *Client {
	cfg := Config{
		BaseURL: testBaseURL,
		APIKey:  "test-key",
		Timeout: 5 * time.Second,
		CB: CBConfig{
			MaxRequests:  5,
			Interval:     60 * time.Second,
			Timeout:      15 * time.Second,
			FailureRatio: 0.6,
		},
	}
	client := New(cfg, zap.NewNop())

	// Activate httpmock for this client's HTTP transport
	httpmock.ActivateNonDefault(client.client.GetClient())

	return client
}

func mockSearchEnvelope() searchEnvelope {
	return searchEnvelope{
		Response: "True",
		Search: []searchItem{
			{
				Title:  "Stalker",
				Year:   "1979",
				ImdbID: "tt0079944",
				Type:   "movie",
				Poster: "https://img.example/stalker.jpg",
			},
			{
				Title:  "Stalag 17",
				Year:   "1953",
				ImdbID: "tt0046359",
				Type:   "movie",
				Poster: "N/A",
			},
		},
		TotalResults: "2",
	}
}

func TestClient_Search_Success(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", testBaseURL+"/",
		httpmock.NewJsonResponderOrPanic(200, mockSearchEnvelope()))

	client := newTestClient()
	page, err := client.Search(context.Background(), "stal", 1)

	require.NoError(t, err)
	require.Len(t, page.Movies, 2)
	assert.Equal(t, 2, page.Total)

	assert.Equal(t, "tt0079944", page.Movies[0].ImdbID)
	assert.Equal(t, "Stalker", page.Movies[0].Title)
	assert.Equal(t, "1979", page.Movies[0].Year)
	assert.True(t, page.Movies[0].HasPoster())

	assert.Equal(t, "tt0046359", page.Movies[1].ImdbID)
	assert.False(t, page.Movies[1].HasPoster())
}

func TestClient_Search_QueryParams(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	var gotQuery string
	httpmock.RegisterResponder("GET", testBaseURL+"/",
		func(req *http.Request) (*http.Response, error) {
			gotQuery = req.URL.RawQuery

			return httpmock.NewJsonResponse(200, mockSearchEnvelope())
		})

	client := newTestClient()
	_, err := client.Search(context.Background(), "  blade runner ", 2)

	require.NoError(t, err)
	assert.Contains(t, gotQuery, "apikey=test-key")
	assert.Contains(t, gotQuery, "s=blade+runner")
	assert.Contains(t, gotQuery, "page=2")
}

// A Response of "False" is zero results, not an error.
func TestClient_Search_NoResults(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", testBaseURL+"/",
		httpmock.NewJsonResponderOrPanic(200, searchEnvelope{
			Response: "False",
			Error:    "Movie not found!",
		}))

	client := newTestClient()
	page, err := client.Search(context.Background(), "zzzzzz", 1)

	require.NoError(t, err)
	assert.Empty(t, page.Movies)
	assert.Equal(t, 0, page.Total)
}

func TestClient_Search_TotalFallsBackToItemCount(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	tests := []struct {
		name         string
		totalResults string
		expected     int
	}{
		{"missing total", "", 2},
		{"malformed total", "lots", 2},
		{"total below item count", "1", 2},
		{"total trusted when larger", "41", 41},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpmock.Reset()
			env := mockSearchEnvelope()
			env.TotalResults = tt.totalResults
			httpmock.RegisterResponder("GET", testBaseURL+"/",
				httpmock.NewJsonResponderOrPanic(200, env))

			client := newTestClient()
			page, err := client.Search(context.Background(), "stal", 1)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, page.Total)
		})
	}
}

func TestClient_Search_HTTPError(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", testBaseURL+"/",
		httpmock.NewStringResponder(503, "Service Unavailable"))

	client := newTestClient()
	page, err := client.Search(context.Background(), "stal", 1)

	require.Error(t, err)
	assert.Nil(t, page)

	var reqErr *domain.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, 503, reqErr.Status)
}

func TestClient_Search_TransportError(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", testBaseURL+"/",
		httpmock.NewErrorResponder(assert.AnError))

	client := newTestClient()
	page, err := client.Search(context.Background(), "stal", 1)

	require.Error(t, err)
	assert.Nil(t, page)

	var reqErr *domain.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, 0, reqErr.Status)
}

// A cancelled context surfaces as ErrSuperseded, the silent error kind.
func TestClient_Search_Cancelled(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", testBaseURL+"/",
		func(_ *http.Request) (*http.Response, error) {
			time.Sleep(200 * time.Millisecond)

			return httpmock.NewJsonResponse(200, mockSearchEnvelope())
		})

	client := newTestClient()
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	page, err := client.Search(ctx, "stal", 1)

	require.Error(t, err)
	assert.Nil(t, page)
	assert.True(t, domain.IsSuperseded(err))
}

// Cancellations must not count as failures toward opening the breaker.
func TestClient_CircuitBreaker_IgnoresCancellations(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", testBaseURL+"/",
		func(_ *http.Request) (*http.Response, error) {
			time.Sleep(100 * time.Millisecond)

			return httpmock.NewJsonResponse(200, mockSearchEnvelope())
		})

	client := newTestClient()

	for i := 0; i < 5; i++ {
		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			time.Sleep(10 * time.Millisecond)
			cancel()
		}()
		_, err := client.Search(ctx, "stal", 1)
		require.Error(t, err)
		require.True(t, domain.IsSuperseded(err))
	}

	assert.Equal(t, "closed", client.cb.State().String())
}

func TestClient_CircuitBreaker_OpensOnFailures(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", testBaseURL+"/",
		httpmock.NewStringResponder(500, "Internal Server Error"))

	client := newTestClient()

	for i := 0; i < 5; i++ {
		_, err := client.Search(context.Background(), "stal", 1)
		require.Error(t, err)
	}

	// Breaker is open now: the next call fails fast without a network hit.
	before := httpmock.GetTotalCallCount()
	_, err := client.Search(context.Background(), "stal", 1)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "circuit breaker is open")
	assert.Equal(t, before, httpmock.GetTotalCallCount())
}

func TestClient_Detail_Success(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", testBaseURL+"/",
		httpmock.NewJsonResponderOrPanic(200, detailEnvelope{
			Response: "True",
			Title:    "Stalker",
			Year:     "1979",
			Rated:    "Not Rated",
			Runtime:  "162 min",
			Type:     "movie",
			Poster:   "https://img.example/stalker.jpg",
			Plot:     "A guide leads two men through the Zone.",
			ImdbID:   "tt0079944",
		}))

	client := newTestClient()
	detail, err := client.Detail(context.Background(), "tt0079944")

	require.NoError(t, err)
	assert.Equal(t, "Stalker", detail.Title)
	assert.Equal(t, "Not Rated", detail.Rated)
	assert.Equal(t, "162 min", detail.Runtime)
	assert.Equal(t, "1979 · Not Rated · 162 min · MOVIE", detail.DisplayMeta())
}

func TestClient_Detail_NotFound(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", testBaseURL+"/",
		httpmock.NewJsonResponderOrPanic(200, detailEnvelope{
			Response: "False",
			Error:    "Incorrect IMDb ID.",
		}))

	client := newTestClient()
	detail, err := client.Detail(context.Background(), "tt0000000")

	require.Error(t, err)
	assert.Nil(t, detail)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClient_HealthCheck(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", testBaseURL+"/",
		httpmock.NewStringResponder(200, `{"Response":"False","Error":"Something went wrong."}`))

	client := newTestClient()
	assert.NoError(t, client.HealthCheck(context.Background()))

	httpmock.Reset()
	httpmock.RegisterResponder("GET", testBaseURL+"/",
		httpmock.NewStringResponder(503, "down"))

	assert.Error(t, client.HealthCheck(context.Background()))
}
