package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchQuotes_ParsesResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"q": "Be here now.", "a": "Ram Dass", "h": "<blockquote>Be here now.</blockquote>"},
			{"q": "Less, but better.", "a": "Dieter Rams", "h": ""}
		]`))
	}))
	defer ts.Close()

	quotes, err := NewQuoteClient(ts.URL).FetchQuotes()
	require.NoError(t, err)
	require.Len(t, quotes, 2)
	assert.Equal(t, Quote{Text: "Be here now.", Author: "Ram Dass"}, quotes[0])
	assert.Equal(t, Quote{Text: "Less, but better.", Author: "Dieter Rams"}, quotes[1])
}

func TestFetchQuotes_SkipsIncompleteItems(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"q": "", "a": "Nobody"},
			{"q": "No author here"},
			{"q": "Kept.", "a": "Someone"}
		]`))
	}))
	defer ts.Close()

	quotes, err := NewQuoteClient(ts.URL).FetchQuotes()
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, Quote{Text: "Kept.", Author: "Someone"}, quotes[0])
}

func TestFetchQuotes_ErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	_, err := NewQuoteClient(ts.URL).FetchQuotes()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quote api returned status 429")
}

func TestFetchQuotes_MalformedBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("service is down"))
	}))
	defer ts.Close()

	_, err := NewQuoteClient(ts.URL).FetchQuotes()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding response")
}

func TestFetchQuotes_Unreachable(t *testing.T) {
	_, err := NewQuoteClient(unreachableAPI).FetchQuotes()
	require.Error(t, err)
}
