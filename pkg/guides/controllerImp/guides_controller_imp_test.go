package controllerImp

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchMainTextExtractsMainContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		io.WriteString(w, `<html><head><title>Growing Peas</title></head>
<body><nav><li>site menu</li></nav>
<main><h1>Growing Peas</h1><p>Sow peas as soon as soil can be worked.</p></main>
</body></html>`)
	}))
	defer srv.Close()

	text, title, err := fetchMainText(srv.URL, 1<<20)
	require.NoError(t, err)
	assert.Equal(t, "Growing Peas", title)
	assert.Contains(t, text, "Sow peas as soon as soil can be worked.")
	assert.NotContains(t, text, "site menu", "content outside main is skipped")
}

// TestFetchMainTextRejectsErrorStatus: an error page from an allowed
// host must not be ingested as a guide.
func TestFetchMainTextRejectsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, "<html><title>Not Found</title><body><p>missing page</p></body></html>")
	}))
	defer srv.Close()

	_, _, err := fetchMainText(srv.URL, 1<<20)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestFetchMainTextRejectsUnsupportedContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		io.WriteString(w, "%PDF-1.4")
	}))
	defer srv.Close()

	_, _, err := fetchMainText(srv.URL, 1<<20)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "content-type")
}

func TestFetchMainTextPlainText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		io.WriteString(w, "Pea Growing Notes\nSow early, pick often.")
	}))
	defer srv.Close()

	text, title, err := fetchMainText(srv.URL, 1<<20)
	require.NoError(t, err)
	assert.Equal(t, "Pea Growing Notes", title)
	assert.Contains(t, text, "pick often")
}
