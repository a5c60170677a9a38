package client

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisionClient_ExtractText(t *testing.T) {
	var gotImage string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body struct {
			Images []string `json:"images"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Images, 1)
		gotImage = body.Images[0]

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[[{"text":"EXP: 15/12/2025","confidence":0.97},{"text":"LOT: A2534","confidence":0.91},{"text":"exp: 15/12/2025","confidence":0.5}]]}`))
	}))
	defer server.Close()

	vc := NewVisionClient(server.URL, 5*time.Second)
	text, err := vc.ExtractText(context.Background(), []byte("png-bytes"))
	require.NoError(t, err)

	assert.Equal(t, "EXP: 15/12/2025\nLOT: A2534", text)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("png-bytes")), gotImage)
	assert.Equal(t, "vision", vc.Name())
}

func TestVisionClient_Errors(t *testing.T) {
	t.Run("non 200", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "model not loaded", http.StatusServiceUnavailable)
		}))
		defer server.Close()

		_, err := NewVisionClient(server.URL, time.Second).ExtractText(context.Background(), []byte("x"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "503")
	})

	t.Run("no text", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"results":[[]]}`))
		}))
		defer server.Close()

		_, err := NewVisionClient(server.URL, time.Second).ExtractText(context.Background(), []byte("x"))
		assert.ErrorIs(t, err, ErrVisionEmpty)
	})

	t.Run("cancelled", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"results":[[{"text":"late"}]]}`))
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewVisionClient(server.URL, time.Second).ExtractText(ctx, []byte("x"))
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestMergeLines(t *testing.T) {
	assert.Equal(t, "A\nb", mergeLines([]string{" A ", "", "b", "a", "B"}))
	assert.Empty(t, mergeLines(nil))
}
