package faceid

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddFace_Success(t *testing.T) {
	embedding := []byte{0x01, 0x02, 0x03, 0x04}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/faceid/add_face", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Nguyen Van A", r.FormValue("name"))

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "face.jpg", header.Filename)

		data, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, []byte("fake image bytes"), data)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"embedding_b64":"` + base64.StdEncoding.EncodeToString(embedding) + `"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)

	got, err := client.AddFace(context.Background(), []byte("fake image bytes"), "face.jpg", "Nguyen Van A")
	require.NoError(t, err)
	assert.Equal(t, embedding, got)
}

func TestAddFace_NoFaceDetected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"no face detected"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)

	got, err := client.AddFace(context.Background(), []byte("x"), "face.jpg", "A")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAddFace_MissingEmbeddingField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"ok"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)

	got, err := client.AddFace(context.Background(), []byte("x"), "face.jpg", "A")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAddFace_InvalidBase64(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"embedding_b64":"%%%not-base64%%%"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)

	got, err := client.AddFace(context.Background(), []byte("x"), "face.jpg", "A")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAddFace_ServiceDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewClient(srv.URL, time.Second)

	_, err := client.AddFace(context.Background(), []byte("x"), "face.jpg", "A")
	assert.Error(t, err)
}
