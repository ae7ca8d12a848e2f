package api

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rpupo63/portfolio-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// multipartForm builds a multipart body from plain fields and optional file
// parts (name -> content).
func multipartForm(t *testing.T, fields map[string][]string, files map[string][]byte) (io.Reader, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, values := range fields {
		for _, value := range values {
			require.NoError(t, writer.WriteField(key, value))
		}
	}
	for name, content := range files {
		part, err := writer.CreateFormFile(name, name)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func decodeHero(t *testing.T, rec *httptest.ResponseRecorder) models.Hero {
	t.Helper()
	var hero models.Hero
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &hero))
	return hero
}

func TestGetHero(t *testing.T) {
	router, _ := newTestRouter(t, &fakeMailer{})

	rec := doJSON(t, router, http.MethodGet, "/hero", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	hero := decodeHero(t, rec)
	assert.Equal(t, models.HeroPlaceholderAvatar, hero.Avatar)
	assert.Equal(t, models.HeroDefaultText, hero.FullName)
}

func TestUpdateHero(t *testing.T) {
	t.Run("merges a JSON partial update", func(t *testing.T) {
		router, _ := newTestRouter(t, &fakeMailer{})

		rec := doJSON(t, router, http.MethodPut, "/hero", map[string]any{
			"fullName": "  Grace Hopper  ",
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		hero := decodeHero(t, rec)
		assert.Equal(t, "Grace Hopper", hero.FullName)
		assert.Equal(t, models.HeroPlaceholderAvatar, hero.Avatar)
	})

	t.Run("truncates a long short description", func(t *testing.T) {
		router, _ := newTestRouter(t, &fakeMailer{})

		rec := doJSON(t, router, http.MethodPut, "/hero", map[string]any{
			"shortDescription": strings.Repeat("x", 300),
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, []rune(decodeHero(t, rec).ShortDescription), models.HeroShortDescriptionMax)
	})

	t.Run("rejects a non-data-URL avatar", func(t *testing.T) {
		router, _ := newTestRouter(t, &fakeMailer{})

		rec := doJSON(t, router, http.MethodPut, "/hero", map[string]any{
			"avatar": "http://x/avatar.png",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("converts an uploaded avatar file to a data URL", func(t *testing.T) {
		router, _ := newTestRouter(t, &fakeMailer{})

		gif := []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00")
		body, contentType := multipartForm(t,
			map[string][]string{"fullName": {"Ada Lovelace"}},
			map[string][]byte{"avatarFile": gif},
		)

		req := httptest.NewRequest(http.MethodPut, "/hero", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		hero := decodeHero(t, rec)
		assert.Equal(t, "Ada Lovelace", hero.FullName)
		assert.True(t, strings.HasPrefix(hero.Avatar, "data:image/gif;base64,"), hero.Avatar)
	})

	t.Run("multipart update keeps omitted fields", func(t *testing.T) {
		router, _ := newTestRouter(t, &fakeMailer{})

		first := doJSON(t, router, http.MethodPut, "/hero", map[string]any{
			"longDescription": "A long story",
		})
		require.Equal(t, http.StatusOK, first.Code)

		body, contentType := multipartForm(t,
			map[string][]string{"fullName": {"Ada"}}, nil,
		)
		req := httptest.NewRequest(http.MethodPut, "/hero", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		hero := decodeHero(t, rec)
		assert.Equal(t, "Ada", hero.FullName)
		assert.Equal(t, "A long story", hero.LongDescription)
	})
}
