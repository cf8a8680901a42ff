package service

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileTypeOf(t *testing.T) {
	cases := []struct {
		name string
		want MediaType
	}{
		{"photo.png", MediaImage},
		{"photo.JPG", MediaImage},
		{"scan.jpeg", MediaImage},
		{"anim.gif", MediaImage},
		{"banner.webp", MediaImage},
		{"clip.mp4", MediaVideo},
		{"clip.WEBM", MediaVideo},
		{"audio.ogg", MediaVideo},
		{"doc.pdf", MediaPDF},
		{"doc.PDF", MediaPDF},
		{"archive.zip", MediaOther},
		{"sansextension", MediaOther},
		{"", MediaOther},
	}
	for _, c := range cases {
		assert.Equalf(t, c.want, FileTypeOf(c.name), "name=%q", c.name)
	}
}

func TestBuildObjectName(t *testing.T) {
	got := BuildObjectName("Rapport Final.PDF")
	assert.True(t, strings.HasSuffix(got, ".pdf"))
	assert.NotEqual(t, "Rapport Final.PDF", got)
	assert.NotContains(t, got, " ")

	// deux uploads du même fichier ne se heurtent jamais
	assert.NotEqual(t, BuildObjectName("a.png"), BuildObjectName("a.png"))

	// sans extension: nom nu
	assert.Empty(t, filepath.Ext(BuildObjectName("LISEZMOI")))
}

func TestThumbKey(t *testing.T) {
	assert.Equal(t, "media/thumbs/logo.webp", thumbKey("logo.png"))
	assert.Equal(t, "media/thumbs/photo.webp", thumbKey("photo.jpeg"))
}
