// internals/features/media/service/media_service.go
package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"nexdeal_backend/internals/constants"
	ossHelper "nexdeal_backend/internals/helpers/oss"
)

/* =========================
   Classification par extension
   ========================= */

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
	MediaPDF   MediaType = "pdf"
	MediaOther MediaType = "other"
)

// FileTypeOf: fonction pure du nom de fichier, extension insensible à la casse.
func FileTypeOf(name string) MediaType {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	switch ext {
	case "png", "jpg", "jpeg", "gif", "webp":
		return MediaImage
	case "mp4", "webm", "ogg":
		return MediaVideo
	case "pdf":
		return MediaPDF
	default:
		return MediaOther
	}
}

// BuildObjectName: nom aléatoire résistant aux collisions, distinct du nom
// d'origine, extension d'origine préservée.
func BuildObjectName(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	return uuid.NewString() + ext
}

/* =========================
   Service
   ========================= */

const maxUploadSize = int64(50 * 1024 * 1024)

const (
	thumbMaxW = 480
	thumbMaxH = 480
)

var (
	ErrFileTooLarge = errors.New("fichier trop volumineux")
	ErrBadName      = errors.New("nom d'objet invalide")
)

type MediaFile struct {
	Name     string    `json:"name"`
	URL      string    `json:"url"`
	Type     MediaType `json:"type"`
	ThumbURL string    `json:"thumb_url,omitempty"`
}

type MediaService struct {
	OSS *ossHelper.OSSService
}

func NewMediaService() (*MediaService, error) {
	svc, err := ossHelper.NewOSSServiceFromEnv()
	if err != nil {
		return nil, err
	}
	return &MediaService{OSS: svc}, nil
}

func mediaKey(name string) string { return constants.MediaDir + "/" + name }

func thumbKey(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return constants.MediaThumbDir + "/" + base + ".webp"
}

// List relit le catalogue en entier à chaque appel (jamais de maintien incrémental).
func (s *MediaService) List(ctx context.Context) ([]MediaFile, error) {
	keys, err := s.OSS.ListKeys(ctx, constants.MediaDir)
	if err != nil {
		return nil, err
	}

	files := make([]MediaFile, 0, len(keys))
	for _, key := range keys {
		if strings.HasPrefix(key, constants.MediaThumbDir+"/") {
			continue
		}
		name := strings.TrimPrefix(key, constants.MediaDir+"/")
		f := MediaFile{
			Name: name,
			URL:  s.OSS.PublicURL(key),
			Type: FileTypeOf(name),
		}
		if f.Type == MediaImage {
			f.ThumbURL = s.OSS.PublicURL(thumbKey(name))
		}
		files = append(files, f)
	}
	return files, nil
}

func (s *MediaService) Upload(ctx context.Context, fh *multipart.FileHeader) (MediaFile, error) {
	if fh == nil {
		return MediaFile{}, fmt.Errorf("nil file header")
	}
	if fh.Size > maxUploadSize {
		return MediaFile{}, ErrFileTooLarge
	}

	src, err := fh.Open()
	if err != nil {
		return MediaFile{}, fmt.Errorf("open file: %w", err)
	}
	defer src.Close()

	ct, rd, err := ossHelper.DetectContentType(src, fh.Filename)
	if err != nil {
		return MediaFile{}, err
	}
	all, err := io.ReadAll(rd)
	if err != nil {
		return MediaFile{}, err
	}

	name := BuildObjectName(fh.Filename)
	key := mediaKey(name)
	if err := s.OSS.UploadStream(ctx, key, bytes.NewReader(all), ct); err != nil {
		return MediaFile{}, err
	}

	f := MediaFile{
		Name: name,
		URL:  s.OSS.PublicURL(key),
		Type: FileTypeOf(name),
	}

	// Vignette webp pour les images; son échec n'invalide pas l'upload.
	if f.Type == MediaImage {
		if thumb, err := ossHelper.MakeWebPThumb(all, fh.Filename, thumbMaxW, thumbMaxH); err != nil {
			log.Printf("[MEDIA] vignette ignorée pour %s: %v", name, err)
		} else if err := s.OSS.UploadStream(ctx, thumbKey(name), bytes.NewReader(thumb), "image/webp"); err != nil {
			log.Printf("[MEDIA] upload vignette %s: %v", name, err)
		} else {
			f.ThumbURL = s.OSS.PublicURL(thumbKey(name))
		}
	}

	return f, nil
}

func (s *MediaService) Delete(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" || strings.Contains(name, "/") || strings.Contains(name, "..") {
		return ErrBadName
	}
	if err := s.OSS.DeleteObject(ctx, mediaKey(name)); err != nil {
		return err
	}
	// Vignette: suppression best-effort
	if FileTypeOf(name) == MediaImage {
		if err := s.OSS.DeleteObject(ctx, thumbKey(name)); err != nil {
			log.Printf("[MEDIA] suppression vignette %s: %v", name, err)
		}
	}
	return nil
}
