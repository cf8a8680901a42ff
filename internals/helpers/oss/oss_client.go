// internals/helpers/oss/oss_client.go
package helper

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"mime"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

/* =======================================================================
   OSS Service
======================================================================= */

type OSSService struct {
	Client     *oss.Client
	Bucket     *oss.Bucket
	Endpoint   string
	BucketName string
}

func NewOSSServiceFromEnv() (*OSSService, error) {
	endpoint := getEnv("ALI_OSS_ENDPOINT")
	ak := getEnv("ALI_OSS_ACCESS_KEY")
	sk := getEnv("ALI_OSS_SECRET_KEY")
	sts := getEnv("ALI_OSS_SECURITY_TOKEN")
	bucketName := getEnv("ALI_OSS_BUCKET")
	if endpoint == "" || ak == "" || sk == "" || bucketName == "" {
		return nil, fmt.Errorf("missing env: ALI_OSS_ENDPOINT/ACCESS_KEY/SECRET_KEY/BUCKET")
	}

	var (
		client *oss.Client
		err    error
	)
	if sts != "" {
		client, err = oss.New(endpoint, ak, sk, oss.SecurityToken(sts))
	} else {
		client, err = oss.New(endpoint, ak, sk)
	}
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}

	bkt, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}

	if loc, err := client.GetBucketLocation(bucketName); err != nil {
		if se, ok := err.(oss.ServiceError); ok && se.StatusCode == 403 && se.Code == "AccessDenied" {
			log.Printf("[OSS] warn: skip location check due to AccessDenied (bucket=%s). Continuing.", bucketName)
		} else {
			return nil, fmt.Errorf("verify bucket: %w", err)
		}
	} else {
		log.Printf("[OSS] bucket %s location: %s", bucketName, loc)
	}

	return &OSSService{
		Client:     client,
		Bucket:     bkt,
		Endpoint:   endpoint,
		BucketName: bucketName,
	}, nil
}

/* =======================================================================
   Upload / Delete / List
======================================================================= */

func (s *OSSService) UploadStream(ctx context.Context, key string, r io.Reader, contentType string) error {
	if key == "" {
		return fmt.Errorf("empty key")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	opts := []oss.Option{
		oss.WithContext(ctx),
		oss.ContentType(contentType),
		oss.ContentDisposition("inline"),
		oss.CacheControl("public, max-age=31536000, immutable"),
	}
	return s.Bucket.PutObject(key, r, opts...)
}

func (s *OSSService) DeleteObject(ctx context.Context, key string) error {
	return s.Bucket.DeleteObject(key, oss.WithContext(ctx))
}

// ListKeys relit tout le préfixe (le catalogue est toujours relu en entier,
// jamais maintenu de façon incrémentale).
func (s *OSSService) ListKeys(ctx context.Context, prefix string) ([]string, error) {
	prefix = strings.Trim(prefix, "/")
	if prefix != "" {
		prefix += "/"
	}

	keys := make([]string, 0, 64)
	token := ""
	for {
		res, err := s.Bucket.ListObjectsV2(
			oss.Prefix(prefix),
			oss.ContinuationToken(token),
			oss.MaxKeys(1000),
			oss.WithContext(ctx),
		)
		if err != nil {
			return nil, fmt.Errorf("list objects: %w", err)
		}
		for _, obj := range res.Objects {
			if obj.Key == prefix {
				continue
			}
			keys = append(keys, obj.Key)
		}
		if !res.IsTruncated {
			break
		}
		token = res.NextContinuationToken
	}
	return keys, nil
}

/* =======================================================================
   Public URL
======================================================================= */

func (s *OSSService) PublicURL(key string) string {
	if key == "" {
		return ""
	}
	if base := strings.TrimSpace(os.Getenv("ALI_OSS_PUBLIC_BASE")); base != "" {
		return strings.TrimRight(base, "/") + "/" + key
	}
	if s.Endpoint == "" || s.BucketName == "" {
		return ""
	}
	end := s.Endpoint
	end = strings.TrimPrefix(end, "https://")
	end = strings.TrimPrefix(end, "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.BucketName, end, key)
}

/* =======================================================================
   Content type
======================================================================= */

// DetectContentType: extension + sniff 512B, avec override pour les formats modernes
func DetectContentType(src multipart.File, filename string) (string, io.Reader, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	ct := mime.TypeByExtension(ext)

	head := make([]byte, 512)
	n, _ := io.ReadFull(io.LimitReader(src, 512), head)
	if seeker, ok := src.(io.Seeker); ok {
		seeker.Seek(0, io.SeekStart)
	}

	if n > 0 {
		detected := http.DetectContentType(head[:n])
		if ct == "" || ct == "application/octet-stream" {
			ct = detected
		}
	}

	switch ext {
	case ".webp":
		ct = "image/webp"
	case ".svg":
		ct = "image/svg+xml"
	}
	if ct == "" {
		ct = "application/octet-stream"
	}

	if seeker, ok := src.(io.Seeker); ok {
		seeker.Seek(0, io.SeekStart)
		return ct, src, nil
	}
	combined := append([]byte{}, head[:n]...)
	body, _ := io.ReadAll(src)
	combined = append(combined, body...)
	return ct, bytes.NewReader(combined), nil
}

func init() {
	_ = mime.AddExtensionType(".webp", "image/webp")
	_ = mime.AddExtensionType(".svg", "image/svg+xml")
}
