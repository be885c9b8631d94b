// Package dataset fetches the meals document the recipe store is built from.
package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"moodbite/domain"
	"net/http"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gofiber/fiber/v2/log"
)

type (
	// S3GetObjectAPI is the slice of the S3 client the loader needs.
	S3GetObjectAPI interface {
		GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	}

	Loader struct {
		httpClient *http.Client
		s3Client   S3GetObjectAPI
	}
)

// NewLoader builds a loader. s3Client may be nil when no s3:// source is used.
func NewLoader(httpClient *http.Client, s3Client S3GetObjectAPI) *Loader {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Loader{httpClient: httpClient, s3Client: s3Client}
}

// Load reads the dataset at location: an s3://bucket/key URI, an http(s)
// URL, or a file path (optionally file:// prefixed).
func (l *Loader) Load(ctx context.Context, location string) ([]domain.Recipe, error) {
	rc, err := l.open(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrDatasetUnavailable, location, err)
	}
	defer rc.Close()

	recipes, err := Decode(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", location, err)
	}
	log.Infof("loaded %d recipes from %s", len(recipes), location)
	return recipes, nil
}

// Decode parses a {"meals": [...]} document. A missing or null meals key
// is malformed; an empty list is not.
func Decode(r io.Reader) ([]domain.Recipe, error) {
	var ds domain.Dataset
	if err := json.NewDecoder(r).Decode(&ds); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDatasetMalformed, err)
	}
	if ds.Meals == nil {
		return nil, fmt.Errorf("%w: no meals", domain.ErrDatasetMalformed)
	}
	return ds.Meals, nil
}

func (l *Loader) open(ctx context.Context, location string) (io.ReadCloser, error) {
	switch {
	case strings.HasPrefix(location, "s3://"):
		return l.openS3(ctx, location)
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		return l.openHTTP(ctx, location)
	case location == "":
		return nil, domain.ErrUnsupportedSource
	default:
		return os.Open(strings.TrimPrefix(location, "file://"))
	}
}

func (l *Loader) openHTTP(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return resp.Body, nil
}

func (l *Loader) openS3(ctx context.Context, location string) (io.ReadCloser, error) {
	if l.s3Client == nil {
		return nil, fmt.Errorf("%w: s3 client not configured", domain.ErrUnsupportedSource)
	}
	bucket, key, ok := strings.Cut(strings.TrimPrefix(location, "s3://"), "/")
	if !ok || bucket == "" || key == "" {
		return nil, fmt.Errorf("%w: expected s3://bucket/key", domain.ErrUnsupportedSource)
	}

	out, err := l.s3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	return out.Body, nil
}
