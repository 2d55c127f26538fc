package services

import (
	"fmt"
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"github.com/adampresley/adamgokit/s3"
	"github.com/adampresley/adamgokit/s3/listoptions"
	"github.com/adampresley/adamgokit/slices"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".webp", ".avif"}

type AssetServicer interface {
	AssetChecker
	Refresh() error
	Count() int
}

type AssetServiceConfig struct {
	Bucket   string
	Prefix   string
	S3Client s3.S3Client
}

/*
AssetService keeps the set of image keys present under a bucket prefix so
the loader can swap missing images for a placeholder. Refresh is called
once during startup, before the catalogue is loaded.
*/
type AssetService struct {
	bucket   string
	prefix   string
	s3Client s3.S3Client
	keys     map[string]struct{}
}

func NewAssetService(config AssetServiceConfig) *AssetService {
	return &AssetService{
		bucket:   config.Bucket,
		prefix:   strings.Trim(config.Prefix, "/"),
		s3Client: config.S3Client,
		keys:     map[string]struct{}{},
	}
}

func (s *AssetService) Refresh() error {
	var (
		err      error
		response s3.ListResponse
	)

	response, err = s.s3Client.List(
		s.bucket,
		s.prefix,
		listoptions.WithGetAll(),
		listoptions.WithFilter(func(obj types.Object) bool {
			ext := strings.ToLower(filepath.Ext(aws.ToString(obj.Key)))
			return slices.IsInSlice(ext, imageExtensions)
		}),
	)

	if err != nil {
		return fmt.Errorf("error listing image assets in '%s/%s': %w", s.bucket, s.prefix, err)
	}

	keys := make(map[string]struct{}, len(response.Objects))

	for _, obj := range response.Objects {
		keys[obj.Key] = struct{}{}
	}

	s.keys = keys

	slog.Info("image asset index refreshed", "bucket", s.bucket, "prefix", s.prefix, "numAssets", len(keys))
	return nil
}

func (s *AssetService) Count() int {
	return len(s.keys)
}

// Exists reports whether a relative reference is present under the prefix.
func (s *AssetService) Exists(ref string) bool {
	if IsAbsoluteURL(ref) {
		return true
	}

	_, ok := s.keys[AssetKey(s.prefix, ref)]
	return ok
}

// AssetKey is the object key of a relative image reference under prefix.
func AssetKey(prefix, ref string) string {
	return strings.TrimLeft(path.Join(strings.Trim(prefix, "/"), strings.TrimLeft(ref, "/")), "/")
}
