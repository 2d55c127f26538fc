package audit

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/adampresley/adamgokit/s3"
	"github.com/alitto/pond/v2"
	"github.com/weissgruber/website/pkg/models"
	"github.com/weissgruber/website/pkg/services"
)

const (
	KindMain    = "main"
	KindGallery = "gallery"
)

/*
ObjectStatter is the part of the S3 client the audit needs. StatObject
returns nil metadata when the object does not exist.
*/
type ObjectStatter interface {
	StatObject(bucket, key string) (*s3.ObjectMetadata, error)
}

type Auditor interface {
	Run(artworks []models.Artwork) Report
}

type AuditorConfig struct {
	Bucket      string
	MaxWorkers  int
	Prefix      string
	S3Client    ObjectStatter
	ShutdownCtx context.Context
}

type AuditorService struct {
	bucket      string
	maxWorkers  int
	prefix      string
	s3Client    ObjectStatter
	shutdownCtx context.Context
}

// AssetRef is one relative image reference of an artwork.
type AssetRef struct {
	ArtworkID string
	Kind      string
	Ref       string
	Key       string
}

/*
Report is the outcome of an audit. Checked counts the refs actually
stat'ed, out of Total. A run cut short by shutdown is Incomplete and is
never OK.
*/
type Report struct {
	Total      int
	Checked    int
	Incomplete bool
	Missing    []AssetRef
	Failed     []AssetRef
}

func (r Report) OK() bool {
	return !r.Incomplete && len(r.Missing) == 0 && len(r.Failed) == 0
}

func NewAuditorService(config AuditorConfig) AuditorService {
	workers := config.MaxWorkers

	if workers < 1 {
		workers = 1
	}

	ctx := config.ShutdownCtx

	if ctx == nil {
		ctx = context.Background()
	}

	return AuditorService{
		bucket:      config.Bucket,
		maxWorkers:  workers,
		prefix:      config.Prefix,
		s3Client:    config.S3Client,
		shutdownCtx: ctx,
	}
}

/*
Run stats every relative image reference of the catalogue. Each missing
object is logged with the artwork it belongs to.
*/
func (a AuditorService) Run(artworks []models.Artwork) Report {
	var (
		mu     sync.Mutex
		report Report
	)

	refs := CollectRefs(a.prefix, artworks)
	report.Total = len(refs)

	slog.Info("starting asset audit...", "bucket", a.bucket, "prefix", a.prefix, "numRefs", len(refs), "workers", a.maxWorkers)

	pool := pond.NewPool(a.maxWorkers, pond.WithContext(a.shutdownCtx))

	for _, ref := range refs {
		pool.Submit(func() {
			stat, err := a.s3Client.StatObject(a.bucket, ref.Key)

			mu.Lock()
			defer mu.Unlock()

			report.Checked++

			if err != nil {
				slog.Error("error retrieving metadata for asset", "artworkID", ref.ArtworkID, "key", ref.Key, "error", err)
				report.Failed = append(report.Failed, ref)
				return
			}

			if stat == nil {
				slog.Warn("asset missing", "artworkID", ref.ArtworkID, "kind", ref.Kind, "ref", ref.Ref, "key", ref.Key)
				report.Missing = append(report.Missing, ref)
			}
		})
	}

	_ = pool.Stop().Wait()

	mu.Lock()
	defer mu.Unlock()

	if err := a.shutdownCtx.Err(); err != nil || report.Checked < report.Total {
		slog.Warn("asset audit stopped before finishing", "checked", report.Checked, "total", report.Total, "error", err)
		report.Incomplete = true
	}

	sortRefs(report.Missing)
	sortRefs(report.Failed)

	return report
}

/*
CollectRefs lists the relative main and gallery image references of
every artwork, in catalogue order. Absolute URLs are skipped since they
live outside the bucket. A key referenced twice by one artwork is
listed once.
*/
func CollectRefs(prefix string, artworks []models.Artwork) []AssetRef {
	result := []AssetRef{}

	for _, artwork := range artworks {
		seen := map[string]struct{}{}

		add := func(kind, ref string) {
			if ref == "" || services.IsAbsoluteURL(ref) {
				return
			}

			key := services.AssetKey(prefix, ref)

			if _, ok := seen[key]; ok {
				return
			}

			seen[key] = struct{}{}
			result = append(result, AssetRef{ArtworkID: artwork.ID, Kind: kind, Ref: ref, Key: key})
		}

		add(KindMain, artwork.MainImageRef)

		for _, image := range artwork.GalleryImages {
			add(KindGallery, image.Ref)
		}
	}

	return result
}

func sortRefs(refs []AssetRef) {
	slices.SortStableFunc(refs, func(a, b AssetRef) int {
		return cmp.Or(cmp.Compare(a.ArtworkID, b.ArtworkID), cmp.Compare(a.Key, b.Key))
	})
}
