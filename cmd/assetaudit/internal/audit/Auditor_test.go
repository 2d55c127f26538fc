package audit_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/adampresley/adamgokit/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weissgruber/website/cmd/assetaudit/internal/audit"
	"github.com/weissgruber/website/pkg/models"
)

type fakeStatter struct {
	mu      sync.Mutex
	present map[string]bool
	broken  map[string]bool
	calls   []string
}

func (f *fakeStatter) StatObject(bucket, key string) (*s3.ObjectMetadata, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, bucket+"/"+key)

	if f.broken[key] {
		return nil, errors.New("connection reset")
	}

	if f.present[key] {
		return &s3.ObjectMetadata{}, nil
	}

	return nil, nil
}

func sampleArtworks() []models.Artwork {
	return []models.Artwork{
		{
			ID:           "a",
			MainImageRef: "a/main.jpg",
			GalleryImages: []models.GalleryImage{
				{Ref: "a/1.jpg"},
				{Ref: "https://cdn.example.com/a/2.jpg"},
				{Ref: "a/main.jpg"},
			},
		},
		{
			ID:           "b",
			MainImageRef: "/b/main.jpg",
		},
		{
			ID: "c",
		},
	}
}

func TestCollectRefs(t *testing.T) {
	refs := audit.CollectRefs("vitraux/", sampleArtworks())

	require.Len(t, refs, 3)

	assert.Equal(t, audit.AssetRef{ArtworkID: "a", Kind: audit.KindMain, Ref: "a/main.jpg", Key: "vitraux/a/main.jpg"}, refs[0])
	assert.Equal(t, audit.AssetRef{ArtworkID: "a", Kind: audit.KindGallery, Ref: "a/1.jpg", Key: "vitraux/a/1.jpg"}, refs[1])
	assert.Equal(t, "vitraux/b/main.jpg", refs[2].Key)
}

func TestCollectRefsWithoutPrefix(t *testing.T) {
	refs := audit.CollectRefs("", sampleArtworks())

	require.Len(t, refs, 3)
	assert.Equal(t, "a/main.jpg", refs[0].Key)
	assert.Equal(t, "b/main.jpg", refs[2].Key)
}

func TestRunReportsMissingAndFailedAssets(t *testing.T) {
	statter := &fakeStatter{
		present: map[string]bool{"vitraux/a/main.jpg": true},
		broken:  map[string]bool{"vitraux/b/main.jpg": true},
	}

	auditor := audit.NewAuditorService(audit.AuditorConfig{
		Bucket:     "bucket",
		MaxWorkers: 2,
		Prefix:     "vitraux",
		S3Client:   statter,
	})

	report := auditor.Run(sampleArtworks())

	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 3, report.Checked)
	assert.False(t, report.Incomplete)
	assert.False(t, report.OK())
	require.Len(t, report.Missing, 1)
	assert.Equal(t, "vitraux/a/1.jpg", report.Missing[0].Key)
	require.Len(t, report.Failed, 1)
	assert.Equal(t, "b", report.Failed[0].ArtworkID)
	assert.ElementsMatch(t, []string{"bucket/vitraux/a/main.jpg", "bucket/vitraux/a/1.jpg", "bucket/vitraux/b/main.jpg"}, statter.calls)
}

func TestRunWithEverythingPresent(t *testing.T) {
	statter := &fakeStatter{
		present: map[string]bool{
			"vitraux/a/main.jpg": true,
			"vitraux/a/1.jpg":    true,
			"vitraux/b/main.jpg": true,
		},
	}

	auditor := audit.NewAuditorService(audit.AuditorConfig{
		Bucket:   "bucket",
		Prefix:   "vitraux",
		S3Client: statter,
	})

	report := auditor.Run(sampleArtworks())

	assert.True(t, report.OK())
	assert.Empty(t, report.Missing)
}

func TestRunCancelledBeforeFinishingIsNotOK(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	statter := &fakeStatter{
		present: map[string]bool{
			"vitraux/a/main.jpg": true,
			"vitraux/a/1.jpg":    true,
			"vitraux/b/main.jpg": true,
		},
	}

	auditor := audit.NewAuditorService(audit.AuditorConfig{
		Bucket:      "bucket",
		Prefix:      "vitraux",
		S3Client:    statter,
		ShutdownCtx: ctx,
	})

	report := auditor.Run(sampleArtworks())

	assert.Equal(t, 3, report.Total)
	assert.LessOrEqual(t, report.Checked, report.Total)
	assert.True(t, report.Incomplete)
	assert.False(t, report.OK())
	assert.Empty(t, report.Missing)
}

func TestReportOK(t *testing.T) {
	assert.True(t, audit.Report{Total: 1, Checked: 1}.OK())
	assert.False(t, audit.Report{Total: 1, Incomplete: true}.OK())
	assert.False(t, audit.Report{Total: 1, Checked: 1, Missing: []audit.AssetRef{{Key: "k"}}}.OK())
}
