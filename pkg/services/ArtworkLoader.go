package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/weissgruber/website/pkg/models"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
)

var (
	ErrSourceUnavailable = fmt.Errorf("artwork source unavailable")
	ErrInvalidGallery    = fmt.Errorf("invalid gallery images")
)

/*
AssetChecker reports whether a relative image reference exists in the
object store. Absolute references are never checked.
*/
type AssetChecker interface {
	Exists(ref string) bool
}

type ArtworkLoaderServicer interface {
	Load(ctx context.Context) ([]models.Artwork, error)
	Parse(r io.Reader) ([]models.Artwork, error)
}

type ArtworkLoaderConfig struct {
	AssetChecker        AssetChecker
	Bucket              *blob.Bucket
	GalleryImageBaseURL string
	MainImageBaseURL    string
	PlaceholderImageURL string
	SourceKey           string
	SourceURL           string
}

type ArtworkLoader struct {
	assetChecker        AssetChecker
	bucket              *blob.Bucket
	galleryImageBaseURL string
	mainImageBaseURL    string
	placeholderImageURL string
	sourceKey           string
	sourceURL           string
}

func NewArtworkLoader(config ArtworkLoaderConfig) ArtworkLoader {
	return ArtworkLoader{
		assetChecker:        config.AssetChecker,
		bucket:              config.Bucket,
		galleryImageBaseURL: config.GalleryImageBaseURL,
		mainImageBaseURL:    config.MainImageBaseURL,
		placeholderImageURL: config.PlaceholderImageURL,
		sourceKey:           config.SourceKey,
		sourceURL:           config.SourceURL,
	}
}

/*
Load reads the whole catalogue source. Any failure to reach or read the
source is fatal and wraps ErrSourceUnavailable. Problems with individual
rows are logged and never abort the load.
*/
func (s ArtworkLoader) Load(ctx context.Context) ([]models.Artwork, error) {
	var (
		err    error
		bucket *blob.Bucket
		reader *blob.Reader
	)

	if bucket = s.bucket; bucket == nil {
		if bucket, err = openSourceBucket(ctx, s.sourceURL); err != nil {
			return nil, fmt.Errorf("%w: error opening '%s': %w", ErrSourceUnavailable, s.sourceURL, err)
		}

		defer bucket.Close()
	}

	if reader, err = bucket.NewReader(ctx, s.sourceKey, nil); err != nil {
		return nil, fmt.Errorf("%w: error opening '%s': %w", ErrSourceUnavailable, s.sourceKey, err)
	}

	defer reader.Close()

	return s.Parse(reader)
}

func openSourceBucket(ctx context.Context, sourceURL string) (*blob.Bucket, error) {
	if strings.Contains(sourceURL, "://") {
		return blob.OpenBucket(ctx, sourceURL)
	}

	return fileblob.OpenBucket(sourceURL, nil)
}

/*
Parse decodes CSV text with a header row into artworks, in row order.
*/
func (s ArtworkLoader) Parse(r io.Reader) ([]models.Artwork, error) {
	var (
		err    error
		header []string
		record []string
	)

	result := []models.Artwork{}
	seen := map[string]int{}

	csvReader := csv.NewReader(r)
	csvReader.FieldsPerRecord = -1
	csvReader.LazyQuotes = true

	if header, err = csvReader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return result, nil
		}

		return nil, fmt.Errorf("%w: error reading header: %w", ErrSourceUnavailable, err)
	}

	columns := normalizeHeader(header)

	for {
		record, err = csvReader.Read()

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			var parseErr *csv.ParseError

			if errors.As(err, &parseErr) {
				slog.Warn("skipping malformed row", "line", parseErr.StartLine, "error", err)
				continue
			}

			return nil, fmt.Errorf("%w: error reading rows: %w", ErrSourceUnavailable, err)
		}

		line, _ := csvReader.FieldPos(0)
		row := toRow(columns, record)

		if row["id"] == "" {
			if !isBlankRow(record) {
				slog.Warn("skipping row without id", "line", line)
			}

			continue
		}

		if firstLine, ok := seen[row["id"]]; ok {
			slog.Warn("skipping duplicate artwork id", "id", row["id"], "line", line, "firstLine", firstLine)
			continue
		}

		seen[row["id"]] = line
		result = append(result, s.decodeRow(row, line))
	}

	return result, nil
}

func (s ArtworkLoader) decodeRow(row map[string]string, line int) models.Artwork {
	var (
		err error
	)

	year, _ := parseYear(row["year"])

	artwork := models.Artwork{
		ID:                 row["id"],
		Year:               year,
		YearText:           row["year"],
		BuildingName:       row["building_name"],
		BuildingType:       row["building_type"],
		City:               row["city"],
		Department:         row["department"],
		LocationInBuilding: row["location_in_building"],
		TitleFr:            row["title_fr"],
		MainImageRef:       row["main_image"],
		CaptionFr:          row["caption_fr"],
		DescriptionFr:      row["description_fr"],
		TextFr:             row["text_fr"],
		MapsURL:            row["maps_url"],
		Lat:                row["lat"],
		Lng:                row["lng"],
	}

	if artwork.GalleryImages, err = DecodeGalleryImages(row["gallery_images"]); err != nil {
		slog.Warn("error decoding gallery images, using an empty gallery", "id", artwork.ID, "line", line, "error", err)
	}

	artwork.MainImageURL = s.imageURL(s.mainImageBaseURL, artwork.MainImageRef)

	for index := range artwork.GalleryImages {
		artwork.GalleryImages[index].URL = s.imageURL(s.galleryImageBaseURL, artwork.GalleryImages[index].Ref)
	}

	return artwork
}

func (s ArtworkLoader) imageURL(baseURL, ref string) string {
	if ref == "" {
		return ""
	}

	if s.assetChecker != nil && !IsAbsoluteURL(ref) && !s.assetChecker.Exists(ref) {
		slog.Warn("image asset not found, using placeholder", "ref", ref)
		return s.placeholderImageURL
	}

	return ResolveImageURL(baseURL, ref)
}

/*
DecodeGalleryImages decodes the nested gallery_images cell. Cells that do
not start with '[' mean "no gallery". Some exports double the quotes inside
the JSON, so a cell that is not valid as-is is retried with doubled quotes
collapsed. The returned list is never nil.
*/
func DecodeGalleryImages(cell string) ([]models.GalleryImage, error) {
	result := []models.GalleryImage{}
	raw := strings.TrimSpace(cell)

	if !strings.HasPrefix(raw, "[") {
		return result, nil
	}

	if !gjson.Valid(raw) {
		raw = strings.ReplaceAll(raw, `""`, `"`)

		if !gjson.Valid(raw) {
			return result, fmt.Errorf("%w: not a JSON array", ErrInvalidGallery)
		}
	}

	gjson.Parse(raw).ForEach(func(_, value gjson.Result) bool {
		if !value.IsObject() {
			return true
		}

		ref := strings.TrimSpace(value.Get("url").String())

		if ref == "" {
			return true
		}

		result = append(result, models.GalleryImage{
			Ref:     ref,
			Name:    firstString(value, "name", "nom", "type"),
			AltText: firstString(value, "alt_fr", "alt"),
			Credit:  firstString(value, "credit"),
		})

		return true
	})

	return result, nil
}

func firstString(value gjson.Result, paths ...string) string {
	for _, path := range paths {
		if s := strings.TrimSpace(value.Get(path).String()); s != "" {
			return s
		}
	}

	return ""
}

// ResolveImageURL prefixes ref with baseURL unless ref is already absolute.
func ResolveImageURL(baseURL, ref string) string {
	if ref == "" || IsAbsoluteURL(ref) || baseURL == "" {
		return ref
	}

	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(ref, "/")
}

// IsAbsoluteURL reports whether ref starts with a URL scheme.
func IsAbsoluteURL(ref string) bool {
	u, err := url.Parse(ref)

	if err != nil {
		return false
	}

	return u.IsAbs()
}

/*
parseYear reads the leading digits of a year cell, so "1969" and
"1969-1970" are both 1969. Anything else is unknown.
*/
func parseYear(raw string) (int, bool) {
	year := 0
	digits := 0

	for _, r := range strings.TrimSpace(raw) {
		if r < '0' || r > '9' {
			break
		}

		year = year*10 + int(r-'0')
		digits++

		if digits > 4 {
			return 0, false
		}
	}

	if digits == 0 || year == 0 {
		return 0, false
	}

	return year, true
}

func normalizeHeader(header []string) []string {
	result := make([]string, len(header))

	for index, name := range header {
		name = strings.TrimPrefix(name, "\ufeff")
		result[index] = strings.ToLower(strings.TrimSpace(name))
	}

	return result
}

func toRow(columns, record []string) map[string]string {
	row := make(map[string]string, len(columns))

	for index, name := range columns {
		if index < len(record) {
			row[name] = strings.TrimSpace(record[index])
		}
	}

	return row
}

func isBlankRow(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}
