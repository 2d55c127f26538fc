package configuration

import (
	"github.com/adampresley/configinator"
	"github.com/joho/godotenv"
)

type Config struct {
	AssetCheck           bool   `flag:"assetcheck" env:"ASSET_CHECK" default:"false" description:"Replace images missing from the bucket with a placeholder"`
	AssetPrefix          string `flag:"assetprefix" env:"ASSET_PREFIX" default:"vitraux" description:"Bucket prefix holding the artwork images"`
	AwsEndpointUrl       string `flag:"awsep" env:"AWS_ENDPOINT_URL" default:"https://s3.fr-par.scw.cloud" description:"AWS endpoint URL"`
	AwsRegion            string `flag:"awsregion" env:"AWS_REGION" default:"fr-par" description:"AWS region"`
	AwsAccessKeyId       string `flag:"awsaccesskeyid" env:"AWS_ACCESS_KEY_ID" default:"" description:"AWS access key ID"`
	AwsSecretAccessKey   string `flag:"awssecretaccesskey" env:"AWS_SECRET_ACCESS_KEY" default:"" description:"AWS secret access key"`
	AwsBucket            string `flag:"awsbucket" env:"AWS_BUCKET" default:"weiss-gruber-jeanette" description:"S3 bucket"`
	ClusterDisableAtZoom int    `flag:"clusterdisable" env:"CLUSTER_DISABLE_AT_ZOOM" default:"0" description:"Zoom at which markers stop clustering. 0 keeps clustering on"`
	ClusterRadius        int    `flag:"clusterradius" env:"CLUSTER_RADIUS" default:"80" description:"Marker cluster radius in pixels"`
	GalleryImageBaseURL  string `flag:"gallerybaseurl" env:"GALLERY_IMAGE_BASE_URL" default:"https://weiss-gruber-jeanette.s3.fr-par.scw.cloud/vitraux/" description:"Base URL for relative gallery image references"`
	Host                 string `flag:"host" env:"HOST" default:"localhost:8081" description:"The address and port to bind the HTTP server to"`
	LogLevel             string `flag:"loglevel" env:"LOG_LEVEL" default:"debug" description:"The log level to use. Valid values are 'debug', 'info', 'warn', and 'error'"`
	MainImageBaseURL     string `flag:"mainbaseurl" env:"MAIN_IMAGE_BASE_URL" default:"https://weiss-gruber-jeanette.s3.fr-par.scw.cloud/vitraux/" description:"Base URL for relative main image references"`
	MapHeight            int    `flag:"mapheight" env:"MAP_HEIGHT" default:"600" description:"Map height in pixels used to fit the viewport"`
	MapMaxZoom           int    `flag:"mapmaxzoom" env:"MAP_MAX_ZOOM" default:"18" description:"Highest zoom the map fits to"`
	MapPadding           int    `flag:"mappadding" env:"MAP_PADDING" default:"40" description:"Padding in pixels around fitted map bounds"`
	MapWidth             int    `flag:"mapwidth" env:"MAP_WIDTH" default:"960" description:"Map width in pixels used to fit the viewport"`
	PlaceholderImageURL  string `flag:"placeholder" env:"PLACEHOLDER_IMAGE_URL" default:"/static/images/placeholder.svg" description:"Image shown when an artwork image is missing"`
	SourceKey            string `flag:"sourcekey" env:"SOURCE_KEY" default:"vitraux_metadata.csv" description:"Name of the catalogue CSV inside the source"`
	SourceURL            string `flag:"sourceurl" env:"SOURCE_URL" default:"./data" description:"Directory or bucket URL (file://, s3://) holding the catalogue CSV"`
}

/*
LoadConfig reads an optional .env file into the environment, then
resolves flags, environment and defaults.
*/
func LoadConfig() Config {
	_ = godotenv.Load()

	config := Config{}
	configinator.Behold(&config)
	return config
}
