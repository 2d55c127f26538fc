package configuration

import (
	"github.com/adampresley/configinator"
	"github.com/joho/godotenv"
)

type Config struct {
	AssetPrefix        string `flag:"assetprefix" env:"ASSET_PREFIX" default:"vitraux" description:"Bucket prefix holding the artwork images"`
	AuditWorkers       int    `flag:"workers" env:"AUDIT_WORKERS" default:"8" description:"Number of concurrent object lookups"`
	AwsEndpointUrl     string `flag:"awsep" env:"AWS_ENDPOINT_URL" default:"https://s3.fr-par.scw.cloud" description:"AWS endpoint URL"`
	AwsRegion          string `flag:"awsregion" env:"AWS_REGION" default:"fr-par" description:"AWS region"`
	AwsAccessKeyId     string `flag:"awsaccesskeyid" env:"AWS_ACCESS_KEY_ID" default:"" description:"AWS access key ID"`
	AwsSecretAccessKey string `flag:"awssecretaccesskey" env:"AWS_SECRET_ACCESS_KEY" default:"" description:"AWS secret access key"`
	AwsBucket          string `flag:"awsbucket" env:"AWS_BUCKET" default:"weiss-gruber-jeanette" description:"S3 bucket"`
	LogLevel           string `flag:"loglevel" env:"LOG_LEVEL" default:"info" description:"The log level to use. Valid values are 'debug', 'info', 'warn', and 'error'"`
	SourceKey          string `flag:"sourcekey" env:"SOURCE_KEY" default:"vitraux_metadata.csv" description:"Name of the catalogue CSV inside the source"`
	SourceURL          string `flag:"sourceurl" env:"SOURCE_URL" default:"./data" description:"Directory or bucket URL (file://, s3://) holding the catalogue CSV"`
}

func LoadConfig() Config {
	_ = godotenv.Load()

	config := Config{}
	configinator.Behold(&config)
	return config
}
