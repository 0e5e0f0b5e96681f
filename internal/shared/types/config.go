package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	DBType     string   `json:"db_type" yaml:"db_type" toml:"db_type"`
	DSN        string   `json:"dsn" yaml:"dsn" toml:"dsn"`
	User       uint     `json:"user" yaml:"user" toml:"user"`
	Projects   []uint   `json:"projects" yaml:"projects" toml:"projects"`
	ReportName string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir        string   `json:"dir" yaml:"dir" toml:"dir"`
	S3Bucket   string   `json:"s3_bucket" yaml:"s3_bucket" toml:"s3_bucket"`
	S3Prefix   string   `json:"s3_prefix" yaml:"s3_prefix" toml:"s3_prefix"`
	AWSProfile string   `json:"aws_profile" yaml:"aws_profile" toml:"aws_profile"`
}
