package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile string
	DBType     string
	DSN        string
	User       uint
	Projects   []uint
	All        bool
	ReportName string
	ReportType []string
	Dir        string
	S3Bucket   string
	S3Prefix   string
	AWSProfile string
}
