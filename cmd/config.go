package cmd

// Config carries all runtime settings, loaded from the environment by the
// entrypoint. When SESRegion or SESFromEmail is empty, notifications are
// written to the log instead of delivered through SES.
type Config struct {
	HTTPPort     string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBSslMode    string
	SESRegion    string
	SESFromEmail string
}
