package buildinfo

var (
	// Version is the release tag, set via -ldflags -X at build time.
	Version = "dev"
	// Commit is the source revision, set via -ldflags -X at build time.
	Commit = "none"
	// Date is the build timestamp, set via -ldflags -X at build time.
	Date = "unknown"
)
