package reporter

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatCSV  = "csv"

	AllClearMessage = "All internal links and static assets are OK."

	// StaticOnlyClearMessage replaces AllClearMessage when pages and links were never checked.
	StaticOnlyClearMessage  = "All static assets are OK."
	ServerUnreachableNotice = "Server was unreachable; only static files were checked."
)

// RemediationHints are printed after every non-empty text report.
var RemediationHints = []string{
	"Make sure every linked page exists in the site content and its route matches the link path.",
	"Confirm the site is built and served at the configured base URL (and base path) before running the check.",
	"Add missing static assets to the public directory, or update the links that reference them.",
}
