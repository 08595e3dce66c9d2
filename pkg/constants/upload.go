package constants

// Input Limits.
const (
	// PastedTextCharacterLimit is the number of characters above which pasted
	// text is turned into a file attachment instead of being inserted inline.
	PastedTextCharacterLimit = 1000
)

var supportedFileTypes = [...]string{
	"application/epub+zip",
	"application/pdf",
	"text/plain",
	"text/csv",
	"text/xml",
	"text/html",
	"text/x-python",
	"text/css",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"application/octet-stream",
	"application/x-javascript",
	"text/markdown",
}

var supportedFileExtensions = [...]string{
	"md", "rst", "go", "py", "java", "sh", "bat", "ps1", "cmd", "js", "ts",
	"css", "cpp", "hpp", "h", "c", "cs", "htm", "html", "sql", "log", "ini",
	"pl", "pm", "r", "dart", "dockerfile", "env", "php", "hs", "hsc", "lua",
	"nginxconf", "conf", "m", "mm", "plsql", "perl", "rb", "rs", "db2",
	"scala", "bash", "swift", "vue", "svelte", "doc", "docx", "pdf", "csv",
	"txt", "xls", "xlsx", "pptx", "ppt", "msg",
}

// SupportedFileTypes returns the MIME types accepted for upload.
// The returned slice is a copy.
func SupportedFileTypes() []string {
	return append([]string(nil), supportedFileTypes[:]...)
}

// SupportedFileExtensions returns the file extensions, without leading dot,
// accepted for upload. The returned slice is a copy.
func SupportedFileExtensions() []string {
	return append([]string(nil), supportedFileExtensions[:]...)
}
