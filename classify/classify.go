// Package classify infers a human-readable content type from a file extension.
//
// The table is ordered and the first bucket containing the extension wins, so an
// extension listed in more than one bucket (e.g. "xml") resolves to the earlier one.
package classify

import (
	"path/filepath"
	"strings"

	set "github.com/deckarep/golang-set/v2"
)

const (
	// FolderLabel is reported for directories, regardless of name
	FolderLabel = "Folder"
	// UnknownLabel is reported when no bucket holds the extension
	UnknownLabel = "Unknown file"
)

// Bucket is one row of the classification table
type Bucket struct {
	Label      string
	Extensions set.Set[string]
}

func bucket(label string, extensions ...string) Bucket {
	return Bucket{Label: label, Extensions: set.NewThreadUnsafeSet[string](extensions...)}
}

// Read-only after init.
var table = []Bucket{
	bucket("Windows executable file", "bat", "cmd", "exe", "msi"),
	bucket("Linux executable file", "sh", "run"),
	bucket("Mac executable file", "app", "dmg"),
	bucket("Audio file", "mp3", "wav", "ogg", "mpa", "aac", "au", "m4a", "m4b", "mpc", "oga", "tta", "wma", "wv"),
	bucket("Image file", "jpg", "jpeg", "jfif", "webp", "exif", "bmp", "png", "svg", "fig", "tiff", "gif"),
	bucket("Video file", "mp4", "avi", "mkv", "flv", "3gp", "nsv", "webm", "vob", "gifv", "mov", "qt", "wmv",
		"viv", "amv", "m4p", "m4v", "mpg", "mp2", "mpv", "svi", "3g2", "f4v", "f4p", "f4a", "f4b"),
	bucket("Text file", "txt", "xml", "fxml", "xmlns", "iml"),
	bucket("Document file", "doc", "html", "docx", "odt", "pdf", "xml", "xmnl", "fxml", "json"),
	bucket("Library file", "dll", "jar", "so", "pyd"),
	// "tar.gz" and "tar.xz" can never match: Extension only yields the last dot-segment
	bucket("Archive file", "zip", "rar", "7zip", "tar.gz", "gz", "rar4", "tar.xz"),
	bucket("Database file (script)", "db", "sql3", "sql"),
	bucket("Font file", "tf", "ttf"),
	bucket("Java file", "java"),
	bucket("Csharp file", "cs"),
	bucket("C file", "c"),
	bucket("C++ file", "cpp"),
	bucket("Python file", "py"),
	bucket("Javascript file", "js"),
	bucket("PHP file", "php"),
	bucket("Go file", "go"),
	bucket("Ruby file", "rb"),
	bucket("Kotlin file", "kt"),
	bucket("C header file", "h"),
	bucket("C++ header file", "hh"),
}

// Extension returns the text after the last '.' of the final path element,
// without the dot and without changing case. It is empty when there is no dot.
func Extension(path string) string {
	return strings.TrimPrefix(filepath.Ext(path), ".")
}

// Label returns the label of the first bucket holding ext, or UnknownLabel
func Label(ext string) string {
	if ext == "" {
		return UnknownLabel
	}
	for _, b := range table {
		if b.Extensions.Contains(ext) {
			return b.Label
		}
	}
	return UnknownLabel
}

// OfFile classifies a (non-directory) path by its extension
func OfFile(path string) string {
	return Label(Extension(path))
}

// Buckets returns a copy of the classification table, in evaluation order
func Buckets() []Bucket {
	buckets := make([]Bucket, len(table))
	for i, b := range table {
		buckets[i] = Bucket{Label: b.Label, Extensions: b.Extensions.Clone()}
	}
	return buckets
}
