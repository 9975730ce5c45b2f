package output

import (
	"fmt"
	"os"
	"path/filepath"
)

// RenewOutputPath returns a sibling path that does not yet exist, by
// suffixing the file's base name with "-(N)" for increasing N. It does
// not touch the filesystem beyond stat-ing candidate paths.
func RenewOutputPath(outputPath string) string {
	dir := filepath.Dir(outputPath)
	base := filepath.Base(outputPath)
	ext := filepath.Ext(base)
	name := base[:len(base)-len(ext)]
	for index := 1; ; index++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s-(%d)%s", name, index, ext))
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}
