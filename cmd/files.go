package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// imageExts lists the source formats the decoder registry understands.
var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

func isImage(name string) bool {
	return imageExts[strings.ToLower(filepath.Ext(name))]
}

// flagDirectory collects the images directly inside each directory,
// sorted by name within each directory.
func flagDirectory(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, fmt.Errorf("reading '%s': %w", arg, err)
		}
		var found []string
		for _, entry := range entries {
			if entry.IsDir() || !isImage(entry.Name()) {
				continue
			}
			found = append(found, filepath.Join(arg, entry.Name()))
		}
		sort.Strings(found)
		paths = append(paths, found...)
	}
	return paths, nil
}

// flagFiles checks each argument names a regular file, keeping order.
func flagFiles(args []string) ([]string, error) {
	paths := make([]string, 0, len(args))
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("opening '%s': %w", arg, err)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("'%s' is a directory, use -d flag instead", arg)
		}
		paths = append(paths, filepath.Clean(arg))
	}
	return paths, nil
}
