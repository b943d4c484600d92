package editorconfig

import "strings"

// DefaultConfFileName is the config file name looked up in every ancestor.
const DefaultConfFileName = ".editorconfig"

// Locate returns the config file candidates for the slash-separated absolute
// path, nearest directory first and the filesystem root last. There is one
// candidate per "/" in path. An empty confName means DefaultConfFileName.
func Locate(absPath, confName string) []string {
	if confName == "" {
		confName = DefaultConfFileName
	}

	dirs := ancestors(absPath)
	candidates := make([]string, len(dirs))
	for idx, dir := range dirs {
		candidates[idx] = dir + "/" + confName
	}
	return candidates
}

// ancestors returns every directory prefix of path, nearest first.
// The filesystem root is represented by the empty string.
func ancestors(path string) []string {
	var dirs []string
	for {
		idx := strings.LastIndexByte(path, '/')
		if idx < 0 {
			return dirs
		}
		path = path[:idx]
		dirs = append(dirs, path)
	}
}
