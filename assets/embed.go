package assets

import (
	"bufio"
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed template.txt demo.txt images/*.txt
var FS embed.FS

// readLines returns the lines of name with trailing whitespace removed and
// trailing blank lines dropped. Leading whitespace is kept: it is part of the
// pictures.
func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		out = append(out, strings.TrimRight(sc.Text(), " \t\r"))
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return out, sc.Err()
}

// Template is the word list written when no configuration file exists.
func Template() ([]byte, error) {
	return FS.ReadFile("template.txt")
}

// Demo is the secret played when the configuration had to be created.
func Demo() (string, error) {
	lines, err := readLines("demo.txt")
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// Images returns the built-in pictures, sorted by file name.
func Images() ([][]string, error) {
	names, err := fs.Glob(FS, "images/*.txt")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	out := make([][]string, 0, len(names))
	for _, name := range names {
		lines, err := readLines(path.Clean(name))
		if err != nil {
			return nil, err
		}
		out = append(out, lines)
	}
	return out, nil
}
