// Package vocab loads autocomplete vocabularies into a ternary search tree.
//
// A vocabulary has one entry per line, either a bare key or a key and its
// payload joined by a separator. The payload of a bare key is the key itself.
// Blank lines and lines starting with '#' are ignored.
package vocab

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"tst"
)

const maxLineSize = 1 << 20

// LoadFile opens the vocabulary at path and loads it into t.
func LoadFile(path, sep string, t tst.Tree[string], log zerolog.Logger) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrapf(err, "open vocabulary %s", path)
	}
	defer file.Close()

	n, err := Load(file, sep, t, log.With().Str("path", path).Logger())
	if err != nil {
		return n, errors.Wrapf(err, "load vocabulary %s", path)
	}
	return n, nil
}

// Load adds every entry read from r to t and returns the number of entries
// added. An empty sep makes the whole line the key.
func Load(r io.Reader, sep string, t tst.Tree[string], log zerolog.Logger) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	added := 0
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, payload := parseLine(line, sep)
		if err := t.Add(key, payload); err != nil {
			if errors.Is(err, tst.ErrEmptyKey) {
				log.Warn().Int("line", lineNo).Msg("skipping entry with empty key")
				continue
			}
			return added, errors.Wrapf(err, "line %d", lineNo)
		}
		added++
	}
	if err := scanner.Err(); err != nil {
		return added, errors.Wrap(err, "read vocabulary")
	}

	log.Debug().Int("entries", added).Msg("vocabulary read")
	return added, nil
}

func parseLine(line, sep string) (key, payload string) {
	if sep == "" {
		return line, line
	}
	key, payload, found := strings.Cut(line, sep)
	if !found {
		return key, key
	}
	return key, payload
}
