package config

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

const treasuresFileName = "treasures.txt"

// SourcePlaceholder names a pool made only of placeholders.
const SourcePlaceholder = "placeholder"

// errNoTreasures marks a treasure source that parsed to zero entries.
var errNoTreasures = errors.New("config: no treasure entries")

// ParseTreasures reads treasure descriptions from r.
// Lines starting with '#' are comments. Blank lines separate entries; the
// last entry does not need a trailing blank line. Lines are trimmed.
func ParseTreasures(r io.Reader) ([][]string, error) {
	var (
		entries [][]string
		current []string
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "#"):
			continue
		case strings.TrimSpace(line) == "":
			if len(current) > 0 {
				entries = append(entries, current)
				current = nil
			}
		default:
			current = append(current, strings.TrimSpace(line))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("config: reading treasures: %w", err)
	}
	if len(current) > 0 {
		entries = append(entries, current)
	}
	return entries, nil
}

// PlaceholderPool returns n copies of the placeholder description.
func PlaceholderPool(n int) [][]string {
	pool := make([][]string, 0, n)
	for range n {
		pool = append(pool, []string{Placeholder})
	}
	return pool
}

// PadTreasures appends placeholders until pool holds at least required entries.
func PadTreasures(pool [][]string, required int) [][]string {
	for len(pool) < required {
		pool = append(pool, []string{Placeholder})
	}
	return pool
}

// LoadTreasures returns the treasure pool and where it came from. It never
// fails: problems are logged and the pool is padded with placeholders up to
// required entries.
// Search order: customPath -> ~/.clf/treasures.txt -> ./treasures.txt -> embedded list.
// A customPath that cannot be used yields a placeholder pool.
func LoadTreasures(customPath string, required int, logger *log.Logger) ([][]string, string) {
	if logger == nil {
		logger = log.Default()
	}

	if customPath != "" {
		pool, err := readTreasureFile(customPath)
		if err != nil {
			logger.Warn("treasure file unusable, using placeholders", "path", customPath, "error", err)
			return PlaceholderPool(required), SourcePlaceholder
		}
		return padLogged(pool, required, customPath, logger), customPath
	}

	for _, path := range []string{userDataPath(treasuresFileName), treasuresFileName} {
		if path == "" {
			continue
		}
		pool, err := readTreasureFile(path)
		if err == nil {
			return padLogged(pool, required, path, logger), path
		}
		if !errors.Is(err, os.ErrNotExist) {
			logger.Warn("skipping treasure file", "path", path, "error", err)
		}
	}

	pool, err := ParseTreasures(bytes.NewReader(defaultTreasures))
	if err != nil || len(pool) == 0 {
		logger.Warn("built-in treasures unusable, using placeholders", "error", err)
		return PlaceholderPool(required), SourcePlaceholder
	}
	return padLogged(pool, required, SourceEmbedded, logger), SourceEmbedded
}

// readTreasureFile parses a treasure file, treating an empty result as an error.
func readTreasureFile(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pool, err := ParseTreasures(f)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, fmt.Errorf("%w in %s", errNoTreasures, path)
	}
	return pool, nil
}

func padLogged(pool [][]string, required int, source string, logger *log.Logger) [][]string {
	if len(pool) < required {
		logger.Warn("treasure pool too small, padding with placeholders",
			"source", source, "entries", len(pool), "required", required)
	}
	return PadTreasures(pool, required)
}
