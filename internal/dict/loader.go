package dict

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// headwordField is the 0-based index of the headword within the
// whitespace-separated fields before the pipe.
const headwordField = 4

// Load parses the data file for the given category inside dir and
// returns its word-to-definition mapping. Lines that do not match the
// lexicographer format are skipped; the file is a best-effort scrape,
// not a strict grammar. Returns NotFoundError when the file is
// missing and EmptyCategoryError when nothing usable was found.
func Load(dir string, cat Category) (map[string]string, error) {
	path := filepath.Join(dir, "data."+string(cat))
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()

	entries := make(map[string]string)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word, def, ok := ParseLine(scanner.Text())
		if !ok {
			continue
		}
		// Last occurrence wins.
		entries[word] = def
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read dictionary %s: %w", path, err)
	}
	if len(entries) == 0 {
		return nil, &EmptyCategoryError{Category: cat}
	}
	return entries, nil
}

// ParseLine extracts a word and definition from one lexicographer
// line. A line is a candidate only if it starts with a digit and
// contains a pipe. The word is the fifth field before the pipe; the
// definition is the first semicolon-delimited clause after it,
// trimmed. ok is false for anything else.
func ParseLine(line string) (word, def string, ok bool) {
	if line == "" || line[0] < '0' || line[0] > '9' {
		return "", "", false
	}
	head, gloss, found := strings.Cut(line, "|")
	if !found {
		return "", "", false
	}
	fields := strings.Fields(head)
	if len(fields) <= headwordField {
		return "", "", false
	}
	// WordNet joins multiword entries with underscores.
	word = strings.ToLower(strings.ReplaceAll(fields[headwordField], "_", " "))
	clause, _, _ := strings.Cut(gloss, ";")
	def = strings.TrimSpace(clause)
	if word == "" || def == "" {
		return "", "", false
	}
	return word, def, true
}
