// Package message reads the words of the message to be anagrammed.
package message

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/word_phraser/internal/dictionary"
)

// ParseWords splits r into whitespace-delimited words, line by line. Word
// order is kept across lines. Lines may be up to dictionary.MaxLineLength
// bytes long.
func ParseWords(r io.Reader) ([]string, error) {
	words := []string{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), dictionary.MaxLineLength)
	for scanner.Scan() {
		words = append(words, strings.Fields(scanner.Text())...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// LoadFile opens and parses a message file.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", dictionary.ErrFileNotOpened, err)
	}
	defer f.Close()
	words, err := ParseWords(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	log.Debug().Str("path", path).Strs("words", words).Msg("message-loaded")
	return words, nil
}
