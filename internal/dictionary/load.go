package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

func timeTrack(start time.Time, name string) {
	elapsed := time.Since(start)
	log.Debug().Msgf("%s took %s", name, elapsed)
}

// Load parses `word,weight` lines. The line is split at its first comma and
// lines without a comma are skipped. The word is kept verbatim; the weight
// may be surrounded by whitespace. Later lines win over earlier ones for the
// same word.
func Load(r io.Reader) (*Index, error) {
	idx := NewIndex()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineLength)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		comma := strings.IndexByte(line, ',')
		if comma < 0 {
			continue
		}
		raw := line[comma+1:]
		weight, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, &MalformedWeightError{Line: lineNo, Value: raw, Err: err}
		}
		idx.Set(line[:comma], weight)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return idx, nil
}

// LoadFile opens and parses a dictionary text file.
func LoadFile(path string) (*Index, error) {
	defer timeTrack(time.Now(), "load-dictionary")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileNotOpened, err)
	}
	defer f.Close()
	idx, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	log.Debug().Str("path", path).Int("words", idx.Len()).Msg("dictionary-loaded")
	return idx, nil
}
