package dictionary

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	// sqlite3 driver is used for lexicon databases.
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/domino14/word_phraser/internal/common"
)

// ErrDatabaseExists is returned by CreateDatabase when it is not allowed to
// overwrite an existing file.
var ErrDatabaseExists = errors.New("database already exists")

const schema = `
CREATE TABLE words (
	word TEXT PRIMARY KEY,
	alphagram TEXT NOT NULL,
	weight INTEGER NOT NULL
);
CREATE INDEX alphagram_index ON words(alphagram);
`

// CreateDatabase writes idx to a new SQLite lexicon database at path. Every
// word is stored with its signature in the alphagram column.
func CreateDatabase(idx *Index, path string, overwrite bool) error {
	defer timeTrack(time.Now(), "create-database")
	if _, err := os.Stat(path); err == nil {
		if !overwrite {
			return fmt.Errorf("%w: %s", ErrDatabaseExists, path)
		}
		if err := os.Remove(path); err != nil {
			return err
		}
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		return err
	}
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO words (word, alphagram, weight) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, e := range idx.Entries() {
		if _, err := stmt.Exec(e.Word, common.Signature(e.Word), e.Weight); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	log.Info().Str("path", path).Int("words", idx.Len()).Msg("lexicon-database-created")
	return nil
}

// LoadDB reads a lexicon database created by CreateDatabase.
func LoadDB(path string) (*Index, error) {
	defer timeTrack(time.Now(), "load-dictionary-db")
	// The driver would happily create a missing file, so check first.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileNotOpened, err)
	}
	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileNotOpened, err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT word, weight FROM words`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	idx := NewIndex()
	for rows.Next() {
		var word string
		var weight int
		if err := rows.Scan(&word, &weight); err != nil {
			return nil, err
		}
		idx.Set(word, weight)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	log.Debug().Str("path", path).Int("words", idx.Len()).Msg("dictionary-db-loaded")
	return idx, nil
}
