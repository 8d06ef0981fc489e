package contacts

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// ErrNoID is returned when a contact without an ID is written.
var ErrNoID = errors.New("contact has no id")

// Store keeps contacts as JSON blobs in SQLite, one row per contact.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path and ensures the contacts
// table exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", "file:"+path+"?mode=rwc")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	create := `
	CREATE TABLE IF NOT EXISTS contacts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		uid TEXT NOT NULL UNIQUE,
		position INTEGER NOT NULL DEFAULT 0,
		data TEXT
	);
	`
	if _, err := db.Exec(create); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure contacts table: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Insert stores c after every stored contact and returns its row id.
func (s *Store) Insert(c Contact) (int64, error) {
	if c.ID == "" {
		return 0, ErrNoID
	}
	js, err := json.Marshal(c)
	if err != nil {
		return 0, err
	}
	res, err := s.db.Exec(`INSERT INTO contacts (uid, position, data)
		VALUES (?, (SELECT COALESCE(MAX(position), -1) + 1 FROM contacts), ?)`, c.ID, string(js))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// All returns every contact in stored list order. Rows holding invalid
// JSON are logged and skipped.
func (s *Store) All() ([]Contact, error) {
	rows, err := s.db.Query("SELECT id, data FROM contacts ORDER BY position, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Contact{}
	for rows.Next() {
		var id int64
		var dataStr string
		if err := rows.Scan(&id, &dataStr); err != nil {
			return nil, err
		}
		var c Contact
		if err := json.Unmarshal([]byte(dataStr), &c); err != nil {
			log.Printf("warning: skipping contact row %d: %v", id, err)
			continue
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the number of stored contacts.
func (s *Store) Count() (int, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM contacts").Scan(&n)
	return n, err
}

// Save rewrites the stored data of every contact in list, matched by ID,
// and stores the list order. Contacts not yet stored are inserted.
func (s *Store) Save(list []Contact) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i, c := range list {
		if c.ID == "" {
			return ErrNoID
		}
		js, err := json.Marshal(c)
		if err != nil {
			return fmt.Errorf("encode contact %s: %w", c.ID, err)
		}
		_, err = tx.Exec(`INSERT INTO contacts (uid, position, data) VALUES (?, ?, ?)
			ON CONFLICT(uid) DO UPDATE SET position = excluded.position, data = excluded.data`,
			c.ID, i, string(js))
		if err != nil {
			return fmt.Errorf("save contact %s: %w", c.ID, err)
		}
	}
	return tx.Commit()
}

// Seed writes the sample contacts when the store is empty. It reports
// whether anything was written.
func (s *Store) Seed(now time.Time) (bool, error) {
	n, err := s.Count()
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	samples, err := Samples(now)
	if err != nil {
		return false, err
	}
	for _, c := range samples {
		if _, err := s.Insert(c); err != nil {
			return false, fmt.Errorf("seed %s: %w", c.Name, err)
		}
	}
	return true, nil
}
