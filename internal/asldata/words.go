package asldata

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Word represents a vocabulary word stored in the database.
type Word struct {
	ID   string
	Name string
}

// WordRepository provides persistence operations for vocabulary words and
// their recorded instances.
type WordRepository struct {
	db *sql.DB
}

// Words returns the word repository for this store.
func (s *Store) Words() *WordRepository {
	return &WordRepository{db: s.db}
}

// Create inserts a new vocabulary word.
func (r *WordRepository) Create(name string) (*Word, error) {
	w := &Word{
		ID:   uuid.NewString(),
		Name: name,
	}
	_, err := r.db.Exec(
		`INSERT INTO words (id, name) VALUES (?, ?)`,
		w.ID, w.Name,
	)
	if err != nil {
		return nil, err
	}
	return w, nil
}

// GetByName retrieves a word by its name.
func (r *WordRepository) GetByName(name string) (*Word, error) {
	w := &Word{}
	err := r.db.QueryRow(
		`SELECT id, name FROM words WHERE name = ?`, name,
	).Scan(&w.ID, &w.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return w, nil
}

// List retrieves all words in insertion order.
func (r *WordRepository) List() ([]*Word, error) {
	rows, err := r.db.Query(`SELECT id, name FROM words ORDER BY created_at, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []*Word
	for rows.Next() {
		w := &Word{}
		if err := rows.Scan(&w.ID, &w.Name); err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// AddInstances inserts the recorded instances for a word in a single
// transaction, each instance serialized as a JSON frame matrix.
func (r *WordRepository) AddInstances(wordID string, instances [][][]float64) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		`INSERT INTO instances (id, word_id, instance_index, frames) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, frames := range instances {
		data, err := json.Marshal(frames)
		if err != nil {
			return fmt.Errorf("failed to encode instance %d: %w", i, err)
		}
		if _, err := stmt.Exec(uuid.NewString(), wordID, i, string(data)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// InstancesByWordID retrieves all recorded instances for a word, ordered by
// instance index.
func (r *WordRepository) InstancesByWordID(wordID string) ([][][]float64, error) {
	rows, err := r.db.Query(
		`SELECT frames FROM instances WHERE word_id = ? ORDER BY instance_index`,
		wordID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var instances [][][]float64
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var frames [][]float64
		if err := json.Unmarshal([]byte(data), &frames); err != nil {
			return nil, fmt.Errorf("failed to decode instance: %w", err)
		}
		instances = append(instances, frames)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return instances, nil
}

// SaveDataset persists an in-memory dataset, creating any missing words and
// replacing their instances.
func (s *Store) SaveDataset(d *Dataset) error {
	repo := s.Words()
	for _, name := range d.Words() {
		w, err := repo.GetByName(name)
		if errors.Is(err, ErrNotFound) {
			w, err = repo.Create(name)
		}
		if err != nil {
			return fmt.Errorf("failed to save word %q: %w", name, err)
		}
		if _, err := s.db.Exec(`DELETE FROM instances WHERE word_id = ?`, w.ID); err != nil {
			return err
		}
		if err := repo.AddInstances(w.ID, d.Sequences[name]); err != nil {
			return fmt.Errorf("failed to save instances for %q: %w", name, err)
		}
	}
	return nil
}

// LoadDataset reconstructs the full in-memory dataset from the store.
func (s *Store) LoadDataset() (*Dataset, error) {
	repo := s.Words()
	words, err := repo.List()
	if err != nil {
		return nil, err
	}

	d := NewDataset()
	for _, w := range words {
		instances, err := repo.InstancesByWordID(w.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load instances for %q: %w", w.Name, err)
		}
		d.AddWord(w.Name, instances)
	}
	return d, nil
}
