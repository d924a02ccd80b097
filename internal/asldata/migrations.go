package asldata

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Words table - the vocabulary
		`CREATE TABLE IF NOT EXISTS words (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Instances table - one recorded gesture per row, frames stored as a
		// JSON matrix of feature vectors
		`CREATE TABLE IF NOT EXISTS instances (
			id TEXT PRIMARY KEY,
			word_id TEXT NOT NULL REFERENCES words(id) ON DELETE CASCADE,
			instance_index INTEGER NOT NULL,
			frames TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_instances_word
			ON instances(word_id, instance_index)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
