package host

import (
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/funvibe/ppl/internal/executable"
)

// ErrUserNotFound is returned when the store has no record for a user
var ErrUserNotFound = errors.New("user not found")

// scalarIndex marks a field row that holds a scalar rather than an array element
const scalarIndex = -1

// UserStore keeps user records in a sqlite database. Every field of a record
// is a row; array fields have one row per element.
type UserStore struct {
	db   *sql.DB
	mu   sync.Mutex
	user string
}

// OpenUserStore opens (or creates) the database at path and selects user as the
// record GETUSER and PUTUSER exchange. ":memory:" gives a private database.
func OpenUserStore(path, user string) (*UserStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening user store: %w", err)
	}
	// a memory database lives as long as its connection
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS user_fields (
		user  TEXT NOT NULL,
		name  TEXT NOT NULL,
		idx   INTEGER NOT NULL,
		type  INTEGER NOT NULL,
		str   TEXT,
		raw   INTEGER,
		PRIMARY KEY (user, name, idx)
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating table: %w", err)
	}
	return &UserStore{db: db, user: strings.ToUpper(user)}, nil
}

// Close closes the database connection
func (s *UserStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// User returns the name of the current record
func (s *UserStore) User() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// SetUser selects another record
func (s *UserStore) SetUser(user string) {
	s.mu.Lock()
	s.user = strings.ToUpper(user)
	s.mu.Unlock()
}

// Users lists the names of all stored records
func (s *UserStore) Users() ([]string, error) {
	rows, err := s.db.Query("SELECT DISTINCT user FROM user_fields ORDER BY user")
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	var users []string
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// GetUser loads the fields of the current record. A user without a record
// has no fields.
func (s *UserStore) GetUser() (map[string]executable.Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(s.user, "")
}

// PutUser replaces the given fields of the current record
func (s *UserStore) PutUser(fields map[string]executable.Value) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("saving user %s: %w", s.user, err)
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := putField(tx, s.user, name, fields[name]); err != nil {
			tx.Rollback()
			return fmt.Errorf("saving user %s: %w", s.user, err)
		}
	}
	return tx.Commit()
}

// Field loads one field of the current record. A field never stored yields ErrUserNotFound.
func (s *UserStore) Field(name string) (executable.Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fields, err := s.load(s.user, strings.ToUpper(name))
	if err != nil {
		return executable.Value{}, err
	}
	v, ok := fields[strings.ToUpper(name)]
	if !ok {
		return executable.Value{}, fmt.Errorf("%s.%s: %w", s.user, name, ErrUserNotFound)
	}
	return v, nil
}

// SetField stores one field of the current record
func (s *UserStore) SetField(name string, v executable.Value) error {
	return s.PutUser(map[string]executable.Value{strings.ToUpper(name): v})
}

func (s *UserStore) load(user, only string) (map[string]executable.Value, error) {
	query := "SELECT name, idx, type, str, raw FROM user_fields WHERE user = ?"
	args := []any{user}
	if only != "" {
		query += " AND name = ?"
		args = append(args, only)
	}
	rows, err := s.db.Query(query+" ORDER BY name, idx", args...)
	if err != nil {
		return nil, fmt.Errorf("loading user %s: %w", user, err)
	}
	defer rows.Close()

	fields := make(map[string]executable.Value)
	elems := make(map[string][]executable.Value)
	for rows.Next() {
		var (
			name string
			idx  int
			typ  int
			str  sql.NullString
			raw  sql.NullInt64
		)
		if err := rows.Scan(&name, &idx, &typ, &str, &raw); err != nil {
			return nil, fmt.Errorf("loading user %s: %w", user, err)
		}
		v := rowValue(executable.VariableType(typ), str, raw)
		if idx == scalarIndex {
			fields[name] = v
			continue
		}
		for len(elems[name]) <= idx {
			elems[name] = append(elems[name], executable.ZeroValue(v.Type))
		}
		elems[name][idx] = v
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for name, list := range elems {
		arr := executable.NewArray(list[0].Type, 1, len(list)-1, 0, 0)
		for i, v := range list {
			arr.Array().Set(v, i)
		}
		fields[name] = arr
	}
	return fields, nil
}

func rowValue(t executable.VariableType, str sql.NullString, raw sql.NullInt64) executable.Value {
	if t.IsString() {
		return executable.NewString(str.String).ConvertTo(t)
	}
	return executable.FromRaw(t, uint64(raw.Int64))
}

func putField(tx *sql.Tx, user, name string, v executable.Value) error {
	name = strings.ToUpper(name)
	if _, err := tx.Exec("DELETE FROM user_fields WHERE user = ? AND name = ?", user, name); err != nil {
		return err
	}
	if arr := v.Array(); arr != nil {
		for i, el := range arr.Elems {
			if err := insertRow(tx, user, name, i, el); err != nil {
				return err
			}
		}
		return nil
	}
	return insertRow(tx, user, name, scalarIndex, v)
}

func insertRow(tx *sql.Tx, user, name string, idx int, v executable.Value) error {
	var (
		str sql.NullString
		raw sql.NullInt64
	)
	if v.Type.IsString() {
		str = sql.NullString{String: v.AsString(), Valid: true}
	} else {
		raw = sql.NullInt64{Int64: int64(v.Raw()), Valid: true}
	}
	_, err := tx.Exec("INSERT INTO user_fields (user, name, idx, type, str, raw) VALUES (?, ?, ?, ?, ?, ?)",
		user, name, idx, int(v.Type), str, raw)
	return err
}
