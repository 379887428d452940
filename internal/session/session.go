// Package session holds the logged-in user. Controllers receive a
// Session at construction instead of reaching into ambient storage.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

const (
	bucketName = "session"
	userKey    = "user"
)

// ErrNoUser is returned when no user document is stored.
var ErrNoUser = errors.New("no user in session")

// User is the logged-in employee.
type User struct {
	Type  string `json:"type"`
	Email string `json:"email"`
}

// Session exposes the logged-in user to the controllers.
type Session interface {
	CurrentUser() (User, error)
}

// Static is a fixed in-memory session, used in tests and when the
// user is supplied on the command line.
type Static struct {
	User User
}

func (s Static) CurrentUser() (User, error) {
	return s.User, nil
}

// BoltSession persists the user document in a bbolt key-value store
// under the fixed "user" key, JSON-encoded.
type BoltSession struct {
	db *bbolt.DB
}

// OpenBolt opens (or creates) the session store at path.
func OpenBolt(path string) (*BoltSession, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening session store: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating session bucket: %w", err)
	}

	return &BoltSession{db: db}, nil
}

// CurrentUser reads the stored user document.
func (s *BoltSession) CurrentUser() (User, error) {
	var user User
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(bucketName)).Get([]byte(userKey))
		if data == nil {
			return ErrNoUser
		}
		return json.Unmarshal(data, &user)
	})
	if err != nil {
		return User{}, err
	}
	return user, nil
}

// SetUser stores the user document, replacing any previous one.
func (s *BoltSession) SetUser(user User) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(user)
		if err != nil {
			return fmt.Errorf("marshaling user: %w", err)
		}
		return tx.Bucket([]byte(bucketName)).Put([]byte(userKey), data)
	})
}

// Clear removes the stored user document.
func (s *BoltSession) Clear() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Delete([]byte(userKey))
	})
}

// Close closes the underlying store.
func (s *BoltSession) Close() error {
	return s.db.Close()
}
