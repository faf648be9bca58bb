package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

// TokenKey is the namespaced storage key of the bearer token. It is the
// only durable client-side state this application keeps.
const TokenKey = "@fanation:token"

// Store is the durable client-side key/value storage backed by badger.
type Store struct {
	db *badger.DB

	mu    sync.RWMutex
	token string // in-memory copy, read on every outgoing request
}

// Open opens (or creates) the store at dir and loads the persisted token.
func Open(dir string, logger *zap.Logger) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	s := &Store{db: db}

	token, err := s.readToken()
	if err != nil {
		db.Close()
		return nil, err
	}
	s.token = token

	if token != "" {
		logger.Info("stored session token found")
	}
	return s, nil
}

// Close closes the underlying store.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Token returns the current bearer token, empty when signed out.
// Implements client.TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// SetToken persists the bearer token.
func (s *Store) SetToken(token string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(TokenKey), []byte(token))
	})
	if err != nil {
		return fmt.Errorf("failed to persist token: %w", err)
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return nil
}

// ClearToken discards the stored token. Clearing an absent token is a no-op.
func (s *Store) ClearToken() error {
	err := s.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete([]byte(TokenKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to clear token: %w", err)
	}

	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
	return nil
}

func (s *Store) readToken() (string, error) {
	var token string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(TokenKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			token = string(val)
			return nil
		})
	})
	if err != nil {
		return "", fmt.Errorf("failed to read stored token: %w", err)
	}
	return token, nil
}
