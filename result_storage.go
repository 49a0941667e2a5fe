package gqlcheck

import (
	"context"
	"sync"

	"github.com/vmihailenco/msgpack"

	"github.com/ccbrown/gql-check/graphql"
)

// ResultStorage represents the storage backend for check results. Storage operations are done on a
// best effort basis and cannot return errors. Any errors that happen internally will not prevent
// a check, though they may cause the query to be validated again.
type ResultStorage interface {
	// GetResult should return the result stored for the hash, or nil if none is available.
	GetResult(ctx context.Context, hash []byte) []byte

	// PutResult should store the result for the given hash.
	PutResult(ctx context.Context, hash []byte, result []byte)
}

// MemoryStorage is a ResultStorage and PersistedQueryStorage that keeps everything in memory. It is
// safe for concurrent use.
type MemoryStorage struct {
	mutex   sync.RWMutex
	results map[string][]byte
	queries map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		results: map[string][]byte{},
		queries: map[string]string{},
	}
}

func (s *MemoryStorage) GetResult(ctx context.Context, hash []byte) []byte {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.results[string(hash)]
}

func (s *MemoryStorage) PutResult(ctx context.Context, hash []byte, result []byte) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.results[string(hash)] = result
}

func (s *MemoryStorage) GetPersistedQuery(ctx context.Context, hash []byte) string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.queries[string(hash)]
}

func (s *MemoryStorage) PersistQuery(ctx context.Context, query string, hash []byte) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.queries[string(hash)] = query
}

type storedResult struct {
	Errors []*graphql.Error `msgpack:"errors"`
}

func serializeResult(result *Result) ([]byte, error) {
	return msgpack.Marshal(&storedResult{
		Errors: result.Errors,
	})
}

func deserializeResult(b []byte) (*Result, error) {
	var stored storedResult
	if err := msgpack.Unmarshal(b, &stored); err != nil {
		return nil, err
	}
	return &Result{
		Valid:  len(stored.Errors) == 0,
		Errors: stored.Errors,
	}, nil
}
