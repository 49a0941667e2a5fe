package gqlcheck

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"

	"github.com/ccbrown/gql-check/graphql"
)

// PersistedQueryStorage represents the storage backend for persisted queries. Storage operations
// are done on a best effort basis and cannot return errors. Any errors that happen internally will
// not prevent a check, though they might force clients to make additional requests.
type PersistedQueryStorage interface {
	// GetPersistedQuery should return the query if it's available or an empty string otherwise.
	GetPersistedQuery(ctx context.Context, hash []byte) string

	// PersistQuery should persist the query with the given hash.
	PersistQuery(ctx context.Context, query string, hash []byte)
}

var emptyStringHash = sha256.Sum256([]byte(""))

var errPersistedQueryNotFound = &graphql.Error{
	Message: "PersistedQueryNotFound",
}

// resolvePersistedQuery implements Apollo persisted queries for a request. It returns the query to
// check, or an error to send to the client.
func resolvePersistedQuery(ctx context.Context, storage PersistedQueryStorage, r *graphql.Request) (string, *graphql.Error) {
	ext, _ := r.Extensions["persistedQuery"].(map[string]interface{})
	if storage == nil || ext == nil {
		return r.Query, nil
	}
	switch ext["version"] {
	case 1, 1.0:
		if r.Query == "" {
			// errors parsing the hash can be ignored: hash will end up empty and we'll error out due
			// to not being able to find the query
			hashHex, _ := ext["sha256Hash"].(string)
			hash, _ := hex.DecodeString(hashHex)

			if bytes.Equal(hash, emptyStringHash[:]) {
				// the parser will report the empty document
				return "", nil
			} else if len(hash) == sha256.Size {
				if query := storage.GetPersistedQuery(ctx, hash); query != "" {
					return query, nil
				}
			}
			return "", errPersistedQueryNotFound
		}
		hash := sha256.Sum256([]byte(r.Query))
		storage.PersistQuery(ctx, r.Query, hash[:])
	}
	return r.Query, nil
}
