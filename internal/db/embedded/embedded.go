// Package embedded runs an in-process Redis-compatible server so the service
// can start without external infrastructure.
package embedded

import (
	"fmt"

	"github.com/alicebob/miniredis/v2"

	"github.com/kailas-cloud/campushub/internal/db"
	dbRedis "github.com/kailas-cloud/campushub/internal/db/redis"
)

// Store is a rueidis-backed db.Store talking to an in-process miniredis server.
// Data lives only as long as the process.
type Store struct {
	*dbRedis.Store
	server *miniredis.Miniredis
}

var _ db.Store = (*Store)(nil)

// NewStore starts an in-process server on a random local port and connects to it.
func NewStore() (*Store, error) {
	server := miniredis.NewMiniRedis()
	if err := server.Start(); err != nil {
		return nil, fmt.Errorf("start embedded server: %w", err)
	}

	client, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:      []string{server.Addr()},
		Standalone: true,
	})
	if err != nil {
		server.Close()
		return nil, fmt.Errorf("connect embedded server: %w", err)
	}

	return &Store{Store: client, server: server}, nil
}

// Addr returns the address of the embedded server.
func (s *Store) Addr() string { return s.server.Addr() }

// Close disconnects the client and stops the server.
func (s *Store) Close() {
	s.Store.Close()
	s.server.Close()
}
