package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shashiranjanraj/nightcap/config"
)

// Store persists session records keyed by their opaque ID.
type Store interface {
	Read(id string) map[string]string
	Write(id string, data map[string]string, ttl time.Duration) error
	Destroy(id string) error
}

var (
	storeMu sync.RWMutex
	store   Store = newMemoryStore()
)

func activeStore() Store {
	storeMu.RLock()
	defer storeMu.RUnlock()
	return store
}

// Connect wires the Redis store. When Redis is unreachable the in-memory
// store stays active; sessions then do not survive a restart, which is
// acceptable at this deployment scale.
func Connect() error {
	client := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr(),
		Password: config.RedisPassword(),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("session: redis ping: %w", err)
	}

	storeMu.Lock()
	store = &redisStore{client: client}
	storeMu.Unlock()
	return nil
}

// ------------------- Redis driver -------------------

type redisStore struct {
	client *redis.Client
}

func redisKey(id string) string { return "nightcap:session:" + id }

func (s *redisStore) Read(id string) map[string]string {
	val, err := s.client.Get(context.Background(), redisKey(id)).Result()
	if err != nil {
		return map[string]string{}
	}

	var data map[string]string
	if err := json.Unmarshal([]byte(val), &data); err != nil || data == nil {
		return map[string]string{}
	}
	return data
}

func (s *redisStore) Write(id string, data map[string]string, ttl time.Duration) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("session: marshal: %w", err)
	}
	return s.client.Set(context.Background(), redisKey(id), raw, ttl).Err()
}

func (s *redisStore) Destroy(id string) error {
	return s.client.Del(context.Background(), redisKey(id)).Err()
}

// ------------------- Memory driver -------------------

type memoryEntry struct {
	data      map[string]string
	expiresAt time.Time
}

type memoryStore struct {
	mu    sync.Mutex
	items map[string]memoryEntry
}

func newMemoryStore() *memoryStore {
	m := &memoryStore{items: map[string]memoryEntry{}}

	// Janitor: evict expired records so long-running servers don't grow
	// without bound.
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			now := time.Now()
			m.mu.Lock()
			for id, e := range m.items {
				if now.After(e.expiresAt) {
					delete(m.items, id)
				}
			}
			m.mu.Unlock()
		}
	}()

	return m
}

func (m *memoryStore) Read(id string) map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.items[id]
	if !ok || time.Now().After(e.expiresAt) {
		return map[string]string{}
	}

	out := make(map[string]string, len(e.data))
	for k, v := range e.data {
		out[k] = v
	}
	return out
}

func (m *memoryStore) Write(id string, data map[string]string, ttl time.Duration) error {
	copied := make(map[string]string, len(data))
	for k, v := range data {
		copied[k] = v
	}

	m.mu.Lock()
	m.items[id] = memoryEntry{data: copied, expiresAt: time.Now().Add(ttl)}
	m.mu.Unlock()
	return nil
}

func (m *memoryStore) Destroy(id string) error {
	m.mu.Lock()
	delete(m.items, id)
	m.mu.Unlock()
	return nil
}
