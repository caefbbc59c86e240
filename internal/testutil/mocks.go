package testutil

import (
	"errors"
	"portfolio/internal/providers"
	"portfolio/internal/storage"
	"strings"
	"sync"
	"time"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// HasLog reports whether a record at level has a format containing substr.
func (m *MockLogger) HasLog(level, substr string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, l := range m.Logs {
		if l.Level == level && strings.Contains(l.Format, substr) {
			return true
		}
	}
	return false
}

// MockMetrics implements providers.MetricsProviderInterface.
type MockMetrics struct {
	mu                  sync.Mutex
	Requests            map[string]int
	CacheHits           int
	CacheMisses         int
	CachePurges         int
	PersistenceWrites   int
	PersistenceFailures map[string]int
	Entities            map[string]int
}

func NewMockMetrics() *MockMetrics {
	return &MockMetrics{
		Requests:            make(map[string]int),
		PersistenceFailures: make(map[string]int),
		Entities:            make(map[string]int),
	}
}

func (m *MockMetrics) IncRequestsTotal(endpoint string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests[endpoint]++
}
func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}
func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}
func (m *MockMetrics) IncCachePurges() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CachePurges++
}
func (m *MockMetrics) ObservePersistenceDuration(_ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PersistenceWrites++
}
func (m *MockMetrics) IncPersistenceFailures(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PersistenceFailures[key]++
}
func (m *MockMetrics) SetEntitiesTotal(category string, count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entities[category] = count
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu     sync.Mutex
	Data   map[string][]byte
	Purges int
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

func (m *MockCache) Purge() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data = make(map[string][]byte)
	m.Purges++
}

// MockCompressor implements storage.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Close() {}

var ErrInjected = errors.New("injected failure")

// MockStore is an in-memory storage.KeyValueStore whose operations can be
// made to fail per key.
type MockStore struct {
	mu       sync.Mutex
	Data     map[string][]byte
	FailGet  map[string]bool
	FailSet  map[string]bool
	FailAll  bool
	SetCalls []string
	Deleted  []string
}

func NewMockStore() *MockStore {
	return &MockStore{
		Data:    make(map[string][]byte),
		FailGet: make(map[string]bool),
		FailSet: make(map[string]bool),
	}
}

func (m *MockStore) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailAll || m.FailGet[key] {
		return nil, ErrInjected
	}
	v, ok := m.Data[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *MockStore) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetCalls = append(m.SetCalls, key)
	if m.FailAll || m.FailSet[key] {
		return ErrInjected
	}
	m.Data[key] = append([]byte(nil), value...)
	return nil
}

func (m *MockStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailAll {
		return ErrInjected
	}
	m.Deleted = append(m.Deleted, key)
	delete(m.Data, key)
	return nil
}

func (m *MockStore) Close() error { return nil }

// Raw returns the stored bytes for key, or nil.
func (m *MockStore) Raw(key string) []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Data[key]
}

// Put seeds key without recording a Set call.
func (m *MockStore) Put(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}
