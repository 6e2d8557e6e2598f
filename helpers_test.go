package larch

import (
	"errors"
	"testing"
)

// Shared test types and constructors used across test files.

// mustRegister fails the test if registration fails.
func mustRegister(t *testing.T, c Container, constructor interface{}) *Registration {
	t.Helper()
	entry, err := c.Register(constructor)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	return entry
}

// mustRegisterFactory fails the test if factory registration fails.
func mustRegisterFactory(t *testing.T, c Container, factory interface{}) *Registration {
	t.Helper()
	entry, err := c.RegisterFactory(factory)
	if err != nil {
		t.Fatalf("RegisterFactory: %v", err)
	}
	return entry
}

type testLogger struct{ Prefix string }
type testConfig struct{ DSN string }

type testDatabase struct {
	Config *testConfig
	Logger *testLogger
}

type testUserRepo struct {
	DB     *testDatabase
	Logger *testLogger
}

type testStore interface {
	Kind() string
}

type testMemStore struct{ ID int }

func (s *testMemStore) Kind() string { return "memory" }

// testRequest depends on a store through its interface.
type testRequest struct {
	Store testStore
}

func newTestLogger() *testLogger { return &testLogger{Prefix: "app"} }
func newTestConfig() *testConfig { return &testConfig{DSN: "postgres://localhost"} }

func newTestDatabase(cfg *testConfig, log *testLogger) *testDatabase {
	return &testDatabase{Config: cfg, Logger: log}
}

func newTestUserRepo(db *testDatabase, log *testLogger) *testUserRepo {
	return &testUserRepo{DB: db, Logger: log}
}

func newTestMemStore() testStore { return &testMemStore{} }

func newTestRequest(store testStore) *testRequest { return &testRequest{Store: store} }

// testSession implements io.Closer and counts how often it was closed.
type testSession struct {
	Closes int
}

func (s *testSession) Close() error {
	s.Closes++
	return nil
}

func newTestSession() *testSession { return &testSession{} }

// testFailCloser implements io.Closer but returns an error.
type testFailCloser struct{}

func (f *testFailCloser) Close() error {
	return errors.New("close failed")
}
