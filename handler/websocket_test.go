package handler

import (
	"errors"
	"testing"
)

type fakeFeedConn struct {
	messages [][]byte
	fail     bool
	closed   bool
}

func (f *fakeFeedConn) WriteMessage(_ int, data []byte) error {
	if f.fail {
		return errors.New("write failed")
	}
	f.messages = append(f.messages, data)
	return nil
}

func (f *fakeFeedConn) Close() error {
	f.closed = true
	return nil
}

func TestBroadcastToFeedReachesEveryClient(t *testing.T) {
	first := &fakeFeedConn{}
	second := &fakeFeedConn{}
	registerFeedConn(first)
	registerFeedConn(second)
	t.Cleanup(func() {
		unregisterFeedConn(first)
		unregisterFeedConn(second)
	})

	broadcastToFeed([]byte(`{"publicCode":"ORD-AB12CD34"}`))

	for _, conn := range []*fakeFeedConn{first, second} {
		if len(conn.messages) != 1 || string(conn.messages[0]) != `{"publicCode":"ORD-AB12CD34"}` {
			t.Fatalf("client received %q, want the broadcast payload", conn.messages)
		}
	}
}

func TestBroadcastToFeedEvictsFailedClients(t *testing.T) {
	healthy := &fakeFeedConn{}
	broken := &fakeFeedConn{fail: true}
	registerFeedConn(healthy)
	registerFeedConn(broken)
	t.Cleanup(func() {
		unregisterFeedConn(healthy)
		unregisterFeedConn(broken)
	})

	broadcastToFeed([]byte("first"))
	if !broken.closed {
		t.Fatal("failed client was not closed")
	}

	feedMu.Lock()
	stillRegistered := feedClients[broken]
	feedMu.Unlock()
	if stillRegistered {
		t.Fatal("failed client still in the registry")
	}

	broadcastToFeed([]byte("second"))
	if len(healthy.messages) != 2 {
		t.Fatalf("healthy client received %d messages, want 2", len(healthy.messages))
	}
	if len(broken.messages) != 0 {
		t.Fatalf("evicted client still received %d messages", len(broken.messages))
	}
}
