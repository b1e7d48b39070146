package api

import (
	"testing"

	"github.com/lookbusy1344/bigint/config"
)

func TestSessionManagerLifecycle(t *testing.T) {
	sm := NewSessionManager(NewBroadcaster(), config.DefaultConfig())

	session, err := sm.CreateSession()
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if sm.Count() != 1 {
		t.Fatalf("Count = %d, want 1", sm.Count())
	}

	got, err := sm.GetSession(session.ID)
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if got.ID != session.ID {
		t.Errorf("GetSession returned %s, want %s", got.ID, session.ID)
	}

	if err := sm.DestroySession(session.ID); err != nil {
		t.Fatalf("DestroySession: %v", err)
	}
	if sm.Count() != 0 {
		t.Errorf("Count after destroy = %d, want 0", sm.Count())
	}

	if _, err := sm.GetSession(session.ID); err != ErrSessionNotFound {
		t.Errorf("GetSession after destroy = %v, want ErrSessionNotFound", err)
	}
}

func TestSessionManagerDestroyUnknownSession(t *testing.T) {
	sm := NewSessionManager(NewBroadcaster(), config.DefaultConfig())
	if err := sm.DestroySession("nope"); err != ErrSessionNotFound {
		t.Errorf("DestroySession(unknown) = %v, want ErrSessionNotFound", err)
	}
}
