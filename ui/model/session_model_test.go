package model

import (
	"testing"
	"time"
)

func TestSessionModel_TracksRunningSession(t *testing.T) {
	m := NewSessionModel()
	t0 := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	m.OnTick(true, t0)
	m.OnTick(true, t0.Add(3*time.Second))
	session, total := m.Values()
	if session != 3*time.Second || total != 3*time.Second {
		t.Fatalf("expected 3s/3s, got %v/%v", session, total)
	}
}

func TestSessionModel_AccumulatesAcrossSessions(t *testing.T) {
	m := NewSessionModel()
	t0 := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	m.OnTick(true, t0)
	m.OnTick(false, t0.Add(2*time.Second))
	m.OnTick(true, t0.Add(10*time.Second))
	m.OnTick(true, t0.Add(15*time.Second))

	session, total := m.Values()
	if session != 5*time.Second {
		t.Fatalf("expected session 5s, got %v", session)
	}
	if total != 7*time.Second {
		t.Fatalf("expected total 7s, got %v", total)
	}
}

func TestSessionModel_IdleTicksAreNoops(t *testing.T) {
	m := NewSessionModel()
	t0 := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	m.OnTick(false, t0)
	m.OnTick(false, t0.Add(time.Minute))
	if session, total := m.Values(); session != 0 || total != 0 {
		t.Fatalf("idle model should stay zero, got %v/%v", session, total)
	}
}
