package store

import (
	"errors"
	"testing"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestIdentityRoundTrip(t *testing.T) {
	s := openTest(t)

	if _, err := s.LoadIdentity(); !errors.Is(err, ErrNoIdentity) {
		t.Fatalf("LoadIdentity() on empty store error = %v, want ErrNoIdentity", err)
	}

	want := Identity{
		TelegramID:     123456789,
		Group:          "191",
		EnrollmentYear: 2023,
		InstallID:      "aaaa-bbbb",
	}
	if err := s.SaveIdentity(want); err != nil {
		t.Fatalf("SaveIdentity() error = %v", err)
	}

	got, err := s.LoadIdentity()
	if err != nil {
		t.Fatalf("LoadIdentity() error = %v", err)
	}
	if got != want {
		t.Errorf("LoadIdentity() = %+v, want %+v", got, want)
	}
}

func TestSaveIdentityOverwrites(t *testing.T) {
	s := openTest(t)

	first := Identity{TelegramID: 1, Group: "191"}
	second := Identity{TelegramID: 1, Group: "192", EnrollmentYear: 2024}
	if err := s.SaveIdentity(first); err != nil {
		t.Fatalf("SaveIdentity(first) error = %v", err)
	}
	if err := s.SaveIdentity(second); err != nil {
		t.Fatalf("SaveIdentity(second) error = %v", err)
	}

	got, err := s.LoadIdentity()
	if err != nil {
		t.Fatalf("LoadIdentity() error = %v", err)
	}
	if got != second {
		t.Errorf("LoadIdentity() = %+v, want %+v", got, second)
	}
}

func TestSentVotes(t *testing.T) {
	s := openTest(t)
	const user = int64(42)

	sent, err := s.SentVotes(user, "main")
	if err != nil {
		t.Fatalf("SentVotes() error = %v", err)
	}
	if len(sent) != 0 {
		t.Fatalf("SentVotes() on empty store = %v, want empty", sent)
	}

	if err := s.MarkVoteSent(user, "main", 1, 2); err != nil {
		t.Fatalf("MarkVoteSent() error = %v", err)
	}
	if err := s.MarkVoteSent(user, "main", 1, 3); err != nil {
		t.Fatalf("MarkVoteSent() error = %v", err)
	}
	// Duplicate mark is a no-op.
	if err := s.MarkVoteSent(user, "main", 1, 2); err != nil {
		t.Fatalf("MarkVoteSent() duplicate error = %v", err)
	}
	// Other stage and other user stay separate.
	if err := s.MarkVoteSent(user, "canteen", 1, 2); err != nil {
		t.Fatalf("MarkVoteSent() error = %v", err)
	}
	if err := s.MarkVoteSent(user+1, "main", 5, 6); err != nil {
		t.Fatalf("MarkVoteSent() error = %v", err)
	}

	sent, err = s.SentVotes(user, "main")
	if err != nil {
		t.Fatalf("SentVotes() error = %v", err)
	}
	if len(sent) != 2 || !sent["1:2"] || !sent["1:3"] {
		t.Errorf("SentVotes() = %v, want {1:2, 1:3}", sent)
	}

	if err := s.ClearSentVotes(user, "main"); err != nil {
		t.Fatalf("ClearSentVotes() error = %v", err)
	}
	sent, err = s.SentVotes(user, "main")
	if err != nil {
		t.Fatalf("SentVotes() error = %v", err)
	}
	if len(sent) != 0 {
		t.Errorf("SentVotes() after clear = %v, want empty", sent)
	}

	// Clearing one stage leaves the other intact.
	sent, err = s.SentVotes(user, "canteen")
	if err != nil {
		t.Fatalf("SentVotes() error = %v", err)
	}
	if len(sent) != 1 || !sent["1:2"] {
		t.Errorf("SentVotes(canteen) after clearing main = %v, want {1:2}", sent)
	}
}
