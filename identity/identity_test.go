package identity

import (
	"errors"
	"testing"

	"github.com/vitechbot/vitech-client/store"
)

func openStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("store.Open() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestResolveFirstRun(t *testing.T) {
	s := openStore(t)

	if _, err := Resolve(s, 0); !errors.Is(err, ErrNoTelegramID) {
		t.Fatalf("Resolve(0) on empty store error = %v, want ErrNoTelegramID", err)
	}

	id, err := Resolve(s, 777)
	if err != nil {
		t.Fatalf("Resolve(777) error = %v", err)
	}
	if id.TelegramID != 777 {
		t.Errorf("TelegramID = %d, want 777", id.TelegramID)
	}
	if id.InstallID == "" {
		t.Error("InstallID is empty, want generated uuid")
	}

	// Persisted for the next run.
	saved, err := s.LoadIdentity()
	if err != nil {
		t.Fatalf("LoadIdentity() error = %v", err)
	}
	if saved != id {
		t.Errorf("saved identity = %+v, want %+v", saved, id)
	}
}

func TestResolveReusesSaved(t *testing.T) {
	s := openStore(t)

	first, err := Resolve(s, 777)
	if err != nil {
		t.Fatalf("Resolve(777) error = %v", err)
	}
	if err := Remember(s, first, "191", 2023); err != nil {
		t.Fatalf("Remember() error = %v", err)
	}

	tests := []struct {
		name     string
		explicit int64
		wantID   int64
		wantGrp  string
	}{
		{"no explicit id", 0, 777, "191"},
		{"same explicit id", 777, 777, "191"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(s, tt.explicit)
			if err != nil {
				t.Fatalf("Resolve(%d) error = %v", tt.explicit, err)
			}
			if got.TelegramID != tt.wantID || got.Group != tt.wantGrp {
				t.Errorf("Resolve(%d) = %+v, want id %d group %q", tt.explicit, got, tt.wantID, tt.wantGrp)
			}
			if got.InstallID != first.InstallID {
				t.Errorf("InstallID changed: %q -> %q", first.InstallID, got.InstallID)
			}
		})
	}
}

func TestResolveDifferentIDResetsProfile(t *testing.T) {
	s := openStore(t)

	first, err := Resolve(s, 777)
	if err != nil {
		t.Fatalf("Resolve(777) error = %v", err)
	}
	if err := Remember(s, first, "191", 2023); err != nil {
		t.Fatalf("Remember() error = %v", err)
	}

	got, err := Resolve(s, 888)
	if err != nil {
		t.Fatalf("Resolve(888) error = %v", err)
	}
	if got.TelegramID != 888 {
		t.Errorf("TelegramID = %d, want 888", got.TelegramID)
	}
	if got.Group != "" || got.EnrollmentYear != 0 {
		t.Errorf("profile not reset: group %q year %d", got.Group, got.EnrollmentYear)
	}
	if got.InstallID != first.InstallID {
		t.Errorf("InstallID changed across identity switch: %q -> %q", first.InstallID, got.InstallID)
	}
}
