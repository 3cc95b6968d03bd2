// Copyright (c) 2025 The VITECH project.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package identity

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/vitechbot/vitech-client/store"
)

var ErrNoTelegramID = errors.New("no telegram id: pass -id or set TELEGRAM_ID")

// Resolve determines who the user is for this run.
//
// Precedence: an explicitly supplied id (flag or env) wins, otherwise
// the id saved from an earlier run is reused. An explicit id that
// differs from the saved one replaces it and resets group and year,
// since the saved profile belongs to someone else. The install id is
// generated once per state directory and survives identity changes.
func Resolve(s *store.Store, explicitID int64) (store.Identity, error) {
	saved, err := s.LoadIdentity()
	switch {
	case errors.Is(err, store.ErrNoIdentity):
		if explicitID == 0 {
			return store.Identity{}, ErrNoTelegramID
		}
		id := store.Identity{
			TelegramID: explicitID,
			InstallID:  uuid.NewString(),
		}
		if err := s.SaveIdentity(id); err != nil {
			return store.Identity{}, fmt.Errorf("failed to persist identity: %w", err)
		}
		return id, nil

	case err != nil:
		return store.Identity{}, err
	}

	if explicitID == 0 || explicitID == saved.TelegramID {
		return saved, nil
	}

	id := store.Identity{
		TelegramID: explicitID,
		InstallID:  saved.InstallID,
	}
	if err := s.SaveIdentity(id); err != nil {
		return store.Identity{}, fmt.Errorf("failed to persist identity: %w", err)
	}
	return id, nil
}

// Remember stores the group and enrollment year reported by the
// backend so the next run starts registered.
func Remember(s *store.Store, id store.Identity, group string, year int) error {
	id.Group = group
	id.EnrollmentYear = year
	return s.SaveIdentity(id)
}
