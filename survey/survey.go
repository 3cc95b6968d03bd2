// Copyright (c) 2025 The VITECH project.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"context"
	"errors"
	"fmt"

	"github.com/vitechbot/vitech-client/models"
)

// API is the slice of the backend client the survey flow needs.
type API interface {
	SurveyPairs(ctx context.Context, stage string) (*models.PairsResponse, error)
	SubmitPairVote(ctx context.Context, req models.PairVoteRequest) error
	FinalizeSurvey(ctx context.Context) error
	TelegramID() int64
}

// VoteStore persists which pair votes the backend has acknowledged,
// so a retried stage never re-sends a vote.
type VoteStore interface {
	MarkVoteSent(telegramID int64, stage string, objectA, objectB int64) error
	SentVotes(telegramID int64, stage string) (map[string]bool, error)
	ClearSentVotes(telegramID int64, stage string) error
}

var (
	ErrNoStage     = errors.New("no active survey stage")
	ErrBadChoice   = errors.New("bad choice value")
	ErrUnknownPair = errors.New("pair not in current stage")
)

// IncompleteError reports a stage submission attempted with pairs
// still unanswered. No network call is made.
type IncompleteError struct {
	Remaining int
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("stage incomplete: %d pairs unanswered", e.Remaining)
}

// StagesFor returns the stage sequence for a gender. Male users rate
// main duty objects, then canteen objects; female users have a single
// combined stage.
func StagesFor(gender string) []string {
	if gender == models.GenderFemale {
		return []string{models.StageFemale}
	}
	return []string{models.StageMain, models.StageCanteen}
}

// pairKey orders a pair's object ids so the same two objects map to
// the same key regardless of presentation order.
func pairKey(p models.Pair) string {
	a, b := p.ObjectAID, p.ObjectBID
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf("%d:%d", a, b)
}

// Flow walks a user through the pairwise survey, one stage at a time.
// Choices accumulate locally; SubmitStage sends them sequentially and
// records per-pair delivery status so a failed run resumes where it
// stopped.
type Flow struct {
	api   API
	store VoteStore

	stages   []string
	stageIdx int
	done     bool

	pairs   []models.Pair
	choices map[string]string
	status  map[string]string
}

// NewFlow starts a survey run for the given gender.
func NewFlow(api API, store VoteStore, gender string) *Flow {
	return &Flow{
		api:    api,
		store:  store,
		stages: StagesFor(gender),
	}
}

// CurrentStage returns the active stage identifier.
func (f *Flow) CurrentStage() (string, error) {
	if f.done || f.stageIdx >= len(f.stages) {
		return "", ErrNoStage
	}
	return f.stages[f.stageIdx], nil
}

// Done reports whether every stage has been submitted (or the backend
// says the user already voted).
func (f *Flow) Done() bool { return f.done }

// Pairs returns the pairs of the loaded stage in presentation order.
func (f *Flow) Pairs() []models.Pair { return f.pairs }

// LoadStage fetches the active stage's pairs. Stages with an empty
// ballot are skipped; when no stage with pairs remains the survey is
// finalized. Votes persisted from an earlier interrupted run are
// marked sent and need no new choice. When the backend reports the
// user already voted, the flow completes immediately.
func (f *Flow) LoadStage(ctx context.Context) error {
	for {
		stage, err := f.CurrentStage()
		if err != nil {
			return err
		}

		resp, err := f.api.SurveyPairs(ctx, stage)
		if err != nil {
			return err
		}
		if resp.AlreadyVoted {
			f.done = true
			f.pairs = nil
			return nil
		}
		if len(resp.Pairs) == 0 {
			// Nothing to answer here; move on.
			f.stageIdx++
			if f.stageIdx >= len(f.stages) {
				if err := f.api.FinalizeSurvey(ctx); err != nil {
					return err
				}
				f.done = true
				f.pairs = nil
				return nil
			}
			continue
		}

		sent, err := f.store.SentVotes(f.api.TelegramID(), stage)
		if err != nil {
			return err
		}

		f.pairs = resp.Pairs
		f.choices = make(map[string]string, len(resp.Pairs))
		f.status = make(map[string]string, len(resp.Pairs))
		for _, p := range resp.Pairs {
			key := pairKey(p)
			if sent[key] {
				f.status[key] = models.VoteSent
			} else {
				f.status[key] = models.VotePending
			}
		}
		return nil
	}
}

// RecordChoice stores the answer for one pair. Re-recording replaces
// the earlier answer; a pair whose vote already reached the backend is
// immutable.
func (f *Flow) RecordChoice(p models.Pair, choice string) error {
	switch choice {
	case models.ChoiceA, models.ChoiceB, models.ChoiceEqual:
	default:
		return ErrBadChoice
	}

	key := pairKey(p)
	status, ok := f.status[key]
	if !ok {
		return ErrUnknownPair
	}
	if status == models.VoteSent {
		return nil
	}
	f.choices[key] = choice
	return nil
}

// Choice returns the recorded answer for a pair, or "".
func (f *Flow) Choice(p models.Pair) string { return f.choices[pairKey(p)] }

// Status returns a pair's delivery status.
func (f *Flow) Status(p models.Pair) string { return f.status[pairKey(p)] }

// Remaining counts pairs that still need an answer before the stage
// can be submitted. Pairs already sent do not count.
func (f *Flow) Remaining() int {
	n := 0
	for _, p := range f.pairs {
		key := pairKey(p)
		if f.status[key] == models.VoteSent {
			continue
		}
		if f.choices[key] == "" {
			n++
		}
	}
	return n
}

// SubmitStage sends the stage's votes one by one, in presentation
// order. An unanswered pair aborts before any network traffic. The
// first delivery failure marks that pair failed and stops; already
// delivered votes keep their sent status, so calling SubmitStage again
// resumes with the rest. When the last stage completes the survey is
// finalized.
func (f *Flow) SubmitStage(ctx context.Context) error {
	stage, err := f.CurrentStage()
	if err != nil {
		return err
	}
	if n := f.Remaining(); n > 0 {
		return &IncompleteError{Remaining: n}
	}

	userID := f.api.TelegramID()
	for _, p := range f.pairs {
		key := pairKey(p)
		if f.status[key] == models.VoteSent {
			continue
		}

		err := f.api.SubmitPairVote(ctx, models.PairVoteRequest{
			UserID:    userID,
			ObjectAID: p.ObjectAID,
			ObjectBID: p.ObjectBID,
			Choice:    f.choices[key],
			Stage:     stage,
		})
		if err != nil {
			f.status[key] = models.VoteFailed
			return fmt.Errorf("vote for pair %s: %w", key, err)
		}

		f.status[key] = models.VoteSent
		if err := f.store.MarkVoteSent(userID, stage, min64(p), max64(p)); err != nil {
			return err
		}
	}

	// Stage complete; the sent set is only needed across retries.
	if err := f.store.ClearSentVotes(userID, stage); err != nil {
		return err
	}

	f.stageIdx++
	f.pairs = nil
	f.choices = nil
	f.status = nil
	if f.stageIdx >= len(f.stages) {
		if err := f.api.FinalizeSurvey(ctx); err != nil {
			return err
		}
		f.done = true
	}
	return nil
}

func min64(p models.Pair) int64 {
	if p.ObjectAID < p.ObjectBID {
		return int64(p.ObjectAID)
	}
	return int64(p.ObjectBID)
}

func max64(p models.Pair) int64 {
	if p.ObjectAID < p.ObjectBID {
		return int64(p.ObjectBID)
	}
	return int64(p.ObjectAID)
}
