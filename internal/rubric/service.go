package rubric

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/formativa/rubrica/internal/scoring"
	"github.com/formativa/rubrica/internal/session"
)

// Result is the aggregated outcome of one calculated form: the included item
// ids in display order, their scores, and the mean.
type Result struct {
	Items  []string  `json:"items"`
	Scores []float64 `json:"scores"`
	Value  float64   `json:"value"`
}

// Snapshot is the full state of one form as served to a client: per-item live
// scores plus the final result once it has been revealed.
type Snapshot struct {
	Form       Form                `json:"form"`
	Session    session.FormSession `json:"session"`
	Scores     map[string]float64  `json:"scores"`
	Calculated bool                `json:"calculated"`
	Final      *Result             `json:"final,omitempty"`
}

// Service coordinates the form catalog, the scoring rules and the session
// store. Per-item scores update on every change; the final result is computed
// only on an explicit Calculate, after which exclusion changes recompute it
// implicitly the way the original form behaved.
type Service struct {
	store session.Store

	mu         sync.Mutex
	calculated map[string]bool
}

func NewService(store session.Store) *Service {
	return &Service{store: store, calculated: map[string]bool{}}
}

// Forms returns the catalog in display order.
func (s *Service) Forms() []Form { return Forms() }

// Snapshot loads the saved session for a form and scores it.
func (s *Service) Snapshot(ctx context.Context, formKey string) (Snapshot, error) {
	form, err := Get(formKey)
	if err != nil {
		return Snapshot{}, err
	}
	sess, err := s.store.Load(ctx, formKey)
	if err != nil {
		return Snapshot{}, err
	}
	s.mu.Lock()
	calculated := s.calculated[formKey]
	s.mu.Unlock()
	return s.snapshot(form, sess, calculated), nil
}

// Toggle applies one checkbox change and saves the session. The item's
// selection behavior (single choice, veto collapse, implied options) is
// applied before scoring.
func (s *Service) Toggle(ctx context.Context, formKey, itemID, optionID string, checked bool) (Snapshot, error) {
	form, err := Get(formKey)
	if err != nil {
		return Snapshot{}, err
	}
	item, ok := form.Item(itemID)
	if !ok {
		return Snapshot{}, fmt.Errorf("form %s has no item %q", formKey, itemID)
	}
	if !item.HasOption(optionID) {
		return Snapshot{}, fmt.Errorf("item %s has no option %q", itemID, optionID)
	}
	return s.mutate(ctx, form, func(sess *session.FormSession) {
		sess.Selections[itemID] = scoring.Toggle(item.Behavior, sess.Selections[itemID], optionID, checked)
	})
}

// SetPercent records the percent override. A non-finite value clears it.
func (s *Service) SetPercent(ctx context.Context, formKey string, value float64) (Snapshot, error) {
	form, err := Get(formKey)
	if err != nil {
		return Snapshot{}, err
	}
	return s.mutate(ctx, form, func(sess *session.FormSession) {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			sess.Percent = nil
			return
		}
		sess.Percent = &value
	})
}

// SetExcluded adds or removes an item from the exclusion set.
func (s *Service) SetExcluded(ctx context.Context, formKey, itemID string, excluded bool) (Snapshot, error) {
	form, err := Get(formKey)
	if err != nil {
		return Snapshot{}, err
	}
	if _, ok := form.Item(itemID); !ok {
		return Snapshot{}, fmt.Errorf("form %s has no item %q", formKey, itemID)
	}
	return s.mutate(ctx, form, func(sess *session.FormSession) {
		sess.SetExcluded(itemID, excluded)
	})
}

// Calculate reveals the final result for the form.
func (s *Service) Calculate(ctx context.Context, formKey string) (Snapshot, error) {
	form, err := Get(formKey)
	if err != nil {
		return Snapshot{}, err
	}
	sess, err := s.store.Load(ctx, formKey)
	if err != nil {
		return Snapshot{}, err
	}
	s.mu.Lock()
	s.calculated[formKey] = true
	s.mu.Unlock()
	return s.snapshot(form, sess, true), nil
}

// Reset clears the form: selections, exclusions, percent and the revealed
// result, and removes the persisted session.
func (s *Service) Reset(ctx context.Context, formKey string) (Snapshot, error) {
	form, err := Get(formKey)
	if err != nil {
		return Snapshot{}, err
	}
	if err := s.store.Delete(ctx, formKey); err != nil {
		return Snapshot{}, err
	}
	s.mu.Lock()
	delete(s.calculated, formKey)
	s.mu.Unlock()
	return s.snapshot(form, session.Empty(), false), nil
}

// mutate loads, edits and saves the session, then scores the new state. Saves
// are best effort, last write wins, mirroring the original autosave.
func (s *Service) mutate(ctx context.Context, form Form, edit func(*session.FormSession)) (Snapshot, error) {
	sess, err := s.store.Load(ctx, form.Key)
	if err != nil {
		return Snapshot{}, err
	}
	edit(&sess)
	_ = s.store.Save(ctx, form.Key, sess)
	s.mu.Lock()
	calculated := s.calculated[form.Key]
	s.mu.Unlock()
	return s.snapshot(form, sess, calculated), nil
}

func (s *Service) snapshot(form Form, sess session.FormSession, calculated bool) Snapshot {
	scores := ItemScores(form, sess)
	snap := Snapshot{
		Form:       form,
		Session:    sess,
		Scores:     scores,
		Calculated: calculated,
	}
	if calculated {
		snap.Final = finalize(form, sess, scores)
	}
	return snap
}

// ItemScores evaluates every item rule against the session.
func ItemScores(form Form, sess session.FormSession) map[string]float64 {
	scores := make(map[string]float64, len(form.Items))
	for _, it := range form.Items {
		sel := scoring.NewSelection(sess.Selections[it.ID])
		var pct *float64
		if it.PercentOption != "" {
			pct = sess.Percent
		}
		scores[it.ID] = it.Rule.Score(sel, pct)
	}
	return scores
}

func finalize(form Form, sess session.FormSession, scores map[string]float64) *Result {
	excluded := make(map[string]bool, len(sess.Excluded))
	for _, id := range sess.Excluded {
		excluded[id] = true
	}
	order := form.ItemOrder()
	res := Result{Value: scoring.FinalResult(order, scores, excluded)}
	for _, id := range order {
		if excluded[id] {
			continue
		}
		res.Items = append(res.Items, id)
		res.Scores = append(res.Scores, scores[id])
	}
	return &res
}
