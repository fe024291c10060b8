package fsrs

import (
	"fmt"
	"math"
	"time"

	"github.com/scottlaurent/fsrs/pkg/timeutil"
)

// Engine is the Scheduling Engine: a Parameters value bound to the pure
// Memory Math functions. An Engine holds no mutable state and is safe for
// concurrent use by any number of goroutines — Schedule and
// Retrievability only ever read from the Parameters it was built with.
type Engine struct {
	params Parameters
}

// NewEngine validates params and returns an Engine bound to them.
func NewEngine(params Parameters) (*Engine, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	w := make([]float64, NumWeights)
	copy(w, params.W)
	params.W = w
	return &Engine{params: params}, nil
}

// SchedulingOutcome pairs the card that would result from a given grade
// with the review log entry describing that review.
type SchedulingOutcome struct {
	Card      Card
	ReviewLog ReviewLog
}

// RecordLog is the result of Schedule: one candidate outcome per grade.
// Exactly one of its four entries is ever applied by a host, chosen by
// whichever grade the reviewer picks.
type RecordLog map[Rating]SchedulingOutcome

// Best returns the outcome a host would apply for the given grade, along
// with whether that grade is present (it always is for a valid RecordLog).
func (r RecordLog) Best(grade Rating) (SchedulingOutcome, bool) {
	o, ok := r[grade]
	return o, ok
}

// Schedule computes the four candidate outcomes of reviewing card at now,
// one per possible grade. It does not choose among them — it is a pure,
// one-shot function that answers "what would happen for each grade",
// leaving grade selection to the caller.
func (e *Engine) Schedule(card Card, now time.Time) (RecordLog, error) {
	if err := timeutil.ValidateUTC(now); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInstant, err)
	}
	if err := card.Validate(); err != nil {
		return nil, err
	}

	preState := card.State
	elapsedDays := 0
	if preState != StateNew {
		if card.LastReview == nil {
			return nil, &InvariantError{Field: "LastReview", Message: "required to schedule a non-NEW card"}
		}
		elapsedDays = timeutil.WholeDayDiff(*card.LastReview, now)
	}

	base := card
	base.ElapsedDays = elapsedDays
	base.LastReview = &now
	base.Reps = card.Reps + 1

	candidates := map[Rating]Card{
		Again: base,
		Hard:  base,
		Good:  base,
		Easy:  base,
	}

	for _, g := range Ratings {
		c := candidates[g]
		c.State = nextState(preState, g)
		c.Step = nextStep(preState, c.State, g, card.Step)
		if preState == StateReview && g == Again {
			c.Lapses = card.Lapses + 1
		}
		candidates[g] = c
	}

	w := e.params.W

	switch preState {
	case StateNew:
		for _, g := range Ratings {
			c := candidates[g]
			c.Stability = InitialStability(w, g)
			c.Difficulty = InitialDifficulty(w, g)
			candidates[g] = c
		}
	case StateReview:
		r := Retrievability(elapsedDays, card.Stability)
		for _, g := range Ratings {
			c := candidates[g]
			rr := r
			c.Retrievability = &rr
			c.Difficulty = NextDifficulty(w, card.Difficulty, g)
			if g == Again {
				c.Stability = NextForgetStability(w, card.Difficulty, card.Stability, r)
			} else {
				c.Stability = NextRecallStability(w, card.Difficulty, card.Stability, r, g)
			}
			candidates[g] = c
		}
	case StateLearning, StateRelearning:
		// (d, s) are already the prior values in the copied base card;
		// the engine does not recompute them on a short-term review.
	}

	var hardDays, goodDays, easyDays int
	switch preState {
	case StateNew:
		easyDays = NextInterval(candidates[Easy].Stability, e.params.RequestRetention, e.params.MaximumInterval)
	case StateLearning, StateRelearning:
		hardDays = 0
		goodDays = NextInterval(candidates[Good].Stability, e.params.RequestRetention, e.params.MaximumInterval)
		easyDays = max(NextInterval(candidates[Easy].Stability, e.params.RequestRetention, e.params.MaximumInterval), goodDays+1)
	case StateReview:
		hardDays = NextInterval(candidates[Hard].Stability, e.params.RequestRetention, e.params.MaximumInterval)
		goodDays = NextInterval(candidates[Good].Stability, e.params.RequestRetention, e.params.MaximumInterval)
		hardDays = min(hardDays, goodDays)
		goodDays = max(goodDays, hardDays+1)
		easyDays = max(NextInterval(candidates[Easy].Stability, e.params.RequestRetention, e.params.MaximumInterval), goodDays+1)
	}
	// The ordering adjustments above can push past the cap; the cap wins.
	goodDays = min(goodDays, e.params.MaximumInterval)
	easyDays = min(easyDays, e.params.MaximumInterval)

	if preState == StateNew {
		again := candidates[Again]
		again.ScheduledDays = 0
		again.Due = timeutil.AddMinutes(now, 1)
		candidates[Again] = again

		hard := candidates[Hard]
		hard.ScheduledDays = 0
		hard.Due = timeutil.AddMinutes(now, 5)
		candidates[Hard] = hard

		good := candidates[Good]
		good.ScheduledDays = 0
		good.Due = timeutil.AddMinutes(now, 10)
		candidates[Good] = good

		easy := candidates[Easy]
		easy.ScheduledDays = easyDays
		easy.Due = timeutil.AddDays(now, easyDays)
		candidates[Easy] = easy
	} else {
		again := candidates[Again]
		again.ScheduledDays = 0
		again.Due = timeutil.AddMinutes(now, 5)
		candidates[Again] = again

		hard := candidates[Hard]
		hard.ScheduledDays = hardDays
		if hardDays > 0 {
			hard.Due = timeutil.AddDays(now, hardDays)
		} else {
			hard.Due = timeutil.AddMinutes(now, 10)
		}
		candidates[Hard] = hard

		good := candidates[Good]
		good.ScheduledDays = goodDays
		good.Due = timeutil.AddDays(now, goodDays)
		candidates[Good] = good

		easy := candidates[Easy]
		easy.ScheduledDays = easyDays
		easy.Due = timeutil.AddDays(now, easyDays)
		candidates[Easy] = easy
	}

	record := make(RecordLog, len(Ratings))
	for _, g := range Ratings {
		c := candidates[g]
		record[g] = SchedulingOutcome{
			Card: c,
			ReviewLog: ReviewLog{
				Grade:         g,
				PriorState:    preState,
				ScheduledDays: c.ScheduledDays,
				ElapsedDays:   elapsedDays,
				ReviewedAt:    now,
			},
		}
	}
	return record, nil
}

// Retrievability is the read-only host-facing projection of recall
// probability at an arbitrary instant, derived from the card's current
// due date rather than its last review: R = 2 ^ (-delta/stability), where
// delta is the signed whole-day distance from due to now. It deliberately
// does not share code with the Memory Math's forgetting curve in
// algorithm.go: that curve measures elapsed time since the last review
// and anchors at 90% recall one stability-unit out, while this one measures
// distance from the scheduled due date and anchors at the conventional
// half-life convention, 2^(-1) at one stability-unit past due.
func (e *Engine) Retrievability(card Card, now time.Time) (float64, error) {
	if err := timeutil.ValidateUTC(now); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInstant, err)
	}
	if card.State == StateNew || card.Stability <= 0 {
		return 0, nil
	}
	delta := timeutil.WholeDayDiff(card.Due, now)
	if now.Before(card.Due) {
		delta = -delta
	}
	return math.Pow(2, -float64(delta)/card.Stability), nil
}

func nextState(pre State, grade Rating) State {
	switch pre {
	case StateNew:
		if grade == Easy {
			return StateReview
		}
		return StateLearning
	case StateLearning, StateRelearning:
		if grade == Good || grade == Easy {
			return StateReview
		}
		return pre
	case StateReview:
		if grade == Again {
			return StateRelearning
		}
		return StateReview
	default:
		return pre
	}
}

// nextStep evolves the vestigial short-term step counter. The
// configuration surface keeps learning/relearning step durations around
// for round-tripping without the scheduling arithmetic ever consulting
// them, so this has no effect on any interval or due date Schedule
// produces; it exists only so a host round-tripping Card.Step sees
// something coherent rather than a frozen zero.
func nextStep(preState, postState State, grade Rating, priorStep int) int {
	if postState == StateReview {
		return 0
	}
	switch grade {
	case Again:
		return 0
	case Good:
		return priorStep + 1
	default:
		return priorStep
	}
}
