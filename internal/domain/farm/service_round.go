package farm

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

var (
	ErrWrongPhase          = errors.New("transition not allowed in current phase")
	ErrNoCardsSelected     = errors.New("no cards selected")
	ErrTooManyCards        = errors.New("too many cards selected")
	ErrCardNotInHand       = errors.New("card not in hand")
	ErrDiscardLimitReached = errors.New("discard limit reached")
)

// SettledRound is the outcome of an advance transition: the updated aggregate,
// the events describing what happened, and whether the season is still live.
type SettledRound struct {
	Updated    GameAggregate
	Events     []DomainEvent
	ResultCode ResultCode
}

// RoundService owns every state transition of a season. Transitions take an
// aggregate by value and return an updated copy; the caller persists it.
type RoundService struct {
	rng *rand.Rand
}

func NewRoundService(rng *rand.Rand) *RoundService {
	return &RoundService{rng: rng}
}

// NewGame builds a fresh season seeded from the external field readings.
// Sustainability, productivity and pH start at fixed rule values regardless of
// the readings.
func (s *RoundService) NewGame(gameID string, seed SeedReadings, now time.Time) GameAggregate {
	deck := Shuffle(NewDeck(DeckCopiesPerCard), s.rng)
	hand := deck[:HandSize]
	deck = deck[HandSize:]

	return GameAggregate{
		GameID: gameID,
		Phase:  PhaseSelecting,
		Metrics: Metrics{
			Round:             1,
			Week:              1,
			Sustainability:    InitialSustainability,
			ProductivityIndex: InitialProductivityIndex,
			SoilMoisture:      seed.SoilMoisture,
			SoilPH:            InitialSoilPH,
			Temperature:       seed.Temperature,
			Rainfall:          seed.Rainfall,
			CropHealth:        seed.CropHealth,
		},
		Hand:            hand,
		Deck:            deck,
		CardsUsedCount:  map[string]int{},
		CurrentScenario: ScenarioForRound(1),
		Version:         1,
		UpdatedAt:       now,
	}
}

// takeFromHand removes the instances with the given IDs from the hand,
// preserving hand order, and returns them in the order the IDs were given.
func takeFromHand(hand []CardInstance, instanceIDs []string) (taken, remaining []CardInstance, err error) {
	remaining = append([]CardInstance(nil), hand...)
	for _, id := range instanceIDs {
		found := false
		for i, c := range remaining {
			if c.InstanceID == id {
				taken = append(taken, c)
				remaining = append(remaining[:i], remaining[i+1:]...)
				found = true
				break
			}
		}
		if !found {
			return nil, nil, fmt.Errorf("%w: %s", ErrCardNotInHand, id)
		}
	}
	return taken, remaining, nil
}

// ResolvePlay resolves a selection of 1-2 cards against the current state and
// parks the result for the acknowledge step. Played cards move to the discard
// pile immediately; metrics are untouched until the player acknowledges.
func (s *RoundService) ResolvePlay(g GameAggregate, instanceIDs []string, now time.Time) (GameAggregate, error) {
	if g.Phase != PhaseSelecting {
		return g, ErrWrongPhase
	}
	if len(instanceIDs) == 0 {
		return g, ErrNoCardsSelected
	}
	if len(instanceIDs) > MaxCardsPerPlay {
		return g, ErrTooManyCards
	}

	played, remaining, err := takeFromHand(g.Hand, instanceIDs)
	if err != nil {
		return g, err
	}

	effects, penalties := ResolveCards(played, g)

	next := g
	next.Hand = remaining
	next.DiscardPile = append(append([]CardInstance(nil), g.DiscardPile...), played...)
	next.CardsUsedCount = copyCounts(g.CardsUsedCount)
	for _, c := range played {
		next.CardsUsedCount[c.ID]++
	}
	next.Pending = &PendingPlay{Cards: played, Effects: effects, Penalties: penalties}

	outcome := RoundOutcome{
		Round:       g.Metrics.Round,
		CardsPlayed: played,
		Effects:     effects,
	}
	if g.CurrentScenario != nil {
		outcome.ScenarioTitle = g.CurrentScenario.Title
	}
	next.RoundOutcomes = append(append([]RoundOutcome(nil), g.RoundOutcomes...), outcome)

	next.Phase = PhaseEffectsShown
	next.Version++
	next.UpdatedAt = now
	return next, nil
}

// DiscardCards exchanges up to 2 hand cards for fresh draws, consuming one of
// the round's discard allowance. The allowance is a step function of current
// sustainability.
func (s *RoundService) DiscardCards(g GameAggregate, instanceIDs []string, now time.Time) (GameAggregate, error) {
	if g.Phase != PhaseSelecting {
		return g, ErrWrongPhase
	}
	if len(instanceIDs) == 0 {
		return g, ErrNoCardsSelected
	}
	if len(instanceIDs) > MaxCardsPerPlay {
		return g, ErrTooManyCards
	}
	if g.DiscardsUsedThisRound >= DiscardLimit(g.Metrics.Sustainability) {
		return g, ErrDiscardLimitReached
	}

	discarded, remaining, err := takeFromHand(g.Hand, instanceIDs)
	if err != nil {
		return g, err
	}

	next := g
	next.DiscardPile = append(append([]CardInstance(nil), g.DiscardPile...), discarded...)
	next.Hand, next.Deck, next.DiscardPile = DrawToFill(remaining, g.Deck, next.DiscardPile, s.rng)
	next.DiscardsUsedThisRound = g.DiscardsUsedThisRound + 1
	next.Version++
	next.UpdatedAt = now
	return next, nil
}

// AdvanceRound applies the pending play to the metrics and runs the
// between-round sequence: draw, step the scenario, scenario auto-effects,
// recurrent penalty pass, badge clearing, natural moisture decline, final
// crop-health recompute, then the terminal check with win evaluated before
// loss.
func (s *RoundService) AdvanceRound(g GameAggregate, now time.Time) (SettledRound, error) {
	if g.Phase != PhaseEffectsShown || g.Pending == nil {
		return SettledRound{}, ErrWrongPhase
	}

	pending := *g.Pending
	before := g.Metrics

	next := g
	next.Metrics = g.Metrics.ApplyCardEffects(pending.Effects)
	next.ActivePenalties = addPenalties(append([]Penalty(nil), g.ActivePenalties...), pending.Penalties)

	if n := len(pending.Cards); n > 0 {
		last := pending.Cards[n-1]
		next.LastCardPlayed = &last
		if IsDefensiveCard(last.Card) {
			next.ConsecutiveDefensiveCards = g.ConsecutiveDefensiveCards + 1
		} else {
			next.ConsecutiveDefensiveCards = 0
		}
	}

	next.Hand, next.Deck, next.DiscardPile = DrawToFill(next.Hand, next.Deck, next.DiscardPile, s.rng)

	next.Metrics.Round++
	next.Metrics.Week++
	next.DiscardsUsedThisRound = 0
	next.CurrentScenario = ScenarioForRound(next.Metrics.Round)
	next = applyScenarioAutoEffects(next)

	next = ApplyRecurrentPenalties(next)
	next = ClearResolvedPenalties(next)

	if !scenarioSetsMoisture(next.CurrentScenario) {
		next.Metrics.SoilMoisture = round1(max(0, next.Metrics.SoilMoisture-NaturalMoistureDecline))
	}

	next.Metrics.CropHealth = round2(CropHealthFrom(
		next.Metrics.ProductivityIndex, next.Metrics.SoilMoisture, pending.Effects.CropHealth))

	next.Pending = nil

	code := ResultOK
	switch {
	case next.Metrics.Round > SeasonRounds:
		code = ResultWin
		next.Phase = PhaseResults
	case next.Metrics.Sustainability <= 0:
		code = ResultLoss
		next.Phase = PhaseResults
		next.LoseReason = loseReasonSustainability
		next.LoseDetails = fmt.Sprintf(loseDetailsSustainabilityFmt, next.Metrics.Sustainability)
	default:
		next.Phase = PhaseSelecting
	}

	next.Version++
	next.UpdatedAt = now

	events := []DomainEvent{{
		Type:       "round_advanced",
		OccurredAt: now,
		Payload: map[string]any{
			"round":        before.Round,
			"cards_played": cardIDs(pending.Cards),
			"effects":      pending.Effects,
			"state_before": before,
			"state_after":  next.Metrics,
			"result_code":  code,
		},
	}}
	if code != ResultOK {
		events = append(events, DomainEvent{
			Type:       "season_finished",
			OccurredAt: now,
			Payload: map[string]any{
				"result_code": code,
				"metrics":     next.Metrics,
			},
		})
	}

	return SettledRound{Updated: next, Events: events, ResultCode: code}, nil
}

func applyScenarioAutoEffects(g GameAggregate) GameAggregate {
	sc := g.CurrentScenario
	if sc == nil || sc.AutoEffects == nil {
		return g
	}
	next := g
	ae := sc.AutoEffects
	if ae.SoilMoisture != nil {
		next.Metrics.SoilMoisture = round1(clamp(next.Metrics.SoilMoisture+*ae.SoilMoisture, 0, 100))
	}
	if ae.Temperature != nil {
		next.Metrics.Temperature = *ae.Temperature
	}
	if ae.Rainfall != nil {
		next.Metrics.Rainfall = *ae.Rainfall
	}
	if ae.ProductivityIndex != nil {
		next.Metrics.ProductivityIndex = round1(clamp(next.Metrics.ProductivityIndex+*ae.ProductivityIndex, 0, 100))
	}
	direct := 0.0
	if ae.CropHealth != nil {
		direct = *ae.CropHealth
	}
	next.Metrics.CropHealth = round2(CropHealthFrom(next.Metrics.ProductivityIndex, next.Metrics.SoilMoisture, direct))
	return next
}

func scenarioSetsMoisture(sc *ScenarioDescriptor) bool {
	return sc != nil && sc.AutoEffects != nil && sc.AutoEffects.SoilMoisture != nil
}

func copyCounts(src map[string]int) map[string]int {
	out := make(map[string]int, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

func cardIDs(cards []CardInstance) []string {
	ids := make([]string, 0, len(cards))
	for _, c := range cards {
		ids = append(ids, c.ID)
	}
	return ids
}
