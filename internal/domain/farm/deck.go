package farm

import (
	"math/rand"

	"github.com/google/uuid"
)

// NewDeck instantiates copies of every catalog card with unique instance IDs.
func NewDeck(copiesPerCard int) []CardInstance {
	if copiesPerCard <= 0 {
		copiesPerCard = DeckCopiesPerCard
	}
	deck := make([]CardInstance, 0, len(Cards)*copiesPerCard)
	for _, c := range Cards {
		for i := 0; i < copiesPerCard; i++ {
			deck = append(deck, CardInstance{Card: c, InstanceID: uuid.NewString()})
		}
	}
	return deck
}

// Shuffle returns a Fisher-Yates shuffled copy.
func Shuffle(cards []CardInstance, rng *rand.Rand) []CardInstance {
	out := make([]CardInstance, len(cards))
	copy(out, cards)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// DrawToFill refills the hand up to HandSize. When the deck runs dry the
// discard pile is shuffled in as the new deck and cleared, so no instance is
// ever duplicated.
func DrawToFill(hand, deck, discard []CardInstance, rng *rand.Rand) (newHand, newDeck, newDiscard []CardInstance) {
	newHand = append([]CardInstance(nil), hand...)
	newDeck = append([]CardInstance(nil), deck...)
	newDiscard = append([]CardInstance(nil), discard...)

	needed := HandSize - len(newHand)
	if needed <= 0 {
		return newHand, newDeck, newDiscard
	}

	if len(newDeck) == 0 && len(newDiscard) > 0 {
		newDeck = Shuffle(newDiscard, rng)
		newDiscard = nil
	}

	if needed > len(newDeck) {
		needed = len(newDeck)
	}
	newHand = append(newHand, newDeck[:needed]...)
	newDeck = newDeck[needed:]
	return newHand, newDeck, newDiscard
}
