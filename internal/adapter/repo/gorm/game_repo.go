package gormrepo

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"farmatro/internal/adapter/repo/gorm/model"
	"farmatro/internal/app/ports"
	"farmatro/internal/domain/farm"
)

type GameRepo struct {
	db *gorm.DB
}

func NewGameRepo(db *gorm.DB) GameRepo {
	return GameRepo{db: db}
}

func (r GameRepo) GetByID(ctx context.Context, gameID string) (farm.GameAggregate, error) {
	var m model.GameState
	if err := getDBFromCtx(ctx, r.db).Where("game_id = ?", gameID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return farm.GameAggregate{}, ports.ErrNotFound
		}
		return farm.GameAggregate{}, err
	}
	return fromModel(m)
}

func (r GameRepo) SaveWithVersion(ctx context.Context, game farm.GameAggregate, expectedVersion int64) error {
	db := getDBFromCtx(ctx, r.db)
	m, err := toModel(game)
	if err != nil {
		return err
	}
	if expectedVersion == 0 {
		if err := db.Create(&m).Error; err != nil {
			return err
		}
		return nil
	}

	res := db.Model(&model.GameState{}).
		Where("game_id = ? AND version = ?", game.GameID, expectedVersion).
		Updates(toUpdates(m))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}

func toModel(g farm.GameAggregate) (model.GameState, error) {
	m := model.GameState{
		GameID:                    g.GameID,
		Phase:                     string(g.Phase),
		Round:                     int32(g.Metrics.Round),
		Week:                      int32(g.Metrics.Week),
		Sustainability:            g.Metrics.Sustainability,
		ProductivityIndex:         g.Metrics.ProductivityIndex,
		SoilMoisture:              g.Metrics.SoilMoisture,
		SoilPH:                    g.Metrics.SoilPH,
		Temperature:               g.Metrics.Temperature,
		Rainfall:                  g.Metrics.Rainfall,
		CropHealth:                g.Metrics.CropHealth,
		ConsecutiveDefensiveCards: int32(g.ConsecutiveDefensiveCards),
		DiscardsUsedThisRound:     int32(g.DiscardsUsedThisRound),
		LoseReason:                g.LoseReason,
		LoseDetails:               g.LoseDetails,
		Version:                   g.Version,
		UpdatedAt:                 g.UpdatedAt,
	}
	if g.CurrentScenario != nil {
		m.CurrentScenarioRound = int32(g.CurrentScenario.Round)
	}

	var err error
	if m.Hand, err = json.Marshal(g.Hand); err != nil {
		return model.GameState{}, err
	}
	if m.Deck, err = json.Marshal(g.Deck); err != nil {
		return model.GameState{}, err
	}
	if m.DiscardPile, err = json.Marshal(g.DiscardPile); err != nil {
		return model.GameState{}, err
	}
	if m.CardsUsedCount, err = json.Marshal(g.CardsUsedCount); err != nil {
		return model.GameState{}, err
	}
	if m.ActivePenalties, err = json.Marshal(g.ActivePenalties); err != nil {
		return model.GameState{}, err
	}
	if m.RoundOutcomes, err = json.Marshal(g.RoundOutcomes); err != nil {
		return model.GameState{}, err
	}
	if g.LastCardPlayed != nil {
		if m.LastCardPlayed, err = json.Marshal(g.LastCardPlayed); err != nil {
			return model.GameState{}, err
		}
	}
	if g.Pending != nil {
		if m.Pending, err = json.Marshal(g.Pending); err != nil {
			return model.GameState{}, err
		}
	}
	return m, nil
}

func fromModel(m model.GameState) (farm.GameAggregate, error) {
	g := farm.GameAggregate{
		GameID: m.GameID,
		Phase:  farm.Phase(m.Phase),
		Metrics: farm.Metrics{
			Round:             int(m.Round),
			Week:              int(m.Week),
			Sustainability:    m.Sustainability,
			ProductivityIndex: m.ProductivityIndex,
			SoilMoisture:      m.SoilMoisture,
			SoilPH:            m.SoilPH,
			Temperature:       m.Temperature,
			Rainfall:          m.Rainfall,
			CropHealth:        m.CropHealth,
		},
		ConsecutiveDefensiveCards: int(m.ConsecutiveDefensiveCards),
		DiscardsUsedThisRound:     int(m.DiscardsUsedThisRound),
		LoseReason:                m.LoseReason,
		LoseDetails:               m.LoseDetails,
		Version:                   m.Version,
		UpdatedAt:                 m.UpdatedAt,
	}
	// scenario content is static; only the round number is stored
	g.CurrentScenario = farm.ScenarioForRound(int(m.CurrentScenarioRound))

	if err := json.Unmarshal(m.Hand, &g.Hand); err != nil {
		return farm.GameAggregate{}, err
	}
	if err := json.Unmarshal(m.Deck, &g.Deck); err != nil {
		return farm.GameAggregate{}, err
	}
	if err := json.Unmarshal(m.DiscardPile, &g.DiscardPile); err != nil {
		return farm.GameAggregate{}, err
	}
	if err := json.Unmarshal(m.CardsUsedCount, &g.CardsUsedCount); err != nil {
		return farm.GameAggregate{}, err
	}
	if err := json.Unmarshal(m.ActivePenalties, &g.ActivePenalties); err != nil {
		return farm.GameAggregate{}, err
	}
	if err := json.Unmarshal(m.RoundOutcomes, &g.RoundOutcomes); err != nil {
		return farm.GameAggregate{}, err
	}
	if len(m.LastCardPlayed) > 0 {
		if err := json.Unmarshal(m.LastCardPlayed, &g.LastCardPlayed); err != nil {
			return farm.GameAggregate{}, err
		}
	}
	if len(m.Pending) > 0 {
		if err := json.Unmarshal(m.Pending, &g.Pending); err != nil {
			return farm.GameAggregate{}, err
		}
	}
	return g, nil
}

// toUpdates spells the columns out because gorm's struct updates skip zero
// values, and fields like lose_reason legitimately write empty strings.
func toUpdates(m model.GameState) map[string]any {
	return map[string]any{
		"phase":                       m.Phase,
		"round":                       m.Round,
		"week":                        m.Week,
		"sustainability":              m.Sustainability,
		"productivity_index":          m.ProductivityIndex,
		"soil_moisture":               m.SoilMoisture,
		"soil_ph":                     m.SoilPH,
		"temperature":                 m.Temperature,
		"rainfall":                    m.Rainfall,
		"crop_health":                 m.CropHealth,
		"hand":                        m.Hand,
		"deck":                        m.Deck,
		"discard_pile":                m.DiscardPile,
		"cards_used_count":            m.CardsUsedCount,
		"active_penalties":            m.ActivePenalties,
		"last_card_played":            m.LastCardPlayed,
		"pending":                     m.Pending,
		"round_outcomes":              m.RoundOutcomes,
		"consecutive_defensive_cards": m.ConsecutiveDefensiveCards,
		"discards_used_this_round":    m.DiscardsUsedThisRound,
		"current_scenario_round":      m.CurrentScenarioRound,
		"lose_reason":                 m.LoseReason,
		"lose_details":                m.LoseDetails,
		"version":                     m.Version,
		"updated_at":                  m.UpdatedAt,
	}
}
