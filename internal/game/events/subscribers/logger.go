package subscribers

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/conquest/internal/game/events"
)

// LoggerSubscriber logs events to structured logs
type LoggerSubscriber struct {
	id              string
	logger          zerolog.Logger
	logLevel        zerolog.Level
	eventTypeFilter map[string]bool // If non-nil, only log these event types
	devMode         bool            // If true, log full event details
}

// NewLoggerSubscriber creates a new logger subscriber
func NewLoggerSubscriber(id string, logger zerolog.Logger, logLevel zerolog.Level) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:       id,
		logger:   logger.With().Str("subscriber", "event_logger").Logger(),
		logLevel: logLevel,
	}
}

// ID returns the subscriber's unique identifier
func (ls *LoggerSubscriber) ID() string {
	return ls.id
}

// SetEventFilter sets which event types to log (nil means log all)
func (ls *LoggerSubscriber) SetEventFilter(eventTypes []string) {
	if len(eventTypes) == 0 {
		ls.eventTypeFilter = nil
		return
	}

	ls.eventTypeFilter = make(map[string]bool)
	for _, eventType := range eventTypes {
		ls.eventTypeFilter[eventType] = true
	}
}

// SetDevMode enables or disables development mode logging
func (ls *LoggerSubscriber) SetDevMode(enabled bool) {
	ls.devMode = enabled
}

// InterestedIn returns true if the subscriber wants to receive this event type
func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	if ls.eventTypeFilter == nil {
		return true
	}
	return ls.eventTypeFilter[eventType]
}

// HandleEvent processes an event by logging it
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	eventLogger := ls.logger.With().
		Str("event_type", event.Type()).
		Str("match_id", event.MatchID()).
		Time("timestamp", event.Timestamp()).
		Logger()

	level := ls.logLevel
	// Deck exhaustion is always worth a warning.
	if _, ok := event.(*events.DeckExhaustedEvent); ok && level < zerolog.WarnLevel {
		level = zerolog.WarnLevel
	}

	var logEvent *zerolog.Event
	switch level {
	case zerolog.DebugLevel:
		logEvent = eventLogger.Debug()
	case zerolog.InfoLevel:
		logEvent = eventLogger.Info()
	case zerolog.WarnLevel:
		logEvent = eventLogger.Warn()
	case zerolog.ErrorLevel:
		logEvent = eventLogger.Error()
	default:
		logEvent = eventLogger.Info()
	}

	switch e := event.(type) {
	case *events.MatchStartedEvent:
		logEvent.
			Int("num_players", e.NumPlayers).
			Str("map_id", e.MapID).
			Int64("seed", e.Seed)

	case *events.MatchEndedEvent:
		logEvent.
			Int("winner", e.Winner).
			Int("rounds", e.Rounds).
			Dur("duration", e.Duration)

	case *events.RoundStartedEvent:
		logEvent.Int("round", e.Round)

	case *events.TurnStartedEvent:
		logEvent.
			Int("player_id", e.Metadata.PlayerID).
			Int("round", e.Metadata.Round)

	case *events.TurnEndedEvent:
		logEvent.
			Int("player_id", e.Metadata.PlayerID).
			Int("round", e.Metadata.Round).
			Int("entrenched", e.Entrenched)

	case *events.ReinforcementsGrantedEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Int("base", e.Base).
			Int("continent_bonus", e.ContinentBonus).
			Int("capital_bonus", e.CapitalBonus).
			Int("total", e.Total)

	case *events.TroopsDeployedEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Str("territory_id", string(e.Territory)).
			Int("amount", e.Amount).
			Int("remaining", e.Remaining)

	case *events.CardsPlayedEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Str("hand", e.Hand).
			Int("bonus", e.Bonus).
			Int("drawn", e.Drawn)

	case *events.CardDiscardedEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Str("card", e.Card.String()).
			Int("drawn", e.Drawn)

	case *events.CardsSkippedEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Str("reason", e.Reason).
			Int("discarded", e.Discarded)

	case *events.DeckReshuffledEvent:
		logEvent.Int("cards", e.Cards)

	case *events.DeckExhaustedEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Int("missing", e.Missing)

	case *events.AttackDeclaredEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Int("defender_id", e.DefenderID).
			Str("from", string(e.From)).
			Str("to", string(e.To)).
			Int("dice", e.Dice)

	case *events.BattleResolvedEvent:
		logEvent.
			Int("attacker_id", e.AttackerID).
			Int("defender_id", e.DefenderID).
			Str("from", string(e.From)).
			Str("to", string(e.To)).
			Ints("attacker_rolls", e.AttackerRolls).
			Ints("defender_rolls", e.DefenderRolls).
			Int("attacker_losses", e.AttackerLosses).
			Int("defender_losses", e.DefenderLosses).
			Bool("decisive", e.Decisive).
			Bool("conquered", e.Conquered)

	case *events.TerritoryConqueredEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Int("previous_owner", e.PreviousOwner).
			Str("territory_id", string(e.Territory)).
			Int("moved_in", e.MovedIn)

	case *events.CapitalCapturedEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Int("capital_of", e.CapitalOf).
			Str("territory_id", string(e.Territory))

	case *events.BlitzStoppedEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Int("rounds", e.Rounds).
			Str("reason", e.Reason)

	case *events.FortifiedEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Str("from", string(e.From)).
			Str("to", string(e.To)).
			Int("amount", e.Amount)

	case *events.PlayerEliminatedEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Int("eliminated_by", e.EliminatedBy).
			Int("final_rank", e.FinalRank)

	case *events.PlayerSurrenderedEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Int("to", e.To).
			Int("territories", e.Territories)

	case *events.PlayerWonEvent:
		logEvent.Int("player_id", e.PlayerID)

	case *events.StateTransitionEvent:
		logEvent.
			Str("from_phase", e.FromPhase).
			Str("to_phase", e.ToPhase).
			Str("reason", e.Reason)

	case *events.ActionRejectedEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Str("action", e.Action).
			Str("reason", e.Reason)
	}

	// In dev mode, also log the full event as JSON
	if ls.devMode {
		if jsonData, err := json.Marshal(event); err == nil {
			logEvent.RawJSON("event_data", jsonData)
		}
	}

	logEvent.Msg("Game event")
}
