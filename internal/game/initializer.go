package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/conquest/internal/common"
	"github.com/mitchelldurbincs/conquest/internal/config"
	"github.com/mitchelldurbincs/conquest/internal/game/ai"
	"github.com/mitchelldurbincs/conquest/internal/game/cards"
	"github.com/mitchelldurbincs/conquest/internal/game/core"
	"github.com/mitchelldurbincs/conquest/internal/game/events"
	"github.com/mitchelldurbincs/conquest/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/conquest/internal/game/mapgen"
	"github.com/mitchelldurbincs/conquest/internal/game/processor"
	"github.com/mitchelldurbincs/conquest/internal/game/rules"
	"github.com/mitchelldurbincs/conquest/internal/game/states"
)

// SetupMatch deals a new match and opens its first card round.
func SetupMatch(ctx context.Context, cfg GameConfig) (*Match, error) {
	return NewMatchInitializer(cfg).Initialize(ctx)
}

// MatchInitializer handles the staged set up of a match
type MatchInitializer struct {
	config GameConfig
	logger zerolog.Logger
}

// NewMatchInitializer creates a new match initializer
func NewMatchInitializer(cfg GameConfig) *MatchInitializer {
	return &MatchInitializer{
		config: cfg,
		logger: cfg.Logger.With().Str("component", "MatchInitializer").Logger(),
	}
}

// Initialize creates a match, deals territories, troops, capitals and hands,
// and starts round 1.
func (mi *MatchInitializer) Initialize(ctx context.Context) (*Match, error) {
	if err := checkContext(ctx); err != nil {
		mi.logger.Error().Err(err).Msg("Match creation cancelled before setup")
		return nil, err
	}

	mi.setupDefaults()

	if err := mi.validatePlayers(); err != nil {
		return nil, fmt.Errorf("invalid players: %w", err)
	}

	mapID, graph, err := mi.loadMap()
	if err != nil {
		return nil, fmt.Errorf("map loading failed: %w", err)
	}

	board, placements, err := mi.generateBoard(graph)
	if err != nil {
		return nil, fmt.Errorf("setup generation failed: %w", err)
	}

	gs := mi.initializeGameState(mapID, board, placements)

	m := mi.createMatch(gs)
	m.publish(events.NewMatchStartedEvent(m.id, len(gs.Players), mapID, mi.config.Seed))

	mi.performInitialSetup(m)

	if err := checkContext(ctx); err != nil {
		mi.logger.Error().Err(err).Msg("Match creation cancelled after setup")
		return nil, err
	}

	m.turnProcessor.startRound()

	mi.logger.Info().
		Str("match_id", m.id).
		Str("map_id", mapID).
		Int("players", len(gs.Players)).
		Int("territories", graph.Len()).
		Int64("seed", mi.config.Seed).
		Msg("Match created successfully")

	return m, nil
}

// setupDefaults fills in missing configuration
func (mi *MatchInitializer) setupDefaults() {
	if mi.config.Config == nil {
		mi.config.Config = config.Defaults()
	}
	if mi.config.Rng == nil {
		seed := mi.config.Seed
		if seed == 0 {
			mi.logger.Debug().Msg("No RNG or seed provided, seeding from the clock")
			seed = time.Now().UnixNano()
		}
		mi.config.Rng = rand.New(rand.NewSource(seed))
	}
	if mi.config.Dice == nil {
		mi.config.Dice = mi.config.Rng
	}
	if mi.config.MatchID == "" {
		mi.config.MatchID = uuid.NewString()
	}
	if mi.config.MapID == "" && mi.config.Graph == nil {
		mi.config.MapID = mapgen.ClassicMapID
	}
	for i := range mi.config.Players {
		if mi.config.Players[i].Color == "" {
			mi.config.Players[i].Color = common.PlayerColor(i)
		}
	}
	mi.logger = mi.logger.With().Str("match_id", mi.config.MatchID).Logger()
}

func (mi *MatchInitializer) validatePlayers() error {
	if err := common.ValidatePlayerCount(len(mi.config.Players)); err != nil {
		return err
	}
	for i, p := range mi.config.Players {
		if err := common.ValidatePlayerName(p.Name); err != nil {
			return fmt.Errorf("seat %d: %w", i, err)
		}
		if !common.IsValidHexColor(p.Color) {
			return fmt.Errorf("seat %d: invalid colour %q", i, p.Color)
		}
		if p.IsAI && (p.Difficulty < ai.Easy || p.Difficulty > ai.Hard) {
			return fmt.Errorf("seat %d: invalid difficulty %d", i, p.Difficulty)
		}
	}
	return nil
}

// loadMap resolves the map the match is played on
func (mi *MatchInitializer) loadMap() (string, *core.Graph, error) {
	if mi.config.Graph != nil {
		id := mi.config.MapID
		if id == "" {
			id = "custom"
		}
		return id, mi.config.Graph, nil
	}
	m, err := mapgen.Load(mi.config.MapID)
	if err != nil {
		return "", nil, err
	}
	return m.ID, m.Graph, nil
}

// generateBoard distributes territories, starting troops and capitals
func (mi *MatchInitializer) generateBoard(graph *core.Graph) (*core.Board, []mapgen.Placement, error) {
	n := len(mi.config.Players)
	setup := mapgen.SetupConfig{
		PlayerCount:    n,
		StartingArmies: mi.config.Config.Rules.StartingArmiesFor(n),
	}
	return mapgen.NewGenerator(graph, setup, mi.config.Rng).Generate()
}

// initializeGameState seats the players and deals their hands
func (mi *MatchInitializer) initializeGameState(mapID string, board *core.Board, placements []mapgen.Placement) *GameState {
	gs := &GameState{
		MatchID:  mi.config.MatchID,
		MapID:    mapID,
		Phase:    states.PhaseSetup,
		Players:  make([]Player, len(mi.config.Players)),
		Board:    board,
		Deck:     cards.NewDeck(mi.config.Rng),
		Revealed: make(map[core.TerritoryID]bool),
		Winner:   -1,
	}

	handSize := mi.config.Config.Rules.StartingHandSize
	for i, pc := range mi.config.Players {
		p := Player{
			ID:         i,
			Name:       pc.Name,
			Color:      pc.Color,
			IsAI:       pc.IsAI,
			Difficulty: pc.Difficulty,
			Capital:    placements[i].Capital,
			Alive:      true,
		}
		hand, drawn, _, err := gs.Deck.DrawInto(nil, handSize, mi.config.Rng)
		if err != nil {
			mi.logger.Warn().Err(err).Int("player_id", i).Int("drawn", drawn).Msg("Starting hand short")
		}
		p.Hand = hand
		gs.Players[i] = p

		mi.logger.Debug().
			Int("player_id", i).
			Str("name", p.Name).
			Bool("is_ai", p.IsAI).
			Str("difficulty", p.Difficulty.String()).
			Str("capital", string(p.Capital)).
			Int("territories", len(placements[i].Territories)).
			Msg("Player seated")
	}
	return gs
}

// createMatch wires the match with all its components
func (mi *MatchInitializer) createMatch(gs *GameState) *Match {
	cfg := mi.config.Config
	logger := mi.logger.With().Str("component", "Match").Logger()

	eventBus := events.NewEventBusWithLogger(logger)
	recorder := subscribers.NewRecorder()
	eventBus.Subscribe(recorder)

	gameContext := states.NewGameContext(gs.MatchID, len(gs.Players), logger)
	stateMachine := states.NewStateMachine(gameContext, eventBus)

	m := &Match{
		id:              gs.MatchID,
		seed:            mi.config.Seed,
		gs:              gs,
		rng:             mi.config.Rng,
		dice:            mi.config.Dice,
		logger:          logger,
		rules:           rulesFromConfig(cfg),
		bonuses:         cfg.Rules.HandBonuses,
		fog:             cfg.FogOfWar.Enabled,
		eventBus:        eventBus,
		recorder:        recorder,
		stateMachine:    stateMachine,
		winCondition:    rules.NewWinConditionChecker(logger),
		legalMoves:      rules.NewLegalMoveCalculator(),
		ai:              ai.NewEngine(aiSettingsFromConfig(cfg), mi.config.Rng, logger),
		actionProcessor: processor.NewActionProcessor(logger),
	}
	m.turnProcessor = NewTurnProcessor(m)
	return m
}

// performInitialSetup computes the opening statistics and fog
func (mi *MatchInitializer) performInitialSetup(m *Match) {
	m.updatePlayerStats()
	m.revealFog()
}
