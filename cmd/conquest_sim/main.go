package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/conquest/internal/common"
	"github.com/mitchelldurbincs/conquest/internal/config"
	"github.com/mitchelldurbincs/conquest/internal/game"
	"github.com/mitchelldurbincs/conquest/internal/game/ai"
	"github.com/mitchelldurbincs/conquest/internal/game/events"
	"github.com/mitchelldurbincs/conquest/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/conquest/internal/match"
	"github.com/mitchelldurbincs/conquest/internal/monitoring"
)

const monitorInterval = 5 * time.Second

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config file")
	players := flag.Int("players", -1, "Number of computer players (-1 to use config default)")
	difficulty := flag.String("difficulty", "", "Computer difficulty: Easy, Normal or Hard (empty to use config default)")
	seed := flag.Int64("seed", -1, "Seed of the first match, 0 for a clock seed (-1 to use config default)")
	matches := flag.Int("matches", -1, "Number of matches to simulate (-1 to use config default)")
	maxSteps := flag.Int("max-steps", -1, "Step limit per match, 0 for none (-1 to use config default)")
	mapID := flag.String("map", "", "Map to play on (empty for the classic map)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	quiet := flag.Bool("quiet", false, "Only print match summaries")
	flag.Parse()

	// Initialize configuration
	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	if err := config.LoadEnvironmentConfig(os.Getenv("APP_ENV")); err != nil {
		log.Fatal().Err(err).Msg("Failed to load environment config")
	}

	cfg := config.Get()

	// Use config defaults if not overridden by flags
	if *players == -1 {
		*players = cfg.Sim.Players
	}
	if *difficulty == "" {
		*difficulty = cfg.Sim.Difficulty
	}
	if *seed == -1 {
		*seed = cfg.Sim.Seed
	}
	if *matches == -1 {
		*matches = cfg.Sim.Matches
	}
	if *maxSteps == -1 {
		*maxSteps = cfg.Sim.MaxSteps
	}
	if *logLevel == "" {
		*logLevel = cfg.Sim.LogLevel
	}

	// Setup logging
	setupLogging(*logLevel)

	if err := common.ValidatePlayerCount(*players); err != nil {
		log.Fatal().Err(err).Int("players", *players).Msg("Invalid player count")
	}
	diff, err := ai.ParseDifficulty(*difficulty)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid difficulty")
	}
	if *matches < 1 {
		log.Fatal().Int("matches", *matches).Msg("At least one match is required")
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	if path := config.ConfigFilePath(); path != "" {
		config.WatchConfig(func(c *config.Config) {
			zerolog.SetGlobalLevel(parseLevel(c.Sim.LogLevel))
			log.Info().Str("file", path).Msg("Config reloaded")
		}, func(err error) {
			log.Warn().Err(err).Msg("Ignoring invalid config change")
		})
	}

	log.Info().
		Int("players", *players).
		Str("difficulty", diff.String()).
		Int64("seed", *seed).
		Int("matches", *matches).
		Int("max_steps", *maxSteps).
		Msg("Starting simulation")

	// Setup graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	manager := match.NewManager(cfg.Match)
	defer manager.Close()

	monitor := monitoring.NewMatchMonitor(manager, cfg.Match.MaxMatches, monitorInterval, log.Logger)
	monitor.Start()
	defer monitor.Stop()

	reports := make([]string, *matches)
	var wg sync.WaitGroup
	for i := 0; i < *matches; i++ {
		rules := *cfg
		gc := game.GameConfig{
			Players: computerPlayers(*players, diff),
			MapID:   *mapID,
			Seed:    *seed + int64(i),
			Config:  &rules,
		}
		id, m, err := manager.CreateMatch(ctx, gc)
		if err != nil {
			log.Error().Err(err).Int("match", i).Msg("Failed to create match")
			continue
		}
		if cfg.Development.VerboseLogging {
			sub := subscribers.NewLoggerSubscriber(loggerID(id), log.Logger.With().Str("match_id", id).Logger(), zerolog.DebugLevel)
			sub.SetDevMode(cfg.Development.LogEventDetails)
			m.EventBus().Subscribe(sub)
		}
		m.EventBus().SubscribeFunc(events.TypePlayerEliminated, func(e events.Event) {
			ev := e.(*events.PlayerEliminatedEvent)
			log.Info().
				Str("match_id", e.MatchID()).
				Int("player_id", ev.PlayerID).
				Int("eliminated_by", ev.EliminatedBy).
				Int("final_rank", ev.FinalRank).
				Msg("Player eliminated")
		})

		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			reports[i] = simulate(ctx, manager, id, *maxSteps, *quiet)
		}(i, id)
	}
	wg.Wait()

	for _, r := range reports {
		if r != "" {
			fmt.Print(r)
		}
	}
	metrics := monitor.Sample()
	log.Info().
		Int("peak_matches", metrics.PeakActive).
		Int("peak_goroutines", metrics.PeakGoroutines).
		Msg("Simulation complete")
}

// simulate drives one match to its end and returns the printable report.
func simulate(ctx context.Context, manager *match.Manager, id string, maxSteps int, quiet bool) string {
	var sb strings.Builder
	start := time.Now()

	err := manager.Do(id, func(m *game.Match) error {
		res, err := m.Run(ctx, maxSteps)
		m.EventBus().Unsubscribe(loggerID(id))
		fmt.Fprintf(&sb, "=== match %s (seed %d) ===\n", id, m.Seed())
		if !quiet {
			for _, line := range res.Log {
				sb.WriteString(line)
				sb.WriteByte('\n')
			}
		}
		writeSummary(&sb, m, res.State)
		return err
	})
	if err != nil {
		log.Error().Err(err).Str("match_id", id).Msg("Simulation stopped")
	}

	log.Info().
		Str("match_id", id).
		Dur("duration", time.Since(start)).
		Msg("Match simulated")
	return sb.String()
}

func writeSummary(sb *strings.Builder, m *game.Match, gs *game.GameState) {
	if m.IsOver() {
		fmt.Fprintf(sb, "Winner: %s after %d rounds\n", m.PlayerName(m.Winner()), gs.Round)
	} else {
		fmt.Fprintf(sb, "No winner after %d rounds (phase %s)\n", gs.Round, gs.Phase)
	}
	for _, p := range gs.Players {
		status := "ALIVE"
		if !p.Alive {
			status = "DEAD"
		}
		fmt.Fprintf(sb, "  %-10s %-5s territories=%-3d troops=%-4d conquered=%-3d hands=%d\n",
			p.Name, status, p.Stats.Territories, p.Stats.Troops, p.Stats.TerritoriesConquered, p.Stats.HandsPlayed)
	}
	sb.WriteByte('\n')
}

func loggerID(matchID string) string { return "sim-logger-" + matchID }

func computerPlayers(n int, d ai.Difficulty) []game.PlayerConfig {
	out := make([]game.PlayerConfig, n)
	for i := range out {
		out[i] = game.PlayerConfig{
			Name:       fmt.Sprintf("Bot %d", i+1),
			IsAI:       true,
			Difficulty: d,
		}
	}
	return out
}

func setupLogging(level string) {
	zerolog.SetGlobalLevel(parseLevel(level))

	// Check if we're in production
	if os.Getenv("APP_ENV") == "production" {
		// JSON output for production
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		// Pretty console output for development
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
