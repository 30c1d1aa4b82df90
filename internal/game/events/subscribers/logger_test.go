package subscribers_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/conquest/internal/game/events"
	"github.com/mitchelldurbincs/conquest/internal/game/events/subscribers"
)

func TestLoggerSubscriber(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).With().Timestamp().Logger()

	logSub := subscribers.NewLoggerSubscriber("test-logger", logger, zerolog.InfoLevel)

	assert.Equal(t, "test-logger", logSub.ID())

	assert.True(t, logSub.InterestedIn(events.TypeMatchStarted))
	assert.True(t, logSub.InterestedIn(events.TypeTurnStarted))
	assert.True(t, logSub.InterestedIn("any.event.type"))
}

func TestLoggerSubscriberEventLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	logSub := subscribers.NewLoggerSubscriber("event-logger", logger, zerolog.InfoLevel)

	battle := events.NewBattleResolvedEvent("match-1", 0, 1, "peru", "brazil")
	battle.AttackerRolls = []int{6, 4}
	battle.DefenderRolls = []int{5}
	battle.DefenderLosses = 1
	battle.Conquered = true

	testCases := []struct {
		name  string
		event events.Event
		check func(t *testing.T, logLine map[string]interface{})
	}{
		{
			name:  "MatchStartedEvent",
			event: events.NewMatchStartedEvent("match-1", 4, "classic", 99),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(4), logLine["num_players"])
				assert.Equal(t, "classic", logLine["map_id"])
				assert.Equal(t, float64(99), logLine["seed"])
			},
		},
		{
			name:  "TurnStartedEvent",
			event: events.NewTurnStartedEvent("match-1", 2, 5),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(2), logLine["player_id"])
				assert.Equal(t, float64(5), logLine["round"])
			},
		},
		{
			name:  "BattleResolvedEvent",
			event: battle,
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(0), logLine["attacker_id"])
				assert.Equal(t, float64(1), logLine["defender_id"])
				assert.Equal(t, "brazil", logLine["to"])
				assert.Equal(t, []interface{}{float64(6), float64(4)}, logLine["attacker_rolls"])
				assert.Equal(t, float64(1), logLine["defender_losses"])
				assert.Equal(t, true, logLine["conquered"])
			},
		},
		{
			name:  "PlayerEliminatedEvent",
			event: events.NewPlayerEliminatedEvent("match-1", 2, 0, 3),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(2), logLine["player_id"])
				assert.Equal(t, float64(0), logLine["eliminated_by"])
				assert.Equal(t, float64(3), logLine["final_rank"])
			},
		},
		{
			name:  "MatchEndedEvent",
			event: events.NewMatchEndedEvent("match-1", 0, 12, 5*time.Minute),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(0), logLine["winner"])
				assert.Equal(t, float64(12), logLine["rounds"])
				assert.Equal(t, float64(300000), logLine["duration"]) // 5 minutes in ms
			},
		},
		{
			name:  "ActionRejectedEvent",
			event: events.NewActionRejectedEvent("match-1", 1, "end phase", nil),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(1), logLine["player_id"])
				assert.Equal(t, "end phase", logLine["action"])
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			buf.Reset()
			logSub.HandleEvent(tc.event)

			logOutput := buf.String()
			require.NotEmpty(t, logOutput, "Log output should not be empty")

			var logLine map[string]interface{}
			err := json.Unmarshal([]byte(logOutput), &logLine)
			require.NoError(t, err, "Should be able to parse log output as JSON")

			assert.Equal(t, "Game event", logLine["message"])
			assert.Equal(t, "info", logLine["level"])
			assert.Equal(t, tc.event.Type(), logLine["event_type"])
			assert.Equal(t, "match-1", logLine["match_id"])

			tc.check(t, logLine)
		})
	}
}

func TestLoggerSubscriberWithFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	logSub := subscribers.NewLoggerSubscriber("filtered-logger", logger, zerolog.InfoLevel)
	logSub.SetEventFilter([]string{events.TypeMatchStarted, events.TypeMatchEnded})

	assert.True(t, logSub.InterestedIn(events.TypeMatchStarted))
	assert.True(t, logSub.InterestedIn(events.TypeMatchEnded))
	assert.False(t, logSub.InterestedIn(events.TypeTurnStarted))
	assert.False(t, logSub.InterestedIn(events.TypeBattleResolved))

	bus := events.NewEventBus()
	bus.Subscribe(logSub)
	bus.Publish(events.NewTurnStartedEvent("m", 0, 1))
	assert.Empty(t, buf.String(), "filtered events are not delivered")

	bus.Publish(events.NewMatchEndedEvent("m", 0, 3, time.Second))
	assert.NotEmpty(t, buf.String())

	logSub.SetEventFilter(nil)
	assert.True(t, logSub.InterestedIn(events.TypeTurnStarted))
}

func TestLoggerSubscriberLogLevels(t *testing.T) {
	testCases := []struct {
		name     string
		logLevel zerolog.Level
		expected string
	}{
		{"Debug", zerolog.DebugLevel, "debug"},
		{"Info", zerolog.InfoLevel, "info"},
		{"Warn", zerolog.WarnLevel, "warn"},
		{"Error", zerolog.ErrorLevel, "error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := zerolog.New(&buf)

			logSub := subscribers.NewLoggerSubscriber("level-logger", logger, tc.logLevel)
			logSub.HandleEvent(events.NewMatchStartedEvent("m", 2, "classic", 1))

			var logLine map[string]interface{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &logLine))
			assert.Equal(t, tc.expected, logLine["level"])
		})
	}
}

func TestLoggerSubscriberDeckExhaustedWarns(t *testing.T) {
	var buf bytes.Buffer
	logSub := subscribers.NewLoggerSubscriber("warn-logger", zerolog.New(&buf), zerolog.DebugLevel)

	logSub.HandleEvent(events.NewDeckExhaustedEvent("m", 1, 2))

	var logLine map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logLine))
	assert.Equal(t, "warn", logLine["level"])
	assert.Equal(t, float64(2), logLine["missing"])
}

func TestLoggerSubscriberDevelopmentMode(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	logSub := subscribers.NewLoggerSubscriber("dev-logger", logger, zerolog.InfoLevel)
	logSub.SetDevMode(true)

	logSub.HandleEvent(events.NewFortifiedEvent("dev-match", 0, "ontario", "quebec", 7))

	var logLine map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logLine))

	eventData, ok := logLine["event_data"].(map[string]interface{})
	require.True(t, ok, "event_data should be an object")
	assert.Equal(t, "fortify.completed", eventData["type"])
	assert.Equal(t, "quebec", eventData["to"])
	assert.Equal(t, float64(7), eventData["amount"])
}
