package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/PursuitReinforcementLearning/internal/config"
	"github.com/mitchelldurbincs/PursuitReinforcementLearning/internal/experience"
	"github.com/mitchelldurbincs/PursuitReinforcementLearning/internal/game"
	"github.com/mitchelldurbincs/PursuitReinforcementLearning/internal/game/core"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config file")
	episodes := flag.Int("episodes", -1, "Number of episodes to run (-1 to use config default)")
	seed := flag.Int64("seed", -1, "RNG seed (-1 to use config default; 0 seeds from the clock)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	flag.Parse()

	// Initialize configuration
	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}

	cfg := config.Get()

	// Use config defaults if not overridden by flags
	if *episodes == -1 {
		*episodes = cfg.Simulation.Episodes
	}
	if *seed == -1 {
		*seed = cfg.Simulation.Seed
	}
	if *logLevel == "" {
		*logLevel = cfg.Logging.Level
	}

	setupLogging(*logLevel, cfg.Logging.Format)

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))
	log.Info().Int64("seed", *seed).Int("episodes", *episodes).Msg("Starting simulation")

	opts := game.Options{
		GridSize:              cfg.Game.GridSize,
		NumHunters:            cfg.Game.NumHunters,
		NumRabbits:            cfg.Game.NumRabbits,
		TimestepReward:        cfg.Game.TimestepReward,
		CaptureReward:         cfg.Game.CaptureReward,
		RabbitPolicy:          cfg.Game.RabbitPolicy,
		RemoveHunterOnCapture: cfg.Game.RemoveHunterOnCapture,
	}

	engine, err := game.NewEngine(opts, rng, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create engine")
	}

	collector := experience.NewCollector(cfg.Simulation.ExperienceSize, log.Logger)

	for ep := 0; ep < *episodes; ep++ {
		runEpisode(engine, collector, rng, cfg.Simulation.MaxSteps)
	}

	log.Info().Int("transitions", collector.Len()).Msg("Simulation complete")
}

// runEpisode drives one episode with uniformly sampled legal hunter actions
func runEpisode(engine *game.Engine, collector *experience.Collector, rng *rand.Rand, maxSteps int) {
	state := engine.Reset()

	for step := 0; step < maxSteps; step++ {
		actions, err := sampleActions(engine, state, rng)
		if err != nil {
			log.Error().Err(err).Msg("Failed to sample actions")
			return
		}

		next, reward, done, err := engine.Step(state, actions)
		if err != nil {
			log.Error().Err(err).Int("step", step).Msg("Step failed")
			return
		}
		collector.OnStateTransition(engine.EpisodeID(), state, next, actions, reward, done)
		state = next

		if done {
			break
		}
	}

	stats := engine.Stats(state)
	log.Info().
		Str("episode_id", stats.EpisodeID).
		Int("steps", stats.Steps).
		Int("captures", stats.Captures).
		Float64("total_reward", stats.TotalReward).
		Int("hunters_remaining", stats.HuntersRemaining).
		Int("rabbits_remaining", stats.RabbitsRemaining).
		Msg("Episode finished")
}

// sampleActions picks one legal action per hunter slot. Removed hunters get
// a stay action, which the engine ignores anyway.
func sampleActions(engine *game.Engine, state *game.State, rng *rand.Rand) ([]int, error) {
	actions := make([]int, len(state.Hunters))
	for i := range state.Hunters {
		if !state.Hunters[i].Alive {
			actions[i] = core.ActionStay
			continue
		}

		mask, err := engine.LegalActions(state, i)
		if err != nil {
			return nil, err
		}
		var legal []int
		for a, ok := range mask {
			if ok {
				legal = append(legal, a)
			}
		}
		actions[i] = legal[rng.Intn(len(legal))]
	}
	return actions, nil
}

func setupLogging(level, format string) {
	// Parse log level
	var logLevel zerolog.Level
	switch level {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "info":
		logLevel = zerolog.InfoLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	if format == "json" {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	} else {
		// Pretty console output for development
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
	}
}
