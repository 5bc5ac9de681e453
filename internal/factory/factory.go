package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/frogfen/internal/dependencies/clock"
	"github.com/mcoot/frogfen/internal/dependencies/random"
	"github.com/mcoot/frogfen/internal/rules"
	"github.com/mcoot/frogfen/internal/services/board"
	"github.com/mcoot/frogfen/internal/services/dictionary"
	"github.com/mcoot/frogfen/internal/services/game"
	"github.com/mcoot/frogfen/internal/services/generator"
	"github.com/mcoot/frogfen/internal/services/scoring"
	"github.com/mcoot/frogfen/internal/storage"
	"github.com/mcoot/frogfen/internal/storage/memory"
	redisstorage "github.com/mcoot/frogfen/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random
	Seeds  random.Source

	Rules *rules.Rules

	// Services
	DictionaryService *dictionary.Service
	BoardService      *board.Service
	ScoringService    *scoring.Service
	Generator         *generator.Service
	Engine            *game.Engine
	GameController    *game.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// DictionaryPath is the path to the dictionary file (optional)
	// If empty, dictionary must be loaded manually
	DictionaryPath string
	// RulesPath is a YAML rules file (optional)
	// If empty, the built-in rules are used
	RulesPath string
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	r, err := rules.Load(cfg.RulesPath)
	if err != nil {
		return nil, err
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	return newWithDependencies(store, clock.New(), random.New(), random.NewSource(), r, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	seeds random.Source,
	r *rules.Rules,
	logger *slog.Logger,
) *App {
	dictService := dictionary.New(store, logger)
	boardService := board.New(logger)
	scoringService := scoring.New(r.LetterValues)
	generatorService := generator.New(r, dictService, logger)
	engine := game.NewEngine(dictService, scoringService, logger)
	gameController := game.NewController(
		store,
		engine,
		boardService,
		generatorService,
		r,
		clk,
		rnd,
		seeds,
		logger,
	)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		Seeds:             seeds,
		Rules:             r,
		DictionaryService: dictService,
		BoardService:      boardService,
		ScoringService:    scoringService,
		Generator:         generatorService,
		Engine:            engine,
		GameController:    gameController,
	}
}

// Close releases storage connections
func (a *App) Close() error {
	if c, ok := a.Storage.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
