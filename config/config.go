package config

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"othello/game"
	"othello/searcher"
	"othello/searcher/agent"
)

type Config struct {
	ConfigPath string `yaml:"-"`

	Color       int    `yaml:"color"`
	Limit       int    `yaml:"limit"`
	Algorithm   string `yaml:"algorithm"`
	Caching     bool   `yaml:"caching"`
	Ordering    bool   `yaml:"ordering"`
	CacheKeying string `yaml:"cache_keying"`
	LeafEval    string `yaml:"leaf_eval"`

	BoardSize   int    `yaml:"board_size"`
	Games       int    `yaml:"games"`
	Parallelism int    `yaml:"parallelism"`
	OutputDir   string `yaml:"output_dir"`
	Seed        uint64 `yaml:"seed"`

	Debug bool `yaml:"debug"`
}

// Load parses command line flags, then overlays the YAML file named by -config
// if any. Flags set explicitly on the command line win over the file.
func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("othello", flag.ContinueOnError)
	fs.StringVar(&c.ConfigPath, "config", "", "path to a YAML config file")
	fs.IntVar(&c.Color, "color", 1, "player to search for: 1 (dark) or 2 (light)")
	fs.IntVar(&c.Limit, "limit", -1, "depth limit, negative for none")
	fs.StringVar(&c.Algorithm, "algorithm", string(agent.AlphaBeta), "search algorithm: minimax or alphabeta")
	fs.BoolVar(&c.Caching, "caching", false, "use state caching")
	fs.BoolVar(&c.Ordering, "ordering", false, "use node ordering (alphabeta only)")
	fs.StringVar(&c.CacheKeying, "cache-keying", "context", "cache keys: context (board, side to move, color, depth) or board")
	fs.StringVar(&c.LeafEval, "leaf-eval", "heuristic", "evaluation at the depth limit: heuristic or exact")
	fs.IntVar(&c.BoardSize, "board-size", 8, "board size for self-play experiments")
	fs.IntVar(&c.Games, "games", 10, "games per match-up")
	fs.IntVar(&c.Parallelism, "parallelism", 4, "games played concurrently")
	fs.StringVar(&c.OutputDir, "output-dir", "experiments", "directory for experiment records")
	fs.Uint64Var(&c.Seed, "seed", 1, "seed for random agents")
	fs.BoolVar(&c.Debug, "debug", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if c.ConfigPath == "" {
		return c.Validate()
	}

	explicit := map[string]string{}
	fs.Visit(func(f *flag.Flag) {
		explicit[f.Name] = f.Value.String()
	})

	data, err := os.ReadFile(c.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", c.ConfigPath, err)
	}
	for name, value := range explicit {
		if err := fs.Set(name, value); err != nil {
			return fmt.Errorf("failed to reapply flag %s: %w", name, err)
		}
	}
	return c.Validate()
}

func (c *Config) Validate() error {
	if _, err := game.ParsePlayer(c.Color); err != nil {
		return err
	}
	if _, err := agent.ParseAlgorithm(c.Algorithm); err != nil {
		return err
	}
	if _, err := searcher.ParseCacheKeying(c.CacheKeying); err != nil {
		return err
	}
	if _, err := leafEvaluation(c.LeafEval); err != nil {
		return err
	}
	if c.BoardSize < 4 || c.BoardSize%2 != 0 {
		return fmt.Errorf("board size must be even and at least 4, got %d", c.BoardSize)
	}
	if c.Games < 1 {
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}
	if c.Parallelism < 1 {
		return fmt.Errorf("parallelism must be positive, got %d", c.Parallelism)
	}
	return nil
}

func (c *Config) Player() game.Player {
	player, _ := game.ParsePlayer(c.Color)
	return player
}

func (c *Config) Settings() agent.Settings {
	return agent.Settings{
		Limit:     c.Limit,
		Algorithm: agent.Algorithm(c.Algorithm),
		Caching:   c.Caching,
		Ordering:  c.Ordering,
	}
}

// SearchOptions turns the evaluation and cache settings into searcher options.
func (c *Config) SearchOptions() []searcher.Option {
	keying, _ := searcher.ParseCacheKeying(c.CacheKeying)
	leaf, _ := leafEvaluation(c.LeafEval)
	return []searcher.Option{
		searcher.WithCacheKeying(keying),
		searcher.WithLeafEvaluation(leaf),
	}
}

func leafEvaluation(name string) (searcher.Evaluate, error) {
	switch name {
	case "heuristic", "":
		return searcher.Heuristic, nil
	case "exact":
		return searcher.ExactUtility, nil
	}
	return nil, fmt.Errorf("unknown leaf evaluation %q: want heuristic or exact", name)
}
