// Package lvmatch implements the lvmatch command: load an instance, run the
// matching pipeline and print the outcome.
package lvmatch

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"

	"github.com/caarlos0/env/v11"

	"github.com/katalvlaran/lvmatch/instance"
	"github.com/katalvlaran/lvmatch/matching"
)

// Config holds lvmatch command configuration.
type Config struct {
	Instance          string `env:"LVMATCH_INSTANCE"`
	Search            string `env:"LVMATCH_SEARCH"             envDefault:"all"`
	MaxParticipants   int    `env:"LVMATCH_MAX_PARTICIPANTS"   envDefault:"9"`
	Fill              bool   `env:"LVMATCH_FILL"               envDefault:"true"`
	Seed              int64  `env:"LVMATCH_SEED"`
	UnlistedOverflow  bool   `env:"LVMATCH_UNLISTED_OVERFLOW"`
	UnmatchedBlocking bool   `env:"LVMATCH_UNMATCHED_BLOCKING"`
	ClosedProjects    bool   `env:"LVMATCH_CLOSED_PROJECTS"`
	Format            string `env:"LVMATCH_FORMAT"             envDefault:"text"`
	Verbose           bool   `env:"LVMATCH_VERBOSE"`
	PrintExample      bool
}

// ParseConfig parses environment variables, then flags, into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.Instance, "instance", cfg.Instance, "path to a YAML instance (default: built-in example)")
	fs.StringVar(&cfg.Search, "search", cfg.Search, "proposal orders to explore: all or single")
	fs.IntVar(&cfg.MaxParticipants, "max-participants", cfg.MaxParticipants, "largest instance accepted by -search=all")
	fs.BoolVar(&cfg.Fill, "fill", cfg.Fill, "place leftover participants into vacant projects at random")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed for the vacancy filler (0 = default stream)")
	fs.BoolVar(&cfg.UnlistedOverflow, "unlisted-overflow", cfg.UnlistedOverflow, "let unlisted participants exceed capacity")
	fs.BoolVar(&cfg.UnmatchedBlocking, "unmatched-blocking", cfg.UnmatchedBlocking, "check unmatched participants for blocking pairs")
	fs.BoolVar(&cfg.ClosedProjects, "closed-projects", cfg.ClosedProjects, "allow projects with capacity 0")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "output format: text or yaml")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "trace proposals and search progress to stderr")
	fs.BoolVar(&cfg.PrintExample, "print-example", cfg.PrintExample, "write the built-in example instance as YAML and exit")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Options translates cfg into matching options.
func (cfg Config) Options(errOut io.Writer) ([]matching.Option, error) {
	mode, err := matching.ParseSearchMode(cfg.Search)
	if err != nil {
		return nil, err
	}
	if cfg.MaxParticipants < 1 {
		return nil, fmt.Errorf("max participants must be positive, got %d", cfg.MaxParticipants)
	}

	opts := []matching.Option{
		matching.WithSearchMode(mode),
		matching.WithMaxSearchParticipants(cfg.MaxParticipants),
		matching.WithSeed(cfg.Seed),
	}
	if cfg.Fill {
		opts = append(opts, matching.WithFill())
	}
	if cfg.UnlistedOverflow {
		opts = append(opts, matching.WithUnlistedOverflow())
	}
	if cfg.UnmatchedBlocking {
		opts = append(opts, matching.WithUnmatchedBlocking())
	}
	if cfg.ClosedProjects {
		opts = append(opts, matching.WithClosedProjects())
	}
	if cfg.Verbose && errOut != nil {
		opts = append(opts, matching.WithLogger(log.New(errOut, "lvmatch: ", 0)))
	}

	return opts, nil
}

// Run executes the lvmatch command.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}

	if cfg.PrintExample {
		return instance.WriteDocument(out, instance.Example())
	}
	if cfg.Format != "text" && cfg.Format != "yaml" {
		return fmt.Errorf("unknown format %q", cfg.Format)
	}

	doc := instance.Example()
	if cfg.Instance != "" {
		var err error
		if doc, err = instance.Load(cfg.Instance); err != nil {
			return err
		}
	}
	in, err := doc.Instance()
	if err != nil {
		return err
	}
	opts, err := cfg.Options(errOut)
	if err != nil {
		return err
	}

	if err = ctx.Err(); err != nil {
		return err
	}
	res, err := matching.Solve(in, opts...)
	if err != nil {
		return err
	}

	if cfg.Format == "yaml" {
		return instance.WriteReport(out, instance.NewReport(doc, res))
	}

	return writeText(out, doc, res)
}

func writeText(out io.Writer, doc *instance.Document, res matching.Result) error {
	if !res.Found {
		_, err := fmt.Fprintln(out, "No stable matching found.")
		return err
	}

	if _, err := fmt.Fprintf(out, "Optimal stable matching: %v\n", res.Matching); err != nil {
		return err
	}
	for s, p := range res.Matching {
		project := "(unmatched)"
		if p != matching.Unmatched {
			project = doc.ProjectName(p)
		}
		if _, err := fmt.Fprintf(out, "  %s -> %s\n", doc.ParticipantName(s), project); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(out, "Egalitarian cost: %d\n", res.Cost)
	if err == nil && res.Filled > 0 {
		_, err = fmt.Fprintf(out, "Filled vacancies: %d\n", res.Filled)
	}

	return err
}
