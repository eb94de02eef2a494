package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/fuzzy-pick/internal/app"
	"github.com/atomicstack/fuzzy-pick/internal/picker"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Input   string
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envInput      = "FUZZY_PICK_INPUT"
	envPrompt     = "FUZZY_PICK_PROMPT"
	envHeader     = "FUZZY_PICK_HEADER"
	envWidth      = "FUZZY_PICK_WIDTH"
	envHeight     = "FUZZY_PICK_HEIGHT"
	envShowFooter = "FUZZY_PICK_FOOTER"
	envInline     = "FUZZY_PICK_INLINE"
	envMulti      = "FUZZY_PICK_MULTI"
	envAlgorithm  = "FUZZY_PICK_ALGORITHM"
	envThreshold  = "FUZZY_PICK_THRESHOLD"
	envLimit      = "FUZZY_PICK_LIMIT"
	envVerbose    = "FUZZY_PICK_VERBOSE"
	envTrace      = "FUZZY_PICK_TRACE"
	envLogFile    = "FUZZY_PICK_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("fuzzy-pick", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	input := fs.String("input", envOrDefault(env, envInput, app.StdinSource), "file to read candidates from, one per line (- reads stdin)")
	prompt := fs.String("prompt", envOrDefault(env, envPrompt, ""), "text shown before the query")
	header := fs.String("header", envOrDefault(env, envHeader, ""), "line shown above the list")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	inline := fs.Bool("inline", envOrBool(env, envInline, false), "draw below the cursor instead of on the alternate screen")
	multi := fs.Bool("multi", envOrBool(env, envMulti, false), "allow marking several entries with tab")
	algorithm := fs.String("algorithm", envOrDefault(env, envAlgorithm, picker.AlgorithmJaroWinkler), "similarity scorer: "+strings.Join(picker.Algorithms(), ", "))
	threshold := fs.Float64("threshold", envOrFloat(env, envThreshold, picker.DefaultThreshold), "minimum similarity in [0,1] for an entry to stay visible")
	limit := fs.Int("limit", envOrInt(env, envLimit, 0), "maximum number of ranked entries to show (0 shows all)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "show the highlighted position next to the counter")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			Prompt:     *prompt,
			Header:     *header,
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			Inline:     *inline,
			Multi:      *multi,
			Algorithm:  *algorithm,
			Threshold:  *threshold,
			Limit:      *limit,
			Verbose:    *verbose,
		},
		Input: *input,
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"input":     *input,
			"prompt":    *prompt,
			"header":    *header,
			"width":     strconv.Itoa(*width),
			"height":    strconv.Itoa(*height),
			"footer":    strconv.FormatBool(*footer),
			"inline":    strconv.FormatBool(*inline),
			"multi":     strconv.FormatBool(*multi),
			"algorithm": *algorithm,
			"threshold": strconv.FormatFloat(*threshold, 'g', -1, 64),
			"limit":     strconv.Itoa(*limit),
			"trace":     strconv.FormatBool(*trace),
			"verbose":   strconv.FormatBool(*verbose),
			"logFile":   *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrFloat(env map[string]string, key string, fallback float64) float64 {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects settings the picker cannot run with.
func Validate(cfg Config) error {
	if _, err := picker.ScorerFor(cfg.App.Algorithm); err != nil {
		return err
	}
	if cfg.App.Threshold < 0 || cfg.App.Threshold > 1 {
		return fmt.Errorf("threshold must be within [0,1] (got %g)", cfg.App.Threshold)
	}
	if cfg.App.Limit < 0 {
		return fmt.Errorf("limit must be >= 0 (got %d)", cfg.App.Limit)
	}
	if strings.TrimSpace(cfg.Input) == "" {
		return fmt.Errorf("input must name a file or %q", app.StdinSource)
	}
	return nil
}
