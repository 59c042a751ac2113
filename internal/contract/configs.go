package contract

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/clipscout/clipscout/schema"
)

// Default values for configuration.
const (
	DefaultBoostThreshold = 0.25 // 25% above baseline qualifies as hot
	DefaultMinDuration    = 15
	DefaultMaxDuration    = 60
	DefaultMinSustained   = 10
	DefaultIntroExclusion = 0.10
	DefaultOutroExclusion = 0.05
	DefaultClipsPerVideo  = 3
	DefaultPeakBonus      = 1.2 // bonus at the sweet-spot duration
	DefaultEdgeBonus      = 0.8 // bonus at the min/max duration edges

	DefaultLookbackDays = 90
	DefaultTopAllTime   = 50

	DefaultResultLimit = 25
	MaxResultLimit     = 1000
	DefaultPrecision   = 1
)

// DefaultWorkers is the default number of concurrent workers to use.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// FinderConfig holds the tunables of the clip-finding algorithm. It is
// immutable per run: every Finder call receives the same validated copy, so
// threshold variants can be A/B-tested by constructing separate Finders.
type FinderConfig struct {
	BoostThreshold         float64 // Minimum relative boost over baseline to qualify
	MinDurationSeconds     int     // Shortest acceptable clip
	MaxDurationSeconds     int     // Longest acceptable clip
	MinSustainedSeconds    int     // Minimum contiguous hot run before acceptance
	IntroExclusionFraction float64 // Leading fraction of the video never clipped
	OutroExclusionFraction float64 // Trailing fraction of the video never clipped
	MaxCandidatesPerVideo  int     // Output cap per video
	PeakDurationBonus      float64 // Duration bonus at the geometric midpoint
	EdgeDurationBonus      float64 // Duration bonus at the min/max edges

	// TitlePatterns overrides the built-in templates per content type.
	// Types absent from the map fall back to schema.GetDefaultTitlePatterns.
	TitlePatterns map[schema.ContentType][]string
}

// Validate checks for degenerate configuration. Any violation here is a
// deployment error, so it fails at Finder construction time, before any
// video is processed.
func (fc *FinderConfig) Validate() error {
	if fc.BoostThreshold < 0 {
		return schema.InvalidConfigf("boost threshold must be >= 0, got %v", fc.BoostThreshold)
	}
	if fc.MinDurationSeconds <= 0 {
		return schema.InvalidConfigf("min duration must be positive, got %d", fc.MinDurationSeconds)
	}
	if fc.MinDurationSeconds > fc.MaxDurationSeconds {
		return schema.InvalidConfigf("min duration %d exceeds max duration %d", fc.MinDurationSeconds, fc.MaxDurationSeconds)
	}
	if fc.MinSustainedSeconds < 0 {
		return schema.InvalidConfigf("min sustained duration must be >= 0, got %d", fc.MinSustainedSeconds)
	}
	if fc.IntroExclusionFraction < 0 || fc.OutroExclusionFraction < 0 {
		return schema.InvalidConfigf("exclusion fractions must be >= 0")
	}
	if fc.IntroExclusionFraction+fc.OutroExclusionFraction >= 1 {
		return schema.InvalidConfigf("exclusion fractions sum to %v, must be < 1",
			fc.IntroExclusionFraction+fc.OutroExclusionFraction)
	}
	if fc.MaxCandidatesPerVideo <= 0 {
		return schema.InvalidConfigf("max candidates per video must be positive, got %d", fc.MaxCandidatesPerVideo)
	}
	if fc.EdgeDurationBonus <= 0 {
		return schema.InvalidConfigf("edge duration bonus must be positive, got %v", fc.EdgeDurationBonus)
	}
	if fc.PeakDurationBonus < fc.EdgeDurationBonus {
		return schema.InvalidConfigf("peak duration bonus %v below edge bonus %v", fc.PeakDurationBonus, fc.EdgeDurationBonus)
	}
	return nil
}

// SafetyConfig holds the content exclusion and review rules applied by the
// scanner before a video ever reaches the Finder.
type SafetyConfig struct {
	ExcludedVideoIDs []string          // Hard exclusions by ID
	BlockedKeywords  []string          // Title/description substrings that block a video
	BlockedHashtags  []string          // Hashtags that block a video
	FlaggedPlayers   map[string]string // Player name -> review note (flag, not block)
	FlaggedContent   []string          // Content markers that flag for review (e.g. "sponsored")
}

// Config holds the runtime configuration for a scan.
// This struct remains the "final, validated" config.
type Config struct {
	CurveDir string // Directory of per-video analytics exports

	Finder FinderConfig
	Safety SafetyConfig

	LookbackDays int // Recent-window scope in days
	TopAllTime   int // All-time top-N by views to include regardless of age
	AsOf         time.Time

	ResultLimit int
	Workers     int
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	Width       int // Terminal width override (0 = auto-detect)
	Detail      bool
	Explain     bool

	CacheBackend   schema.DatabaseBackend
	CacheDBConnect string // Please use env var as this is plaintext

	RunBackend   schema.DatabaseBackend
	RunDBConnect string // Please use env var as this is plaintext

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	CurveDirStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Limit          int    `mapstructure:"limit"`
	Workers        int    `mapstructure:"workers"`
	Precision      int    `mapstructure:"precision"`
	Output         string `mapstructure:"output"`
	OutputFile     string `mapstructure:"output-file"`
	Width          int    `mapstructure:"width"`
	Detail         bool   `mapstructure:"detail"`
	Emoji          string `mapstructure:"emoji"`
	Color          string `mapstructure:"color"`
	CacheBackend   string `mapstructure:"cache-backend"`
	CacheDBConnect string `mapstructure:"cache-db-connect"`
	RunBackend     string `mapstructure:"run-backend"`
	RunDBConnect   string `mapstructure:"run-db-connect"`

	// --- Finder tunables ---
	BoostThreshold float64 `mapstructure:"boost-threshold"`
	MinDuration    int     `mapstructure:"min-duration"`
	MaxDuration    int     `mapstructure:"max-duration"`
	MinSustained   int     `mapstructure:"min-sustained"`
	IntroExclusion float64 `mapstructure:"intro-exclusion"`
	OutroExclusion float64 `mapstructure:"outro-exclusion"`
	ClipsPerVideo  int     `mapstructure:"clips-per-video"`
	PeakBonus      float64 `mapstructure:"peak-bonus"`
	EdgeBonus      float64 `mapstructure:"edge-bonus"`

	// --- Scope ---
	LookbackDays int    `mapstructure:"lookback-days"`
	TopAllTime   int    `mapstructure:"top-alltime"`
	AsOf         string `mapstructure:"as-of"`

	// --- Fields from scanCmd.Flags() ---
	Explain bool `mapstructure:"explain"`

	// --- Config-file-only sections ---
	Safety SafetyRawInput      `mapstructure:"safety"`
	Titles map[string][]string `mapstructure:"titles"`
}

// SafetyRawInput holds the content-safety rules from the YAML config file.
type SafetyRawInput struct {
	ExcludedVideos  []string          `mapstructure:"excluded_videos"`
	BlockedKeywords []string          `mapstructure:"blocked_keywords"`
	BlockedHashtags []string          `mapstructure:"blocked_hashtags"`
	FlaggedPlayers  map[string]string `mapstructure:"flagged_players"`
	FlaggedContent  []string          `mapstructure:"flagged_content"`
}

// ProcessAndValidate converts the raw input into the final validated Config.
// Configuration errors fail fast here, before any video is processed.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	cfg.CurveDir = input.CurveDirStr

	cfg.Finder = FinderConfig{
		BoostThreshold:         input.BoostThreshold,
		MinDurationSeconds:     input.MinDuration,
		MaxDurationSeconds:     input.MaxDuration,
		MinSustainedSeconds:    input.MinSustained,
		IntroExclusionFraction: input.IntroExclusion,
		OutroExclusionFraction: input.OutroExclusion,
		MaxCandidatesPerVideo:  input.ClipsPerVideo,
		PeakDurationBonus:      input.PeakBonus,
		EdgeDurationBonus:      input.EdgeBonus,
	}
	if len(input.Titles) > 0 {
		cfg.Finder.TitlePatterns = make(map[schema.ContentType][]string, len(input.Titles))
		for ctype, patterns := range input.Titles {
			cfg.Finder.TitlePatterns[schema.ContentType(ctype)] = patterns
		}
	}
	if err := cfg.Finder.Validate(); err != nil {
		return err
	}

	cfg.Safety = SafetyConfig{
		ExcludedVideoIDs: input.Safety.ExcludedVideos,
		BlockedKeywords:  input.Safety.BlockedKeywords,
		BlockedHashtags:  input.Safety.BlockedHashtags,
		FlaggedPlayers:   input.Safety.FlaggedPlayers,
		FlaggedContent:   input.Safety.FlaggedContent,
	}

	if input.LookbackDays <= 0 {
		return schema.InvalidConfigf("lookback days must be positive, got %d", input.LookbackDays)
	}
	cfg.LookbackDays = input.LookbackDays
	if input.TopAllTime < 0 {
		return schema.InvalidConfigf("top-alltime must be >= 0, got %d", input.TopAllTime)
	}
	cfg.TopAllTime = input.TopAllTime

	cfg.AsOf = time.Now()
	if input.AsOf != "" {
		t, err := time.Parse(DateTimeFormat, input.AsOf)
		if err != nil {
			return schema.InvalidConfigf("invalid as-of date %q: %v", input.AsOf, err)
		}
		cfg.AsOf = t
	}

	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return schema.InvalidConfigf("limit must be between 1 and %d, got %d", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	if input.Workers <= 0 {
		return schema.InvalidConfigf("workers must be positive, got %d", input.Workers)
	}
	cfg.Workers = input.Workers

	cfg.Precision = input.Precision
	if cfg.Precision < 1 {
		cfg.Precision = 1
	}
	if cfg.Precision > 2 {
		cfg.Precision = 2
	}

	output := schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[output]; !ok {
		return schema.InvalidConfigf("invalid output mode %q", input.Output)
	}
	cfg.Output = output
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.Detail = input.Detail
	cfg.Explain = input.Explain

	cacheBackend := schema.DatabaseBackend(strings.ToLower(input.CacheBackend))
	if _, ok := schema.ValidCacheBackends[cacheBackend]; !ok {
		return schema.InvalidConfigf("invalid cache backend %q", input.CacheBackend)
	}
	cfg.CacheBackend = cacheBackend
	cfg.CacheDBConnect = input.CacheDBConnect
	if err := ValidateDatabaseConnectionString(cfg.CacheBackend, cfg.CacheDBConnect); err != nil {
		return err
	}

	if input.RunBackend != "" {
		runBackend := schema.DatabaseBackend(strings.ToLower(input.RunBackend))
		if _, ok := schema.ValidCacheBackends[runBackend]; !ok {
			return schema.InvalidConfigf("invalid run backend %q", input.RunBackend)
		}
		cfg.RunBackend = runBackend
	} else {
		cfg.RunBackend = schema.NoneBackend
	}
	cfg.RunDBConnect = input.RunDBConnect
	if err := ValidateDatabaseConnectionString(cfg.RunBackend, cfg.RunDBConnect); err != nil {
		return err
	}
	if cfg.RunBackend != schema.NoneBackend && cfg.RunBackend == cfg.CacheBackend &&
		cfg.RunBackend != schema.SQLiteBackend && cfg.RunDBConnect == cfg.CacheDBConnect {
		return schema.InvalidConfigf("run store and curve cache must not share a %s connection", cfg.RunBackend)
	}

	useEmojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return schema.InvalidConfigf("invalid emoji flag: %v", err)
	}
	cfg.UseEmojis = useEmojis

	useColors, err := ParseBoolString(input.Color)
	if err != nil {
		return schema.InvalidConfigf("invalid color flag: %v", err)
	}
	cfg.UseColors = useColors

	return nil
}

// ValidateDatabaseConnectionString checks that the connection string matches
// what the backend's driver expects. SQLite and none need no connection string.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("db connection string is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("db connection string is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	default:
		return fmt.Errorf("unknown database backend: %s", backend)
	}
	return nil
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Finder.TitlePatterns != nil {
		clone.Finder.TitlePatterns = make(map[schema.ContentType][]string, len(c.Finder.TitlePatterns))
		for ctype, patterns := range c.Finder.TitlePatterns {
			cp := make([]string, len(patterns))
			copy(cp, patterns)
			clone.Finder.TitlePatterns[ctype] = cp
		}
	}
	clone.Safety.ExcludedVideoIDs = append([]string(nil), c.Safety.ExcludedVideoIDs...)
	clone.Safety.BlockedKeywords = append([]string(nil), c.Safety.BlockedKeywords...)
	clone.Safety.BlockedHashtags = append([]string(nil), c.Safety.BlockedHashtags...)
	clone.Safety.FlaggedContent = append([]string(nil), c.Safety.FlaggedContent...)
	if c.Safety.FlaggedPlayers != nil {
		clone.Safety.FlaggedPlayers = make(map[string]string, len(c.Safety.FlaggedPlayers))
		for k, v := range c.Safety.FlaggedPlayers {
			clone.Safety.FlaggedPlayers[k] = v
		}
	}
	return &clone
}
