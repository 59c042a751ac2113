package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// ContentType classifies what kind of footage a source video holds.
	ContentType string

	// DatabaseBackend represents the database backend for caching.
	DatabaseBackend string
)

// MinCurveSamples is the smallest sample count a curve can carry and still be
// analyzable. Anything below this is rejected as malformed.
const MinCurveSamples = 2

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All content types supported.
const (
	HighlightContent ContentType = "highlight"
	InterviewContent ContentType = "interview"
	PresserContent   ContentType = "press_conference"
	BehindContent    ContentType = "behind_the_scenes"
	PracticeContent  ContentType = "practice"
	CrowdContent     ContentType = "atmosphere"
	HistoricContent  ContentType = "historical"
	GeneralContent   ContentType = "general" // fallback
)

// All cache backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidCacheBackends lists all valid cache backends.
var ValidCacheBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

/// contentKeywords drives ClassifyContent. Order matters: the first group with
// a keyword hit wins, so the more specific groups come first.
var contentKeywords = []struct {
	ctype    ContentType
	keywords []string
}{
	{PresserContent, []string{"press conference", "postgame", "pregame", "presser"}},
	{BehindContent, []string{"behind the scenes", "inside look", "exclusive"}},
	{HighlightContent, []string{"highlight", "touchdown", "interception", "sack", "catch"}},
	{InterviewContent, []string{"interview", "talks", "speaks", "discusses"}},
	{PracticeContent, []string{"practice", "training", "workout"}},
	{CrowdContent, []string{"fan", "gameday", "atmosphere", "crowd"}},
	{HistoricContent, []string{"history", "throwback", "classic", "remember"}},
}

// GetDefaultTitlePatterns returns the built-in title templates for a content
// type. The `titles` section of the config file can override these per type.
func GetDefaultTitlePatterns(ctype ContentType) []string {
	switch ctype {
	case HighlightContent:
		return []string{
			"This play is UNBELIEVABLE",
			"How did they pull this off?!",
			"You have to see this play",
			"REPLAY THIS. Over and over.",
		}
	case InterviewContent:
		return []string{
			"This interview hits DIFFERENT",
			"Real talk from the squad",
			"You need to hear this",
			"The mentality is ELITE",
		}
	case BehindContent:
		return []string{
			"This is what you DON'T see",
			"Behind the scenes access",
			"An inside look like no other",
		}
	case CrowdContent:
		return []string{
			"The fans showed UP",
			"This atmosphere is ELECTRIC",
			"The stadium was ROCKING",
		}
	case HistoricContent:
		return []string{
			"Never forget this moment",
			"This game was LEGENDARY",
			"A true throwback",
		}
	default:
		return []string{
			"You have to see this",
			"This moment is SPECIAL",
			"Built different",
			"The squad came to PLAY",
		}
	}
}

// GetDefaultHashtags returns the base hashtags plus content-type extras.
func GetDefaultHashtags(ctype ContentType) []string {
	tags := []string{"#Shorts"}
	switch ctype {
	case HighlightContent, HistoricContent:
		tags = append(tags, "#Highlights")
	case InterviewContent, PresserContent:
		tags = append(tags, "#Interview")
	}
	return tags
}
