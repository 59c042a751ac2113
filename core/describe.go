package core

import (
	"crypto/md5"
	"encoding/binary"
	"net/url"
	"strconv"

	"github.com/clipscout/clipscout/internal/contract"
	"github.com/clipscout/clipscout/schema"
)

// describeClip maps a selected interval to its human-facing output record.
// Purely formats data already computed; no side effects.
func describeClip(iv schema.Interval, meta schema.VideoMeta, cfg *contract.FinderConfig) schema.ClipRecord {
	ctype := schema.ClassifyContent(meta.Title, meta.Description)

	return schema.ClipRecord{
		VideoID:         meta.VideoID,
		VideoTitle:      meta.Title,
		VideoURL:        meta.CanonicalURL,
		TimestampedURL:  timestampedURL(meta.CanonicalURL, iv.StartSeconds),
		StartSeconds:    iv.StartSeconds,
		EndSeconds:      iv.EndSeconds,
		StartFormatted:  schema.FormatTimestamp(iv.StartSeconds),
		EndFormatted:    schema.FormatTimestamp(iv.EndSeconds),
		DurationSeconds: iv.DurationSeconds(),
		PriorityScore:   schema.RoundTo(iv.PriorityScore, 1),
		BoostPercent:    schema.RoundTo(iv.Boost*100, 1),
		ClipRetention:   schema.RoundTo(iv.AvgRetention*100, 1),
		VideoRetention:  schema.RoundTo(iv.BaselineRetention*100, 1),
		ContentType:     ctype,
		SuggestedTitle:  suggestTitle(meta.VideoID, ctype, cfg),
		Hashtags:        schema.GetDefaultHashtags(ctype),
		SourceViews:     meta.Views,
	}
}

// suggestTitle picks a templated working title for the clip. The pattern
// index is derived from a hash of the video ID, so the pick is stable across
// runs but varied across videos. Two alternates ride along for the editor.
func suggestTitle(videoID string, ctype schema.ContentType, cfg *contract.FinderConfig) schema.TitleSuggestion {
	patterns := cfg.TitlePatterns[ctype]
	if len(patterns) == 0 {
		patterns = schema.GetDefaultTitlePatterns(ctype)
	}

	sum := md5.Sum([]byte(videoID))
	idx := int(binary.BigEndian.Uint64(sum[:8]) % uint64(len(patterns)))

	suggestion := schema.TitleSuggestion{Suggestion: patterns[idx]}
	for _, p := range patterns {
		if p == patterns[idx] {
			continue
		}
		suggestion.Alternatives = append(suggestion.Alternatives, p)
		if len(suggestion.Alternatives) == 2 {
			break
		}
	}
	return suggestion
}

// timestampedURL appends a start-time parameter to the video's canonical URL.
// Falls back to naive appending if the URL does not parse.
func timestampedURL(canonical string, startSeconds int) string {
	u, err := url.Parse(canonical)
	if err != nil {
		return canonical + "&t=" + strconv.Itoa(startSeconds)
	}
	q := u.Query()
	q.Set("t", strconv.Itoa(startSeconds))
	u.RawQuery = q.Encode()
	return u.String()
}
