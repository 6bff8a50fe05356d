package reports

import (
	"encoding/json"
	"os"
	"sort"
	"time"

	"match-backend/internal/shared/telemetry"
)

// legacyResume is the record shape the standalone resume store used
// before resumes were folded into the unified report collection.
type legacyResume struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	OriginalContent string `json:"originalContent"`
	HTMLContent     string `json:"htmlContent"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
	ViewCount       int    `json:"viewCount"`
}

// migrateLegacyResumes imports legacy resume records not already present
// (matched by id) into the unified shape. It is best effort: any read or
// parse problem leaves the collection unchanged. Returns the merged
// collection and whether anything was imported.
func migrateLegacyResumes(path string, existing []Report) ([]Report, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			telemetry.Warn("storage.legacy_read_failed", map[string]any{
				"path":  path,
				"error": err.Error(),
			})
		}
		return existing, false
	}

	// The legacy store keyed records by id.
	var legacy map[string]legacyResume
	if err := json.Unmarshal(data, &legacy); err != nil {
		telemetry.Warn("storage.legacy_corrupt", map[string]any{
			"path":  path,
			"error": err.Error(),
		})
		return existing, false
	}

	existingIDs := make(map[string]struct{}, len(existing))
	for _, r := range existing {
		existingIDs[r.ID] = struct{}{}
	}

	migrated := false
	merged := existing
	for _, record := range legacy {
		if record.ID == "" {
			continue
		}
		if _, ok := existingIDs[record.ID]; ok {
			continue
		}
		merged = append(merged, record.toReport())
		migrated = true
	}

	if migrated {
		sort.SliceStable(merged, func(i, j int) bool {
			return merged[i].CreatedAt.After(merged[j].CreatedAt)
		})
		telemetry.Info("storage.legacy_migrated", map[string]any{
			"path":  path,
			"total": len(merged),
		})
	}
	return merged, migrated
}

func (l legacyResume) toReport() Report {
	r := Report{
		ID:          l.ID,
		Title:       l.Title,
		Type:        TypeBeautifiedHTML,
		Resume:      l.OriginalContent,
		HTMLContent: l.HTMLContent,
		ViewCount:   l.ViewCount,
	}
	r.CreatedAt = parseLegacyTime(l.CreatedAt)
	r.UpdatedAt = parseLegacyTime(l.UpdatedAt)
	if r.UpdatedAt.Before(r.CreatedAt) {
		r.UpdatedAt = r.CreatedAt
	}
	return r
}

func parseLegacyTime(raw string) time.Time {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}
