// Package migrate upgrades beans loaded from storage into the current schema.
//
// Older versions of the journal kept a single score/memo rating directly on
// the bean. The current schema keeps a history of tasting records instead.
// Beans carrying legacy data get exactly one synthesized record; the
// deterministic record id makes the rewrite idempotent across repeated loads.
package migrate

import (
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/brewnote/brewnote/internal/model"
)

const (
	// legacyIDPrefix builds the deterministic id of a synthesized record.
	legacyIDPrefix = "legacy-"
	// legacyNotesLabel prefixes the user's old tasting tags in the
	// synthesized memo.
	legacyNotesLabel = "나의 컵노트"
)

// Engine rewrites legacy-shaped beans in memory before they reach the data
// store. It never fails: unparsable dates degrade to the current time.
type Engine struct {
	log zerolog.Logger
	now func() time.Time
}

// New creates a migration engine. now is injectable for tests; nil means
// time.Now.
func New(log zerolog.Logger, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{log: log, now: now}
}

// Beans migrates the full bean list and reports whether anything changed.
// The returned slice is the input slice; beans are rewritten in place.
func (e *Engine) Beans(beans []model.Bean) ([]model.Bean, bool) {
	changed := false
	for i := range beans {
		if e.migrateBean(&beans[i]) {
			changed = true
		}
	}
	return beans, changed
}

// migrateBean applies the legacy upgrade to a single bean. Returns true when
// the bean was rewritten.
func (e *Engine) migrateBean(b *model.Bean) bool {
	hasLegacyData := b.Score > 0 || strings.TrimSpace(b.Memo) != ""
	if !hasLegacyData {
		return false
	}
	legacyID := legacyIDPrefix + b.ID
	for _, rec := range b.TastingRecords {
		if rec.ID == legacyID {
			// Already migrated; a stale writer re-saved legacy fields.
			return false
		}
	}

	rec := model.TastingRecord{
		ID:           legacyID,
		Date:         ToISOInstant(SafeParseDate(b.RoastDate, e.now)),
		Score:        b.Score,
		Memo:         legacyMemo(b),
		TastingNotes: []string{},
	}
	b.TastingRecords = append(b.TastingRecords, rec)
	b.Score = 0
	b.Memo = ""
	b.MyNotes = []string{}

	e.log.Debug().Str("bean", b.ID).Str("record", legacyID).Msg("migrated legacy rating into tasting record")
	return true
}

// legacyMemo folds the bean's old tags and memo into one text block:
// a labeled line with the tags joined by spaces, then the memo, trimmed.
func legacyMemo(b *model.Bean) string {
	var parts []string
	if len(b.MyNotes) > 0 {
		parts = append(parts, legacyNotesLabel+": "+strings.Join(b.MyNotes, " "))
	}
	if strings.TrimSpace(b.Memo) != "" {
		parts = append(parts, b.Memo)
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}
