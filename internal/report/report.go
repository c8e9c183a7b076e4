package report

import (
	"time"

	"github.com/google/uuid"

	"spritedex/internal/extractor"
	"spritedex/internal/resolver"
)

// MissingCanonical identifies a creature group no rule selected a canonical
// form for, with its full key listing for triage.
type MissingCanonical struct {
	CreatureID string   `json:"creature_id"`
	Keys       []string `json:"keys"`
}

// AmbiguousRegional identifies a generic regional key whose target region
// could not be determined for its creature.
type AmbiguousRegional struct {
	CreatureID string `json:"creature_id"`
	Key        string `json:"key"`
}

// NameCollision identifies forms of one creature that were assigned the
// same name.
type NameCollision struct {
	CreatureID string   `json:"creature_id"`
	Name       string   `json:"name"`
	Keys       []string `json:"keys"`
}

// Report is the immutable end-of-run summary of one stage invocation.
// Warnings are accumulated while the stage runs and printed once at the
// end, never interleaved with processing.
type Report struct {
	RunID       string    `json:"run_id"`
	Stage       string    `json:"stage"`
	GeneratedAt time.Time `json:"generated_at"`

	GroupCount int `json:"group_count"`
	FormCount  int `json:"form_count"`

	RejectedFiles     []extractor.Rejection `json:"rejected_files,omitempty"`
	MissingCanonical  []MissingCanonical    `json:"missing_canonical,omitempty"`
	AmbiguousRegional []AmbiguousRegional   `json:"ambiguous_regional,omitempty"`
	NameCollisions    []NameCollision       `json:"name_collisions,omitempty"`
}

// New starts a report for one stage, stamped with a fresh run id so
// persisted reports from repeated runs stay distinguishable.
func New(stage string) *Report {
	return &Report{
		RunID:       uuid.NewString(),
		Stage:       stage,
		GeneratedAt: time.Now().UTC(),
	}
}

// AddGroupDiagnostics folds one group's resolution diagnostics into the
// run report.
func (r *Report) AddGroupDiagnostics(creatureID string, keys []string, diag resolver.GroupDiagnostics) {
	if diag.MissingCanonical {
		r.MissingCanonical = append(r.MissingCanonical, MissingCanonical{
			CreatureID: creatureID,
			Keys:       keys,
		})
	}
	for _, key := range diag.AmbiguousRegional {
		r.AmbiguousRegional = append(r.AmbiguousRegional, AmbiguousRegional{
			CreatureID: creatureID,
			Key:        key,
		})
	}
	for _, collision := range diag.Collisions {
		r.NameCollisions = append(r.NameCollisions, NameCollision{
			CreatureID: creatureID,
			Name:       collision.Name,
			Keys:       collision.Keys,
		})
	}
}

// Clean reports whether the run produced no warnings.
func (r *Report) Clean() bool {
	return len(r.RejectedFiles) == 0 &&
		len(r.MissingCanonical) == 0 &&
		len(r.AmbiguousRegional) == 0 &&
		len(r.NameCollisions) == 0
}
