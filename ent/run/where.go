// Code generated by ent, DO NOT EDIT.

package run

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/geometriq/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldID, id))
}

// UID applies equality check predicate on the "uid" field. It's identical to UIDEQ.
func UID(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldUID, v))
}

// Seed applies equality check predicate on the "seed" field. It's identical to SeedEQ.
func Seed(v int64) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldSeed, v))
}

// Total applies equality check predicate on the "total" field. It's identical to TotalEQ.
func Total(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldTotal, v))
}

// Skipped applies equality check predicate on the "skipped" field. It's identical to SkippedEQ.
func Skipped(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldSkipped, v))
}

// ManifestPath applies equality check predicate on the "manifest_path" field. It's identical to ManifestPathEQ.
func ManifestPath(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldManifestPath, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCreatedAt, v))
}

// UIDEQ applies the EQ predicate on the "uid" field.
func UIDEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldUID, v))
}

// UIDNEQ applies the NEQ predicate on the "uid" field.
func UIDNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldUID, v))
}

// UIDIn applies the In predicate on the "uid" field.
func UIDIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldUID, vs...))
}

// UIDNotIn applies the NotIn predicate on the "uid" field.
func UIDNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldUID, vs...))
}

// UIDGT applies the GT predicate on the "uid" field.
func UIDGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldUID, v))
}

// UIDGTE applies the GTE predicate on the "uid" field.
func UIDGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldUID, v))
}

// UIDLT applies the LT predicate on the "uid" field.
func UIDLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldUID, v))
}

// UIDLTE applies the LTE predicate on the "uid" field.
func UIDLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldUID, v))
}

// UIDContains applies the Contains predicate on the "uid" field.
func UIDContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldUID, v))
}

// UIDHasPrefix applies the HasPrefix predicate on the "uid" field.
func UIDHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldUID, v))
}

// UIDHasSuffix applies the HasSuffix predicate on the "uid" field.
func UIDHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldUID, v))
}

// UIDEqualFold applies the EqualFold predicate on the "uid" field.
func UIDEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldUID, v))
}

// UIDContainsFold applies the ContainsFold predicate on the "uid" field.
func UIDContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldUID, v))
}

// SeedEQ applies the EQ predicate on the "seed" field.
func SeedEQ(v int64) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldSeed, v))
}

// SeedNEQ applies the NEQ predicate on the "seed" field.
func SeedNEQ(v int64) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldSeed, v))
}

// SeedIn applies the In predicate on the "seed" field.
func SeedIn(vs ...int64) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldSeed, vs...))
}

// SeedNotIn applies the NotIn predicate on the "seed" field.
func SeedNotIn(vs ...int64) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldSeed, vs...))
}

// SeedGT applies the GT predicate on the "seed" field.
func SeedGT(v int64) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldSeed, v))
}

// SeedGTE applies the GTE predicate on the "seed" field.
func SeedGTE(v int64) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldSeed, v))
}

// SeedLT applies the LT predicate on the "seed" field.
func SeedLT(v int64) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldSeed, v))
}

// SeedLTE applies the LTE predicate on the "seed" field.
func SeedLTE(v int64) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldSeed, v))
}

// TotalEQ applies the EQ predicate on the "total" field.
func TotalEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldTotal, v))
}

// TotalNEQ applies the NEQ predicate on the "total" field.
func TotalNEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldTotal, v))
}

// TotalIn applies the In predicate on the "total" field.
func TotalIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldTotal, vs...))
}

// TotalNotIn applies the NotIn predicate on the "total" field.
func TotalNotIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldTotal, vs...))
}

// TotalGT applies the GT predicate on the "total" field.
func TotalGT(v int) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldTotal, v))
}

// TotalGTE applies the GTE predicate on the "total" field.
func TotalGTE(v int) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldTotal, v))
}

// TotalLT applies the LT predicate on the "total" field.
func TotalLT(v int) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldTotal, v))
}

// TotalLTE applies the LTE predicate on the "total" field.
func TotalLTE(v int) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldTotal, v))
}

// SkippedEQ applies the EQ predicate on the "skipped" field.
func SkippedEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldSkipped, v))
}

// SkippedNEQ applies the NEQ predicate on the "skipped" field.
func SkippedNEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldSkipped, v))
}

// SkippedIn applies the In predicate on the "skipped" field.
func SkippedIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldSkipped, vs...))
}

// SkippedNotIn applies the NotIn predicate on the "skipped" field.
func SkippedNotIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldSkipped, vs...))
}

// SkippedGT applies the GT predicate on the "skipped" field.
func SkippedGT(v int) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldSkipped, v))
}

// SkippedGTE applies the GTE predicate on the "skipped" field.
func SkippedGTE(v int) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldSkipped, v))
}

// SkippedLT applies the LT predicate on the "skipped" field.
func SkippedLT(v int) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldSkipped, v))
}

// SkippedLTE applies the LTE predicate on the "skipped" field.
func SkippedLTE(v int) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldSkipped, v))
}

// ManifestPathEQ applies the EQ predicate on the "manifest_path" field.
func ManifestPathEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldManifestPath, v))
}

// ManifestPathNEQ applies the NEQ predicate on the "manifest_path" field.
func ManifestPathNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldManifestPath, v))
}

// ManifestPathIn applies the In predicate on the "manifest_path" field.
func ManifestPathIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldManifestPath, vs...))
}

// ManifestPathNotIn applies the NotIn predicate on the "manifest_path" field.
func ManifestPathNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldManifestPath, vs...))
}

// ManifestPathGT applies the GT predicate on the "manifest_path" field.
func ManifestPathGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldManifestPath, v))
}

// ManifestPathGTE applies the GTE predicate on the "manifest_path" field.
func ManifestPathGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldManifestPath, v))
}

// ManifestPathLT applies the LT predicate on the "manifest_path" field.
func ManifestPathLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldManifestPath, v))
}

// ManifestPathLTE applies the LTE predicate on the "manifest_path" field.
func ManifestPathLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldManifestPath, v))
}

// ManifestPathContains applies the Contains predicate on the "manifest_path" field.
func ManifestPathContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldManifestPath, v))
}

// ManifestPathHasPrefix applies the HasPrefix predicate on the "manifest_path" field.
func ManifestPathHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldManifestPath, v))
}

// ManifestPathHasSuffix applies the HasSuffix predicate on the "manifest_path" field.
func ManifestPathHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldManifestPath, v))
}

// ManifestPathEqualFold applies the EqualFold predicate on the "manifest_path" field.
func ManifestPathEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldManifestPath, v))
}

// ManifestPathContainsFold applies the ContainsFold predicate on the "manifest_path" field.
func ManifestPathContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldManifestPath, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Run) predicate.Run {
	return predicate.Run(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Run) predicate.Run {
	return predicate.Run(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Run) predicate.Run {
	return predicate.Run(sql.NotPredicates(p))
}
