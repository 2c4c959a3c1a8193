// Code generated by ent, DO NOT EDIT.

package healthrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/mcp-router/mcp-router/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldLTE(FieldID, id))
}

// ServerID applies equality check predicate on the "server_id" field. It's identical to ServerIDEQ.
func ServerID(v string) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldEQ(FieldServerID, v))
}

// LastCheck applies equality check predicate on the "last_check" field. It's identical to LastCheckEQ.
func LastCheck(v time.Time) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldEQ(FieldLastCheck, v))
}

// LastSuccessfulConnection applies equality check predicate on the "last_successful_connection" field. It's identical to LastSuccessfulConnectionEQ.
func LastSuccessfulConnection(v time.Time) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldEQ(FieldLastSuccessfulConnection, v))
}

// ErrorCount applies equality check predicate on the "error_count" field. It's identical to ErrorCountEQ.
func ErrorCount(v int) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldEQ(FieldErrorCount, v))
}

// AvgResponseTime applies equality check predicate on the "avg_response_time" field. It's identical to AvgResponseTimeEQ.
func AvgResponseTime(v float64) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldEQ(FieldAvgResponseTime, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// ServerIDEQ applies the EQ predicate on the "server_id" field.
func ServerIDEQ(v string) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldEQ(FieldServerID, v))
}

// ServerIDNEQ applies the NEQ predicate on the "server_id" field.
func ServerIDNEQ(v string) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldNEQ(FieldServerID, v))
}

// ServerIDIn applies the In predicate on the "server_id" field.
func ServerIDIn(vs ...string) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldIn(FieldServerID, vs...))
}

// ServerIDNotIn applies the NotIn predicate on the "server_id" field.
func ServerIDNotIn(vs ...string) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldNotIn(FieldServerID, vs...))
}

// ServerIDGT applies the GT predicate on the "server_id" field.
func ServerIDGT(v string) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldGT(FieldServerID, v))
}

// ServerIDGTE applies the GTE predicate on the "server_id" field.
func ServerIDGTE(v string) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldGTE(FieldServerID, v))
}

// ServerIDLT applies the LT predicate on the "server_id" field.
func ServerIDLT(v string) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldLT(FieldServerID, v))
}

// ServerIDLTE applies the LTE predicate on the "server_id" field.
func ServerIDLTE(v string) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldLTE(FieldServerID, v))
}

// ServerIDContains applies the Contains predicate on the "server_id" field.
func ServerIDContains(v string) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldContains(FieldServerID, v))
}

// ServerIDHasPrefix applies the HasPrefix predicate on the "server_id" field.
func ServerIDHasPrefix(v string) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldHasPrefix(FieldServerID, v))
}

// ServerIDHasSuffix applies the HasSuffix predicate on the "server_id" field.
func ServerIDHasSuffix(v string) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldHasSuffix(FieldServerID, v))
}

// ServerIDEqualFold applies the EqualFold predicate on the "server_id" field.
func ServerIDEqualFold(v string) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldEqualFold(FieldServerID, v))
}

// ServerIDContainsFold applies the ContainsFold predicate on the "server_id" field.
func ServerIDContainsFold(v string) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldContainsFold(FieldServerID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldNotIn(FieldStatus, vs...))
}

// LastCheckEQ applies the EQ predicate on the "last_check" field.
func LastCheckEQ(v time.Time) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldEQ(FieldLastCheck, v))
}

// LastCheckNEQ applies the NEQ predicate on the "last_check" field.
func LastCheckNEQ(v time.Time) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldNEQ(FieldLastCheck, v))
}

// LastCheckIn applies the In predicate on the "last_check" field.
func LastCheckIn(vs ...time.Time) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldIn(FieldLastCheck, vs...))
}

// LastCheckNotIn applies the NotIn predicate on the "last_check" field.
func LastCheckNotIn(vs ...time.Time) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldNotIn(FieldLastCheck, vs...))
}

// LastCheckGT applies the GT predicate on the "last_check" field.
func LastCheckGT(v time.Time) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldGT(FieldLastCheck, v))
}

// LastCheckGTE applies the GTE predicate on the "last_check" field.
func LastCheckGTE(v time.Time) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldGTE(FieldLastCheck, v))
}

// LastCheckLT applies the LT predicate on the "last_check" field.
func LastCheckLT(v time.Time) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldLT(FieldLastCheck, v))
}

// LastCheckLTE applies the LTE predicate on the "last_check" field.
func LastCheckLTE(v time.Time) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldLTE(FieldLastCheck, v))
}

// LastCheckIsNil applies the IsNil predicate on the "last_check" field.
func LastCheckIsNil() predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldIsNull(FieldLastCheck))
}

// LastCheckNotNil applies the NotNil predicate on the "last_check" field.
func LastCheckNotNil() predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldNotNull(FieldLastCheck))
}

// LastSuccessfulConnectionEQ applies the EQ predicate on the "last_successful_connection" field.
func LastSuccessfulConnectionEQ(v time.Time) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldEQ(FieldLastSuccessfulConnection, v))
}

// LastSuccessfulConnectionNEQ applies the NEQ predicate on the "last_successful_connection" field.
func LastSuccessfulConnectionNEQ(v time.Time) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldNEQ(FieldLastSuccessfulConnection, v))
}

// LastSuccessfulConnectionIn applies the In predicate on the "last_successful_connection" field.
func LastSuccessfulConnectionIn(vs ...time.Time) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldIn(FieldLastSuccessfulConnection, vs...))
}

// LastSuccessfulConnectionNotIn applies the NotIn predicate on the "last_successful_connection" field.
func LastSuccessfulConnectionNotIn(vs ...time.Time) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldNotIn(FieldLastSuccessfulConnection, vs...))
}

// LastSuccessfulConnectionGT applies the GT predicate on the "last_successful_connection" field.
func LastSuccessfulConnectionGT(v time.Time) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldGT(FieldLastSuccessfulConnection, v))
}

// LastSuccessfulConnectionGTE applies the GTE predicate on the "last_successful_connection" field.
func LastSuccessfulConnectionGTE(v time.Time) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldGTE(FieldLastSuccessfulConnection, v))
}

// LastSuccessfulConnectionLT applies the LT predicate on the "last_successful_connection" field.
func LastSuccessfulConnectionLT(v time.Time) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldLT(FieldLastSuccessfulConnection, v))
}

// LastSuccessfulConnectionLTE applies the LTE predicate on the "last_successful_connection" field.
func LastSuccessfulConnectionLTE(v time.Time) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldLTE(FieldLastSuccessfulConnection, v))
}

// LastSuccessfulConnectionIsNil applies the IsNil predicate on the "last_successful_connection" field.
func LastSuccessfulConnectionIsNil() predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldIsNull(FieldLastSuccessfulConnection))
}

// LastSuccessfulConnectionNotNil applies the NotNil predicate on the "last_successful_connection" field.
func LastSuccessfulConnectionNotNil() predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldNotNull(FieldLastSuccessfulConnection))
}

// ErrorCountEQ applies the EQ predicate on the "error_count" field.
func ErrorCountEQ(v int) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldEQ(FieldErrorCount, v))
}

// ErrorCountNEQ applies the NEQ predicate on the "error_count" field.
func ErrorCountNEQ(v int) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldNEQ(FieldErrorCount, v))
}

// ErrorCountIn applies the In predicate on the "error_count" field.
func ErrorCountIn(vs ...int) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldIn(FieldErrorCount, vs...))
}

// ErrorCountNotIn applies the NotIn predicate on the "error_count" field.
func ErrorCountNotIn(vs ...int) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldNotIn(FieldErrorCount, vs...))
}

// ErrorCountGT applies the GT predicate on the "error_count" field.
func ErrorCountGT(v int) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldGT(FieldErrorCount, v))
}

// ErrorCountGTE applies the GTE predicate on the "error_count" field.
func ErrorCountGTE(v int) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldGTE(FieldErrorCount, v))
}

// ErrorCountLT applies the LT predicate on the "error_count" field.
func ErrorCountLT(v int) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldLT(FieldErrorCount, v))
}

// ErrorCountLTE applies the LTE predicate on the "error_count" field.
func ErrorCountLTE(v int) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldLTE(FieldErrorCount, v))
}

// AvgResponseTimeEQ applies the EQ predicate on the "avg_response_time" field.
func AvgResponseTimeEQ(v float64) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldEQ(FieldAvgResponseTime, v))
}

// AvgResponseTimeNEQ applies the NEQ predicate on the "avg_response_time" field.
func AvgResponseTimeNEQ(v float64) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldNEQ(FieldAvgResponseTime, v))
}

// AvgResponseTimeIn applies the In predicate on the "avg_response_time" field.
func AvgResponseTimeIn(vs ...float64) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldIn(FieldAvgResponseTime, vs...))
}

// AvgResponseTimeNotIn applies the NotIn predicate on the "avg_response_time" field.
func AvgResponseTimeNotIn(vs ...float64) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldNotIn(FieldAvgResponseTime, vs...))
}

// AvgResponseTimeGT applies the GT predicate on the "avg_response_time" field.
func AvgResponseTimeGT(v float64) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldGT(FieldAvgResponseTime, v))
}

// AvgResponseTimeGTE applies the GTE predicate on the "avg_response_time" field.
func AvgResponseTimeGTE(v float64) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldGTE(FieldAvgResponseTime, v))
}

// AvgResponseTimeLT applies the LT predicate on the "avg_response_time" field.
func AvgResponseTimeLT(v float64) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldLT(FieldAvgResponseTime, v))
}

// AvgResponseTimeLTE applies the LTE predicate on the "avg_response_time" field.
func AvgResponseTimeLTE(v float64) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldLTE(FieldAvgResponseTime, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.HealthRecord {
	return predicate.HealthRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasServer applies the HasEdge predicate on the "server" edge.
func HasServer() predicate.HealthRecord {
	return predicate.HealthRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, ServerTable, ServerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasServerWith applies the HasEdge predicate on the "server" edge with a given conditions (other predicates).
func HasServerWith(preds ...predicate.Server) predicate.HealthRecord {
	return predicate.HealthRecord(func(s *sql.Selector) {
		step := newServerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.HealthRecord) predicate.HealthRecord {
	return predicate.HealthRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.HealthRecord) predicate.HealthRecord {
	return predicate.HealthRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.HealthRecord) predicate.HealthRecord {
	return predicate.HealthRecord(sql.NotPredicates(p))
}
