// Code generated by ent, DO NOT EDIT.

package studysession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/dayne-app/dayne/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldUserID, v))
}

// UploadID applies equality check predicate on the "upload_id" field. It's identical to UploadIDEQ.
func UploadID(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldUploadID, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldScore, v))
}

// TotalQuestions applies equality check predicate on the "total_questions" field. It's identical to TotalQuestionsEQ.
func TotalQuestions(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldTotalQuestions, v))
}

// TimeSpentSecs applies equality check predicate on the "time_spent_secs" field. It's identical to TimeSpentSecsEQ.
func TimeSpentSecs(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldTimeSpentSecs, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldCompletedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldContainsFold(FieldUserID, v))
}

// UploadIDEQ applies the EQ predicate on the "upload_id" field.
func UploadIDEQ(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldUploadID, v))
}

// UploadIDNEQ applies the NEQ predicate on the "upload_id" field.
func UploadIDNEQ(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldUploadID, v))
}

// UploadIDIn applies the In predicate on the "upload_id" field.
func UploadIDIn(vs ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldUploadID, vs...))
}

// UploadIDNotIn applies the NotIn predicate on the "upload_id" field.
func UploadIDNotIn(vs ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldUploadID, vs...))
}

// UploadIDIsNil applies the IsNil predicate on the "upload_id" field.
func UploadIDIsNil() predicate.StudySession {
	return predicate.StudySession(sql.FieldIsNull(FieldUploadID))
}

// UploadIDNotNil applies the NotNil predicate on the "upload_id" field.
func UploadIDNotNil() predicate.StudySession {
	return predicate.StudySession(sql.FieldNotNull(FieldUploadID))
}

// ModeEQ applies the EQ predicate on the "mode" field.
func ModeEQ(v Mode) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldMode, v))
}

// ModeNEQ applies the NEQ predicate on the "mode" field.
func ModeNEQ(v Mode) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldMode, v))
}

// ModeIn applies the In predicate on the "mode" field.
func ModeIn(vs ...Mode) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldMode, vs...))
}

// ModeNotIn applies the NotIn predicate on the "mode" field.
func ModeNotIn(vs ...Mode) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldMode, vs...))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldScore, v))
}

// ScoreIsNil applies the IsNil predicate on the "score" field.
func ScoreIsNil() predicate.StudySession {
	return predicate.StudySession(sql.FieldIsNull(FieldScore))
}

// ScoreNotNil applies the NotNil predicate on the "score" field.
func ScoreNotNil() predicate.StudySession {
	return predicate.StudySession(sql.FieldNotNull(FieldScore))
}

// TotalQuestionsEQ applies the EQ predicate on the "total_questions" field.
func TotalQuestionsEQ(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldTotalQuestions, v))
}

// TotalQuestionsNEQ applies the NEQ predicate on the "total_questions" field.
func TotalQuestionsNEQ(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldTotalQuestions, v))
}

// TotalQuestionsIn applies the In predicate on the "total_questions" field.
func TotalQuestionsIn(vs ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsNotIn applies the NotIn predicate on the "total_questions" field.
func TotalQuestionsNotIn(vs ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsGT applies the GT predicate on the "total_questions" field.
func TotalQuestionsGT(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldTotalQuestions, v))
}

// TotalQuestionsGTE applies the GTE predicate on the "total_questions" field.
func TotalQuestionsGTE(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldTotalQuestions, v))
}

// TotalQuestionsLT applies the LT predicate on the "total_questions" field.
func TotalQuestionsLT(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldTotalQuestions, v))
}

// TotalQuestionsLTE applies the LTE predicate on the "total_questions" field.
func TotalQuestionsLTE(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldTotalQuestions, v))
}

// TimeSpentSecsEQ applies the EQ predicate on the "time_spent_secs" field.
func TimeSpentSecsEQ(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldTimeSpentSecs, v))
}

// TimeSpentSecsNEQ applies the NEQ predicate on the "time_spent_secs" field.
func TimeSpentSecsNEQ(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldTimeSpentSecs, v))
}

// TimeSpentSecsIn applies the In predicate on the "time_spent_secs" field.
func TimeSpentSecsIn(vs ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldTimeSpentSecs, vs...))
}

// TimeSpentSecsNotIn applies the NotIn predicate on the "time_spent_secs" field.
func TimeSpentSecsNotIn(vs ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldTimeSpentSecs, vs...))
}

// TimeSpentSecsGT applies the GT predicate on the "time_spent_secs" field.
func TimeSpentSecsGT(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldTimeSpentSecs, v))
}

// TimeSpentSecsGTE applies the GTE predicate on the "time_spent_secs" field.
func TimeSpentSecsGTE(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldTimeSpentSecs, v))
}

// TimeSpentSecsLT applies the LT predicate on the "time_spent_secs" field.
func TimeSpentSecsLT(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldTimeSpentSecs, v))
}

// TimeSpentSecsLTE applies the LTE predicate on the "time_spent_secs" field.
func TimeSpentSecsLTE(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldTimeSpentSecs, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldCompletedAt, v))
}

// HasUpload applies the HasEdge predicate on the "upload" edge.
func HasUpload() predicate.StudySession {
	return predicate.StudySession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UploadTable, UploadColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUploadWith applies the HasEdge predicate on the "upload" edge with a given conditions (other predicates).
func HasUploadWith(preds ...predicate.Upload) predicate.StudySession {
	return predicate.StudySession(func(s *sql.Selector) {
		step := newUploadStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StudySession) predicate.StudySession {
	return predicate.StudySession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StudySession) predicate.StudySession {
	return predicate.StudySession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StudySession) predicate.StudySession {
	return predicate.StudySession(sql.NotPredicates(p))
}
