// Code generated by ent, DO NOT EDIT.

package studysession

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the studysession type in the database.
	Label = "study_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldUploadID holds the string denoting the upload_id field in the database.
	FieldUploadID = "upload_id"
	// FieldMode holds the string denoting the mode field in the database.
	FieldMode = "mode"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldTotalQuestions holds the string denoting the total_questions field in the database.
	FieldTotalQuestions = "total_questions"
	// FieldTimeSpentSecs holds the string denoting the time_spent_secs field in the database.
	FieldTimeSpentSecs = "time_spent_secs"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeUpload holds the string denoting the upload edge name in mutations.
	EdgeUpload = "upload"
	// Table holds the table name of the studysession in the database.
	Table = "study_sessions"
	// UploadTable is the table that holds the upload relation/edge.
	UploadTable = "study_sessions"
	// UploadInverseTable is the table name for the Upload entity.
	// It exists in this package in order to avoid circular dependency with the "upload" package.
	UploadInverseTable = "uploads"
	// UploadColumn is the table column denoting the upload relation/edge.
	UploadColumn = "upload_id"
)

// Columns holds all SQL columns for studysession fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldUploadID,
	FieldMode,
	FieldScore,
	FieldTotalQuestions,
	FieldTimeSpentSecs,
	FieldCompletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// TotalQuestionsValidator is a validator for the "total_questions" field. It is called by the builders before save.
	TotalQuestionsValidator func(int) error
	// DefaultTimeSpentSecs holds the default value on creation for the "time_spent_secs" field.
	DefaultTimeSpentSecs int
	// TimeSpentSecsValidator is a validator for the "time_spent_secs" field. It is called by the builders before save.
	TimeSpentSecsValidator func(int) error
	// DefaultCompletedAt holds the default value on creation for the "completed_at" field.
	DefaultCompletedAt func() time.Time
)

// Mode defines the type for the "mode" enum field.
type Mode string

// Mode values.
const (
	ModeFlashcards Mode = "flashcards"
	ModeTest       Mode = "test"
)

func (m Mode) String() string {
	return string(m)
}

// ModeValidator is a validator for the "mode" field enum values. It is called by the builders before save.
func ModeValidator(m Mode) error {
	switch m {
	case ModeFlashcards, ModeTest:
		return nil
	default:
		return fmt.Errorf("studysession: invalid enum value for mode field: %q", m)
	}
}

// OrderOption defines the ordering options for the StudySession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByUploadID orders the results by the upload_id field.
func ByUploadID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUploadID, opts...).ToFunc()
}

// ByMode orders the results by the mode field.
func ByMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMode, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByTotalQuestions orders the results by the total_questions field.
func ByTotalQuestions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalQuestions, opts...).ToFunc()
}

// ByTimeSpentSecs orders the results by the time_spent_secs field.
func ByTimeSpentSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeSpentSecs, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByUploadField orders the results by upload field.
func ByUploadField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUploadStep(), sql.OrderByField(field, opts...))
	}
}
func newUploadStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UploadInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, UploadTable, UploadColumn),
	)
}
