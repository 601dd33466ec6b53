// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dayne-app/dayne/ent/studysession"
	"github.com/dayne-app/dayne/ent/upload"
)

// StudySession is the model entity for the StudySession schema.
type StudySession struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// UploadID holds the value of the "upload_id" field.
	UploadID *int `json:"upload_id,omitempty"`
	// Mode holds the value of the "mode" field.
	Mode studysession.Mode `json:"mode,omitempty"`
	// Only set for graded test runs
	Score *int `json:"score,omitempty"`
	// TotalQuestions holds the value of the "total_questions" field.
	TotalQuestions int `json:"total_questions,omitempty"`
	// TimeSpentSecs holds the value of the "time_spent_secs" field.
	TimeSpentSecs int `json:"time_spent_secs,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StudySessionQuery when eager-loading is set.
	Edges        StudySessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// StudySessionEdges holds the relations/edges for other nodes in the graph.
type StudySessionEdges struct {
	// Upload holds the value of the upload edge.
	Upload *Upload `json:"upload,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// UploadOrErr returns the Upload value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StudySessionEdges) UploadOrErr() (*Upload, error) {
	if e.Upload != nil {
		return e.Upload, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: upload.Label}
	}
	return nil, &NotLoadedError{edge: "upload"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StudySession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case studysession.FieldID, studysession.FieldUploadID, studysession.FieldScore, studysession.FieldTotalQuestions, studysession.FieldTimeSpentSecs:
			values[i] = new(sql.NullInt64)
		case studysession.FieldUserID, studysession.FieldMode:
			values[i] = new(sql.NullString)
		case studysession.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StudySession fields.
func (_m *StudySession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case studysession.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case studysession.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case studysession.FieldUploadID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field upload_id", values[i])
			} else if value.Valid {
				_m.UploadID = new(int)
				*_m.UploadID = int(value.Int64)
			}
		case studysession.FieldMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mode", values[i])
			} else if value.Valid {
				_m.Mode = studysession.Mode(value.String)
			}
		case studysession.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = new(int)
				*_m.Score = int(value.Int64)
			}
		case studysession.FieldTotalQuestions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_questions", values[i])
			} else if value.Valid {
				_m.TotalQuestions = int(value.Int64)
			}
		case studysession.FieldTimeSpentSecs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_spent_secs", values[i])
			} else if value.Valid {
				_m.TimeSpentSecs = int(value.Int64)
			}
		case studysession.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StudySession.
// This includes values selected through modifiers, order, etc.
func (_m *StudySession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUpload queries the "upload" edge of the StudySession entity.
func (_m *StudySession) QueryUpload() *UploadQuery {
	return NewStudySessionClient(_m.config).QueryUpload(_m)
}

// Update returns a builder for updating this StudySession.
// Note that you need to call StudySession.Unwrap() before calling this method if this StudySession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StudySession) Update() *StudySessionUpdateOne {
	return NewStudySessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StudySession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StudySession) Unwrap() *StudySession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StudySession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StudySession) String() string {
	var builder strings.Builder
	builder.WriteString("StudySession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	if v := _m.UploadID; v != nil {
		builder.WriteString("upload_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.Mode))
	builder.WriteString(", ")
	if v := _m.Score; v != nil {
		builder.WriteString("score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("total_questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalQuestions))
	builder.WriteString(", ")
	builder.WriteString("time_spent_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeSpentSecs))
	builder.WriteString(", ")
	builder.WriteString("completed_at=")
	builder.WriteString(_m.CompletedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// StudySessions is a parsable slice of StudySession.
type StudySessions []*StudySession
