// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dayne-app/dayne/ent/upload"
)

// Upload is the model entity for the Upload schema.
type Upload struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Original file name
	Name string `json:"name,omitempty"`
	// Owner; null for anonymous uploads
	UserID *string `json:"user_id,omitempty"`
	// FileSize holds the value of the "file_size" field.
	FileSize *int64 `json:"file_size,omitempty"`
	// MIME type as reported by the client
	FileType *string `json:"file_type,omitempty"`
	// Object key of the stored file
	BlobKey *string `json:"blob_key,omitempty"`
	// Set once the generated questions are stored
	Processed bool `json:"processed,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UploadQuery when eager-loading is set.
	Edges        UploadEdges `json:"edges"`
	selectValues sql.SelectValues
}

// UploadEdges holds the relations/edges for other nodes in the graph.
type UploadEdges struct {
	// Questions holds the value of the questions edge.
	Questions []*Question `json:"questions,omitempty"`
	// StudySessions holds the value of the study_sessions edge.
	StudySessions []*StudySession `json:"study_sessions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// QuestionsOrErr returns the Questions value or an error if the edge
// was not loaded in eager-loading.
func (e UploadEdges) QuestionsOrErr() ([]*Question, error) {
	if e.loadedTypes[0] {
		return e.Questions, nil
	}
	return nil, &NotLoadedError{edge: "questions"}
}

// StudySessionsOrErr returns the StudySessions value or an error if the edge
// was not loaded in eager-loading.
func (e UploadEdges) StudySessionsOrErr() ([]*StudySession, error) {
	if e.loadedTypes[1] {
		return e.StudySessions, nil
	}
	return nil, &NotLoadedError{edge: "study_sessions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Upload) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case upload.FieldProcessed:
			values[i] = new(sql.NullBool)
		case upload.FieldID, upload.FieldFileSize:
			values[i] = new(sql.NullInt64)
		case upload.FieldName, upload.FieldUserID, upload.FieldFileType, upload.FieldBlobKey:
			values[i] = new(sql.NullString)
		case upload.FieldCreatedAt, upload.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Upload fields.
func (_m *Upload) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case upload.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case upload.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case upload.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = new(string)
				*_m.UserID = value.String
			}
		case upload.FieldFileSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_size", values[i])
			} else if value.Valid {
				_m.FileSize = new(int64)
				*_m.FileSize = value.Int64
			}
		case upload.FieldFileType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_type", values[i])
			} else if value.Valid {
				_m.FileType = new(string)
				*_m.FileType = value.String
			}
		case upload.FieldBlobKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field blob_key", values[i])
			} else if value.Valid {
				_m.BlobKey = new(string)
				*_m.BlobKey = value.String
			}
		case upload.FieldProcessed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field processed", values[i])
			} else if value.Valid {
				_m.Processed = value.Bool
			}
		case upload.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case upload.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Upload.
// This includes values selected through modifiers, order, etc.
func (_m *Upload) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryQuestions queries the "questions" edge of the Upload entity.
func (_m *Upload) QueryQuestions() *QuestionQuery {
	return NewUploadClient(_m.config).QueryQuestions(_m)
}

// QueryStudySessions queries the "study_sessions" edge of the Upload entity.
func (_m *Upload) QueryStudySessions() *StudySessionQuery {
	return NewUploadClient(_m.config).QueryStudySessions(_m)
}

// Update returns a builder for updating this Upload.
// Note that you need to call Upload.Unwrap() before calling this method if this Upload
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Upload) Update() *UploadUpdateOne {
	return NewUploadClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Upload entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Upload) Unwrap() *Upload {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Upload is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Upload) String() string {
	var builder strings.Builder
	builder.WriteString("Upload(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.UserID; v != nil {
		builder.WriteString("user_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FileSize; v != nil {
		builder.WriteString("file_size=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.FileType; v != nil {
		builder.WriteString("file_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.BlobKey; v != nil {
		builder.WriteString("blob_key=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("processed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Processed))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Uploads is a parsable slice of Upload.
type Uploads []*Upload
