// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_model",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[4]},
			},
		},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "question", Type: field.TypeString, Size: 2147483647},
		{Name: "answer", Type: field.TypeString, Size: 2147483647},
		{Name: "options", Type: field.TypeJSON, Nullable: true},
		{Name: "type", Type: field.TypeString, Default: "multiple_choice"},
		{Name: "difficulty", Type: field.TypeString, Default: "medium"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "upload_id", Type: field.TypeInt},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "questions_uploads_questions",
				Columns:    []*schema.Column{QuestionsColumns[7]},
				RefColumns: []*schema.Column{UploadsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// StudySessionsColumns holds the columns for the "study_sessions" table.
	StudySessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "mode", Type: field.TypeEnum, Enums: []string{"flashcards", "test"}},
		{Name: "score", Type: field.TypeInt, Nullable: true},
		{Name: "total_questions", Type: field.TypeInt},
		{Name: "time_spent_secs", Type: field.TypeInt, Default: 0},
		{Name: "completed_at", Type: field.TypeTime},
		{Name: "upload_id", Type: field.TypeInt, Nullable: true},
	}
	// StudySessionsTable holds the schema information for the "study_sessions" table.
	StudySessionsTable = &schema.Table{
		Name:       "study_sessions",
		Columns:    StudySessionsColumns,
		PrimaryKey: []*schema.Column{StudySessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "study_sessions_uploads_study_sessions",
				Columns:    []*schema.Column{StudySessionsColumns[7]},
				RefColumns: []*schema.Column{UploadsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "studysession_user_id_completed_at",
				Unique:  false,
				Columns: []*schema.Column{StudySessionsColumns[1], StudySessionsColumns[6]},
			},
		},
	}
	// UploadsColumns holds the columns for the "uploads" table.
	UploadsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "file_size", Type: field.TypeInt64, Nullable: true},
		{Name: "file_type", Type: field.TypeString, Nullable: true},
		{Name: "blob_key", Type: field.TypeString, Nullable: true},
		{Name: "processed", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UploadsTable holds the schema information for the "uploads" table.
	UploadsTable = &schema.Table{
		Name:       "uploads",
		Columns:    UploadsColumns,
		PrimaryKey: []*schema.Column{UploadsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "upload_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{UploadsColumns[2], UploadsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestEventsTable,
		QuestionsTable,
		StudySessionsTable,
		UploadsTable,
	}
)

func init() {
	QuestionsTable.ForeignKeys[0].RefTable = UploadsTable
	StudySessionsTable.ForeignKeys[0].RefTable = UploadsTable
}
