// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/dayne-app/dayne/ent/llmrequestevent"
	"github.com/dayne-app/dayne/ent/question"
	"github.com/dayne-app/dayne/ent/schema"
	"github.com/dayne-app/dayne/ent/studysession"
	"github.com/dayne-app/dayne/ent/upload"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescText is the schema descriptor for text field.
	questionDescText := questionFields[1].Descriptor()
	// question.TextValidator is a validator for the "text" field. It is called by the builders before save.
	question.TextValidator = questionDescText.Validators[0].(func(string) error)
	// questionDescAnswer is the schema descriptor for answer field.
	questionDescAnswer := questionFields[2].Descriptor()
	// question.AnswerValidator is a validator for the "answer" field. It is called by the builders before save.
	question.AnswerValidator = questionDescAnswer.Validators[0].(func(string) error)
	// questionDescType is the schema descriptor for type field.
	questionDescType := questionFields[4].Descriptor()
	// question.DefaultType holds the default value on creation for the type field.
	question.DefaultType = questionDescType.Default.(string)
	// questionDescDifficulty is the schema descriptor for difficulty field.
	questionDescDifficulty := questionFields[5].Descriptor()
	// question.DefaultDifficulty holds the default value on creation for the difficulty field.
	question.DefaultDifficulty = questionDescDifficulty.Default.(string)
	// questionDescCreatedAt is the schema descriptor for created_at field.
	questionDescCreatedAt := questionFields[6].Descriptor()
	// question.DefaultCreatedAt holds the default value on creation for the created_at field.
	question.DefaultCreatedAt = questionDescCreatedAt.Default.(func() time.Time)
	studysessionFields := schema.StudySession{}.Fields()
	_ = studysessionFields
	// studysessionDescTotalQuestions is the schema descriptor for total_questions field.
	studysessionDescTotalQuestions := studysessionFields[4].Descriptor()
	// studysession.TotalQuestionsValidator is a validator for the "total_questions" field. It is called by the builders before save.
	studysession.TotalQuestionsValidator = studysessionDescTotalQuestions.Validators[0].(func(int) error)
	// studysessionDescTimeSpentSecs is the schema descriptor for time_spent_secs field.
	studysessionDescTimeSpentSecs := studysessionFields[5].Descriptor()
	// studysession.DefaultTimeSpentSecs holds the default value on creation for the time_spent_secs field.
	studysession.DefaultTimeSpentSecs = studysessionDescTimeSpentSecs.Default.(int)
	// studysession.TimeSpentSecsValidator is a validator for the "time_spent_secs" field. It is called by the builders before save.
	studysession.TimeSpentSecsValidator = studysessionDescTimeSpentSecs.Validators[0].(func(int) error)
	// studysessionDescCompletedAt is the schema descriptor for completed_at field.
	studysessionDescCompletedAt := studysessionFields[6].Descriptor()
	// studysession.DefaultCompletedAt holds the default value on creation for the completed_at field.
	studysession.DefaultCompletedAt = studysessionDescCompletedAt.Default.(func() time.Time)
	uploadFields := schema.Upload{}.Fields()
	_ = uploadFields
	// uploadDescName is the schema descriptor for name field.
	uploadDescName := uploadFields[0].Descriptor()
	// upload.NameValidator is a validator for the "name" field. It is called by the builders before save.
	upload.NameValidator = uploadDescName.Validators[0].(func(string) error)
	// uploadDescProcessed is the schema descriptor for processed field.
	uploadDescProcessed := uploadFields[5].Descriptor()
	// upload.DefaultProcessed holds the default value on creation for the processed field.
	upload.DefaultProcessed = uploadDescProcessed.Default.(bool)
	// uploadDescCreatedAt is the schema descriptor for created_at field.
	uploadDescCreatedAt := uploadFields[6].Descriptor()
	// upload.DefaultCreatedAt holds the default value on creation for the created_at field.
	upload.DefaultCreatedAt = uploadDescCreatedAt.Default.(func() time.Time)
	// uploadDescUpdatedAt is the schema descriptor for updated_at field.
	uploadDescUpdatedAt := uploadFields[7].Descriptor()
	// upload.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	upload.DefaultUpdatedAt = uploadDescUpdatedAt.Default.(func() time.Time)
	// upload.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	upload.UpdateDefaultUpdatedAt = uploadDescUpdatedAt.UpdateDefault.(func() time.Time)
}
