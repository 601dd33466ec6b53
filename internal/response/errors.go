package response

// ErrCode identifies an API error.
type ErrCode string

const (
	ErrTokenInvalid ErrCode = "TOKEN_INVALID"

	ErrValidation   ErrCode = "VALIDATION_ERROR"
	ErrEmptyText    ErrCode = "EMPTY_TEXT"
	ErrTooLittle    ErrCode = "TOO_LITTLE_TEXT"
	ErrTextTooShort ErrCode = "TEXT_TOO_SHORT"

	ErrFileRequired    ErrCode = "FILE_REQUIRED"
	ErrUnsupportedFile ErrCode = "UNSUPPORTED_FILE_TYPE"
	ErrFileTooLarge    ErrCode = "FILE_TOO_LARGE"
	ErrExtraction      ErrCode = "EXTRACTION_FAILED"
	ErrPDFUnsupported  ErrCode = "PDF_UNSUPPORTED"

	ErrUpstream      ErrCode = "UPSTREAM_ERROR"
	ErrUnparseable   ErrCode = "UNPARSEABLE_RESPONSE"
	ErrNoQuestions   ErrCode = "NO_QUESTIONS"
	ErrNotConfigured ErrCode = "NOT_CONFIGURED"

	ErrNotFound ErrCode = "NOT_FOUND"
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns the default message for code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrTokenInvalid:
		return "Session token is invalid or expired."
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrEmptyText:
		return "Please enter some text to generate questions from."
	case ErrTooLittle:
		return "File contains too little text to generate questions."
	case ErrTextTooShort:
		return "Text too short to generate meaningful questions."
	case ErrFileRequired:
		return "A file upload is required."
	case ErrUnsupportedFile:
		return "Unsupported file type. Please use .txt, .pdf, .docx files."
	case ErrFileTooLarge:
		return "File is larger than 10 MB."
	case ErrExtraction:
		return "Failed to extract text from the file."
	case ErrPDFUnsupported:
		return "PDF text extraction is not available. Paste the text instead."
	case ErrUpstream:
		return "The AI service returned an error."
	case ErrUnparseable:
		return "Could not parse AI response."
	case ErrNoQuestions:
		return "No questions generated."
	case ErrNotConfigured:
		return "The AI service is not configured."
	case ErrNotFound:
		return "Resource not found."
	default:
		return "Internal server error."
	}
}
