package errors

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common error codes
const (
	ErrCodeInternal       ErrorCode = "COMMON_001"
	ErrCodeBadRequest     ErrorCode = "COMMON_002"
	ErrCodeNotFound       ErrorCode = "COMMON_003"
	ErrCodeConflict       ErrorCode = "COMMON_004"
	ErrCodeValidation     ErrorCode = "COMMON_005"
	ErrCodeNotImplemented ErrorCode = "COMMON_006"
)

// Grammar error codes.  Structural errors mean the input string does not
// match the expected grammar; resolution errors mean the grammar matched but
// a referenced identifier is absent from the supplied object pool.
const (
	ErrCodeStructuralParse    ErrorCode = "GRAM_001"
	ErrCodeResolution         ErrorCode = "GRAM_002"
	ErrCodeExpressionInvalid  ErrorCode = "GRAM_003"
	ErrCodeIdentifierInvalid  ErrorCode = "GRAM_004"
	ErrCodeParticipantInvalid ErrorCode = "GRAM_005"
)

// Sequence / coordinate error codes
const (
	ErrCodeSeqRange             ErrorCode = "SEQ_001"
	ErrCodeSeqDirection         ErrorCode = "SEQ_002"
	ErrCodeSeqRecordNotFound    ErrorCode = "SEQ_003"
	ErrCodeSeqTranslation       ErrorCode = "SEQ_004"
	ErrCodeSeqUnknownSymbol     ErrorCode = "SEQ_005"
	ErrCodeSeqSourceUnavailable ErrorCode = "SEQ_006"
)

// Chemistry / derivation error codes
const (
	ErrCodeFormulaInvalid     ErrorCode = "CHEM_001"
	ErrCodeStructureInvalid   ErrorCode = "CHEM_002"
	ErrCodeUnknownElement     ErrorCode = "CHEM_003"
	ErrCodeNoComputationBasis ErrorCode = "CHEM_004"
)

// Knowledge-base schema error codes
const (
	ErrCodeValueKindUnknown ErrorCode = "KB_001"
	ErrCodeInvalidReference ErrorCode = "KB_002"
	ErrCodeValidationFailed ErrorCode = "KB_003"
	ErrCodeDocumentInvalid  ErrorCode = "KB_004"
)

// Aliases used at call sites throughout the codebase.
const (
	CodeInternal       = ErrCodeInternal
	CodeInvalidParam   = ErrCodeBadRequest
	CodeNotFound       = ErrCodeNotFound
	CodeConflict       = ErrCodeConflict
	CodeNotImplemented = ErrCodeNotImplemented
	CodeOK             = ErrorCode("OK")
	CodeUnknown        = ErrorCode("UNKNOWN")
)
