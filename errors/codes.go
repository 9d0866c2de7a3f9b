package errors

// ErrorCode identifies a failure class independent of the HTTP status
type ErrorCode int32

const (
	ErrorCode_UNSPECIFIED ErrorCode = iota
	ErrorCode_HTTP_OK
	ErrorCode_INTERNAL
	ErrorCode_INVALID_ARGUMENT
	ErrorCode_NOT_FOUND
	ErrorCode_INVALID_PAYLOAD
	ErrorCode_NO_UPDATE_FIELDS
	ErrorCode_DB_QUERY_FAILED
	ErrorCode_STORE_FAILED
	ErrorCode_AI_SUMMARY_FAILED
	ErrorCode_AI_TRANSCRIPTION_FAILED
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_UNSPECIFIED:             "UNSPECIFIED",
	ErrorCode_HTTP_OK:                 "HTTP_OK",
	ErrorCode_INTERNAL:                "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:        "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:               "NOT_FOUND",
	ErrorCode_INVALID_PAYLOAD:         "INVALID_PAYLOAD",
	ErrorCode_NO_UPDATE_FIELDS:        "NO_UPDATE_FIELDS",
	ErrorCode_DB_QUERY_FAILED:         "DB_QUERY_FAILED",
	ErrorCode_STORE_FAILED:            "STORE_FAILED",
	ErrorCode_AI_SUMMARY_FAILED:       "AI_SUMMARY_FAILED",
	ErrorCode_AI_TRANSCRIPTION_FAILED: "AI_TRANSCRIPTION_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNSPECIFIED"
}
