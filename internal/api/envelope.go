package api

// ErrorEnvelope is the shared error response shape for all failure paths.
// Success responses carry endpoint-specific bodies; only errors are enveloped
// so clients can rely on one predictable structure for every failure.
type ErrorEnvelope struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody describes an error in a predictable structured format.
type ErrorBody struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Details []FieldIssue `json:"details,omitempty"`
	TraceID *string      `json:"traceId,omitempty"`
}

// FieldIssue gives field-level or contextual error information.
type FieldIssue struct {
	Field string `json:"field,omitempty"`
	Issue string `json:"issue"`
}

// NewErrorEnvelope constructs an error envelope.
func NewErrorEnvelope(traceID *string, code, msg string, details []FieldIssue) ErrorEnvelope {
	var clonedDetails []FieldIssue
	if len(details) > 0 {
		clonedDetails = make([]FieldIssue, len(details))
		copy(clonedDetails, details)
	}
	return ErrorEnvelope{
		Error: ErrorBody{
			Code:    code,
			Message: msg,
			Details: clonedDetails,
			TraceID: traceID,
		},
	}
}
