package email

// ProcessingResult is the per-email outcome record. Success reflects
// classification only: a failed reply draft still counts as a successfully
// processed email, with ResponseSent left empty.
type ProcessingResult struct {
	EmailID        string
	Success        bool
	Classification Category // empty when classification failed
	ResponseSent   string   // empty when no reply was generated
}

func NewFailureResult(emailID string) ProcessingResult {
	return ProcessingResult{EmailID: emailID}
}

func NewSuccessResult(emailID string, category Category, response string) ProcessingResult {
	return ProcessingResult{
		EmailID:        emailID,
		Success:        true,
		Classification: category,
		ResponseSent:   response,
	}
}
