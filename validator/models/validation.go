package models

// ValidationRequest mirrors the wire format of the validation endpoint;
// the JSON keys are the original Portuguese field names.
type ValidationRequest struct {
	Acquirer      string `json:"adquirente"`
	LogicalNumber string `json:"logico"`
	Code          string `json:"codigo"`
}

// ValidationResponse carries either a success or an error message, plus
// the normalized logical number on success.
type ValidationResponse struct {
	Success       string `json:"Success,omitempty"`
	Error         string `json:"Error,omitempty"`
	LogicalNumber string `json:"logico,omitempty"`
}
