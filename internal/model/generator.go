package model

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
// A zero Length means the configured default.
type GenerateRequest struct {
	Length    int   `json:"length" validate:"omitempty,min=8,max=64"`
	Uppercase *bool `json:"uppercase"`
	Lowercase *bool `json:"lowercase"`
	Numbers   *bool `json:"numbers"`
	Symbols   *bool `json:"symbols"`
	Hash      bool  `json:"hash"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string           `json:"password"`
	Length   int              `json:"length"`
	Strength StrengthResponse `json:"strength"`
	Hash     string           `json:"hash,omitempty"`
}

// PolicyResponse describes the limits and alphabets the generator accepts.
type PolicyResponse struct {
	MinLength     int               `json:"min_length"`
	MaxLength     int               `json:"max_length"`
	DefaultLength int               `json:"default_length"`
	Alphabets     map[string]string `json:"alphabets"`
}
