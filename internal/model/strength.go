package model

// StrengthRequest asks for the strength of a password.
type StrengthRequest struct {
	Password string `json:"password" validate:"max=1024"`
}

// StrengthResponse reports a heuristic strength score.
// Score is uncapped; Percent is clamped to 0-100 for meters.
type StrengthResponse struct {
	Score   int    `json:"score"`
	Level   string `json:"level"`
	Percent int    `json:"percent"`
}
