package fiber

// RecordInteractionRequest represents one tracked interaction
// @Description Interaction tracking DTO
type RecordInteractionRequest struct {
	UserID          string         `json:"user_id" example:"u-1"`
	SessionID       string         `json:"session_id" example:"s-1"`
	Page            string         `json:"page" example:"search_page"`
	InteractionType string         `json:"interaction_type" example:"click"`
	Timestamp       int64          `json:"timestamp" example:"1709639940"`
	Metadata        map[string]any `json:"metadata"`
}

type RecordInteractionResponse struct {
	Status string `json:"status" example:"created"`
}

type BulkRecordRequest struct {
	Interactions []RecordInteractionRequest `json:"interactions"`
}

type BulkRecordResponse struct {
	Created    int `json:"created"`
	Duplicates int `json:"duplicates"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_interaction"`
	Message string `json:"message" example:"invalid interaction"`
}
