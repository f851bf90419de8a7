package domain

import "time"

type InteractionType string

const (
	InteractionClick      InteractionType = "click"
	InteractionScroll     InteractionType = "scroll"
	InteractionHover      InteractionType = "hover"
	InteractionFormFill   InteractionType = "form_fill"
	InteractionBack       InteractionType = "back"
	InteractionFormSubmit InteractionType = "form_submit"
	InteractionPurchase   InteractionType = "purchase"
)

type Interaction struct {
	UserID    string
	Page      string
	Type      InteractionType
	Timestamp time.Time
	SessionID string
}
