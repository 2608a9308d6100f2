package readmodel

// DiscountRM is one promotion as published by the content API.
// Expiration is already formatted for the locale and is never parsed.
type DiscountRM struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Expiration  string `json:"expiration"`
}

// DiscountsResponse is the body of GET /api/discounts/{locale}, in display order.
type DiscountsResponse []DiscountRM
