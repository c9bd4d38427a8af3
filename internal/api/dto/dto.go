package dto

import "github.com/spec-kit/support-bot/internal/domain"

// LoginRequest carries the admin credential.
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse returns the issued access token.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// RespondRequest adds an admin response to a ticket.
type RespondRequest struct {
	AdminID int64  `json:"admin_id"`
	Message string `json:"message"`
}

// ResolveRequest closes out a ticket with resolution text.
type ResolveRequest struct {
	AdminID    int64  `json:"admin_id"`
	Resolution string `json:"resolution"`
}

// StatusUpdateRequest moves a ticket to a new lifecycle state.
type StatusUpdateRequest struct {
	AdminID int64  `json:"admin_id"`
	Status  string `json:"status"`
	Note    string `json:"note"`
}

// AutoResponsesRequest flips the keyword auto-reply toggle.
type AutoResponsesRequest struct {
	Enabled bool `json:"enabled"`
}

// TicketListResponse wraps a ticket collection.
type TicketListResponse struct {
	Tickets []domain.Ticket `json:"tickets"`
	Total   int             `json:"total"`
}

// ReviewListResponse wraps a review collection.
type ReviewListResponse struct {
	Reviews []domain.Review `json:"reviews"`
	Total   int             `json:"total"`
}

// ReviewStatsResponse reports review aggregates.
type ReviewStatsResponse struct {
	Statistics      domain.ReviewStatistics `json:"statistics"`
	VerifiedReviews int                     `json:"verified_reviews"`
	Featured        []domain.Review         `json:"featured_reviews"`
}

// ErrorResponse is the error envelope for all handlers.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the machine-readable error details.
type ErrorBody struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}
