package models

// Requests for the insight HTTP endpoints. Defined in domain for consistency and reuse.

type InsightRequest struct {
	Stock string `query:"stock" json:"stock" validate:"required"`
}

type MockInsightRequest struct {
	Stock string `query:"stock" json:"stock"`
}

// CredentialsResponse answers GET /check-credentials.
type CredentialsResponse struct {
	CredentialsAvailable bool `json:"credentialsAvailable"`
}
