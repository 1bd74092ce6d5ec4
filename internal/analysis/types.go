package analysis

// Request is the body posted to /analyze.
type Request struct {
	URL         string `json:"url"`
	Commentator string `json:"commentator"`
}

// Response mirrors the /analyze payload. Only Commentary is required.
type Response struct {
	Commentary  string `json:"commentary"`
	WebsiteType string `json:"website_type,omitempty"`
}

// HealthResponse mirrors /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// errorBody is the error shape the API uses for non-2xx replies.
type errorBody struct {
	Detail any `json:"detail"`
}
