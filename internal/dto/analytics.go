package dto

// AnalyticsEventRequest is the body posted by the form's tracker. session_id
// may arrive in the body or through the session header; the body wins when
// both are present.
type AnalyticsEventRequest struct {
	EventType string                 `json:"event_type" validate:"required"`
	EventData map[string]interface{} `json:"event_data"`
	SessionID string                 `json:"session_id"`
	UserID    *string                `json:"user_id"`
	Referrer  string                 `json:"referrer"`
}

// ExportRequest selects the export format and optional listing filters.
type ExportRequest struct {
	Format string `form:"format" validate:"required,oneof=csv pdf"`
	Status string `form:"status"`
	Search string `form:"search"`
}

// ExportResponse carries the signed download link for a rendered export.
type ExportResponse struct {
	ExportID    string `json:"export_id"`
	FileName    string `json:"file_name"`
	Format      string `json:"format"`
	RowCount    int    `json:"row_count"`
	DownloadURL string `json:"download_url"`
	ExpiresAt   int64  `json:"expires_at"`
}
