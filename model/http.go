package model

type TrackSummary struct {
	RenderId    string `json:"render_id"`
	Tempo       int    `json:"tempo"`
	Key         string `json:"key"`
	NumSections int    `json:"num_sections"`
	NumEvents   int    `json:"num_events"`
	TotalTicks  uint64 `json:"total_ticks"`
}

type SectionsResponse struct {
	Sections []string `json:"sections"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
