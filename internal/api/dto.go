package api

// AddNoteRequest is the request body for appending a note.
type AddNoteRequest struct {
	Content      string `json:"content"`
	Date         string `json:"date,omitempty"`
	RelativeDays *int   `json:"relative_days,omitempty"`
	Time         string `json:"time,omitempty"`
	TimeFormat   string `json:"time_format,omitempty"`
	Category     string `json:"category,omitempty"`
}

// NoteRow is one (time, content) entry in a response.
type NoteRow struct {
	Time    string `json:"time"`
	Content string `json:"content"`
}

// NotesResponse wraps the entries of one day.
type NotesResponse struct {
	Date  string    `json:"date"`
	Notes []NoteRow `json:"notes"`
}

// SearchHit is one search result.
type SearchHit struct {
	File    string `json:"file"`
	Day     string `json:"day,omitempty"`
	Time    string `json:"time"`
	Snippet string `json:"snippet"`
}

// SearchResponse wraps search results.
type SearchResponse struct {
	Results []SearchHit `json:"results"`
}
