package dto

import "time"

// ImportNoteRecord is a legacy note row as exported by the old backend.
type ImportNoteRecord struct {
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Notebook  string     `json:"notebook"`
	Status    string     `json:"status"`
	IsPinned  bool       `json:"isPinned"`
	IsTrashed bool       `json:"isTrashed"`
	Tags      []string   `json:"tags"`
	CreatedAt *time.Time `json:"createdAt"`
}

type ImportRequest struct {
	Notes []ImportNoteRecord `json:"notes" validate:"required"`
}

type ImportResponse struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

type StatsResponse struct {
	ActiveNotes  int64 `json:"activeNotes"`
	TrashedNotes int64 `json:"trashedNotes"`
	Notebooks    int64 `json:"notebooks"`
	Tags         int64 `json:"tags"`
}

type ExportResponse struct {
	Notes      []*NoteResponse     `json:"notes"`
	Notebooks  []*NotebookResponse `json:"notebooks"`
	Tags       []*TagResponse      `json:"tags"`
	Stats      StatsResponse       `json:"stats"`
	ExportedAt time.Time           `json:"exportedAt"`
}

type ResetResponse struct {
	Message string `json:"message"`
}
