package domain

// CellCoord identifies a cell on the board (1-based row and column).
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Hint describes the next forced move for the UI.
type Hint struct {
	Message string    `json:"message,omitempty"`
	Cell    CellCoord `json:"cell"`
	Digit   uint8     `json:"digit"`
}

// Puzzle is a persisted Sudoku with metadata. Grid and Solution use the
// 81-character row-major text form.
type Puzzle struct {
	ID        string `json:"id,omitempty"`
	Grid      string `json:"grid"`
	Solution  string `json:"solution,omitempty"`
	CreatedAt int64  `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Solved    bool   `json:"solved"`
	CreatedAt int64  `json:"createdAt"`
}
