package resumes

import "time"

// Resume is a stored resume document. Rows are immutable once created;
// there is no update path.
type Resume struct {
	ID        string
	RawText   string
	Filename  string
	CreatedAt time.Time
}
