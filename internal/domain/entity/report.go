package entity

type FileStatus string

const (
	FileStored  FileStatus = "stored"
	FileSkipped FileStatus = "skipped"
)

// FileResult is the outcome of one file in an upload batch.
type FileResult struct {
	Filename string
	Status   FileStatus
	Reason   string
	Key      string
	URL      string
	Size     int64
}

// BatchReport aggregates the per-file outcomes of one upload request.
type BatchReport struct {
	Site    string
	Results []FileResult
}

func (r BatchReport) Stored() int {
	n := 0
	for _, res := range r.Results {
		if res.Status == FileStored {
			n++
		}
	}

	return n
}

func (r BatchReport) Skipped() int {
	return len(r.Results) - r.Stored()
}
