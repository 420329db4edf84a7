package dto

import "sitesnap/internal/domain/entity"

type FileResult struct {
	Filename string `json:"filename"`
	Status   string `json:"status"`
	Reason   string `json:"reason,omitempty"`
	Key      string `json:"key,omitempty"`
	URL      string `json:"url,omitempty"`
	Size     int64  `json:"size,omitempty"`
}

type UploadReport struct {
	ConstructionSite string       `json:"constructionSite"`
	Stored           int          `json:"stored"`
	Skipped          int          `json:"skipped"`
	Files            []FileResult `json:"files"`
}

func NewUploadReport(report entity.BatchReport) UploadReport {
	files := make([]FileResult, 0, len(report.Results))
	for _, res := range report.Results {
		files = append(files, FileResult{
			Filename: res.Filename,
			Status:   string(res.Status),
			Reason:   res.Reason,
			Key:      res.Key,
			URL:      res.URL,
			Size:     res.Size,
		})
	}

	return UploadReport{
		ConstructionSite: report.Site,
		Stored:           report.Stored(),
		Skipped:          report.Skipped(),
		Files:            files,
	}
}
