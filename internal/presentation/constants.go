package presentation

const (
	SiteParam  = "constructionSite"
	DateParam  = "date"
	FilesField = "images"
	ReasonTag  = "X-Reason"
)
