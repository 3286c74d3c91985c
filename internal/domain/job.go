package domain

// Job is one synthetic job posting.
type Job struct {
	Title           string `csv:"title" json:"title"`
	Company         string `csv:"company" json:"company"`
	Location        string `csv:"location" json:"location"`
	Salary          string `csv:"salary" json:"salary"`
	Description     string `csv:"description" json:"description"`
	PostedDate      string `csv:"posted_date" json:"posted_date"`
	JobType         string `csv:"job_type" json:"job_type"`
	ExperienceLevel string `csv:"experience_level" json:"experience_level"`
	ScrapedAt       string `csv:"scraped_at" json:"scraped_at"`
}

var jobColumns = []string{
	"title", "company", "location", "salary", "description",
	"posted_date", "job_type", "experience_level", "scraped_at",
}

func (Job) Columns() []string { return jobColumns }

func (j Job) Values() []any {
	return []any{
		j.Title, j.Company, j.Location, j.Salary, j.Description,
		j.PostedDate, j.JobType, j.ExperienceLevel, j.ScrapedAt,
	}
}
