package domain

// Lead is one synthetic B2B contact.
type Lead struct {
	CompanyName     string `csv:"company_name" json:"company_name"`
	ContactName     string `csv:"contact_name" json:"contact_name"`
	Title           string `csv:"title" json:"title"`
	Email           string `csv:"email" json:"email"`
	Phone           string `csv:"phone" json:"phone"`
	Industry        string `csv:"industry" json:"industry"`
	Location        string `csv:"location" json:"location"`
	CompanySize     string `csv:"company_size" json:"company_size"`
	Employees       string `csv:"employees" json:"employees"`
	Website         string `csv:"website" json:"website"`
	LinkedInCompany string `csv:"linkedin_company" json:"linkedin_company"`
	LinkedInProfile string `csv:"linkedin_profile" json:"linkedin_profile"`
	LeadScore       int    `csv:"lead_score" json:"lead_score"`
	ContactVerified bool   `csv:"contact_verified" json:"contact_verified"`
	EmailValid      bool   `csv:"email_valid" json:"email_valid"`
	ScrapedAt       string `csv:"scraped_at" json:"scraped_at"`
}

var leadColumns = []string{
	"company_name", "contact_name", "title", "email", "phone", "industry",
	"location", "company_size", "employees", "website", "linkedin_company",
	"linkedin_profile", "lead_score", "contact_verified", "email_valid", "scraped_at",
}

func (Lead) Columns() []string { return leadColumns }

func (l Lead) Values() []any {
	return []any{
		l.CompanyName, l.ContactName, l.Title, l.Email, l.Phone, l.Industry,
		l.Location, l.CompanySize, l.Employees, l.Website, l.LinkedInCompany,
		l.LinkedInProfile, l.LeadScore, l.ContactVerified, l.EmailValid, l.ScrapedAt,
	}
}
