package scrape

import "bizscan/internal/domain"

var jobCompanies = []string{
	"TechCorp Inc", "DataSolutions LLC", "CloudTech Systems",
	"InnovateLabs", "DigitalFirst Group", "ScaleUp Technologies",
	"NextGen Software", "AI Dynamics", "WebFlow Solutions",
}

var jobTitles = []string{
	"Python Developer", "Full Stack Developer", "Data Analyst",
	"Software Engineer", "Backend Developer", "DevOps Engineer",
	"Machine Learning Engineer", "Web Developer", "API Developer",
}

var jobLocations = []string{
	"Remote", "New York, NY", "San Francisco, CA", "Austin, TX",
	"Seattle, WA", "Chicago, IL", "Boston, MA", "Denver, CO",
}

var salaryRanges = []string{
	"$60,000 - $80,000", "$70,000 - $90,000", "$80,000 - $100,000",
	"$90,000 - $120,000", "$100,000 - $130,000", "$110,000 - $140,000",
}

var jobTypes = []string{"Full-time", "Part-time", "Contract", "Remote"}

var experienceLevels = []string{"Entry", "Mid", "Senior", "Lead"}

const defaultIndustry = "technology"

var companiesByIndustry = map[string][]string{
	"technology": {
		"TechFlow Solutions", "DataDrive Inc", "CloudSync Systems",
		"InnovateTech Labs", "DigitalForward Group", "NextGen Software",
		"AI Dynamics Corp", "WebScale Technologies", "CodeCraft Solutions",
	},
	"healthcare": {
		"MedTech Solutions", "HealthCare Innovations", "BioData Systems",
		"MedFlow Technologies", "HealthSync Solutions", "CareConnect Inc",
		"MedAnalytics Corp", "HealthTech Partners", "BioInnovate Labs",
	},
	"finance": {
		"FinTech Solutions", "Capital Analytics", "InvestTech Systems",
		"MoneyFlow Technologies", "FinanceSync Solutions", "WealthTech Inc",
		"TradingEdge Corp", "FinanceForward Group", "CryptoTech Labs",
	},
}

var contactTitles = []string{
	"CEO", "CTO", "VP of Sales", "Marketing Director", "Head of Growth",
	"VP of Engineering", "Sales Manager", "Business Development Manager",
	"Chief Marketing Officer", "Head of Operations", "VP of Product",
}

var firstNames = []string{"John", "Sarah", "Michael", "Emily", "David", "Jessica", "Robert", "Amanda"}

var lastNames = []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis"}

const defaultRegion = "usa"

var citiesByRegion = map[string][]string{
	"usa":    {"New York, NY", "San Francisco, CA", "Austin, TX", "Seattle, WA"},
	"canada": {"Toronto, ON", "Vancouver, BC", "Montreal, QC", "Calgary, AB"},
	"uk":     {"London", "Manchester", "Birmingham", "Edinburgh"},
}

type companySize struct {
	Key       string
	Employees string
}

var companySizes = []companySize{
	{"startup", "1-10 employees"},
	{"small", "11-50 employees"},
	{"medium", "51-200 employees"},
	{"large", "200+ employees"},
}

var defaultProducts = []domain.Product{
	{Name: `MacBook Pro 13"`, Category: "Electronics", BasePrice: 1299.99},
	{Name: "iPhone 14", Category: "Electronics", BasePrice: 899.99},
	{Name: "Samsung Galaxy S23", Category: "Electronics", BasePrice: 799.99},
	{Name: "Dell XPS 13", Category: "Electronics", BasePrice: 999.99},
	{Name: "Sony WH-1000XM4", Category: "Electronics", BasePrice: 349.99},
	{Name: "Nike Air Max 90", Category: "Footwear", BasePrice: 119.99},
	{Name: "Adidas Ultraboost 22", Category: "Footwear", BasePrice: 179.99},
	{Name: "Levi's 501 Jeans", Category: "Apparel", BasePrice: 89.99},
	{Name: "Patagonia Fleece", Category: "Apparel", BasePrice: 149.99},
	{Name: "Instant Pot Duo", Category: "Kitchen", BasePrice: 79.99},
}

var defaultSites = []string{"Amazon", "Best Buy", "Target", "Walmart", "Newegg"}
