package models

// Job is a row of the jobs table. Equity is NUMERIC and travels as text.
type Job struct {
	ID            int     `json:"id" db:"id"`
	Title         string  `json:"title" db:"title"`
	Salary        *int    `json:"salary" db:"salary"`
	Equity        *string `json:"equity" db:"equity"`
	CompanyHandle string  `json:"companyHandle" db:"company_handle"`
}

// JobListing is a search result row with the owning company's name.
type JobListing struct {
	Job
	CompanyName *string `json:"companyName" db:"company_name"`
}

// JobCompany is the company embedded in a job detail.
type JobCompany struct {
	Handle       string  `json:"handle" db:"handle"`
	Name         string  `json:"name" db:"name"`
	Description  string  `json:"description" db:"description"`
	NumEmployees *int    `json:"numEmployees" db:"num_employees"`
	LogoURL      *string `json:"logoUrl" db:"logo_url"`
}

// JobDetail is a job together with its company.
type JobDetail struct {
	ID      int         `json:"id"`
	Title   string      `json:"title"`
	Salary  *int        `json:"salary"`
	Equity  *string     `json:"equity"`
	Company *JobCompany `json:"company"`
}

// CreateJobRequest is the body of POST /jobs.
type CreateJobRequest struct {
	Title         string  `json:"title"`
	Salary        *int    `json:"salary"`
	Equity        *string `json:"equity"`
	CompanyHandle string  `json:"companyHandle"`
}

// JobQuery is the query string of GET /jobs.
type JobQuery struct {
	Title     *string `schema:"title"`
	MinSalary *int    `schema:"minSalary"`
	HasEquity *bool   `schema:"hasEquity"`
}
