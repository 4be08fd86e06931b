package models

// Company is a row of the companies table.
type Company struct {
	Handle       string  `json:"handle" db:"handle"`
	Name         string  `json:"name" db:"name"`
	Description  string  `json:"description" db:"description"`
	NumEmployees *int    `json:"numEmployees" db:"num_employees"`
	LogoURL      *string `json:"logoUrl" db:"logo_url"`
}

// CompanyJob is the job summary embedded in a company detail.
type CompanyJob struct {
	ID     int     `json:"id" db:"id"`
	Title  string  `json:"title" db:"title"`
	Salary *int    `json:"salary" db:"salary"`
	Equity *string `json:"equity" db:"equity"`
}

// CompanyDetail is a company together with its jobs.
type CompanyDetail struct {
	Company
	Jobs []CompanyJob `json:"jobs"`
}

// CreateCompanyRequest is the body of POST /companies.
type CreateCompanyRequest struct {
	Handle       string  `json:"handle"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	NumEmployees *int    `json:"numEmployees"`
	LogoURL      *string `json:"logoUrl"`
}

// CompanyQuery is the query string of GET /companies.
type CompanyQuery struct {
	Name         *string `schema:"name"`
	MinEmployees *int    `schema:"minEmployees"`
	MaxEmployees *int    `schema:"maxEmployees"`
}
