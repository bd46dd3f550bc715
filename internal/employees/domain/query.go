package domain

// Page is one slice of the full employee listing.
type Page struct {
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	TotalCount int64      `json:"total_count"`
	TotalPages int64      `json:"total_pages"`
	Employees  []Employee `json:"employees"`
}

// TotalPages is ceil(total / size), zero when there is nothing to page.
func TotalPages(total int64, size int) int64 {
	if total <= 0 || size <= 0 {
		return 0
	}
	return (total + int64(size) - 1) / int64(size)
}

// DepartmentSalary is the mean salary of one department.
type DepartmentSalary struct {
	Department    string  `json:"department"`
	AverageSalary float64 `json:"average_salary"`
}
