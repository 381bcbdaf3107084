package fixtures

import "github.com/stafftrack/attendance-backend-go/internal/domain/department"

// DefaultDepartments returns the seed set created on first startup. Seeding
// is idempotent: departments that already exist by name are left untouched.
func DefaultDepartments() []department.Department {
	return []department.Department{
		{Name: "Human Resources", Description: "Handles recruitment, employee relations, and benefits"},
		{Name: "Information Technology", Description: "Manages technology infrastructure and support"},
		{Name: "Finance", Description: "Handles accounting, budgeting, and financial planning"},
		{Name: "Marketing", Description: "Manages brand, advertising, and market research"},
		{Name: "Operations", Description: "Oversees daily business activities and processes"},
		{Name: "Sales", Description: "Handles customer acquisition and revenue generation"},
		{Name: "Customer Support", Description: "Provides assistance to customers and resolves issues"},
		{Name: "Research and Development", Description: "Focuses on innovation and product development"},
		{Name: "Administration", Description: "Manages office operations and administrative tasks"},
		{Name: "Executive", Description: "Senior leadership and strategic decision-making"},
	}
}
