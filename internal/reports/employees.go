package reports

import (
	"fmt"

	"github.com/mhollis/trackledger/internal/models"
	"github.com/mhollis/trackledger/internal/shared"
)

// EmployeeRow is one result row of [Engine.SeniorMostEmployees].
type EmployeeRow struct {
	ID    int
	Name  string
	Title string
	Level models.Seniority
}

// SeniorMostEmployees returns every employee tied at the maximum seniority
// level, in input order. Ties are never collapsed to a single arbitrary row.
func (e *Engine) SeniorMostEmployees() ([]EmployeeRow, error) {
	employees := e.snap.Employees()
	if len(employees) == 0 {
		return nil, fmt.Errorf("%w: employees", shared.ErrMissingData)
	}

	max := employees[0].Level
	for _, emp := range employees[1:] {
		if emp.Level > max {
			max = emp.Level
		}
	}

	var rows []EmployeeRow
	for _, emp := range employees {
		if emp.Level == max {
			rows = append(rows, EmployeeRow{
				ID:    emp.ID,
				Name:  emp.Name(),
				Title: emp.Title,
				Level: emp.Level,
			})
		}
	}
	return rows, nil
}

func seniorMostEmployeesTable(e *Engine, _ Params) (*Table, error) {
	rows, err := e.SeniorMostEmployees()
	if err != nil {
		return nil, err
	}

	table := &Table{
		Title:   "Senior-most employees",
		Columns: []string{"ID", "Name", "Title", "Level"},
	}
	for _, r := range rows {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", r.ID), r.Name, r.Title, r.Level.String(),
		})
	}
	return table, nil
}
