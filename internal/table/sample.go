package table

import (
	"strconv"

	"seltable/internal/domain"
)

// SampleRows returns the built-in dataset used when no data file exists
func SampleRows() []domain.Row {
	names := [][2]string{
		{"Washington", "George"}, {"Adams", "John"}, {"Jefferson", "Thomas"},
		{"Madison", "James"}, {"Monroe", "James"}, {"Jackson", "Andrew"},
		{"Van Buren", "Martin"}, {"Harrison", "William Henry"}, {"Tyler", "John"},
		{"Polk", "James K."}, {"Taylor", "Zachary"}, {"Fillmore", "Millard"},
		{"Pierce", "Franklin"}, {"Buchanan", "James"}, {"Lincoln", "Abraham"},
		{"Johnson", "Andrew"}, {"Grant", "Ulysses S."}, {"Hayes", "Rutherford B."},
		{"Garfield", "James A."}, {"Arthur", "Chester A."}, {"Cleveland", "Grover"},
		{"Harrison", "Benjamin"}, {"McKinley", "William"}, {"Roosevelt", "Theodore"},
	}
	rows := make([]domain.Row, 0, len(names))
	for i, n := range names {
		rows = append(rows, domain.Row{
			ID:    strconv.Itoa(i + 1),
			Last:  n[0],
			First: n[1],
		})
	}
	return rows
}
