package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSameCategory(t *testing.T) {
	id := uuid.New()
	base := ExpenseCategory{ID: id, Name: "Продукты", PrimaryColor: "orange", SecondaryColor: "orangeLight", IconName: "cart"}

	tests := []struct {
		name  string
		other ExpenseCategory
		same  bool
	}{
		{"identical", base, true},
		{"renamed", ExpenseCategory{ID: id, Name: "Еда", PrimaryColor: "orange", SecondaryColor: "orangeLight", IconName: "cart"}, true},
		{"recoloured", ExpenseCategory{ID: id, Name: "Продукты", PrimaryColor: "green", SecondaryColor: "greenLight", IconName: "leaf"}, true},
		{"with expenses", ExpenseCategory{ID: id, Expenses: []Expense{{ID: uuid.New()}}}, true},
		{"same fields other id", ExpenseCategory{ID: uuid.New(), Name: "Продукты", PrimaryColor: "orange", SecondaryColor: "orangeLight", IconName: "cart"}, false},
		{"zero id", ExpenseCategory{Name: "Продукты"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.same, SameCategory(base, tt.other))
			assert.Equal(t, tt.same, SameCategory(tt.other, base))
		})
	}
}
