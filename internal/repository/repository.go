package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repositories struct {
	TxManager TxManager
	Category  CategoryRepository
	Expense   ExpenseRepository
}

func NewRepositories(pool *pgxpool.Pool) *Repositories {
	return &Repositories{
		TxManager: NewTxManager(pool),
		Category:  NewCategoryRepository(pool),
		Expense:   NewExpenseRepository(pool),
	}
}
