package service

import (
	"context"
	"errors"
	"strings"

	"github.com/alligatorO15/expense-analytics/internal/models"
	"github.com/alligatorO15/expense-analytics/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CategoryService interface {
	Create(ctx context.Context, userID uuid.UUID, input *models.CategoryCreate) (*models.ExpenseCategory, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.ExpenseCategory, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.ExpenseCategory, error)
	Update(ctx context.Context, userID, id uuid.UUID, update *models.CategoryUpdate) (*models.ExpenseCategory, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	// SeedDefaults создает категории из пресетов, которых у пользователя еще нет
	SeedDefaults(ctx context.Context, userID uuid.UUID) ([]models.ExpenseCategory, error)
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	txManager    repository.TxManager
	presets      []models.CategoryPreset
	listeners    []ExpenseListener
}

// NewCategoryService listeners получают уведомление после каждой записи категорий пользователя
func NewCategoryService(categoryRepo repository.CategoryRepository, txManager repository.TxManager, presets []models.CategoryPreset, listeners ...ExpenseListener) CategoryService {
	return &categoryService{categoryRepo: categoryRepo, txManager: txManager, presets: presets, listeners: listeners}
}

func (s *categoryService) Create(ctx context.Context, userID uuid.UUID, input *models.CategoryCreate) (*models.ExpenseCategory, error) {
	existingCategories, err := s.categoryRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if hasName(existingCategories, input.Name, uuid.Nil) {
		return nil, ErrCategoryExists
	}

	category := &models.ExpenseCategory{
		UserID:         userID,
		Name:           strings.TrimSpace(input.Name),
		PrimaryColor:   input.PrimaryColor,
		SecondaryColor: input.SecondaryColor,
		IconName:       input.IconName,
		SortOrder:      nextSortOrder(existingCategories),
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	s.changed(userID)
	return category, nil
}

func (s *categoryService) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.ExpenseCategory, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	// чужая категория для пользователя не существует
	if category.UserID != userID {
		return nil, ErrNotFound
	}
	return category, nil
}

func (s *categoryService) GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.ExpenseCategory, error) {
	return s.categoryRepo.GetByUserID(ctx, userID)
}

func (s *categoryService) Update(ctx context.Context, userID, id uuid.UUID, update *models.CategoryUpdate) (*models.ExpenseCategory, error) {
	if update.Name != nil {
		existingCategories, err := s.categoryRepo.GetByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if hasName(existingCategories, *update.Name, id) {
			return nil, ErrCategoryExists
		}
	}

	if err := s.categoryRepo.Update(ctx, id, userID, update); err != nil {
		return nil, notFound(err)
	}
	s.changed(userID)
	return s.GetByID(ctx, userID, id)
}

func (s *categoryService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.categoryRepo.Delete(ctx, id, userID); err != nil {
		return notFound(err)
	}
	s.changed(userID)
	return nil
}

func (s *categoryService) SeedDefaults(ctx context.Context, userID uuid.UUID) ([]models.ExpenseCategory, error) {
	var created []models.ExpenseCategory

	err := s.txManager.WithTx(ctx, func(ctx context.Context) error {
		existingCategories, err := s.categoryRepo.GetByUserID(ctx, userID)
		if err != nil {
			return err
		}

		sortOrder := nextSortOrder(existingCategories)
		for _, preset := range s.presets {
			if hasName(existingCategories, preset.Name, uuid.Nil) {
				continue
			}
			category := &models.ExpenseCategory{
				UserID:         userID,
				Name:           preset.Name,
				PrimaryColor:   preset.PrimaryColor,
				SecondaryColor: preset.SecondaryColor,
				IconName:       preset.IconName,
				SortOrder:      sortOrder,
			}
			if err := s.categoryRepo.Create(ctx, category); err != nil {
				return err
			}
			created = append(created, *category)
			sortOrder++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(created) > 0 {
		s.changed(userID)
	}
	return created, nil
}

func (s *categoryService) changed(userID uuid.UUID) {
	for _, l := range s.listeners {
		l.ExpensesChanged(userID)
	}
}

// hasName ищет категорию с тем же именем без учета регистра, кроме категории except
func hasName(categories []models.ExpenseCategory, name string, except uuid.UUID) bool {
	name = strings.TrimSpace(name)
	for _, c := range categories {
		if c.ID != except && strings.EqualFold(c.Name, name) {
			return true
		}
	}
	return false
}

func nextSortOrder(categories []models.ExpenseCategory) int {
	maxSortOrder := 0
	for _, c := range categories {
		if c.SortOrder > maxSortOrder {
			maxSortOrder = c.SortOrder
		}
	}
	return maxSortOrder + 1
}

// notFound переводит отсутствие строки в ErrNotFound, остальные ошибки как есть
func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
