package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pageza/nubereats/backend/internal/models"
	"github.com/pageza/nubereats/backend/internal/pagination"
	"github.com/pageza/nubereats/backend/internal/repository"
)

var lowerCaser = cases.Lower(language.Und)

// ErrBlankCategory is returned when a category name has no visible characters.
var ErrBlankCategory = errors.New("category name is blank")

// Slugify derives the canonical slug of a category name: trimmed, lowercased,
// with each run of whitespace replaced by a single hyphen.
func Slugify(name string) string {
	return strings.Join(strings.Fields(lowerCaser.String(strings.TrimSpace(name))), "-")
}

// CategoryPage is one page of restaurants within a category
type CategoryPage struct {
	Category     *models.Category
	Restaurants  []models.Restaurant
	TotalPages   int
	TotalResults int
}

type CategoryService struct {
	store repository.Store
	log   *zap.Logger
}

func NewCategoryService(store repository.Store, log *zap.Logger) *CategoryService {
	return &CategoryService{store: store, log: log}
}

// GetOrCreate returns the category whose slug matches name, creating it if
// needed. A concurrent insert of the same slug is resolved by reading the
// winner's row.
func (s *CategoryService) GetOrCreate(ctx context.Context, name string) (*models.Category, error) {
	return getOrCreateCategory(ctx, s.store, name)
}

func getOrCreateCategory(ctx context.Context, store repository.Store, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	slug := Slugify(name)
	if slug == "" {
		return nil, ErrBlankCategory
	}

	category, err := store.Categories().FindBySlug(ctx, slug)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	category = &models.Category{Name: name, Slug: slug}
	err = store.Categories().Create(ctx, category)
	if errors.Is(err, repository.ErrDuplicate) {
		return store.Categories().FindBySlug(ctx, slug)
	}
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) AllCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.store.Categories().FindAll(ctx)
	if err != nil {
		s.log.Error("failed to load categories", zap.Error(err))
		return nil, internal(MsgLoadCategoriesFailed, err)
	}
	return categories, nil
}

// CountRestaurants returns how many restaurants are filed under category
func (s *CategoryService) CountRestaurants(ctx context.Context, category *models.Category) (int, error) {
	count, err := s.store.Categories().CountRestaurants(ctx, category.ID)
	if err != nil {
		s.log.Error("failed to count restaurants", zap.Uint("category_id", category.ID), zap.Error(err))
		return 0, internal(MsgLoadCategoriesFailed, err)
	}
	return int(count), nil
}

// FindCategoryBySlug returns the category and one page of its restaurants
func (s *CategoryService) FindCategoryBySlug(ctx context.Context, slug string, page int) (*CategoryPage, error) {
	category, err := s.store.Categories().FindBySlug(ctx, slug)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound(MsgCategoryNotFound)
	}
	if err != nil {
		s.log.Error("failed to find category", zap.String("slug", slug), zap.Error(err))
		return nil, internal(MsgFindCategoryFailed, err)
	}

	restaurants, total, err := s.store.Restaurants().FindAndCount(ctx,
		repository.RestaurantFilter{CategoryID: &category.ID},
		pagination.Paginate(page, pagination.PageSize),
	)
	if err != nil {
		s.log.Error("failed to load category restaurants", zap.String("slug", slug), zap.Error(err))
		return nil, internal(MsgFindCategoryFailed, err)
	}

	return &CategoryPage{
		Category:     category,
		Restaurants:  restaurants,
		TotalPages:   pagination.TotalPages(total, pagination.PageSize),
		TotalResults: int(total),
	}, nil
}
