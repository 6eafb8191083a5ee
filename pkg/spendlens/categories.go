package spendlens

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"github.com/spendlens/spendlens-go/internal/transport"
)

const categoriesPath = "/api/categories"

// categoryService implements the CategoryService interface
type categoryService struct {
	client *Client
}

// List retrieves categories
func (s *categoryService) List(ctx context.Context, filters *ListFilters) ([]*Category, error) {
	req := &transport.Request{
		Method: http.MethodGet,
		Path:   categoriesPath,
		Query:  filters.Values(),
	}

	var page Page[*Category]
	if err := s.client.do(ctx, "categories.list", req, &page); err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return page.Items, nil
}

// Get retrieves a single category
func (s *categoryService) Get(ctx context.Context, categoryID string) (*Category, error) {
	req := &transport.Request{
		Method: http.MethodGet,
		Path:   categoriesPath + "/" + categoryID,
	}

	var category Category
	if err := s.client.do(ctx, "categories.get", req, &category); err != nil {
		return nil, errors.Wrap(err, "failed to get category")
	}

	return &category, nil
}

// Create creates a new category
func (s *categoryService) Create(ctx context.Context, params *CreateCategoryParams) (*Category, error) {
	req := &transport.Request{
		Method: http.MethodPost,
		Path:   categoriesPath,
		Body:   params,
	}

	var category Category
	if err := s.client.do(ctx, "categories.create", req, &category); err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	return &category, nil
}

// Update applies a partial update to a category
func (s *categoryService) Update(ctx context.Context, categoryID string, params *UpdateCategoryParams) (*Category, error) {
	req := &transport.Request{
		Method: http.MethodPatch,
		Path:   categoriesPath + "/" + categoryID,
		Body:   params,
	}

	var category Category
	if err := s.client.do(ctx, "categories.update", req, &category); err != nil {
		return nil, errors.Wrap(err, "failed to update category")
	}

	return &category, nil
}

// Delete deletes a category. A 409 from the server means the category is
// used by existing expenses and surfaces as ErrConflict.
func (s *categoryService) Delete(ctx context.Context, categoryID string) error {
	req := &transport.Request{
		Method: http.MethodDelete,
		Path:   categoriesPath + "/" + categoryID,
	}

	var result deleteResponse
	if err := s.client.do(ctx, "categories.delete", req, &result); err != nil {
		return errors.Wrap(err, "failed to delete category")
	}

	if !result.Success {
		return errors.New("category was not deleted")
	}

	return nil
}
