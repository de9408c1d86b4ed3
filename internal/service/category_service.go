package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"mindwell-be/internal/dto"
	"mindwell-be/internal/entity"
	"mindwell-be/internal/events"
	"mindwell-be/internal/pkg/apperror"
	"mindwell-be/internal/pkg/logger"
	"mindwell-be/internal/repository/memory"
	"mindwell-be/internal/repository/scope"
	"mindwell-be/internal/repository/specification"
	"mindwell-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ICategoryService interface {
	ListPublic(ctx context.Context) ([]*dto.PublicCategoryResponse, error)
	ListAll(ctx context.Context) ([]*dto.CategoryResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.CategoryResponse, error)
	Create(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// TopicNames lists every category name in sorted order.
	TopicNames(ctx context.Context) ([]string, error)
}

type categoryService struct {
	uowFactory unitofwork.RepositoryFactory
	topics     *memory.TopicCache
	publisher  events.Publisher
	logger     logger.ILogger
}

func NewCategoryService(
	uowFactory unitofwork.RepositoryFactory,
	topics *memory.TopicCache,
	publisher events.Publisher,
	logger logger.ILogger,
) ICategoryService {
	return &categoryService{
		uowFactory: uowFactory,
		topics:     topics,
		publisher:  publisher,
		logger:     logger,
	}
}

func (s *categoryService) ListPublic(ctx context.Context) ([]*dto.PublicCategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	categories, err := uow.ConversationCategoryRepository().FindAll(ctx,
		specification.PublicCategoryColumns{},
		specification.Scoped{scope.OrderByName},
	)
	if err != nil {
		return nil, apperror.Server("failed to list categories", err)
	}

	res := make([]*dto.PublicCategoryResponse, 0, len(categories))
	for _, c := range categories {
		res = append(res, dto.NewPublicCategoryResponse(c))
	}
	return res, nil
}

func (s *categoryService) ListAll(ctx context.Context) ([]*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	categories, err := uow.ConversationCategoryRepository().FindAll(ctx, specification.Scoped{scope.OrderByName})
	if err != nil {
		return nil, apperror.Server("failed to list categories", err)
	}

	res := make([]*dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		res = append(res, dto.NewCategoryResponse(c))
	}
	return res, nil
}

func (s *categoryService) GetByID(ctx context.Context, id uuid.UUID) (*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	category, err := uow.ConversationCategoryRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperror.Server("failed to load category", err)
	}
	if category == nil {
		return nil, apperror.NotFound("Category not found")
	}
	return dto.NewCategoryResponse(category), nil
}

func (s *categoryService) Create(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	category := &entity.ConversationCategory{
		Name:                        strings.TrimSpace(req.Name),
		Description:                 strings.TrimSpace(req.Description),
		Prompt:                      strings.TrimSpace(req.Prompt),
		RedirectableToOtherCategory: req.RedirectableToOtherCategory,
		Icon:                        strings.TrimSpace(req.Icon),
		ImageUrl:                    strings.TrimSpace(req.ImageUrl),
		Gradient:                    strings.TrimSpace(req.Gradient),
		TextColor:                   strings.TrimSpace(req.TextColor),
	}
	if category.Name == "" || category.Description == "" || category.Prompt == "" {
		return nil, apperror.InvalidRequest("Missing name, description or prompt")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.Server("failed to begin transaction", err)
	}
	defer uow.Rollback()

	if err := s.ensureNameAvailable(ctx, uow, category.Name, uuid.Nil); err != nil {
		return nil, err
	}
	if err := uow.ConversationCategoryRepository().Create(ctx, category); err != nil {
		return nil, s.writeError(err, category.Name)
	}
	if err := uow.Commit(); err != nil {
		return nil, s.writeError(err, category.Name)
	}

	s.afterWrite(ctx, category.Id, "created")
	return dto.NewCategoryResponse(category), nil
}

func (s *categoryService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.Server("failed to begin transaction", err)
	}
	defer uow.Rollback()

	category, err := uow.ConversationCategoryRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperror.Server("failed to load category", err)
	}
	if category == nil {
		return nil, apperror.NotFound("Category not found")
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperror.InvalidRequest("name cannot be empty")
		}
		if name != category.Name {
			if err := s.ensureNameAvailable(ctx, uow, name, category.Id); err != nil {
				return nil, err
			}
		}
		category.Name = name
	}
	if req.Description != nil {
		if strings.TrimSpace(*req.Description) == "" {
			return nil, apperror.InvalidRequest("description cannot be empty")
		}
		category.Description = strings.TrimSpace(*req.Description)
	}
	if req.Prompt != nil {
		if strings.TrimSpace(*req.Prompt) == "" {
			return nil, apperror.InvalidRequest("prompt cannot be empty")
		}
		category.Prompt = strings.TrimSpace(*req.Prompt)
	}
	if req.RedirectableToOtherCategory != nil {
		category.RedirectableToOtherCategory = *req.RedirectableToOtherCategory
	}
	if req.Icon != nil {
		category.Icon = strings.TrimSpace(*req.Icon)
	}
	if req.ImageUrl != nil {
		category.ImageUrl = strings.TrimSpace(*req.ImageUrl)
	}
	if req.Gradient != nil {
		category.Gradient = strings.TrimSpace(*req.Gradient)
	}
	if req.TextColor != nil {
		category.TextColor = strings.TrimSpace(*req.TextColor)
	}

	if err := uow.ConversationCategoryRepository().Update(ctx, category); err != nil {
		return nil, s.writeError(err, category.Name)
	}
	if err := uow.Commit(); err != nil {
		return nil, s.writeError(err, category.Name)
	}

	s.afterWrite(ctx, category.Id, "updated")
	return dto.NewCategoryResponse(category), nil
}

// Delete leaves sessions that reference the category untouched.
func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return apperror.Server("failed to begin transaction", err)
	}
	defer uow.Rollback()

	category, err := uow.ConversationCategoryRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return apperror.Server("failed to load category", err)
	}
	if category == nil {
		return apperror.NotFound("Category not found")
	}

	if err := uow.ConversationCategoryRepository().Delete(ctx, id); err != nil {
		return apperror.Server("failed to delete category", err)
	}
	if err := uow.Commit(); err != nil {
		return apperror.Server("failed to commit transaction", err)
	}

	s.afterWrite(ctx, id, "deleted")
	return nil
}

func (s *categoryService) TopicNames(ctx context.Context) ([]string, error) {
	if names, ok := s.topics.Get(); ok {
		return names, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	categories, err := uow.ConversationCategoryRepository().FindAll(ctx, specification.Scoped{scope.OrderByName})
	if err != nil {
		return nil, apperror.Server("failed to list categories", err)
	}

	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	sort.Strings(names)

	s.topics.Set(names)
	return names, nil
}

func (s *categoryService) ensureNameAvailable(ctx context.Context, uow unitofwork.UnitOfWork, name string, self uuid.UUID) error {
	specs := []specification.Specification{specification.ByName{Name: name}}
	if self != uuid.Nil {
		specs = append(specs, specification.ExcludeID{ID: self})
	}
	count, err := uow.ConversationCategoryRepository().Count(ctx, specs...)
	if err != nil {
		return apperror.Server("failed to check category name", err)
	}
	if count > 0 {
		return apperror.DuplicateName(name)
	}
	return nil
}

// writeError maps a unique index violation that slipped past
// ensureNameAvailable to DuplicateName and a row deleted mid-update to NotFound.
func (s *categoryService) writeError(err error, name string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.DuplicateName(name)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound("Category not found")
	}
	return apperror.Server("failed to save category", err)
}

func (s *categoryService) afterWrite(ctx context.Context, id uuid.UUID, action string) {
	s.topics.Invalidate()
	s.logger.Info("CATEGORY", "Category "+action, map[string]interface{}{"category_id": id.String()})
	s.publisher.PublishCategoryChanged(ctx, id, action)
}
