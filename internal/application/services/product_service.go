package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/hitaloss/business/internal/application/command"
	"github.com/hitaloss/business/internal/application/interfaces"
	"github.com/hitaloss/business/internal/application/mapper"
	"github.com/hitaloss/business/internal/application/query"
	"github.com/hitaloss/business/internal/application/validation"
	"github.com/hitaloss/business/internal/domain"
	"github.com/hitaloss/business/internal/domain/entities"
	"github.com/hitaloss/business/internal/domain/permissions"
	"github.com/hitaloss/business/internal/domain/repositories"
	"github.com/hitaloss/business/internal/messaging"
)

type ProductService struct {
	productRepo     repositories.ProductRepository
	idempotencyRepo repositories.IdempotencyRepository
	publisher       messaging.Publisher
	log             logrus.FieldLogger
}

func NewProductService(
	productRepo repositories.ProductRepository,
	idempotencyRepo repositories.IdempotencyRepository,
	publisher messaging.Publisher,
	log logrus.FieldLogger,
) interfaces.ProductService {
	return &ProductService{
		productRepo:     productRepo,
		idempotencyRepo: idempotencyRepo,
		publisher:       publisher,
		log:             log.WithField("service", "products"),
	}
}

// CreateProduct lists a new product owned by the acting seller.
func (s *ProductService) CreateProduct(ctx context.Context, createCommand *command.CreateProductCommand) (*command.CreateProductCommandResult, error) {
	if !permissions.CanWriteProducts(http.MethodPost, createCommand.Actor) {
		return nil, denied(createCommand.Actor)
	}

	// Keys are scoped per seller so two sellers can never collide.
	idempotencyKey := ""
	if createCommand.IdempotencyKey != "" {
		idempotencyKey = "products:" + createCommand.Actor.Id.String() + ":" + createCommand.IdempotencyKey
	}

	var result command.CreateProductCommandResult
	replayed, err := replayResponse(ctx, s.idempotencyRepo, idempotencyKey, &result)
	if err != nil {
		return nil, err
	}
	if replayed {
		return &result, nil
	}

	if err := validation.Struct(createCommand); err != nil {
		return nil, err
	}

	product := entities.NewProduct(createCommand.Actor, *createCommand.Description, *createCommand.Price, *createCommand.Quantity)
	validatedProduct, err := entities.NewValidatedProduct(product)
	if err != nil {
		return nil, err
	}

	createdProduct, err := s.productRepo.Create(ctx, validatedProduct)
	if err != nil {
		return nil, err
	}

	result = command.CreateProductCommandResult{
		Result: mapper.NewProductResultFromEntity(createdProduct),
	}

	publish(ctx, s.publisher, s.log, messaging.SubjectProductCreated, result.Result)
	storeResponse(ctx, s.idempotencyRepo, s.log, idempotencyKey, createCommand, result, http.StatusCreated)

	return &result, nil
}

func (s *ProductService) ListProducts(ctx context.Context) (*query.ProductQueryListResult, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return &query.ProductQueryListResult{
		Result: mapper.NewProductSummaryResultsFromEntities(products),
	}, nil
}

func (s *ProductService) FindProductById(ctx context.Context, id uuid.UUID) (*query.ProductQueryResult, error) {
	product, err := s.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	return &query.ProductQueryResult{
		Result: mapper.NewProductResultFromEntity(product),
	}, nil
}

// UpdateProduct applies a partial update on behalf of the owning seller.
func (s *ProductService) UpdateProduct(ctx context.Context, updateCommand *command.UpdateProductCommand) (*command.UpdateProductCommandResult, error) {
	product, err := s.findProduct(ctx, updateCommand.Id)
	if err != nil {
		return nil, err
	}

	if !permissions.CanWriteProduct(http.MethodPatch, updateCommand.Actor, product) {
		return nil, denied(updateCommand.Actor)
	}

	if err := validation.Struct(updateCommand); err != nil {
		return nil, err
	}

	if err := product.UpdateListing(entities.ListingChanges{
		Description: updateCommand.Description,
		Price:       updateCommand.Price,
		Quantity:    updateCommand.Quantity,
	}); err != nil {
		return nil, err
	}
	validatedProduct, err := entities.NewValidatedProduct(product)
	if err != nil {
		return nil, err
	}

	updatedProduct, err := s.productRepo.Update(ctx, validatedProduct)
	if err != nil {
		return nil, err
	}

	result := command.UpdateProductCommandResult{
		Result: mapper.NewProductResultFromEntity(updatedProduct),
	}
	publish(ctx, s.publisher, s.log, messaging.SubjectProductUpdated, result.Result)

	return &result, nil
}

func (s *ProductService) findProduct(ctx context.Context, id uuid.UUID) (*entities.Product, error) {
	product, err := s.productRepo.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
	}
	return product, nil
}

// denied picks 401 for anonymous callers and 403 for everyone else.
func denied(actor *entities.User) error {
	if !permissions.IsAuthenticated(actor) {
		return domain.ErrNotAuthenticated
	}
	return domain.ErrPermissionDenied
}
