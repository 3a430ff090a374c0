package panel

import (
	"context"

	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/panel"
	"github.com/google/uuid"
)

// ProductService handles product-related business operations
type ProductService struct {
	productRepo panel.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo panel.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, panelID uuid.UUID, req CreateProductRequest) (*ProductResponse, error) {
	product, err := panel.NewProduct(panelID, req.Name, req.Price)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, panelID, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, panelID, productID)
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// List retrieves products with filtering and pagination
func (s *ProductService) List(ctx context.Context, panelID uuid.UUID, filter ListFilter) ([]ProductResponse, error) {
	products, err := s.productRepo.FindAll(ctx, panelID, filter.ToDomainFilter())
	if err != nil {
		return nil, err
	}
	return ToProductResponses(products), nil
}

// Update updates a product
func (s *ProductService) Update(ctx context.Context, panelID, productID uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, panelID, productID)
	if err != nil {
		return nil, err
	}

	name := product.Name
	price := product.Price
	if req.Name != nil {
		name = *req.Name
	}
	if req.Price != nil {
		price = *req.Price
	}
	if err := product.Update(name, price); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Delete deletes a product
func (s *ProductService) Delete(ctx context.Context, panelID, productID uuid.UUID) error {
	if _, err := s.productRepo.FindByID(ctx, panelID, productID); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, panelID, productID)
}
