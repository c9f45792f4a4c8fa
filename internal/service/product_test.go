package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/furniture-resale/internal/entities"
	"github.com/SergeyBogomolovv/furniture-resale/internal/service"
	mocks "github.com/SergeyBogomolovv/furniture-resale/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductService_GetProductByID(t *testing.T) {
	product := entities.Product{ID: "p-1", Name: "Oak table", Status: entities.ProductOnSale}
	data, err := product.Marshal()
	require.NoError(t, err)

	t.Run("from cache", func(t *testing.T) {
		repo := mocks.NewMockProductRepo(t)
		cache := mocks.NewMockCache(t)
		cache.EXPECT().Get("product:p-1").Return(data, true)

		got, err := service.NewProductService(discardLogger(), repo, cache).GetProductByID(context.Background(), "p-1")
		require.NoError(t, err)
		assert.Equal(t, product, got)
	})

	t.Run("from repo", func(t *testing.T) {
		repo := mocks.NewMockProductRepo(t)
		cache := mocks.NewMockCache(t)
		cache.EXPECT().Get("product:p-1").Return(nil, false)
		repo.EXPECT().GetProductByID(mock.Anything, "p-1").Return(product, nil)
		cache.EXPECT().Set("product:p-1", data).Return()

		got, err := service.NewProductService(discardLogger(), repo, cache).GetProductByID(context.Background(), "p-1")
		require.NoError(t, err)
		assert.Equal(t, product, got)
	})

	t.Run("not found is not retried", func(t *testing.T) {
		repo := mocks.NewMockProductRepo(t)
		cache := mocks.NewMockCache(t)
		cache.EXPECT().Get("product:p-1").Return(nil, false)
		repo.EXPECT().GetProductByID(mock.Anything, "p-1").Return(entities.Product{}, entities.ErrProductNotFound).Once()

		_, err := service.NewProductService(discardLogger(), repo, cache).GetProductByID(context.Background(), "p-1")
		assert.ErrorIs(t, err, entities.ErrProductNotFound)
	})
}

func TestProductService_SaveProduct(t *testing.T) {
	type MockBehavior func(repo *mocks.MockProductRepo, cache *mocks.MockCache)

	created := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name         string
		product      entities.Product
		mockBehavior MockBehavior
		wantErr      error
		check        func(t *testing.T, p entities.Product)
	}{
		{
			name: "create derives discount",
			product: entities.Product{
				Name: "Walnut sideboard", Category: "storage",
				Pricing: entities.Pricing{OriginalPrice: 1000000, SalePrice: 750000, DiscountRate: 90},
			},
			mockBehavior: func(repo *mocks.MockProductRepo, cache *mocks.MockCache) {
				repo.EXPECT().SaveProduct(mock.Anything, mock.MatchedBy(func(p entities.Product) bool {
					return p.Pricing.DiscountRate == 25 && p.Status == entities.ProductOnSale
				})).Return(nil)
				cache.EXPECT().Delete(mock.Anything).Return()
			},
			check: func(t *testing.T, p entities.Product) {
				assert.NotEmpty(t, p.ID)
				assert.Equal(t, 25, p.Pricing.DiscountRate)
				assert.Equal(t, p.CreatedAt, p.UpdatedAt)
			},
		},
		{
			name: "replace keeps creation time",
			product: entities.Product{
				ID: "p-1", Name: "Walnut sideboard", Category: "storage", Status: entities.ProductReserved,
			},
			mockBehavior: func(repo *mocks.MockProductRepo, cache *mocks.MockCache) {
				repo.EXPECT().GetProductByID(mock.Anything, "p-1").Return(entities.Product{ID: "p-1", CreatedAt: created}, nil)
				repo.EXPECT().SaveProduct(mock.Anything, mock.Anything).Return(nil)
				cache.EXPECT().Delete("product:p-1").Return()
			},
			check: func(t *testing.T, p entities.Product) {
				assert.Equal(t, created, p.CreatedAt)
				assert.True(t, p.UpdatedAt.After(created))
			},
		},
		{
			name:    "replace missing product",
			product: entities.Product{ID: "p-404", Name: "Chair", Category: "seating"},
			mockBehavior: func(repo *mocks.MockProductRepo, cache *mocks.MockCache) {
				repo.EXPECT().GetProductByID(mock.Anything, "p-404").Return(entities.Product{}, entities.ErrProductNotFound)
			},
			wantErr: entities.ErrProductNotFound,
		},
		{
			name:         "missing name",
			product:      entities.Product{Category: "seating"},
			mockBehavior: func(repo *mocks.MockProductRepo, cache *mocks.MockCache) {},
			wantErr:      entities.ErrInvalidProduct,
		},
		{
			name:         "unknown status",
			product:      entities.Product{Name: "Chair", Category: "seating", Status: "archived"},
			mockBehavior: func(repo *mocks.MockProductRepo, cache *mocks.MockCache) {},
			wantErr:      entities.ErrInvalidProduct,
		},
		{
			name:         "negative stock",
			product:      entities.Product{Name: "Chair", Category: "seating", Stock: -1},
			mockBehavior: func(repo *mocks.MockProductRepo, cache *mocks.MockCache) {},
			wantErr:      entities.ErrInvalidProduct,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockProductRepo(t)
			cache := mocks.NewMockCache(t)
			tc.mockBehavior(repo, cache)

			got, err := service.NewProductService(discardLogger(), repo, cache).SaveProduct(context.Background(), tc.product)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			tc.check(t, got)
		})
	}
}

func TestProductService_DeleteProduct(t *testing.T) {
	repo := mocks.NewMockProductRepo(t)
	cache := mocks.NewMockCache(t)
	repo.EXPECT().DeleteProduct(mock.Anything, "p-1").Return(nil)
	cache.EXPECT().Delete("product:p-1").Return()

	require.NoError(t, service.NewProductService(discardLogger(), repo, cache).DeleteProduct(context.Background(), "p-1"))
}
