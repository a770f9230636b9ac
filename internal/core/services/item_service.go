package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/resale_hub/internal/apperrors"
	"github.com/SscSPs/resale_hub/internal/core/domain"
	portsrepo "github.com/SscSPs/resale_hub/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/resale_hub/internal/core/ports/services"
	"github.com/SscSPs/resale_hub/internal/dto"
	"github.com/SscSPs/resale_hub/internal/utils/pagination"
	"github.com/google/uuid"
)

const defaultItemPageSize = 20

type itemService struct {
	BaseService
	itemRepo   portsrepo.ItemRepositoryFacade
	settings   portssvc.SettingsSvcFacade
	classifier portssvc.ClassifierSvcFacade
}

// NewItemService creates a new item service.
func NewItemService(repo portsrepo.ItemRepositoryFacade, settings portssvc.SettingsSvcFacade, classifier portssvc.ClassifierSvcFacade) portssvc.ItemSvcFacade {
	return &itemService{
		itemRepo:   repo,
		settings:   settings,
		classifier: classifier,
	}
}

var _ portssvc.ItemSvcFacade = (*itemService)(nil)

func (s *itemService) CreateItem(ctx context.Context, userID string, req dto.CreateItemRequest) (*domain.Item, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Brand = strings.TrimSpace(req.Brand)
	req.Category = strings.TrimSpace(req.Category)
	if err := s.ValidateStruct(req); err != nil {
		return nil, err
	}
	if req.PurchasePrice.IsNegative() {
		return nil, fmt.Errorf("%w: purchasePrice must not be negative", apperrors.ErrValidation)
	}
	if req.SalePrice != nil && req.SalePrice.IsNegative() {
		return nil, fmt.Errorf("%w: salePrice must not be negative", apperrors.ErrValidation)
	}

	currency, err := s.resolveCurrency(ctx, userID, req.Currency)
	if err != nil {
		return nil, err
	}

	if req.Brand == "" || req.Category == "" {
		detected := s.classifier.Classify(ctx, req.Name)
		if req.Brand == "" {
			req.Brand = detected.DetectedBrand
		}
		if req.Category == "" {
			req.Category = detected.DetectedCategory
		}
	}

	status := domain.ItemInStock
	if req.Status != "" {
		status = domain.ItemStatus(req.Status)
	}

	now := time.Now().UTC()
	item := domain.Item{
		ItemID:        uuid.NewString(),
		OwnerUserID:   userID,
		Name:          req.Name,
		Brand:         req.Brand,
		Category:      req.Category,
		PurchasePrice: req.PurchasePrice.Round(2),
		Currency:      currency,
		Status:        status,
		AuditFields:   domain.NewAuditFields(userID, now),
	}
	if req.SalePrice != nil {
		sale := req.SalePrice.Round(2)
		item.SalePrice = &sale
	}

	if err := s.itemRepo.SaveItem(ctx, item); err != nil {
		s.LogError(ctx, err, "Failed to save item", slog.String("item_id", item.ItemID))
		return nil, err
	}

	s.LogInfo(ctx, "Item created",
		slog.String("item_id", item.ItemID),
		slog.String("brand", item.Brand),
		slog.String("category", item.Category))
	return &item, nil
}

// resolveCurrency falls back to the user's display currency.
func (s *itemService) resolveCurrency(ctx context.Context, userID, requested string) (domain.CurrencyCode, error) {
	if requested != "" {
		return domain.ParseCurrencyCode(requested)
	}
	settings, err := s.settings.GetSettings(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load settings for default currency")
		return "", err
	}
	return settings.Currency, nil
}

func (s *itemService) GetItemByID(ctx context.Context, userID, itemID string) (*domain.Item, error) {
	item, err := s.itemRepo.FindItemByID(ctx, userID, itemID)
	if err != nil {
		s.LogDebug(ctx, "Item lookup failed", slog.String("item_id", itemID), slog.String("error", err.Error()))
		return nil, err
	}
	return item, nil
}

func (s *itemService) ListItems(ctx context.Context, userID string, params dto.ListItemsParams) (*dto.ListItemsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultItemPageSize
	}

	var cursor *portsrepo.ItemCursor
	if params.NextToken != "" {
		createdAt, itemID, err := pagination.DecodeToken(params.NextToken)
		if err != nil {
			s.LogDebug(ctx, "Invalid pagination token", slog.String("error", err.Error()))
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		cursor = &portsrepo.ItemCursor{CreatedAt: createdAt, ItemID: itemID}
	}

	// One extra row tells us whether another page exists.
	items, err := s.itemRepo.ListItems(ctx, userID, limit+1, cursor)
	if err != nil {
		s.LogError(ctx, err, "Failed to list items")
		return nil, err
	}

	res := &dto.ListItemsResponse{}
	if len(items) > limit {
		items = items[:limit]
		last := items[len(items)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.ItemID)
		res.NextToken = &token
	}
	res.Items = dto.ToListItemResponse(items)
	return res, nil
}
