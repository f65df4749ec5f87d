package quote

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	addonRepo "quotify/database/repository/addon"
	catalogRepo "quotify/database/repository/catalog"
	itemRepo "quotify/database/repository/item"
	"quotify/models"
)

// In-memory repositories for wiring the engine without Mongo.

type memCatalogRepo struct {
	categories    map[string]models.Category
	subcategories map[string]models.Subcategory
}

func newMemCatalogRepo() *memCatalogRepo {
	return &memCatalogRepo{
		categories:    make(map[string]models.Category),
		subcategories: make(map[string]models.Subcategory),
	}
}

var _ catalogRepo.CatalogRepository = (*memCatalogRepo)(nil)

func (r *memCatalogRepo) CreateCategory(ctx context.Context, cat *models.Category) error {
	if cat.ID == "" {
		cat.ID = "cat-" + cat.Name
	}
	r.categories[cat.ID] = *cat
	return nil
}

func (r *memCatalogRepo) GetCategoryByID(ctx context.Context, id string) (*models.Category, error) {
	cat, ok := r.categories[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &cat, nil
}

func (r *memCatalogRepo) ListCategories(ctx context.Context, includeInactive bool) ([]models.Category, error) {
	var out []models.Category
	for _, cat := range r.categories {
		if cat.Active || includeInactive {
			out = append(out, cat)
		}
	}
	return out, nil
}

func (r *memCatalogRepo) UpdateCategory(ctx context.Context, cat *models.Category) error {
	if _, ok := r.categories[cat.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	r.categories[cat.ID] = *cat
	return nil
}

func (r *memCatalogRepo) SetCategoryActive(ctx context.Context, id string, active bool) error {
	cat, ok := r.categories[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	cat.Active = active
	r.categories[id] = cat
	return nil
}

func (r *memCatalogRepo) CreateSubcategory(ctx context.Context, sub *models.Subcategory) error {
	if sub.ID == "" {
		sub.ID = "sub-" + sub.Name
	}
	r.subcategories[sub.ID] = *sub
	return nil
}

func (r *memCatalogRepo) GetSubcategoryByID(ctx context.Context, id string) (*models.Subcategory, error) {
	sub, ok := r.subcategories[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &sub, nil
}

func (r *memCatalogRepo) ListSubcategories(ctx context.Context, categoryID string, includeInactive bool) ([]models.Subcategory, error) {
	var out []models.Subcategory
	for _, sub := range r.subcategories {
		if categoryID != "" && sub.CategoryID != categoryID {
			continue
		}
		if sub.Active || includeInactive {
			out = append(out, sub)
		}
	}
	return out, nil
}

func (r *memCatalogRepo) UpdateSubcategory(ctx context.Context, sub *models.Subcategory) error {
	if _, ok := r.subcategories[sub.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	r.subcategories[sub.ID] = *sub
	return nil
}

func (r *memCatalogRepo) SetSubcategoryActive(ctx context.Context, id string, active bool) error {
	sub, ok := r.subcategories[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	sub.Active = active
	r.subcategories[id] = sub
	return nil
}

type memItemRepo struct {
	items map[string]models.Item
}

func newMemItemRepo() *memItemRepo {
	return &memItemRepo{items: make(map[string]models.Item)}
}

var _ itemRepo.ItemRepository = (*memItemRepo)(nil)

func (r *memItemRepo) Create(ctx context.Context, item *models.Item) error {
	if item.ID == "" {
		item.ID = "item-" + item.Name
	}
	r.items[item.ID] = *item
	return nil
}

func (r *memItemRepo) GetByID(ctx context.Context, id string) (*models.Item, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &item, nil
}

func (r *memItemRepo) List(ctx context.Context, filter itemRepo.ItemFilter) ([]models.Item, error) {
	var out []models.Item
	for _, item := range r.items {
		if filter.CategoryID != "" && item.CategoryID != filter.CategoryID {
			continue
		}
		if filter.SubcategoryID != "" && item.SubcategoryID != filter.SubcategoryID {
			continue
		}
		if filter.BookableOnly && !item.Bookable {
			continue
		}
		if !item.Active && !filter.IncludeInactive {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *memItemRepo) Update(ctx context.Context, item *models.Item) error {
	if _, ok := r.items[item.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	r.items[item.ID] = *item
	return nil
}

func (r *memItemRepo) SetActive(ctx context.Context, id string, active bool) error {
	item, ok := r.items[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	item.Active = active
	r.items[id] = item
	return nil
}

func (r *memItemRepo) SetSlots(ctx context.Context, id string, slots []models.AvailabilitySlot) error {
	item, ok := r.items[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	item.Slots = slots
	r.items[id] = item
	return nil
}

type memAddonRepo struct {
	groups map[string]models.AddonGroup
}

func newMemAddonRepo() *memAddonRepo {
	return &memAddonRepo{groups: make(map[string]models.AddonGroup)}
}

var _ addonRepo.AddonRepository = (*memAddonRepo)(nil)

func (r *memAddonRepo) Create(ctx context.Context, group *models.AddonGroup) error {
	if group.ID == "" {
		group.ID = "grp-" + group.Name
	}
	r.groups[group.ID] = *group
	return nil
}

func (r *memAddonRepo) GetByID(ctx context.Context, id string) (*models.AddonGroup, error) {
	group, ok := r.groups[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &group, nil
}

func (r *memAddonRepo) GetByIDs(ctx context.Context, ids []string) ([]models.AddonGroup, error) {
	var out []models.AddonGroup
	for _, id := range ids {
		if group, ok := r.groups[id]; ok {
			out = append(out, group)
		}
	}
	return out, nil
}

func (r *memAddonRepo) List(ctx context.Context, includeInactive bool) ([]models.AddonGroup, error) {
	var out []models.AddonGroup
	for _, group := range r.groups {
		if group.Active || includeInactive {
			out = append(out, group)
		}
	}
	return out, nil
}

func (r *memAddonRepo) Update(ctx context.Context, group *models.AddonGroup) error {
	if _, ok := r.groups[group.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	r.groups[group.ID] = *group
	return nil
}

func (r *memAddonRepo) SetActive(ctx context.Context, id string, active bool) error {
	group, ok := r.groups[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	group.Active = active
	r.groups[id] = group
	return nil
}
