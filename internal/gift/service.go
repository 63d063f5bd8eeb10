package gift

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("not found")

// ValidationError carries a message safe to return to the client.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationErr(msg string) error { return &ValidationError{Msg: msg} }

type Service struct {
	DB *gorm.DB
}

// PersonView is a person plus the derived stats the list endpoint returns.
type PersonView struct {
	Person
	PersonStats
}

type CreatePersonInput struct {
	Name string `json:"name"`
}

type UpdatePersonInput struct {
	Name Field[string] `json:"name"`
}

type ListGiftsFilter struct {
	PersonID string
	Status   Status
}

type CreateGiftInput struct {
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	Price       PriceField `json:"price"`
	Status      *Status    `json:"status"`
	URL         *string    `json:"url"`
	Location    *string    `json:"location"`
	Notes       *string    `json:"notes"`
	PersonID    *string    `json:"personId"`
}

type UpdateGiftInput struct {
	Name        Field[string] `json:"name"`
	Description Field[string] `json:"description"`
	Price       PriceField    `json:"price"`
	Status      Field[Status] `json:"status"`
	URL         Field[string] `json:"url"`
	Location    Field[string] `json:"location"`
	Notes       Field[string] `json:"notes"`
	PersonID    Field[string] `json:"personId"`
}

func giftsCreatedDesc(db *gorm.DB) *gorm.DB {
	return db.Order("created_at desc")
}

func (s *Service) ListPeople(ctx context.Context) ([]PersonView, error) {
	var people []Person
	err := s.DB.WithContext(ctx).
		Preload("Gifts", giftsCreatedDesc).
		Order("name asc").
		Find(&people).Error
	if err != nil {
		return nil, err
	}

	out := make([]PersonView, 0, len(people))
	for _, p := range people {
		out = append(out, PersonView{Person: p, PersonStats: ComputeStats(p.Gifts)})
	}
	return out, nil
}

func (s *Service) GetPerson(ctx context.Context, id string) (*Person, error) {
	var p Person
	err := s.DB.WithContext(ctx).
		Preload("Gifts", giftsCreatedDesc).
		First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Service) CreatePerson(ctx context.Context, in CreatePersonInput) (*Person, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, validationErr("name is required")
	}

	p := Person{Name: name}
	if err := s.DB.WithContext(ctx).Create(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Service) UpdatePerson(ctx context.Context, id string, in UpdatePersonInput) (*Person, error) {
	var p Person
	err := s.DB.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if in.Name.Set {
		if in.Name.Value == nil || strings.TrimSpace(*in.Name.Value) == "" {
			return nil, validationErr("name is required")
		}
		p.Name = strings.TrimSpace(*in.Name.Value)
	}

	if err := s.DB.WithContext(ctx).Save(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// DeletePerson removes a person and every gift assigned to them in one
// transaction. The cascade is part of the contract: gifts are never
// orphaned.
func (s *Service) DeletePerson(ctx context.Context, id string) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p Person
		err := tx.First(&p, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		if err := tx.Where("person_id = ?", id).Delete(&Gift{}).Error; err != nil {
			return err
		}
		return tx.Delete(&p).Error
	})
}

func (s *Service) ListGifts(ctx context.Context, f ListGiftsFilter) ([]Gift, error) {
	q := s.DB.WithContext(ctx).Model(&Gift{}).Preload("Person")
	if f.PersonID != "" {
		q = q.Where("person_id = ?", f.PersonID)
	}
	if f.Status != "" {
		if !f.Status.Valid() {
			return nil, validationErr("invalid status")
		}
		q = q.Where("status = ?", f.Status)
	}

	var gifts []Gift
	if err := q.Order("created_at desc").Find(&gifts).Error; err != nil {
		return nil, err
	}
	return gifts, nil
}

func (s *Service) GetGift(ctx context.Context, id string) (*Gift, error) {
	var g Gift
	err := s.DB.WithContext(ctx).Preload("Person").First(&g, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (s *Service) CreateGift(ctx context.Context, in CreateGiftInput) (*Gift, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, validationErr("name is required")
	}
	if in.Price.Value != nil && *in.Price.Value < 0 {
		return nil, validationErr("price must not be negative")
	}

	status := StatusIdea
	if in.Status != nil && *in.Status != "" {
		if !in.Status.Valid() {
			return nil, validationErr("invalid status")
		}
		status = *in.Status
	}

	if in.PersonID != nil {
		if err := s.personExists(ctx, *in.PersonID); err != nil {
			return nil, err
		}
	}

	g := Gift{
		Name:        name,
		Description: in.Description,
		Price:       in.Price.Value,
		Status:      status,
		URL:         in.URL,
		Location:    in.Location,
		Notes:       in.Notes,
		PersonID:    in.PersonID,
	}
	if err := s.DB.WithContext(ctx).Create(&g).Error; err != nil {
		return nil, err
	}
	return s.GetGift(ctx, g.ID)
}

func (s *Service) UpdateGift(ctx context.Context, id string, in UpdateGiftInput) (*Gift, error) {
	var g Gift
	err := s.DB.WithContext(ctx).First(&g, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := applyGiftPatch(&g, in); err != nil {
		return nil, err
	}
	if g.PersonID != nil {
		if err := s.personExists(ctx, *g.PersonID); err != nil {
			return nil, err
		}
	}

	if err := s.DB.WithContext(ctx).Save(&g).Error; err != nil {
		return nil, err
	}
	return s.GetGift(ctx, g.ID)
}

func (s *Service) DeleteGift(ctx context.Context, id string) error {
	res := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&Gift{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Service) personExists(ctx context.Context, id string) error {
	var n int64
	if err := s.DB.WithContext(ctx).Model(&Person{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return validationErr("person not found")
	}
	return nil
}

// applyGiftPatch overwrites exactly the fields present in the patch. Absent
// fields keep their stored value; explicit nulls clear optional fields.
func applyGiftPatch(g *Gift, in UpdateGiftInput) error {
	if in.Name.Set {
		if in.Name.Value == nil || strings.TrimSpace(*in.Name.Value) == "" {
			return validationErr("name is required")
		}
		g.Name = strings.TrimSpace(*in.Name.Value)
	}
	if in.Description.Set {
		g.Description = in.Description.Value
	}
	if in.Price.Set {
		if in.Price.Value != nil && *in.Price.Value < 0 {
			return validationErr("price must not be negative")
		}
		g.Price = in.Price.Value
	}
	if in.Status.Set {
		if in.Status.Value == nil || !in.Status.Value.Valid() {
			return validationErr("invalid status")
		}
		g.Status = *in.Status.Value
	}
	if in.URL.Set {
		g.URL = in.URL.Value
	}
	if in.Location.Set {
		g.Location = in.Location.Value
	}
	if in.Notes.Set {
		g.Notes = in.Notes.Value
	}
	if in.PersonID.Set {
		g.PersonID = in.PersonID.Value
		if g.PersonID == nil {
			g.Person = nil
		}
	}
	return nil
}
