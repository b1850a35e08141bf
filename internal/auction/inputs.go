package auction

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"auctionbase/internal/auctionerrors"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// В сообщениях об ошибках используем имена полей формы
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// validationError оборачивает ошибки валидатора в ErrValidation
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", auctionerrors.ErrValidation, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			msgs = append(msgs, fe.Field()+" is required")
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", auctionerrors.ErrValidation, strings.Join(msgs, "; "))
}

// PlaceBidInput данные формы /add_bid
type PlaceBidInput struct {
	ItemID string `form:"itemID" validate:"required,number"`
	Price  string `form:"price" validate:"required,numeric"`
	UserID string `form:"userID" validate:"required"`
}

func (in PlaceBidInput) parse() (itemID int64, amount float64, err error) {
	itemID, err = strconv.ParseInt(in.ItemID, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: itemID: %v", auctionerrors.ErrValidation, err)
	}
	amount, err = strconv.ParseFloat(in.Price, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: price: %v", auctionerrors.ErrValidation, err)
	}
	if amount <= 0 {
		return 0, 0, fmt.Errorf("%w: price must be positive", auctionerrors.ErrValidation)
	}
	return itemID, amount, nil
}

// SearchInput данные формы /search, все поля необязательные
type SearchInput struct {
	ItemID      string `form:"itemID" validate:"omitempty,number"`
	UserID      string `form:"userID"`
	MinPrice    string `form:"minPrice" validate:"omitempty,numeric"`
	MaxPrice    string `form:"maxPrice" validate:"omitempty,numeric"`
	Description string `form:"desc"`
	Category    string `form:"category"`
	Status      string `form:"status" validate:"omitempty,oneof=all open notStarted close"`

	Limit  int `form:"limit" validate:"gte=0"`
	Offset int `form:"offset" validate:"gte=0"`
}

// Filter переводит строки формы в типизированный фильтр
func (in SearchInput) Filter() (SearchFilter, error) {
	f := SearchFilter{
		SellerID:    in.UserID,
		Description: in.Description,
		Category:    in.Category,
		Status:      StatusFilter(in.Status),
		Limit:       in.Limit,
		Offset:      in.Offset,
	}

	if in.ItemID != "" {
		id, err := strconv.ParseInt(in.ItemID, 10, 64)
		if err != nil {
			return SearchFilter{}, fmt.Errorf("%w: itemID: %v", auctionerrors.ErrValidation, err)
		}
		f.ItemID = &id
	}

	var err error
	if f.MinPrice, err = parseOptionalPrice("minPrice", in.MinPrice); err != nil {
		return SearchFilter{}, err
	}
	if f.MaxPrice, err = parseOptionalPrice("maxPrice", in.MaxPrice); err != nil {
		return SearchFilter{}, err
	}

	return f, nil
}

func parseOptionalPrice(field, s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", auctionerrors.ErrValidation, field, err)
	}
	return &v, nil
}

// SelectTimeInput данные формы /selecttime
type SelectTimeInput struct {
	Month  string `form:"MM" validate:"required,number"`
	Day    string `form:"dd" validate:"required,number"`
	Year   string `form:"yyyy" validate:"required,number,len=4"`
	Hour   string `form:"HH" validate:"required,number"`
	Minute string `form:"mm" validate:"required,number"`
	Second string `form:"ss" validate:"required,number"`
	Name   string `form:"entername"`
}

// selectTimeLayout допускает однозначные месяц, день и время
const selectTimeLayout = "2006-1-2 15:4:5"

// Time собирает время из полей формы, проверяя диапазоны
func (in SelectTimeInput) Time() (time.Time, error) {
	s := fmt.Sprintf("%s-%s-%s %s:%s:%s", in.Year, in.Month, in.Day, in.Hour, in.Minute, in.Second)
	t, err := time.ParseInLocation(selectTimeLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q: %v", auctionerrors.ErrValidation, s, err)
	}
	return t, nil
}
