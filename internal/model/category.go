package model

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrInvalidKind     = errors.New("invalid record kind")
	ErrInvalidCategory = errors.New("invalid category")
)

// Kind selects the collection a record lives in.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

type Category string

const (
	CategoryCash Category = "cash"
	CategoryCard Category = "card"
	CategorySide Category = "side"

	CategoryGoods         Category = "goods"
	CategoryFood          Category = "food"
	CategoryFuel          Category = "fuel"
	CategoryEntertainment Category = "entertainment"
)

var categories = map[Kind][]Category{
	KindIncome:  {CategoryCash, CategoryCard, CategorySide},
	KindExpense: {CategoryGoods, CategoryFood, CategoryFuel, CategoryEntertainment},
}

func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := categories[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
	}
	return k, nil
}

func (k Kind) String() string {
	return string(k)
}

// Collection is the plural name used for the JSON document key, the SQL table and the URL path.
func (k Kind) Collection() string {
	return string(k) + "s"
}

// CodeField is the JSON key holding the category code: incomes use "type", expenses "category".
func (k Kind) CodeField() string {
	if k == KindIncome {
		return "type"
	}
	return "category"
}

func (k Kind) Categories() []Category {
	return slices.Clone(categories[k])
}

func (k Kind) ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !slices.Contains(categories[k], c) {
		return "", fmt.Errorf("%w for %s: %q", ErrInvalidCategory, k, s)
	}
	return c, nil
}

func (c Category) String() string {
	return string(c)
}
