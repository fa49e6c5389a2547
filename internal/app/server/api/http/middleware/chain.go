// Package middleware собирает цепочки huma-мидлварей для групп операций.
package middleware

import (
	"slices"

	"github.com/danielgtaylor/huma/v2"
)

// Chain holds the middlewares every operation group gets.
type Chain struct {
	common huma.Middlewares
}

func NewChain(common ...func(huma.Context, func(huma.Context))) *Chain {
	return &Chain{common: common}
}

// For returns a fresh slice: common middlewares first, then extra.
// Groups never share a backing array.
func (c *Chain) For(extra ...func(huma.Context, func(huma.Context))) huma.Middlewares {
	out := slices.Clone(c.common)
	return append(out, extra...)
}

// NoStore запрещает кэширование ответов API (баланс и итоги меняются после каждой записи).
func NoStore(ctx huma.Context, next func(huma.Context)) {
	ctx.SetHeader("Cache-Control", "no-store")
	next(ctx)
}
