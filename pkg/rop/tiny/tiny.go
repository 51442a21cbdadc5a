package tiny

import (
	"context"
	"errors"

	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/solo"
)

type Chain[T any] struct {
	ctx context.Context
	res rop.Result[T]
}

func Start[T any](ctx context.Context, r rop.Result[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, rop.Success(v))
}

func (c Chain[T]) Result() rop.Result[T] {
	return c.res
}

// Then composes functions that already return rop.Result[T]
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) rop.Result[T]) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.Switch(c.ctx, c.res, onSuccess)}
}

// ThenTry composes functions that return (T, error), like repo calls.
// A deadline turns into a cancellation.
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	if !c.res.IsSuccess() {
		return c
	}

	u, err := try(c.ctx, c.res.Result())
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return Chain[T]{ctx: c.ctx, res: rop.Cancel[T](err)}
		}
		return Chain[T]{ctx: c.ctx, res: rop.Fail[T](err)}
	}
	return Chain[T]{ctx: c.ctx, res: rop.Success(u)}
}

// Map transforms the successful value
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.Map(c.ctx, c.res, onSuccess)}
}

// Guard runs a step that reads other results through checked accessors.
// Whatever the step raises becomes the chain's failure.
func (c Chain[T]) Guard(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.Guard(c.ctx, c.res, onSuccess)}
}

// Ensure triggers side effects without changing the result. Cancellation
// counts as failure here.
func (c Chain[T]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, error)) Chain[T] {
	switch {
	case c.res.IsSuccess():
		if onSuccess != nil {
			onSuccess(c.ctx, c.res.Result())
		}
	case c.res.HasError():
		if onFailure != nil {
			onFailure(c.ctx, c.res.Err())
		}
	}
	return c
}

// Unwrap returns the final value and panics like rop.Result.MustResult when
// the chain did not succeed.
func (c Chain[T]) Unwrap() T {
	return solo.Unwrap(c.res)
}

// Finally collapses the chain to a final value, delegating to solo.Finally
func (c Chain[T]) Finally(
	onSuccess func(context.Context, T) T,
	onFailure func(context.Context, error) T,
	onCancel func(context.Context, error) T,
) T {
	return solo.Finally(c.ctx, c.res, onSuccess, onFailure, onCancel)
}
