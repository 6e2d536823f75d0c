package tests

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/rusty/pkg/rusty"
	"github.com/ib-77/rusty/pkg/rusty/strict"
	"github.com/ib-77/rusty/pkg/rusty/wrap"
)

// TestOrderFlow exercises the whole surface on a small order-validation
// flow: lifted parsers, inner unwraps with early exit, a wrap boundary and
// a strict boundary.
func TestOrderFlow(t *testing.T) {
	ctx := context.Background()

	inputs := []string{"12", "7", "bad", "", "-3"}
	outputs := make([]string, 0, len(inputs))

	for _, in := range inputs {
		out := processOrder(ctx, in)
		outputs = append(outputs, rusty.Finally(out,
			func(qty int) string { return fmt.Sprintf("accepted:%d", qty) },
			func(reason string) string { return "rejected:" + reason },
		))
	}

	assert.Equal(t, []string{
		"accepted:12",
		"accepted:7",
		"rejected:malformed quantity",
		"rejected:empty order",
		"rejected:negative quantity",
	}, outputs)
}

// processOrder parses and validates one order line. Inner steps exit early
// through rusty.Unwrap; the boundary returns the carried Err instead of
// panicking.
var processOrder = wrap.UnwrapReturn(
	func(ctx context.Context, raw string) rusty.Result[int, string] {
		qty := rusty.Unwrap(parseQuantity(ctx, raw))
		checked := rusty.Unwrap(checkQuantity(qty))
		return rusty.Ok[int, string](checked)
	})

func parseQuantity(ctx context.Context, raw string) rusty.Result[int, string] {
	if strings.TrimSpace(raw) == "" {
		return rusty.Err[int, string]("empty order")
	}
	parsed := wrap.Lift(func(ctx context.Context, s string) (int, error) {
		return strconv.Atoi(s)
	})(ctx, raw)
	return rusty.MapErr(parsed, func(error) string { return "malformed quantity" })
}

func checkQuantity(qty int) rusty.Result[int, string] {
	if qty < 0 {
		return rusty.Err[int, string]("negative quantity")
	}
	return rusty.Ok[int, string](qty)
}

func TestOrderFlow_HandlerRecovery(t *testing.T) {
	ctx := context.Background()

	// a wildcard handler turns any rejection into a default quantity
	got := rusty.Unwrap(processOrder(ctx, "bad"), rusty.ErrHandlers[int, string]{
		On: map[string]func() int{
			"empty order": func() int { return 0 },
		},
		Any: func() int { return 1 },
	})
	assert.Equal(t, 1, got)
}

func TestStrictArchiveFlow(t *testing.T) {
	ctx := context.Background()

	archive := strict.FailureReturn(strict.Types(strict.Of[error]()),
		func(ctx context.Context, id string) rusty.Effect[any] {
			if id == "" {
				rusty.Succeeded(rusty.Failure[any](errors.New("missing id")))
			}
			return rusty.Success[any]()
		})

	assert.True(t, archive(ctx, "ord-1").IsSuccess())

	out := archive(ctx, "")
	assert.True(t, out.IsFailure())
	if err, ok := out.Content().(error); assert.True(t, ok) {
		assert.Equal(t, "missing id", err.Error())
	}
}

func TestStrictBoundaryRejectsUndeclaredPayload(t *testing.T) {
	ctx := context.Background()

	lookup := strict.UnwrapReturn(strict.Types(strict.Of[int]()), strict.Types(strict.Of[string]()),
		func(ctx context.Context, id string) rusty.Result[any, any] {
			return rusty.Ok[any, any]("wrong payload kind")
		})

	assert.PanicsWithError(t,
		"strict: function returned an Ok payload of type string, permitted types [int]",
		func() { lookup(ctx, "ord-1") })
}
