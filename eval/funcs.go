package eval

import (
	"fmt"
	"math"
)

// Func is a function callable from an expression. Arity checking is the
// responsibility of the function itself.
type Func func(args ...float64) (float64, error)

// DefaultFuncs returns the registry of built in functions. The returned
// map is a fresh copy and may be modified by the caller.
func DefaultFuncs() map[string]Func {
	return map[string]Func{
		"abs":   unary(math.Abs),
		"acos":  unary(math.Acos),
		"asin":  unary(math.Asin),
		"atan":  unary(math.Atan),
		"ceil":  unary(math.Ceil),
		"cos":   unary(math.Cos),
		"e":     constant(math.E),
		"exp":   unary(math.Exp),
		"floor": unary(math.Floor),
		"ln":    unary(math.Log),
		"log":   unary(math.Log10),
		"max":   variadic(math.Max),
		"min":   variadic(math.Min),
		"pi":    constant(math.Pi),
		"pow":   binary(math.Pow),
		"round": unary(math.Round),
		"sin":   unary(math.Sin),
		"sqrt":  unary(math.Sqrt),
		"tan":   unary(math.Tan),
		"trunc": unary(math.Trunc),
	}
}

func unary(fn func(float64) float64) Func {
	return func(args ...float64) (float64, error) {
		if len(args) != 1 {
			return 0, fmt.Errorf("expected 1 argument (%d given)", len(args))
		}
		return fn(args[0]), nil
	}
}

func binary(fn func(float64, float64) float64) Func {
	return func(args ...float64) (float64, error) {
		if len(args) != 2 {
			return 0, fmt.Errorf("expected 2 arguments (%d given)", len(args))
		}
		return fn(args[0], args[1]), nil
	}
}

// variadic folds a binary function over one or more arguments.
func variadic(fn func(float64, float64) float64) Func {
	return func(args ...float64) (float64, error) {
		if len(args) == 0 {
			return 0, fmt.Errorf("expected at least 1 argument (0 given)")
		}
		result := args[0]
		for _, arg := range args[1:] {
			result = fn(result, arg)
		}
		return result, nil
	}
}

func constant(value float64) Func {
	return func(args ...float64) (float64, error) {
		if len(args) != 0 {
			return 0, fmt.Errorf("expected no arguments (%d given)", len(args))
		}
		return value, nil
	}
}
