// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a location index to its name.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal index ("0", "1", ...).
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns "A".."Z". Panics outside [0,25].
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string(rune('A' + idx))
}

// ExcelColumnIDFn returns spreadsheet column names: "A".."Z", "AA", "AB", ...
// Panics on a negative index.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// SymbolNumberIDFn returns prefix followed by the decimal index.
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// WithSymbolIDs names locations "A".."Z".
func WithSymbolIDs() BuilderOption { return WithIDScheme(SymbolIDFn) }

// WithExcelColumnIDs names locations "A".."Z","AA",...
func WithExcelColumnIDs() BuilderOption { return WithIDScheme(ExcelColumnIDFn) }

// WithSymbNumb names locations prefix+index, e.g. "City0", "City1".
func WithSymbNumb(prefix string) BuilderOption { return WithIDScheme(SymbolNumberIDFn(prefix)) }
