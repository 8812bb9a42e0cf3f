package catalog

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func companies(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("Company %02d", i+1)
	}
	return out
}

func TestPaginate_OneLinePerPage(t *testing.T) {
	values := companies(65)
	pageSize := 20
	numPages := PageCount(len(values), pageSize)
	assert.Equal(t, 3, numPages)

	want := []string{"1. Company 01", "21. Company 21", "41. Company 41"}
	assert.Equal(t, want, Paginate(values, pageSize, numPages))
	assert.Equal(t, want, PaginateLoop(values, pageSize, numPages))
}

func TestPaginate_Edges(t *testing.T) {
	values := companies(5)
	for name, fn := range map[string]func([]string, int, int) []string{
		"pipeline": Paginate,
		"loop":     PaginateLoop,
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, []string{"1. Company 01", "3. Company 03", "5. Company 05"}, fn(values, 2, 10))
			assert.Equal(t, []string{"1. Company 01"}, fn(values, 10, 3))
			assert.Empty(t, fn(values, 2, 0))
			assert.Empty(t, fn(values, 0, 3))
			assert.Empty(t, fn(nil, 2, 3))
			assert.Equal(t, []string{"1. Company 01"}, fn(values, math.MaxInt, 3))
			assert.Equal(t, []string{"1. Company 01", "5. Company 05"}, fn(values, 4, 3))
			assert.Equal(t, []string{"1. Company 01"}, fn(values, math.MaxInt-1, math.MaxInt))
		})
	}
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 0, PageCount(19, 20))
	assert.Equal(t, 2, PageCount(40, 20))
	assert.Equal(t, 0, PageCount(40, 0))
}

func TestMenu(t *testing.T) {
	values := companies(3)
	want := []string{"1. Company 01", "2. Company 02"}
	assert.Equal(t, want, Menu(values, 2))
	assert.Equal(t, want, MenuRange(values, 2))

	assert.Len(t, Menu(values, 20), 3)
	assert.Len(t, MenuRange(values, 20), 3)
	assert.Empty(t, Menu(values, 0))
	assert.Empty(t, MenuRange(values, -1))
}
