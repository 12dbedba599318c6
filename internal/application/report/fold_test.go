package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ong-esperanza/donaciones-api/internal/application/report"
)

// Fold debe hacer coincidir términos escritos con y sin acentos, en cualquier
// capitalización, porque el filtro SQL compara contra unaccent(lower(name)).
func TestFold(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Feijão", "feijao"},
		{"AÇÚCAR", "acucar"},
		{"  Leche Entera  ", "leche entera"},
		{"óleo", "oleo"},
		{"arroz", "arroz"},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, report.Fold(tc.in), "Fold(%q)", tc.in)
	}
}
