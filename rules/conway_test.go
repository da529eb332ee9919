package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name      string
		neighbors int
		alive     bool
		want      bool
	}{
		{name: "alive with 0 dies of underpopulation", neighbors: 0, alive: true, want: false},
		{name: "alive with 1 dies of underpopulation", neighbors: 1, alive: true, want: false},
		{name: "alive with 2 survives", neighbors: 2, alive: true, want: true},
		{name: "alive with 3 survives", neighbors: 3, alive: true, want: true},
		{name: "alive with 4 dies of overpopulation", neighbors: 4, alive: true, want: false},
		{name: "alive with 8 dies of overpopulation", neighbors: 8, alive: true, want: false},
		{name: "dead with 2 stays dead", neighbors: 2, alive: false, want: false},
		{name: "dead with 3 is born", neighbors: 3, alive: false, want: true},
		{name: "dead with 4 stays dead", neighbors: 4, alive: false, want: false},
		{name: "dead with 0 stays dead", neighbors: 0, alive: false, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Apply(tt.neighbors, tt.alive))
		})
	}
}
