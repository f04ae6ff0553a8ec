package model_test

import (
	"testing"

	"github.com/Maxamed/gaza-genocide/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestBenchmarkID(t *testing.T) {
	id, ok := model.Benchmark{"id": "b-1"}.ID()
	assert.True(t, ok)
	assert.Equal(t, "b-1", id)

	id, ok = model.Benchmark{"id": float64(7)}.ID()
	assert.True(t, ok)
	assert.Equal(t, float64(7), id)

	_, ok = model.Benchmark{"name": "keyless"}.ID()
	assert.False(t, ok)
}

func TestBenchmarkCategory(t *testing.T) {
	assert.Equal(t, "casualties", model.Benchmark{"category": "casualties"}.Category())
	assert.Equal(t, "unknown", model.Benchmark{}.Category())
	assert.Equal(t, "unknown", model.Benchmark{"category": 3}.Category())
	assert.Equal(t, "unknown", model.Benchmark{"category": nil}.Category())
}
