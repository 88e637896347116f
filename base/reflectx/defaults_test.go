// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type level int32

func (l *level) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "low":
		*l = 1
	case "high":
		*l = 2
	default:
		return assert.AnError
	}
	return nil
}

type Inner struct {
	Rate float64 `default:"0.5"`
	On   bool    `default:"true"`
}

type config struct {
	Inner
	Name    string        `default:"smooth"`
	Count   int           `default:"80"`
	Small   uint8         `default:"0x10"`
	Wait    time.Duration `default:"2s"`
	Level   level         `default:"High"`
	Sub     Inner
	NoTag   int
	private int
}

func TestSetFromDefaultTags(t *testing.T) {
	c := &config{NoTag: 3}
	require.NoError(t, SetFromDefaultTags(c))
	assert.Equal(t, 0.5, c.Rate)
	assert.True(t, c.On)
	assert.Equal(t, "smooth", c.Name)
	assert.Equal(t, 80, c.Count)
	assert.Equal(t, uint8(16), c.Small)
	assert.Equal(t, 2*time.Second, c.Wait)
	assert.Equal(t, level(2), c.Level)
	assert.Equal(t, 0.5, c.Sub.Rate)
	assert.Equal(t, 3, c.NoTag)

	assert.Error(t, SetFromDefaultTags(config{}))
	assert.Error(t, SetFromDefaultTags((*config)(nil)))
	n := 1
	assert.Error(t, SetFromDefaultTags(&n))

	type bad struct {
		Count int     `default:"many"`
		Level level   `default:"middle"`
		Other []int   `default:"1"`
		Ok    float32 `default:"1.5"`
	}
	b := &bad{}
	err := SetFromDefaultTags(b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Count")
	assert.Contains(t, err.Error(), "Level")
	assert.Contains(t, err.Error(), "Other")
	assert.Equal(t, float32(1.5), b.Ok)
}

func TestSetFromString(t *testing.T) {
	v := 0
	assert.Error(t, SetFromString(reflect.ValueOf(v), "1"))
	require.NoError(t, SetFromString(reflect.ValueOf(&v).Elem(), "-7"))
	assert.Equal(t, -7, v)
	assert.Equal(t, 3, NonPointerValue(reflect.ValueOf(&[]int{1, 2, 3})).Len())
}
