package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			"separate value",
			[]string{"-auth", "http://a", "-x", "nope"},
			[]string{"-auth"},
			[]string{"-auth", "http://a"},
		},
		{
			"equals form",
			[]string{"-api=http://b", "-auth=http://a"},
			[]string{"-api"},
			[]string{"-api=http://b"},
		},
		{
			"nothing allowed",
			[]string{"-c", "conf.json"},
			[]string{"-auth"},
			[]string{},
		},
		{
			"bool flag followed by flag",
			[]string{"-d", "-auth", "http://a"},
			[]string{"-d", "-auth"},
			[]string{"-d", "-auth", "http://a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, filterArgs(tt.args, tt.allowed))
		})
	}
}
