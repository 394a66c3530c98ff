package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type probe struct{}

func (probe) origin() string { return Origin(0) }

func TestOrigin_CallerPackage(t *testing.T) {
	assert.Equal(t, "github.com/philipp01105/sinklog/core", Origin(0))
	assert.Equal(t, "github.com/philipp01105/sinklog/core", probe{}.origin())

	closure := func() string { return Origin(0) }
	assert.Equal(t, "github.com/philipp01105/sinklog/core", closure())
}

func TestOrigin_UnresolvableFrame(t *testing.T) {
	assert.Equal(t, "", Origin(1000))
	assert.Equal(t, "", OriginOf(0))
}

func TestPackagePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"main.main", "main"},
		{"github.com/a/b.(*T).Method", "github.com/a/b"},
		{"github.com/a/b.Func.func1", "github.com/a/b"},
		{"gopkg.in/yaml%2ev3.Unmarshal", "gopkg.in/yaml.v3"},
		{"github.com/a/b/internal/c.init.0", "github.com/a/b/internal/c"},
		{"no-dots", "no-dots"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, packagePath(tt.in), tt.in)
	}
}

func TestFuncOrigin(t *testing.T) {
	assert.Equal(t, "", FuncOrigin(""))
	assert.Equal(t, "github.com/sirupsen/logrus", FuncOrigin("github.com/sirupsen/logrus.(*Entry).log"))
}
