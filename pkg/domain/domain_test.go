package domain_test

import (
	"testing"

	"github.com/aretw0/switchboard/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestHandlerDescriptor_AllowsPlatform(t *testing.T) {
	open := domain.HandlerDescriptor{Key: "Open"}
	assert.True(t, open.AllowsPlatform("alexa"))
	assert.True(t, open.AllowsPlatform(""))
	assert.False(t, open.PlatformScoped())

	scoped := domain.HandlerDescriptor{Key: "Scoped", Platforms: []string{"alexa", "google"}}
	assert.True(t, scoped.AllowsPlatform("google"))
	assert.False(t, scoped.AllowsPlatform("web"))
	assert.True(t, scoped.PlatformScoped())
}

func TestStateEntry_Segments(t *testing.T) {
	assert.Equal(t, []string{"order", "payment"}, domain.StateEntry{Path: "order.payment"}.Segments())
	assert.Equal(t, []string{"order"}, domain.StateEntry{Path: "order"}.Segments())
	assert.Nil(t, domain.StateEntry{}.Segments())
}

func TestComponent_Child(t *testing.T) {
	parent := &domain.Component{
		Name:       "order",
		Components: []*domain.Component{{Name: "payment"}},
	}

	child, ok := parent.Child("payment")
	assert.True(t, ok)
	assert.Equal(t, "payment", child.Name)

	_, ok = parent.Child("refunds")
	assert.False(t, ok)
}

func TestAliasMap_Clone(t *testing.T) {
	original := domain.AliasMap{"A": "B"}
	clone := original.Clone()
	clone["A"] = "C"
	assert.Equal(t, "B", original["A"])
}
