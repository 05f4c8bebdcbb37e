package worker

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pavelaverin/linksight/internal/loader"
	"github.com/pavelaverin/linksight/internal/store"
)

func TestReloadOnceSwapsStore(t *testing.T) {
	first := store.Build(&loader.Export{}, store.Options{})
	holder := store.NewHolder(first)

	second := store.Build(&loader.Export{}, store.Options{})
	w := New(holder, func() (*store.Store, error) { return second, nil })

	w.ReloadOnce()
	assert.Same(t, second, holder.Get())
}

func TestReloadOnceKeepsStoreOnFailure(t *testing.T) {
	first := store.Build(&loader.Export{}, store.Options{})
	holder := store.NewHolder(first)

	w := New(holder, func() (*store.Store, error) { return nil, errors.New("export folder vanished") })

	w.ReloadOnce()
	assert.Same(t, first, holder.Get())
}
