package checkoutcontroller

import (
	"sync"
	"testing"

	"github.com/opalstreet/storefront-api/checkout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreOwnership(t *testing.T) {
	store := NewStore()
	items := []checkout.LineItem{{ID: 1, Name: "Watch", UnitPrice: 99.99, Quantity: 1}}

	sess := store.Create("user-a", items)
	require.NotEmpty(t, sess.ID)
	assert.Equal(t, checkout.StepShipping, sess.Wizard.Step)

	got, ok := store.Get(sess.ID, "user-a")
	require.True(t, ok)
	assert.Same(t, sess, got)

	// Another user cannot read the session.
	_, ok = store.Get(sess.ID, "user-b")
	assert.False(t, ok)

	_, ok = store.Get("missing", "user-a")
	assert.False(t, ok)

	store.Delete(sess.ID)
	_, ok = store.Get(sess.ID, "user-a")
	assert.False(t, ok)
}

// Double-submitted requests for the same session must serialize on the
// session lock instead of racing on the wizard.
func TestSessionConcurrentRequests(t *testing.T) {
	store := NewStore()
	items := []checkout.LineItem{{ID: 1, Name: "Watch", UnitPrice: 99.99, Quantity: 1}}
	sess := store.Create("user-a", items)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			sess.Lock()
			defer sess.Unlock()
			sess.Wizard.Advance()
		}()
		go func() {
			defer wg.Done()
			sess.Lock()
			defer sess.Unlock()
			sess.Wizard.Regress()
		}()
	}
	wg.Wait()

	sess.Lock()
	defer sess.Unlock()
	assert.GreaterOrEqual(t, sess.Wizard.Step, checkout.StepShipping)
	assert.LessOrEqual(t, sess.Wizard.Step, checkout.StepReview)
}
