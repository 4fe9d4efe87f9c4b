package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hotel-management-server/models"
)

func TestDraftStoreSetInvoice(t *testing.T) {
	store := NewDraftStore()

	store.SetInvoice(1, "INV-100", 102, 3)

	draft := store.Get(1)
	assert.NotNil(t, draft)
	assert.Equal(t, "INV-100", draft.InvoiceNo)
	assert.Equal(t, uint(102), draft.RoomNo)
	assert.Equal(t, uint(3), draft.HotelID)
}

func TestDraftStoreSetRating(t *testing.T) {
	store := NewDraftStore()

	store.SetRating(1, &models.RatingRequest{
		RadioValue:    4,
		ReviewType:    models.ReviewCategoryBreakfast,
		BreakfastType: "continental",
	})

	draft := store.Get(1)
	assert.NotNil(t, draft)
	assert.Equal(t, models.ReviewCategoryBreakfast, draft.ActiveCategory)
	assert.Equal(t, 4, draft.BreakfastRating)
	assert.Equal(t, "continental", draft.BreakfastType)
	assert.Equal(t, 4, draft.Rating(models.ReviewCategoryBreakfast))
	assert.Equal(t, 0, draft.Rating(models.ReviewCategoryRoom))
}

func TestDraftStoreIsolatesUsers(t *testing.T) {
	store := NewDraftStore()

	store.SetInvoice(1, "INV-100", 102, 3)
	store.SetInvoice(2, "INV-200", 201, 3)
	store.SetRating(2, &models.RatingRequest{
		RadioValue: 1,
		ReviewType: models.ReviewCategoryService,
	})

	first := store.Get(1)
	second := store.Get(2)
	assert.Equal(t, "INV-100", first.InvoiceNo)
	assert.Equal(t, 0, first.ActiveCategory)
	assert.Equal(t, "INV-200", second.InvoiceNo)
	assert.Equal(t, models.ReviewCategoryService, second.ActiveCategory)
}

func TestDraftStoreGetReturnsCopy(t *testing.T) {
	store := NewDraftStore()
	store.SetInvoice(1, "INV-100", 102, 3)

	draft := store.Get(1)
	draft.InvoiceNo = "mutated"

	assert.Equal(t, "INV-100", store.Get(1).InvoiceNo)
}

func TestDraftStoreClear(t *testing.T) {
	store := NewDraftStore()
	store.SetInvoice(1, "INV-100", 102, 3)

	store.Clear(1)

	assert.Nil(t, store.Get(1))
}

func TestDraftStoreCleanup(t *testing.T) {
	store := NewDraftStore()
	store.SetInvoice(1, "INV-100", 102, 3)
	store.SetInvoice(2, "INV-200", 201, 3)

	// Nothing is older than an hour
	assert.Equal(t, 0, store.Cleanup(time.Hour))
	assert.NotNil(t, store.Get(1))

	// Everything is older than a zero TTL
	time.Sleep(time.Millisecond)
	assert.Equal(t, 2, store.Cleanup(0))
	assert.Nil(t, store.Get(1))
	assert.Nil(t, store.Get(2))
}
