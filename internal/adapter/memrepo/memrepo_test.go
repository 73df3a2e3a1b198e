package memrepo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aidforpaws/internal/domain"
)

func steppingClock() func() time.Time {
	t := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func TestAnimalsNewestFirstAndCategoryKept(t *testing.T) {
	store := New().WithClock(steppingClock())
	animals := store.Animals()
	ctx := context.Background()

	cat := "senior"
	first := &domain.Animal{ID: domain.NewID(), AnimalInput: domain.AnimalInput{Name: "A", Category: &cat}}
	second := &domain.Animal{ID: domain.NewID(), AnimalInput: domain.AnimalInput{Name: "B"}}
	require.NoError(t, animals.Create(ctx, first))
	require.NoError(t, animals.Create(ctx, second))

	list, err := animals.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "B", list[0].Name)

	updated, err := animals.Update(ctx, first.ID, domain.AnimalInput{Name: "A2"})
	require.NoError(t, err)
	require.NotNil(t, updated.Category)
	assert.Equal(t, "senior", *updated.Category)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))

	*updated.Category = "mutated"
	again, err := animals.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "senior", *again.Category)
}

func TestDonationsDuplicateAndDangling(t *testing.T) {
	store := New().WithClock(steppingClock())
	ctx := context.Background()
	animal := &domain.Animal{ID: domain.NewID(), AnimalInput: domain.AnimalInput{Name: "Max"}}
	require.NoError(t, store.Animals().Create(ctx, animal))

	donations := store.Donations()
	d := &domain.Donation{ID: domain.NewID(), DonationInput: domain.DonationInput{
		DonorName: "Asha", Amount: 100, AnimalID: animal.ID, PaymentID: "pay_1",
	}}
	require.NoError(t, donations.Create(ctx, d))
	assert.ErrorIs(t, donations.Create(ctx, &domain.Donation{ID: domain.NewID(), DonationInput: d.DonationInput}), domain.ErrDuplicatePayment)

	got, err := donations.GetByPaymentID(ctx, "pay_1")
	require.NoError(t, err)
	require.NotNil(t, got.Animal)
	assert.Equal(t, "Max", got.Animal.Name)

	dangling, err := donations.ListDangling(ctx)
	require.NoError(t, err)
	assert.Empty(t, dangling)

	require.NoError(t, store.Animals().Delete(ctx, animal.ID))

	dangling, err = donations.ListDangling(ctx)
	require.NoError(t, err)
	require.Len(t, dangling, 1)
	assert.Nil(t, dangling[0].Animal)

	summary, err := donations.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.Count)
	assert.InDelta(t, 100.0, summary.TotalAmount, 0.001)
}

func TestDonationsListRecentNewestFirst(t *testing.T) {
	store := New().WithClock(steppingClock())
	ctx := context.Background()
	animalID := domain.NewID()

	// ids are handed out in reverse so only createdAt can produce the order
	ids := []string{domain.NewID(), domain.NewID(), domain.NewID()}
	for i, pay := range []string{"p1", "p2", "p3"} {
		d := &domain.Donation{ID: ids[len(ids)-1-i], DonationInput: domain.DonationInput{
			DonorName: "Asha", DonorEmail: "asha@example.com", Amount: 10, AnimalID: animalID, PaymentID: pay,
		}}
		require.NoError(t, store.Donations().Create(ctx, d))
	}

	list, err := store.Donations().ListRecent(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	got := []string{list[0].PaymentID, list[1].PaymentID, list[2].PaymentID}
	assert.Equal(t, []string{"p3", "p2", "p1"}, got)
	assert.True(t, list[0].CreatedAt.After(list[1].CreatedAt))
	assert.True(t, list[1].CreatedAt.After(list[2].CreatedAt))
}
