package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"aidforpaws/internal/adapter"
	"aidforpaws/internal/domain"
	"aidforpaws/internal/middleware"
	"aidforpaws/internal/service"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func useStores(t *testing.T, stores *adapter.Stores) {
	t.Helper()
	orig := openStores
	openStores = func(context.Context, *cobra.Command) (*adapter.Stores, error) { return stores, nil }
	t.Cleanup(func() { openStores = orig })
}

func TestTokenCommand(t *testing.T) {
	out, err := execute(t, "", "token", "--secret", "s", "--subject", "ops", "--ttl", "1h")
	require.NoError(t, err)

	claims, err := middleware.VerifyJWT("s", strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "ops", claims.Sub)
	assert.Equal(t, "admin", claims.Role)
}

func TestTokenCommandRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := execute(t, "", "token", "--secret", "")
	assert.Error(t, err)
}

func TestHashPasswordCommand(t *testing.T) {
	out, err := execute(t, "hunter2\n", "hash-password", "--cost", "4")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(strings.TrimSpace(out)), []byte("hunter2")))

	out, err = execute(t, "", "hash-password", "--cost", "4", "s3cret")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(strings.TrimSpace(out)), []byte("s3cret")))
}

func TestSeedCommand(t *testing.T) {
	stores := adapter.NewMemory()
	useStores(t, stores)

	path := filepath.Join(t.TempDir(), "animals.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`animals:
  - name: Bruno
    description: Friendly labrador
    imageUrl: https://img.example/bruno.jpg
    type: dog
  - name: Misty
    description: Shy tabby
    imageUrl: https://img.example/misty.jpg
    type: cat
    category: senior
`), 0o600))

	out, err := execute(t, "", "seed", "--file", path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "created "))

	list, err := stores.Animals.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
}

func TestSeedRejectsInvalidEntryWithoutWriting(t *testing.T) {
	stores := adapter.NewMemory()
	animals := service.NewAnimalService(stores.Animals)

	err := runSeed(context.Background(), animals, strings.NewReader(`animals:
  - name: Bruno
    description: ok
    imageUrl: https://img.example/bruno.jpg
    type: dog
  - name: NoImage
    description: missing url
    type: cat
`), &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "imageUrl")

	n, err := stores.Animals.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestAuditCommand(t *testing.T) {
	stores := adapter.NewMemory()
	useStores(t, stores)
	ctx := context.Background()

	out, err := execute(t, "", "audit")
	require.NoError(t, err)
	assert.Contains(t, out, "no dangling donations")

	animals := service.NewAnimalService(stores.Animals)
	donations := service.NewDonationService(stores.Donations)
	animal, err := animals.Create(ctx, domain.AnimalInput{
		Name: "Bruno", Description: "x", ImageURL: "https://img.example/b.jpg", Type: "dog",
	})
	require.NoError(t, err)
	d, err := donations.Create(ctx, domain.DonationInput{
		DonorName: "Asha", DonorEmail: "asha@example.com", Amount: 250, AnimalID: animal.ID, PaymentID: "pay_1",
	})
	require.NoError(t, err)
	require.NoError(t, animals.Delete(ctx, animal.ID))

	out, err = execute(t, "", "audit")
	require.NoError(t, err)
	assert.Contains(t, out, d.ID)
	assert.Contains(t, out, "1 dangling donation(s)")
}
