package wine

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/vinoteca-cloud/sommelier/internal/db"
	"github.com/vinoteca-cloud/sommelier/internal/domain"
)

var malbecID = uuid.MustParse("11111111-1111-1111-1111-111111111111")

func testWine() *domain.Wine {
	return &domain.Wine{
		ID:             malbecID,
		Name:           "Malbec Reserva",
		Type:           domain.WineTypeRed,
		Vintage:        2019,
		Grapes:         []string{"Malbec"},
		AlcoholContent: 14.5,
		DescriptionES:  "Un tinto intenso de Mendoza.",
		Winery:         &domain.Winery{Name: "Bodega Norte", Region: "Mendoza", Country: "Argentina"},
	}
}

func TestRepo_FindByIDRoundTrip(t *testing.T) {
	repo, ms := newTestRepo(t)
	w := testWine()

	stored, err := wineToBytes(w)
	if err != nil {
		t.Fatalf("wineToBytes: %v", err)
	}
	ms.getFn = func(ctx context.Context, key string) ([]byte, error) {
		want := "somm:wine:" + malbecID.String()
		if key != want {
			t.Errorf("get key = %q, want %q", key, want)
		}
		return stored, nil
	}

	got, err := repo.FindByID(context.Background(), malbecID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if got.Name != w.Name || got.Type != w.Type || got.Vintage != w.Vintage {
		t.Errorf("wine = %+v", got)
	}
	if got.Winery == nil || got.Winery.Region != "Mendoza" {
		t.Errorf("winery = %+v", got.Winery)
	}
}

func TestRepo_FindByIDNotFound(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.getFn = func(ctx context.Context, key string) ([]byte, error) {
		return nil, &db.Error{Op: db.OpGet, Err: db.ErrKeyNotFound}
	}

	_, err := repo.FindByID(context.Background(), malbecID)
	if !errors.Is(err, domain.ErrWineNotFound) {
		t.Fatalf("expected ErrWineNotFound, got %v", err)
	}
}

func TestRepo_ListSortedByName(t *testing.T) {
	repo, ms := newTestRepo(t)

	chardonnay := testWine()
	chardonnay.ID = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	chardonnay.Name = "Chardonnay Gran Reserva"
	chardonnay.Type = domain.WineTypeWhite

	byKey := map[string][]byte{}
	for _, w := range []*domain.Wine{testWine(), chardonnay} {
		raw, err := wineToBytes(w)
		if err != nil {
			t.Fatalf("wineToBytes: %v", err)
		}
		byKey[wineKey(w.ID)] = raw
	}

	ms.scanFn = func(ctx context.Context, pattern string) ([]string, error) {
		if pattern != "somm:wine:*" {
			t.Errorf("scan pattern = %q", pattern)
		}
		// Unsorted scan order.
		return []string{wineKey(malbecID), wineKey(chardonnay.ID)}, nil
	}
	ms.getFn = func(ctx context.Context, key string) ([]byte, error) {
		return byKey[key], nil
	}

	wines, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(wines) != 2 {
		t.Fatalf("len = %d, want 2", len(wines))
	}
	if wines[0].Name != "Chardonnay Gran Reserva" || wines[1].Name != "Malbec Reserva" {
		t.Errorf("order = [%s, %s]", wines[0].Name, wines[1].Name)
	}
}

func TestRepo_ListEmpty(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.scanFn = func(ctx context.Context, pattern string) ([]string, error) {
		return nil, nil
	}

	wines, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(wines) != 0 {
		t.Errorf("wines = %v, expected empty", wines)
	}
}

func TestRepo_Seed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	seed := `wines:
  - id: 11111111-1111-1111-1111-111111111111
    name: Malbec Reserva
    type: RED
    vintage: 2019
    grapes: [Malbec]
    alcohol_content: 14.5
    winery:
      name: Bodega Norte
      region: Mendoza
      country: Argentina
  - id: 22222222-2222-2222-2222-222222222222
    name: Chardonnay Gran Reserva
    type: WHITE
    vintage: 2021
`
	if err := os.WriteFile(path, []byte(seed), 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	repo, ms := newTestRepo(t)
	written := map[string][]byte{}
	ms.setFn = func(ctx context.Context, key string, value []byte) error {
		written[key] = value
		return nil
	}

	count, err := repo.Seed(context.Background(), path)
	if err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
	if len(written) != 2 {
		t.Errorf("wrote %d keys, want 2", len(written))
	}

	raw, ok := written["somm:wine:11111111-1111-1111-1111-111111111111"]
	if !ok {
		t.Fatal("malbec key missing")
	}
	w, err := wineFromBytes(raw)
	if err != nil {
		t.Fatalf("wineFromBytes: %v", err)
	}
	if w.Name != "Malbec Reserva" || w.Winery == nil || w.Winery.Country != "Argentina" {
		t.Errorf("seeded wine = %+v", w)
	}
}

func TestRepo_SeedInvalidID(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	seed := "wines:\n  - id: not-a-uuid\n    name: Broken\n"
	if err := os.WriteFile(path, []byte(seed), 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	repo, _ := newTestRepo(t)
	if _, err := repo.Seed(context.Background(), path); err == nil {
		t.Fatal("expected error for invalid id")
	}
}

func TestRepo_SeedMissingFile(t *testing.T) {
	repo, _ := newTestRepo(t)
	if _, err := repo.Seed(context.Background(), "/nonexistent/catalog.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
