// Package seed populates the store with the fixed startup data the client
// expects: twenty beds spread round-robin across the four wards.
package seed

import (
	"context"
	"fmt"

	"github.com/hms/hms/internal/domain/bed"
)

const bedCount = 20

var wards = []bed.Ward{bed.WardGeneral, bed.WardICU, bed.WardPediatric, bed.WardMaternity}

// Beds inserts the startup bed records: wards cycling
// general→icu→pediatric→maternity, numbered with the ward initial and a
// zero-padded 1-based sequence (G01, I02, P03, M04, G05, …), all available
// with no assigned patient. Seeding is skipped when beds already exist, so
// restarting against a persistent store does not duplicate them.
func Beds(ctx context.Context, repo bed.Repository) error {
	existing, err := repo.List(ctx)
	if err != nil {
		return fmt.Errorf("check existing beds: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for i := 1; i <= bedCount; i++ {
		ward := wards[(i-1)%len(wards)]
		b := &bed.Bed{
			BedNumber: fmt.Sprintf("%c%02d", wardInitial(ward), i),
			Ward:      ward,
			Status:    bed.StatusAvailable,
		}
		if err := repo.Create(ctx, b); err != nil {
			return fmt.Errorf("seed bed %s: %w", b.BedNumber, err)
		}
	}
	return nil
}

func wardInitial(w bed.Ward) byte {
	switch w {
	case bed.WardICU:
		return 'I'
	case bed.WardPediatric:
		return 'P'
	case bed.WardMaternity:
		return 'M'
	default:
		return 'G'
	}
}
