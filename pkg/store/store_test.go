package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/clowdgraph/clowd/pkg/analyze"
)

func report(id string, created time.Time) *analyze.Report {
	return &analyze.Report{
		ID:          id,
		Fingerprint: "fp-" + id,
		CreatedAt:   created,
		NodeCount:   3,
	}
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close(ctx)

	now := time.Now().UTC()

	t.Run("SaveAndGet", func(t *testing.T) {
		if err := s.SaveReport(ctx, report("r1", now)); err != nil {
			t.Fatalf("SaveReport: %v", err)
		}
		got, err := s.GetReport(ctx, "r1")
		if err != nil {
			t.Fatalf("GetReport: %v", err)
		}
		if got.Fingerprint != "fp-r1" {
			t.Errorf("Fingerprint = %s, want fp-r1", got.Fingerprint)
		}
	})

	t.Run("DuplicateID", func(t *testing.T) {
		if err := s.SaveReport(ctx, report("r1", now)); !errors.Is(err, ErrDuplicate) {
			t.Errorf("SaveReport duplicate = %v, want ErrDuplicate", err)
		}
	})

	t.Run("Missing", func(t *testing.T) {
		if _, err := s.GetReport(ctx, "ghost"); !errors.Is(err, ErrNotFound) {
			t.Errorf("GetReport(ghost) = %v, want ErrNotFound", err)
		}
	})

	t.Run("ListNewestFirst", func(t *testing.T) {
		_ = s.SaveReport(ctx, report("r2", now.Add(time.Minute)))
		_ = s.SaveReport(ctx, report("r3", now.Add(2*time.Minute)))

		reports, err := s.ListReports(ctx, 0)
		if err != nil {
			t.Fatalf("ListReports: %v", err)
		}
		if len(reports) != 3 {
			t.Fatalf("ListReports returned %d reports, want 3", len(reports))
		}
		if reports[0].ID != "r3" || reports[2].ID != "r1" {
			t.Errorf("order = [%s %s %s], want newest first", reports[0].ID, reports[1].ID, reports[2].ID)
		}
	})

	t.Run("ListLimit", func(t *testing.T) {
		reports, err := s.ListReports(ctx, 2)
		if err != nil {
			t.Fatalf("ListReports: %v", err)
		}
		if len(reports) != 2 {
			t.Errorf("ListReports(2) returned %d reports", len(reports))
		}
	})

	t.Run("GetReturnsCopy", func(t *testing.T) {
		got, _ := s.GetReport(ctx, "r1")
		got.NodeCount = 999
		again, _ := s.GetReport(ctx, "r1")
		if again.NodeCount == 999 {
			t.Error("mutating a retrieved report changed the stored copy")
		}
	})
}
