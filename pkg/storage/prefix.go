package storage

import (
	"context"
	"errors"
	"fmt"
)

// DeletePrefix removes every blob under prefix, walking the listing page by page.
// Blobs that vanish mid-walk are skipped. It returns the number removed, which is
// meaningful even when err is non-nil.
func DeletePrefix(ctx context.Context, sys System, prefix string) (int, error) {
	if prefix == "" {
		return 0, ErrEmptyKey
	}

	removed := 0
	marker := ""
	for {
		page, err := sys.List(ctx, prefix, marker, MaxListCap)
		if err != nil {
			return removed, fmt.Errorf("list %q: %w", prefix, err)
		}

		for _, b := range page.Blobs {
			if err := sys.Delete(ctx, b.Key); err != nil {
				if errors.Is(err, ErrNotFound) {
					continue
				}
				return removed, err
			}
			removed++
		}

		if page.NextMarker == "" {
			return removed, nil
		}
		marker = page.NextMarker
	}
}
