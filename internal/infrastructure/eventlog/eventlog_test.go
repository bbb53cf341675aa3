package eventlog_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"deal_factory/internal/infrastructure/eventlog"
)

func TestMemory(t *testing.T) {
	tests := []struct {
		name   string
		mark   []string
		lookup string
		want   bool
	}{
		{name: "empty log", lookup: "evt_1", want: false},
		{name: "marked event", mark: []string{"evt_1"}, lookup: "evt_1", want: true},
		{name: "other event", mark: []string{"evt_1"}, lookup: "evt_2", want: false},
		{name: "double mark", mark: []string{"evt_1", "evt_1"}, lookup: "evt_1", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := require.New(t)
			ctx := context.Background()
			log := eventlog.NewMemory(time.Hour)

			for _, id := range tt.mark {
				r.NoError(log.Mark(ctx, id))
			}

			seen, err := log.Seen(ctx, tt.lookup)
			r.NoError(err)
			r.Equal(tt.want, seen)
		})
	}
}

func TestMemory_Expiration(t *testing.T) {
	r := require.New(t)
	ctx := context.Background()
	log := eventlog.NewMemory(20 * time.Millisecond)

	r.NoError(log.Mark(ctx, "evt_1"))

	r.Eventually(func() bool {
		seen, err := log.Seen(ctx, "evt_1")
		return err == nil && !seen
	}, time.Second, 10*time.Millisecond)
}
