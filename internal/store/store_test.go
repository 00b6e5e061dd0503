package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/wagiedev/tfsblame-go/internal/blame"
)

func TestStoreCompliance(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name    string
		factory func(t *testing.T) Store
	}{
		{
			name: "in-memory",
			factory: func(t *testing.T) Store {
				t.Helper()

				return NewMemory()
			},
		},
		{
			name: "redis",
			factory: func(t *testing.T) Store {
				t.Helper()

				mr := miniredis.RunT(t)
				client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
				t.Cleanup(func() { _ = client.Close() })

				return NewRedis(client, "test")
			},
		},
	}

	date := time.Date(2020, time.January, 2, 0, 0, 0, 0, time.UTC)

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := tc.factory(t)

			_, err := s.Get(ctx, "/missing.js")
			require.ErrorIs(t, err, ErrResultNotFound)

			a := &blame.File{Path: "/a.js", LineCount: 2}
			b := &blame.File{Path: "/b.js", LineCount: 1}

			require.NoError(t, s.BlameResult(ctx, a, &blame.Result{
				Path:      "/a.js",
				SessionID: "01J0000000000000000000000",
				Lines: []blame.Line{
					{Revision: "r1", Author: "alice", Date: date},
					{Revision: "r2", Author: "bob"},
				},
			}))
			require.NoError(t, s.BlameResult(ctx, b, &blame.Result{
				Path:  "/b.js",
				Lines: []blame.Line{{Revision: "r3", Author: "carol", Date: date}},
			}))

			got, err := s.Get(ctx, "/a.js")
			require.NoError(t, err)
			require.Equal(t, "/a.js", got.Path)
			require.Equal(t, "01J0000000000000000000000", got.SessionID)
			require.Len(t, got.Lines, 2)
			require.True(t, got.Lines[0].Date.Equal(date))
			require.False(t, got.Lines[1].HasDate())
			require.Equal(t, "bob", got.Lines[1].Author)

			paths, err := s.Paths(ctx)
			require.NoError(t, err)
			require.Equal(t, []string{"/a.js", "/b.js"}, paths)

			// Replacing a result keeps the original position.
			require.NoError(t, s.BlameResult(ctx, a, &blame.Result{
				Path:  "/a.js",
				Lines: []blame.Line{{Revision: "r9", Author: "dave"}},
			}))

			got, err = s.Get(ctx, "/a.js")
			require.NoError(t, err)
			require.Equal(t, "r9", got.Lines[0].Revision)

			paths, err = s.Paths(ctx)
			require.NoError(t, err)
			require.Equal(t, []string{"/a.js", "/b.js"}, paths)
		})
	}
}

func TestMemory_ConcurrentWrites(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	var wg sync.WaitGroup

	for i := range 20 {
		wg.Go(func() {
			path := fmt.Sprintf("/f%d.js", i)
			_ = m.BlameResult(ctx, &blame.File{Path: path}, &blame.Result{Path: path})
		})
	}

	wg.Wait()

	require.Equal(t, 20, m.Len())
}

func TestRedis_TTL(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	s := NewRedis(client, "ttl:").WithTTL(time.Minute)

	require.NoError(t, s.BlameResult(ctx, &blame.File{Path: "/a.js"}, &blame.Result{Path: "/a.js"}))
	require.True(t, mr.Exists("ttl:result:/a.js"))

	mr.FastForward(2 * time.Minute)

	_, err := s.Get(ctx, "/a.js")
	require.ErrorIs(t, err, ErrResultNotFound)
}
