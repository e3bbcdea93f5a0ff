package matchercache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/osmkit/stringmatch/pkg/env"
	"github.com/osmkit/stringmatch/pkg/matchercache"
)

func TestGetCompilesAndCaches(t *testing.T) {
	c := matchercache.New(time.Minute, time.Minute)

	m, err := c.Get("foot*")
	require.NoError(t, err)
	require.True(t, m.MatchString("footway"))
	require.False(t, m.MatchString("sidewalk"))
	require.Equal(t, 1, c.Len())

	again, err := c.Get("foot*")
	require.NoError(t, err)
	require.True(t, again.Equal(m))
	require.Equal(t, 1, c.Len())

	_, err = c.Get("primary,secondary")
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())
}

func TestGetErrorNotCached(t *testing.T) {
	c := matchercache.New(time.Minute, time.Minute)

	_, err := c.Get("*bad")
	require.Error(t, err)
	require.Equal(t, 0, c.Len())

	// the failure must not poison the expression text
	_, err = c.Get("*bad")
	require.Error(t, err)
	require.Equal(t, 0, c.Len())
}

func TestExpiry(t *testing.T) {
	c := matchercache.New(10*time.Millisecond, time.Millisecond)

	_, err := c.Get("motorway")
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())

	time.Sleep(50 * time.Millisecond)
	require.Equal(t, 0, c.Len())

	// expired entries recompile transparently
	m, err := c.Get("motorway")
	require.NoError(t, err)
	require.True(t, m.MatchString("motorway"))
}

func TestNewFromEnv(t *testing.T) {
	require.NoError(t, env.SetDuration(env.CacheTTLEnvVar, time.Minute))
	require.NoError(t, env.SetDuration(env.CacheCleanupIntervalEnvVar, time.Minute))

	c := matchercache.NewFromEnv()

	m, err := c.Get("*way*")
	require.NoError(t, err)
	require.True(t, m.MatchString("highway"))
	require.Equal(t, 1, c.Len())
}

func TestConcurrentGet(t *testing.T) {
	c := matchercache.New(time.Minute, time.Minute)

	var g errgroup.Group
	for i := 0; i < 50; i++ {
		g.Go(func() error {
			for j := 0; j < 100; j++ {
				m, err := c.Get("primary,secondary,tertiary")
				if err != nil {
					return err
				}
				if !m.MatchString("secondary") {
					t.Error("Failed to match secondary")
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	require.Equal(t, 1, c.Len())
}
